package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/huffviz/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh flag state and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, alphabet, verbose = "", "", false
	showPhase, showListing, playFrom, playInterval, encodeBits = "", false, 0, "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVerifyDefault(t *testing.T) {
	out, err := run(t, "verify")
	require.NoError(t, err)
	assert.Equal(t, "tree ok: 11 nodes, 41 steps\ncodes ok: prefix-free, Kraft sum 1\n", out)
}

func TestShowPhase(t *testing.T) {
	out, err := run(t, "show", "--phase", "coding")
	require.NoError(t, err)
	assert.Contains(t, out, "[12/41] CODING: Start building the code for A.")
	assert.Contains(t, out, `leaf 1, partial code ""`)
}

func TestShowIndexWithListing(t *testing.T) {
	out, err := run(t, "show", "1", "--listing")
	require.NoError(t, err)
	assert.Contains(t, out, "[2/41] SELECTION:")
	assert.Contains(t, out, "* 19 | ")
	assert.Contains(t, out, "* 32 | ")
	assert.NotContains(t, out, "* 33 | ")
}

func TestShowOutOfRange(t *testing.T) {
	_, err := run(t, "show", "41")
	require.Error(t, err)
}

func TestCodesFromAlphabetFlag(t *testing.T) {
	out, err := run(t, "codes", "--alphabet", "A:1,B:1,C:2")
	require.NoError(t, err)
	assert.Contains(t, out, "weighted path length: 6\n")
	assert.Contains(t, out, "Symbol")
}

func TestCodesSingleSymbol(t *testing.T) {
	out, err := run(t, "codes", "-a", "Z:3")
	require.NoError(t, err)
	assert.Contains(t, out, "single symbol")
}

func TestEncodeDecode(t *testing.T) {
	out, err := run(t, "encode", "FACE", "--bits")
	require.NoError(t, err)
	assert.Equal(t,
		"0 1100 100 111\n64e0\n4 symbols, 11 bits (2.75 bits/symbol, fixed width 12 bits, 8.3% saved)\n",
		out)

	out, err = run(t, "decode", "64e0", "11")
	require.NoError(t, err)
	assert.Equal(t, "FACE\n", out)
}

// TestDecodeTruncated stops inside the code of E.
func TestDecodeTruncated(t *testing.T) {
	_, err := run(t, "decode", "64e0", "10")
	require.ErrorIs(t, err, codec.ErrCorruptStream)
}

func TestEncodeUnknownSymbol(t *testing.T) {
	_, err := run(t, "encode", "XYZ")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huffviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alphabet:\n  - {symbol: x, weight: 1}\n  - {symbol: y, weight: 1}\n"), 0o600))

	out, err := run(t, "verify", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "tree ok: 3 nodes, 9 steps\ncodes ok: prefix-free, Kraft sum 1\n", out)
}

func TestBadAlphabet(t *testing.T) {
	_, err := run(t, "steps", "--alphabet", "A:0")
	require.Error(t, err)
}

func TestParseInterval(t *testing.T) {
	d, err := parseInterval("750ms")
	require.NoError(t, err)
	assert.Equal(t, "750ms", d.String())

	d, err = parseInterval("250")
	require.NoError(t, err)
	assert.Equal(t, "250ms", d.String())

	for _, bad := range []string{"", "0", "-5ms", "soon"} {
		_, err := parseInterval(bad)
		assert.Error(t, err, bad)
	}
}
