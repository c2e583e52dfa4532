// Package config loads the visualizer input: the weighted alphabet and the
// playback interval, from YAML or from a compact "A:5,B:9" flag value.
//
//	alphabet:
//	  - symbol: A
//	    weight: 5
//	  - symbol: B
//	    weight: 9
//	playback:
//	  interval: 800ms
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/huffviz/huffman"
	"github.com/katalvlaran/huffviz/playback"
	"gopkg.in/yaml.v3"
)

// ErrBadAlphabet is returned by ParseAlphabet for malformed entries.
var ErrBadAlphabet = errors.New("config: malformed alphabet")

// Entry is one alphabet entry.
type Entry struct {
	Symbol string  `yaml:"symbol"`
	Weight float64 `yaml:"weight"`
}

// Playback holds the auto-advance settings.
type Playback struct {
	Interval time.Duration `yaml:"interval"`
}

// Config is the full visualizer configuration.
type Config struct {
	Alphabet []Entry `yaml:"alphabet"`
	Playback Playback `yaml:"playback"`
}

// Default returns the six-symbol textbook alphabet and the default interval.
func Default() Config {
	return Config{
		Alphabet: []Entry{
			{Symbol: "A", Weight: 5},
			{Symbol: "B", Weight: 9},
			{Symbol: "C", Weight: 12},
			{Symbol: "D", Weight: 13},
			{Symbol: "E", Weight: 16},
			{Symbol: "F", Weight: 45},
		},
		Playback: Playback{Interval: playback.DefaultInterval},
	}
}

// Parse decodes YAML. Omitted sections keep their defaults; weights are
// validated later by huffman.NewTable.
func Parse(data []byte) (Config, error) {
	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrap(err, "config: decode yaml")
	}
	cfg := Default()
	if len(raw.Alphabet) > 0 {
		cfg.Alphabet = raw.Alphabet
	}
	if raw.Playback.Interval < 0 {
		return Config{}, errors.Newf("config: negative playback interval %s", raw.Playback.Interval)
	}
	if raw.Playback.Interval > 0 {
		cfg.Playback.Interval = raw.Playback.Interval
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}
	return Parse(data)
}

// Symbols converts the alphabet into generator input.
func (c Config) Symbols() []huffman.WeightedSymbol {
	out := make([]huffman.WeightedSymbol, len(c.Alphabet))
	for i, e := range c.Alphabet {
		out[i] = huffman.WeightedSymbol{Symbol: e.Symbol, Weight: e.Weight}
	}
	return out
}

// ParseAlphabet reads "A:5,B:9,C:12". Whitespace around entries is ignored;
// the symbol is everything before the last colon, so ":" itself can be a
// symbol ("::3").
func ParseAlphabet(s string) ([]Entry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.Wrap(ErrBadAlphabet, "empty")
	}
	var out []Entry
	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		cut := strings.LastIndex(part, ":")
		if cut <= 0 {
			return nil, errors.Wrapf(ErrBadAlphabet, "entry %d %q: want symbol:weight", i, part)
		}
		w, err := strconv.ParseFloat(part[cut+1:], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrBadAlphabet, "entry %d %q: %v", i, part, err)
		}
		out = append(out, Entry{Symbol: part[:cut], Weight: w})
	}
	return out, nil
}
