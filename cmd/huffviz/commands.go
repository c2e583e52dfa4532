package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/huffviz/codec"
	"github.com/katalvlaran/huffviz/huffman"
	"github.com/katalvlaran/huffviz/listing"
	"github.com/katalvlaran/huffviz/playback"
	"github.com/katalvlaran/huffviz/render"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showPhase    string
	showListing  bool
	playFrom     int
	playInterval string
	encodeBits   bool
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "list every step of the construction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _, err := buildSequence()
		if err != nil {
			return err
		}
		tbl := tablewriter.NewWriter(cmd.OutOrStdout())
		tbl.SetHeader([]string{"#", "Phase", "Highlighted", "Description"})
		tbl.SetAutoFormatHeaders(false)
		tbl.SetAutoWrapText(false)
		for i, s := range seq.Steps() {
			tbl.Append([]string{strconv.Itoa(i), s.Phase.String(), fmt.Sprint(s.Highlighted), s.Description})
		}
		tbl.Render()
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [index]",
	Short: "render one step (default: the first step of --phase, or step 0)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _, err := buildSequence()
		if err != nil {
			return err
		}
		p, err := playback.NewPlayer(seq, playback.WithLogger(logger.Named("playback")))
		if err != nil {
			return err
		}
		switch {
		case len(args) == 1:
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "bad step index %q", args[0])
			}
			if err := p.Seek(i); err != nil {
				return err
			}
		case showPhase != "":
			ph, err := huffman.ParsePhase(showPhase)
			if err != nil {
				return err
			}
			if !p.JumpTo(ph) {
				return errors.Newf("no %s step for this alphabet", ph)
			}
		}
		return showStep(cmd, p.Index(), seq.Len(), p.Current())
	},
}

func showStep(cmd *cobra.Command, i, total int, s huffman.Step) error {
	out := cmd.OutOrStdout()
	if err := render.Step(out, i, total, s); err != nil {
		return err
	}
	if showListing {
		return render.Listing(out, listing.Reference(), s.Lines)
	}
	return nil
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "auto-advance through the steps; interrupt to pause",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, cfg, err := buildSequence()
		if err != nil {
			return err
		}
		interval := cfg.Playback.Interval
		if playInterval != "" {
			if interval, err = parseInterval(playInterval); err != nil {
				return err
			}
		}
		p, err := playback.NewPlayer(seq,
			playback.WithInterval(interval),
			playback.WithLogger(logger.Named("playback")))
		if err != nil {
			return err
		}
		if err := p.Seek(playFrom); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := showStep(cmd, p.Index(), p.Len(), p.Current()); err != nil {
			return err
		}
		err = p.Play(ctx, func(i int, s huffman.Step) error {
			fmt.Fprintln(cmd.OutOrStdout())
			return showStep(cmd, i, p.Len(), s)
		})
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(cmd.OutOrStdout(), "paused at step %d; resume with --from %d\n", p.Index(), p.Index())
			return nil
		}
		return err
	},
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "print the final codes and the weighted path length",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _, err := buildSequence()
		if err != nil {
			return err
		}
		final := seq.Final()
		out := cmd.OutOrStdout()
		if seq.Leaves() == 1 {
			fmt.Fprintln(out, "single symbol: no code is produced by the construction")
			return nil
		}
		render.Codes(out, final)
		fmt.Fprintf(out, "weighted path length: %s\n", huffman.FormatWeight(huffman.WeightedPathLength(final.Nodes)))
		return nil
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode TEXT",
	Short: "encode TEXT (one symbol per character) with the final codes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _, err := buildSequence()
		if err != nil {
			return err
		}
		cb, err := codec.NewCodebook(seq)
		if err != nil {
			return err
		}
		msg := codec.Tokenize(args[0])
		var buf strings.Builder
		bits, err := cb.Encode(&buf, msg)
		if err != nil {
			return err
		}
		st, err := cb.Stats(msg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if encodeBits {
			var codes []string
			for _, sym := range msg {
				c, _ := cb.Code(sym)
				codes = append(codes, c)
			}
			fmt.Fprintln(out, strings.Join(codes, " "))
		}
		fmt.Fprintf(out, "%x\n", buf.String())
		fmt.Fprintf(out, "%d symbols, %d bits (%.2f bits/symbol, fixed width %d bits, %.1f%% saved)\n",
			st.Symbols, bits, st.AverageBits, st.FixedBits, 100*st.SpaceSavings)
		logger.Debug("encoded", zap.Int("bits", bits), zap.Int("bytes", buf.Len()))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode HEX NBITS",
	Short: "decode the first NBITS bits of HEX, as printed by encode",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _, err := buildSequence()
		if err != nil {
			return err
		}
		cb, err := codec.NewCodebook(seq)
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return errors.Wrapf(err, "bad hex input %q", args[0])
		}
		nbits, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "bad bit count %q", args[1])
		}
		if nbits > 8*len(data) {
			return errors.Newf("%d bits requested, input holds %d", nbits, 8*len(data))
		}
		msg, err := cb.Decode(bytes.NewReader(data), nbits)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(msg, ""))
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "check tree weights, prefix property, Kraft sum and step count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _, err := buildSequence()
		if err != nil {
			return err
		}
		final := seq.Final()
		if err := huffman.Validate(final.Nodes); err != nil {
			return err
		}
		leafCodes := seq.LeafCodes()
		codes := make([]string, 0, len(leafCodes))
		for _, c := range leafCodes {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		if !huffman.IsPrefixFree(codes) {
			return errors.Newf("codes are not prefix-free: %v", codes)
		}
		if want := huffman.ExpectedSteps(huffman.Depths(final.Nodes)); want != seq.Len() {
			return errors.Newf("sequence has %d steps, expected %d", seq.Len(), want)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tree ok: %d nodes, %d steps\n", len(final.Nodes), seq.Len())
		if len(codes) > 0 {
			fmt.Fprintf(out, "codes ok: prefix-free, Kraft sum %g\n", huffman.KraftSum(codes))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(
		&showPhase, "phase", "p", "", "jump to the first step of a phase (selection, merging, coding)")
	for _, cmd := range []*cobra.Command{showCmd, playCmd} {
		cmd.Flags().BoolVarP(
			&showListing, "listing", "l", false, "also print the highlighted reference listing section")
	}
	playCmd.Flags().IntVar(
		&playFrom, "from", 0, "step index to start from")
	playCmd.Flags().StringVarP(
		&playInterval, "interval", "i", "", "delay between steps, e.g. 500ms (default from config)")
	encodeCmd.Flags().BoolVar(
		&encodeBits, "bits", false, "also print the code of every symbol")
}
