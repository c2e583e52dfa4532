// Command huffviz steps through the construction of a Huffman tree in the
// terminal.
//
//	huffviz steps                      list every step
//	huffviz show 7                     render one step with its listing section
//	huffviz play --interval 500ms      auto-advance until the end (Ctrl-C pauses)
//	huffviz codes                      print the final codes and statistics
//	huffviz encode FACADE              pack a message with the final codes
//	huffviz decode 64e0 11             unpack 11 bits of hex input (FACE)
//	huffviz verify                     check the tree and code invariants
//
// The alphabet comes from --alphabet "A:5,B:9", else from --config FILE, else
// the built-in default.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/huffviz/config"
	"github.com/katalvlaran/huffviz/huffman"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	alphabet   string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "huffviz [command] (flags)",
	Short:         "step-by-step Huffman tree construction",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// loadConfig resolves the configuration from the flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}
	if alphabet != "" {
		entries, err := config.ParseAlphabet(alphabet)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Alphabet = entries
	}
	return cfg, nil
}

// buildSequence loads the configuration and generates the steps.
func buildSequence() (*huffman.Sequence, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	seq, err := huffman.Build(cfg.Symbols(), huffman.WithLogger(logger.Named("huffman")))
	if err != nil {
		if huffman.IsConfigurationError(err) {
			return nil, config.Config{}, errors.WithHint(err, "weights must be positive numbers and the alphabet non-empty")
		}
		return nil, config.Config{}, err
	}
	logger.Debug("sequence ready", zap.Int("steps", seq.Len()), zap.Int("leaves", seq.Leaves()))
	return seq, cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "", "YAML file with the alphabet and playback settings")
	rootCmd.PersistentFlags().StringVarP(
		&alphabet, "alphabet", "a", "", `alphabet as "symbol:weight,..." (overrides --config)`)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging")

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		stepsCmd,
		showCmd,
		playCmd,
		codesCmd,
		encodeCmd,
		decodeCmd,
		verifyCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "huffviz:", err)
		for _, h := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "hint:", h)
		}
		os.Exit(1)
	}
}
