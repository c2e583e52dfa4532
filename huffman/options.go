package huffman

import "go.uber.org/zap"

// Option customizes a Generate call by mutating its generatorConfig.
// Option constructors panic on nil arguments; Generate itself never panics.
type Option func(*generatorConfig)

// generatorConfig collects every knob of one Generate run.
type generatorConfig struct {
	narrator Narrator
	lines    LineRanges
	log      *zap.Logger
}

// newGeneratorConfig applies opts over the defaults, last option wins.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		narrator: EnglishNarrator{},
		lines:    DefaultLineRanges(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNarrator replaces the narration used for Step.Description.
func WithNarrator(n Narrator) Option {
	if n == nil {
		panic("huffman: WithNarrator(nil)")
	}
	return func(c *generatorConfig) {
		c.narrator = n
	}
}

// WithLineRanges points the emitted steps at a different reference listing.
func WithLineRanges(r LineRanges) Option {
	return func(c *generatorConfig) {
		c.lines = r
	}
}

// WithLogger attaches a logger that receives one debug entry per emitted
// step. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("huffman: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.log = l
	}
}
