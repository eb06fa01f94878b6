package markov

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// Generator walks a Model to produce text. It owns a random source that is
// seeded once at construction, so successive draws are never correlated by
// reseeding. A Generator is not safe for concurrent use; create one per
// goroutine over the same shared Model.
type Generator struct {
	model  *Model
	rng    *rand.Rand
	logger *slog.Logger
}

// GeneratorOption configures a Generator created by NewGenerator.
type GeneratorOption func(*Generator)

// WithSeed seeds the Generator's source with a fixed value, making its
// output reproducible for a given model.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithSource makes the Generator draw from src instead of its own PCG source.
func WithSource(src rand.Source) GeneratorOption {
	return func(g *Generator) {
		if src != nil {
			g.rng = rand.New(src)
		}
	}
}

// NewGenerator creates a Generator over model. Unless WithSeed or WithSource
// is given, the source is a PCG seeded from the runtime's random state.
func NewGenerator(model *Model, opts ...GeneratorOption) *Generator {
	g := &Generator{
		model:  model,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Model returns the model the Generator samples from.
func (g *Generator) Model() *Model {
	return g.model
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}
