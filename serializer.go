package settingsexpr

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/settingsexpr/pkg/builder"
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/emitter"
	"github.com/dmitrymomot/settingsexpr/pkg/inspect"
	"github.com/dmitrymomot/settingsexpr/pkg/logger"
	"github.com/dmitrymomot/settingsexpr/pkg/render"
	"github.com/dmitrymomot/settingsexpr/pkg/walker"
)

// KeyValuePair is one serialized setting.
type KeyValuePair = emitter.KeyValuePair

// Expression is a configuration expression over the builder surface.
type Expression = builder.Expression

// Serializer turns configuration expressions into key/value pairs.
type Serializer struct {
	reg        *catalog.Registry
	coreModule string
	log        *slog.Logger

	emitter *emitter.Emitter
}

// New returns a serializer. Without WithRegistry it knows only the core
// vocabulary.
func New(opts ...Option) *Serializer {
	s := &Serializer{
		coreModule: catalog.CoreModule,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.reg == nil {
		s.reg = catalog.NewRegistry()
	}

	s.emitter = emitter.New(inspect.New(s.coreModule), render.New(s.reg))
	return s
}

// SerializeToKeyValuePairs evaluates expr and returns its settings in call
// order.
func (s *Serializer) SerializeToKeyValuePairs(expr Expression) ([]KeyValuePair, error) {
	return s.SerializeContext(context.Background(), expr)
}

// SerializeContext works like SerializeToKeyValuePairs and logs with ctx, so
// attributes extracted from it (see logger.WithContextValue) tag the run.
func (s *Serializer) SerializeContext(ctx context.Context, expr Expression) ([]KeyValuePair, error) {
	log := s.log.With(logger.RunID(uuid.NewString()))
	debug := log.Enabled(ctx, slog.LevelDebug)

	calls, err := walker.Walk(s.reg, expr)
	if err != nil {
		log.WarnContext(ctx, "configuration expression rejected", logger.Error(err))
		return nil, err
	}

	if debug {
		for _, call := range calls {
			log.DebugContext(ctx, "recorded call",
				logger.Category(call.Category.String()),
				logger.Method(call.Method.String()),
				logger.Module(call.Module()),
				logger.Count(len(call.Bindings)),
			)
		}
	}

	pairs, err := s.emitter.Emit(calls)
	if err != nil {
		log.WarnContext(ctx, "configuration expression not serializable", logger.Error(err))
		return nil, err
	}

	if debug {
		for _, p := range pairs {
			if module, ok := strings.CutPrefix(p.Key, emitter.UsingPrefix); ok {
				log.DebugContext(ctx, "module reference emitted", logger.Key(p.Key), logger.Module(module))
			}
		}
	}

	log.DebugContext(ctx, "configuration expression serialized", logger.Count(len(pairs)))
	return pairs, nil
}

// Pairs works like SerializeToKeyValuePairs but returns the result as a
// sequence of key/value strings. The sequence is fully computed before Pairs
// returns.
func (s *Serializer) Pairs(expr Expression) (iter.Seq2[string, string], error) {
	pairs, err := s.SerializeToKeyValuePairs(expr)
	if err != nil {
		return nil, err
	}
	return func(yield func(string, string) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}, nil
}

// Registry returns the registry the serializer resolves calls against.
func (s *Serializer) Registry() *catalog.Registry {
	return s.reg
}
