package trace

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/version"
)

const scopeName = "github.com/kbukum/seqkit/trace"

// Options configure a traced stage.
type Options struct {
	// Settings gate what the stage records. Zero value means fully
	// enabled metrics without per-pull logging.
	Settings config.TraceSettings
	// Logger receives per-pull lines when Settings.LogPulls is set.
	// Defaults to the global logger.
	Logger *logger.Logger
	// Meter builds the counters. Defaults to the global otel meter.
	Meter metric.Meter
	// ChainID correlates stages of one chain. Defaults to a fresh UUID
	// per Stage call; pass the same ID to every stage of a chain to
	// correlate them.
	ChainID string
}

// Option is a functional option for Stage.
type Option func(*Options)

// WithSettings gates the stage with loaded settings.
func WithSettings(s config.TraceSettings) Option {
	return func(o *Options) { o.Settings = s }
}

// WithLogger sets the logger for per-pull lines.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMeter sets the meter the counters are built on.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) { o.Meter = m }
}

// WithChainID sets an explicit chain correlation ID.
func WithChainID(id string) Option {
	return func(o *Options) { o.ChainID = id }
}

// NewChainID returns a fresh chain correlation ID.
func NewChainID() string { return uuid.NewString() }

// Stage wraps s with pull-level observability under the given stage name.
// Values pass through unchanged. With disabled settings the original node
// is returned as-is.
func Stage[T any](s *seq.Seq[T], name string, opts ...Option) *seq.Seq[T] {
	o := Options{Settings: config.TraceSettings{Enabled: true, Metrics: true}}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Settings.Enabled {
		return s
	}
	if o.ChainID == "" {
		o.ChainID = NewChainID()
	}

	st := &stageCursor[T]{
		source: s,
		attrs: metric.WithAttributes(
			attribute.String("stage", name),
			attribute.String("chain_id", o.ChainID),
		),
	}

	if o.Settings.Metrics {
		m := o.Meter
		if m == nil {
			m = otel.Meter(scopeName, metric.WithInstrumentationVersion(version.Get()))
		}
		st.pulls, st.yields, st.exhausted = buildCounters(m, o, name)
	}

	if o.Settings.LogPulls {
		lg := o.Logger
		if lg == nil {
			lg = logger.GetGlobalLogger()
		}
		st.log = lg.WithFields(map[string]any{
			logger.FieldStage:   name,
			logger.FieldChainID: o.ChainID,
		})
	}

	return seq.From[T](st)
}

func buildCounters(m metric.Meter, o Options, name string) (pulls, yields, exhausted metric.Int64Counter) {
	var err error
	pulls, err = m.Int64Counter("seqkit.pulls",
		metric.WithDescription("Pull requests received by the stage."))
	if err == nil {
		yields, err = m.Int64Counter("seqkit.yields",
			metric.WithDescription("Values yielded by the stage."))
	}
	if err == nil {
		exhausted, err = m.Int64Counter("seqkit.exhausted",
			metric.WithDescription("Exhaustions observed by the stage."))
	}
	if err != nil {
		lg := o.Logger
		if lg == nil {
			lg = logger.GetGlobalLogger()
		}
		lg.WithError(err).Warn("trace counters unavailable, stage continues unmetered",
			logger.Fields(logger.FieldStage, name))
		return nil, nil, nil
	}
	return pulls, yields, exhausted
}

type stageCursor[T any] struct {
	source    *seq.Seq[T]
	log       *logger.Logger
	pulls     metric.Int64Counter
	yields    metric.Int64Counter
	exhausted metric.Int64Counter
	attrs     metric.MeasurementOption
	doneSeen  bool
}

func (st *stageCursor[T]) Next() (T, bool) {
	ctx := context.Background()
	if st.pulls != nil {
		st.pulls.Add(ctx, 1, st.attrs)
	}
	v, ok := st.source.Next()
	switch {
	case ok:
		if st.yields != nil {
			st.yields.Add(ctx, 1, st.attrs)
		}
		if st.log != nil {
			st.log.Debug("yield")
		}
	case !st.doneSeen:
		// Count the first Done only; a capped downstream may keep pulling.
		st.doneSeen = true
		if st.exhausted != nil {
			st.exhausted.Add(ctx, 1, st.attrs)
		}
		if st.log != nil {
			st.log.Debug("exhausted")
		}
	}
	return v, ok
}
