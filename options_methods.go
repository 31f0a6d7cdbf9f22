package inst2xsd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/jacoelho/xsd/pkg/xmlstream"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
	"github.com/jacoelho/inst2xsd/internal/merge"
	"github.com/jacoelho/inst2xsd/internal/model"
)

type resolvedOptions struct {
	logger       *slog.Logger
	sink         xsderrors.Sink
	parseOptions []xmlstream.Option
	merge        merge.Config
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithDesign sets the schema design style.
func (o Options) WithDesign(value Design) Options {
	o.design = value
	return o
}

// WithEnumerations sets the enumeration policy (default MaxDistinct(10)).
func (o Options) WithEnumerations(value Enumerations) Options {
	o.enumerations = value
	return o
}

// WithSimpleContent sets how literal text is typed.
func (o Options) WithSimpleContent(value SimpleContent) Options {
	o.simpleContent = value
	return o
}

// WithParticles sets how child elements are grouped.
func (o Options) WithParticles(value Particles) Options {
	o.particles = value
	return o
}

// WithWorkers sets the number of documents scanned in parallel (0 uses GOMAXPROCS).
func (o Options) WithWorkers(value int) Options {
	o.workers = intOption{value: value, set: true}
	return o
}

// WithLogger sets the logger for progress events. Without one the run is silent.
func (o Options) WithLogger(value *slog.Logger) Options {
	o.logger = value
	return o
}

// WithSink sets a sink that receives diagnostics as well as Result.Diagnostics.
func (o Options) WithSink(value xsderrors.Sink) Options {
	o.sink = value
	return o
}

// WithInstanceMaxDepth sets the instance XML max depth limit (0 uses default).
func (o Options) WithInstanceMaxDepth(value int) Options {
	o.instanceMaxDepth = intOption{value: value, set: true}
	return o
}

// WithInstanceMaxAttrs sets the instance XML max attributes limit (0 uses default).
func (o Options) WithInstanceMaxAttrs(value int) Options {
	o.instanceMaxAttrs = intOption{value: value, set: true}
	return o
}

// WithInstanceMaxTokenSize sets the instance XML max token size limit (0 uses default).
func (o Options) WithInstanceMaxTokenSize(value int) Options {
	o.instanceMaxTokenSize = intOption{value: value, set: true}
	return o
}

// Design returns the configured design style.
func (o Options) Design() Design { return o.design }

// Enumerations returns the configured enumeration policy.
func (o Options) Enumerations() Enumerations { return o.enumerations }

// SimpleContent returns the configured literal typing mode.
func (o Options) SimpleContent() SimpleContent { return o.simpleContent }

// Particles returns the configured particle grouping.
func (o Options) Particles() Particles { return o.particles }

func (o Options) withDefaults() (resolvedOptions, error) {
	if int(o.design) >= len(designNames) {
		return resolvedOptions{}, fmt.Errorf("unknown design %d", o.design)
	}
	if o.simpleContent > AlwaysString {
		return resolvedOptions{}, fmt.Errorf("unknown simple content mode %d", o.simpleContent)
	}
	if o.particles > Choice {
		return resolvedOptions{}, fmt.Errorf("unknown particle mode %d", o.particles)
	}
	if o.enumerations.Limit() < 0 {
		return resolvedOptions{}, fmt.Errorf("enumeration limit must be >= 0")
	}
	workers := o.workers.resolved()
	if workers < 0 {
		return resolvedOptions{}, fmt.Errorf("workers must be >= 0")
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	limits, err := resolveXMLParseLimits(
		o.instanceMaxDepth.resolved(),
		o.instanceMaxAttrs.resolved(),
		o.instanceMaxTokenSize.resolved(),
	)
	if err != nil {
		return resolvedOptions{}, fmt.Errorf("instance xml limits: %w", err)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sink := o.sink
	if sink == nil {
		sink = xsderrors.Discard
	}
	style := map[Design]merge.Style{
		RussianDoll:   merge.RussianDoll,
		SalamiSlice:   merge.SalamiSlice,
		VenetianBlind: merge.VenetianBlind,
	}[o.design]
	cfg := merge.Config{
		Logger:  logger,
		Policy:  model.Policy{MaxEnumeration: o.enumerations.Limit()},
		Workers: workers,
		Style:   style,
	}
	if o.simpleContent == AlwaysString {
		cfg.SimpleContent = merge.AlwaysString
	}
	if o.particles == Choice {
		cfg.Grouping = model.GroupChoice
	}
	return resolvedOptions{
		logger:       logger,
		sink:         sink,
		parseOptions: limits.options(),
		merge:        cfg,
	}, nil
}
