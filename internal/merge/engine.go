package merge

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
	"github.com/jacoelho/inst2xsd/internal/model"
	"github.com/jacoelho/inst2xsd/pkg/instance"
)

// Engine infers a model from instance documents.
type Engine struct {
	logger *slog.Logger
	cfg    Config
}

// New returns an engine for cfg.
func New(cfg Config) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Scan returns the join of every occurrence in doc. Data problems go to sink.
func (e *Engine) Scan(doc *instance.Document, sink xsderrors.Sink) *model.Model {
	if sink == nil {
		sink = xsderrors.Discard
	}
	s := newScanner(e.cfg, xsderrors.WithDocument(sink, doc.Name))
	if doc.Root == nil {
		s.sink.Report(xsderrors.NewDiagnostic(xsderrors.ErrNoRoot, "document has no root element", ""))
		return s.m
	}
	start := time.Now()
	s.document(doc)
	e.logger.Debug("scanned document",
		slog.String("document", doc.Name),
		slog.Int("elements", s.elements),
		slog.Duration("elapsed", time.Since(start)))
	return s.m
}

// Run scans docs on a bounded worker pool and joins the partial models in
// input order. Diagnostics reach sink in input order as well. The returned
// model is finished.
func (e *Engine) Run(ctx context.Context, docs []*instance.Document, sink xsderrors.Sink) (*model.Model, error) {
	if sink == nil {
		sink = xsderrors.Discard
	}
	partials := make([]*model.Model, len(docs))
	reports := make([]xsderrors.Collector, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, doc := range docs {
		if doc == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[i] = e.Scan(doc, &reports[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}

	m := model.New(e.cfg.Policy)
	for i := range docs {
		if docs[i] == nil {
			sink.Report(xsderrors.NewDiagnostic(xsderrors.ErrNoRoot, fmt.Sprintf("document %d is nil", i), ""))
			continue
		}
		for _, d := range reports[i].Diagnostics() {
			sink.Report(d)
		}
		m.Merge(partials[i])
	}
	m.Finish(e.cfg.Grouping)
	return m, nil
}
