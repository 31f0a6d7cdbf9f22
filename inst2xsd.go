// Package inst2xsd infers XML Schema documents from sample instance documents.
//
// Every input is scanned into a structural model, the models are joined into
// the least schema accepting all of them, and the result is written as one
// schema document per target namespace in the chosen design style.
package inst2xsd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
	"github.com/jacoelho/inst2xsd/internal/emit"
	"github.com/jacoelho/inst2xsd/internal/merge"
	"github.com/jacoelho/inst2xsd/internal/model"
	"github.com/jacoelho/inst2xsd/pkg/instance"
)

// ErrNoDocuments reports an inference run without any usable document.
var ErrNoDocuments = errors.New("no instance documents")

// Schema is one generated schema document. Location is the file name other
// generated documents import it by.
type Schema = emit.Document

// Instance is the raw text of an input document.
type Instance struct {
	Name string
	Data []byte
}

// Result is the outcome of an inference run.
type Result struct {
	// Schemas holds one document per target namespace, ordered by namespace.
	Schemas []Schema
	// Diagnostics holds the data problems met, in input order.
	Diagnostics []xsderrors.Diagnostic
	// Inputs holds the documents read by InferFiles.
	Inputs []Instance
}

// Schema returns the generated document for namespace ns.
func (r *Result) Schema(ns string) (Schema, bool) {
	for _, s := range r.Schemas {
		if s.Namespace == ns {
			return s, true
		}
	}
	return Schema{}, false
}

// WriteDir writes every schema document into dir, creating it if needed.
func (r *Result) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, s := range r.Schemas {
		path := filepath.Join(dir, s.Location)
		if err := os.WriteFile(path, s.Data, 0o644); err != nil {
			return fmt.Errorf("write schema %s: %w", path, err)
		}
	}
	return nil
}

// Infer infers schemas for docs. Data problems in the documents do not fail
// the run; they are returned in Result.Diagnostics. A broken model
// invariant fails the run with a DiagnosticList of code model-invariant.
func Infer(ctx context.Context, docs []*instance.Document, opts Options) (*Result, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	var collected xsderrors.Collector
	return infer(ctx, docs, resolved, &collected, xsderrors.Tee(&collected, resolved.sink))
}

// InferFiles reads and parses every path, then infers schemas for the
// documents that parsed. A file that cannot be read or parsed is reported
// with code xml-parse-error and skipped.
func InferFiles(ctx context.Context, paths []string, opts Options) (*Result, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	var collected xsderrors.Collector
	sink := xsderrors.Tee(&collected, resolved.sink)

	type parsed struct {
		doc   *instance.Document
		input Instance
		err   error
	}
	slots := make([]parsed, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolved.merge.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name := filepath.Base(path)
			data, err := os.ReadFile(path)
			if err != nil {
				slots[i].err = err
				return nil
			}
			doc, err := instance.ParseBytes(name, data, resolved.parseOptions...)
			slots[i] = parsed{doc: doc, input: Instance{Name: name, Data: data}, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	docs := make([]*instance.Document, 0, len(paths))
	inputs := make([]Instance, 0, len(paths))
	for i, p := range slots {
		if p.err != nil {
			sink.Report(xsderrors.Diagnostic{
				Code:     string(xsderrors.ErrXMLParse),
				Message:  p.err.Error(),
				Document: paths[i],
			})
			continue
		}
		docs = append(docs, p.doc)
		inputs = append(inputs, p.input)
	}
	if len(docs) == 0 {
		if err := collected.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoDocuments, err)
		}
		return nil, ErrNoDocuments
	}
	res, err := infer(ctx, docs, resolved, &collected, sink)
	if err != nil {
		return nil, err
	}
	res.Inputs = inputs
	return res, nil
}

// infer runs the pipeline. sink must forward to collected, whose contents
// become Result.Diagnostics.
func infer(ctx context.Context, docs []*instance.Document, r resolvedOptions, collected *xsderrors.Collector, sink xsderrors.Sink) (*Result, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	start := time.Now()

	m, err := merge.New(r.merge).Run(ctx, docs, sink)
	if err != nil {
		return nil, fmt.Errorf("infer: %w", err)
	}
	if err := m.Validate(); err != nil {
		var invariant *model.InvariantError
		if errors.As(err, &invariant) {
			return nil, fmt.Errorf("infer: %w", xsderrors.DiagnosticList{invariant.Diagnostic()})
		}
		return nil, fmt.Errorf("infer: %w", err)
	}
	schemas, err := emit.Documents(m)
	if err != nil {
		return nil, fmt.Errorf("infer: %w", err)
	}

	res := &Result{Schemas: schemas, Diagnostics: collected.Diagnostics()}
	r.logger.Info("inferred schemas",
		slog.Int("documents", len(docs)),
		slog.Int("schemas", len(schemas)),
		slog.Int("diagnostics", len(res.Diagnostics)),
		slog.String("design", r.merge.Style.String()),
		slog.Duration("elapsed", time.Since(start)))
	return res, nil
}
