package inst2xsd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing/fstest"

	"github.com/jacoelho/xsd"
	validationerrors "github.com/jacoelho/xsd/errors"
	"github.com/jacoelho/xsd/pkg/xmlstream"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
)

// Verify validates every instance against the generated schemas, choosing
// the schema document by the namespace of the instance root. It returns nil
// when all of them are valid and a DiagnosticList of code
// schema-revalidation otherwise. With no instances the documents read by
// InferFiles are used.
func (r *Result) Verify(instances ...Instance) error {
	if len(instances) == 0 {
		instances = r.Inputs
	}
	fsys := make(fstest.MapFS, len(r.Schemas))
	for _, s := range r.Schemas {
		fsys[s.Location] = &fstest.MapFile{Data: s.Data}
	}
	loaded := make(map[string]*xsd.Schema)

	var list xsderrors.DiagnosticList
	fail := func(doc, format string, args ...any) {
		d := xsderrors.NewDiagnosticf(xsderrors.ErrSchemaRevalidation, "", format, args...)
		d.Document = doc
		list = append(list, d)
	}
	for _, in := range instances {
		ns, err := rootNamespace(in.Data)
		if err != nil {
			fail(in.Name, "read root element: %v", err)
			continue
		}
		doc, ok := r.Schema(ns)
		if !ok {
			fail(in.Name, "no schema for namespace %q", ns)
			continue
		}
		schema, ok := loaded[doc.Location]
		if !ok {
			schema, err = xsd.LoadWithOptions(fsys, doc.Location, xsd.NewLoadOptions())
			if err != nil {
				fail(in.Name, "load schema %s: %v", doc.Location, err)
				continue
			}
			loaded[doc.Location] = schema
		}
		if err := schema.Validate(bytes.NewReader(in.Data)); err != nil {
			list = append(list, revalidation(in.Name, err)...)
		}
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

func revalidation(doc string, err error) []xsderrors.Diagnostic {
	violations, ok := validationerrors.AsValidations(err)
	if !ok {
		return []xsderrors.Diagnostic{{
			Code:     string(xsderrors.ErrSchemaRevalidation),
			Message:  err.Error(),
			Document: doc,
		}}
	}
	out := make([]xsderrors.Diagnostic, 0, len(violations))
	for _, v := range violations {
		out = append(out, xsderrors.Diagnostic{
			Code:     string(xsderrors.ErrSchemaRevalidation),
			Message:  fmt.Sprintf("%s: %s", v.Code, v.Message),
			Document: doc,
			Path:     v.Path,
			Actual:   v.Actual,
			Line:     v.Line,
			Column:   v.Column,
		})
	}
	return out
}

// rootNamespace returns the namespace of the first element in data.
func rootNamespace(data []byte) (string, error) {
	reader, err := xmlstream.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	for {
		ev, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}
		if ev.Kind == xmlstream.EventStartElement {
			return ev.Name.Namespace, nil
		}
	}
}
