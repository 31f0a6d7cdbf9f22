package main

import (
	"io"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/jacoelho/inst2xsd"
	xsderrors "github.com/jacoelho/inst2xsd/errors"
)

type reportSchema struct {
	Namespace string `json:"namespace"`
	Path      string `json:"path"`
}

type report struct {
	Design       string                 `json:"design"`
	Schemas      []reportSchema         `json:"schemas"`
	Diagnostics  []xsderrors.Diagnostic `json:"diagnostics"`
	Revalidation []xsderrors.Diagnostic `json:"revalidation,omitempty"`
	Verified     bool                   `json:"verified"`
}

func newReport(s settings, res *inst2xsd.Result, revalidation []xsderrors.Diagnostic) report {
	r := report{
		Design:       s.Design,
		Schemas:      make([]reportSchema, 0, len(res.Schemas)),
		Diagnostics:  res.Diagnostics,
		Revalidation: revalidation,
		Verified:     s.Verify && len(revalidation) == 0,
	}
	if r.Diagnostics == nil {
		r.Diagnostics = []xsderrors.Diagnostic{}
	}
	for _, schema := range res.Schemas {
		r.Schemas = append(r.Schemas, reportSchema{
			Namespace: schema.Namespace,
			Path:      filepath.Join(s.OutDir, schema.Location),
		})
	}
	return r
}

func (r report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r report) writeText(stdout, stderr io.Writer) error {
	for _, d := range r.Diagnostics {
		if err := writeln(stderr, d.Error()); err != nil {
			return err
		}
	}
	for _, d := range r.Revalidation {
		if err := writeln(stderr, d.Error()); err != nil {
			return err
		}
	}
	for _, s := range r.Schemas {
		if err := writef(stdout, "wrote %s\n", s.Path); err != nil {
			return err
		}
	}
	if r.Verified {
		return writeln(stdout, "all inputs validate")
	}
	return nil
}
