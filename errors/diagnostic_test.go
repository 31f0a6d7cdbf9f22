package errors

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestDiagnosticErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		d    Diagnostic
	}{
		{
			name: "message only",
			d:    Diagnostic{Code: "xml-parse-error", Message: "unexpected EOF"},
			want: "[xml-parse-error] unexpected EOF",
		},
		{
			name: "with document and path",
			d:    Diagnostic{Code: "lexical-malformed", Message: "bad int", Document: "a.xml", Path: "/root/n"},
			want: "[lexical-malformed] bad int in a.xml at /root/n",
		},
		{
			name: "with position and actual",
			d: Diagnostic{
				Code:    "lexical-unresolved-prefix",
				Message: "prefix not bound",
				Line:    3,
				Column:  7,
				Actual:  "p:x",
			},
			want: `[lexical-unresolved-prefix] prefix not bound (line 3, column 7) (actual: "p:x")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnosticListError(t *testing.T) {
	if got := (DiagnosticList{}).Error(); got != "no diagnostics" {
		t.Fatalf("empty list Error() = %q", got)
	}
	list := DiagnosticList{
		NewDiagnostic(ErrNoRoot, "missing root", ""),
		NewDiagnosticf(ErrXMLParse, "", "line %d", 2),
	}
	if got := list.Error(); got != "[xsd-no-root] missing root (and 1 more)" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestAsDiagnostics(t *testing.T) {
	list := DiagnosticList{NewDiagnostic(ErrSchemaRevalidation, "bad", "")}
	wrapped := fmt.Errorf("verify: %w", list)
	got, ok := AsDiagnostics(wrapped)
	if !ok || len(got) != 1 || got[0].Code != string(ErrSchemaRevalidation) {
		t.Fatalf("AsDiagnostics(wrapped list) = %v, %v", got, ok)
	}
	single := &Diagnostic{Code: string(ErrModelInvariant), Message: "x"}
	got, ok = AsDiagnostics(fmt.Errorf("infer: %w", single))
	if !ok || len(got) != 1 || got[0].Code != string(ErrModelInvariant) {
		t.Fatalf("AsDiagnostics(single) = %v, %v", got, ok)
	}
	if _, ok := AsDiagnostics(errors.New("plain")); ok {
		t.Fatal("plain error should not convert")
	}
	if _, ok := AsDiagnostics(nil); ok {
		t.Fatal("nil should not convert")
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	if c.Err() != nil || c.Diagnostics() != nil {
		t.Fatal("zero collector should be empty")
	}
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Report(NewDiagnosticf(ErrLexicalMalformed, "", "n=%d", i))
		}()
	}
	wg.Wait()
	if c.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", c.Len())
	}
	var list DiagnosticList
	if !errors.As(c.Err(), &list) || len(list) != 8 {
		t.Fatalf("Err() = %v", c.Err())
	}
}

func TestWithDocument(t *testing.T) {
	var c Collector
	sink := WithDocument(&c, "doc.xml")
	sink.Report(NewDiagnostic(ErrXMLParse, "a", ""))
	sink.Report(Diagnostic{Code: string(ErrXMLParse), Message: "b", Document: "other.xml"})
	Discard.Report(NewDiagnostic(ErrXMLParse, "c", ""))
	got := c.Diagnostics()
	if len(got) != 2 || got[0].Document != "doc.xml" || got[1].Document != "other.xml" {
		t.Fatalf("diagnostics = %+v", got)
	}
}

func TestTee(t *testing.T) {
	var a, b Collector
	sink := Tee(&a, nil, &b)
	sink.Report(NewDiagnostic(ErrNoRoot, "x", ""))
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("tee lengths = %d, %d", a.Len(), b.Len())
	}
}
