package model

import (
	"fmt"
	"strings"
)

// String renders a finished model deterministically, one component per line.
func (m *Model) String() string {
	var b strings.Builder
	for _, name := range m.ElementNames() {
		writeElement(&b, m.Elements[name], 0)
	}
	for _, name := range m.TypeNames() {
		fmt.Fprintf(&b, "type %s\n", name)
		writeType(&b, m.Types[name], 1)
	}
	for _, name := range m.AttributeNames() {
		writeAttribute(&b, m.Attributes[name], 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
}

func writeElement(b *strings.Builder, e *Element, depth int) {
	indent(b, depth)
	maxOccurs := "1"
	if e.Repeats() {
		maxOccurs = "unbounded"
	}
	fmt.Fprintf(b, "element %s [%d..%s]", e.Name, e.MinOccurs, maxOccurs)
	if e.Global {
		b.WriteString(" global")
	}
	if doc, ok := e.Documentation(); ok {
		fmt.Fprintf(b, " doc=%q", doc)
	}
	switch {
	case e.Ref:
		b.WriteString(" ref\n")
	case !e.TypeName.IsZero():
		fmt.Fprintf(b, " type=%s\n", e.TypeName)
	default:
		b.WriteByte('\n')
		writeType(b, e.Type, depth+1)
	}
}

func writeType(b *strings.Builder, t *Type, depth int) {
	if t == nil {
		return
	}
	indent(b, depth)
	fmt.Fprintf(b, "%s", t.Content)
	switch t.Content {
	case ComplexComplex, ComplexMixed:
		fmt.Fprintf(b, " %s\n", t.Particle)
	default:
		s := t.Simple
		fmt.Fprintf(b, " %s", s.EffectiveKind())
		if s.HasEnumeration() {
			fmt.Fprintf(b, " enum=%q", s.Enumeration)
		}
		if s.EnumerationClosed {
			b.WriteString(" closed")
		}
		b.WriteByte('\n')
	}
	for _, a := range t.Attributes {
		writeAttribute(b, a, depth+1)
	}
	for _, e := range t.Elements {
		writeElement(b, e, depth+1)
	}
}

func writeAttribute(b *strings.Builder, a *Attribute, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "attribute %s", a.Name)
	if a.Global {
		b.WriteString(" global")
	}
	if a.Optional {
		b.WriteString(" optional")
	}
	if a.Ref {
		b.WriteString(" ref\n")
		return
	}
	b.WriteByte('\n')
	writeType(b, a.Type, depth+1)
}
