package emit

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/jacoelho/inst2xsd/internal/lexical"
	"github.com/jacoelho/inst2xsd/internal/model"
	"github.com/jacoelho/inst2xsd/internal/partition"
	"github.com/jacoelho/xsd/pkg/xmlstream"
)

// Document is one serialized schema file.
type Document struct {
	// Namespace is the target namespace, empty for no namespace.
	Namespace string
	// Location is the file name other documents import this one by.
	Location string
	Data     []byte
}

// Location returns the file name of the i-th schema document.
func Location(i int) string {
	return fmt.Sprintf("schema%d.xsd", i)
}

// Documents serializes m as one schema document per target namespace, in
// namespace order. m must have been finished.
func Documents(m *model.Model) ([]Document, error) {
	parts := partition.Split(view(m))
	locations := make(map[string]string, len(parts))
	for i, ns := range partition.Namespaces(parts) {
		locations[ns] = Location(i)
	}
	out := make([]Document, 0, len(parts))
	for _, p := range parts {
		w := newSchemaWriter(m, p)
		w.components()
		data, err := w.encode(locations)
		if err != nil {
			return nil, fmt.Errorf("emit schema for namespace %q: %w", p.Namespace, err)
		}
		out = append(out, Document{Namespace: p.Namespace, Location: locations[p.Namespace], Data: data})
	}
	return out, nil
}

// view drops the named types that every reference inlines as a builtin.
func view(m *model.Model) *model.Model {
	v := model.New(m.Policy)
	for name, e := range m.Elements {
		v.Elements[name] = e
	}
	for name, a := range m.Attributes {
		v.Attributes[name] = a
	}
	for name, t := range m.Types {
		if !inlined(t) {
			v.Types[name] = t
		}
	}
	return v
}

// inlined reports whether t is written as a builtin type reference.
func inlined(t *model.Type) bool {
	return t.Content == model.SimpleSimple && !enumerates(t.Simple)
}

// enumerates reports whether s is written as an enumeration facet set.
// QName literals are not enumerated since their prefixes are bound in the
// instance, not in the schema.
func enumerates(s model.Simple) bool {
	return s.HasEnumeration() && len(s.Enumeration) > 1 && s.EffectiveKind() != lexical.QName
}

func (w *schemaWriter) encode(locations map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xsName("schema"), Attr: w.schemaAttrs()}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	for _, ns := range w.imports() {
		loc, ok := locations[ns]
		if !ok {
			return nil, fmt.Errorf("no schema document for imported namespace %q", ns)
		}
		attrs := make([]xml.Attr, 0, 2)
		if ns != "" {
			attrs = append(attrs, attr("namespace", ns))
		}
		attrs = append(attrs, attr("schemaLocation", loc))
		if err := encodeEmpty(enc, "import", attrs); err != nil {
			return nil, err
		}
	}
	for _, tok := range w.tokens {
		if err := enc.EncodeToken(tok); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeEmpty(enc *xml.Encoder, local string, attrs []xml.Attr) error {
	start := xml.StartElement{Name: xsName(local), Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// The xml prefix is bound in every document and must not be declared.
func predeclared(ns string) bool {
	return ns == xmlstream.XMLNamespace
}
