package emit

import (
	"encoding/xml"
	"slices"
	"strconv"
	"strings"

	"github.com/jacoelho/inst2xsd/internal/model"
	"github.com/jacoelho/inst2xsd/internal/partition"
	"github.com/jacoelho/xsd/pkg/xmlstream"
)

const (
	xsPrefix  = "xs"
	tnsPrefix = "tns"
)

type valueType struct {
	name   string
	simple model.Simple
}

// schemaWriter renders the components of one partition into a token stream.
// Namespace declarations and imports depend on what the components refer
// to, so they are written after the body has been rendered.
type schemaWriter struct {
	m        *model.Model
	part     *partition.Partition
	target   string
	prefixes map[string]string
	used     map[string]bool
	taken    map[string]bool
	pending  []valueType
	tokens   []xml.Token
}

func newSchemaWriter(m *model.Model, p *partition.Partition) *schemaWriter {
	w := &schemaWriter{
		m:        m,
		part:     p,
		target:   p.Namespace,
		prefixes: make(map[string]string),
		used:     make(map[string]bool),
		taken:    make(map[string]bool, len(p.Types)),
	}
	for _, t := range p.Types {
		w.taken[t.Name.Local] = true
	}
	return w
}

func xsName(local string) xml.Name {
	return xml.Name{Local: xsPrefix + ":" + local}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (w *schemaWriter) start(local string, attrs ...xml.Attr) {
	w.tokens = append(w.tokens, xml.StartElement{Name: xsName(local), Attr: attrs})
}

func (w *schemaWriter) end(local string) {
	w.tokens = append(w.tokens, xml.EndElement{Name: xsName(local)})
}

func (w *schemaWriter) empty(local string, attrs ...xml.Attr) {
	w.start(local, attrs...)
	w.end(local)
}

func (w *schemaWriter) text(s string) {
	w.tokens = append(w.tokens, xml.CharData(s))
}

// qname renders a reference to a global component and records the
// namespace it needs.
func (w *schemaWriter) qname(q model.QName) string {
	switch {
	case q.Namespace == xmlstream.XSDNamespace:
		return xsPrefix + ":" + q.Local
	case predeclared(q.Namespace):
		if q.Namespace != w.target {
			w.used[q.Namespace] = true
		}
		return "xml:" + q.Local
	case q.Namespace == w.target:
		if q.Namespace == "" {
			return q.Local
		}
		return tnsPrefix + ":" + q.Local
	case q.Namespace == "":
		w.used[""] = true
		return q.Local
	}
	w.used[q.Namespace] = true
	p, ok := w.prefixes[q.Namespace]
	if !ok {
		p = "ns" + strconv.Itoa(len(w.prefixes)+1)
		w.prefixes[q.Namespace] = p
	}
	return p + ":" + q.Local
}

func (w *schemaWriter) builtin(s model.Simple) string {
	return xsPrefix + ":" + s.EffectiveKind().String()
}

func (w *schemaWriter) schemaAttrs() []xml.Attr {
	attrs := []xml.Attr{attr("xmlns:"+xsPrefix, xmlstream.XSDNamespace)}
	if w.target != "" && !predeclared(w.target) {
		attrs = append(attrs, attr("xmlns:"+tnsPrefix, w.target))
	}
	namespaces := make([]string, 0, len(w.prefixes))
	for ns := range w.prefixes {
		namespaces = append(namespaces, ns)
	}
	slices.SortFunc(namespaces, func(a, b string) int {
		return compareNumbered(w.prefixes[a], w.prefixes[b])
	})
	for _, ns := range namespaces {
		attrs = append(attrs, attr("xmlns:"+w.prefixes[ns], ns))
	}
	if w.target != "" {
		attrs = append(attrs, attr("targetNamespace", w.target))
	}
	return append(attrs, attr("elementFormDefault", "qualified"))
}

// compareNumbered orders ns1, ns2, ..., ns10 numerically.
func compareNumbered(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

func (w *schemaWriter) imports() []string {
	out := make([]string, 0, len(w.used))
	for ns := range w.used {
		out = append(out, ns)
	}
	slices.Sort(out)
	return out
}

// reserve returns an unused global type name derived from hint.
func (w *schemaWriter) reserve(hint string) string {
	base := hint + "Value"
	name := base
	for i := 2; w.taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	w.taken[name] = true
	return name
}

func (w *schemaWriter) components() {
	for _, e := range w.part.Elements {
		w.element(e, false)
	}
	for _, t := range w.part.Types {
		w.namedType(t)
	}
	for _, a := range w.part.Attributes {
		w.attribute(a)
	}
	for i := 0; i < len(w.pending); i++ {
		v := w.pending[i]
		w.simpleType(v.name, v.simple)
	}
}
