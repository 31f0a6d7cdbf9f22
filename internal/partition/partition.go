package partition

import (
	"slices"
	"strings"

	"github.com/jacoelho/inst2xsd/internal/model"
)

// Partition holds the global components of one target namespace, each slice
// sorted by local name.
type Partition struct {
	Namespace  string
	Elements   []*model.Element
	Types      []*model.Type
	Attributes []*model.Attribute
}

// Split groups the global components of m by namespace. Partitions are
// ordered by namespace URI with the empty namespace first and none is empty.
func Split(m *model.Model) []*Partition {
	byNS := make(map[string]*Partition)
	get := func(ns string) *Partition {
		p, ok := byNS[ns]
		if !ok {
			p = &Partition{Namespace: ns}
			byNS[ns] = p
		}
		return p
	}
	for _, name := range m.ElementNames() {
		p := get(name.Namespace)
		p.Elements = append(p.Elements, m.Elements[name])
	}
	for _, name := range m.TypeNames() {
		p := get(name.Namespace)
		p.Types = append(p.Types, m.Types[name])
	}
	for _, name := range m.AttributeNames() {
		p := get(name.Namespace)
		p.Attributes = append(p.Attributes, m.Attributes[name])
	}
	out := make([]*Partition, 0, len(byNS))
	for _, p := range byNS {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *Partition) int {
		return strings.Compare(a.Namespace, b.Namespace)
	})
	return out
}

// Namespaces returns the namespace of every partition in order.
func Namespaces(parts []*Partition) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Namespace
	}
	return out
}
