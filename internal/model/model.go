package model

import (
	"maps"
	"slices"
)

// Model holds the global components inferred from a batch of documents.
// Local components hang off the global ones.
type Model struct {
	Elements   map[QName]*Element
	Types      map[QName]*Type
	Attributes map[QName]*Attribute
	Policy     Policy
}

// New returns an empty model that joins under p.
func New(p Policy) *Model {
	return &Model{
		Elements:   make(map[QName]*Element),
		Types:      make(map[QName]*Type),
		Attributes: make(map[QName]*Attribute),
		Policy:     p,
	}
}

// AddElement joins a global element declaration into m. m takes ownership of e.
func (m *Model) AddElement(e *Element) {
	e.Global = true
	if prev, ok := m.Elements[e.Name]; ok {
		m.Policy.JoinElement(prev, e)
		return
	}
	m.Elements[e.Name] = e
}

// AddType joins a global named type into m. m takes ownership of t.
func (m *Model) AddType(t *Type) {
	t.Global = true
	if prev, ok := m.Types[t.Name]; ok {
		m.Policy.JoinType(prev, t)
		return
	}
	m.Types[t.Name] = t
}

// AddAttribute joins a global attribute declaration into m. m takes
// ownership of a.
func (m *Model) AddAttribute(a *Attribute) {
	a.Global = true
	a.Optional = false
	if prev, ok := m.Attributes[a.Name]; ok {
		m.Policy.JoinAttribute(prev, a)
		return
	}
	m.Attributes[a.Name] = a
}

// Merge joins o into m. o is consumed and must not be used afterwards.
func (m *Model) Merge(o *Model) {
	if o == nil || o == m {
		return
	}
	for _, name := range sortedKeys(o.Elements) {
		m.AddElement(o.Elements[name])
	}
	for _, name := range sortedKeys(o.Types) {
		m.AddType(o.Types[name])
	}
	for _, name := range sortedKeys(o.Attributes) {
		m.AddAttribute(o.Attributes[name])
	}
}

// Join returns the join of a and b without modifying either. The policy of
// a is used.
func Join(a, b *Model) *Model {
	out := a.Clone()
	out.Merge(b.Clone())
	return out
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	c := New(m.Policy)
	for k, v := range m.Elements {
		c.Elements[k] = v.clone()
	}
	for k, v := range m.Types {
		c.Types[k] = v.clone()
	}
	for k, v := range m.Attributes {
		c.Attributes[k] = v.clone()
	}
	return c
}

// ElementNames returns the global element names in sorted order.
func (m *Model) ElementNames() []QName { return sortedKeys(m.Elements) }

// TypeNames returns the global type names in sorted order.
func (m *Model) TypeNames() []QName { return sortedKeys(m.Types) }

// AttributeNames returns the global attribute names in sorted order.
func (m *Model) AttributeNames() []QName { return sortedKeys(m.Attributes) }

func sortedKeys[V any](in map[QName]V) []QName {
	return slices.SortedFunc(maps.Keys(in), Compare)
}
