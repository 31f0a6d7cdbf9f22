package model

import (
	"maps"
	"slices"
)

// Grouping decides how child particles are grouped.
type Grouping uint8

const (
	// GroupAuto keeps a sequence while child order is consistent across all
	// occurrences and falls back to an unbounded choice otherwise.
	GroupAuto Grouping = iota
	// GroupChoice always uses an unbounded choice.
	GroupChoice
)

// Finish derives the exported shape of every type from its observations.
// It can be called again after further merges.
func (m *Model) Finish(g Grouping) {
	seen := make(map[*Type]bool)
	for _, name := range m.TypeNames() {
		finishType(m.Types[name], g, seen)
	}
	for _, name := range m.ElementNames() {
		finishType(m.Elements[name].Type, g, seen)
	}
	for _, name := range m.AttributeNames() {
		finishType(m.Attributes[name].Type, g, seen)
	}
}

func finishType(t *Type, g Grouping, seen map[*Type]bool) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true

	t.Attributes = slices.SortedFunc(maps.Values(t.attrs), func(a, b *Attribute) int {
		return Compare(a.Name, b.Name)
	})
	for _, a := range t.Attributes {
		finishType(a.Type, g, seen)
	}

	order, acyclic := t.childOrder()
	t.Elements = make([]*Element, 0, len(order))
	for _, name := range order {
		e := t.children[name]
		t.Elements = append(t.Elements, e)
		finishType(e.Type, g, seen)
	}

	t.ExtensionBase = nil
	t.Simple = Simple{}
	t.Particle = Sequence
	switch {
	case len(t.Elements) > 0:
		t.Content = ComplexComplex
		if t.sawText {
			t.Content = ComplexMixed
		}
		if g == GroupChoice || t.interleaved || !acyclic {
			t.Particle = UnboundedChoice
		}
	case len(t.Attributes) > 0:
		t.Content = ComplexSimple
		t.Simple = t.observed.clone()
		t.ExtensionBase = &Type{Content: SimpleSimple, Simple: t.observed.clone(), observed: t.observed.clone()}
	default:
		t.Content = SimpleSimple
		t.Simple = t.observed.clone()
	}
}

// childOrder returns the child names in a topological order of the observed
// precedence pairs, breaking ties by name. When the pairs contain a cycle the
// names are returned sorted and acyclic is false.
func (t *Type) childOrder() (order []QName, acyclic bool) {
	names := slices.SortedFunc(maps.Keys(t.children), Compare)
	if len(names) == 0 {
		return nil, true
	}
	indegree := make(map[QName]int, len(names))
	next := make(map[QName][]QName, len(names))
	for pair := range t.order {
		indegree[pair.after]++
		next[pair.before] = append(next[pair.before], pair.after)
	}
	var ready []QName
	for _, n := range names {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}
	order = make([]QName, 0, len(names))
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)
		for _, after := range next[n] {
			indegree[after]--
			if indegree[after] == 0 {
				i, _ := slices.BinarySearchFunc(ready, after, Compare)
				ready = slices.Insert(ready, i, after)
			}
		}
	}
	if len(order) != len(names) {
		return names, false
	}
	return order, true
}
