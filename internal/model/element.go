package model

import (
	"slices"
	"strings"
)

// Element is an element declaration or particle. Exactly one of Type,
// TypeName and Ref is set.
type Element struct {
	// Type is an owned anonymous type.
	Type *Type
	// sources are the documents in which a global element was the root.
	sources []string

	Name QName
	// TypeName refers to a global Type.
	TypeName QName
	// Ref refers to the global Element with the same Name.
	Ref       bool
	Global    bool
	MinOccurs int
	MaxOccurs int
}

// NewLocal returns a particle for one occurrence with an anonymous type.
func NewLocal(name QName, t *Type) *Element {
	return &Element{Name: name, Type: t, MinOccurs: 1, MaxOccurs: 1}
}

// NewTyped returns a particle for one occurrence that uses a global type.
func NewTyped(name, typeName QName) *Element {
	return &Element{Name: name, TypeName: typeName, MinOccurs: 1, MaxOccurs: 1}
}

// NewRef returns a particle for one occurrence that refers to a global element.
func NewRef(name QName) *Element {
	return &Element{Name: name, Ref: true, MinOccurs: 1, MaxOccurs: 1}
}

// NewGlobal returns a global element declaration. t is nil when typeName
// names a global Type.
func NewGlobal(name QName, t *Type, typeName QName) *Element {
	return &Element{Name: name, Type: t, TypeName: typeName, Global: true, MinOccurs: 1, MaxOccurs: 1}
}

// AddSource records a document whose root is this element.
func (e *Element) AddSource(name string) {
	i, found := slices.BinarySearch(e.sources, name)
	if !found {
		e.sources = slices.Insert(e.sources, i, name)
	}
}

// Sources returns the sorted names of documents rooted at this element.
func (e *Element) Sources() []string {
	return slices.Clone(e.sources)
}

// Documentation describes where a global root element was seen.
func (e *Element) Documentation() (string, bool) {
	if len(e.sources) == 0 {
		return "", false
	}
	return "Inferred from " + strings.Join(e.sources, ", "), true
}

// Repeats reports whether the element may occur more than once.
func (e *Element) Repeats() bool {
	return e.MaxOccurs == Unbounded
}

func (e *Element) clone() *Element {
	if e == nil {
		return nil
	}
	c := *e
	c.Type = e.Type.clone()
	c.sources = slices.Clone(e.sources)
	return &c
}
