package model

import (
	"github.com/jacoelho/inst2xsd/internal/lexical"
	"github.com/jacoelho/inst2xsd/internal/value"
)

// Content classifies what a Type allows inside its element.
type Content uint8

const (
	// SimpleSimple is text only.
	SimpleSimple Content = iota
	// ComplexSimple is attributes plus text, a simple-content extension.
	ComplexSimple
	// ComplexComplex is attributes plus child elements without significant text.
	ComplexComplex
	// ComplexMixed is child elements interleaved with significant text.
	ComplexMixed
)

func (c Content) String() string {
	switch c {
	case ComplexSimple:
		return "complex-simple"
	case ComplexComplex:
		return "complex-complex"
	case ComplexMixed:
		return "complex-mixed"
	default:
		return "simple-simple"
	}
}

// Particle is the model group of a type with child elements.
type Particle uint8

const (
	Sequence Particle = iota
	// UnboundedChoice is a choice repeated zero or more times.
	UnboundedChoice
)

func (p Particle) String() string {
	if p == UnboundedChoice {
		return "choice"
	}
	return "sequence"
}

// Unbounded is the MaxOccurs value for a repeating element.
const Unbounded = -1

// Policy holds the limits applied while joining.
type Policy struct {
	// MaxEnumeration is the number of distinct literals kept before an
	// enumeration is abandoned. Zero abandons every enumeration.
	MaxEnumeration int
}

// DefaultPolicy keeps up to ten distinct literals.
var DefaultPolicy = Policy{MaxEnumeration: 10}

type orderPair struct {
	before, after QName
}

// Type is a structural type candidate. The exported fields other than Name
// and Global are derived by Model.Finish from the observations joined so far.
type Type struct {
	ExtensionBase *Type

	children map[QName]*Element
	attrs    map[QName]*Attribute
	order    map[orderPair]struct{}

	Name       QName
	Elements   []*Element
	Attributes []*Attribute
	Simple     Simple
	Content    Content
	Particle   Particle
	Global     bool
	// every literal seen, kept whatever Content ends up being
	observed Simple
	sawText  bool
	// a child name reappeared after a different name within one occurrence
	interleaved bool
}

// NewType returns an empty type for one occurrence.
func NewType() *Type {
	return &Type{}
}

// NewSimpleType returns the type of one literal.
func NewSimpleType(literal string, kind lexical.Kind, p Policy) *Type {
	t := NewType()
	t.ObserveText(literal, kind, p)
	return t
}

// ObserveText records the text of an occurrence without child elements.
func (t *Type) ObserveText(literal string, kind lexical.Kind, p Policy) {
	t.observed.observe(literal, kind, p)
	if !value.IsBlank(literal) {
		t.sawText = true
	}
}

// ObserveMixedText records whether an occurrence with child elements carried
// non-whitespace text.
func (t *Type) ObserveMixedText(significant bool) {
	t.sawText = t.sawText || significant
}

// AddAttribute records an attribute use of this occurrence.
func (t *Type) AddAttribute(a *Attribute, p Policy) {
	if t.attrs == nil {
		t.attrs = make(map[QName]*Attribute)
	}
	if prev, ok := t.attrs[a.Name]; ok {
		p.JoinAttribute(prev, a)
		return
	}
	t.attrs[a.Name] = a
}

// AddChildren records the child element particles of one occurrence in
// document order. A name seen twice in a row becomes unbounded; a name that
// comes back after a different name marks the content as interleaved.
func (t *Type) AddChildren(kids []*Element, p Policy) {
	if len(kids) == 0 {
		return
	}
	if t.children == nil {
		t.children = make(map[QName]*Element, len(kids))
	}
	runs := make([]QName, 0, len(kids))
	for _, k := range kids {
		if n := len(runs); n == 0 || runs[n-1] != k.Name {
			runs = append(runs, k.Name)
		}
		if prev, ok := t.children[k.Name]; ok {
			p.JoinElement(prev, k)
			prev.MaxOccurs = Unbounded
			continue
		}
		t.children[k.Name] = k
	}
	seen := make(map[QName]bool, len(runs))
	for i, n := range runs {
		if seen[n] {
			t.interleaved = true
		}
		seen[n] = true
		for _, after := range runs[i+1:] {
			if after != n {
				t.addOrder(orderPair{before: n, after: after})
			}
		}
	}
}

func (t *Type) addOrder(pair orderPair) {
	if t.order == nil {
		t.order = make(map[orderPair]struct{})
	}
	t.order[pair] = struct{}{}
}

// Child returns the child particle named name.
func (t *Type) Child(name QName) (*Element, bool) {
	e, ok := t.children[name]
	return e, ok
}

// Attribute returns the attribute use named name.
func (t *Type) Attribute(name QName) (*Attribute, bool) {
	a, ok := t.attrs[name]
	return a, ok
}

func (t *Type) clone() *Type {
	if t == nil {
		return nil
	}
	c := &Type{
		Name:        t.Name,
		Global:      t.Global,
		observed:    t.observed.clone(),
		Simple:      t.Simple.clone(),
		Content:     t.Content,
		Particle:    t.Particle,
		sawText:     t.sawText,
		interleaved: t.interleaved,
	}
	if t.children != nil {
		c.children = make(map[QName]*Element, len(t.children))
		for k, v := range t.children {
			c.children[k] = v.clone()
		}
	}
	if t.attrs != nil {
		c.attrs = make(map[QName]*Attribute, len(t.attrs))
		for k, v := range t.attrs {
			c.attrs[k] = v.clone()
		}
	}
	if t.order != nil {
		c.order = make(map[orderPair]struct{}, len(t.order))
		for k := range t.order {
			c.order[k] = struct{}{}
		}
	}
	// derived fields are rebuilt by Finish
	return c
}
