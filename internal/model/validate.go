package model

import (
	"fmt"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
)

// InvariantError reports a structural defect in a finished model. It means
// the inference itself is wrong, not the input.
type InvariantError struct {
	Component string
	Message   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("model invariant violated at %s: %s", e.Component, e.Message)
}

// Diagnostic converts the error to the public diagnostic form.
func (e *InvariantError) Diagnostic() xsderrors.Diagnostic {
	return xsderrors.NewDiagnostic(xsderrors.ErrModelInvariant, e.Message, e.Component)
}

func invariant(component, format string, args ...any) *InvariantError {
	return &InvariantError{Component: component, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the invariants of a finished model and returns the first
// violation in name order.
func (m *Model) Validate() error {
	for _, name := range m.TypeNames() {
		t := m.Types[name]
		where := "type " + name.String()
		if !t.Global || t.Name.Local == "" {
			return invariant(where, "global type must be named")
		}
		if t.Name != name {
			return invariant(where, "registered under %s but named %s", name, t.Name)
		}
		if err := m.validateType(t, where); err != nil {
			return err
		}
	}
	for _, name := range m.ElementNames() {
		e := m.Elements[name]
		where := "element " + name.String()
		if !e.Global || e.Name != name {
			return invariant(where, "global element registered under a different name or not global")
		}
		if e.Ref {
			return invariant(where, "global element cannot be a reference")
		}
		if err := m.validateElement(e, where); err != nil {
			return err
		}
	}
	for _, name := range m.AttributeNames() {
		a := m.Attributes[name]
		where := "attribute " + name.String()
		if !a.Global || a.Name != name || a.Ref {
			return invariant(where, "global attribute must be a named declaration")
		}
		if err := m.validateAttribute(a, where); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) validateType(t *Type, where string) error {
	if !t.Global && !t.Name.IsZero() {
		return invariant(where, "local type carries a name")
	}
	switch t.Content {
	case SimpleSimple, ComplexSimple:
		if len(t.Elements) > 0 {
			return invariant(where, "simple content with child elements")
		}
	case ComplexComplex, ComplexMixed:
		if len(t.Simple.Enumeration) > 0 {
			return invariant(where, "enumeration on complex content")
		}
	}
	if (t.ExtensionBase != nil) != (t.Content == ComplexSimple) {
		return invariant(where, "extension base requires and is required by simple content with attributes")
	}
	if b := t.ExtensionBase; b != nil && (b.Content != SimpleSimple || len(b.Attributes) > 0) {
		return invariant(where, "extension base must be a simple type")
	}
	if t.Content == SimpleSimple && len(t.Attributes) > 0 {
		return invariant(where, "simple type with attributes")
	}
	seen := make(map[QName]bool, len(t.Elements))
	for _, e := range t.Elements {
		if seen[e.Name] {
			return invariant(where, "duplicate particle %s", e.Name)
		}
		seen[e.Name] = true
		if e.Global {
			return invariant(where, "particle %s marked global", e.Name)
		}
		if err := m.validateElement(e, where+"/"+e.Name.String()); err != nil {
			return err
		}
	}
	for _, a := range t.Attributes {
		if a.Global {
			return invariant(where, "attribute use %s marked global", a.Name)
		}
		if err := m.validateAttribute(a, where+"/@"+a.Name.String()); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) validateElement(e *Element, where string) error {
	forms := 0
	if e.Type != nil {
		forms++
	}
	if !e.TypeName.IsZero() {
		forms++
	}
	if e.Ref {
		forms++
	}
	if forms != 1 {
		return invariant(where, "element needs exactly one of type, type name or ref, has %d", forms)
	}
	if e.MinOccurs != 0 && e.MinOccurs != 1 {
		return invariant(where, "minOccurs %d", e.MinOccurs)
	}
	if e.MaxOccurs != 1 && e.MaxOccurs != Unbounded {
		return invariant(where, "maxOccurs %d", e.MaxOccurs)
	}
	if len(e.sources) > 0 && !e.Global {
		return invariant(where, "documentation on a local element")
	}
	switch {
	case e.Ref:
		if _, ok := m.Elements[e.Name]; !ok {
			return invariant(where, "ref to undeclared element %s", e.Name)
		}
	case !e.TypeName.IsZero():
		if _, ok := m.Types[e.TypeName]; !ok {
			return invariant(where, "type %s is not declared", e.TypeName)
		}
	default:
		if e.Type.Global {
			return invariant(where, "anonymous type marked global")
		}
		return m.validateType(e.Type, where)
	}
	return nil
}

func (m *Model) validateAttribute(a *Attribute, where string) error {
	if a.Ref {
		if a.Type != nil {
			return invariant(where, "attribute reference with its own type")
		}
		if _, ok := m.Attributes[a.Name]; !ok {
			return invariant(where, "ref to undeclared attribute %s", a.Name)
		}
		return nil
	}
	if a.Type == nil {
		return invariant(where, "attribute without type")
	}
	if a.Type.Content != SimpleSimple {
		return invariant(where, "attribute type must be simple, is %s", a.Type.Content)
	}
	return nil
}
