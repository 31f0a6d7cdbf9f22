package model

// Attribute is an attribute declaration or use. Type is nil exactly when Ref
// is set, in which case the global Attribute with the same Name declares it.
type Attribute struct {
	Type     *Type
	Name     QName
	Ref      bool
	Global   bool
	Optional bool
}

// NewAttribute returns a local attribute use for one occurrence.
func NewAttribute(name QName, t *Type) *Attribute {
	return &Attribute{Name: name, Type: t}
}

// NewAttributeRef returns an attribute use referring to a global attribute.
func NewAttributeRef(name QName) *Attribute {
	return &Attribute{Name: name, Ref: true}
}

// NewGlobalAttribute returns a global attribute declaration.
func NewGlobalAttribute(name QName, t *Type) *Attribute {
	return &Attribute{Name: name, Type: t, Global: true}
}

func (a *Attribute) clone() *Attribute {
	if a == nil {
		return nil
	}
	c := *a
	c.Type = a.Type.clone()
	return &c
}
