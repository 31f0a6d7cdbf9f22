package instance

import (
	"strconv"
	"strings"

	"github.com/jacoelho/xsd/pkg/xmlstream"

	"github.com/jacoelho/inst2xsd/internal/value"
)

// Name is a namespace-qualified XML name.
type Name struct {
	Namespace string
	Local     string
}

// String renders the name in {namespace}local notation.
func (n Name) String() string {
	if n.Namespace == "" {
		return n.Local
	}
	return "{" + n.Namespace + "}" + n.Local
}

// Less orders names by namespace, then local name.
func (n Name) Less(o Name) bool {
	if n.Namespace != o.Namespace {
		return n.Namespace < o.Namespace
	}
	return n.Local < o.Local
}

// Attr is an attribute on an element. Namespace declarations are not kept
// as attributes.
type Attr struct {
	Name  Name
	Value string
}

// IsXSI reports whether the attribute is in the XML Schema instance namespace.
func (a Attr) IsXSI() bool {
	return a.Name.Namespace == xmlstream.XSINamespace
}

// Element is a node of the instance tree.
type Element struct {
	parent   *Element
	decls    map[string]string
	Name     Name
	Text     string
	Attrs    []Attr
	Children []*Element
	Line     int
	Column   int
}

// Parent returns the enclosing element, or nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// LookupNamespace resolves prefix against the declarations in scope at e.
// The empty prefix resolves the default namespace and the xml prefix is
// always bound.
func (e *Element) LookupNamespace(prefix string) (string, bool) {
	if prefix == "xml" {
		return xmlstream.XMLNamespace, true
	}
	for cur := e; cur != nil; cur = cur.parent {
		if uri, ok := cur.decls[prefix]; ok {
			if uri == "" && prefix != "" {
				return "", false
			}
			return uri, true
		}
	}
	if prefix == "" {
		return "", true
	}
	return "", false
}

// Declarations returns the namespace declarations made on e itself, keyed by
// prefix with "" for the default namespace.
func (e *Element) Declarations() map[string]string {
	out := make(map[string]string, len(e.decls))
	for k, v := range e.decls {
		out[k] = v
	}
	return out
}

// HasText reports whether the direct character data contains anything other
// than XML whitespace.
func (e *Element) HasText() bool {
	return !value.IsBlank(e.Text)
}

// Attr returns the value of the attribute with the given name.
func (e *Element) Attr(name Name) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Path returns an XPath-like location such as /order/item[2].
// Positions are counted among siblings with the same name and omitted when
// the name occurs once.
func (e *Element) Path() string {
	var parts []string
	for cur := e; cur != nil; cur = cur.parent {
		step := cur.Name.Local
		if p := cur.parent; p != nil {
			pos, count := 0, 0
			for _, sib := range p.Children {
				if sib.Name == cur.Name {
					count++
					if sib == cur {
						pos = count
					}
				}
			}
			if count > 1 {
				step += "[" + strconv.Itoa(pos) + "]"
			}
		}
		parts = append(parts, step)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// Walk calls fn for e and every descendant in document order. Returning
// false from fn skips that element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		child.Walk(fn)
	}
}
