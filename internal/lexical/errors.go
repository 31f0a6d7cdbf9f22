package lexical

import "errors"

var (
	// ErrMalformed reports a literal outside the lexical space of the requested kind.
	ErrMalformed = errors.New("malformed literal")
	// ErrUnresolvedPrefix reports a QName literal whose prefix has no namespace binding.
	ErrUnresolvedPrefix = errors.New("unresolved QName prefix")
)

// NamespaceContext resolves prefixes in scope at the literal's element.
// An empty prefix asks for the default namespace.
type NamespaceContext interface {
	LookupNamespace(prefix string) (string, bool)
}

// NoNamespaces is a NamespaceContext with no bindings.
var NoNamespaces NamespaceContext = emptyContext{}

type emptyContext struct{}

func (emptyContext) LookupNamespace(string) (string, bool) { return "", false }

// MapContext is a NamespaceContext backed by a prefix to URI map.
type MapContext map[string]string

// LookupNamespace returns the binding for prefix.
func (m MapContext) LookupNamespace(prefix string) (string, bool) {
	uri, ok := m[prefix]
	return uri, ok
}
