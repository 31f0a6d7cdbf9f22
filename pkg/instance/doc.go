// Package instance reads XML instance documents into a small in-memory tree
// that keeps what schema inference needs: namespace-qualified names,
// attributes, direct character data, and the namespace bindings in scope at
// each element.
package instance
