package model

import "strings"

// QName is a namespace-qualified component name.
type QName struct {
	Namespace string
	Local     string
}

// IsZero reports whether q has no local name.
func (q QName) IsZero() bool {
	return q.Local == "" && q.Namespace == ""
}

// String renders q in {namespace}local notation.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

// Compare orders names by namespace, then local name.
func Compare(a, b QName) int {
	if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return strings.Compare(a.Local, b.Local)
}
