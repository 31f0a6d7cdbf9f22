package model

import (
	"slices"

	"github.com/jacoelho/inst2xsd/internal/lexical"
	"github.com/jacoelho/inst2xsd/internal/value"
)

// Simple is the accumulated state of simple content: the joined kind of
// every literal seen and the distinct literals themselves, until there are
// too many of them.
type Simple struct {
	Enumeration       []string
	Kind              lexical.Kind
	BoolWords         bool
	EnumerationClosed bool
}

// EffectiveKind is the kind to declare. The words true and false are not
// numbers, so a boolean literal joined with a numeric kind becomes String.
func (s Simple) EffectiveKind() lexical.Kind {
	switch {
	case s.Kind == lexical.None:
		return lexical.String
	case s.BoolWords && s.Kind.Numeric():
		return lexical.String
	default:
		return s.Kind
	}
}

// HasEnumeration reports whether the literal set is still open and has at
// least one member.
func (s Simple) HasEnumeration() bool {
	return !s.EnumerationClosed && len(s.Enumeration) > 0
}

func (s *Simple) observe(literal string, kind lexical.Kind, p Policy) {
	s.Kind = lexical.Join(s.Kind, kind)
	if kind == lexical.Boolean {
		switch value.TrimXMLWhitespaceString(literal) {
		case "true", "false":
			s.BoolWords = true
		}
	}
	s.addLiterals([]string{literal}, p)
}

func (s *Simple) join(o Simple, p Policy) {
	s.Kind = lexical.Join(s.Kind, o.Kind)
	s.BoolWords = s.BoolWords || o.BoolWords
	if o.EnumerationClosed {
		s.close()
		return
	}
	s.addLiterals(o.Enumeration, p)
}

func (s *Simple) addLiterals(literals []string, p Policy) {
	if s.EnumerationClosed {
		return
	}
	for _, l := range literals {
		i, found := slices.BinarySearch(s.Enumeration, l)
		if !found {
			s.Enumeration = slices.Insert(s.Enumeration, i, l)
		}
	}
	if len(s.Enumeration) > p.MaxEnumeration {
		s.close()
	}
}

func (s *Simple) close() {
	s.EnumerationClosed = true
	s.Enumeration = nil
}

func (s Simple) clone() Simple {
	s.Enumeration = slices.Clone(s.Enumeration)
	return s
}
