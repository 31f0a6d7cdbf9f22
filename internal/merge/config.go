package merge

import (
	"log/slog"

	"github.com/jacoelho/inst2xsd/internal/model"
)

// Style selects how components are keyed, and so which of them become global.
type Style uint8

const (
	// RussianDoll nests anonymous local types under their parents. Only
	// document roots and elements from a foreign namespace are global.
	RussianDoll Style = iota
	// SalamiSlice makes every element global and composes them by reference.
	SalamiSlice
	// VenetianBlind gives every element QName a global named type.
	VenetianBlind
)

func (s Style) String() string {
	switch s {
	case SalamiSlice:
		return "salami-slice"
	case VenetianBlind:
		return "venetian-blind"
	default:
		return "russian-doll"
	}
}

// SimpleContent selects how literals are typed.
type SimpleContent uint8

const (
	// PreferNarrowest assigns the narrowest kind that accepts every literal.
	PreferNarrowest SimpleContent = iota
	// AlwaysString types every literal as xs:string.
	AlwaysString
)

// Config controls one inference pass.
type Config struct {
	Logger        *slog.Logger
	Policy        model.Policy
	Workers       int
	Style         Style
	SimpleContent SimpleContent
	Grouping      model.Grouping
}

// TypeName is the global type name used for an element under VenetianBlind.
func TypeName(element model.QName) model.QName {
	return model.QName{Namespace: element.Namespace, Local: element.Local + "Type"}
}
