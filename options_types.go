package inst2xsd

import (
	"fmt"
	"log/slog"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
)

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

// Design selects which schema components become global.
type Design uint8

const (
	// RussianDoll nests anonymous local types; only roots are global.
	RussianDoll Design = iota
	// SalamiSlice makes every element global and composes them by reference.
	SalamiSlice
	// VenetianBlind gives every element a global named type.
	VenetianBlind
)

var designNames = [...]string{
	RussianDoll:   "russian-doll",
	SalamiSlice:   "salami-slice",
	VenetianBlind: "venetian-blind",
}

func (d Design) String() string {
	if int(d) < len(designNames) {
		return designNames[d]
	}
	return fmt.Sprintf("design(%d)", d)
}

// ParseDesign returns the design named s.
func ParseDesign(s string) (Design, error) {
	for d, name := range designNames {
		if name == s {
			return Design(d), nil
		}
	}
	return 0, fmt.Errorf("unknown design %q", s)
}

// SimpleContent selects how literal text is typed.
type SimpleContent uint8

const (
	// PreferNarrowest types literals with the narrowest builtin accepting all of them.
	PreferNarrowest SimpleContent = iota
	// AlwaysString types every literal as xs:string.
	AlwaysString
)

func (s SimpleContent) String() string {
	if s == AlwaysString {
		return "string"
	}
	return "smart"
}

// ParseSimpleContent accepts "smart" and "string".
func ParseSimpleContent(s string) (SimpleContent, error) {
	switch s {
	case "smart":
		return PreferNarrowest, nil
	case "string":
		return AlwaysString, nil
	}
	return 0, fmt.Errorf("unknown simple content mode %q", s)
}

// Particles selects how child elements are grouped.
type Particles uint8

const (
	// Auto uses a sequence while children keep a consistent order.
	Auto Particles = iota
	// Choice always uses an unbounded choice.
	Choice
)

func (p Particles) String() string {
	if p == Choice {
		return "choice"
	}
	return "auto"
}

// ParseParticles accepts "auto" and "choice".
func ParseParticles(s string) (Particles, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "choice":
		return Choice, nil
	}
	return 0, fmt.Errorf("unknown particle mode %q", s)
}

// DefaultMaxDistinct is the enumeration limit used when none is set.
const DefaultMaxDistinct = 10

// Enumerations decides when the distinct literals of a simple type are
// emitted as an enumeration.
type Enumerations struct {
	limit int
	set   bool
}

// Never disables enumerations.
func Never() Enumerations {
	return Enumerations{set: true}
}

// MaxDistinct keeps an enumeration while it has at most n distinct values.
func MaxDistinct(n int) Enumerations {
	return Enumerations{limit: n, set: true}
}

// Limit returns the maximum number of distinct values, zero for Never.
func (e Enumerations) Limit() int {
	if !e.set {
		return DefaultMaxDistinct
	}
	return e.limit
}

func (e Enumerations) String() string {
	if e.Limit() == 0 {
		return "never"
	}
	return fmt.Sprintf("max-distinct(%d)", e.Limit())
}

// Options configures one inference run. The zero value is valid.
type Options struct {
	logger               *slog.Logger
	sink                 xsderrors.Sink
	enumerations         Enumerations
	workers              intOption
	instanceMaxDepth     intOption
	instanceMaxAttrs     intOption
	instanceMaxTokenSize intOption
	design               Design
	simpleContent        SimpleContent
	particles            Particles
}
