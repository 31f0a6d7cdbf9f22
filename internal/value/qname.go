package value

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrQNameSyntax reports a lexical QName that is not prefix:local or local.
var ErrQNameSyntax = errors.New("invalid QName")

// SplitQName splits a lexical QName on its first colon. Both parts must be
// NCNames and the xmlns prefix is reserved.
func SplitQName(lexical string) (prefix, local string, hasPrefix bool, err error) {
	prefix, local, hasPrefix = strings.Cut(lexical, ":")
	if !hasPrefix {
		prefix, local = "", lexical
	}
	switch {
	case hasPrefix && prefix == "xmlns":
		err = errors.New("prefix xmlns is reserved")
	case hasPrefix:
		if err = ValidateNCName(prefix); err != nil {
			err = fmt.Errorf("prefix: %w", err)
		} else if err = ValidateNCName(local); err != nil {
			err = fmt.Errorf("local part: %w", err)
		}
	default:
		err = ValidateNCName(local)
	}
	if err != nil {
		return "", "", false, fmt.Errorf("%w %q: %w", ErrQNameSyntax, lexical, err)
	}
	return prefix, local, hasPrefix, nil
}

// ValidateNCName checks s against the XML 1.0 fifth edition NCName
// production.
func ValidateNCName(s string) error {
	if s == "" {
		return errors.New("empty NCName")
	}
	if !utf8.ValidString(s) {
		return errors.New("NCName is not valid UTF-8")
	}
	for i, r := range s {
		switch {
		case r == ':':
			return fmt.Errorf("colon at offset %d", i)
		case unicode.Is(nameStart, r):
		case i > 0 && unicode.Is(nameRest, r):
		default:
			return fmt.Errorf("character %q not allowed at offset %d", r, i)
		}
	}
	return nil
}

// nameStart is NameStartChar without the colon.
var nameStart = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: '_', Hi: '_', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0xC0, Hi: 0xD6, Stride: 1},
		{Lo: 0xD8, Hi: 0xF6, Stride: 1},
		{Lo: 0xF8, Hi: 0x2FF, Stride: 1},
		{Lo: 0x370, Hi: 0x37D, Stride: 1},
		{Lo: 0x37F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xEFFFF, Stride: 1},
	},
	LatinOffset: 5,
}

// nameRest holds the NameChar additions allowed after the first character.
var nameRest = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '-', Hi: '.', Stride: 1},
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 0xB7, Hi: 0xB7, Stride: 1},
		{Lo: 0x300, Hi: 0x36F, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
	},
	LatinOffset: 3,
}
