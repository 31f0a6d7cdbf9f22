package partition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/inst2xsd/internal/lexical"
	"github.com/jacoelho/inst2xsd/internal/model"
)

func TestSplit(t *testing.T) {
	p := model.DefaultPolicy
	m := model.New(p)
	add := func(ns, local string) {
		m.AddElement(model.NewGlobal(model.QName{Namespace: ns, Local: local},
			model.NewSimpleType("x", lexical.String, p), model.QName{}))
	}
	add("urn:b", "z")
	add("urn:b", "a")
	add("", "plain")
	add("urn:a", "m")
	typ := model.NewSimpleType("1", lexical.Byte, p)
	typ.Name = model.QName{Namespace: "urn:c", Local: "cType"}
	m.AddType(typ)
	m.AddAttribute(model.NewGlobalAttribute(model.QName{Namespace: "urn:a", Local: "lang"},
		model.NewSimpleType("en", lexical.String, p)))

	parts := Split(m)
	require.Equal(t, []string{"", "urn:a", "urn:b", "urn:c"}, Namespaces(parts))

	a, b, c := parts[1], parts[2], parts[3]
	require.Len(t, b.Elements, 2)
	require.Equal(t, "a", b.Elements[0].Name.Local)
	require.Equal(t, "z", b.Elements[1].Name.Local)

	require.Len(t, a.Attributes, 1)
	require.Len(t, a.Elements, 1)

	require.Len(t, c.Types, 1)
	require.Empty(t, c.Elements)
}

func TestSplitEmpty(t *testing.T) {
	require.Empty(t, Split(model.New(model.DefaultPolicy)))
}
