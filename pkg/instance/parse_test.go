package instance

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const purchaseOrder = `<?xml version="1.0"?>
<po:order xmlns:po="urn:po" xmlns:x="urn:x" id="7">
  <po:item x:sku="A1">first</po:item>
  <po:item>second</po:item>
  <note xmlns="urn:notes">mixed <b>bold</b> text</note>
  <plain xmlns="">v</plain>
</po:order>`

func TestParseTree(t *testing.T) {
	doc, err := ParseBytes("po.xml", []byte(purchaseOrder))
	require.NoError(t, err)
	require.Equal(t, "po.xml", doc.Name)

	root := doc.Root
	require.Equal(t, Name{Namespace: "urn:po", Local: "order"}, root.Name)
	require.Nil(t, root.Parent())
	require.Equal(t, []Attr{{Name: Name{Local: "id"}, Value: "7"}}, root.Attrs)
	require.Equal(t, map[string]string{"po": "urn:po", "x": "urn:x"}, root.Declarations())
	require.False(t, root.HasText())
	require.Len(t, root.Children, 4)

	item := root.Children[0]
	require.Equal(t, "first", item.Text)
	v, ok := item.Attr(Name{Namespace: "urn:x", Local: "sku"})
	require.True(t, ok)
	require.Equal(t, "A1", v)
	require.Equal(t, "/order/item[1]", item.Path())
	require.Equal(t, "/order/item[2]", root.Children[1].Path())
	require.Same(t, root, item.Parent())

	note := root.Children[2]
	require.Equal(t, Name{Namespace: "urn:notes", Local: "note"}, note.Name)
	require.Equal(t, "mixed  text", note.Text)
	require.True(t, note.HasText())
	require.Equal(t, Name{Namespace: "urn:notes", Local: "b"}, note.Children[0].Name)
	require.Equal(t, "/order/note", note.Path())

	plain := root.Children[3]
	require.Equal(t, Name{Local: "plain"}, plain.Name)
	require.Equal(t, "/order/plain", plain.Path())
	require.Positive(t, item.Line)
}

func TestLookupNamespace(t *testing.T) {
	doc, err := ParseBytes("ns.xml", []byte(`<a xmlns="urn:d" xmlns:p="urn:p"><b xmlns:p="urn:q"><c xmlns=""/></b></a>`))
	require.NoError(t, err)
	a := doc.Root
	b := a.Children[0]
	c := b.Children[0]

	uri, ok := a.LookupNamespace("p")
	require.True(t, ok)
	require.Equal(t, "urn:p", uri)
	uri, ok = b.LookupNamespace("p")
	require.True(t, ok)
	require.Equal(t, "urn:q", uri)
	uri, ok = b.LookupNamespace("")
	require.True(t, ok)
	require.Equal(t, "urn:d", uri)
	uri, ok = c.LookupNamespace("")
	require.True(t, ok)
	require.Empty(t, uri)
	_, ok = c.LookupNamespace("zz")
	require.False(t, ok)
	uri, ok = c.LookupNamespace("xml")
	require.True(t, ok)
	require.Equal(t, "http://www.w3.org/XML/1998/namespace", uri)
}

func TestParseDeclarationsStayOffAttrs(t *testing.T) {
	src := `<a xmlns="urn:d" xmlns:p="urn:p" p:k="1"><b xmlns:p="urn:q"><c xmlns="" v="2"/></b><d/></a>`
	doc, err := ParseBytes("decls.xml", []byte(src))
	require.NoError(t, err)
	a := doc.Root
	b := a.Children[0]
	c := b.Children[0]
	d := a.Children[1]

	require.Equal(t, map[string]string{"": "urn:d", "p": "urn:p"}, a.Declarations())
	require.Equal(t, []Attr{{Name: Name{Namespace: "urn:p", Local: "k"}, Value: "1"}}, a.Attrs)
	require.Equal(t, map[string]string{"p": "urn:q"}, b.Declarations())
	require.Empty(t, b.Attrs)
	require.Equal(t, map[string]string{"": ""}, c.Declarations())
	require.Equal(t, []Attr{{Name: Name{Local: "v"}, Value: "2"}}, c.Attrs)
	require.Empty(t, d.Declarations())

	uri, ok := d.LookupNamespace("p")
	require.True(t, ok)
	require.Equal(t, "urn:p", uri)
}

func TestAttrIsXSI(t *testing.T) {
	doc, err := ParseBytes("xsi.xml", []byte(
		`<a xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:nil="false" k="v"/>`))
	require.NoError(t, err)
	require.Len(t, doc.Root.Attrs, 2)
	require.True(t, doc.Root.Attrs[0].IsXSI())
	require.False(t, doc.Root.Attrs[1].IsXSI())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed", input: `<a><b></a>`},
		{name: "unbound prefix", input: `<p:a/>`},
		{name: "truncated", input: `<a>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes(tt.name, []byte(tt.input))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse(strings.NewReader("   "), "empty.xml")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoRoot) || strings.Contains(err.Error(), "empty.xml"))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<r><c/></r>`), 0o600))
	doc, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "doc.xml", doc.Name)

	var names []string
	doc.Root.Walk(func(e *Element) bool {
		names = append(names, e.Name.Local)
		return true
	})
	require.Equal(t, []string{"r", "c"}, names)

	_, err = ParseFile(filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
}

func TestNameOrdering(t *testing.T) {
	a := Name{Namespace: "urn:a", Local: "z"}
	b := Name{Namespace: "urn:b", Local: "a"}
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, Name{Local: "a"}.Less(Name{Local: "b"}))
	require.Equal(t, "{urn:a}z", a.String())
	require.Equal(t, "a", Name{Local: "a"}.String())
}
