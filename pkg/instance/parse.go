package instance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jacoelho/xsd/pkg/xmlstream"

	"github.com/jacoelho/inst2xsd/internal/value"
)

// ErrNoRoot reports a document without a root element.
var ErrNoRoot = errors.New("document has no root element")

// Document is a parsed instance document.
type Document struct {
	Root *Element
	// Name identifies the document in diagnostics and schema documentation.
	Name string
}

// Parse reads one XML document from r. name labels the document in errors.
// opts tune the underlying reader, for example its size limits.
func Parse(r io.Reader, name string, opts ...xmlstream.Option) (*Document, error) {
	reader, err := xmlstream.NewReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	var (
		stack []*Element
		root  *Element
		text  []byte
	)
	flush := func() {
		if len(stack) > 0 && len(text) > 0 {
			stack[len(stack)-1].Text += string(text)
		}
		text = text[:0]
	}
	for {
		ev, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		switch ev.Kind {
		case xmlstream.EventStartElement:
			flush()
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("parse %s: element %s after document end (line %d, column %d)",
					name, ev.Name.Local, ev.Line, ev.Column)
			}
			elem := &Element{
				Name:   Name{Namespace: ev.Name.Namespace, Local: ev.Name.Local},
				Line:   ev.Line,
				Column: ev.Column,
			}
			// The reader keeps xmlns declarations out of Attrs and records
			// them per scope instead.
			if decls := reader.NamespaceDecls(ev.ScopeDepth); len(decls) > 0 {
				elem.decls = make(map[string]string, len(decls))
				for _, d := range decls {
					elem.decls[d.Prefix] = d.URI
				}
			}
			for _, a := range ev.Attrs {
				elem.Attrs = append(elem.Attrs, Attr{
					Name:  Name{Namespace: a.Name.Namespace, Local: a.Name.Local},
					Value: string(a.Value),
				})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				elem.parent = parent
				parent.Children = append(parent.Children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)
		case xmlstream.EventEndElement:
			flush()
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xmlstream.EventCharData:
			if len(stack) == 0 {
				if !value.IsBlank(string(bytes.TrimPrefix(ev.Text, []byte("\uFEFF")))) {
					return nil, fmt.Errorf("parse %s: character data outside root element (line %d, column %d)",
						name, ev.Line, ev.Column)
				}
				continue
			}
			// ev.Text is reused by the reader
			text = append(text, ev.Text...)
		}
	}
	if root == nil {
		return nil, fmt.Errorf("parse %s: %w", name, ErrNoRoot)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("parse %s: %w", name, io.ErrUnexpectedEOF)
	}
	return &Document{Name: name, Root: root}, nil
}

// ParseBytes parses an in-memory document.
func ParseBytes(name string, data []byte, opts ...xmlstream.Option) (*Document, error) {
	return Parse(bytes.NewReader(data), name, opts...)
}

// ParseFile parses the document at path. The document is named by the
// file's base name.
func ParseFile(path string, opts ...xmlstream.Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f, filepath.Base(path), opts...)
}
