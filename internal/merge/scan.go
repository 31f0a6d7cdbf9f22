package merge

import (
	xsderrors "github.com/jacoelho/inst2xsd/errors"
	"github.com/jacoelho/inst2xsd/internal/lexical"
	"github.com/jacoelho/inst2xsd/internal/model"
	"github.com/jacoelho/inst2xsd/pkg/instance"
)

// scanner turns one document into the join of its occurrences.
type scanner struct {
	cfg      Config
	m        *model.Model
	sink     xsderrors.Sink
	elements int
}

func newScanner(cfg Config, sink xsderrors.Sink) *scanner {
	return &scanner{cfg: cfg, m: model.New(cfg.Policy), sink: sink}
}

func qname(n instance.Name) model.QName {
	return model.QName{Namespace: n.Namespace, Local: n.Local}
}

// document scans the tree rooted at doc.Root.
func (s *scanner) document(doc *instance.Document) {
	g := s.global(doc.Root)
	g.AddSource(doc.Name)
	s.m.AddElement(g)
}

// global builds the global declaration for e. Under VenetianBlind the
// structure goes into a named global type.
func (s *scanner) global(e *instance.Element) *model.Element {
	name := qname(e.Name)
	if s.cfg.Style == VenetianBlind {
		tn := TypeName(name)
		s.addNamedType(tn, s.typeOf(e, name.Namespace))
		return model.NewGlobal(name, nil, tn)
	}
	return model.NewGlobal(name, s.typeOf(e, name.Namespace), model.QName{})
}

func (s *scanner) addNamedType(name model.QName, t *model.Type) {
	t.Name = name
	s.m.AddType(t)
}

// particle returns the particle for child e inside a component whose schema
// has target namespace owner.
func (s *scanner) particle(e *instance.Element, owner string) *model.Element {
	name := qname(e.Name)
	foreign := name.Namespace != owner && name.Namespace != ""
	if s.cfg.Style == SalamiSlice || foreign {
		s.m.AddElement(s.global(e))
		return model.NewRef(name)
	}
	if s.cfg.Style == VenetianBlind {
		tn := TypeName(name)
		s.addNamedType(tn, s.typeOf(e, name.Namespace))
		return model.NewTyped(name, tn)
	}
	return model.NewLocal(name, s.typeOf(e, owner))
}

// typeOf builds the singleton type of one occurrence of e.
func (s *scanner) typeOf(e *instance.Element, owner string) *model.Type {
	s.elements++
	p := s.cfg.Policy
	t := model.NewType()
	for _, a := range e.Attrs {
		if a.IsXSI() {
			continue
		}
		name := qname(a.Name)
		at := model.NewSimpleType(a.Value, s.classify(a.Value, e), p)
		if name.Namespace != "" {
			s.m.AddAttribute(model.NewGlobalAttribute(name, at))
			t.AddAttribute(model.NewAttributeRef(name), p)
			continue
		}
		t.AddAttribute(model.NewAttribute(name, at), p)
	}
	if len(e.Children) == 0 {
		t.ObserveText(e.Text, s.classify(e.Text, e), p)
		return t
	}
	kids := make([]*model.Element, 0, len(e.Children))
	for _, c := range e.Children {
		kids = append(kids, s.particle(c, owner))
	}
	t.AddChildren(kids, p)
	t.ObserveMixedText(e.HasText())
	return t
}

// classify types text in the namespace context of e.
func (s *scanner) classify(text string, e *instance.Element) lexical.Kind {
	if s.cfg.SimpleContent == AlwaysString {
		return lexical.String
	}
	return lexical.ClassifyLenient(text, e, s.located(e))
}

func (s *scanner) located(e *instance.Element) xsderrors.Sink {
	return xsderrors.SinkFunc(func(d xsderrors.Diagnostic) {
		if d.Path == "" {
			d.Path = e.Path()
		}
		if d.Line == 0 {
			d.Line, d.Column = e.Line, e.Column
		}
		s.sink.Report(d)
	})
}
