package emit

import (
	"encoding/xml"
	"strings"

	"github.com/jacoelho/inst2xsd/internal/model"
)

func (w *schemaWriter) element(e *model.Element, inChoice bool) {
	var attrs []xml.Attr
	if e.Ref {
		attrs = append(attrs, attr("ref", w.qname(e.Name)))
	} else {
		attrs = append(attrs, attr("name", e.Name.Local))
	}

	var body *model.Type
	switch {
	case e.Ref:
	case !e.TypeName.IsZero():
		attrs = append(attrs, attr("type", w.typeRef(e.TypeName)))
	case e.Type == nil || inlined(e.Type):
		attrs = append(attrs, attr("type", w.builtin(simpleOf(e.Type))))
	default:
		body = e.Type
	}

	if !e.Global {
		if !e.Ref && e.Name.Namespace == "" && w.target != "" {
			attrs = append(attrs, attr("form", "unqualified"))
		}
		if !inChoice {
			if e.MinOccurs == 0 {
				attrs = append(attrs, attr("minOccurs", "0"))
			}
			if e.Repeats() {
				attrs = append(attrs, attr("maxOccurs", "unbounded"))
			}
		}
	}

	w.start("element", attrs...)
	if doc, ok := e.Documentation(); ok && e.Global {
		w.start("annotation")
		w.start("documentation")
		w.text(doc)
		w.end("documentation")
		w.end("annotation")
	}
	if body != nil {
		w.typeDef(body, "", e.Name.Local)
	}
	w.end("element")
}

func simpleOf(t *model.Type) model.Simple {
	if t == nil {
		return model.Simple{}
	}
	return t.Simple
}

// typeRef renders a reference to a global type, or to the builtin a
// simple global type without enumeration stands for.
func (w *schemaWriter) typeRef(name model.QName) string {
	t, ok := w.m.Types[name]
	if ok && inlined(t) {
		return w.builtin(t.Simple)
	}
	return w.qname(name)
}

func (w *schemaWriter) namedType(t *model.Type) {
	w.typeDef(t, t.Name.Local, strings.TrimSuffix(t.Name.Local, "Type"))
}

// typeDef writes t as a type definition, anonymous when name is empty.
// hint names the generated simple type of an enumerated simple content.
func (w *schemaWriter) typeDef(t *model.Type, name, hint string) {
	var attrs []xml.Attr
	if name != "" {
		attrs = append(attrs, attr("name", name))
	}
	switch t.Content {
	case model.SimpleSimple:
		w.simpleType(name, t.Simple)
	case model.ComplexSimple:
		w.start("complexType", attrs...)
		w.start("simpleContent")
		w.start("extension", attr("base", w.extensionBase(t, hint)))
		w.attributeUses(t)
		w.end("extension")
		w.end("simpleContent")
		w.end("complexType")
	default:
		if t.Content == model.ComplexMixed {
			attrs = append(attrs, attr("mixed", "true"))
		}
		w.start("complexType", attrs...)
		w.particles(t)
		w.attributeUses(t)
		w.end("complexType")
	}
}

func (w *schemaWriter) extensionBase(t *model.Type, hint string) string {
	s := t.Simple
	if t.ExtensionBase != nil {
		s = t.ExtensionBase.Simple
	}
	if !enumerates(s) {
		return w.builtin(s)
	}
	name := w.reserve(hint)
	w.pending = append(w.pending, valueType{name: name, simple: s})
	return w.qname(model.QName{Namespace: w.target, Local: name})
}

func (w *schemaWriter) particles(t *model.Type) {
	if len(t.Elements) == 0 {
		return
	}
	group := "sequence"
	var attrs []xml.Attr
	choice := t.Particle == model.UnboundedChoice
	if choice {
		group = "choice"
		attrs = []xml.Attr{attr("minOccurs", "0"), attr("maxOccurs", "unbounded")}
	}
	w.start(group, attrs...)
	for _, e := range t.Elements {
		w.element(e, choice)
	}
	w.end(group)
}

func (w *schemaWriter) attributeUses(t *model.Type) {
	for _, a := range t.Attributes {
		w.attribute(a)
	}
}

// attribute writes a global declaration or a local use of a.
func (w *schemaWriter) attribute(a *model.Attribute) {
	var attrs []xml.Attr
	if a.Ref {
		attrs = append(attrs, attr("ref", w.qname(a.Name)))
	} else {
		attrs = append(attrs, attr("name", a.Name.Local))
	}
	s := simpleOf(a.Type)
	anonymous := !a.Ref && enumerates(s)
	if !a.Ref && !anonymous {
		attrs = append(attrs, attr("type", w.builtin(s)))
	}
	if !a.Global && !a.Optional {
		attrs = append(attrs, attr("use", "required"))
	}
	w.start("attribute", attrs...)
	if anonymous {
		w.simpleType("", s)
	}
	w.end("attribute")
}

func (w *schemaWriter) simpleType(name string, s model.Simple) {
	var attrs []xml.Attr
	if name != "" {
		attrs = append(attrs, attr("name", name))
	}
	w.start("simpleType", attrs...)
	w.start("restriction", attr("base", w.builtin(s)))
	if enumerates(s) {
		for _, v := range s.Enumeration {
			w.empty("enumeration", attr("value", v))
		}
	}
	w.end("restriction")
	w.end("simpleType")
}
