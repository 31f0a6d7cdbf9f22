package model

// JoinType folds src into dst. Both must describe at least one occurrence:
// a child or attribute missing from either side becomes optional. src must
// not be used afterwards.
func (p Policy) JoinType(dst, src *Type) {
	if dst == src || src == nil {
		return
	}
	dst.sawText = dst.sawText || src.sawText
	dst.interleaved = dst.interleaved || src.interleaved
	dst.observed.join(src.observed, p)
	for pair := range src.order {
		dst.addOrder(pair)
	}

	for name, a := range dst.attrs {
		if _, ok := src.attrs[name]; !ok {
			a.Optional = true
		}
	}
	for name, a := range src.attrs {
		prev, ok := dst.attrs[name]
		if !ok {
			a.Optional = true
			if dst.attrs == nil {
				dst.attrs = make(map[QName]*Attribute)
			}
			dst.attrs[name] = a
			continue
		}
		p.JoinAttribute(prev, a)
	}

	for name, e := range dst.children {
		if _, ok := src.children[name]; !ok {
			e.MinOccurs = 0
		}
	}
	for name, e := range src.children {
		prev, ok := dst.children[name]
		if !ok {
			e.MinOccurs = 0
			if dst.children == nil {
				dst.children = make(map[QName]*Element)
			}
			dst.children[name] = e
			continue
		}
		p.JoinElement(prev, e)
	}
}

// JoinElement folds src into dst, which must share its name.
func (p Policy) JoinElement(dst, src *Element) {
	if dst == src || src == nil {
		return
	}
	dst.MinOccurs = min(dst.MinOccurs, src.MinOccurs)
	if src.MaxOccurs == Unbounded {
		dst.MaxOccurs = Unbounded
	}
	dst.Global = dst.Global || src.Global
	switch {
	case dst.Type != nil && src.Type != nil:
		p.JoinType(dst.Type, src.Type)
	case dst.Type == nil && dst.TypeName.IsZero() && !dst.Ref:
		dst.Type, dst.TypeName, dst.Ref = src.Type, src.TypeName, src.Ref
	}
	for _, s := range src.sources {
		dst.AddSource(s)
	}
}

// JoinAttribute folds src into dst, which must share its name.
func (p Policy) JoinAttribute(dst, src *Attribute) {
	if dst == src || src == nil {
		return
	}
	dst.Optional = dst.Optional || src.Optional
	dst.Global = dst.Global || src.Global
	switch {
	case dst.Type != nil && src.Type != nil:
		p.JoinType(dst.Type, src.Type)
	case dst.Type == nil && !dst.Ref:
		dst.Type, dst.Ref = src.Type, src.Ref
	}
}
