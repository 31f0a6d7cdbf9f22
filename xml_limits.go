package inst2xsd

import (
	"cmp"
	"fmt"

	"github.com/jacoelho/xsd/pkg/xmlstream"
	"github.com/jacoelho/xsd/pkg/xmltext"
)

// Reader limits applied to instance documents when the caller sets none.
const (
	defaultXMLMaxDepth     = 256
	defaultXMLMaxAttrs     = 256
	defaultXMLMaxTokenSize = 4 << 20
)

type xmlParseLimits struct {
	maxDepth     int
	maxAttrs     int
	maxTokenSize int
}

// resolveXMLParseLimits rejects negative limits and replaces zero with the
// package default.
func resolveXMLParseLimits(maxDepth, maxAttrs, maxTokenSize int) (xmlParseLimits, error) {
	for _, l := range [...]struct {
		name  string
		value int
	}{
		{"depth", maxDepth},
		{"attrs", maxAttrs},
		{"token size", maxTokenSize},
	} {
		if l.value < 0 {
			return xmlParseLimits{}, fmt.Errorf("max %s must be >= 0, got %d", l.name, l.value)
		}
	}
	return xmlParseLimits{
		maxDepth:     cmp.Or(maxDepth, defaultXMLMaxDepth),
		maxAttrs:     cmp.Or(maxAttrs, defaultXMLMaxAttrs),
		maxTokenSize: cmp.Or(maxTokenSize, defaultXMLMaxTokenSize),
	}, nil
}

// options turns the limits into reader options for pkg/instance.
func (l xmlParseLimits) options() []xmlstream.Option {
	return []xmlstream.Option{
		xmltext.MaxDepth(l.maxDepth),
		xmltext.MaxAttrs(l.maxAttrs),
		xmltext.MaxTokenSize(l.maxTokenSize),
	}
}
