package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// builtinTTF maps each style to the embedded Go font that renders it.
var builtinTTF = map[Style][]byte{
	StyleRegular:    goregular.TTF,
	StyleItalic:     goitalic.TTF,
	StyleBold:       gobold.TTF,
	StyleBoldItalic: gobolditalic.TTF,
}

var (
	builtinMu      sync.Mutex
	builtinSources = map[Style]*FontSource{}
)

// Builtin returns the embedded Go font for a style, parsing it on
// first use. Unknown styles fall back to the regular variant.
func Builtin(style Style) (*FontSource, error) {
	data, ok := builtinTTF[style]
	if !ok {
		style = StyleRegular
		data = builtinTTF[style]
	}

	builtinMu.Lock()
	defer builtinMu.Unlock()
	if s, ok := builtinSources[style]; ok {
		return s, nil
	}
	s, err := NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse builtin font: %w", err)
	}
	builtinSources[style] = s
	return s, nil
}

// Collection resolves family and style names to font sources. Families
// it does not know resolve to the embedded Go fonts, so lookups only
// fail when a font cannot be parsed.
//
// Collection is safe for concurrent use.
type Collection struct {
	mu       sync.RWMutex
	families map[string]map[Style]*FontSource
}

// NewCollection creates an empty collection backed by the builtin
// fonts.
func NewCollection() *Collection {
	return &Collection{families: map[string]map[Style]*FontSource{}}
}

// Register adds a font for a family and style, replacing any previous
// registration.
func (c *Collection) Register(family string, style Style, data []byte) error {
	src, err := NewFontSource(data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	styles, ok := c.families[family]
	if !ok {
		styles = map[Style]*FontSource{}
		c.families[family] = styles
	}
	styles[style] = src
	return nil
}

// Face resolves a family and style to a face at the given size. A
// registered family missing the requested style falls back to its
// regular variant, then to the builtin font for that style.
func (c *Collection) Face(family string, style Style, size float64) (*Face, error) {
	c.mu.RLock()
	styles, ok := c.families[family]
	var src *FontSource
	if ok {
		if s, ok := styles[style]; ok {
			src = s
		} else if s, ok := styles[StyleRegular]; ok {
			src = s
		}
	}
	c.mu.RUnlock()

	if src == nil {
		var err error
		src, err = Builtin(style)
		if err != nil {
			return nil, err
		}
	}
	return src.Face(size)
}
