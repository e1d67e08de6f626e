package platformer

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Style is how one sprite key is drawn: a glyph and colour in the
// terminal, a fill colour on a canvas.
type Style struct {
	Glyph rune
	Color core.Color
	RGBA  color.RGBA
}

// fallbackStyle draws sprites the catalog does not know.
var fallbackStyle = Style{Glyph: '?', Color: core.ColorBrightMagenta, RGBA: color.RGBA{R: 255, G: 0, B: 255, A: 255}}

// exactStyles match whole sprite keys.
var exactStyles = map[string]Style{
	"flowers":      {Glyph: '*', Color: core.ColorBrightMagenta, RGBA: color.RGBA{R: 230, G: 120, B: 200, A: 255}},
	"flag":         {Glyph: '|', Color: core.ColorBrightWhite, RGBA: color.RGBA{R: 240, G: 240, B: 240, A: 255}},
	"heart":        {Glyph: '♥', Color: core.ColorBrightRed, RGBA: color.RGBA{R: 230, G: 40, B: 60, A: 255}},
	"heart-broken": {Glyph: '♡', Color: core.ColorGray, RGBA: color.RGBA{R: 110, G: 110, B: 110, A: 255}},
	"player-hurt":  {Glyph: '@', Color: core.ColorBrightRed, RGBA: color.RGBA{R: 240, G: 80, B: 80, A: 255}},
	"player-dead":  {Glyph: 'x', Color: core.ColorRed, RGBA: color.RGBA{R: 150, G: 30, B: 30, A: 255}},
	"player-win":   {Glyph: '@', Color: core.ColorBrightGreen, RGBA: color.RGBA{R: 90, G: 230, B: 90, A: 255}},
}

// prefixStyles match sprite families such as "platform-200x50" or
// "player-walk-3". Longer prefixes are listed first.
var prefixStyles = []struct {
	prefix string
	style  Style
}{
	{"coin-got", Style{Glyph: '°', Color: core.ColorYellow, RGBA: color.RGBA{R: 255, G: 240, B: 150, A: 255}}},
	{"coin", Style{Glyph: 'o', Color: core.ColorBrightYellow, RGBA: color.RGBA{R: 250, G: 200, B: 30, A: 255}}},
	{"platform-", Style{Glyph: '█', Color: core.ColorGreen, RGBA: color.RGBA{R: 100, G: 170, B: 70, A: 255}}},
	{"floor-", Style{Glyph: '▀', Color: core.ColorGreen, RGBA: color.RGBA{R: 80, G: 140, B: 55, A: 255}}},
	{"tree-", Style{Glyph: '█', Color: core.ColorBrown, RGBA: color.RGBA{R: 110, G: 72, B: 40, A: 255}}},
	{"branch-", Style{Glyph: '═', Color: core.ColorBrown, RGBA: color.RGBA{R: 145, G: 100, B: 55, A: 255}}},
	{"log-", Style{Glyph: '▄', Color: core.ColorOrange, RGBA: color.RGBA{R: 160, G: 110, B: 60, A: 255}}},
	{"thorns-", Style{Glyph: '^', Color: core.ColorRed, RGBA: color.RGBA{R: 190, G: 40, B: 40, A: 255}}},
	{"player-", Style{Glyph: '@', Color: core.ColorBrightCyan, RGBA: color.RGBA{R: 70, G: 200, B: 240, A: 255}}},
}

// Catalog resolves sprite keys to styles. Unknown keys are logged once and
// drawn with a fallback style.
type Catalog struct {
	logger *log.Logger
	warned map[string]bool
}

// NewCatalog creates a sprite catalog.
func NewCatalog(logger *log.Logger) *Catalog {
	return &Catalog{
		logger: logger,
		warned: make(map[string]bool),
	}
}

// Lookup returns the style of a sprite key.
func (c *Catalog) Lookup(key string) Style {
	if s, ok := c.find(key); ok {
		return s
	}
	if !c.warned[key] {
		c.warned[key] = true
		if c.logger != nil {
			c.logger.Warn("missing sprite", "key", key)
		}
	}
	return fallbackStyle
}

// Has reports whether the catalog knows a sprite key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.find(key)
	return ok
}

func (c *Catalog) find(key string) (Style, bool) {
	if s, ok := exactStyles[key]; ok {
		return s, true
	}
	for _, p := range prefixStyles {
		if strings.HasPrefix(key, p.prefix) {
			return p.style, true
		}
	}
	return Style{}, false
}
