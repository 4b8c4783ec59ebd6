package tilestack

import (
	"fmt"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
)

// Icon is one kind of tile face.
type Icon struct {
	Name  string
	Glyph rune
	Color core.Color
}

// Catalog is the ordered list of icon kinds a game draws from.
// An IconID is an index into it.
type Catalog []Icon

// Icon returns the icon for id, or a placeholder for unknown ids.
func (c Catalog) Icon(id IconID) Icon {
	if id < 0 || int(id) >= len(c) {
		return Icon{Name: "unknown", Glyph: '?', Color: core.ColorGray}
	}
	return c[id]
}

// CatalogFromConfig builds a catalog from configured icons.
func CatalogFromConfig(icons []config.IconConfig) (Catalog, error) {
	cat := make(Catalog, 0, len(icons))
	for _, ic := range icons {
		glyph := []rune(ic.Glyph)
		if len(glyph) != 1 {
			return nil, fmt.Errorf("tilestack: icon %q needs a single-character glyph", ic.Name)
		}
		color, ok := core.ParseColor(ic.Color)
		if !ok && ic.Color != "" {
			return nil, fmt.Errorf("tilestack: icon %q has unknown color %q", ic.Name, ic.Color)
		}
		cat = append(cat, Icon{Name: ic.Name, Glyph: glyph[0], Color: color})
	}
	return cat, nil
}
