package measure

import (
	"github.com/tdewolff/font"
)

// SFNT measures text by the glyph advances and kerning table of a font.
type SFNT struct {
	sfnt *font.SFNT
	size float64
}

// NewSFNT parses a font file.
func NewSFNT(b []byte, index int, size float64) (*SFNT, error) {
	sfnt, err := font.ParseFont(b, index)
	if err != nil {
		return nil, err
	}
	return &SFNT{
		sfnt: sfnt,
		size: size,
	}, nil
}

// Size returns the font size.
func (m *SFNT) Size() float64 {
	return m.size
}

// Measure implements text.Measurer. Runes missing from the font take the advance of the .notdef glyph.
func (m *SFNT) Measure(s string) float64 {
	w := int32(0)
	prev := uint16(0)
	for i, r := range s {
		id := m.sfnt.GlyphIndex(r)
		if i != 0 {
			w += int32(m.sfnt.Kerning(prev, id))
		}
		w += int32(m.sfnt.GlyphAdvance(id))
		prev = id
	}
	return m.size * float64(w) / float64(m.sfnt.Head.UnitsPerEm)
}
