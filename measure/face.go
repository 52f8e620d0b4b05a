package measure

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face measures text with golang.org/x/image at a ppem equal to the font size, in 26.6 fixed point precision.
type Face struct {
	font *sfnt.Font
	ppem fixed.Int26_6
}

// NewFace parses a font file or collection.
func NewFace(b []byte, index int, size float64) (*Face, error) {
	collection, err := sfnt.ParseCollection(b)
	if err != nil {
		return nil, err
	}
	if index < 0 || collection.NumFonts() <= index {
		return nil, fmt.Errorf("font index %d out of range", index)
	}
	f, err := collection.Font(index)
	if err != nil {
		return nil, err
	}
	return &Face{
		font: f,
		ppem: toI26_6(size),
	}, nil
}

// Measure implements text.Measurer.
func (m *Face) Measure(s string) float64 {
	buffer := &sfnt.Buffer{}
	w := fixed.Int26_6(0)
	var prevIndex sfnt.GlyphIndex
	for i, r := range s {
		index, err := m.font.GlyphIndex(buffer, r)
		if err != nil {
			continue
		}

		if i != 0 {
			kern, err := m.font.Kern(buffer, prevIndex, index, m.ppem, font.HintingNone)
			if err == nil {
				w += kern
			}
		}
		advance, err := m.font.GlyphAdvance(buffer, index, m.ppem, font.HintingNone)
		if err == nil {
			w += advance
		}
		prevIndex = index
	}
	return fromI26_6(w)
}

func toI26_6(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}

func fromI26_6(f fixed.Int26_6) float64 {
	return float64(f) / 64.0
}
