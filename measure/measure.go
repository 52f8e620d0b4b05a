// Package measure implements text.Measurer for font files and terminal output. Widths are in the unit of the font size, eg. points or millimeters.
package measure

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/tdewolff/linebreak/text"
)

// Engine is a font measuring implementation.
type Engine string

// see Engine
const (
	EngineSFNT    Engine = "sfnt"    // github.com/tdewolff/font
	EngineX       Engine = "x"       // golang.org/x/image/font/sfnt
	EngineShaping Engine = "shaping" // github.com/go-text/typesetting
)

// New returns a measurer for a font file (TTF, OTF, WOFF, ...) at the given size using the given engine. Index selects the font in a collection.
func New(engine Engine, b []byte, index int, size float64) (text.Measurer, error) {
	switch engine {
	case EngineSFNT:
		return NewSFNT(b, index, size)
	case EngineX:
		return NewFace(b, index, size)
	case EngineShaping:
		return NewShaper(b, index, size)
	}
	return nil, fmt.Errorf("unknown engine %q", engine)
}

// Mono measures text in terminal cells, which are Cell units wide. East Asian wide characters take two cells and combining characters none.
type Mono struct {
	Cell float64
}

// Measure implements text.Measurer.
func (m Mono) Measure(s string) float64 {
	return m.Cell * float64(runewidth.StringWidth(s))
}
