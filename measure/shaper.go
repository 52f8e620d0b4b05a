package measure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text by shaping it with HarfBuzz, which applies ligatures and GPOS kerning.
type Shaper struct {
	Script   language.Script
	Language language.Language

	face *font.Face
	size fixed.Int26_6

	mu     sync.Mutex // guards shaper
	shaper shaping.HarfbuzzShaper
}

// NewShaper parses a font file or collection for latin text in English.
func NewShaper(b []byte, index int, size float64) (*Shaper, error) {
	faces, err := font.ParseTTC(bytes.NewReader(b))
	if err != nil {
		return nil, err
	} else if index < 0 || len(faces) <= index {
		return nil, fmt.Errorf("font index %d out of range", index)
	}
	return &Shaper{
		Script:   language.Latin,
		Language: language.NewLanguage("en"),
		face:     faces[index],
		size:     toI26_6(size),
	}, nil
}

// Measure implements text.Measurer.
func (m *Shaper) Measure(s string) float64 {
	if s == "" {
		return 0.0
	}
	rs := []rune(s)
	input := shaping.Input{
		Text:      rs,
		RunStart:  0,
		RunEnd:    len(rs),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      m.size,
		Script:    m.Script,
		Language:  m.Language,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return fromI26_6(m.shaper.Shape(input).Advance)
}
