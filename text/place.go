package text

import "math"

// Span is a box, or the text inserted at a break, positioned on a line.
type Span struct {
	Index int // item index
	X     float64
	Width float64
	Text  string
	Font  Measurer
}

// Place positions the boxes of a line, distributing the remaining width over its glue by the line's adjustment ratio. The glue or penalty that ends the line is not rendered, except for the text of a penalty such as a hyphen.
func Place(items Items, line Line) []Span {
	ratio := line.Ratio
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		ratio = 0.0
	} else if ratio < -1.0 {
		ratio = -1.0
	}

	x := 0.0
	spans := []Span{}
	for i := line.Start; i < line.End && i < len(items); i++ {
		item := items[i]
		last := i == line.End-1
		if item.Type == BoxType || last && item.Type == PenaltyType {
			if item.Text != "" {
				spans = append(spans, Span{
					Index: i,
					X:     x,
					Width: item.Width,
					Text:  item.Text,
					Font:  item.Font,
				})
			}
			x += item.Width
		} else if item.Type == GlueType && !last {
			x += item.Width
			if ratio < 0.0 {
				x += ratio * item.Shrink
			} else if 0.0 < ratio {
				x += ratio * item.Stretch
			}
		}
	}
	return spans
}

// PlaceLines positions the boxes of all lines.
func PlaceLines(items Items, lines []Line) [][]Span {
	spans := make([][]Span, len(lines))
	for j, line := range lines {
		spans[j] = Place(items, line)
	}
	return spans
}
