package text

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPlace(t *testing.T) {
	hyphen := Penalty(5.0, 10.0, true)
	hyphen.Text = "-"
	items := Items{}.
		Box(10.0, "a").
		Glue(10.0, 2.0, 1.0, 0.0).
		Box(10.0, "b").
		Glue(10.0, 2.0, 1.0, 0.0).
		Box(10.0, "c")
	items = append(items, hyphen)

	var tests = []struct {
		line Line
		xs   []float64
	}{
		{Line{Start: 0, End: 6, Ratio: 0.0}, []float64{0.0, 20.0, 40.0, 50.0}},
		{Line{Start: 0, End: 6, Ratio: 2.0}, []float64{0.0, 24.0, 48.0, 58.0}},
		{Line{Start: 0, End: 6, Ratio: -1.0}, []float64{0.0, 19.0, 38.0, 48.0}},
		{Line{Start: 0, End: 6, Ratio: -5.0}, []float64{0.0, 19.0, 38.0, 48.0}}, // clamped
		{Line{Start: 0, End: 6, Ratio: math.Inf(1.0)}, []float64{0.0, 20.0, 40.0, 50.0}},
		{Line{Start: 0, End: 4, Ratio: 2.0}, []float64{0.0, 24.0}},       // glue at the break is dropped
		{Line{Start: 0, End: 5, Ratio: 0.0}, []float64{0.0, 20.0, 40.0}}, // hyphen without its break
	}
	for _, tt := range tests {
		t.Run(tt.line.String(), func(t *testing.T) {
			spans := Place(items, tt.line)
			test.T(t, len(spans), len(tt.xs))
			for i := range spans {
				if i < len(tt.xs) {
					test.Float(t, spans[i].X, tt.xs[i], fmt.Sprintf("span %d", i))
				}
			}
		})
	}

	spans := Place(items, Line{Start: 0, End: 6})
	test.String(t, spans[3].Text, "-")
	test.T(t, spans[3].Index, 5)
	test.Float(t, spans[3].Width, 5.0)
}

func TestPlaceLines(t *testing.T) {
	items := ParagraphItems("aa bb cc dd", 0.0, mono{}, sentence{}, words{})
	lines := GreedyLinebreak(items, 50.0)
	spans := PlaceLines(items, lines)
	test.T(t, len(spans), len(lines))

	n := 0
	for _, line := range spans {
		for _, span := range line {
			test.That(t, 0.0 <= span.X && span.X+span.Width <= 50.0+1e-9, fmt.Sprintf("span %q at %g", span.Text, span.X))
			n++
		}
	}
	test.T(t, n, 4)
}
