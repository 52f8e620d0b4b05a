package text

import (
	"fmt"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/test"
)

// mono measures every rune as 10 units wide
type mono struct{}

func (mono) Measure(s string) float64 {
	return 10.0 * float64(utf8.RuneCountInString(s))
}

// sentence keeps the text whole
type sentence struct{}

func (sentence) Segment(s string) []Segment {
	return []Segment{{s, 0}}
}

// words splits into runs of spaces and other runes, and single punctuation runes
type words struct{}

func (words) Segment(s string) []Segment {
	class := func(r rune) int {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return 1
		} else if unicode.IsPunct(r) {
			return 2
		}
		return 0
	}

	segments := []Segment{}
	start, prev := 0, -1
	for i, r := range s {
		c := class(r)
		if i != 0 && (c != prev || c == 2) {
			segments = append(segments, Segment{s[start:i], start})
			start = i
		}
		prev = c
	}
	if start < len(s) {
		segments = append(segments, Segment{s[start:], start})
	}
	return segments
}

func TestTextItems(t *testing.T) {
	var tests = []struct {
		text  string
		items []string
	}{
		{"", []string{}},
		{"Hello", []string{`Box[w=50 "Hello"]`}},
		{"Hello, wo\u00ADrld.", []string{
			`Box[w=50 "Hello"]`,
			`Box[w=5 ","]`, // overhangs
			"Glue[w=15 y=5 z=3 p=10]",
			`Box[w=20 "wo"]`,
			"Penalty[w=5 p=10 flagged]",
			`Box[w=30 "rld"]`,
			`Box[w=5 "."]`,
		}},
		{"Hi. ", []string{`Box[w=20 "Hi"]`, `Box[w=5 "."]`, "Glue[w=25 y=5 z=3 p=10]"}},
		{"a  b", []string{`Box[w=10 "a"]`, "Glue[w=10 y=5 z=3 p=10]", `Box[w=10 "b"]`}},
		{"a\u00A0b", []string{`Box[w=10 "a"]`, "Glue[w=10 y=5 z=3 p=+Inf]", `Box[w=10 "b"]`}},
		{"a\nb", []string{`Box[w=10 "a"]`, "Glue[w=0 y=100000 z=0 p=+Inf]", "Penalty[w=0 p=-Inf flagged]", `Box[w=10 "b"]`}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.text), func(t *testing.T) {
			items := TextItems(tt.text, mono{}, sentence{}, words{})
			test.T(t, len(items), len(tt.items))
			for i := range items {
				if i < len(tt.items) {
					test.String(t, items[i].String(), tt.items[i], fmt.Sprintf("item %d", i))
				}
			}
		})
	}
}

// counter counts the calls to Measure
type counter struct {
	mono
	n int
}

func (c *counter) Measure(s string) float64 {
	c.n++
	return c.mono.Measure(s)
}

func TestTextItemsMeasure(t *testing.T) {
	// the space and the hyphen, and the syllables Hello , wo rld .
	m := &counter{}
	items := TextItems("Hello, wo\u00ADrld.", m, sentence{}, words{})
	test.T(t, len(items), 7)
	test.T(t, m.n, 7)

	m.n = 0
	TextItems("", m, sentence{}, words{})
	test.T(t, m.n, 2)
}

func TestTextItemsHyphen(t *testing.T) {
	items := TextItems("co\u00ADop", mono{}, sentence{}, words{})
	test.T(t, len(items), 3)
	test.String(t, items[1].Text, "-")
	test.That(t, items[1].Flagged)
	test.That(t, items[1].Font != nil)
	test.That(t, items[0].Font != nil)
}

func TestParagraphItems(t *testing.T) {
	items := ParagraphItems("a b", 15.0, mono{}, sentence{}, words{})
	test.Error(t, items.Validate())
	test.T(t, len(items), 6)
	test.String(t, items[0].String(), "Glue[w=15 y=0 z=0 p=+Inf]")
	test.String(t, items[4].String(), "Glue[w=0 y=100000 z=0 p=+Inf]")
	test.That(t, items[5].IsForcedBreak())

	lines, err := Linebreak(items, 100.0)
	test.Error(t, err)
	testLines(t, items, lines)
	test.T(t, len(lines), 1)
}

func TestParagraphItemsLinebreak(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs."
	items := ParagraphItems(text, 0.0, mono{}, sentence{}, words{})
	for _, width := range []float64{120.0, 200.0, 300.0, 1000.0} {
		t.Run(fmt.Sprint(width), func(t *testing.T) {
			lines, err := Linebreak(items, width)
			test.Error(t, err)
			testLines(t, items, lines)

			greedy := GreedyLinebreak(items, width)
			testLines(t, items, greedy)
		})
	}
}

func TestSeparators(t *testing.T) {
	for _, r := range "\n\v\f\r\u0085\u2028\u2029" {
		test.That(t, IsParagraphSeparator(r), fmt.Sprintf("%U", r))
	}
	test.That(t, !IsParagraphSeparator(' '))
	for _, r := range "\u00A0\u202F\uFEFF" {
		test.That(t, IsNoBreakSpace(r), fmt.Sprintf("%U", r))
	}
	test.That(t, !IsNoBreakSpace(' '))
}
