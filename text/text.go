package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Special characters:
//   \x0A LINE FEED - forced break
//   \x0B VERTICAL TAB - forced break
//   \x0C FORM FEED - forced break
//   \x0D CARRIAGE RETURN - forced break
//   \u0085 NEXT LINE - forced break
//   \u00A0 NO-BREAK SPACE - space but not breakpoint
//   \u00AD SOFT HYPHEN - breakpoint with hyphen insertion
//   \u202F NARROW NO-BREAK SPACE - space but not breakpoint
//   \u2028 LINE SEPARATOR - forced break
//   \u2029 PARAGRAPH SEPARATOR - forced break
//   \uFEFF ZERO WIDTH NO-BREAK SPACE - space but not breakpoint

// SoftHyphen marks hyphenation opportunities in words.
const SoftHyphen = "\u00AD"

// SpaceStretch is the stretchability of spaces.
var SpaceStretch = 0.5 // ratio of the space that can be added

// SpaceShrink is the shrinkability of spaces.
var SpaceShrink = 0.3 // ratio of the space that can be removed

// LinePenalty is the aesthetic cost of breaking at a space.
var LinePenalty = 10.0

// HyphenPenalty is the aesthetic cost of ending a line in a hyphen.
var HyphenPenalty = 10.0

// Measurer measures the width of text when rendered, eg. for a font face at a given size.
type Measurer interface {
	Measure(string) float64
}

// Segment is a segment of a string starting at the byte offset Offset.
type Segment struct {
	Text   string
	Offset int
}

// Segmenter splits a string into consecutive segments, eg. sentences or words, that cover the whole string.
type Segmenter interface {
	Segment(string) []Segment
}

// IsParagraphSeparator returns true for paragraph separator runes.
func IsParagraphSeparator(r rune) bool {
	// line feed, vertical tab, form feed, carriage return, next line, line separator, paragraph separator
	return 0x0A <= r && r <= 0x0D || r == 0x85 || r == '\u2028' || r == '\u2029'
}

// IsNoBreakSpace returns true for spaces that are not breakpoints.
func IsNoBreakSpace(r rune) bool {
	return r == '\u00A0' || r == '\u202F' || r == '\uFEFF'
}

func isSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && r != '\uFEFF' {
			return false
		}
	}
	return s != ""
}

func isPunctuation(s string) bool {
	r, n := utf8.DecodeRuneInString(s)
	return n == len(s) && unicode.IsPunct(r)
}

// ParagraphItems converts text into the box/glue/penalty items of a paragraph. The first line is indented by indent, and the paragraph ends with finishing glue and a forced break.
func ParagraphItems(text string, indent float64, m Measurer, sentences, words Segmenter) Items {
	items := InitialItems(indent)
	items = append(items, TextItems(text, m, sentences, words)...)
	return append(items, FinalItems()...)
}

// TextItems converts text into box/glue/penalty items. Spaces become glue, words become boxes, and soft hyphens become flagged penalties. Punctuation overhangs into the space that follows it. Paragraph separators become forced breaks.
func TextItems(text string, m Measurer, sentences, words Segmenter) Items {
	spaceWidth := m.Measure(" ")
	overhang := 0.5 * spaceWidth
	hyphenWidth := m.Measure("-") - overhang

	items := Items{}
	for _, sentence := range sentences.Segment(text) {
		prevWasPunctuation := false
		for _, word := range words.Segment(sentence.Text) {
			punctuation := isPunctuation(word.Text)
			final := len(sentence.Text) <= word.Offset+len(word.Text)

			extraWidth := 0.0
			if prevWasPunctuation {
				extraWidth = overhang
			}

			if strings.IndexFunc(word.Text, IsParagraphSeparator) != -1 {
				// explicit newline
				items = items.Glue(0.0, MaxStretch, 0.0, Infinity)
				items = items.Penalty(0.0, -Infinity, true)
			} else if isSpace(word.Text) {
				penalty := LinePenalty
				if strings.IndexFunc(word.Text, IsNoBreakSpace) != -1 {
					penalty = Infinity
				}
				width := spaceWidth + extraWidth
				if final {
					width += spaceWidth
				}
				items = items.Glue(width, SpaceStretch*spaceWidth, SpaceShrink*spaceWidth, penalty)
			} else {
				syllables := strings.Split(word.Text, SoftHyphen)
				for i, syllable := range syllables {
					width := m.Measure(syllable)
					if i == 0 {
						width += extraWidth
					}
					if i == len(syllables)-1 && punctuation {
						width -= overhang
					}
					items = append(items, Item{
						Type:  BoxType,
						Width: width,
						Text:  syllable,
						Font:  m,
					})
					if i != len(syllables)-1 {
						items = append(items, Item{
							Type:    PenaltyType,
							Width:   hyphenWidth,
							Penalty: HyphenPenalty,
							Flagged: true,
							Text:    "-",
							Font:    m,
						})
					}
				}
			}
			prevWasPunctuation = punctuation
		}
	}
	return items
}
