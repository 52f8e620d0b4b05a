// Package segment splits text into paragraphs, sentences, and words following the Unicode text segmentation rules (UAX #29).
package segment

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/tdewolff/linebreak/text"
)

// Sentences segments text into sentences. Trailing spaces belong to the sentence they follow.
var Sentences text.Segmenter = sentences{}

// Words segments text into words, runs of spaces, and punctuation.
var Words text.Segmenter = words{}

type sentences struct{}

func (sentences) Segment(s string) []text.Segment {
	segments := []text.Segment{}
	offset, state := 0, -1
	for s != "" {
		var sentence string
		sentence, s, state = uniseg.FirstSentenceInString(s, state)
		segments = append(segments, text.Segment{
			Text:   sentence,
			Offset: offset,
		})
		offset += len(sentence)
	}
	return segments
}

type words struct{}

func (words) Segment(s string) []text.Segment {
	segments := []text.Segment{}
	offset, state := 0, -1
	for s != "" {
		var word string
		word, s, state = uniseg.FirstWordInString(s, state)
		segments = append(segments, text.Segment{
			Text:   word,
			Offset: offset,
		})
		offset += len(word)
	}
	return segments
}

// Normalize returns the canonical composition (NFC) of s, so that precomposed and decomposed characters measure alike.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Paragraphs splits text at blank lines. Surrounding whitespace of every line is removed and the lines of a paragraph are joined by newlines, which break the line when converted to items. Empty paragraphs are skipped.
func Paragraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	paragraphs := []string{}
	lines := []string{}
	flush := func() {
		if 0 < len(lines) {
			paragraphs = append(paragraphs, strings.Join(lines, "\n"))
			lines = lines[:0]
		}
	}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			flush()
		} else {
			lines = append(lines, line)
		}
	}
	flush()
	return paragraphs
}
