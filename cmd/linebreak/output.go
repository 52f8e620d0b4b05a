package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/linebreak"
	"github.com/tdewolff/linebreak/text"
)

// writeGrid writes the paragraphs as monospaced text with the spans at their nearest column, and at least one space apart where glue separates them.
func writeGrid(w io.Writer, paragraphs []linebreak.Paragraph, width float64, columns int) error {
	scale := float64(columns) / width
	for i, p := range paragraphs {
		if i != 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, spans := range p.Spans {
			sb := strings.Builder{}
			col, prev := 0, -1
			for _, span := range spans {
				x := int(math.Round(span.X * scale))
				if 0 <= prev && x <= col && hasGlue(p.Items[prev+1:span.Index]) {
					x = col + 1
				}
				for ; col < x; col++ {
					sb.WriteByte(' ')
				}
				sb.WriteString(span.Text)
				col += len([]rune(span.Text))
				prev = span.Index
			}
			if _, err := fmt.Fprintln(w, sb.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasGlue(items text.Items) bool {
	for _, item := range items {
		if item.Type == text.GlueType && 0.0 < item.Width {
			return true
		}
	}
	return false
}

// lineText joins the spans by single spaces where glue separates them
func lineText(items text.Items, spans []text.Span) string {
	sb := strings.Builder{}
	for i, span := range spans {
		if 0 < i && hasGlue(items[spans[i-1].Index+1:span.Index]) {
			sb.WriteByte(' ')
		}
		sb.WriteString(span.Text)
	}
	return sb.String()
}

type jsonLine struct {
	Start     int      `json:"start"`
	End       int      `json:"end"`
	Ratio     *float64 `json:"ratio"` // null if infinite
	Width     float64  `json:"width"`
	Overfull  bool     `json:"overfull,omitempty"`
	Underfull bool     `json:"underfull,omitempty"`
	Text      string   `json:"text"`
}

type jsonParagraph struct {
	Items int        `json:"items"`
	Lines []jsonLine `json:"lines"`
}

func writeJSON(w io.Writer, paragraphs []linebreak.Paragraph) error {
	out := make([]jsonParagraph, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = jsonParagraph{
			Items: len(p.Items),
			Lines: make([]jsonLine, len(p.Lines)),
		}
		for j, line := range p.Lines {
			var ratio *float64
			if !math.IsInf(line.Ratio, 0) && !math.IsNaN(line.Ratio) {
				ratio = &line.Ratio
			}
			out[i].Lines[j] = jsonLine{
				Start:     line.Start,
				End:       line.End,
				Ratio:     ratio,
				Width:     line.Width,
				Overfull:  line.Overfull,
				Underfull: line.Underfull,
				Text:      lineText(p.Items, p.Spans[j]),
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
