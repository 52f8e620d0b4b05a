// Package linebreak typesets plain text into justified paragraphs using Knuth and Plass' line breaking algorithm.
package linebreak

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tdewolff/linebreak/segment"
	"github.com/tdewolff/linebreak/text"
)

// Paragraph is a paragraph broken into lines.
type Paragraph struct {
	Items text.Items
	Lines []text.Line
	Spans [][]text.Span // positioned boxes per line
}

// Typesetter converts text into paragraphs of lines.
type Typesetter struct {
	text.Measurer
	Sentences, Words text.Segmenter
	text.Linebreaker
	Indent float64 // indentation of the first line of each paragraph

	// Concurrency is the maximum number of paragraphs broken simultaneously, GOMAXPROCS by default.
	Concurrency int
}

// New returns a typesetter with the Unicode segmenters and the optimal line breaker with fallback.
func New(m text.Measurer) *Typesetter {
	return &Typesetter{
		Measurer:    m,
		Sentences:   segment.Sentences,
		Words:       segment.Words,
		Linebreaker: text.Fallback{Parameters: text.DefaultParameters},
	}
}

// Items converts text into the items of its paragraphs. Paragraphs are separated by blank lines.
func (t *Typesetter) Items(s string) []text.Items {
	paragraphs := segment.Paragraphs(segment.Normalize(s))
	items := make([]text.Items, len(paragraphs))
	for i, paragraph := range paragraphs {
		items[i] = text.ParagraphItems(paragraph, t.Indent, t.Measurer, t.Sentences, t.Words)
	}
	return items
}

// Typeset breaks text into paragraphs of lines of the given width.
func (t *Typesetter) Typeset(ctx context.Context, s string, width float64) ([]Paragraph, error) {
	return t.Break(ctx, t.Items(s), width)
}

// Break breaks paragraphs concurrently, preserving their order. It returns the first error encountered.
func (t *Typesetter) Break(ctx context.Context, paragraphs []text.Items, width float64) ([]Paragraph, error) {
	if !(0.0 < width) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("invalid line width %v", width)
	}

	concurrency := t.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	result := make([]Paragraph, len(paragraphs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, items := range paragraphs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := t.Linebreak(items, width)
			if err != nil {
				return fmt.Errorf("paragraph %d: %w", i+1, err)
			}
			result[i] = Paragraph{
				Items: items,
				Lines: lines,
				Spans: text.PlaceLines(items, lines),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
