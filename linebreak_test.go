package linebreak

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/test"

	"github.com/tdewolff/linebreak/measure"
	"github.com/tdewolff/linebreak/text"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\n" +
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.\n\n" +
	"Duis aute irure dolor in repre\u00ADhenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur.\n\n" +
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."

func testParagraph(t *testing.T, p Paragraph, width float64) {
	t.Helper()
	test.That(t, 0 < len(p.Lines))
	test.T(t, len(p.Spans), len(p.Lines))
	test.T(t, p.Lines[0].Start, 0)
	test.T(t, p.Lines[len(p.Lines)-1].End, len(p.Items))
	for j, line := range p.Lines {
		test.That(t, line.Start < line.End)
		if 0 < j {
			test.T(t, line.Start, p.Lines[j-1].End)
		}
		if !line.Overfull {
			for _, span := range p.Spans[j] {
				test.That(t, span.X+span.Width <= width+1e-6, fmt.Sprintf("span %q exceeds line %d", span.Text, j))
			}
		}
	}
}

func TestTypeset(t *testing.T) {
	face, err := measure.NewSFNT(lmroman10regular.TTF, 0, 10.0)
	test.Error(t, err)

	typesetter := New(face)
	typesetter.Indent = 10.0
	for _, width := range []float64{100.0, 150.0, 300.0} {
		t.Run(fmt.Sprint(width), func(t *testing.T) {
			paragraphs, err := typesetter.Typeset(context.Background(), lorem, width)
			test.Error(t, err)
			test.T(t, len(paragraphs), 3)
			for _, p := range paragraphs {
				testParagraph(t, p, width)
				test.Float(t, p.Items[0].Width, 10.0)
			}
		})
	}
}

func TestTypesetOrder(t *testing.T) {
	words := []string{}
	for i := 0; i < 50; i++ {
		words = append(words, fmt.Sprintf("paragraph%d", i))
	}

	typesetter := New(measure.Mono{Cell: 1.0})
	typesetter.Concurrency = 4
	paragraphs, err := typesetter.Typeset(context.Background(), strings.Join(words, "\n\n"), 40.0)
	test.Error(t, err)
	test.T(t, len(paragraphs), len(words))
	for i, p := range paragraphs {
		test.String(t, p.Spans[0][0].Text, words[i])
	}
}

func TestTypesetNewline(t *testing.T) {
	typesetter := New(measure.Mono{Cell: 1.0})
	paragraphs, err := typesetter.Typeset(context.Background(), "aaa \n bbb\n\nccc", 40.0)
	test.Error(t, err)
	test.T(t, len(paragraphs), 2)

	p := paragraphs[0]
	test.T(t, len(p.Lines), 2)
	test.That(t, p.Items[p.Lines[0].End-1].IsForcedBreak(), "line ends at the newline")
	test.String(t, p.Spans[0][0].Text, "aaa")
	test.String(t, p.Spans[1][0].Text, "bbb")
}

func TestTypesetGreedy(t *testing.T) {
	typesetter := New(measure.Mono{Cell: 1.0})
	typesetter.Linebreaker = text.Greedy{}
	paragraphs, err := typesetter.Typeset(context.Background(), "aaa bbb ccc ddd", 8.0)
	test.Error(t, err)
	test.T(t, len(paragraphs), 1)

	lines := []string{}
	for _, spans := range paragraphs[0].Spans {
		words := []string{}
		for _, span := range spans {
			words = append(words, span.Text)
		}
		lines = append(lines, strings.Join(words, " "))
	}
	test.T(t, lines, []string{"aaa bbb", "ccc ddd"})
}

func TestTypesetErrors(t *testing.T) {
	typesetter := New(measure.Mono{Cell: 1.0})
	_, err := typesetter.Typeset(context.Background(), "text", 0.0)
	test.That(t, err != nil)
	_, err = typesetter.Typeset(context.Background(), "text", -1.0)
	test.That(t, err != nil)

	_, err = typesetter.Break(context.Background(), []text.Items{{text.Box(1.0, "a")}}, 10.0)
	test.That(t, errors.Is(err, text.ErrMalformed))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = typesetter.Typeset(ctx, "text", 10.0)
	test.That(t, errors.Is(err, context.Canceled))

	paragraphs, err := typesetter.Typeset(context.Background(), "", 10.0)
	test.Error(t, err)
	test.T(t, len(paragraphs), 0)
}
