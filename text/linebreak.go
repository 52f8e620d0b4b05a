package text

import (
	"errors"
	"fmt"
	"math"
)

// See: Donald E. Knuth and Michael F. Plass, "Breaking Paragraphs into Lines", 1981
// Implementations:
//   https://github.com/bramstein/typeset (JavaScript)
//   https://github.com/robertknight/tex-linebreak (JavaScript)
//   https://github.com/akuchling/texlib (Python)

// Infinity is the penalty of a break that may never be taken, -Infinity is the penalty of a break that must be taken.
var Infinity = math.Inf(1.0)

// MaxStretch is the stretchability of the finishing glue of a paragraph. It is finite so that running sums remain subtractable after a forced break.
var MaxStretch = 100000.0

var (
	// ErrInfeasible is returned when no sequence of breaks can satisfy the parameters. It is recoverable by relaxing the parameters.
	ErrInfeasible = errors.New("no feasible line breaks")

	// ErrMalformed is returned for item sequences that break the paragraph invariants.
	ErrMalformed = errors.New("malformed item sequence")

	// ErrUnresolvable is returned when all fallback attempts failed.
	ErrUnresolvable = errors.New("paragraph cannot be broken into lines")
)

// Type is the item type.
type Type int

// see Type
const (
	BoxType Type = iota
	GlueType
	PenaltyType
)

func (t Type) String() string {
	switch t {
	case BoxType:
		return "Box"
	case GlueType:
		return "Glue"
	case PenaltyType:
		return "Penalty"
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Item is a box, glue or penalty item. Boxes are unbreakable content of fixed width, glue is elastic space, and penalties are conditional breaks.
type Item struct {
	Type
	Width, Stretch, Shrink float64 // Width is the natural width, Stretch the width that can be added, and Shrink that can be removed
	Penalty                float64 // aesthetic cost of breaking at the glue or penalty
	Flagged                bool    // penalties that should not be broken at on consecutive lines, eg. hyphens
	Text                   string  // box text, or the text inserted when breaking at a penalty
	Font                   Measurer
}

func (item Item) String() string {
	switch item.Type {
	case BoxType:
		if item.Text == "" {
			return fmt.Sprintf("Box[w=%.6g]", item.Width)
		}
		return fmt.Sprintf("Box[w=%.6g %q]", item.Width, item.Text)
	case GlueType:
		return fmt.Sprintf("Glue[w=%.6g y=%.6g z=%.6g p=%.6g]", item.Width, item.Stretch, item.Shrink, item.Penalty)
	case PenaltyType:
		if item.Flagged {
			return fmt.Sprintf("Penalty[w=%.6g p=%.6g flagged]", item.Width, item.Penalty)
		}
		return fmt.Sprintf("Penalty[w=%.6g p=%.6g]", item.Width, item.Penalty)
	}
	return "?"
}

// IsForcedBreak returns true for penalties that must be broken at.
func (item Item) IsForcedBreak() bool {
	return item.Type == PenaltyType && item.Penalty <= -Infinity
}

// Box returns a box item (a syllable or a word) of the given fixed width.
func Box(width float64, text string) Item {
	return Item{
		Type:  BoxType,
		Width: width,
		Text:  text,
	}
}

// Glue returns a glue item (a space) where width is the natural width, stretch the width that can be added, shrink the width that can be removed, and penalty the cost of breaking at it.
func Glue(width, stretch, shrink, penalty float64) Item {
	return Item{
		Type:    GlueType,
		Width:   width,
		Stretch: stretch,
		Shrink:  shrink,
		Penalty: penalty,
	}
}

// Penalty returns a penalty item (explicit or possible newline, hyphen) with a given penalization factor. For hyphen insertion, width is the hyphen width and flagged should be set to discourage multiple hyphened lines next to each other. For explicit newlines the penalty is -Infinity.
func Penalty(width, penalty float64, flagged bool) Item {
	return Item{
		Type:    PenaltyType,
		Width:   width,
		Penalty: penalty,
		Flagged: flagged,
	}
}

// Items is a paragraph as a sequence of boxes, glue, and penalties.
type Items []Item

// Box adds a box item.
func (items Items) Box(width float64, text string) Items {
	return append(items, Box(width, text))
}

// Glue adds a glue item.
func (items Items) Glue(width, stretch, shrink, penalty float64) Items {
	return append(items, Glue(width, stretch, shrink, penalty))
}

// Penalty adds a penalty item.
func (items Items) Penalty(width, penalty float64, flagged bool) Items {
	return append(items, Penalty(width, penalty, flagged))
}

// Validate checks that the items end in a forced break, which guarantees that a final break exists.
func (items Items) Validate() error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items", ErrMalformed)
	} else if !items[len(items)-1].IsForcedBreak() {
		return fmt.Errorf("%w: last item %v is not a forced break", ErrMalformed, items[len(items)-1])
	}
	return nil
}

// InitialItems returns the non-breakable glue starting a paragraph, which carries the indentation.
func InitialItems(indent float64) Items {
	return Items{Glue(indent, 0.0, 0.0, Infinity)}
}

// FinalItems returns the glue and forced break that finish a paragraph. The glue absorbs the remaining width of the last line.
func FinalItems() Items {
	return Items{
		Glue(0.0, MaxStretch, 0.0, Infinity),
		Penalty(0.0, -Infinity, true),
	}
}

// Line is a line of a broken paragraph, it covers the items in [Start,End). Ratio is the adjustment ratio of its glue, Width its natural width.
type Line struct {
	Start, End int
	Ratio      float64
	Width      float64
	Overfull   bool // glue must shrink more than allowed
	Underfull  bool // glue must stretch more than allowed without emergency stretch
}

func (line Line) String() string {
	s := fmt.Sprintf("Line[%d:%d r=%.4g w=%.6g", line.Start, line.End, line.Ratio, line.Width)
	if line.Overfull {
		s += " overfull"
	}
	if line.Underfull {
		s += " underfull"
	}
	return s + "]"
}

// Linebreaker is an interface for line breaking algorithms. Given a set of items and a desired line width, it returns the lines covering all items.
type Linebreaker interface {
	Linebreak(Items, float64) ([]Line, error)
}

// Greedy is the first-fit line breaker.
type Greedy struct{}

// Linebreak implements Linebreaker.
func (Greedy) Linebreak(items Items, width float64) ([]Line, error) {
	if err := items.Validate(); err != nil {
		return nil, err
	}
	return GreedyLinebreak(items, width), nil
}

// Knuth is a single attempt of the optimal line breaker.
type Knuth struct {
	Parameters
}

// Linebreak implements Linebreaker.
func (k Knuth) Linebreak(items Items, width float64) ([]Line, error) {
	if err := items.Validate(); err != nil {
		return nil, err
	}
	return KnuthLinebreak(items, width, k.Parameters)
}

// adjustmentRatio returns the ratio by which the glue of a line with the given natural width, stretch, and shrink must be adjusted to fill width. It returns +Inf or -Inf when the line cannot be adjusted.
func adjustmentRatio(natural, stretch, shrink, width float64) float64 {
	if natural < width {
		if 0.0 < stretch {
			return (width - natural) / stretch
		}
		return math.Inf(1.0)
	} else if width < natural {
		if 0.0 < shrink {
			return (width - natural) / shrink
		}
		return math.Inf(-1.0)
	}
	return 0.0
}
