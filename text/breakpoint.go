package text

import "fmt"

// RunningSum is the cumulative natural width, stretchability, and shrinkability of a prefix of items. Penalty widths are never included.
type RunningSum struct {
	Width, Stretch, Shrink float64
}

// Add returns the sum including item.
func (sum RunningSum) Add(item Item) RunningSum {
	if item.Type != PenaltyType {
		sum.Width += item.Width
	}
	if item.Type == GlueType {
		sum.Stretch += item.Stretch
		sum.Shrink += item.Shrink
	}
	return sum
}

// Sub returns the difference of two running sums, ie. the sums over the items in between.
func (sum RunningSum) Sub(other RunningSum) RunningSum {
	return RunningSum{
		Width:   sum.Width - other.Width,
		Stretch: sum.Stretch - other.Stretch,
		Shrink:  sum.Shrink - other.Shrink,
	}
}

func (sum RunningSum) String() string {
	return fmt.Sprintf("Sum[w=%.6g y=%.6g z=%.6g]", sum.Width, sum.Stretch, sum.Shrink)
}

// Breakpoint is a legal break position, with the running sum of the preceding items.
type Breakpoint struct {
	Item  Item
	Index int
	Sum   RunningSum // up to but excluding Item
}

// After returns the running sum from which the next line starts when breaking here. Glue broken at disappears, so it is consumed by this line.
func (b Breakpoint) After() RunningSum {
	if b.Item.Type == GlueType {
		return b.Sum.Add(b.Item)
	}
	return b.Sum
}

func (b Breakpoint) String() string {
	return fmt.Sprintf("%d:%v", b.Index, b.Item)
}

// Scanner enumerates the legal breakpoints of an item sequence in order. Glue is a breakpoint if it follows a box and its penalty is finite, penalties are breakpoints if their penalty is finite.
type Scanner struct {
	items      Items
	i          int
	sum        RunningSum
	prevWasBox bool
	cur        Breakpoint
}

// NewScanner returns a scanner over items.
func NewScanner(items Items) *Scanner {
	return &Scanner{
		items: items,
	}
}

// Scan advances to the next breakpoint and returns false when there are none left.
func (s *Scanner) Scan() bool {
	for s.i < len(s.items) {
		item, index := s.items[s.i], s.i
		legal := false
		if item.Type == GlueType {
			legal = s.prevWasBox && item.Penalty < Infinity
		} else if item.Type == PenaltyType {
			legal = item.Penalty < Infinity
		}
		if legal {
			s.cur = Breakpoint{
				Item:  item,
				Index: index,
				Sum:   s.sum,
			}
		}

		s.sum = s.sum.Add(item)
		s.prevWasBox = item.Type == BoxType
		s.i++
		if legal {
			return true
		}
	}
	return false
}

// Breakpoint returns the current breakpoint.
func (s *Scanner) Breakpoint() Breakpoint {
	return s.cur
}

// Breakpoints returns all breakpoints of items.
func Breakpoints(items Items) []Breakpoint {
	breakpoints := []Breakpoint{}
	for s := NewScanner(items); s.Scan(); {
		breakpoints = append(breakpoints, s.Breakpoint())
	}
	return breakpoints
}
