package text

import (
	"fmt"
	"math"
)

// Parameters are the parameters of the optimal line breaker.
type Parameters struct {
	UpperAdjustmentRatio     float64 // maximum adjustment ratio of a feasible line
	ExtraFlagPenalty         float64 // added for two consecutive flagged breaks, eg. hyphens
	MismatchedFitnessPenalty float64 // added when the fitness class of consecutive lines differs by more than one
	EmergencyStretch         float64 // stretchability added to every line
	AllowOverfull            bool    // the last node removed from the active set breaks with a ratio of -1
	Looseness                int     // desired number of lines more (or less) than optimal
}

// DefaultParameters are the parameters of the first line breaking attempt.
var DefaultParameters = Parameters{
	UpperAdjustmentRatio:     4.0,
	ExtraFlagPenalty:         50.0,
	MismatchedFitnessPenalty: 10.0,
	EmergencyStretch:         0.0,
	AllowOverfull:            false,
	Looseness:                0,
}

// FitnessClass categorizes lines by their adjustment ratio. Consecutive lines of very different classes are penalized.
type FitnessClass int

// see FitnessClass
const (
	Tight FitnessClass = iota
	Normal
	Loose
	VeryLoose
)

func (c FitnessClass) String() string {
	switch c {
	case Tight:
		return "Tight"
	case Normal:
		return "Normal"
	case Loose:
		return "Loose"
	case VeryLoose:
		return "VeryLoose"
	}
	return fmt.Sprintf("FitnessClass(%d)", int(c))
}

// Fitness returns the fitness class for an adjustment ratio.
func Fitness(ratio float64) FitnessClass {
	if ratio < -0.5 {
		return Tight
	} else if ratio < 0.5 {
		return Normal
	} else if ratio < 1.0 {
		return Loose
	}
	return VeryLoose
}

// Demerits returns the demerits of a line with the given adjustment ratio ending in a break with the given penalty. Forced breaks ignore the penalty.
func Demerits(ratio, penalty float64, forced bool) float64 {
	badness := 1.0 + 100.0*math.Pow(math.Abs(ratio), 3.0)
	if forced {
		return badness * badness
	} else if 0.0 <= penalty {
		return (badness + penalty) * (badness + penalty)
	}
	return badness*badness - penalty*penalty
}

// node is the end of a feasible line, it links back to the node where the line starts
type node struct {
	prev     int // handle of the previous node, or -1 for the paragraph start
	b        Breakpoint
	line     int // index of the line ending here
	fitness  FitnessClass
	demerits float64 // total demerits from the paragraph start

	width, ratio        float64
	overfull, underfull bool
}

type nodeKey struct {
	line    int
	fitness FitnessClass
}

// KnuthLinebreak breaks a list of items using Donald Knuth's line breaking algorithm, minimizing the total demerits of the paragraph. It returns ErrInfeasible if no feasible set of breaks exists and overfull lines are not allowed. See Donald E. Knuth and Michael F. Plass, "Breaking Paragraphs into Lines", 1981
func KnuthLinebreak(items Items, width float64, params Parameters) ([]Line, error) {
	// nodes is the arena of all nodes created, active holds the handles of the active nodes
	nodes := []node{{
		prev:    -1,
		b:       Breakpoint{Index: -1},
		line:    -1,
		fitness: Normal,
	}}
	active := []int{0}

	for s := NewScanner(items); s.Scan(); {
		b := s.Breakpoint()
		if b.Item.Type == BoxType {
			return nil, fmt.Errorf("%w: box at %d used as break", ErrMalformed, b.Index)
		}
		forced := b.Item.IsForcedBreak()

		// best candidate per line index and fitness class
		best := map[nodeKey]int{}
		candidates := []node{}

		kept := make([]int, 0, len(active))
		for i, a := range active {
			n := nodes[a]
			start := n.b.After()
			W := b.Sum.Width - start.Width
			if b.Item.Type == PenaltyType {
				W += b.Item.Width
			}

			// the actual ratio does not include emergency stretch
			ratio, actual := 0.0, 0.0
			if W < width {
				stretch := b.Sum.Stretch - start.Stretch
				actual = math.Inf(1.0)
				if 0.0 < stretch {
					actual = (width - W) / stretch
				}
				stretch += params.EmergencyStretch
				ratio = math.Inf(1.0)
				if 0.0 < stretch {
					ratio = (width - W) / stretch
				}
			} else if width < W {
				shrink := b.Sum.Shrink - start.Shrink
				ratio = math.Inf(-1.0)
				if 0.0 < shrink {
					ratio = (width - W) / shrink
				}
				actual = ratio
			}
			overfull := ratio < -1.0

			// lines from this node can only get longer, and no line may skip a forced break
			if ratio < -1.0 || forced {
				if params.AllowOverfull && len(kept) == 0 && i == len(active)-1 {
					// break of last resort, the active set is now empty
					ratio = -1.0
				}
			} else {
				kept = append(kept, a)
			}
			if ratio < -1.0 || params.UpperAdjustmentRatio < ratio {
				continue
			}
			underfull := actual != ratio

			fitness := Fitness(ratio)
			penalty := b.Item.Penalty
			if !forced {
				if n.b.Item.Type == PenaltyType && n.b.Item.Flagged && b.Item.Type == PenaltyType && b.Item.Flagged {
					penalty += params.ExtraFlagPenalty
				}
				if 1 < fitness-n.fitness || 1 < n.fitness-fitness {
					penalty += params.MismatchedFitnessPenalty
				}
			}
			demerits := n.demerits + Demerits(ratio, penalty, forced)

			key := nodeKey{n.line + 1, fitness}
			if j, ok := best[key]; !ok || demerits < candidates[j].demerits {
				candidate := node{
					prev:      a,
					b:         b,
					line:      n.line + 1,
					fitness:   fitness,
					demerits:  demerits,
					width:     W,
					ratio:     ratio,
					overfull:  overfull,
					underfull: underfull,
				}
				if ok {
					candidates[j] = candidate
				} else {
					best[key] = len(candidates)
					candidates = append(candidates, candidate)
				}
			}
		}

		// new nodes precede the remaining active nodes, the most recently found first
		next := make([]int, 0, len(candidates)+len(kept))
		for j := len(candidates) - 1; 0 <= j; j-- {
			nodes = append(nodes, candidates[j])
			next = append(next, len(nodes)-1)
		}
		active = append(next, kept...)
		if len(active) == 0 {
			return nil, fmt.Errorf("%w: at item %d", ErrInfeasible, b.Index)
		}
	}

	// choose the active node with fewest total demerits
	chosen := active[0]
	for _, a := range active[1:] {
		if nodes[a].demerits < nodes[chosen].demerits {
			chosen = a
		}
	}

	// choose the node whose line count is closest to the desired looseness
	if params.Looseness != 0 {
		k := nodes[chosen].line
		bestDelta, bestDemerits := 0, nodes[chosen].demerits
		for _, a := range active {
			delta := nodes[a].line - k
			if params.Looseness <= delta && delta < bestDelta || bestDelta < delta && delta <= params.Looseness {
				bestDelta, bestDemerits = delta, nodes[a].demerits
				chosen = a
			} else if delta == bestDelta && nodes[a].demerits < bestDemerits {
				bestDemerits = nodes[a].demerits
				chosen = a
			}
		}
	}

	// use the chosen node to determine the optimum breakpoint sequence
	lines := make([]Line, nodes[chosen].line+1)
	for a := chosen; nodes[a].prev != -1; a = nodes[a].prev {
		n := nodes[a]
		lines[n.line] = Line{
			Start:     nodes[n.prev].b.Index + 1,
			End:       n.b.Index + 1,
			Ratio:     n.ratio,
			Width:     n.width,
			Overfull:  n.overfull,
			Underfull: n.underfull,
		}
	}
	return lines, nil
}
