package text

// GreedyLinebreak breaks a list of items using a first-fit line breaking algorithm. A line is ended at the last breakpoint before its natural width exceeds the line width. This is much faster than Knuth's algorithm but may produce uneven lines.
func GreedyLinebreak(items Items, width float64) []Line {
	lines := []Line{}
	end := -1            // index of the item ending the previous line
	base := RunningSum{} // running sum at the start of the current line

	// last candidate breakpoint with its natural width and ratio relative to base
	var prev *Breakpoint
	prevWidth, prevRatio := 0.0, 0.0

	for s := NewScanner(items); s.Scan(); {
		b := s.Breakpoint()
		W, ratio := greedyLine(b, base, width)
		if width < W && prev != nil {
			lines = append(lines, Line{
				Start:    end + 1,
				End:      prev.Index + 1,
				Ratio:    prevRatio,
				Width:    prevWidth,
				Overfull: prevRatio < -1.0,
			})
			end = prev.Index
			base = prev.After()
			W, ratio = greedyLine(b, base, width)
		}

		if b.Item.IsForcedBreak() {
			// natural width is not computed for forced breaks
			lines = append(lines, Line{
				Start: end + 1,
				End:   b.Index + 1,
			})
			end = b.Index
			base = b.Sum
			prev = nil
			continue
		}

		prev = &b
		prevWidth, prevRatio = W, ratio
	}
	return lines
}

// greedyLine returns the natural width and adjustment ratio of the line from base to b.
func greedyLine(b Breakpoint, base RunningSum, width float64) (float64, float64) {
	sum := b.Sum.Sub(base)
	if b.Item.Type == PenaltyType {
		sum.Width += b.Item.Width
	}
	return sum.Width, adjustmentRatio(sum.Width, sum.Stretch, sum.Shrink, width)
}
