package text

import (
	"errors"
	"fmt"
)

// Fallback is the optimal line breaker retrying with relaxed parameters when a paragraph has no feasible solution. The first attempt uses Parameters, the second allows overfull lines with a looseness of -2 and an upper adjustment ratio of 10, and the third adds an emergency stretch of 5% of the line width if the second still has overfull lines.
type Fallback struct {
	Parameters

	// Trace is called after every attempt, if set.
	Trace func(attempt int, params Parameters, err error)
}

// Linebreak breaks items into lines with the default parameters, retrying with relaxed parameters when needed.
func Linebreak(items Items, width float64) ([]Line, error) {
	return Fallback{Parameters: DefaultParameters}.Linebreak(items, width)
}

// Linebreak implements Linebreaker.
func (f Fallback) Linebreak(items Items, width float64) ([]Line, error) {
	if err := items.Validate(); err != nil {
		return nil, err
	}

	// optimistic: no overfull lines
	params := f.Parameters
	lines, err := f.attempt(1, items, width, params)
	if err == nil {
		return lines, nil
	} else if !errors.Is(err, ErrInfeasible) {
		return nil, err
	}

	params.AllowOverfull = true
	params.Looseness = -2
	params.UpperAdjustmentRatio = 10.0
	if lines, err = f.attempt(2, items, width, params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnresolvable, err)
	} else if !hasOverfull(lines) {
		return lines, nil
	}

	// overfull lines despite our best effort
	params.EmergencyStretch = 0.05 * width
	if lines, err = f.attempt(3, items, width, params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnresolvable, err)
	}
	return lines, nil
}

func (f Fallback) attempt(n int, items Items, width float64, params Parameters) ([]Line, error) {
	lines, err := KnuthLinebreak(items, width, params)
	if f.Trace != nil {
		f.Trace(n, params, err)
	}
	return lines, err
}

func hasOverfull(lines []Line) bool {
	for _, line := range lines {
		if line.Overfull {
			return true
		}
	}
	return false
}
