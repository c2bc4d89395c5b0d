// SPDX-License-Identifier: MIT
// Package: qubogrid/embed
//
// options.go — functional options for Driver.
//
// Invalid values are recorded and surfaced by Search/SearchFixed as
// ErrOptionViolation; constructors never panic.

package embed

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/hardware"
)

// Defaults for a Driver.
const (
	DefaultGroupSize = 3
	DefaultMaxSize   = 40
)

// DefaultSchedule returns the stock size increments.
func DefaultSchedule() []int {
	return []int{0, 1, 2, 3, 4, 6, 8}
}

// Option configures a Driver.
type Option func(*Options)

// Options holds the driver configuration.
type Options struct {
	GroupSize int
	Shape     hardware.Shape
	Schedule  []int
	MaxSize   int
	OnAttempt func(Attempt)

	err error
}

// DefaultOptions returns group size 3 on a grid, the stock schedule, a
// size cap of 40 and a no-op attempt hook.
func DefaultOptions() Options {
	return Options{
		GroupSize: DefaultGroupSize,
		Shape:     hardware.ShapeGrid,
		Schedule:  DefaultSchedule(),
		MaxSize:   DefaultMaxSize,
		OnAttempt: func(Attempt) {},
	}
}

func (o *Options) violate(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithGroupSize sets the clique size per hardware group (≥ 1).
func WithGroupSize(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.violate("group size must be ≥ 1 (%d)", k)
			return
		}
		o.GroupSize = k
	}
}

// WithShape selects grid or line hardware.
func WithShape(s hardware.Shape) Option {
	return func(o *Options) {
		if s != hardware.ShapeGrid && s != hardware.ShapeLine {
			o.violate("unknown shape %q", s)
			return
		}
		o.Shape = s
	}
}

// WithSchedule sets the size increments. They must be non-empty,
// non-negative and non-decreasing.
func WithSchedule(incs []int) Option {
	return func(o *Options) {
		if len(incs) == 0 {
			o.violate("empty schedule")
			return
		}
		for i, inc := range incs {
			if inc < 0 || (i > 0 && inc < incs[i-1]) {
				o.violate("schedule must be non-negative and non-decreasing: %v", incs)
				return
			}
		}
		o.Schedule = append([]int(nil), incs...)
	}
}

// WithMaxSize caps the hardware size (≥ 1).
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("max size must be ≥ 1 (%d)", n)
			return
		}
		o.MaxSize = n
	}
}

// WithOnAttempt registers a hook called after every attempt.
func WithOnAttempt(fn func(Attempt)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAttempt = fn
		}
	}
}
