// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"iter"

	"cogentcore.org/trase/math32"
	"cogentcore.org/trase/math32/minmax"
)

// Limits is an axis aligned box in the space of all [Aesthetics],
// with one min / max range per aesthetic dimension. A dimension
// is undefined until it has been set.
type Limits struct {
	// Ranges has the range for each aesthetic, indexed by [Aesthetics].
	// Only meaningful for dimensions that are set.
	Ranges [AestheticsN]minmax.F32

	set [AestheticsN]bool
}

// Set sets the range of the given aesthetic.
func (lm *Limits) Set(a Aesthetics, mn, mx float32) {
	lm.Ranges[a].Set(mn, mx)
	lm.set[a] = true
}

// IsSet returns true if the range of the given aesthetic has been set.
func (lm Limits) IsSet(a Aesthetics) bool {
	return a.IsValid() && lm.set[a]
}

// Range returns the range of the given aesthetic, or an error wrapping
// [ErrUnassignedAesthetic] if it has not been set.
func (lm Limits) Range(a Aesthetics) (minmax.F32, error) {
	if !lm.IsSet(a) {
		return minmax.F32{}, fmt.Errorf("plot.Limits: no range for %s: %w", a, ErrUnassignedAesthetic)
	}
	return lm.Ranges[a], nil
}

// Fit sets the range of the given aesthetic to the min and max of
// the given values, skipping NaNs. With no values to fit, the range
// is set to the degenerate [0, 0].
func (lm *Limits) Fit(a Aesthetics, values iter.Seq2[int, float32]) {
	r := minmax.F32{Min: math32.Inf(1), Max: math32.Inf(-1)}
	for _, v := range values {
		if math32.IsNaN(v) {
			continue
		}
		r.FitValInRange(v)
	}
	if !r.IsValid() {
		r = minmax.F32{}
	}
	lm.Set(a, r.Min, r.Max)
}

// CheckRange returns an error wrapping [ErrInvalidRange] if r.Min > r.Max
// (or either is NaN), and one wrapping [ErrDegenerateLimits] if
// r.Min == r.Max. A degenerate range is still usable: display
// mappings send it to the middle of the display range.
func CheckRange(r minmax.F32) error {
	switch {
	case !(r.Min <= r.Max):
		return fmt.Errorf("range [%v, %v]: %w", r.Min, r.Max, ErrInvalidRange)
	case r.IsDegenerate():
		return fmt.Errorf("range [%v, %v]: %w", r.Min, r.Max, ErrDegenerateLimits)
	}
	return nil
}
