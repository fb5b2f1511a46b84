// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"

	"cogentcore.org/trase/math32"
	"cogentcore.org/trase/math32/minmax"
)

// Aesthetics are the roles that a column of data can play in a plot:
// each maps data values onto one visual channel. The set is closed;
// every aesthetic has a stable index, used for its dimension in [Limits],
// and a pair of display mapping functions.
type Aesthetics int32

const (
	// X is the data to display on the x axis of the plot.
	X Aesthetics = iota

	// Y is the data to display on the y axis of the plot.
	Y

	// Color is the color of each plotting element, scaled from 0 to 1.
	Color

	// Size is the size of each plotting element, scaled from 1 pixel
	// to 1/20 of the height of the y axis by default.
	Size

	// AestheticsN is the number of aesthetics.
	AestheticsN
)

// aesthetic is the registry record for one [Aesthetics] value.
type aesthetic struct {
	name string

	// toDisplay maps a data value into the display range, given the
	// data range of this aesthetic.
	toDisplay func(v float32, data, disp minmax.F32) float32

	// fromDisplay is the inverse of toDisplay.
	fromDisplay func(v float32, data, disp minmax.F32) float32
}

var aesthetics = [AestheticsN]aesthetic{
	X:     {name: "x", toDisplay: linearToDisplay, fromDisplay: linearFromDisplay},
	Y:     {name: "y", toDisplay: linearToDisplay, fromDisplay: linearFromDisplay},
	Color: {name: "color", toDisplay: clippedToDisplay, fromDisplay: linearFromDisplay},
	Size:  {name: "size", toDisplay: linearToDisplay, fromDisplay: linearFromDisplay},
}

// AestheticsValues returns all the [Aesthetics] values, in index order.
func AestheticsValues() []Aesthetics {
	return []Aesthetics{X, Y, Color, Size}
}

// IsValid returns true if a is one of the defined aesthetics.
func (a Aesthetics) IsValid() bool {
	return a >= 0 && a < AestheticsN
}

// Index returns the integer index of the aesthetic, 0..3.
func (a Aesthetics) Index() int {
	return int(a)
}

// String returns the display name of the aesthetic.
func (a Aesthetics) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("Aesthetics(%d)", int32(a))
	}
	return aesthetics[a].name
}

// SetString sets the aesthetic from its name, case insensitive.
func (a *Aesthetics) SetString(s string) error {
	for i, ae := range aesthetics {
		if strings.EqualFold(ae.name, s) {
			*a = Aesthetics(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Aesthetics: %w", s, ErrInvalidAesthetic)
}

// ToDisplay maps the data value v into the display range disp, by
// linear rescaling from this aesthetic's range in lim. It is
// orientation agnostic: pass disp with Min > Max to flip, as is
// done for the y axis in screen coordinates. If the data range is
// degenerate (Min == Max), the result is the midpoint of disp.
// It panics if a is not a valid aesthetic.
func (a Aesthetics) ToDisplay(v float32, lim Limits, disp minmax.F32) float32 {
	a.mustBeValid("ToDisplay")
	return aesthetics[a].toDisplay(v, lim.Ranges[a], disp)
}

// FromDisplay is the inverse of [Aesthetics.ToDisplay]: it maps the
// display value v back into this aesthetic's data range in lim.
// With a degenerate data or display range it returns the data Min.
// It panics if a is not a valid aesthetic.
func (a Aesthetics) FromDisplay(v float32, lim Limits, disp minmax.F32) float32 {
	a.mustBeValid("FromDisplay")
	return aesthetics[a].fromDisplay(v, lim.Ranges[a], disp)
}

func (a Aesthetics) mustBeValid(fun string) {
	if !a.IsValid() {
		panic(fmt.Sprintf("plot.Aesthetics.%s: %s: %v", fun, a, ErrInvalidAesthetic))
	}
}

func linearToDisplay(v float32, data, disp minmax.F32) float32 {
	if data.IsDegenerate() {
		return disp.Midpoint()
	}
	return disp.Min + (v-data.Min)*(disp.Max-disp.Min)/(data.Max-data.Min)
}

func linearFromDisplay(v float32, data, disp minmax.F32) float32 {
	if data.IsDegenerate() || disp.IsDegenerate() {
		return data.Min
	}
	return data.Min + (v-disp.Min)*(data.Max-data.Min)/(disp.Max-disp.Min)
}

// clippedToDisplay is linear but never leaves the display range,
// so that palette lookups stay in bounds.
func clippedToDisplay(v float32, data, disp minmax.F32) float32 {
	d := linearToDisplay(v, data, disp)
	lo, hi := math32.Min(disp.Min, disp.Max), math32.Max(disp.Min, disp.Max)
	return math32.Max(lo, math32.Min(hi, d))
}

// Viewport is a pixel space rectangle into which data is drawn.
type Viewport struct {
	X, Y, Width, Height float32
}

// Box returns the viewport as a [math32.Box2].
func (vp Viewport) Box() math32.Box2 {
	return math32.B2(vp.X, vp.Y, vp.X+vp.Width, vp.Y+vp.Height)
}

// DefaultDisplay returns the conventional display range for the aesthetic
// within the given viewport: x spans the viewport width, y spans its
// height flipped so that larger values are higher up, color is 0 to 1,
// and size is 1 pixel to 1/20 of the viewport height.
func DefaultDisplay(a Aesthetics, vp Viewport) minmax.F32 {
	switch a {
	case X:
		return minmax.F32{Min: vp.X, Max: vp.X + vp.Width}
	case Y:
		return minmax.F32{Min: vp.Y + vp.Height, Max: vp.Y}
	case Color:
		return minmax.F32{Min: 0, Max: 1}
	case Size:
		return minmax.F32{Min: 1, Max: math32.Max(1, vp.Height/20)}
	}
	return minmax.F32{}
}
