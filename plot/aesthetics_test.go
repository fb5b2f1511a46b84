// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"cogentcore.org/trase/base/tolassert"
	"cogentcore.org/trase/math32"
	"cogentcore.org/trase/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestAestheticsRegistry(t *testing.T) {
	names := []string{"x", "y", "color", "size"}
	for i, a := range AestheticsValues() {
		assert.Equal(t, i, a.Index())
		assert.Equal(t, names[i], a.String())
		assert.True(t, a.IsValid())

		var b Aesthetics
		assert.NoError(t, b.SetString(names[i]))
		assert.Equal(t, a, b)
	}
	assert.Equal(t, 4, int(AestheticsN))
	assert.False(t, AestheticsN.IsValid())
	assert.False(t, Aesthetics(-1).IsValid())
	assert.Equal(t, "Aesthetics(7)", Aesthetics(7).String())

	var b Aesthetics
	assert.NoError(t, b.SetString("Color"))
	assert.Equal(t, Color, b)
	assert.ErrorIs(t, b.SetString("shape"), ErrInvalidAesthetic)

	var lim Limits
	unit := minmax.F32{Min: 0, Max: 1}
	assert.PanicsWithValue(t, "plot.Aesthetics.ToDisplay: Aesthetics(7): plot: invalid aesthetic", func() {
		Aesthetics(7).ToDisplay(0, lim, unit)
	})
	assert.Panics(t, func() { AestheticsN.FromDisplay(0, lim, unit) })
}

func TestToDisplay(t *testing.T) {
	var lim Limits
	lim.Set(X, 0, 2)
	lim.Set(Y, 0, 20)
	lim.Set(Color, -1, 1)
	lim.Set(Size, 10, 20)

	px := minmax.F32{Min: 0, Max: 100}
	assert.Equal(t, float32(50), X.ToDisplay(1, lim, px))
	assert.Equal(t, float32(0), X.ToDisplay(0, lim, px))
	assert.Equal(t, float32(100), X.ToDisplay(2, lim, px))

	// the y flip is done by the caller, with reversed display bounds
	flip := minmax.F32{Min: 100, Max: 0}
	assert.Equal(t, float32(100), Y.ToDisplay(0, lim, flip))
	assert.Equal(t, float32(25), Y.ToDisplay(15, lim, flip))
	assert.Equal(t, float32(75), Y.ToDisplay(15, lim, px))

	unit := minmax.F32{Min: 0, Max: 1}
	assert.Equal(t, float32(0.75), Color.ToDisplay(0.5, lim, unit))
	// color never leaves the display range
	assert.Equal(t, float32(1), Color.ToDisplay(3, lim, unit))
	assert.Equal(t, float32(0), Color.ToDisplay(-3, lim, unit))

	// x is not clipped
	assert.Equal(t, float32(150), X.ToDisplay(3, lim, px))

	assert.Equal(t, float32(3), Size.ToDisplay(15, lim, minmax.F32{Min: 1, Max: 5}))
	assert.Equal(t, float32(15), Size.FromDisplay(3, lim, minmax.F32{Min: 1, Max: 5}))
}

func TestDisplayRoundTrip(t *testing.T) {
	var lim Limits
	lim.Set(X, -3, 7)
	lim.Set(Y, 0.5, 0.75)
	lim.Set(Color, 0, 1000)
	lim.Set(Size, 2, 2) // degenerate

	values := []float32{-3, -1.25, 0, 0.6, 2, 7, 12, 999}
	disps := []minmax.F32{{Min: 0, Max: 640}, {Min: 480, Max: 0}, {Min: 0, Max: 1}, {Min: 1, Max: 24}}
	for _, a := range AestheticsValues() {
		for _, disp := range disps {
			for _, v := range values {
				d := a.ToDisplay(v, lim, disp)
				rt := a.ToDisplay(a.FromDisplay(d, lim, disp), lim, disp)
				tolassert.EqualTol(t, d, rt, 1.0e-4*max(1, math32.Abs(d)), "%s %v %v", a, disp, v)
			}
		}
	}
}

func TestDegenerateMapping(t *testing.T) {
	var lim Limits
	lim.Set(X, 5, 5)
	px := minmax.F32{Min: 0, Max: 100}
	for _, v := range []float32{-10, 5, 5.5, 1e6} {
		assert.Equal(t, float32(50), X.ToDisplay(v, lim, px))
	}
	assert.Equal(t, float32(5), X.FromDisplay(50, lim, px))
	assert.Equal(t, float32(5), X.FromDisplay(0, lim, px))

	d := NewData().XRange(5, 5)
	assert.NoError(t, d.Err())
	assert.Equal(t, float32(50), X.ToDisplay(12, d.Limits(), px))
	assert.ErrorIs(t, CheckRange(d.Limits().Ranges[X]), ErrDegenerateLimits)

	// a degenerate display range maps back to the data min
	lim.Set(Y, 0, 10)
	assert.Equal(t, float32(0), Y.FromDisplay(3, lim, minmax.F32{Min: 7, Max: 7}))
}

func TestDefaultDisplay(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 200, Height: 100}
	assert.Equal(t, minmax.F32{Min: 10, Max: 210}, DefaultDisplay(X, vp))
	assert.Equal(t, minmax.F32{Min: 120, Max: 20}, DefaultDisplay(Y, vp))
	assert.Equal(t, minmax.F32{Min: 0, Max: 1}, DefaultDisplay(Color, vp))
	assert.Equal(t, minmax.F32{Min: 1, Max: 5}, DefaultDisplay(Size, vp))
	assert.Equal(t, minmax.F32{}, DefaultDisplay(AestheticsN, vp))
	assert.Equal(t, minmax.F32{Min: 1, Max: 1}, DefaultDisplay(Size, Viewport{Width: 10, Height: 10}))
}
