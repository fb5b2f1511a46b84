// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/trase/base/errors"
	"cogentcore.org/trase/math32"
	"cogentcore.org/trase/paint/raster"
	"cogentcore.org/trase/plot"
	"cogentcore.org/trase/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a [plot.Backend] that records the calls made to it.
type recorder struct {
	calls  []string
	points []math32.Vector2
	color  color.Color
	width  float32
}

func (r *recorder) BeginPath() { r.calls = append(r.calls, "begin") }

func (r *recorder) MoveTo(x, y float32) {
	r.calls = append(r.calls, "move")
	r.points = append(r.points, math32.Vec2(x, y))
}

func (r *recorder) LineTo(x, y float32) {
	r.calls = append(r.calls, "line")
	r.points = append(r.points, math32.Vec2(x, y))
}

func (r *recorder) StrokeColor(c color.Color) {
	r.calls = append(r.calls, "color")
	r.color = c
}

func (r *recorder) StrokeWidth(w float32) {
	r.calls = append(r.calls, "width")
	r.width = w
}

func (r *recorder) Stroke() { r.calls = append(r.calls, "stroke") }

var square = plot.Viewport{X: 0, Y: 0, Width: 100, Height: 100}

func TestLine(t *testing.T) {
	d := plot.NewData().X([]float32{0, 1, 2}).Y([]float32{0, 10, 20})
	require.NoError(t, d.Err())
	ax := plot.NewAxis().SetLimits(0, 0, 2, 20)

	r := &recorder{}
	require.NoError(t, NewLine(d).Plot(r, square, ax))
	assert.Equal(t, []string{"begin", "move", "line", "line", "color", "width", "stroke"}, r.calls)
	assert.Equal(t, []math32.Vector2{math32.Vec2(0, 100), math32.Vec2(50, 50), math32.Vec2(100, 0)}, r.points)
	assert.Equal(t, color.RGBA{A: 255}, r.color)
	assert.Equal(t, float32(plot.DefaultLineWidth), r.width)
}

func TestLineStyler(t *testing.T) {
	d := plot.NewData().X([]float32{0, 1}).Y([]float32{1, 0})
	red := color.RGBA{R: 255, A: 255}
	ln := NewLine(d).Styler(func(ln *Line) {
		ln.Style.Color = red
		ln.Style.Width = 1
	})
	r := &recorder{}
	require.NoError(t, ln.Plot(r, plot.Viewport{X: 10, Y: 20, Width: 50, Height: 30}, plot.NewAxis().FitData(d)))
	assert.Equal(t, []math32.Vector2{math32.Vec2(10, 20), math32.Vec2(60, 50)}, r.points)
	assert.Equal(t, red, r.color)
	assert.Equal(t, float32(1), r.width)
}

func TestLineErrors(t *testing.T) {
	ax := plot.NewAxis().SetLimits(0, 0, 1, 1)

	r := &recorder{}
	err := NewLine(plot.NewData().X([]float32{0, 1})).Plot(r, square, ax)
	assert.ErrorIs(t, err, plot.ErrUnassignedAesthetic)
	err = NewLine(plot.NewData().Y([]float32{0, 1})).Plot(r, square, ax)
	assert.ErrorIs(t, err, plot.ErrUnassignedAesthetic)

	d := plot.NewData().X([]float32{0, 1}).Y([]float32{0, 1})
	err = NewLine(d).Plot(r, square, plot.NewAxis().SetLimits(1, 0, 0, 1))
	assert.ErrorIs(t, err, plot.ErrInvalidRange)
	err = NewLine(d).Plot(r, square, plot.NewAxis())
	assert.ErrorIs(t, err, plot.ErrInvalidRange)
	assert.Empty(t, r.calls)
}

func TestPairLen(t *testing.T) {
	xt := table.NewTable()
	require.NoError(t, table.AddColumn(xt, []float32{0, 1, 2}))
	yt := table.NewTable()
	require.NoError(t, table.AddColumn(yt, []float32{5, 6}))
	xb := errors.Log1(xt.Begin(0))
	xe := errors.Log1(xt.End(0))
	yb := errors.Log1(yt.Begin(0))
	ye := errors.Log1(yt.End(0))

	_, err := pairLen(xb, xe, yb, ye)
	assert.ErrorIs(t, err, plot.ErrDimensionMismatch)

	n, err := pairLen(xb, xe.Advance(-1), yb, ye)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLineEmpty(t *testing.T) {
	d := plot.NewData().X([]float32{}).Y([]float32{})
	require.NoError(t, d.Err())
	r := &recorder{}
	require.NoError(t, NewLine(d).Plot(r, square, plot.NewAxis().FitData(d)))
	assert.Empty(t, r.calls)
}

func TestLineDegenerate(t *testing.T) {
	d := plot.NewData().X([]float32{0, 1, 2}).Y([]float32{5, 5, 5})
	r := &recorder{}
	require.NoError(t, NewLine(d).Plot(r, square, plot.NewAxis().FitData(d)))
	assert.Equal(t, []math32.Vector2{math32.Vec2(0, 50), math32.Vec2(50, 50), math32.Vec2(100, 50)}, r.points)
}

func TestLineRaster(t *testing.T) {
	d := plot.NewData().X([]float32{0, 1}).Y([]float32{0.5, 0.5})
	rs := raster.New(image.Pt(100, 100), nil)
	require.NoError(t, NewLine(d).Plot(rs, square, plot.NewAxis().SetLimits(0, 0, 1, 1)))

	img := rs.Image()
	black := color.RGBA{A: 255}
	assert.Equal(t, black, img.RGBAAt(50, 50))
	assert.Equal(t, black, img.RGBAAt(20, 49))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(50, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(50, 80))
}

func ExampleLine() {
	d := plot.NewData().X([]float32{0, 1, 2}).Y([]float32{0, 10, 20})
	ax := plot.NewAxis().FitData(d)
	r := &recorder{}
	if err := NewLine(d).Plot(r, plot.Viewport{Width: 100, Height: 100}, ax); err != nil {
		fmt.Println(err)
	}
	fmt.Println(r.points)
	// Output: [(0, 100) (50, 50) (100, 0)]
}
