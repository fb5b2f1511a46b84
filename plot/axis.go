// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/trase/base/errors"
	"cogentcore.org/trase/math32"
	"cogentcore.org/trase/math32/minmax"
)

// AxisLimiter is the axis contract used by plotters: it returns the
// visible data window as (xmin, ymin) .. (xmax, ymax). The window is
// independent of the limits of any one data set, which it may crop or pad.
type AxisLimiter interface {
	Limits() math32.Box2
}

// Axis is the visible data window of a plot.
type Axis struct {
	// Window is the visible data range, Min = (xmin, ymin), Max = (xmax, ymax).
	Window math32.Box2
}

// NewAxis returns a new Axis with an empty window, ready for [Axis.FitData].
func NewAxis() *Axis {
	return &Axis{Window: math32.B2Empty()}
}

// Limits returns the visible window, implementing [AxisLimiter].
func (ax *Axis) Limits() math32.Box2 {
	return ax.Window
}

// SetLimits sets the visible window.
func (ax *Axis) SetLimits(xmin, ymin, xmax, ymax float32) *Axis {
	ax.Window = math32.B2(xmin, ymin, xmax, ymax)
	return ax
}

// FitData expands the window to include the x and y limits of the
// given data, for the dimensions that are set.
func (ax *Axis) FitData(d *Data) *Axis {
	lim := d.Limits()
	if xr, err := lim.Range(X); err == nil {
		ax.Window.Min.X = math32.Min(ax.Window.Min.X, xr.Min)
		ax.Window.Max.X = math32.Max(ax.Window.Max.X, xr.Max)
	}
	if yr, err := lim.Range(Y); err == nil {
		ax.Window.Min.Y = math32.Min(ax.Window.Min.Y, yr.Min)
		ax.Window.Max.Y = math32.Max(ax.Window.Max.Y, yr.Max)
	}
	return ax
}

// CheckWindow checks both dimensions of an axis window with [CheckRange].
func CheckWindow(win math32.Box2) error {
	return errors.Join(CheckRange(minmax.F32{Min: win.Min.X, Max: win.Max.X}), CheckRange(minmax.F32{Min: win.Min.Y, Max: win.Max.Y}))
}

// DataToPixel returns the affine transform from the data space window
// of an axis to pixel space in the viewport:
//
//	x' = vp.X + vp.Width * (x - xmin) / (xmax - xmin)
//	y' = vp.Y + vp.Height * (1 - (y - ymin) / (ymax - ymin))
//
// y is flipped, so larger values are drawn higher up. A degenerate
// window dimension maps every value to the middle of the viewport.
func DataToPixel(win math32.Box2, vp Viewport) math32.Matrix2 {
	m := math32.Identity2()
	if xw := win.Max.X - win.Min.X; xw != 0 {
		m.XX = vp.Width / xw
		m.X0 = vp.X - m.XX*win.Min.X
	} else {
		m.XX = 0
		m.X0 = vp.X + 0.5*vp.Width
	}
	if yh := win.Max.Y - win.Min.Y; yh != 0 {
		m.YY = -vp.Height / yh
		m.Y0 = vp.Y + vp.Height - m.YY*win.Min.Y
	} else {
		m.YY = 0
		m.Y0 = vp.Y + 0.5*vp.Height
	}
	return m
}
