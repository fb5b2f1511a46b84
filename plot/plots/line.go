// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots has the plot types (geometries) that draw [plot.Data]
// onto a [plot.Backend].
package plots

import (
	"fmt"
	"log/slog"

	"cogentcore.org/trase/base/errors"
	"cogentcore.org/trase/math32"
	"cogentcore.org/trase/plot"
	"cogentcore.org/trase/table"
)

// Line draws a line through the X, Y points of its data, in row order.
type Line struct {
	// Data is the plot data, which must have X and Y columns.
	Data *plot.Data

	// Style is the style of the line.
	Style plot.LineStyle
}

// NewLine returns a Line for the given data with the default style.
func NewLine(data *plot.Data) *Line {
	ln := &Line{Data: data}
	ln.Style.Defaults()
	return ln
}

// Styler calls the given styling function on the Line and returns it,
// for use in a chain of calls.
func (ln *Line) Styler(f func(ln *Line)) *Line {
	f(ln)
	return ln
}

// Plot draws the Line to the backend, within the given pixel viewport,
// showing the data window of the given axis. The X and Y columns must
// be assigned and of equal length, or an error is returned before
// anything is drawn. A degenerate axis window is drawn at the middle
// of the viewport, with a logged warning.
func (ln *Line) Plot(b plot.Backend, vp plot.Viewport, ax plot.AxisLimiter) error {
	xb, xe, err := ln.cursors(plot.X)
	if err != nil {
		return err
	}
	yb, ye, err := ln.cursors(plot.Y)
	if err != nil {
		return err
	}
	n, err := pairLen(xb, xe, yb, ye)
	if err != nil {
		return fmt.Errorf("plots.Line: %w", err)
	}
	if n == 0 {
		return nil
	}

	win := ax.Limits()
	if err := plot.CheckWindow(win); err != nil {
		if errors.Is(err, plot.ErrInvalidRange) {
			return fmt.Errorf("plots.Line: axis window: %w", err)
		}
		slog.Warn("plots.Line: degenerate axis window, drawing at viewport middle", "err", err)
	}
	m := plot.DataToPixel(win, vp)

	b.BeginPath()
	p := m.MulVector2AsPoint(math32.Vec2(xb.Value(), yb.Value()))
	b.MoveTo(p.X, p.Y)
	for xc, yc := xb.Next(), yb.Next(); xc.Less(xe); xc, yc = xc.Next(), yc.Next() {
		p = m.MulVector2AsPoint(math32.Vec2(xc.Value(), yc.Value()))
		b.LineTo(p.X, p.Y)
	}
	b.StrokeColor(ln.Style.Color)
	b.StrokeWidth(ln.Style.Width)
	b.Stroke()
	return nil
}

// pairLen returns the number of points in the x and y cursor ranges,
// which must match. Columns of one [plot.Data] share a table and so
// always match; cursors over different tables may not.
func pairLen(xb, xe, yb, ye table.Cursor) (int, error) {
	n := xe.Sub(xb)
	if ny := ye.Sub(yb); ny != n {
		return 0, fmt.Errorf("%d x values and %d y values: %w", n, ny, plot.ErrDimensionMismatch)
	}
	return n, nil
}

func (ln *Line) cursors(a plot.Aesthetics) (begin, end table.Cursor, err error) {
	begin, err = ln.Data.Begin(a)
	if err != nil {
		return
	}
	end, err = ln.Data.End(a)
	return
}
