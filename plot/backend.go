// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "image/color"

// Backend is the drawing surface that plotters render to: a minimal
// imperative vector path API in pixel coordinates.
type Backend interface {
	// BeginPath starts a new, empty path.
	BeginPath()

	// MoveTo starts a new sub-path at the given point.
	MoveTo(x, y float32)

	// LineTo adds a straight segment from the current point.
	LineTo(x, y float32)

	// StrokeColor sets the color for subsequent strokes.
	StrokeColor(c color.Color)

	// StrokeWidth sets the line width for subsequent strokes.
	StrokeWidth(w float32)

	// Stroke draws the outline of the current path.
	Stroke()
}
