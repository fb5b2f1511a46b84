// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [plot.Backend] that strokes paths into an
// [image.RGBA], using the golang.org/x/image/vector rasterizer.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/trase/base/iox/imagex"
	"cogentcore.org/trase/math32"
	"golang.org/x/image/vector"
)

// Renderer is a raster image backend for plotting.
// Strokes are drawn as one quad per segment, with square joins.
type Renderer struct {
	image *image.RGBA
	ras   *vector.Rasterizer

	// path is the current path, as a list of sub-paths.
	path [][]math32.Vector2

	color color.Color
	width float32
}

// New returns a new Renderer drawing into the given image.
// If img is nil, a new image of the given size is made.
func New(size image.Point, img *image.RGBA) *Renderer {
	if img == nil {
		img = image.NewRGBA(image.Rectangle{Max: size})
	}
	b := img.Bounds()
	rs := &Renderer{image: img, color: color.Black, width: 1}
	rs.ras = vector.NewRasterizer(b.Dx(), b.Dy())
	rs.ras.DrawOp = draw.Over
	return rs
}

// Image returns the image being drawn into.
func (rs *Renderer) Image() *image.RGBA { return rs.image }

// Save saves the image to the given file, in the format
// given by its extension (e.g., .png).
func (rs *Renderer) Save(filename string) error {
	return imagex.Save(rs.image, filename)
}

// BeginPath starts a new, empty path.
func (rs *Renderer) BeginPath() {
	rs.path = rs.path[:0]
}

// MoveTo starts a new sub-path at the given point.
func (rs *Renderer) MoveTo(x, y float32) {
	rs.path = append(rs.path, []math32.Vector2{math32.Vec2(x, y)})
}

// LineTo adds a segment to the current sub-path,
// starting one if there is none.
func (rs *Renderer) LineTo(x, y float32) {
	if len(rs.path) == 0 {
		rs.MoveTo(x, y)
		return
	}
	last := len(rs.path) - 1
	rs.path[last] = append(rs.path[last], math32.Vec2(x, y))
}

// StrokeColor sets the color for subsequent strokes.
func (rs *Renderer) StrokeColor(c color.Color) {
	rs.color = c
}

// StrokeWidth sets the line width for subsequent strokes.
func (rs *Renderer) StrokeWidth(w float32) {
	rs.width = w
}

// Stroke draws the current path with the current color and width.
func (rs *Renderer) Stroke() {
	if rs.width <= 0 || rs.color == nil {
		return
	}
	b := rs.image.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
	rs.ras.DrawOp = draw.Over
	off := math32.Vec2(float32(b.Min.X), float32(b.Min.Y))
	hw := 0.5 * rs.width
	drawn := false
	for _, sp := range rs.path {
		for i, p := range sp {
			p = p.Sub(off)
			if i > 0 {
				rs.segment(sp[i-1].Sub(off), p, hw)
			}
			if len(sp) > 1 {
				rs.square(p, hw)
				drawn = true
			}
		}
	}
	if !drawn {
		return
	}
	rs.ras.Draw(rs.image, b, image.NewUniform(rs.color), image.Point{})
}

// segment adds the quad covering the segment from p0 to p1.
func (rs *Renderer) segment(p0, p1 math32.Vector2, hw float32) {
	d := p1.Sub(p0)
	if d.Length() == 0 {
		return
	}
	n := d.Normal().Rot90CCW().MulScalar(hw)
	rs.polygon(p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n))
}

// square adds a square join of half width hw centered on p.
func (rs *Renderer) square(p math32.Vector2, hw float32) {
	// same winding as the segment quads, so overlaps add up
	rs.polygon(math32.Vec2(p.X-hw, p.Y-hw), math32.Vec2(p.X-hw, p.Y+hw), math32.Vec2(p.X+hw, p.Y+hw), math32.Vec2(p.X+hw, p.Y-hw))
}

func (rs *Renderer) polygon(pts ...math32.Vector2) {
	rs.ras.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		rs.ras.LineTo(p.X, p.Y)
	}
	rs.ras.ClosePath()
}
