// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/trase/base/iox/imagex"
	"cogentcore.org/trase/plot"
	"github.com/stretchr/testify/assert"
)

var _ plot.Backend = (*Renderer)(nil)

var red = color.RGBA{R: 255, A: 255}

func TestStrokeHorizontal(t *testing.T) {
	rs := New(image.Pt(20, 20), nil)
	rs.BeginPath()
	rs.MoveTo(2, 10)
	rs.LineTo(18, 10)
	rs.StrokeColor(red)
	rs.StrokeWidth(4)
	rs.Stroke()

	img := rs.Image()
	assert.Equal(t, red, img.RGBAAt(10, 10))
	assert.Equal(t, red, img.RGBAAt(10, 8))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 15))
}

func TestStrokeCorner(t *testing.T) {
	rs := New(image.Pt(20, 20), nil)
	rs.BeginPath()
	rs.MoveTo(4, 4)
	rs.LineTo(16, 4)
	rs.LineTo(16, 16)
	rs.StrokeColor(red)
	rs.StrokeWidth(2)
	rs.Stroke()

	img := rs.Image()
	assert.Equal(t, red, img.RGBAAt(10, 4))
	assert.Equal(t, red, img.RGBAAt(16, 10))
	// the square join fills the outer corner
	assert.Equal(t, red, img.RGBAAt(16, 3))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(8, 12))
}

func TestStrokeNothing(t *testing.T) {
	rs := New(image.Pt(10, 10), nil)
	rs.BeginPath()
	rs.MoveTo(5, 5)
	rs.Stroke()
	rs.BeginPath()
	rs.LineTo(1, 1) // starts a sub-path
	rs.LineTo(8, 1)
	rs.StrokeWidth(0)
	rs.Stroke()
	assert.Equal(t, image.NewRGBA(image.Rect(0, 0, 10, 10)).Pix, rs.Image().Pix)
}

func TestStrokeOffsetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 30, 30))
	rs := New(image.Point{}, img)
	rs.BeginPath()
	rs.MoveTo(12, 20)
	rs.LineTo(28, 20)
	rs.StrokeColor(red)
	rs.StrokeWidth(4)
	rs.Stroke()
	assert.Equal(t, red, img.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(20, 12))
}

func TestStrokeImage(t *testing.T) {
	rs := New(image.Pt(64, 48), nil)
	rs.BeginPath()
	rs.MoveTo(4, 40)
	rs.LineTo(4, 8)
	rs.LineTo(36, 8)
	rs.LineTo(36, 24)
	rs.LineTo(52, 24)
	rs.StrokeColor(color.RGBA{G: 128, B: 255, A: 255})
	rs.StrokeWidth(4)
	rs.Stroke()
	imagex.Assert(t, rs.Image(), "polyline")

	fn := filepath.Join(t.TempDir(), "polyline.png")
	assert.NoError(t, rs.Save(fn))
	img, f, err := imagex.Open(fn)
	assert.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, rs.Image().Bounds(), img.Bounds())
	assert.Equal(t, color.RGBA{G: 128, B: 255, A: 255}, imagex.AsRGBA(img).RGBAAt(20, 8))
}
