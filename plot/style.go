// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/trase/base/iox/tomlx"
	"cogentcore.org/trase/base/iox/yamlx"
)

// DefaultLineWidth is the default stroke width of lines, in pixels.
const DefaultLineWidth = 3

// LineStyle has style properties for drawing lines.
// It can be loaded from TOML or YAML; fields that are not
// present in the file keep their defaults.
type LineStyle struct {
	// Color is the stroke color.
	Color color.RGBA

	// Width is the stroke width in pixels.
	Width float32
}

// Defaults sets the default style: opaque black, [DefaultLineWidth].
func (ls *LineStyle) Defaults() {
	ls.Color = color.RGBA{A: 255}
	ls.Width = DefaultLineWidth
}

// ReadTOML reads the style from TOML, on top of the defaults.
func (ls *LineStyle) ReadTOML(r io.Reader) error {
	ls.Defaults()
	return tomlx.Read(ls, r)
}

// WriteTOML writes the style as TOML.
func (ls *LineStyle) WriteTOML(w io.Writer) error {
	return tomlx.Write(ls, w)
}

// ReadYAML reads the style from YAML, on top of the defaults.
func (ls *LineStyle) ReadYAML(r io.Reader) error {
	ls.Defaults()
	return yamlx.Read(ls, r)
}

// WriteYAML writes the style as YAML.
func (ls *LineStyle) WriteYAML(w io.Writer) error {
	return yamlx.Write(ls, w)
}

// OpenLineStyle reads a [LineStyle] from the given file, on top of the
// defaults, using TOML or YAML according to the file extension.
func OpenLineStyle(filename string) (LineStyle, error) {
	var ls LineStyle
	ls.Defaults()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(&ls, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&ls, filename)
	default:
		return ls, fmt.Errorf("plot.OpenLineStyle: unsupported file type %q", ext)
	}
	return ls, err
}
