// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name   string
	Width  float32
	Ranges []float32
}

func TestSaveOpen(t *testing.T) {
	s := settings{Name: "line", Width: 2.5, Ranges: []float32{0, 1}}
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, Save(&s, fn))

	var o settings
	require.NoError(t, Open(&o, fn))
	assert.Equal(t, s, o)
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(settings{Name: "x"})
	require.NoError(t, err)
	assert.Regexp(t, `Name = ['"]x['"]`, string(b))

	var o settings
	require.NoError(t, ReadBytes(&o, []byte("Width = 4\n")))
	assert.Equal(t, float32(4), o.Width)
	assert.Error(t, ReadBytes(&o, []byte("Width = [")))
}
