// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	var r F32
	r.SetInfinity()
	assert.False(t, r.IsValid())
	for _, v := range []float32{3, -1, 7, 2} {
		r.FitValInRange(v)
	}
	assert.Equal(t, F32{-1, 7}, r)
	assert.True(t, r.IsValid())
	assert.False(t, r.IsDegenerate())
	assert.Equal(t, float32(8), r.Range())
	assert.Equal(t, float32(3), r.Midpoint())
	assert.Equal(t, float32(0.5), r.NormValue(3))
	assert.Equal(t, float32(1), r.NormValue(100))
	assert.Equal(t, float32(3), r.ProjValue(0.5))
	assert.Equal(t, float32(-1), r.ClipValue(-5))
	assert.True(t, r.InRange(7))
	assert.False(t, r.InRange(7.5))

	assert.False(t, r.FitInRange(F32{0, 1}))
	assert.True(t, r.FitInRange(F32{-2, 1}))
	assert.Equal(t, F32{-2, 7}, r)

	d := F32{5, 5}
	assert.True(t, d.IsDegenerate())
	assert.Equal(t, float32(0), d.Scale())
	assert.Equal(t, float32(0), d.NormValue(5))
}
