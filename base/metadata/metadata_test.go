// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mytest struct {
	Meta Data
}

func (mt *mytest) Metadata() *Data { return &mt.Meta }

func TestMetadata(t *testing.T) {
	var md Data
	md.SetName("test")
	md.SetDoc("this is a good doc")
	md.Set("Bool", true)

	assert.Equal(t, "test", md.GetName())
	assert.Equal(t, "this is a good doc", md.GetDoc())

	b, err := Get[bool](md, "Bool")
	assert.NoError(t, err)
	assert.Equal(t, true, b)
	_, err = Get[int](md, "Bool")
	assert.Error(t, err)
	_, err = Get[int](md, "Missing")
	assert.Error(t, err)

	var cp Data
	cp.Copy(md)
	cp.SetName("other")
	assert.Equal(t, "test", md.GetName())
	assert.Equal(t, "other", cp.GetName())

	mt := &mytest{}
	SetName(mt, "obj")
	assert.Equal(t, "obj", Name(mt))
	assert.Error(t, SetTo(md, "Name", "x"))
	assert.Equal(t, "", Name(3))
}
