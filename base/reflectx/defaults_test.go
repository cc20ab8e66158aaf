// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upper string

func (u *upper) UnmarshalText(b []byte) error {
	*u = upper(strings.ToUpper(string(b)))
	return nil
}

type view struct {
	Origin [3]float32 `default:"[0, 64, 0]"`
	Tags   []string   `default:"['a', 'b']"`
}

type testConfig struct {
	Name    string  `default:"cube"`
	Scale   float32 `default:"1.5"`
	Density int     `default:"20"`
	Seed    int64
	Depth   bool   `default:"true"`
	Mode    upper  `default:"solid"`
	View    view
	hidden  int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{Seed: 9}
	require.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "cube", cfg.Name)
	assert.Equal(t, float32(1.5), cfg.Scale)
	assert.Equal(t, 20, cfg.Density)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Depth)
	assert.Equal(t, upper("SOLID"), cfg.Mode)
	assert.Equal(t, [3]float32{0, 64, 0}, cfg.View.Origin)
	assert.Equal(t, []string{"a", "b"}, cfg.View.Tags)
	assert.Equal(t, 0, cfg.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(testConfig{}))
	assert.Error(t, SetFromDefaultTags((*testConfig)(nil)))
	n := 3
	assert.Error(t, SetFromDefaultTags(&n))

	type bad struct {
		Size  float32 `default:"big"`
		Count int     `default:"4"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, "bad.Size")
	assert.Equal(t, 4, b.Count)
}

func TestSetFromString(t *testing.T) {
	var u uint8
	v := reflect.ValueOf(&u).Elem()
	require.NoError(t, SetFromString(v, "0x10"))
	assert.Equal(t, uint8(16), u)
	assert.Error(t, SetFromString(v, "300"))
	assert.Error(t, SetFromString(reflect.ValueOf(u), "1"))

	var ch chan int
	assert.Error(t, SetFromString(reflect.ValueOf(&ch).Elem(), "1"))
}
