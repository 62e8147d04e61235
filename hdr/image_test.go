// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdr

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewImage(t *testing.T) {
	im, err := NewImage(4, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 4, im.Width())
	assert.Equal(t, 2, im.Height())
	assert.Equal(t, 3, im.Channels())
	assert.Equal(t, 4*2*3, len(im.Data()))
	assert.Equal(t, math32.Vec2(4, 2), im.Size())
	assert.Equal(t, image.Rect(0, 0, 4, 2), im.Bounds())

	_, err = NewImage(0, 2, 3)
	assert.Error(t, err)
	_, err = NewImage(4, 2, 2)
	assert.Error(t, err)
}

func TestPixelAccess(t *testing.T) {
	im, err := NewImage(3, 3, 4)
	assert.NoError(t, err)
	im.SetPixel(2, 1, 3, 0.25)
	assert.Equal(t, float32(0.25), im.Pixel(2, 1, 3))
	assert.Equal(t, float32(0), im.Pixel(0, 0, 0))
}

func TestSRGBToLinear(t *testing.T) {
	assert.Equal(t, float32(0), SRGBToLinear(0))
	assert.InDelta(t, 1.0, SRGBToLinear(1), 1e-6)
	// below the linear-segment knee
	assert.InDelta(t, 0.02/12.92, SRGBToLinear(0.02), 1e-6)
	// mid-gray: sRGB 0.5 is about 0.2140 linear
	assert.InDelta(t, 0.2140, SRGBToLinear(0.5), 1e-3)
}

func TestFromGoImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src.Set(1, 0, color.RGBA{0, 128, 0, 255})

	im := FromGoImage(src)
	assert.Equal(t, 2, im.Width())
	assert.Equal(t, 1, im.Height())
	assert.Equal(t, 4, im.Channels())

	assert.InDelta(t, 1.0, im.Pixel(0, 0, 0), 1e-6)
	assert.InDelta(t, 0.0, im.Pixel(0, 0, 1), 1e-6)
	assert.InDelta(t, 1.0, im.Pixel(0, 0, 3), 1e-6)

	want := SRGBToLinear(float32(128) / 255)
	assert.InDelta(t, want, im.Pixel(1, 0, 1), 1e-4)
}
