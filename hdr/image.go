// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hdr provides the decoded floating-point image model that the
// render core displays. Pixel values are linear (not gamma encoded) and
// may exceed 1 for high dynamic range content.
package hdr

import (
	"fmt"
	"image"

	"cogentcore.org/core/math32"
)

// Image is a decoded raster with 3 or 4 float32 channels per pixel,
// stored row-major without padding. Images are treated as immutable
// once handed to a renderer. Identity is pointer identity: two Images
// with equal pixel data are still distinct images for caching purposes.
type Image struct {
	width    int
	height   int
	channels int
	data     []float32
}

// NewImage returns a zero-filled Image of the given size,
// with 3 (RGB) or 4 (RGBA) channels.
func NewImage(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("hdr.NewImage: invalid size %dx%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("hdr.NewImage: channels must be 3 or 4, got %d", channels)
	}
	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]float32, width*height*channels),
	}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Channels returns the number of channels per pixel, 3 or 4.
func (im *Image) Channels() int { return im.channels }

// Size returns the pixel dimensions as a float vector.
func (im *Image) Size() math32.Vector2 {
	return math32.Vec2(float32(im.width), float32(im.height))
}

// Bounds returns the pixel bounds with a zero origin.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// Data returns the backing pixel slice, row-major,
// im.Channels() floats per pixel.
func (im *Image) Data() []float32 { return im.data }

// Pixel returns channel c of the pixel at (x, y).
func (im *Image) Pixel(x, y, c int) float32 {
	return im.data[(y*im.width+x)*im.channels+c]
}

// SetPixel sets channel c of the pixel at (x, y). Only valid while the
// image is being filled, before it is handed to a renderer.
func (im *Image) SetPixel(x, y, c int, v float32) {
	im.data[(y*im.width+x)*im.channels+c] = v
}

// SRGBToLinear converts one sRGB-encoded component in [0, 1]
// to linear space, removing the sRGB gamma encoding.
func SRGBToLinear(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// FromGoImage converts a standard (8-bit, sRGB) Go image to a 4-channel
// linear float Image. Alpha is kept as-is; color channels are decoded
// from sRGB to linear.
func FromGoImage(src image.Image) *Image {
	b := src.Bounds()
	im, _ := NewImage(b.Dx(), b.Dy(), 4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			im.data[i] = SRGBToLinear(float32(r) / 0xffff)
			im.data[i+1] = SRGBToLinear(float32(g) / 0xffff)
			im.data[i+2] = SRGBToLinear(float32(bl) / 0xffff)
			im.data[i+3] = float32(a) / 0xffff
			i += 4
		}
	}
	return im
}
