// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view implements the GPU image display pipeline: a cache of
// device textures keyed by image identity, and a renderer that draws
// the current image into a viewport with pan, zoom, and gamma applied.
package view

import (
	"image"

	"cogentcore.org/core/math32"
)

// Settings are the per-frame display parameters for an image.
// The host supplies a fresh value each frame; the renderer never
// mutates it.
type Settings struct {
	// Pan is the pan offset in image space. The horizontal component is
	// negated on screen while the vertical one is not (y-flipped sign
	// convention).
	Pan math32.Vector2

	// Scale multiplies the image pixel dimensions. 1 shows the image at
	// its native size; above 1 magnifies.
	Scale float32

	// Gamma is the display gamma. The fragment stage raises linear
	// pixel values to the power 1/Gamma. Must be positive.
	Gamma float32
}

// DefaultSettings returns settings that show the image unscaled,
// centered, with conventional 2.2 display gamma.
func DefaultSettings() Settings {
	return Settings{Scale: 1, Gamma: 2.2}
}

// Region is the destination viewport: a pixel offset and size within
// the host surface. Supplied per frame and not retained.
type Region struct {
	Offset image.Point
	Size   image.Point
}

// SizeVector returns the region size as a float vector.
func (r Region) SizeVector() math32.Vector2 {
	return math32.Vec2(float32(r.Size.X), float32(r.Size.Y))
}
