// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "cogentcore.org/core/math32"

// Transform math mapping image space to the unit texture coordinates
// sampled by the fragment stage. Pure functions of the current
// geometry, recomputed every frame.

// TexturePosition returns the position uniform: the offset that centers
// an image of imageSize in a viewport of regionSize, shifted by the pan
// offset, normalized by the region size. The horizontal pan component
// is negated; the vertical one is not.
func TexturePosition(regionSize, imageSize, pan math32.Vector2) math32.Vector2 {
	offset := regionSize.Sub(imageSize).MulScalar(0.5)
	return offset.Add(math32.Vec2(-pan.X, pan.Y)).Div(regionSize)
}

// TextureScale returns the scale uniform: the image size relative to
// the viewport, componentwise. Above 1 the image is magnified relative
// to the viewport; below 1 it is letterboxed by the border color.
func TextureScale(regionSize, imageSize math32.Vector2) math32.Vector2 {
	return imageSize.Div(regionSize)
}

// GammaExponent returns the exponent the fragment stage applies to
// linear pixel values for a given display gamma: 1/gamma, the encode
// direction of linear-to-display correction.
func GammaExponent(gamma float32) float32 {
	return 1 / gamma
}
