// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"image"

	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hdrview/hdrview/hdr"
)

// Texture is an owned GPU texture holding the device-side copy of one
// image. GL textures are not garbage collected: the owning cache
// deletes them explicitly when the image is no longer referenced.
type Texture struct {
	handle   uint32
	size     image.Point
	channels int
}

// Handle returns the GL texture name.
func (t *Texture) Handle() uint32 { return t.handle }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() image.Point { return t.size }

// Channels returns the number of channels, 3 or 4.
func (t *Texture) Channels() int { return t.channels }

// SetBorderColor sets the color returned for samples outside [0,1].
// The texture must currently be bound.
func (t *Texture) SetBorderColor(c math32.Vector4) {
	border := [4]float32{c.X, c.Y, c.Z, c.W}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
}

// Uploader creates and destroys GPU textures for images. The render
// core uses the GL implementation; cache tests substitute a fake.
type Uploader interface {
	// Upload creates a device texture holding the image's pixels.
	// A failed allocation is fatal for that texture; there is no retry.
	Upload(img *hdr.Image) (*Texture, error)

	// Delete releases the device texture.
	Delete(t *Texture)
}

// GLUploader uploads textures through the OpenGL context bound on the
// calling thread. Textures are float32 per channel, trilinear
// minification with mipmaps generated once at creation, bilinear
// magnification, and clamp-to-border wrap so the border color paints
// the background outside image bounds.
type GLUploader struct{}

func (GLUploader) Upload(img *hdr.Image) (*Texture, error) {
	internal, format := int32(gl.RGB32F), uint32(gl.RGB)
	if img.Channels() == 4 {
		internal, format = gl.RGBA32F, gl.RGBA
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal,
		int32(img.Width()), int32(img.Height()), 0,
		format, gl.FLOAT, gl.Ptr(img.Data()))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &handle)
		return nil, fmt.Errorf("view.GLUploader: texture upload for %dx%dx%d image failed: gl error 0x%04x",
			img.Width(), img.Height(), img.Channels(), code)
	}
	return &Texture{handle: handle, size: img.Bounds().Size(), channels: img.Channels()}, nil
}

func (GLUploader) Delete(t *Texture) {
	if t == nil || t.handle == 0 {
		return
	}
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}
