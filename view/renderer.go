// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hdrview/hdrview/hdr"
)

// quadVertices is the static full-viewport quad: a 4-vertex triangle
// strip at the clip-space corners.
var quadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

// Renderer draws the current image into a render region with pan, zoom,
// and gamma applied, backed by a cache of per-image GPU textures.
//
// All methods must be called from the thread owning the GL context,
// within the host's paint callback. The shader program is compiled once,
// on the first paint, and lives until Release.
type Renderer struct {
	cache *TextureCache

	program uint32
	vao     uint32
	vbo     uint32

	texUniform      int32
	positionUniform int32
	scaleUniform    int32
	gammaUniform    int32

	// two-state program lifecycle: uninitialized -> ready,
	// flipped exactly once by the first paint
	initialized bool

	// host-pokeable state for the zero-argument Paint
	current    *hdr.Image
	region     Region
	settings   Settings
	clearColor color.Color
}

// NewRenderer returns a renderer uploading textures through the GL
// context bound on the calling thread. No GL calls are made until the
// first paint.
func NewRenderer() *Renderer {
	return &Renderer{
		cache:      NewTextureCache(GLUploader{}),
		settings:   DefaultSettings(),
		clearColor: color.Black,
	}
}

// Cache returns the renderer's texture cache.
func (rd *Renderer) Cache() *TextureCache { return rd.cache }

// Reconcile updates the texture cache against the current document
// list. Must be called before painting an image that entered the list,
// and never concurrently with Paint.
func (rd *Renderer) Reconcile(docs []Document) error {
	return rd.cache.Reconcile(docs)
}

// SetCurrent sets the image drawn by Paint.
func (rd *Renderer) SetCurrent(img *hdr.Image) { rd.current = img }

// Current returns the image drawn by Paint.
func (rd *Renderer) Current() *hdr.Image { return rd.current }

// SetRenderRegion sets the viewport used by Paint.
func (rd *Renderer) SetRenderRegion(region Region) { rd.region = region }

// SetSettings sets the display settings used by Paint.
func (rd *Renderer) SetSettings(s Settings) { rd.settings = s }

// Settings returns the display settings used by Paint.
func (rd *Renderer) Settings() Settings { return rd.settings }

// SetClearColor sets the background color used by Paint, both for the
// clear and for the texture border outside image bounds.
func (rd *Renderer) SetClearColor(c color.Color) { rd.clearColor = c }

// Paint draws the current image into the current render region using
// the current settings and clear color.
func (rd *Renderer) Paint() error {
	return rd.PaintImage(rd.region, rd.current, rd.settings, rd.clearColor)
}

// PaintImage draws img into region using the given display settings,
// clearing to background first. The image must have a cache entry:
// Reconcile must precede painting it. Every bind acquired here is
// released before returning.
func (rd *Renderer) PaintImage(region Region, img *hdr.Image, s Settings, background color.Color) error {
	if img == nil {
		return errors.New("view.Renderer: no current image")
	}
	if !rd.initialized {
		if err := rd.init(); err != nil {
			return err
		}
	}
	tex := rd.cache.Lookup(img)
	if tex == nil {
		return errors.New("view.Renderer: image has no cached texture; Reconcile must precede Paint")
	}

	regionSize := region.SizeVector()
	imageSize := img.Size().MulScalar(s.Scale)
	bg := math32.NewVector4Color(background)

	gl.UseProgram(rd.program)
	gl.BindVertexArray(rd.vao)
	gl.EnableVertexAttribArray(0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.Handle())
	tex.SetBorderColor(bg)

	gl.Uniform1i(rd.texUniform, 0)
	pos := TexturePosition(regionSize, imageSize, s.Pan)
	gl.Uniform2f(rd.positionUniform, pos.X, pos.Y)
	scale := TextureScale(regionSize, imageSize)
	gl.Uniform2f(rd.scaleUniform, scale.X, scale.Y)
	gl.Uniform1f(rd.gammaUniform, GammaExponent(s.Gamma))

	gl.Viewport(int32(region.Offset.X), int32(region.Offset.Y),
		int32(region.Size.X), int32(region.Size.Y))
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(bg.X, bg.Y, bg.Z, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.DisableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return nil
}

// init compiles the shader program and uploads the static quad.
func (rd *Renderer) init() error {
	program, err := compileProgram(vertexSource, fragmentSource)
	if errors.Log(err) != nil {
		return err
	}
	rd.program = program

	rd.texUniform = gl.GetUniformLocation(program, gl.Str("tex\x00"))
	rd.positionUniform = gl.GetUniformLocation(program, gl.Str("position\x00"))
	rd.scaleUniform = gl.GetUniformLocation(program, gl.Str("scale\x00"))
	rd.gammaUniform = gl.GetUniformLocation(program, gl.Str("gamma\x00"))

	gl.GenVertexArrays(1, &rd.vao)
	gl.BindVertexArray(rd.vao)
	gl.GenBuffers(1, &rd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	rd.initialized = true
	return nil
}

// Release frees the program, quad geometry, and every cached texture.
// Must be called on the GL thread while the context is still current.
func (rd *Renderer) Release() {
	rd.cache.Release()
	if !rd.initialized {
		return
	}
	gl.DeleteBuffers(1, &rd.vbo)
	gl.DeleteVertexArrays(1, &rd.vao)
	gl.DeleteProgram(rd.program)
	rd.vbo, rd.vao, rd.program = 0, 0, 0
	rd.initialized = false
}
