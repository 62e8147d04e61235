// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image/color"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/hdrview/hdrview/hdr"
)

func TestRendererState(t *testing.T) {
	rd := NewRenderer()
	assert.Equal(t, DefaultSettings(), rd.Settings())
	assert.Nil(t, rd.Current())

	img, err := hdr.NewImage(2, 2, 3)
	assert.NoError(t, err)
	rd.SetCurrent(img)
	assert.Same(t, img, rd.Current())

	s := Settings{Scale: 2, Gamma: 1}
	rd.SetSettings(s)
	assert.Equal(t, s, rd.Settings())

	// Release before any paint makes no GL calls
	rd.Release()
}

func TestPaintNilImage(t *testing.T) {
	rd := NewRenderer()
	assert.Error(t, rd.Paint())
}

// newTestContext creates a hidden window with a current GL context.
func newTestContext(t *testing.T) func() {
	t.Helper()
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		t.Fatalf("glfw init: %v", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := glfw.CreateWindow(128, 128, "test", nil, nil)
	if err != nil {
		t.Fatalf("glfw window: %v", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		t.Fatalf("gl init: %v", err)
	}
	return func() {
		win.Destroy()
		glfw.Terminate()
	}
}

func TestPaintIdentityFrame(t *testing.T) {
	t.Skip("need GPU on CI")
	done := newTestContext(t)
	defer done()

	const n = 100
	img, err := hdr.NewImage(n, n, 3)
	assert.NoError(t, err)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetPixel(x, y, 0, float32(x)/n)
			img.SetPixel(x, y, 1, float32(y)/n)
			img.SetPixel(x, y, 2, 0.5)
		}
	}

	rd := NewRenderer()
	defer rd.Release()
	assert.NoError(t, rd.Reconcile([]Document{NewImageDocument("img", img)}))

	region := Region{Size: img.Bounds().Size()}
	s := Settings{Scale: 1, Gamma: 1}
	assert.NoError(t, rd.PaintImage(region, img, s, color.Black))
	gl.Finish()

	// scale (1,1), position (0,0), gamma 1: output equals the source
	pix := make([]float32, n*n*3)
	gl.ReadPixels(0, 0, n, n, gl.RGB, gl.FLOAT, gl.Ptr(pix))
	// GL rows are bottom-up; the quad remap flips the same way, so
	// compare against the source directly
	for _, idx := range []struct{ x, y int }{{0, 0}, {n - 1, 0}, {0, n - 1}, {n / 2, n / 2}} {
		off := (idx.y*n + idx.x) * 3
		assert.InDelta(t, img.Pixel(idx.x, idx.y, 0), pix[off], 1e-2)
		assert.InDelta(t, img.Pixel(idx.x, idx.y, 1), pix[off+1], 1e-2)
		assert.InDelta(t, img.Pixel(idx.x, idx.y, 2), pix[off+2], 1e-2)
	}
}

func TestPaintRequiresReconcile(t *testing.T) {
	t.Skip("need GPU on CI")
	done := newTestContext(t)
	defer done()

	img, err := hdr.NewImage(8, 8, 3)
	assert.NoError(t, err)

	rd := NewRenderer()
	defer rd.Release()
	err = rd.PaintImage(Region{Size: img.Bounds().Size()}, img, DefaultSettings(), color.Black)
	assert.Error(t, err)
}
