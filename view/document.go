// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "github.com/hdrview/hdrview/hdr"

// Document is an open image owned by the host application. The render
// core only needs the image reference: the texture cache reconciles its
// entries against the images referenced by the current document list.
type Document interface {
	// Image returns the document's decoded image. The document retains
	// ownership; the render core keeps only a non-owning reference plus
	// a GPU-side copy in the texture cache.
	Image() *hdr.Image
}

// ImageDocument is a minimal Document for hosts that have no document
// type of their own.
type ImageDocument struct {
	// Name identifies the document, e.g. the source file path.
	Name string

	Img *hdr.Image
}

// NewImageDocument returns a document wrapping the given image.
func NewImageDocument(name string, img *hdr.Image) *ImageDocument {
	return &ImageDocument{Name: name, Img: img}
}

// Image returns the wrapped image.
func (d *ImageDocument) Image() *hdr.Image { return d.Img }
