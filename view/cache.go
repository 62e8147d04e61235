// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "github.com/hdrview/hdrview/hdr"

// TextureCache owns one GPU texture per distinct image identity.
// Entries are created lazily on the first Reconcile that references an
// image and destroyed on the first Reconcile in which no document
// references it. The backing map is mutated only by Reconcile and
// Release, never concurrently with Lookup.
type TextureCache struct {
	uploader Uploader
	textures map[*hdr.Image]*Texture
}

// NewTextureCache returns a cache that creates and destroys textures
// through the given uploader.
func NewTextureCache(up Uploader) *TextureCache {
	return &TextureCache{
		uploader: up,
		textures: make(map[*hdr.Image]*Texture),
	}
}

// Reconcile diffs the cache against the current document list: it
// deletes every entry whose image is no longer referenced by any
// document, then uploads a texture for every referenced image that has
// none. Images that already have an entry are never re-uploaded, so
// calling Reconcile twice with the same list is a no-op.
func (tc *TextureCache) Reconcile(docs []Document) error {
	for img, tex := range tc.textures {
		if !referenced(docs, img) {
			tc.uploader.Delete(tex)
			delete(tc.textures, img)
		}
	}
	for _, doc := range docs {
		img := doc.Image()
		if img == nil {
			continue
		}
		if _, ok := tc.textures[img]; ok {
			continue
		}
		tex, err := tc.uploader.Upload(img)
		if err != nil {
			return err
		}
		tc.textures[img] = tex
	}
	return nil
}

// Lookup returns the cached texture for the given image, or nil if it
// has none. Looking up an image absent from the cache is a caller
// error: Reconcile must precede painting that image.
func (tc *TextureCache) Lookup(img *hdr.Image) *Texture {
	return tc.textures[img]
}

// Len returns the number of cached textures.
func (tc *TextureCache) Len() int { return len(tc.textures) }

// Release deletes every cached texture.
func (tc *TextureCache) Release() {
	for img, tex := range tc.textures {
		tc.uploader.Delete(tex)
		delete(tc.textures, img)
	}
}

func referenced(docs []Document, img *hdr.Image) bool {
	for _, doc := range docs {
		if doc.Image() == img {
			return true
		}
	}
	return false
}
