package appicon

import (
	"image"
	"sync"
)

var globalCache = &cache{}

type cache struct {
	m sync.Map
}

// LoadRenderCache returns the cached render for a pixel size, if any.
// Cached images are shared and must be treated as read-only.
func LoadRenderCache(size int) (*image.RGBA, bool) {
	if v, ok := globalCache.m.Load(size); ok {
		if img, ok := v.(*image.RGBA); ok {
			return img, true
		}
	}
	return nil, false
}

func StoreRenderCache(size int, img *image.RGBA) {
	if img == nil {
		return
	}
	globalCache.m.Store(size, img)
}

// RenderCached renders the icon at the given pixel size, reusing a
// prior render within the process when available.
func RenderCached(size int) *image.RGBA {
	if img, ok := LoadRenderCache(size); ok {
		return img
	}
	img := Render(size)
	StoreRenderCache(size, img)
	return img
}
