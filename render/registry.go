package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	facesMu sync.RWMutex
	faces   = map[string]*text.GoTextFaceSource{}
)

// RegisterFace stores a font source by key.
func RegisterFace(key string, src *text.GoTextFaceSource) {
	if key == "" || src == nil {
		return
	}
	facesMu.Lock()
	faces[key] = src
	facesMu.Unlock()
}

// GetFace returns a sized face for key, or nil when no source is registered.
func GetFace(key string, size float64) text.Face {
	if key == "" || size <= 0 {
		return nil
	}
	facesMu.RLock()
	src := faces[key]
	facesMu.RUnlock()
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}
