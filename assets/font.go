package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the outcome of one background font load.
type Font struct {
	Key    string
	Source *text.GoTextFaceSource
	Err    error
}

// LoadFontSource parses a TTF/OTF asset. An empty path yields the bundled
// Go Regular face.
func LoadFontSource(path string) (*text.GoTextFaceSource, error) {
	data := goregular.TTF
	if path != "" {
		b, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: parse font %q: %w", path, err)
	}
	return src, nil
}

// LoadFontAsync loads the font on its own goroutine and delivers exactly one
// result on the returned channel.
func LoadFontAsync(key, path string) <-chan Font {
	out := make(chan Font, 1)
	go func() {
		src, err := LoadFontSource(path)
		out <- Font{Key: key, Source: src, Err: err}
	}()
	return out
}
