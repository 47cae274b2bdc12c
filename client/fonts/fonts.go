package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const dpi = 72

// Font is a parsed TrueType font that hands out faces per point size.
type Font struct {
	tt *truetype.Font

	lock  sync.Mutex
	faces map[float64]font.Face
}

// Parse parses TrueType font data.
func Parse(data []byte) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Font{
		tt:    tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Load reads and parses the TrueType font at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	return f, nil
}

// Face returns a face at the given size, creating it on first use.
func (f *Font) Face(size float64) font.Face {
	f.lock.Lock()
	defer f.lock.Unlock()

	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	f.faces[size] = face
	return face
}

// Release closes every face created so far.
func (f *Font) Release() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for size, face := range f.faces {
		face.Close()
		delete(f.faces, size)
	}
}
