package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Releaser frees a loaded asset.
type Releaser interface {
	Release()
}

// Texture is a loaded image.
type Texture interface {
	render.Texture
	Releaser
}

// Font is a loaded font.
type Font interface {
	render.FaceSource
	Releaser
}

// Loader loads assets by path.
type Loader interface {
	LoadImage(path string) (Texture, error)
	LoadFont(path string) (Font, error)
}

// Paths locates the assets on disk.
type Paths struct {
	// Ball is the ball texture. Required.
	Ball string
	// Logo is the title logo texture. Optional: the title falls back to text.
	Logo string
	// Font is the TrueType font used for all text. Required.
	Font string
}

// Assets holds everything loaded at startup.
type Assets struct {
	Ball Texture
	// Logo is nil when the logo could not be loaded.
	Logo Texture
	Font Font

	acquired []Releaser
}

// Load acquires the ball texture, the logo and the font, in that order.
// If a required asset fails, everything acquired so far is released in
// reverse order and the error is returned.
func Load(loader Loader, paths Paths) (*Assets, error) {
	a := &Assets{}

	ball, err := loader.LoadImage(paths.Ball)
	if err != nil {
		return nil, fmt.Errorf("failed to load ball texture: %w", err)
	}
	a.acquire(ball)
	a.Ball = ball
	log.Debug("Loaded ball texture %s", paths.Ball)

	if paths.Logo != "" {
		logo, err := loader.LoadImage(paths.Logo)
		if err != nil {
			log.Warn("Failed to load logo texture, using text title: %v", err)
		} else {
			a.acquire(logo)
			a.Logo = logo
			log.Debug("Loaded logo texture %s", paths.Logo)
		}
	}

	font, err := loader.LoadFont(paths.Font)
	if err != nil {
		a.Release()
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	a.acquire(font)
	a.Font = font
	log.Debug("Loaded font %s", paths.Font)

	return a, nil
}

func (a *Assets) acquire(r Releaser) {
	a.acquired = append(a.acquired, r)
}

// Release frees every acquired asset in reverse acquisition order.
// It is safe to call more than once.
func (a *Assets) Release() {
	for i := len(a.acquired) - 1; i >= 0; i-- {
		a.acquired[i].Release()
	}
	a.acquired = nil
	a.Ball = nil
	a.Logo = nil
	a.Font = nil
}

// Image is a texture backed by an ebiten image.
type Image struct {
	img *ebiten.Image
}

var _ Texture = &Image{}

func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

func (i *Image) EbitenImage() *ebiten.Image {
	return i.img
}

func (i *Image) Release() {
	i.img.Deallocate()
}

// FileLoader loads assets from the filesystem.
type FileLoader struct{}

var _ Loader = FileLoader{}

func (FileLoader) LoadImage(path string) (Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return &Image{img: img}, nil
}

func (FileLoader) LoadFont(path string) (Font, error) {
	f, err := fonts.Load(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
