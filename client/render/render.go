package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Texture is an image that can be drawn to a Surface.
type Texture interface {
	Bounds() image.Rectangle
}

// FaceSource provides font faces by point size.
type FaceSource interface {
	Face(size float64) font.Face
}

// Surface is everything the scenes need to draw a frame.
// Coordinates are in screen pixels with the origin at the top-left.
type Surface interface {
	// Clear fills the whole surface with clr.
	Clear(clr color.Color)
	// FillRect fills the rectangle at (x, y) of size w*h.
	FillRect(x, y, w, h int, clr color.Color)
	// DrawImage draws tex with its top-left corner at (x, y), scaled by (sx, sy) and tinted.
	DrawImage(tex Texture, x, y int, sx, sy float64, tint color.Color)
	// MeasureText returns the advance width of s at the given size.
	MeasureText(s string, size float64) int
	// DrawText draws s with the top of its line box at (x, y).
	DrawText(x, y int, s string, size float64, clr color.Color)
}

// EbitenImager is implemented by textures backed by an *ebiten.Image.
type EbitenImager interface {
	EbitenImage() *ebiten.Image
}

// EbitenSurface draws onto an ebiten screen image. The frame is presented by
// ebiten once Draw returns.
type EbitenSurface struct {
	screen *ebiten.Image
	fonts  FaceSource
}

var _ Surface = &EbitenSurface{}

func NewEbitenSurface(screen *ebiten.Image, fonts FaceSource) *EbitenSurface {
	return &EbitenSurface{
		screen: screen,
		fonts:  fonts,
	}
}

func (s *EbitenSurface) Clear(clr color.Color) {
	s.screen.Fill(clr)
}

func (s *EbitenSurface) FillRect(x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) DrawImage(tex Texture, x, y int, sx, sy float64, tint color.Color) {
	img := toEbitenImage(tex)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(tint)
	s.screen.DrawImage(img, op)
}

func (s *EbitenSurface) MeasureText(str string, size float64) int {
	face := s.face(size)
	if face == nil {
		return 0
	}
	return font.MeasureString(face, str).Ceil()
}

func (s *EbitenSurface) DrawText(x, y int, str string, size float64, clr color.Color) {
	face := s.face(size)
	if face == nil {
		return
	}
	// text.Draw positions the baseline
	text.Draw(s.screen, str, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

func (s *EbitenSurface) face(size float64) font.Face {
	if s.fonts == nil {
		return nil
	}
	return s.fonts.Face(size)
}

func toEbitenImage(tex Texture) *ebiten.Image {
	switch t := tex.(type) {
	case *ebiten.Image:
		return t
	case EbitenImager:
		return t.EbitenImage()
	}
	return nil
}

// ScaleToSize returns the factors that stretch tex to w*h pixels.
func ScaleToSize(tex Texture, w, h int) (float64, float64) {
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 1, 1
	}
	return float64(w) / float64(b.Dx()), float64(h) / float64(b.Dy())
}
