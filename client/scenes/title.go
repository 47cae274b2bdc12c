package scenes

import (
	"github.com/cbodonnell/pong/client/objects"
	"github.com/cbodonnell/pong/client/render"
)

const (
	titleLogoY = 60
	titleMenuY = 260
)

type TitleScene struct {
	*BaseScene
}

type TitleSceneOptions struct {
	// Ball is the texture of the decorative ball. May be nil.
	Ball render.Texture
	// Logo is drawn above the menu. The title text is drawn when nil.
	Logo render.Texture
}

var _ Scene = &TitleScene{}

func NewTitleScene(opts TitleSceneOptions) *TitleScene {
	root := objects.NewGroup(
		objects.NewBackground(objects.ColorBackground),
		objects.NewTitleBallObject(opts.Ball),
		objects.NewLogoObject(opts.Logo, titleLogoY),
		objects.NewMenuObject(titleMenuY),
	)
	return &TitleScene{
		BaseScene: NewBaseScene(root),
	}
}
