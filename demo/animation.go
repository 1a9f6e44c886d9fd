// This file is part of SDLTour.
//
// SDLTour is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SDLTour is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SDLTour.  If not, see <https://www.gnu.org/licenses/>.

package demo

import (
	"fmt"

	"github.com/sdltour/sdltour/platform"
	"github.com/sdltour/sdltour/sprite"
	"github.com/sdltour/sdltour/texture"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(Demo{
		Name:        "animation",
		Description: "a four frame walking animation from a sprite sheet",
		Run:         runAnimation,
	})
}

type animationScene struct {
	rnd   *sdl.Renderer
	sheet *texture.Texture
	anim  *sprite.Animation
}

func (sc *animationScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *animationScene) Update() error {
	sc.anim.Advance()
	return nil
}

func (sc *animationScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	clip := sc.anim.Clip()
	err := sc.sheet.Render(sc.rnd,
		(screenWidth-clip.W)/2, (screenHeight-clip.H)/2,
		&texture.Options{Clip: clip})
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runAnimation(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: animation",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	defer plt.Destroy()

	sc := &animationScene{
		rnd:   plt.Window().Renderer(),
		sheet: &texture.Texture{},
	}
	defer sc.sheet.Free()

	err = sc.sheet.LoadWithColorKey(sc.rnd, asset("walk.png"), 0, 255, 255)
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}

	// four frames in a horizontal strip, each a quarter of the sheet wide.
	// slowed so the figure takes a step every five rendered frames
	sc.anim, err = sprite.NewAnimation(sprite.Strip(sc.sheet.Width()/4, sc.sheet.Height(), 4), 5)
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}

	return nil
}
