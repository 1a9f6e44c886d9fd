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
	"github.com/sdltour/sdltour/texture"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(Demo{
		Name:        "blending",
		Description: "alpha blend one image over another, a/s adjust the alpha",
		Run:         runBlending,
	})
}

type blendingScene struct {
	rnd   *sdl.Renderer
	back  *texture.Texture
	front *texture.Texture
	alpha uint8
}

func (sc *blendingScene) HandleEvent(ev sdl.Event) error {
	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok || kev.Type != sdl.KEYDOWN {
		return nil
	}

	// step the alpha in increments of 32, saturating at either end
	switch kev.Keysym.Sym {
	case sdl.K_a:
		if sc.alpha > 255-32 {
			sc.alpha = 255
		} else {
			sc.alpha += 32
		}
	case sdl.K_s:
		if sc.alpha < 32 {
			sc.alpha = 0
		} else {
			sc.alpha -= 32
		}
	}

	return nil
}

func (sc *blendingScene) Update() error {
	return nil
}

func (sc *blendingScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.back.Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	err = sc.front.SetAlphaMod(sc.alpha)
	if err != nil {
		return err
	}

	err = sc.front.Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runBlending(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: blending",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("blending: %w", err)
	}
	defer plt.Destroy()

	sc := &blendingScene{
		rnd:   plt.Window().Renderer(),
		back:  &texture.Texture{},
		front: &texture.Texture{},
		alpha: 255,
	}
	defer sc.back.Free()
	defer sc.front.Free()

	err = sc.back.Load(sc.rnd, asset("fadein.png"))
	if err != nil {
		return fmt.Errorf("blending: %w", err)
	}

	err = sc.front.Load(sc.rnd, asset("fadeout.png"))
	if err != nil {
		return fmt.Errorf("blending: %w", err)
	}

	err = sc.front.SetBlendMode(sdl.BLENDMODE_BLEND)
	if err != nil {
		return fmt.Errorf("blending: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("blending: %w", err)
	}

	return nil
}
