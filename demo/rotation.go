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
		Name:        "rotation",
		Description: "rotate and flip an image. a/d rotate, q/w/e flip",
		Run:         runRotation,
	})
}

type rotationScene struct {
	rnd   *sdl.Renderer
	arrow *texture.Texture
	angle float64
	flip  sdl.RendererFlip
}

func (sc *rotationScene) HandleEvent(ev sdl.Event) error {
	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok || kev.Type != sdl.KEYDOWN {
		return nil
	}

	switch kev.Keysym.Sym {
	case sdl.K_a:
		sc.angle -= 60
	case sdl.K_d:
		sc.angle += 60
	case sdl.K_q:
		sc.flip = sdl.FLIP_HORIZONTAL
	case sdl.K_w:
		sc.flip = sdl.FLIP_NONE
	case sdl.K_e:
		sc.flip = sdl.FLIP_VERTICAL
	}

	return nil
}

func (sc *rotationScene) Update() error {
	return nil
}

func (sc *rotationScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	// a nil Center rotates around the middle of the image
	err := sc.arrow.Render(sc.rnd,
		(screenWidth-sc.arrow.Width())/2, (screenHeight-sc.arrow.Height())/2,
		&texture.Options{Angle: sc.angle, Flip: sc.flip})
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runRotation(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: rotation",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("rotation: %w", err)
	}
	defer plt.Destroy()

	sc := &rotationScene{
		rnd:   plt.Window().Renderer(),
		arrow: &texture.Texture{},
	}
	defer sc.arrow.Free()

	err = sc.arrow.Load(sc.rnd, asset("arrow.png"))
	if err != nil {
		return fmt.Errorf("rotation: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("rotation: %w", err)
	}

	return nil
}
