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
		Name:        "viewport",
		Description: "render the same image into three viewports",
		Run:         runViewport,
	})
}

type viewportScene struct {
	rnd *sdl.Renderer
	tex *texture.Texture
}

func (sc *viewportScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *viewportScene) Update() error {
	return nil
}

func (sc *viewportScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	// draw positions are relative to whichever viewport is current and
	// anything outside it is clipped. top-left quarter first
	_ = sc.rnd.SetViewport(&sdl.Rect{X: 0, Y: 0, W: screenWidth / 2, H: screenHeight / 2})
	err := sc.tex.Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	// top-right quarter
	_ = sc.rnd.SetViewport(&sdl.Rect{X: screenWidth / 2, Y: 0, W: screenWidth / 2, H: screenHeight / 2})
	err = sc.tex.Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	// bottom half
	_ = sc.rnd.SetViewport(&sdl.Rect{X: 0, Y: screenHeight / 2, W: screenWidth, H: screenHeight / 2})
	err = sc.tex.Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	// restore the full window before presenting
	_ = sc.rnd.SetViewport(nil)

	sc.rnd.Present()
	return nil
}

func runViewport(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: viewport",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	defer plt.Destroy()

	sc := &viewportScene{
		rnd: plt.Window().Renderer(),
		tex: &texture.Texture{},
	}
	defer sc.tex.Free()

	err = sc.tex.Load(sc.rnd, asset("viewport.png"))
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}

	return nil
}
