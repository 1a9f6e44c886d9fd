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
	"github.com/veandco/go-sdl2/ttf"
)

func init() {
	register(Demo{
		Name:        "displays",
		Description: "move the window between displays with the up/down keys",
		Run:         runDisplays,
	})
}

type displaysScene struct {
	plt  *platform.Platform
	font *ttf.Font
	text *texture.Texture
}

func (sc *displaysScene) HandleEvent(ev sdl.Event) error {
	sc.plt.RouteEvent(ev)

	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok || kev.Type != sdl.KEYDOWN {
		return nil
	}

	switch kev.Keysym.Sym {
	case sdl.K_UP:
		_, err := sc.plt.Window().CycleDisplay(1)
		return err
	case sdl.K_DOWN:
		_, err := sc.plt.Window().CycleDisplay(-1)
		return err
	}

	return nil
}

func (sc *displaysScene) Update() error {
	return nil
}

func (sc *displaysScene) Draw() error {
	display, err := sc.plt.Window().Display()
	if err != nil {
		return err
	}

	return sc.plt.Window().Present(func(rnd *sdl.Renderer) error {
		caption := fmt.Sprintf("display %d", display)
		err := sc.text.LoadText(rnd, sc.font, caption, sdl.Color{R: 0, G: 0, B: 0, A: 255})
		if err != nil {
			return err
		}

		w, h := sc.plt.Window().Size()
		return sc.text.Render(rnd, (w-sc.text.Width())/2, (h-sc.text.Height())/2, nil)
	})
}

func runDisplays(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: displays",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("displays: %w", err)
	}
	defer plt.Destroy()

	font, err := ttf.OpenFont(asset("lazy.ttf"), 28)
	if err != nil {
		return fmt.Errorf("displays: %w", err)
	}
	defer font.Close()

	sc := &displaysScene{
		plt:  plt,
		font: font,
		text: &texture.Texture{},
	}
	defer sc.text.Free()

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("displays: %w", err)
	}

	return nil
}
