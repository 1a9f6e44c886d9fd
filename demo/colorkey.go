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
		Name:        "colorkey",
		Description: "figure on a background with a cyan color key",
		Run:         runColorkey,
	})
}

type colorkeyScene struct {
	rnd        *sdl.Renderer
	background *texture.Texture
	figure     *texture.Texture
}

func (sc *colorkeyScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *colorkeyScene) Update() error {
	return nil
}

func (sc *colorkeyScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.background.Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	// the cyan pixels of the figure are transparent so the background shows
	// through
	err = sc.figure.Render(sc.rnd, 240, 190, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runColorkey(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: colorkey",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("colorkey: %w", err)
	}
	defer plt.Destroy()

	sc := &colorkeyScene{
		rnd:        plt.Window().Renderer(),
		background: &texture.Texture{},
		figure:     &texture.Texture{},
	}
	defer sc.background.Free()
	defer sc.figure.Free()

	err = sc.background.Load(sc.rnd, asset("background.png"))
	if err != nil {
		return fmt.Errorf("colorkey: %w", err)
	}

	err = sc.figure.LoadWithColorKey(sc.rnd, asset("foo.png"), 0, 255, 255)
	if err != nil {
		return fmt.Errorf("colorkey: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("colorkey: %w", err)
	}

	return nil
}
