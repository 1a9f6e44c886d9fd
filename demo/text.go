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
		Name:        "text",
		Description: "rasterise a TrueType font to a texture",
		Run:         runText,
	})
}

type textScene struct {
	rnd *sdl.Renderer
	tex *texture.Texture
}

func (sc *textScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *textScene) Update() error {
	return nil
}

func (sc *textScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.tex.Render(sc.rnd,
		(screenWidth-sc.tex.Width())/2, (screenHeight-sc.tex.Height())/2, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runText(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: text",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	defer plt.Destroy()

	font, err := ttf.OpenFont(asset("lazy.ttf"), 28)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	defer font.Close()

	sc := &textScene{
		rnd: plt.Window().Renderer(),
		tex: &texture.Texture{},
	}
	defer sc.tex.Free()

	err = sc.tex.LoadText(sc.rnd, font, "The quick brown fox jumps over the lazy dog",
		sdl.Color{R: 0, G: 0, B: 0, A: 255})
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}

	return nil
}
