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

	"github.com/sdltour/sdltour/motion"
	"github.com/sdltour/sdltour/platform"
	"github.com/sdltour/sdltour/texture"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(Demo{
		Name:        "dot",
		Description: "move a dot with the arrow keys, clamped to the screen",
		Run:         runDot,
	})
}

type dotScene struct {
	rnd *sdl.Renderer
	tex *texture.Texture
	dot *motion.Dot
}

func (sc *dotScene) HandleEvent(ev sdl.Event) error {
	if kev, ok := ev.(*sdl.KeyboardEvent); ok {
		sc.dot.HandleEvent(kev)
	}
	return nil
}

func (sc *dotScene) Update() error {
	sc.dot.Move(screenWidth, screenHeight)
	return nil
}

func (sc *dotScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.tex.Render(sc.rnd, sc.dot.X(), sc.dot.Y(), nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runDot(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: dot",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	defer plt.Destroy()

	sc := &dotScene{
		rnd: plt.Window().Renderer(),
		tex: &texture.Texture{},
	}
	defer sc.tex.Free()

	err = sc.tex.LoadWithColorKey(sc.rnd, asset("dot.bmp"), 0, 255, 255)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}

	sc.dot = motion.NewDot(sc.tex.Width(), sc.tex.Height(), 10)

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}

	return nil
}
