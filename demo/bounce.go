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
		Name:        "bounce",
		Description: "a ball bouncing off the screen edges under gravity",
		Run:         runBounce,
	})
}

type bounceScene struct {
	rnd  *sdl.Renderer
	tex  *texture.Texture
	ball *motion.Ball
}

func (sc *bounceScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *bounceScene) Update() error {
	sc.ball.Move(screenWidth, screenHeight)
	return nil
}

func (sc *bounceScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.tex.Render(sc.rnd, int32(sc.ball.X), int32(sc.ball.Y), nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runBounce(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: bounce",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}
	defer plt.Destroy()

	sc := &bounceScene{
		rnd: plt.Window().Renderer(),
		tex: &texture.Texture{},
	}
	defer sc.tex.Free()

	err = sc.tex.LoadWithColorKey(sc.rnd, asset("dot.bmp"), 0, 255, 255)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}

	sc.ball = &motion.Ball{
		X:       screenWidth / 4,
		Y:       screenHeight / 4,
		VelX:    7,
		VelY:    0,
		Width:   float64(sc.tex.Width()),
		Height:  float64(sc.tex.Height()),
		Damping: 0.9,
		Gravity: 0.5,
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}

	return nil
}
