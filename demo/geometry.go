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
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(Demo{
		Name:        "geometry",
		Description: "renderer primitives: filled rects, outlines, lines and points",
		Run:         runGeometry,
	})
}

type geometryScene struct {
	rnd *sdl.Renderer
}

func (sc *geometryScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *geometryScene) Update() error {
	return nil
}

func (sc *geometryScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	// red filled quad in the middle of the screen
	fill := sdl.Rect{X: screenWidth / 4, Y: screenHeight / 4, W: screenWidth / 2, H: screenHeight / 2}
	_ = sc.rnd.SetDrawColor(255, 0, 0, 255)
	_ = sc.rnd.FillRect(&fill)

	// green outlined quad around it
	outline := sdl.Rect{X: screenWidth / 6, Y: screenHeight / 6, W: screenWidth * 2 / 3, H: screenHeight * 2 / 3}
	_ = sc.rnd.SetDrawColor(0, 255, 0, 255)
	_ = sc.rnd.DrawRect(&outline)

	// blue horizontal line across the centre
	_ = sc.rnd.SetDrawColor(0, 0, 255, 255)
	_ = sc.rnd.DrawLine(0, screenHeight/2, screenWidth, screenHeight/2)

	// dotted yellow vertical line
	_ = sc.rnd.SetDrawColor(255, 255, 0, 255)
	for y := int32(0); y < screenHeight; y += 4 {
		_ = sc.rnd.DrawPoint(screenWidth/2, y)
	}

	sc.rnd.Present()
	return nil
}

func runGeometry(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: geometry",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	defer plt.Destroy()

	err = runLoop(&geometryScene{rnd: plt.Window().Renderer()}, opts)
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}

	return nil
}
