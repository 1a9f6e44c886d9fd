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
	"math"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/sdltour/sdltour/platform"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(Demo{
		Name:        "gl",
		Description: "an OpenGL context on an SDL window",
		Run:         runGL,
	})
}

type glScene struct {
	wnd   *platform.Window
	frame int
}

func (sc *glScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *glScene) Update() error {
	sc.frame++
	return nil
}

func (sc *glScene) Draw() error {
	// pulse the clear color so something visibly happens
	t := float32(0.5 + 0.5*math.Sin(float64(sc.frame)/60))
	gl.ClearColor(0.0, t, 1.0-t, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	sc.wnd.SDL().GLSwap()
	return nil
}

// runGL draws through an OpenGL context rather than the SDL renderer. The
// rest of the demo is unchanged, the event/render loop neither knows nor
// cares how a frame is presented.
func runGL(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: gl",
		Width:  screenWidth,
		Height: screenHeight,
		OpenGL: true,
	})
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	defer plt.Destroy()

	ctx, err := plt.Window().SDL().GLCreateContext()
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	defer sdl.GLDeleteContext(ctx)

	err = gl.Init()
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}

	gl.Viewport(0, 0, screenWidth, screenHeight)

	err = runLoop(&glScene{wnd: plt.Window()}, opts)
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}

	return nil
}
