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
	"os"
	"time"

	"github.com/sdltour/sdltour/console"
	"github.com/sdltour/sdltour/platform"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(Demo{
		Name:        "hello",
		Description: "blit a BMP image onto the window surface",
		Run:         runHello,
	})
}

// the simplest demo of all. no renderer, no textures and no event loop. the
// image is blitted straight onto the window surface and the program waits a
// couple of seconds before quitting.
func runHello(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:         "SDLTour: hello",
		Width:         screenWidth,
		Height:        screenHeight,
		WindowSurface: true,
	})
	if err != nil {
		return fmt.Errorf("hello: %w", err)
	}
	defer plt.Destroy()

	img, err := sdl.LoadBMP(asset("hello.bmp"))
	if err != nil {
		return fmt.Errorf("hello: %w", err)
	}
	defer img.Free()

	err = plt.Window().BlitSurface(img, true)
	if err != nil {
		return fmt.Errorf("hello: %w", err)
	}

	err = console.WaitKey(os.Stdin, os.Stdout, "press any key to quit")
	if err != nil {
		// fall back to line input when stdin is not a terminal
		err = console.WaitEnter(os.Stdin, os.Stdout, "press enter to quit")
		if err != nil {
			return fmt.Errorf("hello: %w", err)
		}
	}
	console.Delay(250 * time.Millisecond)

	return nil
}
