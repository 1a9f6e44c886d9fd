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
		Name:        "events",
		Description: "the simplest possible event/render loop",
		Run:         runEvents,
	})
}

type eventsScene struct {
	rnd *sdl.Renderer
	tex *texture.Texture
}

func (sc *eventsScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *eventsScene) Update() error {
	return nil
}

func (sc *eventsScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.tex.Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

// the first appearance of the event/render loop. the image is drawn every
// frame until the window is closed.
func runEvents(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: events",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	defer plt.Destroy()

	sc := &eventsScene{
		rnd: plt.Window().Renderer(),
		tex: &texture.Texture{},
	}
	defer sc.tex.Free()

	err = sc.tex.Load(sc.rnd, asset("x.png"))
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}

	return nil
}
