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
	"strings"

	"github.com/sdltour/sdltour/platform"
	"github.com/sdltour/sdltour/texture"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(Demo{
		Name:        "keypresses",
		Description: "switch the displayed image on key presses",
		Run:         runKeypresses,
	})
}

type keypressesScene struct {
	rnd *sdl.Renderer

	// one image per direction plus the default. indexable by keyDirection
	images  []*texture.Texture
	current int
}

// indices into keypressesScene.images.
const (
	keyDefault = iota
	keyUp
	keyDown
	keyLeft
	keyRight
)

func (sc *keypressesScene) HandleEvent(ev sdl.Event) error {
	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok || kev.Type != sdl.KEYDOWN {
		return nil
	}

	switch kev.Keysym.Sym {
	case sdl.K_UP:
		sc.current = keyUp
	case sdl.K_DOWN:
		sc.current = keyDown
	case sdl.K_LEFT:
		sc.current = keyLeft
	case sdl.K_RIGHT:
		sc.current = keyRight
	default:
		sc.current = keyDefault
	}

	return nil
}

func (sc *keypressesScene) Update() error {
	return nil
}

func (sc *keypressesScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	err := sc.images[sc.current].Render(sc.rnd, 0, 0, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

// loadAll loads every image for the scene, trying all of them even when one
// fails so that the error report names every missing asset at once.
func (sc *keypressesScene) loadAll() error {
	files := []string{"press.png", "up.png", "down.png", "left.png", "right.png"}

	var failures []string
	for _, f := range files {
		tex := &texture.Texture{}
		err := tex.Load(sc.rnd, asset(f))
		if err != nil {
			failures = append(failures, err.Error())
		}
		sc.images = append(sc.images, tex)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}

	return nil
}

func (sc *keypressesScene) freeAll() {
	for _, tex := range sc.images {
		tex.Free()
	}
}

func runKeypresses(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: keypresses",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("keypresses: %w", err)
	}
	defer plt.Destroy()

	sc := &keypressesScene{rnd: plt.Window().Renderer()}
	defer sc.freeAll()

	err = sc.loadAll()
	if err != nil {
		return fmt.Errorf("keypresses: %w", err)
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("keypresses: %w", err)
	}

	return nil
}
