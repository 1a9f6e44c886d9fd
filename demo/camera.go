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
		Name:        "camera",
		Description: "scroll a level larger than the screen, camera on the dot",
		Run:         runCamera,
	})
}

// the level is four times the screen area.
const (
	levelWidth  = 1280
	levelHeight = 960
)

type cameraScene struct {
	rnd        *sdl.Renderer
	background *texture.Texture
	tex        *texture.Texture
	dot        *motion.Dot
	cam        *motion.Camera
}

func (sc *cameraScene) HandleEvent(ev sdl.Event) error {
	if kev, ok := ev.(*sdl.KeyboardEvent); ok {
		sc.dot.HandleEvent(kev)
	}
	return nil
}

func (sc *cameraScene) Update() error {
	sc.dot.Move(levelWidth, levelHeight)
	sc.cam.Follow(sc.dot.CenterX(), sc.dot.CenterY(), levelWidth, levelHeight)
	return nil
}

func (sc *cameraScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	// the camera rectangle clips the level background; everything else is
	// drawn relative to the camera
	camRect := sc.cam.Rect()
	err := sc.background.Render(sc.rnd, 0, 0, &texture.Options{Clip: &camRect})
	if err != nil {
		return err
	}

	err = sc.tex.Render(sc.rnd, sc.dot.X()-camRect.X, sc.dot.Y()-camRect.Y, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	return nil
}

func runCamera(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: camera",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	defer plt.Destroy()

	sc := &cameraScene{
		rnd:        plt.Window().Renderer(),
		background: &texture.Texture{},
		tex:        &texture.Texture{},
	}
	defer sc.background.Free()
	defer sc.tex.Free()

	err = sc.background.Load(sc.rnd, asset("level.png"))
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	err = sc.tex.LoadWithColorKey(sc.rnd, asset("dot.bmp"), 0, 255, 255)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	sc.dot = motion.NewDot(sc.tex.Width(), sc.tex.Height(), 10)
	sc.cam = motion.NewCamera(screenWidth, screenHeight)

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	return nil
}
