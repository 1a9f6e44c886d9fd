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
		Name:        "clips",
		Description: "draw four clips of one sprite sheet into the screen corners",
		Run:         runClips,
	})
}

type clipsScene struct {
	rnd   *sdl.Renderer
	sheet *texture.Texture
	clips [4]sdl.Rect
}

func (sc *clipsScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *clipsScene) Update() error {
	return nil
}

func (sc *clipsScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	// one clip per corner. the destination takes the clip's dimensions
	positions := [4][2]int32{
		{0, 0},
		{screenWidth - sc.clips[1].W, 0},
		{0, screenHeight - sc.clips[2].H},
		{screenWidth - sc.clips[3].W, screenHeight - sc.clips[3].H},
	}

	for i := range sc.clips {
		err := sc.sheet.Render(sc.rnd, positions[i][0], positions[i][1],
			&texture.Options{Clip: &sc.clips[i]})
		if err != nil {
			return err
		}
	}

	sc.rnd.Present()
	return nil
}

func runClips(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: clips",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("clips: %w", err)
	}
	defer plt.Destroy()

	sc := &clipsScene{
		rnd:   plt.Window().Renderer(),
		sheet: &texture.Texture{},
	}
	defer sc.sheet.Free()

	err = sc.sheet.LoadWithColorKey(sc.rnd, asset("dots.png"), 0, 255, 255)
	if err != nil {
		return fmt.Errorf("clips: %w", err)
	}

	// the sheet is a 2x2 grid of 100x100 sprites
	sc.clips = [4]sdl.Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 100, Y: 0, W: 100, H: 100},
		{X: 0, Y: 100, W: 100, H: 100},
		{X: 100, Y: 100, W: 100, H: 100},
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("clips: %w", err)
	}

	return nil
}
