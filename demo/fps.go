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

	"github.com/sdltour/sdltour/performance"
	"github.com/sdltour/sdltour/platform"
	"github.com/sdltour/sdltour/texture"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func init() {
	register(Demo{
		Name:        "fps",
		Description: "measure and display the achieved frame rate",
		Run:         runFPS,
	})
}

type fpsScene struct {
	rnd  *sdl.Renderer
	font *ttf.Font
	text *texture.Texture

	// measures the whole run. the average frame rate is frames counted over
	// time elapsed
	tmr    *performance.Timer
	frames int
}

func (sc *fpsScene) HandleEvent(ev sdl.Event) error {
	return nil
}

func (sc *fpsScene) Update() error {
	return nil
}

func (sc *fpsScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	fps := performance.CalcFPS(sc.frames, float64(sc.tmr.Ticks())/1000)

	msg := fmt.Sprintf("average fps %.2f", fps)
	err := sc.text.LoadText(sc.rnd, sc.font, msg, sdl.Color{R: 0, G: 0, B: 0, A: 255})
	if err != nil {
		return err
	}

	err = sc.text.Render(sc.rnd,
		(screenWidth-sc.text.Width())/2, (screenHeight-sc.text.Height())/2, nil)
	if err != nil {
		return err
	}

	sc.rnd.Present()
	sc.frames++

	return nil
}

// run with -fps 0 for an uncapped measurement or -fps N to watch the average
// settle on the cap.
func runFPS(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: fps",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("fps: %w", err)
	}
	defer plt.Destroy()

	font, err := ttf.OpenFont(asset("lazy.ttf"), 28)
	if err != nil {
		return fmt.Errorf("fps: %w", err)
	}
	defer font.Close()

	sc := &fpsScene{
		rnd:  plt.Window().Renderer(),
		font: font,
		text: &texture.Texture{},
		tmr:  performance.NewTimer(nil),
	}
	defer sc.text.Free()

	sc.tmr.Start()

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("fps: %w", err)
	}

	return nil
}
