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
		Name:        "timer",
		Description: "a pausable stopwatch. s starts/stops, p pauses/unpauses",
		Run:         runTimer,
	})
}

type timerScene struct {
	rnd  *sdl.Renderer
	font *ttf.Font
	text *texture.Texture
	tmr  *performance.Timer
}

func (sc *timerScene) HandleEvent(ev sdl.Event) error {
	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok || kev.Type != sdl.KEYDOWN {
		return nil
	}

	switch kev.Keysym.Sym {
	case sdl.K_s:
		if sc.tmr.IsStarted() {
			sc.tmr.Stop()
		} else {
			sc.tmr.Start()
		}
	case sdl.K_p:
		if sc.tmr.IsPaused() {
			sc.tmr.Unpause()
		} else {
			sc.tmr.Pause()
		}
	}

	return nil
}

func (sc *timerScene) Update() error {
	return nil
}

func (sc *timerScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	// the text changes every frame so the texture is rebuilt every frame.
	// cheap enough at tutorial scale
	msg := fmt.Sprintf("seconds since start: %.3f", float64(sc.tmr.Ticks())/1000)
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
	return nil
}

func runTimer(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: timer",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("timer: %w", err)
	}
	defer plt.Destroy()

	font, err := ttf.OpenFont(asset("lazy.ttf"), 28)
	if err != nil {
		return fmt.Errorf("timer: %w", err)
	}
	defer font.Close()

	sc := &timerScene{
		rnd:  plt.Window().Renderer(),
		font: font,
		text: &texture.Texture{},
		tmr:  performance.NewTimer(nil),
	}
	defer sc.text.Free()

	sc.tmr.Start()

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("timer: %w", err)
	}

	return nil
}
