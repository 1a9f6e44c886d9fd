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

	"github.com/sdltour/sdltour/loop"
	"github.com/sdltour/sdltour/platform"
	"github.com/sdltour/sdltour/texture"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func init() {
	register(Demo{
		Name:        "windows",
		Description: "three windows. 1/2/3 raise each, closing all of them quits",
		Run:         runWindows,
	})
}

const numWindows = 3

type windowsScene struct {
	plt  *platform.Platform
	lp   *loop.Loop
	font *ttf.Font
}

func (sc *windowsScene) HandleEvent(ev sdl.Event) error {
	// window events update per-window focus and visibility state
	sc.plt.RouteEvent(ev)

	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok || kev.Type != sdl.KEYDOWN {
		return nil
	}

	switch kev.Keysym.Sym {
	case sdl.K_1:
		sc.plt.Windows()[0].Focus()
	case sdl.K_2:
		sc.plt.Windows()[1].Focus()
	case sdl.K_3:
		sc.plt.Windows()[2].Focus()
	}

	return nil
}

func (sc *windowsScene) Update() error {
	// closing the last visible window ends the demo
	if sc.plt.AllHidden() {
		sc.lp.Quit()
	}
	return nil
}

func (sc *windowsScene) Draw() error {
	for i, wnd := range sc.plt.Windows() {
		caption := fmt.Sprintf("window %d", i+1)
		if wnd.HasKeyboardFocus() {
			caption += " (keyboard)"
		}
		if wnd.HasMouseFocus() {
			caption += " (mouse)"
		}

		err := sc.drawCaption(wnd, caption)
		if err != nil {
			return err
		}
	}
	return nil
}

// drawCaption presents one window with the caption centred in it. hidden and
// minimised windows are skipped by Present().
func (sc *windowsScene) drawCaption(wnd *platform.Window, caption string) error {
	return wnd.Present(func(rnd *sdl.Renderer) error {
		text := &texture.Texture{}
		defer text.Free()

		err := text.LoadText(rnd, sc.font, caption, sdl.Color{R: 0, G: 0, B: 0, A: 255})
		if err != nil {
			return err
		}

		w, h := wnd.Size()
		return text.Render(rnd, (w-text.Width())/2, (h-text.Height())/2, nil)
	})
}

func runWindows(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: windows 1",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("windows: %w", err)
	}
	defer plt.Destroy()

	for i := 1; i < numWindows; i++ {
		_, err = plt.NewWindow(platform.Config{
			Title:  fmt.Sprintf("SDLTour: windows %d", i+1),
			Width:  screenWidth,
			Height: screenHeight,
			VSync:  opts.VSync,
		})
		if err != nil {
			return fmt.Errorf("windows: %w", err)
		}
	}

	font, err := ttf.OpenFont(asset("lazy.ttf"), 20)
	if err != nil {
		return fmt.Errorf("windows: %w", err)
	}
	defer font.Close()

	sc := &windowsScene{plt: plt, font: font}

	lp := loop.New(sc)
	sc.lp = lp

	if opts.FPSCap > 0 {
		err = lp.SetFPSLimit(opts.FPSCap)
		if err != nil {
			return fmt.Errorf("windows: %w", err)
		}
	}

	err = lp.Run()
	if err != nil {
		return fmt.Errorf("windows: %w", err)
	}

	return nil
}
