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
		Name:        "mouse",
		Description: "four buttons that react to mouse motion and clicks",
		Run:         runMouse,
	})
}

// sprite sheet rows for the button states.
const (
	buttonOut = iota
	buttonOver
	buttonDown
	buttonUp
	buttonStates
)

const (
	buttonWidth  = 300
	buttonHeight = 200
)

// button is one clickable region. its state selects a clip from the shared
// button sprite sheet.
type button struct {
	x, y  int32
	state int
}

// handle a mouse event, recomputing the button state from the pointer
// position and the event type.
func (bt *button) handle(x, y int32, evType uint32) {
	inside := x >= bt.x && x < bt.x+buttonWidth && y >= bt.y && y < bt.y+buttonHeight

	if !inside {
		bt.state = buttonOut
		return
	}

	switch evType {
	case sdl.MOUSEMOTION:
		// a held click survives motion inside the button
		if bt.state != buttonDown {
			bt.state = buttonOver
		}
	case sdl.MOUSEBUTTONDOWN:
		bt.state = buttonDown
	case sdl.MOUSEBUTTONUP:
		bt.state = buttonUp
	}
}

type mouseScene struct {
	rnd     *sdl.Renderer
	sheet   *texture.Texture
	clips   [buttonStates]sdl.Rect
	buttons [4]button
}

func (sc *mouseScene) HandleEvent(ev sdl.Event) error {
	var x, y int32
	var evType uint32

	switch mev := ev.(type) {
	case *sdl.MouseMotionEvent:
		x, y, evType = mev.X, mev.Y, mev.Type
	case *sdl.MouseButtonEvent:
		x, y, evType = mev.X, mev.Y, mev.Type
	default:
		return nil
	}

	for i := range sc.buttons {
		sc.buttons[i].handle(x, y, evType)
	}

	return nil
}

func (sc *mouseScene) Update() error {
	return nil
}

func (sc *mouseScene) Draw() error {
	_ = sc.rnd.SetDrawColor(255, 255, 255, 255)
	_ = sc.rnd.Clear()

	for i := range sc.buttons {
		bt := &sc.buttons[i]
		err := sc.sheet.Render(sc.rnd, bt.x, bt.y,
			&texture.Options{Clip: &sc.clips[bt.state]})
		if err != nil {
			return err
		}
	}

	sc.rnd.Present()
	return nil
}

func runMouse(opts Options) error {
	plt, err := platform.New(platform.Config{
		Title:  "SDLTour: mouse",
		Width:  screenWidth,
		Height: screenHeight,
		VSync:  opts.VSync,
	})
	if err != nil {
		return fmt.Errorf("mouse: %w", err)
	}
	defer plt.Destroy()

	sc := &mouseScene{
		rnd:   plt.Window().Renderer(),
		sheet: &texture.Texture{},
	}
	defer sc.sheet.Free()

	err = sc.sheet.Load(sc.rnd, asset("button.png"))
	if err != nil {
		return fmt.Errorf("mouse: %w", err)
	}

	// the sheet stacks the four button states vertically
	for i := range sc.clips {
		sc.clips[i] = sdl.Rect{Y: int32(i) * buttonHeight, W: buttonWidth, H: buttonHeight}
	}

	sc.buttons = [4]button{
		{x: 0, y: 0},
		{x: screenWidth - buttonWidth, y: 0},
		{x: 0, y: screenHeight - buttonHeight},
		{x: screenWidth - buttonWidth, y: screenHeight - buttonHeight},
	}

	err = runLoop(sc, opts)
	if err != nil {
		return fmt.Errorf("mouse: %w", err)
	}

	return nil
}
