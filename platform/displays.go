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

package platform

import (
	"fmt"

	"github.com/sdltour/sdltour/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// DisplayForPoint returns the index of the display whose bounds contain the
// point. Returns the last display whose bounds begin above/left of the point
// when the point falls in no display, which can happen momentarily while a
// window is dragged between monitors.
func DisplayForPoint(x, y int32, bounds []sdl.Rect) int {
	display := 0
	for i, b := range bounds {
		if x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H {
			return i
		}
		if x >= b.X {
			display = i
		}
	}
	return display
}

// NextDisplay cycles a display index by delta, wrapping modulo the display
// count.
func NextDisplay(current, delta, total int) int {
	if total <= 0 {
		return 0
	}
	next := (current + delta) % total
	if next < 0 {
		next += total
	}
	return next
}

// displayBounds gathers the bounds of every connected display.
func displayBounds() ([]sdl.Rect, error) {
	total, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	bounds := make([]sdl.Rect, 0, total)
	for i := 0; i < total; i++ {
		b, err := sdl.GetDisplayBounds(i)
		if err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
		bounds = append(bounds, b)
	}

	return bounds, nil
}

// Display returns the index of the display the centre of the window
// currently falls in.
func (wnd *Window) Display() (int, error) {
	bounds, err := displayBounds()
	if err != nil {
		return 0, err
	}

	x, y := wnd.window.GetPosition()
	return DisplayForPoint(x+wnd.width/2, y+wnd.height/2, bounds), nil
}

// CycleDisplay re-centres the window on a neighbouring display. A positive
// delta moves to the next display, a negative delta to the previous; the
// index wraps modulo the display count. Returns the index of the display the
// window now occupies.
func (wnd *Window) CycleDisplay(delta int) (int, error) {
	bounds, err := displayBounds()
	if err != nil {
		return 0, err
	}

	current, err := wnd.Display()
	if err != nil {
		return 0, err
	}

	next := NextDisplay(current, delta, len(bounds))
	b := bounds[next]

	wnd.window.SetPosition(b.X+(b.W-wnd.width)/2, b.Y+(b.H-wnd.height)/2)
	logger.Logf(logger.Allow, "sdl", "window %d moved to display %d", wnd.id, next)

	return next, nil
}
