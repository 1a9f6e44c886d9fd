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

	"github.com/veandco/go-sdl2/sdl"
)

// Window pairs an SDL window with its renderer and tracks the window state
// that the event/render loop cares about.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	id       uint32

	width  int32
	height int32

	shown         bool
	mouseFocus    bool
	keyboardFocus bool
	minimized     bool
}

// ID returns the identifier that SDL uses to route events to this window.
func (wnd *Window) ID() uint32 {
	return wnd.id
}

// Renderer returns the SDL renderer bound to the window. It is nil for
// window-surface and OpenGL windows.
func (wnd *Window) Renderer() *sdl.Renderer {
	return wnd.renderer
}

// SDL returns the underlying SDL window handle.
func (wnd *Window) SDL() *sdl.Window {
	return wnd.window
}

// Size returns the current pixel dimensions of the window.
func (wnd *Window) Size() (int32, int32) {
	return wnd.width, wnd.height
}

// IsShown returns true while the window is visible.
func (wnd *Window) IsShown() bool {
	return wnd.shown
}

// HasMouseFocus returns true while the mouse pointer is over the window.
func (wnd *Window) HasMouseFocus() bool {
	return wnd.mouseFocus
}

// HasKeyboardFocus returns true while the window has keyboard input focus.
func (wnd *Window) HasKeyboardFocus() bool {
	return wnd.keyboardFocus
}

// IsMinimized returns true while the window is minimised.
func (wnd *Window) IsMinimized() bool {
	return wnd.minimized
}

// Focus shows the window and raises it above the other windows.
func (wnd *Window) Focus() {
	wnd.window.Show()
	wnd.window.Raise()
	wnd.shown = true
}

// Hide the window. A hidden window receives no further input and is excluded
// from the AllHidden() count.
func (wnd *Window) Hide() {
	wnd.window.Hide()
	wnd.shown = false
}

// handleEvent updates window state according to the window event. only ever
// called with events whose WindowID matches this window.
func (wnd *Window) handleEvent(ev *sdl.WindowEvent) {
	switch ev.Event {
	case sdl.WINDOWEVENT_SHOWN:
		wnd.shown = true
	case sdl.WINDOWEVENT_HIDDEN:
		wnd.shown = false
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		wnd.width = ev.Data1
		wnd.height = ev.Data2
	case sdl.WINDOWEVENT_ENTER:
		wnd.mouseFocus = true
	case sdl.WINDOWEVENT_LEAVE:
		wnd.mouseFocus = false
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		wnd.keyboardFocus = true
	case sdl.WINDOWEVENT_FOCUS_LOST:
		wnd.keyboardFocus = false
	case sdl.WINDOWEVENT_MINIMIZED:
		wnd.minimized = true
	case sdl.WINDOWEVENT_MAXIMIZED:
		wnd.minimized = false
	case sdl.WINDOWEVENT_RESTORED:
		wnd.minimized = false
	case sdl.WINDOWEVENT_CLOSE:
		wnd.Hide()
	}
}

// Present redraws the window's renderer. Minimised windows are skipped, there
// is nothing useful to present.
func (wnd *Window) Present(draw func(*sdl.Renderer) error) error {
	if wnd.minimized || wnd.renderer == nil {
		return nil
	}

	_ = wnd.renderer.SetDrawColor(255, 255, 255, 255)
	_ = wnd.renderer.Clear()

	if draw != nil {
		err := draw(wnd.renderer)
		if err != nil {
			return err
		}
	}

	wnd.renderer.Present()

	return nil
}

// destroy the renderer and then the window. the renderer is always destroyed
// first.
func (wnd *Window) destroy() {
	if wnd.renderer != nil {
		_ = wnd.renderer.Destroy()
		wnd.renderer = nil
	}
	if wnd.window != nil {
		_ = wnd.window.Destroy()
		wnd.window = nil
	}
}

// BlitSurface copies src onto the window surface and updates the window. Used
// by the demos that predate the renderer, no acceleration is involved.
func (wnd *Window) BlitSurface(src *sdl.Surface, stretch bool) error {
	dst, err := wnd.window.GetSurface()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	if stretch {
		err = src.BlitScaled(nil, dst, &sdl.Rect{W: wnd.width, H: wnd.height})
	} else {
		err = src.Blit(nil, dst, nil)
	}
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	err = wnd.window.UpdateSurface()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	return nil
}
