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
	"runtime"

	"github.com/sdltour/sdltour/logger"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Config is used to specify the subsystems and the initial window required
// by a demo.
type Config struct {
	Title  string
	Width  int32
	Height int32

	// open an audio device capable demo. the audio subsystem is only
	// initialised when this is set
	Audio bool

	// request a renderer that presents in step with the display refresh
	VSync bool

	// the window can be resized by the user
	Resizable bool

	// create an OpenGL capable window. no SDL renderer is created for the
	// window in this case
	OpenGL bool

	// do not create a renderer for the initial window. used by the demos
	// that draw onto the window surface directly
	WindowSurface bool
}

// Platform owns the SDL subsystems and every window created during the run.
type Platform struct {
	windows []*Window
}

// New is the preferred method of initialisation for the Platform type. The
// initial window is created according to the Config and can be retrieved
// with the Window() function.
func New(cfg Config) (*Platform, error) {
	// SDL windowing must only ever be touched from the main thread. the SDL
	// package calls LockOSThread() but we call it here too. it can't hurt
	// and we never unlock it in any case
	runtime.LockOSThread()

	initFlags := uint32(sdl.INIT_VIDEO)
	if cfg.Audio {
		initFlags |= sdl.INIT_AUDIO
	}

	err := sdl.Init(initFlags)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	// linear texture filtering
	if !sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1") {
		logger.Log(logger.Allow, "sdl", "linear texture filtering not enabled")
	}

	err = img.Init(img.INIT_PNG)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("img: %w", err)
	}

	err = ttf.Init()
	if err != nil {
		img.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("ttf: %w", err)
	}

	plt := &Platform{}

	_, err = plt.NewWindow(cfg)
	if err != nil {
		plt.Destroy()
		return nil, err
	}

	return plt, nil
}

// NewWindow creates an additional window according to the Config. The window
// is shown immediately.
func (plt *Platform) NewWindow(cfg Config) (*Window, error) {
	winFlags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Resizable {
		winFlags |= sdl.WINDOW_RESIZABLE
	}
	if cfg.OpenGL {
		winFlags |= sdl.WINDOW_OPENGL

		// attributes must be set before the window is created
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	}

	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Width, cfg.Height, winFlags)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	id, err := win.GetID()
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	wnd := &Window{
		window:        win,
		id:            id,
		width:         cfg.Width,
		height:        cfg.Height,
		shown:         true,
		mouseFocus:    true,
		keyboardFocus: true,
	}

	// demos that draw onto the window surface and demos that render through
	// OpenGL have no use for an SDL renderer
	if !cfg.WindowSurface && !cfg.OpenGL {
		rndFlags := uint32(sdl.RENDERER_ACCELERATED)
		if cfg.VSync {
			rndFlags |= sdl.RENDERER_PRESENTVSYNC
		}

		wnd.renderer, err = sdl.CreateRenderer(win, -1, rndFlags)
		if err != nil {
			_ = win.Destroy()
			return nil, fmt.Errorf("sdl: %w", err)
		}

		_ = wnd.renderer.SetDrawColor(255, 255, 255, 255)
	}

	logger.Logf(logger.Allow, "sdl", "window %d created (%dx%d)", id, cfg.Width, cfg.Height)

	plt.windows = append(plt.windows, wnd)

	return wnd, nil
}

// Window returns the window created by the New() function.
func (plt *Platform) Window() *Window {
	return plt.windows[0]
}

// Windows returns every window created during the run.
func (plt *Platform) Windows() []*Window {
	return plt.windows
}

// RouteEvent forwards a window event to the window it belongs to. Events
// that are not window events or that belong to no known window are ignored.
func (plt *Platform) RouteEvent(ev sdl.Event) {
	wev, ok := ev.(*sdl.WindowEvent)
	if !ok {
		return
	}

	for _, wnd := range plt.windows {
		if wnd.id == wev.WindowID {
			wnd.handleEvent(wev)
			return
		}
	}
}

// AllHidden returns true if no window is currently shown. Used as the quit
// condition by the multi-window demos.
func (plt *Platform) AllHidden() bool {
	for _, wnd := range plt.windows {
		if wnd.shown {
			return false
		}
	}
	return true
}

// Destroy releases all resources. Windows are destroyed in the reverse order
// of their creation and the subsystems are shut down in the reverse order of
// their initialisation.
func (plt *Platform) Destroy() {
	for i := len(plt.windows) - 1; i >= 0; i-- {
		plt.windows[i].destroy()
	}
	plt.windows = plt.windows[:0]

	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
