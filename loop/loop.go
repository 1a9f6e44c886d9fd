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

// Package loop drives a demo's event/render cycle.
//
// The loop is a two state machine: it is running or it has quit. Every
// iteration drains all pending SDL events, hands one frame of updating and
// drawing to the Scene and presents the result. A quit request observed
// during the drain means the running frame is the last; teardown follows
// naturally when Run() returns.
//
// Everything here happens on one thread. The only way the loop yields is
// through the optional frame rate limiter.
package loop

import (
	"github.com/sdltour/sdltour/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// State records whether the loop is still running.
type State int

// List of valid State values.
const (
	Running State = iota
	Quitting
)

// A Scene is one demo's contribution to the loop: react to an event, update
// per-frame state, draw the frame. The loop calls the three functions in
// that order, every iteration, for as long as the loop runs.
type Scene interface {
	// HandleEvent is called once per pending event, quit requests excepted.
	HandleEvent(ev sdl.Event) error

	// Update applies one frame of movement/animation.
	Update() error

	// Draw issues the frame's draw calls and presents the frame. Draw order
	// is significant, later draws occlude earlier ones.
	Draw() error
}

// Loop owns the event/render cycle for a single demo run.
type Loop struct {
	scene Scene
	state State

	// substitutable event source. sdl.PollEvent in normal use
	poll func() sdl.Event

	// optional frame rate cap
	limiter *limiter.FpsLimiter
}

// New is the preferred method of initialisation for the Loop type.
func New(scene Scene) *Loop {
	return &Loop{
		scene: scene,
		state: Running,
		poll:  sdl.PollEvent,
	}
}

// SetFPSLimit caps the loop at the given frame rate. Zero removes the cap.
func (lp *Loop) SetFPSLimit(framesPerSecond int) error {
	if framesPerSecond == 0 {
		lp.limiter = nil
		return nil
	}

	lim, err := limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		return err
	}
	lp.limiter = lim

	return nil
}

// State returns the loop's current state.
func (lp *Loop) State() State {
	return lp.state
}

// Quit asks the loop to stop. The current frame finishes normally.
func (lp *Loop) Quit() {
	lp.state = Quitting
}

// drain the event queue. a quit request always takes effect in the drain
// step that observes it, no matter how many events precede it in the queue.
func (lp *Loop) drain() error {
	for ev := lp.poll(); ev != nil; ev = lp.poll() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			lp.state = Quitting
		default:
			err := lp.scene.HandleEvent(ev)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Run the loop until a quit request or an error. Each iteration drains the
// event queue, updates the scene and draws one frame.
func (lp *Loop) Run() error {
	for lp.state == Running {
		err := lp.drain()
		if err != nil {
			return err
		}

		err = lp.scene.Update()
		if err != nil {
			return err
		}

		err = lp.scene.Draw()
		if err != nil {
			return err
		}

		if lp.limiter != nil {
			lp.limiter.Wait()
		}
	}

	return nil
}
