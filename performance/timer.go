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

package performance

import (
	"github.com/veandco/go-sdl2/sdl"
)

// TickSource returns a millisecond counter. the SDL tick counter in normal
// use but substitutable for testing.
type TickSource func() uint32

// Timer is a stopwatch with support for pausing. All measurements are in
// milliseconds.
type Timer struct {
	src TickSource

	// the tick count when the timer was started
	startTicks uint32

	// the tick count at the moment the timer was paused
	pausedTicks uint32

	started bool
	paused  bool
}

// NewTimer is the preferred method of initialisation for the Timer type. A
// nil TickSource means the SDL tick counter.
func NewTimer(src TickSource) *Timer {
	if src == nil {
		src = sdl.GetTicks
	}
	return &Timer{src: src}
}

// Start the timer. Restarts the count if the timer is already running.
func (tmr *Timer) Start() {
	tmr.started = true
	tmr.paused = false
	tmr.startTicks = tmr.src()
	tmr.pausedTicks = 0
}

// Stop the timer and reset all counts.
func (tmr *Timer) Stop() {
	tmr.started = false
	tmr.paused = false
	tmr.startTicks = 0
	tmr.pausedTicks = 0
}

// Pause the timer. A paused timer holds its tick count until Unpause().
func (tmr *Timer) Pause() {
	if tmr.started && !tmr.paused {
		tmr.paused = true
		tmr.pausedTicks = tmr.src() - tmr.startTicks
		tmr.startTicks = 0
	}
}

// Unpause the timer, continuing the count from where Pause() left it.
func (tmr *Timer) Unpause() {
	if tmr.started && tmr.paused {
		tmr.paused = false
		tmr.startTicks = tmr.src() - tmr.pausedTicks
		tmr.pausedTicks = 0
	}
}

// Ticks returns the number of milliseconds since Start(), not counting any
// time spent paused. Returns zero if the timer is not started.
func (tmr *Timer) Ticks() uint32 {
	if !tmr.started {
		return 0
	}
	if tmr.paused {
		return tmr.pausedTicks
	}
	return tmr.src() - tmr.startTicks
}

// IsStarted returns true if the timer is running (paused or not).
func (tmr *Timer) IsStarted() bool {
	return tmr.started
}

// IsPaused returns true if the timer is started and paused.
func (tmr *Timer) IsPaused() bool {
	return tmr.started && tmr.paused
}
