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

package loop

import (
	"testing"

	"github.com/sdltour/sdltour/test"

	"github.com/veandco/go-sdl2/sdl"
)

// countingScene records how often each stage of the loop runs.
type countingScene struct {
	events  int
	updates int
	draws   int
}

func (sc *countingScene) HandleEvent(ev sdl.Event) error {
	sc.events++
	return nil
}

func (sc *countingScene) Update() error {
	sc.updates++
	return nil
}

func (sc *countingScene) Draw() error {
	sc.draws++
	return nil
}

// queuePoll returns a poll function that feeds from a fixed queue of events.
func queuePoll(queue []sdl.Event) func() sdl.Event {
	return func() sdl.Event {
		if len(queue) == 0 {
			return nil
		}
		ev := queue[0]
		queue = queue[1:]
		return ev
	}
}

func TestQuitWithinOneDrain(t *testing.T) {
	sc := &countingScene{}
	lp := New(sc)

	// a quit request buried in the middle of a busy queue still takes
	// effect in the same drain step
	lp.poll = queuePoll([]sdl.Event{
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN},
		&sdl.MouseMotionEvent{},
		&sdl.QuitEvent{},
		&sdl.KeyboardEvent{Type: sdl.KEYUP},
	})

	test.Equate(t, lp.State() == Running, true)
	test.ExpectedSuccess(t, lp.drain())
	test.Equate(t, lp.State() == Quitting, true)

	// the quit event itself is not forwarded to the scene. everything else
	// is, including events queued after the quit request
	test.Equate(t, sc.events, 3)
}

func TestRunFinishesCurrentFrame(t *testing.T) {
	sc := &countingScene{}
	lp := New(sc)
	lp.poll = queuePoll([]sdl.Event{&sdl.QuitEvent{}})

	test.ExpectedSuccess(t, lp.Run())

	// the frame that observes the quit request still updates and draws
	test.Equate(t, sc.updates, 1)
	test.Equate(t, sc.draws, 1)
	test.Equate(t, lp.State() == Quitting, true)
}

func TestExplicitQuit(t *testing.T) {
	sc := &countingScene{}
	lp := New(sc)
	lp.poll = queuePoll(nil)

	lp.Quit()
	test.ExpectedSuccess(t, lp.Run())

	// the loop was asked to quit before it ever ran a frame
	test.Equate(t, sc.updates, 0)
	test.Equate(t, sc.draws, 0)
}
