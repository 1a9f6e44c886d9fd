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

// Package sprite describes sub-regions of a sprite sheet texture and the
// bookkeeping for cycling through them as an animation.
//
// A clip is purely descriptive. It holds no reference to the texture it
// indexes into and many clips will usually refer to the same sheet.
package sprite

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Strip returns the clips for a sprite sheet whose frames are laid out in a
// single horizontal row.
func Strip(frameWidth, frameHeight int32, count int) []sdl.Rect {
	clips := make([]sdl.Rect, count)
	for i := range clips {
		clips[i] = sdl.Rect{X: int32(i) * frameWidth, Y: 0, W: frameWidth, H: frameHeight}
	}
	return clips
}

// Animation selects the active clip from a fixed, ordered clip set. The
// animation is slowed by only changing the active clip every slowFactor
// frames.
type Animation struct {
	clips      []sdl.Rect
	slowFactor int

	// incremented once per rendered frame by Advance()
	counter int
}

// NewAnimation is the preferred method of initialisation for the Animation
// type.
func NewAnimation(clips []sdl.Rect, slowFactor int) (*Animation, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("sprite: animation requires at least one clip")
	}
	if slowFactor < 1 {
		return nil, fmt.Errorf("sprite: slow factor must be at least one (%d)", slowFactor)
	}

	return &Animation{
		clips:      clips,
		slowFactor: slowFactor,
	}, nil
}

// Advance the frame counter. Call once per iteration of the event/render
// loop. The counter wraps to zero at the moment the active clip index would
// run off the end of the clip set.
func (an *Animation) Advance() {
	an.counter++
	if an.counter/an.slowFactor >= len(an.clips) {
		an.counter = 0
	}
}

// Frame returns the index of the active clip.
func (an *Animation) Frame() int {
	return an.counter / an.slowFactor
}

// Clip returns the active clip.
func (an *Animation) Clip() *sdl.Rect {
	return &an.clips[an.Frame()]
}

// Reset the animation to its first clip.
func (an *Animation) Reset() {
	an.counter = 0
}
