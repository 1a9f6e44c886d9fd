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

// Package motion contains the per-frame arithmetic for the objects that move
// around a level: the keyboard controlled Dot, the free-falling Ball and the
// Camera that follows them.
//
// Nothing in this package touches SDL state. The types deal purely in
// positions, velocities and rectangles; rendering them is the caller's
// business.
package motion

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Dot is a keyboard controlled entity of fixed size. Arrow keys adjust its
// velocity; Move() applies the velocity once per frame, clamped to the level
// bounds.
type Dot struct {
	x, y   int32
	velX   int32
	velY   int32
	width  int32
	height int32

	// velocity change per key press
	speed int32
}

// NewDot is the preferred method of initialisation for the Dot type.
func NewDot(width, height, speed int32) *Dot {
	return &Dot{
		width:  width,
		height: height,
		speed:  speed,
	}
}

// HandleEvent adjusts the dot's velocity according to a keyboard event. A
// key press adds the dot's speed to the relevant axis and the matching key
// release subtracts the same amount, so a velocity change is never left
// behind after the key is released. Key repeat events are ignored so that a
// physically held key only toggles the velocity once.
func (dt *Dot) HandleEvent(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	// the release of a key undoes exactly what the press did
	var delta int32
	switch ev.Type {
	case sdl.KEYDOWN:
		delta = dt.speed
	case sdl.KEYUP:
		delta = -dt.speed
	default:
		return
	}

	switch ev.Keysym.Sym {
	case sdl.K_UP:
		dt.velY -= delta
	case sdl.K_DOWN:
		dt.velY += delta
	case sdl.K_LEFT:
		dt.velX -= delta
	case sdl.K_RIGHT:
		dt.velX += delta
	}
}

// Move applies one frame of velocity, clamping the position so the dot never
// leaves the level rectangle.
func (dt *Dot) Move(levelWidth, levelHeight int32) {
	dt.x = clamp(dt.x+dt.velX, 0, levelWidth-dt.width)
	dt.y = clamp(dt.y+dt.velY, 0, levelHeight-dt.height)
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetPosition places the dot directly. Used by demos that need a starting
// position other than the top-left corner.
func (dt *Dot) SetPosition(x, y int32) {
	dt.x = x
	dt.y = y
}

// X returns the dot's horizontal position (left edge).
func (dt *Dot) X() int32 {
	return dt.x
}

// Y returns the dot's vertical position (top edge).
func (dt *Dot) Y() int32 {
	return dt.y
}

// CenterX returns the horizontal centre of the dot.
func (dt *Dot) CenterX() int32 {
	return dt.x + dt.width/2
}

// CenterY returns the vertical centre of the dot.
func (dt *Dot) CenterY() int32 {
	return dt.y + dt.height/2
}

// Size returns the dot's fixed dimensions.
func (dt *Dot) Size() (int32, int32) {
	return dt.width, dt.height
}
