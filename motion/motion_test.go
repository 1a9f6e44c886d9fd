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

package motion_test

import (
	"testing"

	"github.com/sdltour/sdltour/motion"
	"github.com/sdltour/sdltour/test"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	levelWidth  = 1280
	levelHeight = 960
)

func keyEvent(typ uint32, sym sdl.Keycode, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:   typ,
		Repeat: repeat,
		Keysym: sdl.Keysym{Sym: sym},
	}
}

func TestDotBoundaryClamp(t *testing.T) {
	dt := motion.NewDot(20, 20, 10)
	w, h := dt.Size()
	test.Equate(t, w, 20)
	test.Equate(t, h, 20)

	// one frame short of the right edge, moving right at full speed. the
	// resulting position is the edge itself, never beyond it
	dt.SetPosition(levelWidth-w-1, 100)
	dt.HandleEvent(keyEvent(sdl.KEYDOWN, sdl.K_RIGHT, 0))
	dt.Move(levelWidth, levelHeight)
	test.Equate(t, dt.X(), levelWidth-w)
	test.Equate(t, dt.Y(), 100)

	// further frames of movement stay pinned to the edge
	dt.Move(levelWidth, levelHeight)
	test.Equate(t, dt.X(), levelWidth-w)

	// same on the other axis, at the top edge
	dt.HandleEvent(keyEvent(sdl.KEYUP, sdl.K_RIGHT, 0))
	dt.HandleEvent(keyEvent(sdl.KEYDOWN, sdl.K_UP, 0))
	dt.SetPosition(50, 5)
	dt.Move(levelWidth, levelHeight)
	test.Equate(t, dt.Y(), 0)
	test.Equate(t, dt.X(), 50)
}

func TestDotKeyRelease(t *testing.T) {
	dt := motion.NewDot(20, 20, 10)
	dt.SetPosition(100, 100)

	dt.HandleEvent(keyEvent(sdl.KEYDOWN, sdl.K_RIGHT, 0))
	dt.Move(levelWidth, levelHeight)
	test.Equate(t, dt.X(), 110)

	// the matching release has equal magnitude. no velocity drift remains
	dt.HandleEvent(keyEvent(sdl.KEYUP, sdl.K_RIGHT, 0))
	dt.Move(levelWidth, levelHeight)
	test.Equate(t, dt.X(), 110)
}

func TestDotKeyRepeatSuppression(t *testing.T) {
	dt := motion.NewDot(20, 20, 10)
	dt.SetPosition(100, 100)

	// a physically held key delivers one genuine press followed by repeats.
	// only the genuine press may change the velocity
	dt.HandleEvent(keyEvent(sdl.KEYDOWN, sdl.K_RIGHT, 0))
	dt.HandleEvent(keyEvent(sdl.KEYDOWN, sdl.K_RIGHT, 1))
	dt.HandleEvent(keyEvent(sdl.KEYDOWN, sdl.K_RIGHT, 1))
	dt.Move(levelWidth, levelHeight)
	test.Equate(t, dt.X(), 110)
}

func TestBallBounce(t *testing.T) {
	bl := motion.Ball{
		X: 1000, Y: 100,
		VelX: 30, VelY: 0,
		Width: 20, Height: 20,
		Damping: 0.5,
	}

	// crossing the right boundary clamps to the boundary and reflects the
	// velocity, damped
	bl.Move(1024, 768)
	test.Equate(t, bl.X, 1004.0)
	test.Equate(t, bl.VelX, -15.0)

	// gravity accumulates every frame
	bl = motion.Ball{Y: 100, Width: 20, Height: 20, Damping: 1.0, Gravity: 2}
	bl.Move(1024, 768)
	test.Equate(t, bl.VelY, 2.0)
	test.Equate(t, bl.Y, 102.0)
	bl.Move(1024, 768)
	test.Equate(t, bl.VelY, 4.0)
	test.Equate(t, bl.Y, 106.0)
}

func TestCameraClamp(t *testing.T) {
	cam := motion.NewCamera(640, 480)

	// an entity centred far beyond the level edge clamps the camera to the
	// level's right edge
	cam.Follow(2000, 240, levelWidth, levelHeight)
	test.Equate(t, cam.Rect().X, levelWidth-640)
	test.Equate(t, cam.Rect().Y, 0)

	// centred entity means centred camera
	cam.Follow(levelWidth/2, levelHeight/2, levelWidth, levelHeight)
	test.Equate(t, cam.Rect().X, (levelWidth-640)/2)
	test.Equate(t, cam.Rect().Y, (levelHeight-480)/2)

	// top-left corner
	cam.Follow(0, 0, levelWidth, levelHeight)
	test.Equate(t, cam.Rect().X, 0)
	test.Equate(t, cam.Rect().Y, 0)
}
