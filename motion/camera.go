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

package motion

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Camera is a viewport into a level larger than the screen. It is recomputed
// every frame, centred on a tracked point and clamped so it never shows
// anything outside the level rectangle.
type Camera struct {
	rect sdl.Rect
}

// NewCamera is the preferred method of initialisation for the Camera type.
// The width and height are the dimensions of the view, usually the screen.
func NewCamera(viewWidth, viewHeight int32) *Camera {
	return &Camera{
		rect: sdl.Rect{W: viewWidth, H: viewHeight},
	}
}

// Follow centres the camera on the point (cx, cy), clamped to the level
// rectangle.
func (cam *Camera) Follow(cx, cy, levelWidth, levelHeight int32) {
	cam.rect.X = clamp(cx-cam.rect.W/2, 0, levelWidth-cam.rect.W)
	cam.rect.Y = clamp(cy-cam.rect.H/2, 0, levelHeight-cam.rect.H)
}

// Rect returns the camera rectangle in level coordinates.
func (cam *Camera) Rect() sdl.Rect {
	return cam.rect
}
