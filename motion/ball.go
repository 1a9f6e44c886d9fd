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

// Ball is the physics-flavoured variant of the Dot. Instead of clamping and
// stopping at a boundary the ball reflects off it, losing some speed to the
// bounce.
type Ball struct {
	X, Y     float64
	VelX     float64
	VelY     float64
	Width    float64
	Height   float64

	// velocity retained after a bounce, in the range (0, 1]
	Damping float64

	// added to the vertical velocity every frame
	Gravity float64
}

// Move applies one frame of gravity and velocity. A boundary crossing clamps
// the position to the boundary and reflects the velocity on that axis,
// scaled by the damping factor.
func (bl *Ball) Move(levelWidth, levelHeight float64) {
	bl.VelY += bl.Gravity

	bl.X += bl.VelX
	if bl.X < 0 {
		bl.X = 0
		bl.VelX = -bl.VelX * bl.Damping
	} else if bl.X > levelWidth-bl.Width {
		bl.X = levelWidth - bl.Width
		bl.VelX = -bl.VelX * bl.Damping
	}

	bl.Y += bl.VelY
	if bl.Y < 0 {
		bl.Y = 0
		bl.VelY = -bl.VelY * bl.Damping
	} else if bl.Y > levelHeight-bl.Height {
		bl.Y = levelHeight - bl.Height
		bl.VelY = -bl.VelY * bl.Damping
	}
}
