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

// CalcFPS takes the number of frames and the duration (in seconds) over which
// they were rendered and returns the average frames-per-second.
func CalcFPS(numFrames int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numFrames) / duration
}
