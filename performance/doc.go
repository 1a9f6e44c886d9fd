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

// Package performance contains helpers for measuring and regulating the
// frame rate of a demo.
//
// The Timer type is a stopwatch driven by the SDL millisecond tick counter
// (any monotonic millisecond source will do) with support for pausing. It is
// used by the timing demos and by the FPS measurement code.
//
// CalcFPS() returns the average frame rate over a measured period.
//
// The RunProfiler() function wraps a function call with CPU and/or memory
// profiling, writing the standard pprof files.
//
// The limiter sub-package regulates the rate of the event/render loop.
package performance
