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

package performance_test

import (
	"testing"

	"github.com/sdltour/sdltour/performance"
	"github.com/sdltour/sdltour/test"
)

func TestCalcFPS(t *testing.T) {
	test.Equate(t, performance.CalcFPS(120, 2.0), 60.0)
	test.Equate(t, performance.CalcFPS(0, 2.0), 0.0)

	// nonsense durations give a zero rate rather than Inf/NaN
	test.Equate(t, performance.CalcFPS(100, 0.0), 0.0)
}

func TestTimer(t *testing.T) {
	// substitute tick source so the test doesn't need SDL or real time
	var ticks uint32
	tmr := performance.NewTimer(func() uint32 { return ticks })

	test.Equate(t, tmr.IsStarted(), false)
	test.Equate(t, tmr.Ticks(), 0)

	ticks = 1000
	tmr.Start()
	ticks = 1500
	test.Equate(t, tmr.Ticks(), 500)
	test.Equate(t, tmr.IsStarted(), true)
	test.Equate(t, tmr.IsPaused(), false)

	// pausing holds the count
	tmr.Pause()
	ticks = 9000
	test.Equate(t, tmr.Ticks(), 500)
	test.Equate(t, tmr.IsPaused(), true)

	// unpausing continues from where the pause left off
	tmr.Unpause()
	ticks = 9250
	test.Equate(t, tmr.Ticks(), 750)

	// restarting the timer resets the count
	tmr.Start()
	test.Equate(t, tmr.Ticks(), 0)

	tmr.Stop()
	test.Equate(t, tmr.IsStarted(), false)
	test.Equate(t, tmr.Ticks(), 0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileCPU, true)

	_, err = performance.ParseProfileString("wrong")
	test.ExpectedFailure(t, err)
}
