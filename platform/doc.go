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

// Package platform initialises SDL and owns the window and renderer handles
// for the lifetime of a demo.
//
// A Platform is created once at program start and destroyed once at program
// end. Resources are released in the reverse order of acquisition: renderers
// before their windows, windows before the extension subsystems, the
// extension subsystems before SDL itself.
//
// Most demos use a single window but the Platform maintains a window list so
// that the multi-window demos can create more. Window events carry a window
// identifier and are routed to the matching Window instance, which tracks its
// own shown/focus/minimised state.
//
// All functions in this package must be called from the main thread. The
// New() function calls runtime.LockOSThread() for this reason.
package platform
