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

// Package version records the version information for the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "SDLTour"

// Revision contains the vcs revision. If the source has been modified but has
// not been committed then the Revision string will be suffixed with "+dirty".
var Revision string

// Version contains the version string for the current build. If the source
// was not built from a vcs checkout the string will be "local".
var Version string

func init() {
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		Revision = "no revision information"
		Version = "local"
	} else {
		Revision = vcsRevision
		if vcsModified {
			Revision = fmt.Sprintf("%s+dirty", Revision)
		}
		Version = fmt.Sprintf("unreleased (%.7s)", vcsRevision)
	}
}
