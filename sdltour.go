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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sdltour/sdltour/demo"
	"github.com/sdltour/sdltour/logger"
	"github.com/sdltour/sdltour/modalflag"
	"github.com/sdltour/sdltour/performance"
	"github.com/sdltour/sdltour/statsview"
	"github.com/sdltour/sdltour/structure"
	"github.com/sdltour/sdltour/version"
)

// #mainthread
func main() {
	// SDL windowing must only ever be touched from the main thread. every
	// demo runs in the main goroutine so locking here covers them all
	runtime.LockOSThread()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "LIST":
		err = list(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fps := md.AddInt("fps", 0, "cap the frame rate (zero means uncapped)")
	vsync := md.AddBool("vsync", false, "present in step with the display refresh")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "NONE", "run with profiling: CPU, MEM, BOTH, NONE")
	stats := md.AddBool("statsview", false, "run stats server")
	structureFile := md.AddString("structure", "", "write graphviz dump of the demo registry to file")

	md.AdditionalHelp("the available demos can be listed with the LIST mode")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("demo name required for %s mode", md)
	case 1:
		dm, ok := demo.Lookup(md.GetArg(0))
		if !ok {
			return fmt.Errorf("no demo named %s (use LIST mode to see them)", md.GetArg(0))
		}

		if *structureFile != "" {
			// memviz wants a pointer to the graph root
			names := demo.Names()
			err = structure.Write(*structureFile, &names)
			if err != nil {
				return err
			}
		}

		prf, err := performance.ParseProfileString(*profile)
		if err != nil {
			return err
		}

		opts := demo.Options{
			FPSCap: *fps,
			VSync:  *vsync,
		}

		if prf == performance.ProfileNone {
			return dm.Run(opts)
		}

		return performance.RunProfiler(prf, dm.Name, func() error {
			return dm.Run(opts)
		})
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	demo.List(os.Stdout)

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Printf("%s %s\n", version.ApplicationName, version.Version)

	return nil
}
