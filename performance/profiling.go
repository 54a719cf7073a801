// This file is part of ntscvhs.
//
// ntscvhs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ntscvhs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ntscvhs.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/ntscvhs/curated"
)

// Sentinal error patterns.
const (
	ProfileError = "performance: %v"
)

// Profile specifies which profiles to create.
type Profile int

// List of valid Profile values. The values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// ParseProfileString converts a comma separated list of profile names to a
// Profile value. The names are "cpu", "mem", "trace", "all" and "none".
func ParseProfileString(s string) (Profile, error) {
	var p Profile
	for _, f := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileCPU | ProfileMem | ProfileTrace
		default:
			return ProfileNone, curated.Errorf(ProfileError, "unknown profile type: "+f)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function with the requested profiles
// active. Profile files are named with the supplied header. For example, a
// header of "ntscvhs" produces "ntscvhs.cpu.profile".
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		inner := run
		run = func() error {
			return cpuProfile(filenameHeader+".cpu.profile", inner)
		}
	}

	if profile&ProfileTrace == ProfileTrace {
		inner := run
		run = func() error {
			return profileTrace(filenameHeader+".trace.profile", inner)
		}
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		return memProfile(filenameHeader + ".mem.profile")
	}

	return nil
}

// run function with CPU profiling active. the profile is written to outFile
func cpuProfile(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// write heap profile to outFile
func memProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return curated.Errorf(ProfileError, err)
	}

	return nil
}

func profileTrace(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer trace.Stop()

	return run()
}
