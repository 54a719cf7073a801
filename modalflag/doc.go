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

// Package modalflag wraps the flag package of the standard library so that a
// program can have several modes of operation, each with its own flags.
//
// Arguments are given once with NewArgs() and then Parse() is called for each
// layer of modes. Sub-modes for the next layer are added with AddSubModes().
// The first argument that follows the flags selects the sub-mode. If it does
// not name one then the first sub-mode that was added is the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "prefs")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frame := md.AddInt("frame", 0, "frame number")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		run(*frame, md.RemainingArgs())
//	}
//
// The -help flag is handled by Parse() and lists the flags and sub-modes of
// the current mode.
package modalflag
