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

// Package statsview serves live charts of the program's memory use, garbage
// collection and goroutines. It is enabled with the -statsview flag of the
// RUN and ANIMATE modes but only when the program is built with the
// statsview build tag:
//
//	go build -tags statsview .
//
// The charts are then at localhost:12600/debug/statsview.
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview
