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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string and are printed as:
//
//	tag: detail
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. This is useful for per-frame processing where the
// same message would otherwise fill the log.
//
// The Log() and Logf() functions require a Permission argument. The Allow
// value can be used if the log entry should always be made.
package logger
