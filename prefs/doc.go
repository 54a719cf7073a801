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

// Package prefs facilitates the storage of preferential values in the
// application. Values are stored in the Bool, Int, Float and String types.
// Each type can have a hook function registered that is called before or
// after a value is changed.
//
// The Disk type associates preference values with a key and a file on disk.
// The file is a plain text file with one value per line:
//
//	key :: value
//
// Many Disk instances can share the same file. A call to Save() preserves any
// entries in the file that belong to other Disk instances.
package prefs
