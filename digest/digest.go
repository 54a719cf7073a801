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

// Package digest creates fingerprints of processed images. Fingerprints are
// useful for checking that the output of a sequence of frames has not
// changed between versions of the program.
package digest

// Digest implementations compute a fingerprint of some data.
type Digest interface {
	Hash() string
	ResetDigest()
}
