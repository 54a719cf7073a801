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

package ntsc

// Sentinal error patterns.
const (
	// the effect configuration cannot be used. returned by Validate() and by
	// ApplyEffect() before any processing starts
	ConfigurationError = "ntsc: configuration: %v"

	// the image or frame number passed to ApplyEffect() cannot be used
	InvalidInputError = "ntsc: invalid input: %v"
)
