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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that want to
// express a kind of error define the pattern as a const string and callers
// check for it with Is() or Has():
//
//	const ConfigurationError = "configuration error: %v"
//
//	err := curated.Errorf(ConfigurationError, "frequency out of range")
//	if curated.Is(err, ConfigurationError) {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the entire chain of
// curated errors found in the placeholder values.
//
// The Error() implementation normalises the message chain so that adjacent
// duplicate parts are removed. Parts are separated by the sub-string ": ". In
// practice this means that a function can wrap an error with its own context
// without worrying whether the callee has already done so:
//
//	filter: filter: notch frequency out of range
//
// is printed as:
//
//	filter: notch frequency out of range
//
// Curated errors implement Unwrap() []error so that the errors.Is() and
// errors.As() functions from the standard library work with any
// non-curated errors wrapped by a curated error.
package curated
