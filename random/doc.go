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

// Package random should be used in preference to the math/rand package when a
// random number is required by the effect pipeline.
//
// All random numbers are reproducible. A random number generator is created
// from a seed derived by the KeySeed() or RowSeed() functions, which combine
// the global seed with the Purpose of the numbers, the frame number and
// optionally the row number. No generator is shared between passes or between
// rows so the result of a pass does not depend on what ran before it.
//
// The Seeder type is a stateless hash that can be used where a generator
// would be overkill, for example in noise functions that need a random value
// for a coordinate.
//
// Geometric() samples the distance to the next event in a sparse sequence of
// events. This is much quicker than testing every sample individually when
// the probability of an event is low.
package random
