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

package noise

import (
	"math"

	"github.com/jetsetilly/ntscvhs/random"
)

// the jitter and the value of a cell are hashed with different salts so that
// they are not correlated
const (
	jitterSalt = 1
	valueSalt  = 2
)

// jitter offset of a cell boundary, in the range [-jitter/2, jitter/2)
func cellJitter(cell int64, jitter float64, seed uint64) float64 {
	return (random.NewSeeder(uint64(cell)).MixUint64(seed).MixUint64(jitterSalt).Float64() - 0.5) * jitter
}

// random value of a cell, in the range [0, 1)
func cellValue(cell int64, seed uint64) float64 {
	return random.NewSeeder(uint64(cell)).MixUint64(seed).MixUint64(valueSalt).Float64()
}

// Sample returns jittered value noise at time t. The result is in the range
// [0, 1) and varies smoothly with t, which makes it useful for varying
// parameters over time.
//
// Value noise interpolates between random values placed at integer positions.
// The jitter argument moves those positions by up to half the jitter value in
// either direction, which avoids periodic artifacts. A jitter of zero gives
// plain value noise.
//
// Sample is a pure function of its arguments. There is no generator state.
func Sample(t float64, jitter float64, seed uint64) float64 {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return cellValue(0, seed)
	}

	cell := int64(math.Floor(t))
	pos := t - math.Floor(t)

	left := cellJitter(cell, jitter, seed)
	right := cellJitter(cell+1, jitter, seed)

	// the jittered boundaries may mean that t is actually in the neighbouring
	// cell. reselect that cell and recompute the missing boundary. this only
	// ever needs to happen once because jitter is less than one cell wide
	var offset float64
	switch {
	case pos < left:
		right = left
		left = cellJitter(cell-1, jitter, seed)
		offset = -1.0
		cell--
	case pos > right+1.0:
		left = right
		right = cellJitter(cell+2, jitter, seed)
		offset = 1.0
		cell++
	}

	dist := (pos - (left + offset)) / (right + 1.0 - left)
	dist = math.Max(0.0, math.Min(1.0, dist))
	if math.IsNaN(dist) {
		dist = 0.0
	}

	// smoothstep
	dist = dist * dist * (3.0 - 2.0*dist)

	return cellValue(cell, seed)*(1.0-dist) + cellValue(cell+1, seed)*dist
}
