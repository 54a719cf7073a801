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

package random

// Seeder hashes a sequence of values into a single value. It is a value type
// and has no state beyond the current hash so it can be used freely from any
// goroutine.
type Seeder struct {
	state uint64
}

// golden ratio increment, same as used by splitmix64
const increment = 0x9e3779b97f4a7c15

// splitmix64 finaliser
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NewSeeder is the preferred method of initialisation for the Seeder type.
func NewSeeder(v uint64) Seeder {
	return Seeder{state: mix(v + increment)}
}

// MixUint64 mixes another value into the hash.
func (s Seeder) MixUint64(v uint64) Seeder {
	s.state = mix(s.state ^ mix(v+increment))
	return s
}

// MixInt mixes a signed integer into the hash.
func (s Seeder) MixInt(v int) Seeder {
	return s.MixUint64(uint64(v))
}

// Finalize returns the hash as a 64bit value.
func (s Seeder) Finalize() uint64 {
	return mix(s.state)
}

// Float64 returns the hash as a value in the range [0.0, 1.0).
func (s Seeder) Float64() float64 {
	return float64(s.Finalize()>>11) * (1.0 / (1 << 53))
}
