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

package random_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/ntscvhs/random"
	"github.com/jetsetilly/ntscvhs/test"
)

func TestRandom(t *testing.T) {
	a := random.New(random.KeySeed(42, random.Snow, 10))
	b := random.New(random.KeySeed(42, random.Snow, 10))

	for range 256 {
		test.ExpectEquality(t, a.Uint64(), b.Uint64())
	}
}

func TestKeySeed(t *testing.T) {
	k := random.KeySeed(42, random.Snow, 0)
	test.ExpectEquality(t, k, random.KeySeed(42, random.Snow, 0))

	// every component of the key changes the seed
	test.ExpectInequality(t, k, random.KeySeed(43, random.Snow, 0))
	test.ExpectInequality(t, k, random.KeySeed(42, random.EdgeWave, 0))
	test.ExpectInequality(t, k, random.KeySeed(42, random.Snow, 1))

	// purpose and frame number are not interchangeable
	test.ExpectInequality(t, random.KeySeed(42, 2, 3), random.KeySeed(42, 3, 2))

	r := random.RowSeed(42, random.Snow, 0, 0)
	test.ExpectInequality(t, r, random.RowSeed(42, random.Snow, 0, 1))
	test.ExpectInequality(t, r, k)
}

func TestSeederFloat(t *testing.T) {
	for i := range 1000 {
		f := random.NewSeeder(uint64(i)).MixUint64(7).Float64()
		test.ExpectSuccess(t, f >= 0.0 && f < 1.0, i)
	}
}

func TestGeometric(t *testing.T) {
	rng := random.New(1)

	// certain events are immediate
	for range 100 {
		test.ExpectEquality(t, random.Geometric(rng, 1.0), 0)
	}

	// impossible events never happen
	test.ExpectEquality(t, random.Geometric(rng, 0.0), math.MaxInt)
	test.ExpectEquality(t, random.Geometric(rng, -1.0), math.MaxInt)

	// the mean of the geometric distribution is (1-p)/p
	const p = 0.1
	const n = 20000
	var sum int
	for range n {
		k := random.Geometric(rng, p)
		test.DemandSuccess(t, k >= 0)
		sum += k
	}
	test.ExpectApproximate(t, float64(sum)/n, (1-p)/p, 0.5)
}
