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

import (
	"math"
	"math/rand/v2"
)

// Purpose identifies the use-site of a random number stream. Each pass in the
// effect pipeline that needs random numbers has its own purpose so that the
// streams are independent of one another.
type Purpose uint64

// List of valid Purpose values.
const (
	VideoComposite Purpose = iota
	VideoChroma
	HeadSwitching
	HeadSwitchingPhase
	VideoChromaPhase
	EdgeWave
	Snow
)

func (p Purpose) String() string {
	switch p {
	case VideoComposite:
		return "video composite"
	case VideoChroma:
		return "video chroma"
	case HeadSwitching:
		return "head switching"
	case HeadSwitchingPhase:
		return "head switching phase"
	case VideoChromaPhase:
		return "video chroma phase"
	case EdgeWave:
		return "edge wave"
	case Snow:
		return "snow"
	}
	return "unknown purpose"
}

// the second seed required by the PCG generator is derived from the first by
// xoring with this value
const pcgStream = 0xda3e39cb94b95bdb

// KeySeed derives the seed for a pass from the global seed, the purpose of
// the random numbers and the frame number.
func KeySeed(seed uint64, purpose Purpose, frameNum int) uint64 {
	return NewSeeder(seed).MixUint64(uint64(purpose)).MixUint64(uint64(frameNum)).Finalize()
}

// RowSeed is the same as KeySeed() but additionally keyed by the row number.
// Passes that consume random numbers row by row use this so that each row is
// independent of the order in which rows are processed.
func RowSeed(seed uint64, purpose Purpose, frameNum int, row int) uint64 {
	return NewSeeder(seed).MixUint64(uint64(purpose)).MixUint64(uint64(frameNum)).MixUint64(uint64(row)).Finalize()
}

// New returns a random number generator from the standard library, seeded
// with the supplied value. The same seed always produces the same sequence.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// Geometric returns the number of failed trials before the first success in
// a sequence of Bernoulli trials with a probability of success p. In other
// words, the distance to the next event.
//
// A probability of zero or less never succeeds and math.MaxInt is returned.
// A probability of one or more always succeeds immediately.
func Geometric(rng *rand.Rand, p float64) int {
	if p <= 0.0 || math.IsNaN(p) {
		return math.MaxInt
	}
	if p >= 1.0 {
		return 0
	}

	// inverse transform sampling. 1-Float64() is in the range (0, 1] so the
	// logarithm is always finite
	u := 1.0 - rng.Float64()
	k := math.Floor(math.Log(u) / math.Log1p(-p))
	if k >= math.MaxInt32 {
		return math.MaxInt
	}
	return int(k)
}
