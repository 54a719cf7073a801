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

import (
	"math"
	"math/rand/v2"

	"github.com/jetsetilly/ntscvhs/noise"
	"github.com/jetsetilly/ntscvhs/random"
	"github.com/jetsetilly/ntscvhs/yiq"
)

// frequencies of the noise fields used by the composite and chroma noise
// passes
const (
	compositeNoiseFrequency = 0.25
	chromaNoiseFrequency    = 0.05
)

// each row is given a new gradient field with a randomised seed and offset
func videoNoiseLine(row []float64, rng *rand.Rand, frequency float64, intensity float64) {
	seed := int64(rng.Uint32())
	offset := rng.Float64() * float64(len(row))

	g := noise.NewGradient(seed, frequency)
	for x := range row {
		row[x] += g.At(offset+float64(x)) * 0.25 * intensity
	}
}

func compositeNoise(frame *yiq.Planar, seed uint64, frameNum int, intensity float64) {
	for r := range frame.Height {
		rng := random.New(random.RowSeed(seed, random.VideoComposite, frameNum, r))
		videoNoiseLine(frame.Row(frame.Y, r), rng, compositeNoiseFrequency, intensity)
	}
}

func chromaNoise(frame *yiq.Planar, seed uint64, frameNum int, intensity float64) {
	for r := range frame.Height {
		rng := random.New(random.RowSeed(seed, random.VideoChroma, frameNum, r))
		videoNoiseLine(frame.Row(frame.I, r), rng, chromaNoiseFrequency, intensity)
		videoNoiseLine(frame.Row(frame.Q, r), rng, chromaNoiseFrequency, intensity)
	}
}

// rotates the chroma vector of each row by a random angle. an intensity of
// one gives angles between plus and minus one full rotation
func chromaPhaseNoise(frame *yiq.Planar, seed uint64, frameNum int, intensity float64) {
	for r := range frame.Height {
		rng := random.New(random.RowSeed(seed, random.VideoChromaPhase, frameNum, r))

		angle := (rng.Float64() - 0.5) * math.Pi * 4.0 * intensity
		sin, cos := math.Sincos(angle)

		i := frame.Row(frame.I, r)
		q := frame.Row(frame.Q, r)
		for x := range i {
			ri := i[x]*cos - q[x]*sin
			rq := i[x]*sin + q[x]*cos
			i[x], q[x] = ri, rq
		}
	}
}

// half the number of samples between zero crossings of the speckle transient
const speckleFrequency = 8

// length of the speckle transient in samples
const speckleLength = 2 * speckleFrequency

// RowSpeckles adds snow to the row. The intensity is the probability of any
// sample being the start of a speckle. Each speckle is a decaying sinusoid
// of random amplitude starting on the speckle sample.
//
// An intensity of zero or less never changes the row. An intensity of one or
// more starts a speckle on every sample.
func RowSpeckles(row []float64, rng *rand.Rand, intensity float64) {
	if intensity <= 0.0 || math.IsNaN(intensity) {
		return
	}

	// the distance between speckles follows a geometric distribution so there
	// is no need to test every sample
	idx := 0
	for {
		d := random.Geometric(rng, intensity)
		if d >= len(row)-idx {
			break
		}
		idx += d

		// sin(πx/8) * (1 - x/16)^2 for x of 1 to 16. the first sample of the
		// transient is the speckle sample
		end := min(idx+speckleLength, len(row))
		for j := idx; j < end; j++ {
			x := float64(j-idx) + 1.0
			decay := 1.0 - x/speckleLength
			row[j] += math.Sin(x*math.Pi/speckleFrequency) * decay * decay * 2.0 * rng.Float64()
		}

		// the geometric distribution can return zero so always advance
		idx++
	}
}

func snow(frame *yiq.Planar, seed uint64, frameNum int, intensity float64) {
	for r := range frame.Height {
		rng := random.New(random.RowSeed(seed, random.Snow, frameNum, r))
		RowSpeckles(frame.Row(frame.Y, r), rng, intensity)
	}
}
