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
	"testing"

	"github.com/jetsetilly/ntscvhs/noise"
	"github.com/jetsetilly/ntscvhs/random"
	"github.com/jetsetilly/ntscvhs/shift"
	"github.com/jetsetilly/ntscvhs/test"
	"github.com/jetsetilly/ntscvhs/yiq"
)

// frame with a different ramp in every row of every plane
func rampFrame(w int, h int) *yiq.Planar {
	frame := yiq.NewPlanar(w, h, yiq.Both)
	for r := range h {
		for x := range w {
			v := float64(x)/float64(w) + float64(r)*0.01
			frame.Y[r*w+x] = v
			frame.I[r*w+x] = v * 0.5
			frame.Q[r*w+x] = -v * 0.25
		}
	}
	return frame
}

func copyFrame(frame *yiq.Planar) *yiq.Planar {
	c := yiq.NewPlanar(frame.Width, frame.Height, frame.Field)
	copy(c.Y, frame.Y)
	copy(c.I, frame.I)
	copy(c.Q, frame.Q)
	return c
}

func TestHeadSwitching(t *testing.T) {
	const seed = 42
	const frameNum = 3
	s := HeadSwitchingSettings{Height: 8, Offset: 3, HorizShift: 20}

	frame := rampFrame(32, 20)
	orig := copyFrame(frame)
	headSwitching(frame, seed, frameNum, s)

	// rows above the bottom Height-Offset rows are untouched
	band := s.Height - s.Offset
	for r := range frame.Height - band {
		test.ExpectSliceApproximate(t, frame.Row(frame.Y, r), orig.Row(orig.Y, r), 0.0, r)
	}

	// rows in the band are shifted by the power curve plus the row jitter
	jitterSeed := random.KeySeed(seed, random.HeadSwitchingPhase, 0)
	for r := range band {
		dst := frame.Height - 1 - r
		amount := s.HorizShift * math.Pow(float64(r+s.Offset)/float64(s.Height), 1.5)
		amount += noise.Sample(float64(frameNum*s.Height+r), 1.0, jitterSeed) - 0.5

		expected := append([]float64{}, orig.Row(orig.Y, dst)...)
		shift.ShiftRow(expected, amount, shift.Constant(0.0))
		test.ExpectSliceApproximate(t, frame.Row(frame.Y, dst), expected, 1e-12, r)
	}

	// chroma is never shifted
	test.ExpectSliceApproximate(t, frame.I, orig.I, 0.0)
	test.ExpectSliceApproximate(t, frame.Q, orig.Q, 0.0)
}

func TestHeadSwitchingNoiseWave(t *testing.T) {
	const seed = 7
	const frameNum = 2
	s := HeadSwitchingNoiseSettings{Height: 6, WaveIntensity: 40.0}

	frame := rampFrame(32, 16)
	orig := copyFrame(frame)
	headSwitchingNoise(frame, seed, frameNum, s)

	for r := range frame.Height - s.Height {
		test.ExpectSliceApproximate(t, frame.Row(frame.Y, r), orig.Row(orig.Y, r), 0.0, r)
	}

	// the wave is scaled down linearly towards the top of the band
	rng := random.New(random.KeySeed(seed, random.HeadSwitching, frameNum))
	g := noise.NewGradient(int64(rng.Uint32()), headSwitchingWaveFrequency)
	offset := rng.Float64() * float64(frame.Height)

	for r := range s.Height {
		dst := frame.Height - 1 - r
		scale := 1.0 - float64(r)/float64(s.Height)
		amount := g.At(offset+float64(r)) * scale * s.WaveIntensity * 0.25

		expected := append([]float64{}, orig.Row(orig.Y, dst)...)
		shift.ShiftRow(expected, amount, shift.Constant(0.0))
		test.ExpectSliceApproximate(t, frame.Row(frame.Y, dst), expected, 1e-12, r)
	}
}

func TestHeadSwitchingNoiseSnow(t *testing.T) {
	const w = 2000
	s := HeadSwitchingNoiseSettings{Height: 24, SnowIntensity: 0.01}

	frame := yiq.NewPlanar(w, 40, yiq.Both)
	headSwitchingNoise(frame, 1, 0, s)

	changed := func(r int) int {
		var n int
		for _, v := range frame.Row(frame.Y, r) {
			if v != 0.0 {
				n++
			}
		}
		return n
	}

	// rows above the band have no snow
	for r := range frame.Height - s.Height {
		test.ExpectEquality(t, changed(r), 0, r)
	}

	// the bottom of the band has more snow than the top of the band
	var bottom, top int
	for r := range 4 {
		bottom += changed(frame.Height - 1 - r)
		top += changed(frame.Height - s.Height + r)
	}
	test.ExpectSuccess(t, bottom > top, bottom, top)
	test.ExpectSuccess(t, bottom > 0, bottom)
}

func TestChromaPhaseNoise(t *testing.T) {
	frame := rampFrame(16, 8)
	orig := copyFrame(frame)
	chromaPhaseNoise(frame, 42, 0, 1.0)

	// the chroma vector is rotated and keeps its length
	var rotated bool
	for p := range frame.I {
		test.ExpectApproximate(t, math.Hypot(frame.I[p], frame.Q[p]), math.Hypot(orig.I[p], orig.Q[p]), 1e-12, p)
		if math.Abs(frame.I[p]-orig.I[p]) > 1e-6 {
			rotated = true
		}
	}
	test.ExpectSuccess(t, rotated)

	// luma is unchanged
	test.ExpectSliceApproximate(t, frame.Y, orig.Y, 0.0)
}

func TestEdgeWave(t *testing.T) {
	// every plane has the same content so the same shift leaves them equal
	same := func() *yiq.Planar {
		frame := rampFrame(32, 12)
		copy(frame.I, frame.Y)
		copy(frame.Q, frame.Y)
		return frame
	}

	a := same()
	edgeWave(a, 42, 0, 10.0, 4.0)
	test.ExpectSliceApproximate(t, a.I, a.Y, 0.0)
	test.ExpectSliceApproximate(t, a.Q, a.Y, 0.0)
	test.ExpectInequality(t, a.Y[5], same().Y[5])

	// the wave moves from frame to frame
	b := same()
	edgeWave(b, 42, 1, 10.0, 4.0)
	var moved bool
	for p := range a.Y {
		if math.Abs(a.Y[p]-b.Y[p]) > 1e-9 {
			moved = true
		}
	}
	test.ExpectSuccess(t, moved)

	// but not when the speed is zero
	c := same()
	d := same()
	edgeWave(c, 42, 0, 10.0, 0.0)
	edgeWave(d, 42, 5, 10.0, 0.0)
	test.ExpectSliceApproximate(t, c.Y, d.Y, 0.0)
}
