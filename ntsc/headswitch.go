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

	"github.com/jetsetilly/ntscvhs/noise"
	"github.com/jetsetilly/ntscvhs/random"
	"github.com/jetsetilly/ntscvhs/shift"
	"github.com/jetsetilly/ntscvhs/yiq"
)

// frequency of the wave in the head switching noise band
const headSwitchingWaveFrequency = 0.5

// displaces the bottom Height-Offset rows of the field. the displacement
// follows a power curve that grows with distance from the bottom row. each
// row also has a small random displacement that is not clamped
func headSwitching(frame *yiq.Planar, seed uint64, frameNum int, s HeadSwitchingSettings) {
	if s.Height <= 0 {
		return
	}

	jitterSeed := random.KeySeed(seed, random.HeadSwitchingPhase, 0)

	affected := min(s.Height-s.Offset, frame.Height)
	for r := range affected {
		dst := frame.Height - 1 - r

		amount := s.HorizShift * math.Pow(float64(r+s.Offset)/float64(s.Height), 1.5)

		// random value for the row, different for every frame
		t := float64(frameNum*s.Height + r)
		jitter := noise.Sample(t, 1.0, jitterSeed) - 0.5

		shift.ShiftRow(frame.Row(frame.Y, dst), amount+jitter, shift.Constant(0.0))
	}
}

// a band of noise at the bottom of the field. the rows are displaced by a
// wave and snow is added. both are strongest at the bottom row
func headSwitchingNoise(frame *yiq.Planar, seed uint64, frameNum int, s HeadSwitchingNoiseSettings) {
	if s.Height <= 0 {
		return
	}

	rng := random.New(random.KeySeed(seed, random.HeadSwitching, frameNum))
	g := noise.NewGradient(int64(rng.Uint32()), headSwitchingWaveFrequency)
	offset := rng.Float64() * float64(frame.Height)

	rows := min(s.Height, frame.Height)
	for r := range rows {
		scale := 1.0 - float64(r)/float64(s.Height)
		dst := frame.Height - 1 - r
		row := frame.Row(frame.Y, dst)

		wave := g.At(offset + float64(r))
		shift.ShiftRow(row, wave*scale*s.WaveIntensity*0.25, shift.Constant(0.0))

		speckles := random.New(random.RowSeed(seed, random.HeadSwitching, frameNum, r))
		RowSpeckles(row, speckles, s.SnowIntensity*scale)
	}
}
