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
	"github.com/jetsetilly/ntscvhs/filter"
	"github.com/jetsetilly/ntscvhs/noise"
	"github.com/jetsetilly/ntscvhs/random"
	"github.com/jetsetilly/ntscvhs/shift"
	"github.com/jetsetilly/ntscvhs/yiq"
)

// frequency of the edge wave noise field, in both the row and time axes
const edgeWaveFrequency = 0.05

// scale of the luma sharpening that follows the tape lowpass filters
const tapeSharpen = -1.6

func vhs(frame *yiq.Planar, seed uint64, frameNum int, s VHSSettings) {
	if s.EdgeWave > 0.0 {
		edgeWave(frame, seed, frameNum, s.EdgeWave, s.EdgeWaveSpeed)
	}

	params, tape := s.TapeSpeed.params()

	if tape {
		luma := filter.LowpassTriple(params.lumaCut, NTSCRate)
		chroma := filter.LowpassTriple(params.chromaCut, NTSCRate)

		luma.FilterPlane(frame.Y, frame.Width, filter.Zero, 1.0, 0)
		chroma.FilterPlane(frame.I, frame.Width, filter.Zero, 1.0, params.chromaDelay)
		chroma.FilterPlane(frame.Q, frame.Width, filter.Zero, 1.0, params.chromaDelay)

		single := filter.Lowpass(params.lumaCut, NTSCRate)
		single.FilterPlane(frame.Y, frame.Width, filter.Zero, tapeSharpen, 0)
	}

	if s.ChromaVertBlend {
		chromaVertBlend(frame)
	}

	// luma sharpening is only possible with the parameters of a tape speed.
	// there is no chroma sharpening
	if s.Sharpen > 0.0 && tape {
		f := filter.LowpassTriple(params.lumaCut*4.0, NTSCRate)
		f.FilterPlane(frame.Y, frame.Width, filter.Zero, -s.Sharpen*2.0, 0)
	}
}

// the edge wave is a wobble of the entire field that changes smoothly from
// row to row and from frame to frame
func edgeWave(frame *yiq.Planar, seed uint64, frameNum int, intensity float64, speed float64) {
	rng := random.New(random.KeySeed(seed, random.EdgeWave, 0))
	g := noise.NewGradient(int64(rng.Uint32()), edgeWaveFrequency)
	offset := rng.Float64() * float64(frame.Height)

	t := float64(frameNum) * speed

	for r := range frame.Height {
		amount := g.At2D(offset+float64(r), t) * intensity * 0.5
		for _, plane := range frame.Planes() {
			shift.ShiftRow(frame.Row(plane, r), amount, shift.Extend)
		}
	}
}

// each chroma row is blended with the chroma row above it. the first row is
// blended with black
func chromaVertBlend(frame *yiq.Planar) {
	for _, plane := range [][]float64{frame.I, frame.Q} {
		delay := make([]float64, frame.Width)
		for r := range frame.Height {
			row := frame.Row(plane, r)
			for x, c := range row {
				row[x] = (delay[x] + c) * 0.5
				delay[x] = c
			}
		}
	}
}
