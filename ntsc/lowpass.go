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
	"github.com/jetsetilly/ntscvhs/yiq"
)

// NTSCRate is the sample rate of the signal in Hz. Four times the frequency
// of the colour subcarrier.
const NTSCRate = 315000000.0 / 88.0 * 4.0

// cutoff of the lowpass filter used for composite preemphasis. half the
// subcarrier frequency
const preemphasisCutoff = 315000000.0 / 88.0 / 2.0

func chromaLowpass(frame *yiq.Planar, mode ChromaLowpass) {
	switch mode {
	case ChromaLowpassFull:
		i := filter.LowpassTriple(1300000.0, NTSCRate)
		q := filter.LowpassTriple(600000.0, NTSCRate)
		i.FilterPlane(frame.I, frame.Width, filter.Zero, 1.0, 2)
		q.FilterPlane(frame.Q, frame.Width, filter.Zero, 1.0, 4)
	case ChromaLowpassLight:
		f := filter.LowpassTriple(2600000.0, NTSCRate)
		f.FilterPlane(frame.I, frame.Width, filter.Zero, 1.0, 1)
		f.FilterPlane(frame.Q, frame.Width, filter.Zero, 1.0, 1)
	}
}

// boosts the high frequencies of the composite signal
func compositePreemphasis(frame *yiq.Planar, amount float64) {
	f := filter.Lowpass(preemphasisCutoff, NTSCRate)
	f.FilterPlane(frame.Y, frame.Width, filter.Zero, -amount, 0)
}
