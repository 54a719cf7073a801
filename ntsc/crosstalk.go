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
	"github.com/jetsetilly/ntscvhs/yiq"
)

// amplitude of the chroma subcarrier relative to the luma signal. the scale
// is such that an amplitude of 50 adds the chroma value unchanged
const (
	subcarrierAmplitude = 50.0
	subcarrierScale     = 50.0
)

// the modulation pattern of the chroma subcarrier. four samples per cycle
var (
	iMult = [4]float64{1.0, 0.0, -1.0, 0.0}
	qMult = [4]float64{0.0, 1.0, 0.0, -1.0}
)

// lineOffset returns the phase of the subcarrier, as an index into the
// modulation pattern, at the start of a line.
func lineOffset(shift PhaseShift, offset int, field int, line int) int {
	switch shift {
	case PhaseShift90, PhaseShift270:
		return (field + offset + (line >> 1)) & 3
	case PhaseShift180:
		return (((field + line) & 2) + offset) & 3
	}
	return 0
}

// chromaIntoLuma modulates the chroma planes onto the luma plane, simulating
// a composite signal. The chroma planes are unchanged.
func chromaIntoLuma(frame *yiq.Planar, shift PhaseShift, offset int, field int) {
	for r := range frame.Height {
		xi := lineOffset(shift, offset, field, r*2)
		foldLine(frame.Row(frame.Y, r), frame.Row(frame.I, r), frame.Row(frame.Q, r), xi)
	}
}

func foldLine(y, i, q []float64, xi int) {
	for x := range y {
		o := (x + (xi & 3)) & 3
		y[x] += (i[x]*iMult[o] + q[x]*qMult[o]) * subcarrierAmplitude / subcarrierScale
	}
}

// lumaIntoChroma separates the chroma subcarrier from the luma plane. The
// luma is recovered with a short box filter and the difference between the
// filtered and unfiltered signal is demodulated into the chroma planes.
func lumaIntoChroma(frame *yiq.Planar, shift PhaseShift, offset int, field int) {
	for r := range frame.Height {
		xi := lineOffset(shift, offset, field, r*2)
		unfoldLine(frame.Row(frame.Y, r), frame.Row(frame.I, r), frame.Row(frame.Q, r), xi)
	}
}

func unfoldLine(y, i, q []float64, xi int) {
	w := len(y)
	if w == 0 {
		return
	}

	// raw luma outside the row is taken from the nearest sample with the same
	// subcarrier phase, so the box filter always covers a whole cycle
	pad := func(p int) float64 {
		switch {
		case p < 0 && p+4 < w:
			p += 4
		case p >= w && p-4 >= 0:
			p -= 4
		}
		return y[max(0, min(p, w-1))]
	}

	// the box filter covers samples x-1 to x+2. the delay line holds the raw
	// values because y is overwritten as the filter moves along the row
	var delay [4]float64
	delay[0] = pad(-2)
	delay[1] = pad(-1)
	delay[2] = pad(0)
	delay[3] = pad(1)
	head := 0
	sum := delay[0] + delay[1] + delay[2] + delay[3]

	// demodulated chroma of the samples next to the first and last samples.
	// the edges have no outer neighbour so the inner tap is mirrored
	var leftI, leftQ, rightI, rightQ float64

	clear(i[:1])
	clear(q[:1])

	for x := range w {
		// past the right edge the sample four positions earlier has the
		// same phase. it is the raw value leaving the delay line
		c := delay[head]
		if x+2 < w {
			c = y[x+2]
		}

		sum -= delay[head]
		delay[head] = c
		head = (head + 1) & 3
		sum += c

		y[x] = sum * 0.25

		chroma := (c - y[x]) * subcarrierScale / subcarrierAmplitude

		o := (x + (xi & 3)) & 3
		im := -(chroma * iMult[o])
		qm := -(chroma * qMult[o])

		if x < w-1 {
			i[x+1] = im * 0.5
			q[x+1] = qm * 0.5
		}

		i[x] += im
		q[x] += qm

		if x > 0 {
			i[x-1] += im * 0.5
			q[x-1] += qm * 0.5
		}

		if x == 1 {
			leftI, leftQ = im, qm
		}
		if x == w-2 {
			rightI, rightQ = im, qm
		}
	}

	if w > 1 {
		i[0] += leftI * 0.5
		q[0] += leftQ * 0.5
		i[w-1] += rightI * 0.5
		q[w-1] += rightQ * 0.5
	}
}
