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

package filter

import (
	"math"

	"github.com/jetsetilly/ntscvhs/curated"
)

// Lowpass returns a single pole lowpass filter for the cutoff frequency and
// sample rate, both in Hz.
//
// Parameters that produce a non-finite filter coefficient give a filter that
// holds the initial condition.
func Lowpass(cutoff float64, rate float64) TransferFunction {
	tau := 1.0 / (2.0 * math.Pi * cutoff)
	dt := 1.0 / rate
	alpha := dt / (tau + dt)
	if math.IsNaN(alpha) {
		alpha = 0.0
	}
	alpha = math.Max(0.0, math.Min(1.0, alpha))

	return must([]float64{alpha}, []float64{1.0, -(1.0 - alpha)})
}

// LowpassTriple returns three single pole lowpass filters in cascade. It has
// a steeper roll-off than the filter returned by Lowpass().
func LowpassTriple(cutoff float64, rate float64) TransferFunction {
	tf := Lowpass(cutoff, rate)
	return tf.Cascade(tf).Cascade(tf)
}

// Notch returns a band-reject filter. The frequency is normalised so that 1.0
// is the Nyquist frequency. Quality controls the width of the band, a higher
// quality giving a narrower band.
func Notch(freq float64, quality float64) (TransferFunction, error) {
	if math.IsNaN(freq) || freq < 0.0 || freq > 1.0 {
		return TransferFunction{}, curated.Errorf(InvalidParameter, "notch frequency", freq)
	}
	if math.IsNaN(quality) || quality <= 0.0 {
		return TransferFunction{}, curated.Errorf(InvalidParameter, "notch quality", quality)
	}

	bandwidth := (freq / quality) * math.Pi
	f := freq * math.Pi

	beta := math.Tan(bandwidth * 0.5)
	gain := 1.0 / (1.0 + beta)
	c := -2.0 * math.Cos(f) * gain

	tf, err := New([]float64{gain, c, gain}, []float64{1.0, c, 2.0*gain - 1.0})
	if err != nil {
		return TransferFunction{}, curated.Errorf(InvalidParameter, "notch design", err)
	}

	return tf, nil
}
