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

// InvalidParameter is the pattern for errors returned by the filter
// constructors.
const InvalidParameter = "filter: invalid %s (%v)"

// sums of coefficients smaller than this are treated as zero when calculating
// the steady state of the filter
const degenerateSum = 1e-12

type initialKind int

const (
	initialZero initialKind = iota
	initialConstant
	initialFirstSample
)

// InitialCondition specifies the value of the signal assumed for all samples
// before the start of the row. The filter state is initialised to the steady
// state of a constant input of that value.
type InitialCondition struct {
	kind  initialKind
	value float64
}

// Zero assumes that the signal before the start of the row is zero.
var Zero = InitialCondition{kind: initialZero}

// FirstSample assumes that the signal before the start of the row is equal to
// the first sample of the row. This reduces the transient at the left edge of
// the row.
var FirstSample = InitialCondition{kind: initialFirstSample}

// Constant assumes that the signal before the start of the row is equal to v.
func Constant(v float64) InitialCondition {
	return InitialCondition{kind: initialConstant, value: v}
}

func (ic InitialCondition) resolve(row []float64) float64 {
	switch ic.kind {
	case initialConstant:
		return ic.value
	case initialFirstSample:
		if len(row) > 0 {
			return row[0]
		}
	}
	return 0.0
}

// TransferFunction is a rational transfer function describing a causal IIR
// filter. The coefficients are normalised so that the first denominator
// coefficient is one and the numerator and denominator have the same length.
//
// A TransferFunction is immutable. The zero value is a filter that does
// nothing.
type TransferFunction struct {
	num []float64
	den []float64
}

// New creates a TransferFunction from numerator and denominator coefficients,
// in order of increasing delay. The coefficients are normalised by the first
// denominator coefficient, which must not be zero.
func New(num []float64, den []float64) (TransferFunction, error) {
	if len(num) == 0 {
		return TransferFunction{}, curated.Errorf(InvalidParameter, "numerator", "empty")
	}
	if len(den) == 0 {
		return TransferFunction{}, curated.Errorf(InvalidParameter, "denominator", "empty")
	}
	if den[0] == 0.0 {
		return TransferFunction{}, curated.Errorf(InvalidParameter, "denominator", "leading coefficient is zero")
	}

	n := max(len(num), len(den))
	tf := TransferFunction{
		num: make([]float64, n),
		den: make([]float64, n),
	}

	a0 := den[0]
	for i, v := range num {
		tf.num[i] = v / a0
	}
	for i, v := range den {
		tf.den[i] = v / a0
	}

	for i := range n {
		if !finite(tf.num[i]) || !finite(tf.den[i]) {
			return TransferFunction{}, curated.Errorf(InvalidParameter, "coefficients", "not finite")
		}
	}

	return tf, nil
}

// must is used by the constructors in this package whose coefficients are
// known to be valid.
func must(num []float64, den []float64) TransferFunction {
	tf, err := New(num, den)
	if err != nil {
		return TransferFunction{}
	}
	return tf
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Numerator returns a copy of the normalised numerator coefficients.
func (tf TransferFunction) Numerator() []float64 {
	return append([]float64(nil), tf.num...)
}

// Denominator returns a copy of the normalised denominator coefficients.
func (tf TransferFunction) Denominator() []float64 {
	return append([]float64(nil), tf.den...)
}

// Order returns the order of the filter. The zero value TransferFunction and
// a pure gain both have an order of zero.
func (tf TransferFunction) Order() int {
	if len(tf.num) == 0 {
		return 0
	}
	return len(tf.num) - 1
}

// convolve returns the polynomial product of a and b.
func convolve(a []float64, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	c := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			c[i+j] += x * y
		}
	}
	return c
}

// Cascade returns the transfer function equivalent to filtering with tf and
// then with other. The zero value TransferFunction is the identity.
func (tf TransferFunction) Cascade(other TransferFunction) TransferFunction {
	if len(tf.num) == 0 {
		return other
	}
	if len(other.num) == 0 {
		return tf
	}
	return TransferFunction{
		num: convolve(tf.num, other.num),
		den: convolve(tf.den, other.den),
	}
}

// steadyState returns the filter state for a constant input of c. In the
// transposed direct form the state is
//
//	z[j] = Σ(k>j) b[k]·c - a[k]·y
//
// where y is the steady state output c·Σb/Σa.
func (tf TransferFunction) steadyState(z []float64, c float64) {
	var sumB, sumA float64
	for i := range tf.num {
		sumB += tf.num[i]
		sumA += tf.den[i]
	}

	var y float64
	if math.Abs(sumA) >= degenerateSum {
		y = c * sumB / sumA
	}

	var acc float64
	for j := len(z) - 1; j >= 0; j-- {
		acc += tf.num[j+1]*c - tf.den[j+1]*y
		z[j] = acc
	}
}

// step filters a single sample, updating the state z.
func (tf TransferFunction) step(z []float64, x float64) float64 {
	y := tf.num[0] * x
	if len(z) == 0 {
		return y
	}
	y += z[0]

	last := len(z) - 1
	for j := 0; j < last; j++ {
		z[j] = z[j+1] + tf.num[j+1]*x - tf.den[j+1]*y
	}
	z[last] = tf.num[last+1]*x - tf.den[last+1]*y

	return y
}

// FilterSignalInPlace runs the filter across row. The filtered value of input
// sample n is written to index n+delay and indices before delay keep their
// values. Filtered samples that would be written beyond the end of the row
// are discarded.
//
// The written value is blended with the value already at the destination
// index by scale:
//
//	raw + (filtered - raw) * scale
//
// A scale of one writes the filtered signal and a negative scale emphasises
// the frequencies the filter removes.
func (tf TransferFunction) FilterSignalInPlace(row []float64, initial InitialCondition, scale float64, delay int) {
	if len(tf.num) == 0 || len(row) == 0 {
		return
	}
	delay = max(delay, 0)

	z := make([]float64, len(tf.num)-1)
	tf.steadyState(z, initial.resolve(row))

	n := len(row)

	if delay == 0 {
		for i := range n {
			raw := row[i]
			row[i] = raw + (tf.step(z, raw)-raw)*scale
		}
		return
	}

	// raw samples that have been overwritten by delayed output but which have
	// not yet been fed to the filter
	pending := make([]float64, delay)

	for i := range n {
		var x float64
		if i < delay {
			x = row[i]
		} else {
			x = pending[i%delay]
		}

		y := tf.step(z, x)

		j := i + delay
		if j < n {
			raw := row[j]
			pending[j%delay] = raw
			row[j] = raw + (y-raw)*scale
		}
	}
}

// FilterPlane applies FilterSignalInPlace() to every row of plane. Each row
// is filtered independently of the others. The initial condition is resolved
// separately for every row.
func (tf TransferFunction) FilterPlane(plane []float64, width int, initial InitialCondition, scale float64, delay int) {
	if width <= 0 {
		return
	}
	for y := 0; y+width <= len(plane); y += width {
		tf.FilterSignalInPlace(plane[y:y+width], initial, scale, delay)
	}
}
