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

package shift

import (
	"fmt"
	"math"
)

// Boundary specifies how the samples revealed at the edge of a shifted row
// are filled.
type Boundary struct {
	constant bool
	value    float64
}

// Extend fills revealed samples by repeating the original sample at the edge
// of the row that has been emptied.
var Extend = Boundary{}

// Constant fills revealed samples with v.
func Constant(v float64) Boundary {
	return Boundary{constant: true, value: v}
}

func (b Boundary) String() string {
	if b.constant {
		return fmt.Sprintf("constant (%v)", b.value)
	}
	return "extend"
}

// ShiftRow moves the samples in row to the right by amount, which may be
// negative or fractional. Fractional shifts are linear interpolations between
// neighbouring samples.
//
// An amount of zero or an empty row leaves the row unchanged. An amount that
// is not finite is treated as zero.
func ShiftRow(row []float64, amount float64, boundary Boundary) {
	w := len(row)
	if w == 0 || amount == 0.0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}

	// shifts of more than the width of the row are equivalent to a shift of
	// the width plus one. clamping the amount keeps the integer conversion in
	// range
	amount = math.Max(-float64(w+1), math.Min(float64(w+1), amount))

	whole := math.Floor(amount)
	frac := amount - whole
	n := int(whole)

	// edge values must be taken before the row is modified
	left, right := row[0], row[w-1]
	if boundary.constant {
		left, right = boundary.value, boundary.value
	}

	at := func(k int) float64 {
		if k < 0 {
			return left
		}
		if k >= w {
			return right
		}
		return row[k]
	}

	// the destination sample i depends only on source samples i-n and
	// i-n-1. iterate in the direction that reads source samples before they
	// are overwritten
	if n >= 0 {
		for i := w - 1; i >= 0; i-- {
			row[i] = (1.0-frac)*at(i-n) + frac*at(i-n-1)
		}
	} else {
		for i := range w {
			row[i] = (1.0-frac)*at(i-n) + frac*at(i-n-1)
		}
	}
}
