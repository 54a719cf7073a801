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

package shift_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/ntscvhs/shift"
	"github.com/jetsetilly/ntscvhs/test"
)

func row() []float64 {
	return []float64{1, 2, 3, 4, 5, 6}
}

func TestIdentity(t *testing.T) {
	for _, b := range []shift.Boundary{shift.Extend, shift.Constant(9)} {
		r := row()
		shift.ShiftRow(r, 0.0, b)
		test.ExpectSliceApproximate(t, r, row(), 0.0, b)

		r = row()
		shift.ShiftRow(r, math.NaN(), b)
		test.ExpectSliceApproximate(t, r, row(), 0.0, b)
	}

	// empty rows are allowed
	shift.ShiftRow(nil, 3.5, shift.Extend)
	shift.ShiftRow([]float64{}, -3.5, shift.Constant(0))
}

func TestIntegerShift(t *testing.T) {
	r := row()
	shift.ShiftRow(r, 2.0, shift.Extend)
	test.ExpectSliceApproximate(t, r, []float64{1, 1, 1, 2, 3, 4}, 0.0)

	r = row()
	shift.ShiftRow(r, 2.0, shift.Constant(0))
	test.ExpectSliceApproximate(t, r, []float64{0, 0, 1, 2, 3, 4}, 0.0)

	r = row()
	shift.ShiftRow(r, -2.0, shift.Extend)
	test.ExpectSliceApproximate(t, r, []float64{3, 4, 5, 6, 6, 6}, 0.0)

	r = row()
	shift.ShiftRow(r, -2.0, shift.Constant(-1))
	test.ExpectSliceApproximate(t, r, []float64{3, 4, 5, 6, -1, -1}, 0.0)

	// shifting by more than the width of the row leaves only fill values
	r = row()
	shift.ShiftRow(r, 100.0, shift.Extend)
	test.ExpectSliceApproximate(t, r, []float64{1, 1, 1, 1, 1, 1}, 0.0)

	r = row()
	shift.ShiftRow(r, -100.0, shift.Constant(7))
	test.ExpectSliceApproximate(t, r, []float64{7, 7, 7, 7, 7, 7}, 0.0)
}

func TestFractionalShift(t *testing.T) {
	r := row()
	shift.ShiftRow(r, 0.5, shift.Extend)
	test.ExpectSliceApproximate(t, r, []float64{1, 1.5, 2.5, 3.5, 4.5, 5.5}, 1e-12)

	r = row()
	shift.ShiftRow(r, 0.25, shift.Constant(0))
	test.ExpectSliceApproximate(t, r, []float64{0.75, 1.75, 2.75, 3.75, 4.75, 5.75}, 1e-12)

	// negative fractional shifts round down so -0.5 is a whole shift of -1
	// followed by a half shift to the right
	r = row()
	shift.ShiftRow(r, -0.5, shift.Extend)
	test.ExpectSliceApproximate(t, r, []float64{1.5, 2.5, 3.5, 4.5, 5.5, 6}, 1e-12)

	r = row()
	shift.ShiftRow(r, -1.5, shift.Constant(0))
	test.ExpectSliceApproximate(t, r, []float64{2.5, 3.5, 4.5, 5.5, 3, 0}, 1e-12)
}

func TestBoundaryString(t *testing.T) {
	test.ExpectEquality(t, shift.Extend.String(), "extend")
	test.ExpectEquality(t, shift.Constant(0.5).String(), "constant (0.5)")
}
