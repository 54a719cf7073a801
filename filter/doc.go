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

// Package filter implements recursive (IIR) filters described by a rational
// transfer function.
//
// Filters are constructed with New() or with one of the design functions,
// Lowpass(), LowpassTriple() and Notch(). Filters can be combined with
// Cascade(), which multiplies the two transfer functions. Filtering a signal
// with the cascaded filter is the same as filtering with each filter in turn.
//
// Filtering is done in place, one row at a time, with FilterSignalInPlace().
// The filter state at the start of each row is set by the InitialCondition
// argument.
package filter
