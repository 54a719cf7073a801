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

// Package noise provides the smooth noise functions used by the effect
// pipeline.
//
// Sample() is stateless jittered value noise. It is suitable for values that
// should change smoothly over time and for per-row random values that must not
// depend on the order in which rows are processed.
//
// The Gradient type is a perlin noise field. It is used for spatially coherent
// perturbation of a signal, such as the grain of composite noise or the wave
// of a worn tape edge.
package noise
