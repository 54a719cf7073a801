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

package noise

import (
	"github.com/aquilax/go-perlin"
)

// perlin parameters. alpha is the weight of each successive octave and beta
// is the frequency multiplier between octaves
const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 3
)

// Gradient is a seeded gradient noise field. The field is sampled at a fixed
// frequency so that coordinates can be specified in pixels.
type Gradient struct {
	p    *perlin.Perlin
	freq float64
}

// NewGradient is the preferred method of initialisation for the Gradient type.
func NewGradient(seed int64, freq float64) *Gradient {
	return &Gradient{
		p:    perlin.NewPerlin(alpha, beta, octaves, seed),
		freq: freq,
	}
}

// At returns the value of the 1D field at position x.
func (g *Gradient) At(x float64) float64 {
	return g.p.Noise1D(x * g.freq)
}

// At2D returns the value of the 2D field at position x, y.
func (g *Gradient) At2D(x float64, y float64) float64 {
	return g.p.Noise2D(x*g.freq, y*g.freq)
}

// Row fills dst with consecutive samples of the 1D field, starting at
// position offset.
func (g *Gradient) Row(dst []float64, offset float64) {
	for x := range dst {
		dst[x] = g.At(offset + float64(x))
	}
}
