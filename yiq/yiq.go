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

package yiq

import (
	"image"
	"math"

	"github.com/jetsetilly/ntscvhs/curated"
)

// InvalidImage is the pattern for errors returned by FromImage().
const InvalidImage = "yiq: invalid image: %s"

// Field selects which rows of an image are kept when converting to the planar
// representation.
type Field int

// List of valid Field values.
const (
	// even numbered rows
	Upper Field = iota

	// odd numbered rows
	Lower

	// every row
	Both
)

func (f Field) String() string {
	switch f {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Both:
		return "both"
	}
	return "unknown field"
}

// rows of the image numbered with this parity are kept by the field
func (f Field) parity() int {
	if f == Lower {
		return 1
	}
	return 0
}

// the RGB to YIQ matrix and its inverse
var (
	toYIQ = [3][3]float64{
		{0.299, 0.587, 0.114},
		{0.5959, -0.2746, -0.3213},
		{0.2115, -0.5227, 0.3112},
	}

	toRGB = [3][3]float64{
		{1.0, 0.956, 0.619},
		{1.0, -0.272, -0.647},
		{1.0, -1.106, 1.703},
	}
)

// Planar is an image, or one field of an image, in the YIQ colour space. Each
// plane has Width*Height samples stored in row order.
type Planar struct {
	Y []float64
	I []float64
	Q []float64

	Width  int
	Height int
	Field  Field
}

// FieldHeight returns the number of rows in the planar representation of an
// image of height h.
func FieldHeight(h int, field Field) int {
	if field == Both {
		return h
	}
	return (h + 1) / 2
}

// NewPlanar returns a zeroed Planar of the specified dimensions.
func NewPlanar(width int, height int, field Field) *Planar {
	n := width * height
	return &Planar{
		Y:      make([]float64, n),
		I:      make([]float64, n),
		Q:      make([]float64, n),
		Width:  width,
		Height: height,
		Field:  field,
	}
}

// Row returns row y of the plane. The plane should be one of the three planes
// of the Planar instance.
func (p *Planar) Row(plane []float64, y int) []float64 {
	return plane[y*p.Width : (y+1)*p.Width]
}

// Planes returns the three planes in Y, I, Q order.
func (p *Planar) Planes() [3][]float64 {
	return [3][]float64{p.Y, p.I, p.Q}
}

// FromImage converts the field of img to the planar YIQ representation.
// Channel values are normalised to the range 0 to 1 before conversion and
// the alpha channel is ignored.
//
// When the image has an odd number of rows the last row of the Lower field
// samples the last row of the image.
func FromImage(img *image.RGBA, field Field) (*Planar, error) {
	if img == nil {
		return nil, curated.Errorf(InvalidImage, "nil image")
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, curated.Errorf(InvalidImage, "empty image")
	}
	if img.Stride < w*4 {
		return nil, curated.Errorf(InvalidImage, "stride too short for image width")
	}
	if len(img.Pix) < img.PixOffset(b.Max.X-1, b.Max.Y-1)+4 {
		return nil, curated.Errorf(InvalidImage, "pixel buffer does not match image dimensions")
	}
	if field != Upper && field != Lower && field != Both {
		return nil, curated.Errorf(InvalidImage, "unknown field")
	}

	p := NewPlanar(w, FieldHeight(h, field), field)

	for r := range p.Height {
		sy := r
		if field != Both {
			sy = min(r*2+field.parity(), h-1)
		}

		base := r * w
		for x := range w {
			o := img.PixOffset(b.Min.X+x, b.Min.Y+sy)
			red := float64(img.Pix[o]) / 255.0
			green := float64(img.Pix[o+1]) / 255.0
			blue := float64(img.Pix[o+2]) / 255.0

			p.Y[base+x] = toYIQ[0][0]*red + toYIQ[0][1]*green + toYIQ[0][2]*blue
			p.I[base+x] = toYIQ[1][0]*red + toYIQ[1][1]*green + toYIQ[1][2]*blue
			p.Q[base+x] = toYIQ[2][0]*red + toYIQ[2][1]*green + toYIQ[2][2]*blue
		}
	}

	return p, nil
}

// clamp to the range of an 8 bit channel and round to the nearest value
func channel(v float64) uint8 {
	v = math.Round(v * 255.0)
	if v >= 255.0 {
		return 255
	}
	if v > 0.0 {
		return uint8(v)
	}
	return 0
}

// Image converts the Planar instance to an RGBA image with the requested
// number of rows. A height of zero or less gives the natural height, which is
// twice the planar height for a single field.
//
// For a single field, rows of the other field are the average of the rows
// above and below. The first and last rows of the image are always copied
// from the nearest row of the field.
func (p *Planar) Image(height int) *image.RGBA {
	if height <= 0 {
		height = p.Height
		if p.Field != Both {
			height *= 2
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, height))
	if p.Width <= 0 || p.Height <= 0 {
		return img
	}

	last := p.Height - 1

	for idx := range height {
		a, b := idx, idx
		if p.Field != Both {
			a, b = idx>>1, idx>>1
			if idx&1 != p.Field.parity() && idx != 0 && idx != height-1 {
				a, b = (idx-1)>>1, (idx+1)>>1
			}
		}
		a, b = min(a, last), min(b, last)

		ra, rb := a*p.Width, b*p.Width
		o := idx * img.Stride
		for x := range p.Width {
			y := (p.Y[ra+x] + p.Y[rb+x]) * 0.5
			i := (p.I[ra+x] + p.I[rb+x]) * 0.5
			q := (p.Q[ra+x] + p.Q[rb+x]) * 0.5

			img.Pix[o] = channel(toRGB[0][0]*y + toRGB[0][1]*i + toRGB[0][2]*q)
			img.Pix[o+1] = channel(toRGB[1][0]*y + toRGB[1][1]*i + toRGB[1][2]*q)
			img.Pix[o+2] = channel(toRGB[2][0]*y + toRGB[2][1]*i + toRGB[2][2]*q)
			img.Pix[o+3] = 255
			o += 4
		}
	}

	return img
}
