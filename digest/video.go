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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Video computes a fingerprint of a sequence of images. The fingerprint of
// each image is chained with the fingerprint of the previous image so the
// final hash depends on every image and on their order.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// the number of bytes of every pixel included in the fingerprint. alpha is
// ignored
const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of images added since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// AddFrame updates the fingerprint with the pixels of the image. The
// dimensions of the image are part of the fingerprint.
func (dig *Video) AddFrame(img *image.RGBA) {
	b := img.Bounds()

	// the previous digest followed by the dimensions followed by the pixels
	l := len(dig.digest) + 8 + b.Dx()*b.Dy()*pixelDepth
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	i := copy(dig.pixels, dig.digest[:])
	for _, v := range []int{b.Dx(), b.Dy()} {
		dig.pixels[i] = byte(v >> 24)
		dig.pixels[i+1] = byte(v >> 16)
		dig.pixels[i+2] = byte(v >> 8)
		dig.pixels[i+3] = byte(v)
		i += 4
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := range b.Dx() {
			copy(dig.pixels[i:i+pixelDepth], row[x*4:x*4+pixelDepth])
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
