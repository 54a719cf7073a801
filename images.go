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

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jetsetilly/ntscvhs/logger"
)

type encoder func(io.Writer, image.Image) error

// encoders for the supported output formats, keyed by lower case filename
// extension
var encoders = map[string]encoder{
	".png": png.Encode,
	".bmp": bmp.Encode,
	".jpg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	},
	".tif": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

func init() {
	encoders[".jpeg"] = encoders[".jpg"]
	encoders[".tiff"] = encoders[".tif"]
}

func encoderForExt(ext string) (encoder, bool) {
	enc, ok := encoders[strings.ToLower(ext)]
	return enc, ok
}

// loadImage decodes the named file and converts it to an RGBA image with a
// zero origin. A scale other than one resizes the image.
func loadImage(filename string, scale float64) (*image.RGBA, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	img, err := toRGBA(src, scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Logf(logger.Allow, logTag, "loaded %s (%s %dx%d)", filename, format, img.Bounds().Dx(), img.Bounds().Dy())

	return img, nil
}

// toRGBA converts any image to an RGBA image with a zero origin, scaling it
// with the Catmull-Rom kernel if the scale is not one.
func toRGBA(src image.Image, scale float64) (*image.RGBA, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0.0 {
		return nil, fmt.Errorf("invalid scale (%v)", scale)
	}

	sb := src.Bounds()
	w := sb.Dx()
	h := sb.Dy()
	if scale != 1.0 {
		w = max(1, int(math.Round(float64(w)*scale)))
		h = max(1, int(math.Round(float64(h)*scale)))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}

	return dst, nil
}

// saveImage encodes the image in the format indicated by the filename
// extension.
func saveImage(filename string, img image.Image) error {
	enc, ok := encoderForExt(filepath.Ext(filename))
	if !ok {
		return fmt.Errorf("unsupported output format: %s", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	logger.Logf(logger.Allow, logTag, "saved %s", filename)

	return nil
}
