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
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ntscvhs/modalflag"
	"github.com/jetsetilly/ntscvhs/test"
)

func testImage(w int, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	return img
}

func TestDefaultOutput(t *testing.T) {
	test.ExpectEquality(t, defaultOutput("dir/picture.png", "_ntsc"), "dir/picture_ntsc.png")
	test.ExpectEquality(t, defaultOutput("picture.TIFF", "_ntsc"), "picture_ntsc.TIFF")
	test.ExpectEquality(t, defaultOutput("picture.webp", "_%04d"), "picture_%04d.png")
	test.ExpectEquality(t, defaultOutput("picture", "_ntsc"), "picture_ntsc.png")
}

func TestToRGBA(t *testing.T) {
	src := testImage(20, 10)

	// a sub-image has a non-zero origin. the result never does
	sub := src.SubImage(image.Rect(4, 2, 12, 8))
	img, err := toRGBA(sub, 1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 8, 6))
	test.ExpectEquality(t, img.RGBAAt(0, 0), src.RGBAAt(4, 2))

	img, err = toRGBA(src, 0.5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 10, 5))

	img, err = toRGBA(src, 0.01)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 1, 1))

	_, err = toRGBA(src, 0.0)
	test.ExpectFailure(t, err)
	_, err = toRGBA(src, -1.0)
	test.ExpectFailure(t, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := testImage(16, 8)

	// lossless formats
	for _, ext := range []string{".png", ".bmp", ".tif", ".TIFF"} {
		fn := filepath.Join(dir, "test"+ext)
		test.DemandSuccess(t, saveImage(fn, src), ext)
		img, err := loadImage(fn, 1.0)
		test.DemandSuccess(t, err, ext)
		test.ExpectEquality(t, img.Bounds(), src.Bounds(), ext)
		test.ExpectEquality(t, img.RGBAAt(5, 3), src.RGBAAt(5, 3), ext)
	}

	fn := filepath.Join(dir, "test.jpg")
	test.DemandSuccess(t, saveImage(fn, src))
	img, err := loadImage(fn, 1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), src.Bounds())

	test.ExpectFailure(t, saveImage(filepath.Join(dir, "test.xyz"), src))
	_, err = loadImage(filepath.Join(dir, "missing.png"), 1.0)
	test.ExpectFailure(t, err)
}

func digestLine(output string) string {
	for _, l := range strings.Split(output, "\n") {
		if strings.HasPrefix(l, "digest: ") {
			return l
		}
	}
	return ""
}

func launchArgs(t *testing.T, args ...string) (int, string) {
	t.Helper()
	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(args)
	return launch(context.Background(), md), tw.String()
}

func TestLaunchRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	prf := filepath.Join(dir, "preferences")
	test.DemandSuccess(t, saveImage(in, testImage(24, 12)))

	// RUN is the default mode
	ret, _ := launchArgs(t, "-prefs", prf, "-seed", "7", in)
	test.DemandEquality(t, ret, 0)
	out, err := loadImage(filepath.Join(dir, "in_ntsc.png"), 1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.Bounds(), image.Rect(0, 0, 24, 12))

	// scaling and an explicit output file
	bmp := filepath.Join(dir, "out.bmp")
	ret, _ = launchArgs(t, "run", "-prefs", prf, "-scale", "2", "-out", bmp, "-frame", "3", in)
	test.DemandEquality(t, ret, 0)
	out, err = loadImage(bmp, 1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.Bounds(), image.Rect(0, 0, 48, 24))

	// graph of effect
	dot := filepath.Join(dir, "effect.dot")
	ret, _ = launchArgs(t, "run", "-prefs", prf, "-dot", dot, in)
	test.DemandEquality(t, ret, 0)
	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))

	// missing input
	ret, _ = launchArgs(t, "run", "-prefs", prf)
	test.ExpectEquality(t, ret, 20)

	// unknown profile
	ret, _ = launchArgs(t, "run", "-prefs", prf, "-profile", "disk", in)
	test.ExpectEquality(t, ret, 20)
}

func TestLaunchAnimate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	prf := filepath.Join(dir, "preferences")
	test.DemandSuccess(t, saveImage(in, testImage(16, 8)))

	pattern := filepath.Join(dir, "frame_%02d.png")
	ret, output := launchArgs(t, "animate", "-prefs", prf, "-frame", "5", "-frames", "3", "-digest", "-out", pattern, in)
	test.DemandEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "3 frames"), output)
	test.ExpectSuccess(t, strings.Contains(output, "digest: "), output)

	// the same frames give the same digest
	_, again := launchArgs(t, "animate", "-prefs", prf, "-frame", "5", "-frames", "3", "-digest", "-out", pattern, in)
	test.ExpectEquality(t, digestLine(again), digestLine(output))

	for f := 5; f < 8; f++ {
		_, err := os.Stat(fmt.Sprintf(pattern, f))
		test.ExpectSuccess(t, err, f)
	}
	_, err := os.Stat(fmt.Sprintf(pattern, 8))
	test.ExpectFailure(t, err)

	// output must have a verb for the frame number
	ret, _ = launchArgs(t, "animate", "-prefs", prf, "-out", filepath.Join(dir, "a.png"), in)
	test.ExpectEquality(t, ret, 20)

	// a cancelled context stops the animation
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"animate", "-prefs", prf, "-out", filepath.Join(dir, "c_%d.png"), in})
	test.ExpectEquality(t, launch(ctx, md), 20)
	_, err = os.Stat(filepath.Join(dir, "c_0.png"))
	test.ExpectFailure(t, err)
}

func TestLaunchPrefs(t *testing.T) {
	prf := filepath.Join(t.TempDir(), "preferences")

	ret, output := launchArgs(t, "prefs", "defaults", "-prefs", prf)
	test.DemandEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, prf), output)
	_, err := os.Stat(prf)
	test.DemandSuccess(t, err)

	ret, output = launchArgs(t, "prefs", "-prefs", prf, "show")
	test.DemandEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "ntsc.vhs.tapeSpeed :: LP"), output)

	ret, _ = launchArgs(t, "prefs", "show", "extra")
	test.ExpectEquality(t, ret, 20)
}

func TestLaunchHelp(t *testing.T) {
	ret, output := launchArgs(t, "-help")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "available sub-modes: RUN, ANIMATE, PREFS"), output)

	ret, output = launchArgs(t, "animate", "-help")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "for ANIMATE mode"), output)
	test.ExpectSuccess(t, strings.Contains(output, "-frames"), output)
}
