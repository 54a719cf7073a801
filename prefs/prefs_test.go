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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ntscvhs/curated"
	"github.com/jetsetilly/ntscvhs/prefs"
	"github.com/jetsetilly/ntscvhs/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "ntscvhs_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestNumbers(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("int", &i))
	test.ExpectSuccess(t, dsk.Add("float", &f))

	test.ExpectSuccess(t, i.Set(72))
	test.ExpectSuccess(t, f.Set(0.45))
	test.ExpectFailure(t, i.Set("foo"))
	test.ExpectFailure(t, f.Set(true))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "float :: 0.45\nint :: 72\n")

	// change values and load them back from disk
	test.ExpectSuccess(t, i.Set(1))
	test.ExpectSuccess(t, f.Set(1.0))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 72)
	test.ExpectEquality(t, f.Get().(float64), 0.45)
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	err = dsk.Add("test", &w)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestPreserveUnrelated(t *testing.T) {
	fn := getTmpPrefFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.String
	var b prefs.String
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set("foo"))
	test.ExpectSuccess(t, b.Set("bar"))

	test.DemandSuccess(t, dskA.Save())
	test.DemandSuccess(t, dskB.Save())
	cmpTmpFile(t, fn, "a :: foo\nb :: bar\n")
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, v.Set(2.5))
	test.ExpectSuccess(t, dsk.Add("v", &v))

	// loading from a file that doesn't exist leaves the value alone
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(float64), 2.5)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre-hook prevents the value from changing
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}
