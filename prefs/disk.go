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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/ntscvhs/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand unless ntscvhs is not running ***"

// the string that separates the key from the value in a preferences file
const separator = " :: "

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	DiskError    = "prefs: %v"
	ValueError   = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]Pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist. It will be created on the first call to Save().
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no preferences file specified")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

// Path returns the path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to the disk. The key must be unique.
func (dsk *Disk) Add(key string, p Pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// sorted list of keys
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// read all key/value pairs in the file. a missing file is not an error and
// results in an empty map
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line should be the warning boilerplate. we're not fussy about
	// it being there but we don't want to treat it as a key/value pair
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}

		k, v, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return values, nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the Disk instance are ignored. Values in the Disk instance that have no
// entry in the file are left unchanged.
func (dsk *Disk) Load() error {
	values, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		v, ok := values[k]
		if !ok {
			continue
		}
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(ValueError, k, err)
		}
	}

	return nil
}

// Save current preference values to disk. Entries already in the file that
// are not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Reset all values in the Disk instance to their zero values. Note that this
// is not the same as the defaults of the package which added the values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(ValueError, k, err)
		}
	}
	return nil
}
