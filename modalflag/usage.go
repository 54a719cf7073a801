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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// usage collects the output of the flag package so that it can be extended
// with information about sub-modes before being shown to the user.
type usage struct {
	buffer strings.Builder
}

func (u *usage) Write(p []byte) (n int, err error) {
	return u.buffer.Write(p)
}

// print the collected flag usage to output, along with the available
// sub-modes and any additional help. the banner is the mode path
func (u *usage) print(output io.Writer, banner string, choices []string, extra string) {
	if output == nil {
		return
	}

	heading, flags, _ := strings.Cut(u.buffer.String(), "\n")

	if flags == "" && len(choices) == 0 && extra == "" {
		if banner == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	if banner == "" {
		fmt.Fprintln(output, heading)
	} else {
		fmt.Fprintf(output, "%s for %s mode:\n", strings.TrimSuffix(heading, ":"), banner)
	}

	io.WriteString(output, flags)

	if len(choices) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(choices, ", "))
		fmt.Fprintf(output, "    default: %s\n", choices[0])
	}

	if extra != "" {
		fmt.Fprintf(output, "\n%s\n", extra)
	}
}
