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
	"flag"
	"io"
	"strings"

	"github.com/jetsetilly/ntscvhs/curated"
)

// Sentinal error patterns.
const (
	ArgumentError = "modalflag: %v"
)

// the string used to join modes in the string returned by Path()
const pathSeparator = "/"

// Modes handles the command line arguments for a program that has more than
// one mode of operation. Help messages are written to Output, which should be
// set before the first call to Parse().
type Modes struct {
	Output io.Writer

	// flags for the current mode. replaced on every call to NewMode()
	flags *flag.FlagSet

	// the arguments given to NewArgs() and the index of the first argument
	// after the most recent mode selector
	args     []string
	consumed int

	// the sub-modes available to the next call to Parse(). the first entry
	// is the default
	choices []string

	// every mode selected so far. it is never shortened
	path []string

	// whether the most recent call to Parse() consumed a mode selector
	selected bool

	// text printed after the flag information when help is requested
	extraHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to be parsed and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.consumed = 0
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the previous mode. Arguments
// that have not been consumed by a mode selector are parsed again by the next
// call to Parse().
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.choices = md.choices[:0]
	md.extraHelp = ""
}

// AdditionalHelp is printed after the list of flags and sub-modes when help
// is requested for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.extraHelp = help
}

// Mode returns the most recently selected mode. The empty string is returned
// if no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode, outermost first.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue means the program should carry on. If sub-modes were
	// added, Mode() returns the one that has been selected.
	ParseContinue ParseResult = iota

	// ParseHelp means help was requested and has been written to Output.
	// There is nothing more to do.
	ParseHelp

	// ParseError means the arguments could not be parsed. The error is
	// returned alongside.
	ParseError
)

// Parse the arguments for the current mode. If sub-modes have been added then
// the first argument after the flags selects the mode. If the argument does
// not name a sub-mode, or if a flag is not recognised by the current mode,
// the default sub-mode is selected and the argument is left for the next
// call to Parse().
func (md *Modes) Parse() (ParseResult, error) {
	md.selected = false

	u := &usage{}
	md.flags.SetOutput(u)

	err := md.flags.Parse(md.args[md.consumed:])
	if err != nil {
		if err == flag.ErrHelp {
			u.print(md.Output, md.Path(), md.choices, md.extraHelp)
			return ParseHelp, nil
		}
		if len(md.choices) == 0 {
			return ParseError, curated.Errorf(ArgumentError, err)
		}
		md.path = append(md.path, md.choices[0])
		return ParseContinue, nil
	}

	if len(md.choices) == 0 {
		return ParseContinue, nil
	}

	mode := md.choices[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, c := range md.choices {
		if c == arg {
			mode = c
			md.selected = true
			md.consumed = len(md.args) - len(md.flags.Args()) + 1
			break // for loop
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a mode
// selector.
func (md *Modes) RemainingArgs() []string {
	if md.selected {
		return md.flags.Args()[1:]
	}
	return md.flags.Args()
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). The empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	if md.selected {
		i++
	}
	return md.flags.Arg(i)
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The
// first sub-mode ever added to a mode is the default. Sub-modes are matched
// without regard to case and Mode() always returns them in upper case.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.choices = append(md.choices, strings.ToUpper(s))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// Visit calls fn with the name of every flag that was set by the most recent
// call to Parse(), in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
