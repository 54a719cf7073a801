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
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/ntscvhs/digest"
	"github.com/jetsetilly/ntscvhs/logger"
	"github.com/jetsetilly/ntscvhs/modalflag"
	"github.com/jetsetilly/ntscvhs/ntsc"
	"github.com/jetsetilly/ntscvhs/performance"
	"github.com/jetsetilly/ntscvhs/statsview"
	"github.com/jetsetilly/ntscvhs/version"
)

const logTag = "ntscvhs"

func main() {
	// interrupting the program cancels the context. ANIMATE mode stops at the
	// end of the current frame
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	exitVal := launch(ctx, md)
	stop()
	os.Exit(exitVal)
}

// launch returns the value to use with os.Exit()
func launch(ctx context.Context, md *modalflag.Modes) int {
	md.NewMode()
	md.AddSubModes("RUN", "ANIMATE", "PREFS")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Println(version.String())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "ANIMATE":
		err = animate(ctx, md)
	case "PREFS":
		err = preferences(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags shared by the RUN and ANIMATE modes
type processFlags struct {
	seed      *uint64
	prefsFile *string
	out       *string
	scale     *float64
	log       *bool
	profile   *string
	stats     *bool
	dot       *string
}

func addProcessFlags(md *modalflag.Modes) processFlags {
	return processFlags{
		seed:      md.AddUint64("seed", 0, "seed for all random noise"),
		prefsFile: md.AddString("prefs", "", "preferences file to take settings from"),
		out:       md.AddString("out", "", "output file"),
		scale:     md.AddFloat64("scale", 1.0, "scale input image before processing"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		profile:   md.AddString("profile", "none", "run with profiling: cpu, mem, trace, all (comma separated)"),
		stats:     md.AddBool("statsview", false, "launch runtime statistics server (requires statsview build tag)"),
		dot:       md.AddString("dot", "", "write graphviz representation of the effect settings to file"),
	}
}

// prepare the environment described by the flags and return the effect to
// apply along with the input image
func (f processFlags) prepare(md *modalflag.Modes) (*ntsc.Effect, string, performance.Profile, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	profile, err := performance.ParseProfileString(*f.profile)
	if err != nil {
		return nil, "", profile, err
	}

	if *f.stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* statsview not available in this build")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, "", profile, fmt.Errorf("input image required for %s mode", md)
	case 1:
	default:
		return nil, "", profile, fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := ntsc.NewPreferences(*f.prefsFile)
	if err != nil {
		return nil, "", profile, err
	}
	logger.Logf(logger.Allow, logTag, "settings from %s", prf.Path())

	effect, err := prf.Effect()
	if err != nil {
		return nil, "", profile, err
	}

	if *f.dot != "" {
		if err := writeDot(*f.dot, effect); err != nil {
			return nil, "", profile, err
		}
	}

	return effect, md.GetArg(0), profile, nil
}

func writeDot(filename string, effect *ntsc.Effect) error {
	df, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer df.Close()

	memviz.Map(df, effect)
	logger.Logf(logger.Allow, logTag, "effect graph written to %s", filename)

	return nil
}

// the default output filename for an input filename. the suffix is placed
// between the name and the extension
func defaultOutput(input string, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if _, ok := encoderForExt(ext); !ok {
		ext = ".png"
	}
	return fmt.Sprintf("%s%s%s", base, suffix, ext)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flags := addProcessFlags(md)
	frame := md.AddInt("frame", 0, "frame number to process")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	effect, input, profile, err := flags.prepare(md)
	if err != nil {
		return err
	}

	img, err := loadImage(input, *flags.scale)
	if err != nil {
		return err
	}

	output := *flags.out
	if output == "" {
		output = defaultOutput(input, "_ntsc")
	}

	return performance.RunProfiler(profile, "ntscvhs", func() error {
		out, err := effect.ApplyEffect(img, *frame, *flags.seed)
		if err != nil {
			return err
		}
		return saveImage(output, out)
	})
}

func animate(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	flags := addProcessFlags(md)
	start := md.AddInt("frame", 0, "number of first frame")
	frames := md.AddInt("frames", 60, "number of frames to process")
	fingerprint := md.AddBool("digest", false, "print fingerprint of all processed frames")
	md.AdditionalHelp("The output filename must contain a formatting verb for the frame number, eg. out_%04d.png\n" +
		"If no output is specified the frame number is added to the input filename.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	effect, input, profile, err := flags.prepare(md)
	if err != nil {
		return err
	}

	if *frames <= 0 {
		return fmt.Errorf("number of frames must be positive")
	}

	img, err := loadImage(input, *flags.scale)
	if err != nil {
		return err
	}

	output := *flags.out
	if output == "" {
		output = defaultOutput(input, "_%04d")
	} else if !strings.Contains(output, "%") {
		return fmt.Errorf("output filename has no formatting verb for the frame number: %s", output)
	}

	dig := digest.NewVideo()

	return performance.RunProfiler(profile, "ntscvhs", func() error {
		rate, err := performance.Measure(*frames, func(i int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame := *start + i
			out, err := effect.ApplyEffect(img, frame, *flags.seed)
			if err != nil {
				return err
			}
			dig.AddFrame(out)
			return saveImage(fmt.Sprintf(output, frame), out)
		})
		fmt.Fprintln(md.Output, rate)
		if *fingerprint {
			fmt.Fprintf(md.Output, "digest: %s (%d frames)\n", dig.Hash(), dig.Frames())
		}
		return err
	})
}

func preferences(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("SHOW", "DEFAULTS")
	prefsFile := md.AddString("prefs", "", "preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// flags given after the sub-mode
	md.NewMode()
	subPrefsFile := md.AddString("prefs", *prefsFile, "preferences file")
	p, err = md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := ntsc.NewPreferences(*subPrefsFile)
	if err != nil {
		return err
	}

	switch md.Mode() {
	case "SHOW":
		fmt.Fprintf(md.Output, "%s\n", prf.Path())
		fmt.Fprint(md.Output, prf)

	case "DEFAULTS":
		if err := prf.SetDefaults(); err != nil {
			return err
		}
		if err := prf.Save(); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "default settings written to %s\n", prf.Path())
	}

	return nil
}
