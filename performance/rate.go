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

package performance

import (
	"fmt"
	"time"
)

// Rate is the result of timing a number of processed frames.
type Rate struct {
	Frames   int
	Duration time.Duration
}

// FPS returns the number of frames processed per second. Zero is returned if
// no time has elapsed.
func (r Rate) FPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Duration.Seconds()
}

// PerFrame returns the average time taken to process a single frame.
func (r Rate) PerFrame() time.Duration {
	if r.Frames <= 0 {
		return 0
	}
	return r.Duration / time.Duration(r.Frames)
}

func (r Rate) String() string {
	return fmt.Sprintf("%d frames in %.2fs (%.2f fps, %v per frame)",
		r.Frames, r.Duration.Seconds(), r.FPS(), r.PerFrame().Round(time.Microsecond))
}

// Measure calls the supplied function once for every frame from zero to
// frames-1. Processing stops on the first error.
func Measure(frames int, run func(frame int) error) (Rate, error) {
	var r Rate
	start := time.Now()
	for f := range frames {
		if err := run(f); err != nil {
			r.Duration = time.Since(start)
			return r, err
		}
		r.Frames++
	}
	r.Duration = time.Since(start)
	return r, nil
}
