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

package ntsc

import (
	"fmt"
	"strings"
)

// ChromaLowpass selects the lowpass filter applied to the chroma planes at
// the start and at the end of the effect.
type ChromaLowpass int

// List of valid ChromaLowpass values.
const (
	ChromaLowpassNone ChromaLowpass = iota
	ChromaLowpassLight
	ChromaLowpassFull
)

func (c ChromaLowpass) String() string {
	switch c {
	case ChromaLowpassNone:
		return "none"
	case ChromaLowpassLight:
		return "light"
	case ChromaLowpassFull:
		return "full"
	}
	return fmt.Sprintf("unknown chroma lowpass (%d)", int(c))
}

func (c ChromaLowpass) valid() bool {
	return c >= ChromaLowpassNone && c <= ChromaLowpassFull
}

// ParseChromaLowpass returns the ChromaLowpass value named by s. The name is
// not case sensitive.
func ParseChromaLowpass(s string) (ChromaLowpass, error) {
	for c := ChromaLowpassNone; c <= ChromaLowpassFull; c++ {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return ChromaLowpassNone, fmt.Errorf("unrecognised chroma lowpass (%s)", s)
}

// PhaseShift is the change in phase of the chroma subcarrier from one
// scanline to the next.
type PhaseShift int

// List of valid PhaseShift values.
const (
	PhaseShift0 PhaseShift = iota
	PhaseShift90
	PhaseShift180
	PhaseShift270
)

func (p PhaseShift) String() string {
	switch p {
	case PhaseShift0:
		return "0"
	case PhaseShift90:
		return "90"
	case PhaseShift180:
		return "180"
	case PhaseShift270:
		return "270"
	}
	return fmt.Sprintf("unknown phase shift (%d)", int(p))
}

func (p PhaseShift) valid() bool {
	return p >= PhaseShift0 && p <= PhaseShift270
}

// ParsePhaseShift returns the PhaseShift value for s, which should be the
// number of degrees. A trailing "deg" or degree sign is allowed.
func ParsePhaseShift(s string) (PhaseShift, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	t = strings.TrimSuffix(t, "deg")
	t = strings.TrimSuffix(t, "°")
	for p := PhaseShift0; p <= PhaseShift270; p++ {
		if t == p.String() {
			return p, nil
		}
	}
	return PhaseShift0, fmt.Errorf("unrecognised phase shift (%s)", s)
}

// TapeSpeed is the recording speed of a VHS tape. Slower speeds lose more
// detail.
type TapeSpeed int

// List of valid TapeSpeed values. TapeSpeedNone disables the tape filters.
const (
	TapeSpeedNone TapeSpeed = iota
	TapeSpeedSP
	TapeSpeedLP
	TapeSpeedEP
)

func (t TapeSpeed) String() string {
	switch t {
	case TapeSpeedNone:
		return "none"
	case TapeSpeedSP:
		return "SP"
	case TapeSpeedLP:
		return "LP"
	case TapeSpeedEP:
		return "EP"
	}
	return fmt.Sprintf("unknown tape speed (%d)", int(t))
}

func (t TapeSpeed) valid() bool {
	return t >= TapeSpeedNone && t <= TapeSpeedEP
}

// ParseTapeSpeed returns the TapeSpeed value named by s. The name is not case
// sensitive.
func ParseTapeSpeed(s string) (TapeSpeed, error) {
	for t := TapeSpeedNone; t <= TapeSpeedEP; t++ {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return TapeSpeedNone, fmt.Errorf("unrecognised tape speed (%s)", s)
}

// filter parameters for a tape speed
type tapeParams struct {
	lumaCut     float64
	chromaCut   float64
	chromaDelay int
}

func (t TapeSpeed) params() (tapeParams, bool) {
	switch t {
	case TapeSpeedSP:
		return tapeParams{lumaCut: 2400000.0, chromaCut: 320000.0, chromaDelay: 4}, true
	case TapeSpeedLP:
		return tapeParams{lumaCut: 1900000.0, chromaCut: 300000.0, chromaDelay: 5}, true
	case TapeSpeedEP:
		return tapeParams{lumaCut: 1400000.0, chromaCut: 280000.0, chromaDelay: 6}, true
	}
	return tapeParams{}, false
}

// HeadSwitchingSettings describes the horizontal displacement of the rows at
// the bottom of the frame caused by the switch from one playback head to the
// other.
type HeadSwitchingSettings struct {
	// number of rows from the bottom of the field that are affected
	Height int

	// number of rows at the top of the affected area that are not displaced
	Offset int

	// displacement in pixels of the bottom row
	HorizShift float64
}

// DefaultHeadSwitching returns the default HeadSwitchingSettings.
func DefaultHeadSwitching() HeadSwitchingSettings {
	return HeadSwitchingSettings{Height: 8, Offset: 3, HorizShift: 72.0}
}

// HeadSwitchingNoiseSettings describes the noisy band at the bottom of the
// frame that accompanies head switching.
type HeadSwitchingNoiseSettings struct {
	Height        int
	WaveIntensity float64
	SnowIntensity float64
}

// DefaultHeadSwitchingNoise returns the default HeadSwitchingNoiseSettings.
func DefaultHeadSwitchingNoise() HeadSwitchingNoiseSettings {
	return HeadSwitchingNoiseSettings{Height: 24, WaveIntensity: 5.0, SnowIntensity: 0.005}
}

// RingingSettings describes the notch filter that produces ringing around
// sharp edges in the luma.
type RingingSettings struct {
	// centre of the notch. normalised so that 1.0 is the Nyquist frequency
	Frequency float64

	// quality of the notch filter. must be greater than zero
	Power float64

	Intensity float64
}

// DefaultRinging returns the default RingingSettings.
func DefaultRinging() RingingSettings {
	return RingingSettings{Frequency: 0.45, Power: 4.0, Intensity: 4.0}
}

// VHSSettings describes the effect of recording to and playing back from a
// VHS tape.
type VHSSettings struct {
	TapeSpeed       TapeSpeed
	ChromaVertBlend bool
	Sharpen         float64
	EdgeWave        float64
	EdgeWaveSpeed   float64
}

// DefaultVHS returns the default VHSSettings.
func DefaultVHS() VHSSettings {
	return VHSSettings{
		TapeSpeed:       TapeSpeedLP,
		ChromaVertBlend: true,
		Sharpen:         1.0,
		EdgeWave:        1.0,
		EdgeWaveSpeed:   4.0,
	}
}
