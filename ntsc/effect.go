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
	"image"
	"math"
	"strings"

	"github.com/jetsetilly/ntscvhs/curated"
	"github.com/jetsetilly/ntscvhs/filter"
	"github.com/jetsetilly/ntscvhs/logger"
	"github.com/jetsetilly/ntscvhs/yiq"
)

// logging tag
const logTag = "ntsc"

// the field that is taken from the input image. the crosstalk phase is
// calculated for the same field
const (
	processField = yiq.Lower
	fieldNum     = 1
)

// Effect is the configuration of the NTSC/VHS effect. The optional blocks are
// disabled when the pointer is nil.
//
// The zero value is an effect that does nothing beyond the crosstalk between
// the luma and chroma signals.
type Effect struct {
	ChromaLowpassIn      ChromaLowpass
	CompositePreemphasis float64

	PhaseShift       PhaseShift
	PhaseShiftOffset int

	HeadSwitching           *HeadSwitchingSettings
	HeadSwitchingNoise      *HeadSwitchingNoiseSettings
	CompositeNoiseIntensity float64

	Ringing *RingingSettings

	ChromaNoiseIntensity      float64
	SnowIntensity             float64
	ChromaPhaseNoiseIntensity float64

	VHS *VHSSettings

	ChromaLowpassOut ChromaLowpass
}

// NewEffect returns an Effect with the default settings.
func NewEffect() *Effect {
	hs := DefaultHeadSwitching()
	hsn := DefaultHeadSwitchingNoise()
	rng := DefaultRinging()
	vhs := DefaultVHS()

	return &Effect{
		ChromaLowpassIn:           ChromaLowpassFull,
		CompositePreemphasis:      1.0,
		PhaseShift:                PhaseShift90,
		PhaseShiftOffset:          0,
		HeadSwitching:             &hs,
		HeadSwitchingNoise:        &hsn,
		CompositeNoiseIntensity:   0.01,
		Ringing:                   &rng,
		ChromaNoiseIntensity:      0.1,
		SnowIntensity:             0.00001,
		ChromaPhaseNoiseIntensity: 0.001,
		VHS:                       &vhs,
		ChromaLowpassOut:          ChromaLowpassFull,
	}
}

// Validate checks that the effect can be applied. Any error is a curated
// error with the ConfigurationError pattern.
//
// Negative intensities are not errors. They disable the pass in the same way
// as an intensity of zero.
func (e *Effect) Validate() error {
	if !e.ChromaLowpassIn.valid() {
		return curated.Errorf(ConfigurationError, e.ChromaLowpassIn)
	}
	if !e.ChromaLowpassOut.valid() {
		return curated.Errorf(ConfigurationError, e.ChromaLowpassOut)
	}
	if !e.PhaseShift.valid() {
		return curated.Errorf(ConfigurationError, e.PhaseShift)
	}

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"composite preemphasis", e.CompositePreemphasis},
		{"composite noise intensity", e.CompositeNoiseIntensity},
		{"chroma noise intensity", e.ChromaNoiseIntensity},
		{"snow intensity", e.SnowIntensity},
		{"chroma phase noise intensity", e.ChromaPhaseNoiseIntensity},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return curated.Errorf(ConfigurationError, curated.Errorf("%s is not a finite number", v.name))
		}
	}

	if hs := e.HeadSwitching; hs != nil {
		if hs.Height < 0 {
			return curated.Errorf(ConfigurationError, "head switching height is negative")
		}
		if hs.Offset < 0 || hs.Offset > hs.Height {
			return curated.Errorf(ConfigurationError, curated.Errorf("head switching offset (%d) is outside the range 0 to %d", hs.Offset, hs.Height))
		}
		if math.IsNaN(hs.HorizShift) || math.IsInf(hs.HorizShift, 0) {
			return curated.Errorf(ConfigurationError, "head switching shift is not a finite number")
		}
	}

	if hsn := e.HeadSwitchingNoise; hsn != nil {
		if hsn.Height < 0 {
			return curated.Errorf(ConfigurationError, "head switching noise height is negative")
		}
		if math.IsNaN(hsn.WaveIntensity) || math.IsNaN(hsn.SnowIntensity) {
			return curated.Errorf(ConfigurationError, "head switching noise intensity is not a number")
		}
	}

	if r := e.Ringing; r != nil {
		if r.Power <= 0.0 {
			return curated.Errorf(ConfigurationError, curated.Errorf("ringing power (%v) must be greater than zero", r.Power))
		}
		if _, err := filter.Notch(r.Frequency, r.Power); err != nil {
			return curated.Errorf(ConfigurationError, err)
		}
		if math.IsNaN(r.Intensity) || math.IsInf(r.Intensity, 0) {
			return curated.Errorf(ConfigurationError, "ringing intensity is not a finite number")
		}
	}

	if v := e.VHS; v != nil {
		if !v.TapeSpeed.valid() {
			return curated.Errorf(ConfigurationError, v.TapeSpeed)
		}
		if math.IsNaN(v.Sharpen) || math.IsNaN(v.EdgeWave) || math.IsNaN(v.EdgeWaveSpeed) {
			return curated.Errorf(ConfigurationError, "VHS setting is not a number")
		}
	}

	return nil
}

// Passes returns the names of the passes that will be performed by
// ApplyEffect(), in order.
func (e *Effect) Passes() []string {
	var p []string

	if e.ChromaLowpassIn != ChromaLowpassNone {
		p = append(p, "chroma lowpass in ("+e.ChromaLowpassIn.String()+")")
	}
	p = append(p, "chroma into luma")
	if e.CompositePreemphasis > 0.0 {
		p = append(p, "composite preemphasis")
	}
	if e.CompositeNoiseIntensity > 0.0 {
		p = append(p, "composite noise")
	}
	if e.SnowIntensity > 0.0 {
		p = append(p, "snow")
	}
	if e.HeadSwitchingNoise != nil {
		p = append(p, "head switching noise")
	}
	if e.HeadSwitching != nil {
		p = append(p, "head switching")
	}
	p = append(p, "luma into chroma")
	if e.Ringing != nil {
		p = append(p, "ringing")
	}
	if e.ChromaNoiseIntensity > 0.0 {
		p = append(p, "chroma noise")
	}
	if e.ChromaPhaseNoiseIntensity > 0.0 {
		p = append(p, "chroma phase noise")
	}
	if v := e.VHS; v != nil {
		if v.EdgeWave > 0.0 {
			p = append(p, "VHS edge wave")
		}
		if v.TapeSpeed != TapeSpeedNone {
			p = append(p, "VHS tape ("+v.TapeSpeed.String()+")")
		}
		if v.ChromaVertBlend {
			p = append(p, "VHS chroma vertical blend")
		}
		if v.Sharpen > 0.0 && v.TapeSpeed != TapeSpeedNone {
			p = append(p, "VHS sharpen")
		}
	}
	if e.ChromaLowpassOut != ChromaLowpassNone {
		p = append(p, "chroma lowpass out ("+e.ChromaLowpassOut.String()+")")
	}

	return p
}

// ApplyEffect applies the effect to the image. The frame number selects the
// phase of the time varying noise and the seed is the source of all random
// numbers. The same image, frame number, seed and configuration always
// produce the same output.
//
// The returned image has the same width and height as the input image.
func (e *Effect) ApplyEffect(img *image.RGBA, frameNum int, seed uint64) (*image.RGBA, error) {
	if err := e.Validate(); err != nil {
		logger.Log(logger.Allow, logTag, err)
		return nil, err
	}

	if frameNum < 0 {
		return nil, curated.Errorf(InvalidInputError, curated.Errorf("frame number (%d) is negative", frameNum))
	}

	frame, err := yiq.FromImage(img, processField)
	if err != nil {
		return nil, curated.Errorf(InvalidInputError, err)
	}

	logger.Logf(logger.Allow, logTag, "passes: %s", strings.Join(e.Passes(), ", "))

	chromaLowpass(frame, e.ChromaLowpassIn)

	chromaIntoLuma(frame, e.PhaseShift, e.PhaseShiftOffset, fieldNum)

	if e.CompositePreemphasis > 0.0 {
		compositePreemphasis(frame, e.CompositePreemphasis)
	}

	if e.CompositeNoiseIntensity > 0.0 {
		compositeNoise(frame, seed, frameNum, e.CompositeNoiseIntensity)
	}

	if e.SnowIntensity > 0.0 {
		snow(frame, seed, frameNum, e.SnowIntensity)
	}

	if e.HeadSwitchingNoise != nil {
		headSwitchingNoise(frame, seed, frameNum, *e.HeadSwitchingNoise)
	}

	if e.HeadSwitching != nil {
		headSwitching(frame, seed, frameNum, *e.HeadSwitching)
	}

	lumaIntoChroma(frame, e.PhaseShift, e.PhaseShiftOffset, fieldNum)

	if e.Ringing != nil {
		// parameters have already been checked by Validate()
		notch, err := filter.Notch(e.Ringing.Frequency, e.Ringing.Power)
		if err != nil {
			return nil, curated.Errorf(ConfigurationError, err)
		}
		notch.FilterPlane(frame.Y, frame.Width, filter.FirstSample, e.Ringing.Intensity, 1)
	}

	if e.ChromaNoiseIntensity > 0.0 {
		chromaNoise(frame, seed, frameNum, e.ChromaNoiseIntensity)
	}

	if e.ChromaPhaseNoiseIntensity > 0.0 {
		chromaPhaseNoise(frame, seed, frameNum, e.ChromaPhaseNoiseIntensity)
	}

	if e.VHS != nil {
		vhs(frame, seed, frameNum, *e.VHS)
	}

	chromaLowpass(frame, e.ChromaLowpassOut)

	return frame.Image(img.Bounds().Dy()), nil
}
