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

	"github.com/jetsetilly/ntscvhs/prefs"
	"github.com/jetsetilly/ntscvhs/resources"
)

// Preferences is the persistent form of FullSettings. Every setting is kept,
// including the settings of disabled blocks.
type Preferences struct {
	dsk *prefs.Disk

	ChromaLowpassIn      prefs.String
	CompositePreemphasis prefs.Float

	PhaseShift       prefs.String
	PhaseShiftOffset prefs.Int

	HeadSwitching           prefs.Bool
	HeadSwitchingHeight     prefs.Int
	HeadSwitchingOffset     prefs.Int
	HeadSwitchingHorizShift prefs.Float

	HeadSwitchingNoise              prefs.Bool
	HeadSwitchingNoiseHeight        prefs.Int
	HeadSwitchingNoiseWaveIntensity prefs.Float
	HeadSwitchingNoiseSnowIntensity prefs.Float

	CompositeNoiseIntensity prefs.Float

	Ringing          prefs.Bool
	RingingFrequency prefs.Float
	RingingPower     prefs.Float
	RingingIntensity prefs.Float

	ChromaNoiseIntensity      prefs.Float
	SnowIntensity             prefs.Float
	ChromaPhaseNoiseIntensity prefs.Float

	VHS                prefs.Bool
	VHSTapeSpeed       prefs.String
	VHSChromaVertBlend prefs.Bool
	VHSSharpen         prefs.Float
	VHSEdgeWave        prefs.Float
	VHSEdgeWaveSpeed   prefs.Float

	ChromaLowpassOut prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty the default preferences file is used.
//
// Preferences are set to the default values and then loaded from the file,
// if it exists.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.ChromaLowpassIn.SetHookPre(func(v prefs.Value) error {
		_, err := ParseChromaLowpass(fmt.Sprint(v))
		return err
	})
	p.ChromaLowpassOut.SetHookPre(func(v prefs.Value) error {
		_, err := ParseChromaLowpass(fmt.Sprint(v))
		return err
	})
	p.PhaseShift.SetHookPre(func(v prefs.Value) error {
		_, err := ParsePhaseShift(fmt.Sprint(v))
		return err
	})
	p.VHSTapeSpeed.SetHookPre(func(v prefs.Value) error {
		_, err := ParseTapeSpeed(fmt.Sprint(v))
		return err
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if path == "" {
		var err error
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"ntsc.chromaLowpassIn", &p.ChromaLowpassIn},
		{"ntsc.compositePreemphasis", &p.CompositePreemphasis},
		{"ntsc.phaseShift", &p.PhaseShift},
		{"ntsc.phaseShiftOffset", &p.PhaseShiftOffset},
		{"ntsc.headSwitching", &p.HeadSwitching},
		{"ntsc.headSwitching.height", &p.HeadSwitchingHeight},
		{"ntsc.headSwitching.offset", &p.HeadSwitchingOffset},
		{"ntsc.headSwitching.horizShift", &p.HeadSwitchingHorizShift},
		{"ntsc.headSwitchingNoise", &p.HeadSwitchingNoise},
		{"ntsc.headSwitchingNoise.height", &p.HeadSwitchingNoiseHeight},
		{"ntsc.headSwitchingNoise.waveIntensity", &p.HeadSwitchingNoiseWaveIntensity},
		{"ntsc.headSwitchingNoise.snowIntensity", &p.HeadSwitchingNoiseSnowIntensity},
		{"ntsc.compositeNoiseIntensity", &p.CompositeNoiseIntensity},
		{"ntsc.ringing", &p.Ringing},
		{"ntsc.ringing.frequency", &p.RingingFrequency},
		{"ntsc.ringing.power", &p.RingingPower},
		{"ntsc.ringing.intensity", &p.RingingIntensity},
		{"ntsc.chromaNoiseIntensity", &p.ChromaNoiseIntensity},
		{"ntsc.snowIntensity", &p.SnowIntensity},
		{"ntsc.chromaPhaseNoiseIntensity", &p.ChromaPhaseNoiseIntensity},
		{"ntsc.vhs", &p.VHS},
		{"ntsc.vhs.tapeSpeed", &p.VHSTapeSpeed},
		{"ntsc.vhs.chromaVertBlend", &p.VHSChromaVertBlend},
		{"ntsc.vhs.sharpen", &p.VHSSharpen},
		{"ntsc.vhs.edgeWave", &p.VHSEdgeWave},
		{"ntsc.vhs.edgeWaveSpeed", &p.VHSEdgeWaveSpeed},
		{"ntsc.chromaLowpassOut", &p.ChromaLowpassOut},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to the default values.
func (p *Preferences) SetDefaults() error {
	return p.SetFullSettings(DefaultFullSettings())
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Path returns the path of the preferences file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}

// SetFullSettings sets every preference value from the FullSettings.
func (p *Preferences) SetFullSettings(fs FullSettings) error {
	for _, s := range []struct {
		p prefs.Pref
		v prefs.Value
	}{
		{&p.ChromaLowpassIn, fs.ChromaLowpassIn.String()},
		{&p.CompositePreemphasis, fs.CompositePreemphasis},
		{&p.PhaseShift, fs.PhaseShift.String()},
		{&p.PhaseShiftOffset, fs.PhaseShiftOffset},
		{&p.HeadSwitching, fs.HeadSwitching.Enabled},
		{&p.HeadSwitchingHeight, fs.HeadSwitching.Settings.Height},
		{&p.HeadSwitchingOffset, fs.HeadSwitching.Settings.Offset},
		{&p.HeadSwitchingHorizShift, fs.HeadSwitching.Settings.HorizShift},
		{&p.HeadSwitchingNoise, fs.HeadSwitchingNoise.Enabled},
		{&p.HeadSwitchingNoiseHeight, fs.HeadSwitchingNoise.Settings.Height},
		{&p.HeadSwitchingNoiseWaveIntensity, fs.HeadSwitchingNoise.Settings.WaveIntensity},
		{&p.HeadSwitchingNoiseSnowIntensity, fs.HeadSwitchingNoise.Settings.SnowIntensity},
		{&p.CompositeNoiseIntensity, fs.CompositeNoiseIntensity},
		{&p.Ringing, fs.Ringing.Enabled},
		{&p.RingingFrequency, fs.Ringing.Settings.Frequency},
		{&p.RingingPower, fs.Ringing.Settings.Power},
		{&p.RingingIntensity, fs.Ringing.Settings.Intensity},
		{&p.ChromaNoiseIntensity, fs.ChromaNoiseIntensity},
		{&p.SnowIntensity, fs.SnowIntensity},
		{&p.ChromaPhaseNoiseIntensity, fs.ChromaPhaseNoiseIntensity},
		{&p.VHS, fs.VHS.Enabled},
		{&p.VHSTapeSpeed, fs.VHS.Settings.TapeSpeed.String()},
		{&p.VHSChromaVertBlend, fs.VHS.Settings.ChromaVertBlend},
		{&p.VHSSharpen, fs.VHS.Settings.Sharpen},
		{&p.VHSEdgeWave, fs.VHS.Settings.EdgeWave},
		{&p.VHSEdgeWaveSpeed, fs.VHS.Settings.EdgeWaveSpeed},
		{&p.ChromaLowpassOut, fs.ChromaLowpassOut.String()},
	} {
		if err := s.p.Set(s.v); err != nil {
			return err
		}
	}
	return nil
}

// FullSettings returns the preference values as a FullSettings instance.
func (p *Preferences) FullSettings() (FullSettings, error) {
	var fs FullSettings
	var err error

	fs.ChromaLowpassIn, err = ParseChromaLowpass(p.ChromaLowpassIn.String())
	if err != nil {
		return fs, err
	}
	fs.ChromaLowpassOut, err = ParseChromaLowpass(p.ChromaLowpassOut.String())
	if err != nil {
		return fs, err
	}
	fs.PhaseShift, err = ParsePhaseShift(p.PhaseShift.String())
	if err != nil {
		return fs, err
	}
	fs.VHS.Settings.TapeSpeed, err = ParseTapeSpeed(p.VHSTapeSpeed.String())
	if err != nil {
		return fs, err
	}

	fs.CompositePreemphasis = p.CompositePreemphasis.Get().(float64)
	fs.PhaseShiftOffset = p.PhaseShiftOffset.Get().(int)

	fs.HeadSwitching.Enabled = p.HeadSwitching.Get().(bool)
	fs.HeadSwitching.Settings.Height = p.HeadSwitchingHeight.Get().(int)
	fs.HeadSwitching.Settings.Offset = p.HeadSwitchingOffset.Get().(int)
	fs.HeadSwitching.Settings.HorizShift = p.HeadSwitchingHorizShift.Get().(float64)

	fs.HeadSwitchingNoise.Enabled = p.HeadSwitchingNoise.Get().(bool)
	fs.HeadSwitchingNoise.Settings.Height = p.HeadSwitchingNoiseHeight.Get().(int)
	fs.HeadSwitchingNoise.Settings.WaveIntensity = p.HeadSwitchingNoiseWaveIntensity.Get().(float64)
	fs.HeadSwitchingNoise.Settings.SnowIntensity = p.HeadSwitchingNoiseSnowIntensity.Get().(float64)

	fs.CompositeNoiseIntensity = p.CompositeNoiseIntensity.Get().(float64)

	fs.Ringing.Enabled = p.Ringing.Get().(bool)
	fs.Ringing.Settings.Frequency = p.RingingFrequency.Get().(float64)
	fs.Ringing.Settings.Power = p.RingingPower.Get().(float64)
	fs.Ringing.Settings.Intensity = p.RingingIntensity.Get().(float64)

	fs.ChromaNoiseIntensity = p.ChromaNoiseIntensity.Get().(float64)
	fs.SnowIntensity = p.SnowIntensity.Get().(float64)
	fs.ChromaPhaseNoiseIntensity = p.ChromaPhaseNoiseIntensity.Get().(float64)

	fs.VHS.Enabled = p.VHS.Get().(bool)
	fs.VHS.Settings.ChromaVertBlend = p.VHSChromaVertBlend.Get().(bool)
	fs.VHS.Settings.Sharpen = p.VHSSharpen.Get().(float64)
	fs.VHS.Settings.EdgeWave = p.VHSEdgeWave.Get().(float64)
	fs.VHS.Settings.EdgeWaveSpeed = p.VHSEdgeWaveSpeed.Get().(float64)

	return fs, nil
}

// Effect returns the Effect described by the preference values.
func (p *Preferences) Effect() (*Effect, error) {
	fs, err := p.FullSettings()
	if err != nil {
		return nil, err
	}
	return fs.Effect(), nil
}
