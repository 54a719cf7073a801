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

// SettingsBlock is an optional block of settings that keep their values when
// the block is disabled.
type SettingsBlock[T any] struct {
	Enabled  bool
	Settings T
}

// NewSettingsBlock creates a SettingsBlock from an optional settings value.
// If the value is nil the block is disabled and the settings are the
// supplied defaults.
func NewSettingsBlock[T any](v *T, defaults T) SettingsBlock[T] {
	if v == nil {
		return SettingsBlock[T]{Enabled: false, Settings: defaults}
	}
	return SettingsBlock[T]{Enabled: true, Settings: *v}
}

// Option returns a copy of the settings if the block is enabled or nil if it
// is not.
func (b SettingsBlock[T]) Option() *T {
	if !b.Enabled {
		return nil
	}
	s := b.Settings
	return &s
}

// FullSettings mirrors the Effect type but the optional blocks have settings
// even when they are disabled. It is the form of the configuration used for
// editing and for storage.
type FullSettings struct {
	ChromaLowpassIn      ChromaLowpass
	CompositePreemphasis float64

	PhaseShift       PhaseShift
	PhaseShiftOffset int

	HeadSwitching           SettingsBlock[HeadSwitchingSettings]
	HeadSwitchingNoise      SettingsBlock[HeadSwitchingNoiseSettings]
	CompositeNoiseIntensity float64

	Ringing SettingsBlock[RingingSettings]

	ChromaNoiseIntensity      float64
	SnowIntensity             float64
	ChromaPhaseNoiseIntensity float64

	VHS SettingsBlock[VHSSettings]

	ChromaLowpassOut ChromaLowpass
}

// DefaultFullSettings returns the FullSettings equivalent of NewEffect().
func DefaultFullSettings() FullSettings {
	return NewEffect().FullSettings()
}

// FullSettings returns the editable form of the effect. Disabled blocks are
// given their default settings.
func (e *Effect) FullSettings() FullSettings {
	return FullSettings{
		ChromaLowpassIn:           e.ChromaLowpassIn,
		CompositePreemphasis:      e.CompositePreemphasis,
		PhaseShift:                e.PhaseShift,
		PhaseShiftOffset:          e.PhaseShiftOffset,
		HeadSwitching:             NewSettingsBlock(e.HeadSwitching, DefaultHeadSwitching()),
		HeadSwitchingNoise:        NewSettingsBlock(e.HeadSwitchingNoise, DefaultHeadSwitchingNoise()),
		CompositeNoiseIntensity:   e.CompositeNoiseIntensity,
		Ringing:                   NewSettingsBlock(e.Ringing, DefaultRinging()),
		ChromaNoiseIntensity:      e.ChromaNoiseIntensity,
		SnowIntensity:             e.SnowIntensity,
		ChromaPhaseNoiseIntensity: e.ChromaPhaseNoiseIntensity,
		VHS:                       NewSettingsBlock(e.VHS, DefaultVHS()),
		ChromaLowpassOut:          e.ChromaLowpassOut,
	}
}

// Effect returns the Effect described by the settings. Disabled blocks are
// nil in the returned Effect.
func (fs FullSettings) Effect() *Effect {
	return &Effect{
		ChromaLowpassIn:           fs.ChromaLowpassIn,
		CompositePreemphasis:      fs.CompositePreemphasis,
		PhaseShift:                fs.PhaseShift,
		PhaseShiftOffset:          fs.PhaseShiftOffset,
		HeadSwitching:             fs.HeadSwitching.Option(),
		HeadSwitchingNoise:        fs.HeadSwitchingNoise.Option(),
		CompositeNoiseIntensity:   fs.CompositeNoiseIntensity,
		Ringing:                   fs.Ringing.Option(),
		ChromaNoiseIntensity:      fs.ChromaNoiseIntensity,
		SnowIntensity:             fs.SnowIntensity,
		ChromaPhaseNoiseIntensity: fs.ChromaPhaseNoiseIntensity,
		VHS:                       fs.VHS.Option(),
		ChromaLowpassOut:          fs.ChromaLowpassOut,
	}
}
