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

// Package ntsc simulates the artifacts of an NTSC composite video signal and
// of VHS tape recording on a still image.
//
// The Effect type holds the configuration and ApplyEffect() processes one
// frame. The image is converted to the YIQ colour space, one field at a time,
// and a fixed sequence of passes is applied to the three planes:
//
//	chroma lowpass (in)
//	chroma into luma
//	composite preemphasis
//	composite noise
//	snow
//	head switching noise
//	head switching
//	luma into chroma
//	ringing
//	chroma noise
//	chroma phase noise
//	VHS (edge wave, tape lowpass, chroma vertical blend, sharpen)
//	chroma lowpass (out)
//
// Passes with an intensity of zero or less, and optional blocks that are nil,
// are skipped.
//
// All randomness is derived from the seed argument of ApplyEffect(), the
// frame number and the row being processed. Applying the same Effect to the
// same image with the same frame number and seed always produces the same
// result. Incrementing the frame number animates the noise.
//
// The FullSettings type is the editable form of the configuration. Optional
// blocks in FullSettings retain their values even when disabled. The
// Preferences type stores FullSettings on disk.
package ntsc
