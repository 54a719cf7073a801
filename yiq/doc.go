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

// Package yiq converts between RGBA images and a planar representation in the
// YIQ colour space. Y is the luma of the image and I and Q are the two
// chrominance components, as used by the NTSC television system.
//
// An image can be converted as a single interlaced field, in which case only
// every other row of the image is kept. When converting back to an image the
// missing rows are interpolated.
package yiq
