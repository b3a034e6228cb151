// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/font"
)

// StateBits is a bit mask describing which graphics state parameters have
// known values.
type StateBits uint32

// The state parameters tracked by a [Writer].
const (
	StateLineWidth StateBits = 1 << iota
	StateLineCap
	StateLineJoin
	StateLineDash
	StateStrokeColor
	StateFillColor
	StateTextFont
	StateTextMatrix
	StateTextCharacterSpacing
	StateTextWordSpacing
	StateTextLeading
	StateTextRise

	stateAll = StateBits(1)<<(iota) - 1
)

// LineCapStyle is the style of the endpoints of stroked lines.
// See table 54 of ISO 32000-2:2020.
type LineCapStyle uint8

// The line cap styles.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the joints between stroked line segments.
// See table 55 of ISO 32000-2:2020.
type LineJoinStyle uint8

// The line join styles.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// color is a device color, in either the DeviceGray or DeviceRGB color
// space.  Gray values store the level in R.
type color struct {
	isRGB   bool
	R, G, B float64
}

// State collects the graphics state parameters tracked by a [Writer].
//
// Parameters not marked in Set have their PDF default value, but no
// operator establishing the value has been written yet.
type State struct {
	CTM matrix.Matrix

	LineWidth   float64
	LineCap     LineCapStyle
	LineJoin    LineJoinStyle
	DashPattern []float64
	DashPhase   float64

	StrokeColor color
	FillColor   color

	TextFont             *font.Instance
	TextFontSize         float64
	TextCharacterSpacing float64
	TextWordSpacing      float64
	TextLeading          float64
	TextRise             float64

	TextMatrix     matrix.Matrix
	TextLineMatrix matrix.Matrix

	Set StateBits
}

// NewState returns the graphics state at the start of a content stream,
// with all parameters at their PDF default values.
func NewState() State {
	return State{
		CTM:         matrix.Identity,
		LineWidth:   1,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		StrokeColor: color{R: 0},
		FillColor:   color{R: 0},

		Set: StateLineWidth | StateLineCap | StateLineJoin | StateLineDash |
			StateStrokeColor | StateFillColor |
			StateTextCharacterSpacing | StateTextWordSpacing | StateTextRise,
	}
}

// Clone returns a copy of the state which shares no mutable data with the
// original.
func (s State) Clone() State {
	res := s
	res.DashPattern = append([]float64(nil), s.DashPattern...)
	return res
}

func (s *State) isSet(bits StateBits) bool {
	return s.Set&bits == bits
}

// mustBeSet returns an error if any of the given parameters has not been
// established in the content stream.
func (s *State) mustBeSet(bits StateBits) error {
	if missing := bits & ^s.Set; missing != 0 {
		return fmt.Errorf("graphics state parameter 0b%b not set", missing)
	}
	return nil
}
