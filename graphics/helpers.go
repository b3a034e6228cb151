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

// This file contains drawing and text layout helpers built on top of the
// basic PDF operators.

// circleK is the distance of the control points for a quarter-circle
// Bezier approximation, as a fraction of the radius.
const circleK = 0.551915024494

// Line appends a straight line segment from (x1, y1) to (x2, y2) to the
// current path.
func (w *Writer) Line(x1, y1, x2, y2 float64) {
	w.MoveTo(x1, y1)
	w.LineTo(x2, y2)
}

// Circle appends a circle with the given center and radius to the current
// path, approximated by four cubic Bezier segments.
func (w *Writer) Circle(x, y, radius float64) {
	k := circleK * radius
	w.MoveTo(x+radius, y)
	w.CurveTo(x+radius, y+k, x+k, y+radius, x, y+radius)
	w.CurveTo(x-k, y+radius, x-radius, y+k, x-radius, y)
	w.CurveTo(x-radius, y-k, x-k, y-radius, x, y-radius)
	w.CurveTo(x+k, y-radius, x+radius, y-k, x+radius, y)
	w.ClosePath()
}

// TextCenter shows a string horizontally centered on the current text
// position.
func (w *Writer) TextCenter(s string) {
	w.textAligned(s, 0.5)
}

// TextRight shows a string ending at the current text position.
func (w *Writer) TextRight(s string) {
	w.textAligned(s, 1)
}

// textAligned shifts the string backwards by the given fraction of its
// width before showing it, using a "TJ" adjustment.
func (w *Writer) textAligned(s string, q float64) {
	if !w.isValid("textAligned", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix); err != nil {
		w.Err = err
		return
	}

	encoded, err := w.TextFont.Encode(s)
	if err != nil {
		w.Err = err
		return
	}

	delta := w.showWidth(encoded) / w.TextFontSize * 1000 * q
	w.TextShowAdjusted(delta, s)
}
