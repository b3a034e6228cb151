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

import "fmt"

// This file implements the colour operators for the DeviceGray and
// DeviceRGB colour spaces.  The operators implemented here are defined in
// table 73 of ISO 32000-2:2020.

// SetStrokeGray sets the stroke colour to a gray level in the range from 0
// (black) to 1 (white).
//
// This implements the PDF graphics operator "G".
func (w *Writer) SetStrokeGray(level float64) {
	if !w.isValid("SetStrokeGray", objPage|objText) {
		return
	}
	col := color{R: level}
	if w.isSet(StateStrokeColor) && col == w.StrokeColor {
		return
	}

	w.StrokeColor = col
	w.Set |= StateStrokeColor

	_, w.Err = fmt.Fprintln(w.Content, w.coord(level), "G")
}

// SetFillGray sets the fill colour to a gray level in the range from 0
// (black) to 1 (white).
//
// This implements the PDF graphics operator "g".
func (w *Writer) SetFillGray(level float64) {
	if !w.isValid("SetFillGray", objPage|objText) {
		return
	}
	col := color{R: level}
	if w.isSet(StateFillColor) && col == w.FillColor {
		return
	}

	w.FillColor = col
	w.Set |= StateFillColor

	_, w.Err = fmt.Fprintln(w.Content, w.coord(level), "g")
}

// SetStrokeRGB sets the stroke colour in the DeviceRGB colour space.
// Each component is in the range from 0 to 1.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeRGB(r, g, b float64) {
	if !w.isValid("SetStrokeRGB", objPage|objText) {
		return
	}
	col := color{isRGB: true, R: r, G: g, B: b}
	if w.isSet(StateStrokeColor) && col == w.StrokeColor {
		return
	}

	w.StrokeColor = col
	w.Set |= StateStrokeColor

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(r), w.coord(g), w.coord(b), "RG")
}

// SetFillRGB sets the fill colour in the DeviceRGB colour space.
// Each component is in the range from 0 to 1.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillRGB(r, g, b float64) {
	if !w.isValid("SetFillRGB", objPage|objText) {
		return
	}
	col := color{isRGB: true, R: r, G: g, B: b}
	if w.isSet(StateFillColor) && col == w.FillColor {
		return
	}

	w.FillColor = col
	w.Set |= StateFillColor

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(r), w.coord(g), w.coord(b), "rg")
}
