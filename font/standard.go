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

package font

import (
	"seehuhn.de/go/pdfgen/font/afm"
	"seehuhn.de/go/pdfgen/font/pdfenc"
)

// Font identifies one of the 14 standard PDF fonts.
// The value is the PostScript name of the font.
type Font string

// The 14 standard PDF fonts.
const (
	Courier              Font = "Courier"
	CourierBold          Font = "Courier-Bold"
	CourierBoldOblique   Font = "Courier-BoldOblique"
	CourierOblique       Font = "Courier-Oblique"
	Helvetica            Font = "Helvetica"
	HelveticaBold        Font = "Helvetica-Bold"
	HelveticaBoldOblique Font = "Helvetica-BoldOblique"
	HelveticaOblique     Font = "Helvetica-Oblique"
	TimesRoman           Font = "Times-Roman"
	TimesBold            Font = "Times-Bold"
	TimesBoldItalic      Font = "Times-BoldItalic"
	TimesItalic          Font = "Times-Italic"
	Symbol               Font = "Symbol"
	ZapfDingbats         Font = "ZapfDingbats"
)

// All lists the 14 standard PDF fonts.
var All = []Font{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

// IsStandard reports whether f is one of the 14 standard PDF fonts.
func (f Font) IsStandard() bool {
	switch f {
	case Courier, CourierBold, CourierBoldOblique, CourierOblique,
		Helvetica, HelveticaBold, HelveticaBoldOblique, HelveticaOblique,
		TimesRoman, TimesBold, TimesBoldItalic, TimesItalic,
		Symbol, ZapfDingbats:
		return true
	}
	return false
}

// Encoding returns the encoding table used with the font.  The Latin text
// fonts use WinAnsi; the two symbol fonts use their built-in encodings.
func (f Font) Encoding() *pdfenc.Encoding {
	switch f {
	case Symbol:
		return pdfenc.Symbol
	case ZapfDingbats:
		return pdfenc.ZapfDingbats
	default:
		return pdfenc.WinAnsi
	}
}

// New creates a font instance, loading the font's metrics through the
// given loader.
func (f Font) New(loader *afm.Loader) (*Instance, error) {
	if !f.IsStandard() {
		return nil, &NotStandardError{Font: f}
	}
	metrics, err := loader.Load(string(f))
	if err != nil {
		return nil, err
	}
	return &Instance{
		Name:     f,
		Encoding: f.Encoding(),
		Metrics:  metrics,
	}, nil
}
