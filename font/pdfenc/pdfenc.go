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

// Package pdfenc implements the single-byte encodings used by the 14
// standard PDF fonts.
//
// An [Encoding] maintains the connection between Unicode code points, bytes
// in PDF strings, and glyph names.  Three encodings are provided: [WinAnsi]
// for the Latin text fonts, and [Symbol] and [ZapfDingbats] for the two
// symbol fonts.
package pdfenc

import (
	"seehuhn.de/go/postscript/type1/names"
)

// Encoding maps Unicode code points to single-byte character codes.
//
// Encoding tables are immutable; the instances in this package are shared
// by all users.
type Encoding struct {
	// Name is the value of the /Encoding entry in font dictionaries which
	// use this encoding, or empty for the built-in encoding of a font.
	Name string

	glyphNames  [256]string
	toRune      [256]rune
	toByte      map[rune]byte
	fallback    byte
	hasFallback bool
}

// newEncoding builds the lookup tables for an encoding.  Where two codes
// map to the same rune, the lower code wins the reverse mapping.
func newEncoding(name string, glyphNames *[256]string, dingbats bool) *Encoding {
	enc := &Encoding{
		Name:       name,
		glyphNames: *glyphNames,
		toByte:     make(map[rune]byte),
	}
	fontName := ""
	if dingbats {
		fontName = "ZapfDingbats"
	}
	for code := range 256 {
		glyphName := glyphNames[code]
		if glyphName == "" || glyphName == ".notdef" {
			continue
		}
		rr := []rune(names.ToUnicode(glyphName, fontName))
		if len(rr) != 1 {
			continue
		}
		r := rr[0]
		enc.toRune[code] = r
		if _, seen := enc.toByte[r]; !seen {
			enc.toByte[r] = byte(code)
		}
		if glyphName == "question" {
			enc.fallback = byte(code)
			enc.hasFallback = true
		}
	}
	return enc
}

// Encode returns the character code for the given rune.  The second return
// value reports whether the rune is part of the encoded character set.
func (enc *Encoding) Encode(r rune) (byte, bool) {
	c, ok := enc.toByte[r]
	return c, ok
}

// Fallback returns the code of the substitution glyph used for runes outside
// the encoded character set.  Not every encoding defines a substitution
// glyph; the second return value reports whether one exists.
func (enc *Encoding) Fallback() (byte, bool) {
	return enc.fallback, enc.hasFallback
}

// Decode returns the rune for the given character code, or -1 if the code is
// not mapped.
func (enc *Encoding) Decode(c byte) rune {
	if enc.toRune[c] == 0 {
		return -1
	}
	return enc.toRune[c]
}

// GlyphName returns the name of the glyph selected by the given character
// code, or the empty string if the code is not mapped.
func (enc *Encoding) GlyphName(c byte) string {
	return enc.glyphNames[c]
}
