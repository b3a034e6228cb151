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

// Package font provides access to the 14 standard PDF fonts.
//
// An [Instance] ties together a font name, the encoding table used with the
// font, and the font's metrics.  Instances convert Go strings to PDF string
// objects and compute kerning-aware advance widths for text layout.
package font

import (
	"fmt"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/afm"
	"seehuhn.de/go/pdfgen/font/pdfenc"
)

// Instance represents one of the standard fonts, ready for use in a
// document.  Instances are immutable after [Font.New] returns, except for
// the Ref field which is set when the font dictionary is embedded in a file.
type Instance struct {
	// Name is the PostScript name of the font.
	Name Font

	// Encoding is the encoding table used with the font.
	Encoding *pdfenc.Encoding

	// Metrics is the font's metric information.
	Metrics *afm.Metrics

	// Ref refers to the font dictionary, once the font has been embedded.
	Ref pdf.Reference
}

// Embed writes the font dictionary to the PDF file and records its
// reference in inst.Ref.  A font instance can be embedded at most once.
func (inst *Instance) Embed(w *pdf.Writer) error {
	if !inst.Ref.IsZero() {
		return fmt.Errorf("font %q already embedded", inst.Name)
	}

	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(inst.Name),
	}
	if inst.Encoding.Name != "" {
		dict["Encoding"] = pdf.Name(inst.Encoding.Name)
	}

	ref, err := w.WriteObject(dict)
	if err != nil {
		return err
	}
	inst.Ref = ref
	return nil
}

// Encode converts a string to the character codes of the font's encoding.
//
// Runes which are not part of the encoded character set are replaced by
// the encoding's substitution glyph.  If the encoding has no substitution
// glyph, Encode fails with an [*UnmappableError].
func (inst *Instance) Encode(s string) (pdf.String, error) {
	res := make(pdf.String, 0, len(s))
	for _, r := range s {
		c, ok := inst.Encoding.Encode(r)
		if !ok {
			c, ok = inst.Encoding.Fallback()
			if !ok {
				return nil, &UnmappableError{Font: inst.Name, Rune: r}
			}
		}
		res = append(res, c)
	}
	return res, nil
}

// EncodedWidth returns the advance width of a string of character codes,
// for the given font size, in text space units.  Kerning adjustments
// between consecutive glyphs are included.
func (inst *Instance) EncodedWidth(s pdf.String, size float64) float64 {
	var total float64
	prev := ""
	for _, c := range s {
		name := inst.Encoding.GlyphName(c)
		total += float64(inst.Metrics.Width(name))
		if prev != "" {
			pair := afm.GlyphPair{Left: prev, Right: name}
			total += float64(inst.Metrics.Kern[pair])
		}
		prev = name
	}
	return total * size / 1000
}

// Width returns the advance width of the string, for the given font size,
// in text space units.
func (inst *Instance) Width(s string, size float64) (float64, error) {
	encoded, err := inst.Encode(s)
	if err != nil {
		return 0, err
	}
	return inst.EncodedWidth(encoded, size), nil
}

// UnmappableError indicates that a rune cannot be represented in a font's
// encoding and the encoding has no substitution glyph.
type UnmappableError struct {
	Font Font
	Rune rune
}

func (err *UnmappableError) Error() string {
	return fmt.Sprintf("font %q cannot represent %q", err.Font, err.Rune)
}

// NotStandardError indicates an attempt to use a font name outside the set
// of 14 standard PDF fonts.
type NotStandardError struct {
	Font Font
}

func (err *NotStandardError) Error() string {
	return fmt.Sprintf("%q is not a standard PDF font", err.Font)
}
