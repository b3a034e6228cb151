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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// This file implements the text object, text state and text-showing
// operators.  The operators implemented here are defined in tables 105,
// 103 and 107 of ISO 32000-2:2020.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	w.TextMatrix = matrix.Identity
	w.TextLineMatrix = matrix.Identity
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextStart")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	w.Set &= ^StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the current font and font size.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(inst *font.Instance, size float64) {
	if !w.isValid("TextSetFont", objPage|objText) {
		return
	}
	if w.isSet(StateTextFont) &&
		inst == w.TextFont && nearlyEqual(size, w.TextFontSize) {
		return
	}

	w.TextFont = inst
	w.TextFontSize = size
	w.Set |= StateTextFont

	name := w.FontName(inst)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", w.coord(size), "Tf")
}

// TextSetCharacterSpacing sets additional character spacing.  The value
// does not scale with the font size.
//
// This implements the PDF graphics operator "Tc".
func (w *Writer) TextSetCharacterSpacing(charSpacing float64) {
	if !w.isValid("TextSetCharacterSpacing", objPage|objText) {
		return
	}
	if w.isSet(StateTextCharacterSpacing) &&
		nearlyEqual(charSpacing, w.TextCharacterSpacing) {
		return
	}

	w.TextCharacterSpacing = charSpacing
	w.Set |= StateTextCharacterSpacing

	_, w.Err = fmt.Fprintln(w.Content, w.coord(charSpacing), "Tc")
}

// TextSetWordSpacing sets additional spacing for the space character.
// The value does not scale with the font size.
//
// This implements the PDF graphics operator "Tw".
func (w *Writer) TextSetWordSpacing(wordSpacing float64) {
	if !w.isValid("TextSetWordSpacing", objPage|objText) {
		return
	}
	if w.isSet(StateTextWordSpacing) &&
		nearlyEqual(wordSpacing, w.TextWordSpacing) {
		return
	}

	w.TextWordSpacing = wordSpacing
	w.Set |= StateTextWordSpacing

	_, w.Err = fmt.Fprintln(w.Content, w.coord(wordSpacing), "Tw")
}

// TextSetLeading sets the leading, the vertical distance between the
// baselines of consecutive lines of text.
//
// This implements the PDF graphics operator "TL".
func (w *Writer) TextSetLeading(leading float64) {
	if !w.isValid("TextSetLeading", objPage|objText) {
		return
	}
	if w.isSet(StateTextLeading) && nearlyEqual(leading, w.TextLeading) {
		return
	}

	w.TextLeading = leading
	w.Set |= StateTextLeading

	_, w.Err = fmt.Fprintln(w.Content, w.coord(leading), "TL")
}

// TextSetRise sets the text rise, the distance of the baseline from its
// default position.  Positive values of rise move the baseline up.
//
// This implements the PDF graphics operator "Ts".
func (w *Writer) TextSetRise(rise float64) {
	if !w.isValid("TextSetRise", objPage|objText) {
		return
	}
	if w.isSet(StateTextRise) && nearlyEqual(rise, w.TextRise) {
		return
	}

	w.TextRise = rise
	w.Set |= StateTextRise

	_, w.Err = fmt.Fprintln(w.Content, w.coord(rise), "Ts")
}

// TextFirstLine moves to the start of the next line of text.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	w.TextLineMatrix = matrix.Translate(dx, dy).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "Td")
}

// TextSecondLine moves to the start of the next line of text and sets the
// leading to -dy.  Usually, dy is negative.
//
// This implements the PDF graphics operator "TD".
func (w *Writer) TextSecondLine(dx, dy float64) {
	if !w.isValid("TextSecondLine", objText) {
		return
	}

	w.TextLineMatrix = matrix.Translate(dx, dy).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix
	w.TextLeading = -dy
	w.Set |= StateTextLeading

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "TD")
}

// TextSetMatrix replaces the current text matrix and line matrix with m.
//
// This implements the PDF graphics operator "Tm".
func (w *Writer) TextSetMatrix(m matrix.Matrix) {
	if !w.isValid("TextSetMatrix", objText) {
		return
	}

	w.TextMatrix = m
	w.TextLineMatrix = m
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(m[0]), w.coord(m[1]), w.coord(m[2]),
		w.coord(m[3]), w.coord(m[4]), w.coord(m[5]), "Tm")
}

// TextNextLine moves to the start of the next line of text, using the
// current leading.
//
// This implements the PDF graphics operator "T*".
func (w *Writer) TextNextLine() {
	if !w.isValid("TextNextLine", objText) {
		return
	}
	if err := w.mustBeSet(StateTextMatrix | StateTextLeading); err != nil {
		w.Err = err
		return
	}

	w.TextLineMatrix = matrix.Translate(0, -w.TextLeading).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, "T*")
}

// TextShow shows a string, encoded with the current font's encoding.
// The text matrix advances by the width of the shown text, so subsequent
// positioning calls stay consistent with the rendered output.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s string) {
	if !w.isValid("TextShow", objText) {
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

	w.updateTextPosition(encoded)

	w.Err = encoded.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}

// TextShowNextLine moves to the next line of text and shows a string
// there.  This has the same effect as [Writer.TextNextLine] followed by
// [Writer.TextShow].
//
// This implements the PDF graphics operator "'".
func (w *Writer) TextShowNextLine(s string) {
	if !w.isValid("TextShowNextLine", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix | StateTextLeading); err != nil {
		w.Err = err
		return
	}

	encoded, err := w.TextFont.Encode(s)
	if err != nil {
		w.Err = err
		return
	}

	w.TextLineMatrix = matrix.Translate(0, -w.TextLeading).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix
	w.updateTextPosition(encoded)

	w.Err = encoded.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " '")
}

// TextShowAdjusted shows text with manual glyph position adjustments.
// Arguments must be strings (shown with the current font) and numbers
// (position adjustments in thousandths of text space units; positive
// values move the following glyphs backwards).  The text matrix advances
// by the total width of the strings plus the adjustments, so that
// manually kerned output composes with subsequent positioning calls.
//
// This implements the PDF graphics operator "TJ".
func (w *Writer) TextShowAdjusted(args ...any) {
	if !w.isValid("TextShowAdjusted", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix); err != nil {
		w.Err = err
		return
	}

	var a pdf.Array
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			encoded, err := w.TextFont.Encode(arg)
			if err != nil {
				w.Err = err
				return
			}
			w.updateTextPosition(encoded)
			a = append(a, encoded)
		case float64:
			w.adjustTextPosition(arg)
			a = append(a, pdf.Real(arg))
		case int:
			w.adjustTextPosition(float64(arg))
			a = append(a, pdf.Integer(arg))
		default:
			w.Err = fmt.Errorf("TextShowAdjusted: invalid argument type %T", arg)
			return
		}
	}

	w.Err = a.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " TJ")
}

// showWidth returns the width of a string of character codes in text space
// units, including character and word spacing.
func (w *Writer) showWidth(s pdf.String) float64 {
	width := w.TextFont.EncodedWidth(s, w.TextFontSize)
	width += float64(len(s)) * w.TextCharacterSpacing
	for _, c := range s {
		if c == ' ' {
			width += w.TextWordSpacing
		}
	}
	return width
}

// updateTextPosition advances the text matrix by the width of a string of
// character codes.
func (w *Writer) updateTextPosition(s pdf.String) {
	w.TextMatrix = matrix.Translate(w.showWidth(s), 0).Mul(w.TextMatrix)
}

// adjustTextPosition moves the text matrix for a numeric adjustment in a
// "TJ" array, given in thousandths of text space units.
func (w *Writer) adjustTextPosition(delta float64) {
	dx := -delta * w.TextFontSize / 1000
	w.TextMatrix = matrix.Translate(dx, 0).Mul(w.TextMatrix)
}
