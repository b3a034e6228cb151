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

// Package afm reads Adobe Font Metrics files.
//
// Only the information needed for text layout is kept: per-glyph advance
// widths and bounding boxes, kerning pairs, and a few global font
// parameters.  Unknown keys are skipped, so that files using newer versions
// of the AFM format can still be read.
package afm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/postscript/funit"
)

// Metrics represents the metric information for one font.
type Metrics struct {
	FontName string

	FontBBox     funit.Rect16
	CapHeight    funit.Int16
	XHeight      funit.Int16
	Ascent       funit.Int16
	Descent      funit.Int16 // negative
	IsFixedPitch bool

	// Glyphs maps glyph names to the corresponding metric information.
	Glyphs map[string]*GlyphInfo

	// Kern maps pairs of glyph names to the kerning adjustment between
	// them, in font design units.  Negative values move the glyphs
	// closer together.
	Kern map[GlyphPair]funit.Int16
}

// GlyphInfo contains the metric information for a single glyph.
type GlyphInfo struct {
	// Code is the built-in character code of the glyph, or -1 if the glyph
	// is not part of the font's built-in encoding.
	Code int16

	// Width is the advance width, in font design units.
	Width funit.Int16

	BBox funit.Rect16
}

// GlyphPair represents two consecutive glyphs, specified by name.
type GlyphPair struct {
	Left  string
	Right string
}

// Width returns the advance width of the named glyph, in font design units.
// Glyphs not present in the metrics have width zero.
func (m *Metrics) Width(glyphName string) funit.Int16 {
	if g, ok := m.Glyphs[glyphName]; ok {
		return g.Width
	}
	return 0
}

// MalformedError indicates that an AFM file could not be parsed.
type MalformedError struct {
	Line int
	Err  error
}

func (err *MalformedError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("malformed font metrics (line %d): %s",
			err.Line, err.Err)
	}
	return "malformed font metrics: " + err.Err.Error()
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

// Read parses font metrics from an AFM file.
//
// Lines with unknown keys are ignored, but structural problems such as a
// missing FontName, non-numeric metric values or an unterminated character
// metrics section result in a [MalformedError].
func Read(r io.Reader) (*Metrics, error) {
	res := &Metrics{
		Glyphs: make(map[string]*GlyphInfo),
		Kern:   make(map[GlyphPair]funit.Int16),
	}

	charMetrics := false
	kernPairs := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if charMetrics {
			if strings.HasPrefix(line, "EndCharMetrics") {
				charMetrics = false
				continue
			}
			err := res.parseCharMetrics(line)
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Err: err}
			}
			continue
		}

		fields := strings.Fields(line)
		if kernPairs {
			if fields[0] == "EndKernPairs" {
				kernPairs = false
				continue
			}
			if fields[0] != "KPX" {
				// only horizontal kerning by name is used
				continue
			}
			if len(fields) != 4 {
				return nil, &MalformedError{
					Line: lineNo,
					Err:  fmt.Errorf("invalid kern pair %q", line),
				}
			}
			x, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Err: err}
			}
			if x != 0 {
				pair := GlyphPair{Left: fields[1], Right: fields[2]}
				res.Kern[pair] = funit.Int16(x)
			}
			continue
		}

		if len(fields) < 2 {
			continue
		}
		var err error
		switch fields[0] {
		case "FontName":
			res.FontName = fields[1]
		case "IsFixedPitch":
			res.IsFixedPitch = fields[1] == "true"
		case "FontBBox":
			if len(fields) < 5 {
				err = fmt.Errorf("invalid FontBBox %q", line)
				break
			}
			var vv [4]funit.Int16
			for i := range vv {
				vv[i], err = parseInt16(fields[i+1])
				if err != nil {
					break
				}
			}
			res.FontBBox = funit.Rect16{
				LLx: vv[0], LLy: vv[1], URx: vv[2], URy: vv[3],
			}
		case "CapHeight":
			res.CapHeight, err = parseInt16(fields[1])
		case "XHeight":
			res.XHeight, err = parseInt16(fields[1])
		case "Ascender":
			res.Ascent, err = parseInt16(fields[1])
		case "Descender":
			res.Descent, err = parseInt16(fields[1])
		case "StartCharMetrics":
			charMetrics = true
		case "StartKernPairs":
			kernPairs = true
		}
		if err != nil {
			return nil, &MalformedError{Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if charMetrics {
		return nil, &MalformedError{
			Line: lineNo,
			Err:  fmt.Errorf("missing EndCharMetrics"),
		}
	}
	if res.FontName == "" {
		return nil, &MalformedError{Err: fmt.Errorf("missing FontName")}
	}

	return res, nil
}

// parseCharMetrics reads one line of the character metrics section, of the
// form "C 65 ; WX 722 ; N A ; B 15 0 706 674 ;".
func (m *Metrics) parseCharMetrics(line string) error {
	glyph := &GlyphInfo{Code: -1}
	var name string

	for _, keyVal := range strings.Split(line, ";") {
		ff := strings.Fields(keyVal)
		if len(ff) < 2 {
			continue
		}
		var err error
		switch ff[0] {
		case "C":
			var code int
			code, err = strconv.Atoi(ff[1])
			if err == nil {
				glyph.Code = int16(code)
			}
		case "WX":
			glyph.Width, err = parseInt16(ff[1])
		case "N":
			name = ff[1]
		case "B":
			if len(ff) < 5 {
				return fmt.Errorf("invalid bounding box %q", keyVal)
			}
			var vv [4]funit.Int16
			for i := range vv {
				vv[i], err = parseInt16(ff[i+1])
				if err != nil {
					break
				}
			}
			glyph.BBox = funit.Rect16{
				LLx: vv[0], LLy: vv[1], URx: vv[2], URy: vv[3],
			}
		}
		if err != nil {
			return err
		}
	}

	if name == "" {
		return fmt.Errorf("glyph without name in %q", line)
	}
	m.Glyphs[name] = glyph
	return nil
}

func parseInt16(s string) (funit.Int16, error) {
	// some metrics files use decimal points for integer values
	s = strings.TrimSuffix(s, ".0")
	x, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return funit.Int16(x), nil
}
