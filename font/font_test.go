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
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"
	"testing/fstest"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/afm"
)

func metricsFor(name string, charMetrics, kernPairs string) string {
	return fmt.Sprintf(
		"FontName %s\nFontBBox -166 -225 1000 931\nAscender 718\nDescender -207\n"+
			"StartCharMetrics 0\n%sEndCharMetrics\n"+
			"StartKernPairs 0\n%sEndKernPairs\n",
		name, charMetrics, kernPairs)
}

func testLoader() *afm.Loader {
	latin := "C 32 ; WX 278 ; N space ;\n" +
		"C 63 ; WX 556 ; N question ;\n" +
		"C 65 ; WX 667 ; N A ;\n" +
		"C 86 ; WX 667 ; N V ;\n"
	kern := "KPX A V -80\nKPX V A -70\n"

	fsys := fstest.MapFS{
		"Helvetica.afm": &fstest.MapFile{
			Data: []byte(metricsFor("Helvetica", latin, kern)),
		},
		"Symbol.afm": &fstest.MapFile{
			Data: []byte(metricsFor("Symbol",
				"C 97 ; WX 631 ; N alpha ;\nC 63 ; WX 444 ; N question ;\n", "")),
		},
		"ZapfDingbats.afm": &fstest.MapFile{
			Data: []byte(metricsFor("ZapfDingbats",
				"C 33 ; WX 974 ; N a1 ;\n", "")),
		},
	}
	return afm.NewLoader(fsys)
}

func TestNew(t *testing.T) {
	loader := testLoader()

	inst, err := Helvetica.New(loader)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Name != Helvetica {
		t.Errorf("Name = %q", inst.Name)
	}
	if inst.Encoding.Name != "WinAnsiEncoding" {
		t.Errorf("Encoding = %q", inst.Encoding.Name)
	}
	if !inst.Ref.IsZero() {
		t.Error("new instance already has a reference")
	}

	_, err = Font("Comic-Sans").New(loader)
	var notStd *NotStandardError
	if !errors.As(err, &notStd) {
		t.Errorf("got %v, want NotStandardError", err)
	}
}

func TestEncode(t *testing.T) {
	loader := testLoader()
	helv, err := Helvetica.New(loader)
	if err != nil {
		t.Fatal(err)
	}

	s, err := helv.Encode("AV A")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s, []byte("AV A")) {
		t.Errorf("Encode: % x", []byte(s))
	}

	// unmapped runes fall back to the question mark glyph
	s, err = helv.Encode("A∀V")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s, []byte("A?V")) {
		t.Errorf("fallback: % x", []byte(s))
	}

	// ZapfDingbats has no substitution glyph
	zapf, err := ZapfDingbats.New(loader)
	if err != nil {
		t.Fatal(err)
	}
	_, err = zapf.Encode("x")
	var unmappable *UnmappableError
	if !errors.As(err, &unmappable) {
		t.Errorf("got %v, want UnmappableError", err)
	}
}

func TestWidth(t *testing.T) {
	loader := testLoader()
	helv, err := Helvetica.New(loader)
	if err != nil {
		t.Fatal(err)
	}

	const size = 12.0
	w, err := helv.Width("AV", size)
	if err != nil {
		t.Fatal(err)
	}
	want := (667 + 667 - 80) * size / 1000
	if math.Abs(w-want) > 1e-9 {
		t.Errorf("Width(AV) = %g, want %g", w, want)
	}

	// the width of a string is the sum of the widths of its parts, plus
	// the kerning between the parts
	wA, err := helv.Width("A", size)
	if err != nil {
		t.Fatal(err)
	}
	wV, err := helv.Width("V", size)
	if err != nil {
		t.Fatal(err)
	}
	kern := -80 * size / 1000
	if math.Abs(w-(wA+wV+kern)) > 1e-9 {
		t.Errorf("width is not additive: %g vs %g", w, wA+wV+kern)
	}

	// glyphs without metrics have width zero
	wq, err := helv.Width("!", size)
	if err != nil {
		t.Fatal(err)
	}
	if wq != 0 {
		t.Errorf("width of glyph without metrics = %g", wq)
	}
}

func TestEmbed(t *testing.T) {
	loader := testLoader()

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_7)
	if err != nil {
		t.Fatal(err)
	}

	helv, err := Helvetica.New(loader)
	if err != nil {
		t.Fatal(err)
	}
	err = helv.Embed(w)
	if err != nil {
		t.Fatal(err)
	}
	if helv.Ref.IsZero() {
		t.Error("no reference recorded")
	}
	if err := helv.Embed(w); err == nil {
		t.Error("double embedding not detected")
	}

	symbol, err := Symbol.New(loader)
	if err != nil {
		t.Fatal(err)
	}
	err = symbol.Embed(w)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"/Type /Font",
		"/Subtype /Type1",
		"/BaseFont /Helvetica",
		"/Encoding /WinAnsiEncoding",
		"/BaseFont /Symbol",
	} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	// the symbol fonts use their built-in encodings
	if n := bytes.Count(buf.Bytes(), []byte("/Encoding")); n != 1 {
		t.Errorf("got %d /Encoding entries", n)
	}
}
