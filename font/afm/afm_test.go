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

package afm

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/funit"
)

const testMetrics = `StartFontMetrics 4.1
Comment Creation Date: Thu May  1 12:38:23 1997
FontName Test-Regular
FullName Test Regular
FontBBox -166 -225 1000 931
CapHeight 718
XHeight 523
Ascender 718
Descender -207
IsFixedPitch false
StartCharMetrics 4
C 32 ; WX 278 ; N space ; B 0 0 0 0 ;
C 65 ; WX 667 ; N A ; B 14 0 654 718 ;
C 86 ; WX 667 ; N V ; B 30 0 637 718 ;
C -1 ; WX 500 ; N dotlessi ; B 50 0 450 523 ;
EndCharMetrics
StartKernData
StartKernPairs 2
KPX A V -80
KPX V A -80
EndKernPairs
EndKernData
EndFontMetrics
`

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(testMetrics))
	if err != nil {
		t.Fatal(err)
	}

	if m.FontName != "Test-Regular" {
		t.Errorf("FontName = %q", m.FontName)
	}
	if m.CapHeight != 718 || m.Ascent != 718 || m.Descent != -207 {
		t.Errorf("wrong vertical metrics: %d %d %d",
			m.CapHeight, m.Ascent, m.Descent)
	}
	if m.IsFixedPitch {
		t.Error("IsFixedPitch is set")
	}
	wantBBox := funit.Rect16{LLx: -166, LLy: -225, URx: 1000, URy: 931}
	if d := cmp.Diff(wantBBox, m.FontBBox); d != "" {
		t.Errorf("FontBBox (-want +got):\n%s", d)
	}

	if len(m.Glyphs) != 4 {
		t.Fatalf("got %d glyphs", len(m.Glyphs))
	}
	if w := m.Width("A"); w != 667 {
		t.Errorf("width of A = %d", w)
	}
	if w := m.Width("space"); w != 278 {
		t.Errorf("width of space = %d", w)
	}
	if w := m.Width("nosuchglyph"); w != 0 {
		t.Errorf("width of missing glyph = %d", w)
	}
	if g := m.Glyphs["dotlessi"]; g.Code != -1 {
		t.Errorf("code of unencoded glyph = %d", g.Code)
	}

	wantKern := map[GlyphPair]funit.Int16{
		{Left: "A", Right: "V"}: -80,
		{Left: "V", Right: "A"}: -80,
	}
	if d := cmp.Diff(wantKern, m.Kern); d != "" {
		t.Errorf("kern pairs (-want +got):\n%s", d)
	}
}

func TestReadMalformed(t *testing.T) {
	cases := []struct {
		desc string
		in   string
	}{
		{
			"missing FontName",
			"FontBBox 0 0 1 1\nStartCharMetrics 0\nEndCharMetrics\n",
		},
		{
			"non-numeric width",
			"FontName X\nStartCharMetrics 1\nC 65 ; WX wide ; N A ;\nEndCharMetrics\n",
		},
		{
			"glyph without name",
			"FontName X\nStartCharMetrics 1\nC 65 ; WX 667 ;\nEndCharMetrics\n",
		},
		{
			"unterminated char metrics",
			"FontName X\nStartCharMetrics 1\nC 65 ; WX 667 ; N A ;\n",
		},
		{
			"bad kern pair",
			"FontName X\nStartKernPairs 1\nKPX A V\nEndKernPairs\n",
		},
	}
	for _, test := range cases {
		_, err := Read(strings.NewReader(test.in))
		var malformed *MalformedError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: got %v, want MalformedError", test.desc, err)
		}
	}
}

func TestReadSkipsUnknown(t *testing.T) {
	in := "FontName X\nWeight Medium\nUnknownKey 1 2 3\nStartCharMetrics 0\nEndCharMetrics\n"
	m, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if m.FontName != "X" {
		t.Errorf("FontName = %q", m.FontName)
	}
}

func TestLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"Test-Regular.afm": &fstest.MapFile{Data: []byte(testMetrics)},
	}
	loader := NewLoader(fsys)

	m1, err := loader.Load("Test-Regular")
	if err != nil {
		t.Fatal(err)
	}
	m2, err := loader.Load("Test-Regular")
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Error("metrics were parsed twice")
	}

	_, err = loader.Load("No-Such-Font")
	if err == nil {
		t.Error("missing metrics file not reported")
	}
}

func TestLoaderNameMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"Other.afm": &fstest.MapFile{Data: []byte(testMetrics)},
	}
	loader := NewLoader(fsys)
	_, err := loader.Load("Other")
	if err == nil {
		t.Error("metrics for the wrong font were accepted")
	}
}
