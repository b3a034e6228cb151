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

package pdfgen

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(42), "42"},
		{Integer(-1), "-1"},
		{Real(0), "0"},
		{Real(1.5), "1.5"},
		{Real(-2.25), "-2.25"},
		{String("hello"), "(hello)"},
		{String("A(B)"), `(A\(B\))`},
		{String(`a\b`), `(a\\b)`},
		{String(""), "()"},
		{Name("Test"), "/Test"},
		{Name("A B"), "/A#20B"},
		{Name("a(b)"), "/a#28b#29"},
		{Name("x#y"), "/x#23y"},
		{Array{Integer(1), Real(2.5), nil}, "[1 2.5 null]"},
		{Array{}, "[]"},
		{Dict{"B": Integer(2), "A": Integer(1)}, "<<\n/A 1\n/B 2\n>>"},
		{Dict{"X": nil}, "<<\n>>"},
		{Reference{Number: 7}, "7 0 R"},
		{Reference{Number: 3, Generation: 2}, "3 2 R"},
		{&Rectangle{URx: 612, URy: 792}, "[0 0 612 792]"},
		{&Stream{Data: []byte("xyz")},
			"<<\n/Length 3\n>>\nstream\nxyz\nendstream"},
	}
	for _, test := range cases {
		got := format(test.in)
		if got != test.out {
			t.Errorf("format(%#v) = %q, want %q", test.in, got, test.out)
		}
	}
}

func TestEscape(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("plain text"),
		[]byte("A(B)"),
		[]byte(`back\slash`),
		[]byte("((("),
		[]byte(")\\("),
		{0, 1, '(', 0xFF, ')', '\\'},
	}
	for _, in := range cases {
		escaped := Escape(in)

		// every metacharacter must be preceded by an added backslash
		for i := 0; i < len(escaped); i++ {
			c := escaped[i]
			if c == '\\' {
				i++ // skip the escaped byte
				continue
			}
			if c == '(' || c == ')' {
				t.Errorf("Escape(%q): unescaped %q at %d", in, c, i)
			}
		}

		back := Unescape(escaped)
		if d := cmp.Diff(in, back); d != "" {
			t.Errorf("Escape/Unescape round trip for %q (-want +got):\n%s",
				in, d)
		}
	}
}

func TestTextString(t *testing.T) {
	if got := format(TextString("hello")); got != "(hello)" {
		t.Errorf("ASCII text string: got %q", got)
	}

	s := TextString("Größenwahn")
	if len(s) < 2 || s[0] != 0xFE || s[1] != 0xFF {
		t.Errorf("non-ASCII text string lacks BOM: % x", []byte(s))
	}
}

func TestDate(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 5, 0, time.UTC)
	got := format(Date(when))
	want := "(D:20240301120005+00'00)"
	if got != want {
		t.Errorf("Date: got %q, want %q", got, want)
	}
}

func TestStreamLength(t *testing.T) {
	stream := &Stream{
		Dict: Dict{"Foo": Name("bar")},
		Data: []byte("0123456789"),
	}
	buf := &bytes.Buffer{}
	err := stream.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("/Length 10")) {
		t.Errorf("missing /Length entry: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Foo /bar")) {
		t.Errorf("stream dictionary entry lost: %q", out)
	}
}
