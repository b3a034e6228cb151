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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		out    string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{-1, 3, "-1"},
		{1.5, 3, "1.5"},
		{1.25, 1, "1.2"},
		{0.5, 3, "0.5"},
		{-0.0001, 3, "0"},
		{100, 3, "100"},
		{612, 2, "612"},
		{841.889, 2, "841.89"},
		{0.551915024494, 6, "0.551915"},
	}
	for _, test := range cases {
		got := Format(test.x, test.digits)
		if got != test.out {
			t.Errorf("Format(%g, %d) = %q, want %q",
				test.x, test.digits, got, test.out)
		}
	}
}
