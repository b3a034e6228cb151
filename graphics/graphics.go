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

// Package graphics generates PDF content streams.
//
// A [Writer] provides methods corresponding to the PDF graphics operators.
// Each method appends operator syntax to the content stream and keeps the
// graphics state tracked by the writer in sync with the state a PDF viewer
// would reconstruct when rendering the stream.
package graphics

import (
	"math"

	"seehuhn.de/go/pdfgen/internal/float"
)

// objectType represents the graphics objects of section 8.2 of
// ISO 32000-2:2020.  Most operators are only allowed while the content
// stream is inside specific graphics objects.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
	objClippingPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	case objClippingPath:
		return "clipping path"
	default:
		return "invalid"
	}
}

func format(x float64) string {
	return float.Format(x, 3)
}

func nearlyEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) < eps
}

func sliceNearlyEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if !nearlyEqual(x, b[i]) {
			return false
		}
	}
	return true
}
