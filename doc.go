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

// Package pdfgen implements the PDF object model and file writer used to
// generate new PDF documents.
//
// A PDF file is a graph of indirect objects.  The nine native object types
// (booleans, integers, real numbers, strings, names, arrays, dictionaries,
// streams and references) are represented by Go types implementing the
// [Object] interface.  A [Writer] serializes indirect objects one by one,
// keeps track of the byte offset of each object, and finally emits the
// cross-reference table and file trailer.
//
// Higher-level layers are provided by the packages in this module:
// seehuhn.de/go/pdfgen/document assembles complete documents,
// seehuhn.de/go/pdfgen/graphics generates content streams, and
// seehuhn.de/go/pdfgen/font gives access to the 14 standard PDF fonts.
package pdfgen
