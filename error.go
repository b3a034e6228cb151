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

import "fmt"

// DanglingReferenceError indicates that an allocated object number was never
// written to the file.  This is a bug in the code which constructed the
// document, rather than an I/O problem.
type DanglingReferenceError struct {
	Number int
}

func (err *DanglingReferenceError) Error() string {
	return fmt.Sprintf("pdfgen: object %d referenced but never written", err.Number)
}
