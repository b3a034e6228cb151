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

// Package pagetree writes the page tree of a PDF file.
//
// The tree consists of a single /Pages node holding all pages.  Pages are
// written to the file as they are appended; the node itself is written
// when the tree is closed.
package pagetree

import (
	"errors"

	pdf "seehuhn.de/go/pdfgen"
)

// Writer writes a page tree.
type Writer struct {
	Out *pdf.Writer

	// Ref refers to the root /Pages node.  The reference is allocated when
	// the Writer is created, so that page dictionaries can name their
	// /Parent before the node itself is written.
	Ref pdf.Reference

	mediaBox *pdf.Rectangle
	kids     pdf.Array
	closed   bool
}

// NewWriter creates a page tree which writes pages to the given file.
// The media box applies to all pages in the tree, via inheritance from the
// /Pages node.
func NewWriter(out *pdf.Writer, mediaBox *pdf.Rectangle) *Writer {
	return &Writer{
		Out:      out,
		Ref:      out.Alloc(),
		mediaBox: mediaBox,
	}
}

// AppendPage writes a page dictionary to the file and adds the page at the
// end of the tree.  The /Type and /Parent entries are filled in.
func (t *Writer) AppendPage(pageDict pdf.Dict) (pdf.Reference, error) {
	if t.closed {
		return pdf.Reference{}, errors.New("page tree is closed")
	}

	pageDict["Type"] = pdf.Name("Page")
	pageDict["Parent"] = t.Ref

	ref, err := t.Out.WriteObject(pageDict)
	if err != nil {
		return pdf.Reference{}, err
	}
	t.kids = append(t.kids, ref)
	return ref, nil
}

// NumPages returns the number of pages added to the tree.
func (t *Writer) NumPages() int {
	return len(t.kids)
}

// Close writes the /Pages node.  No more pages can be appended afterwards.
func (t *Writer) Close() error {
	if t.closed {
		return errors.New("page tree is closed")
	}
	t.closed = true

	dict := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  t.kids,
		"Count": pdf.Integer(len(t.kids)),
	}
	if t.mediaBox != nil {
		dict["MediaBox"] = t.mediaBox
	}
	return t.Out.Put(t.Ref, dict)
}
