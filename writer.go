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
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Version represents a version of PDF standard.
type Version int

// Constants for the supported PDF versions.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
)

func (ver Version) String() string {
	return fmt.Sprintf("1.%d", int(ver))
}

// Writer represents a PDF file open for writing.
//
// Indirect objects are serialized in the order they are given to [Writer.Put],
// and the byte offset of every object is recorded as it is written.  [Writer.Close]
// emits the cross-reference table and the file trailer.
type Writer struct {
	Version Version

	w       *posWriter
	xref    map[int]*xRefEntry
	nextRef int
	closed  bool
}

type xRefEntry struct {
	Pos        int64
	Generation uint16
}

// NewWriter prepares a PDF file for writing.
//
// The file header, including the binary marker comment, is written
// immediately.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	if ver < V1_4 || ver > V1_7 {
		return nil, fmt.Errorf("unsupported PDF version 1.%d", int(ver))
	}

	pdf := &Writer{
		Version: ver,

		w:       &posWriter{w: w},
		xref:    make(map[int]*xRefEntry),
		nextRef: 1,
	}
	pdf.xref[0] = &xRefEntry{
		Pos:        -1,
		Generation: 65535,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\xB5\xED\xAE\xFB\n", ver)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
//
// Object numbers are assigned in increasing order, starting at 1, and are
// never reused.  Every allocated number must be given to [Writer.Put] before the
// file is closed.
func (pdf *Writer) Alloc() Reference {
	ref := Reference{Number: pdf.nextRef}
	pdf.nextRef++
	return ref
}

// Put writes obj to the PDF file as the indirect object ref.
//
// The reference must have been returned by [Writer.Alloc], and each reference can
// be written only once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.closed {
		return errors.New("write after close")
	}
	if ref.Number <= 0 || ref.Number >= pdf.nextRef {
		return fmt.Errorf("invalid object number %d", ref.Number)
	}
	if _, seen := pdf.xref[ref.Number]; seen {
		return fmt.Errorf("object %d already written", ref.Number)
	}
	if obj == nil {
		return errors.New("missing object")
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
	if err != nil {
		return err
	}
	err = obj.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	if err != nil {
		return err
	}

	pdf.xref[ref.Number] = &xRefEntry{Pos: pos, Generation: ref.Generation}
	return nil
}

// WriteObject allocates a new object number and writes obj under it.
func (pdf *Writer) WriteObject(obj Object) (Reference, error) {
	ref := pdf.Alloc()
	err := pdf.Put(ref, obj)
	if err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// Close writes the cross-reference table and the file trailer.
//
// The root reference must point at the document catalog.  If any allocated
// object number was never written, Close fails with a
// [DanglingReferenceError] and no trailer is emitted.
func (pdf *Writer) Close(root Reference, info Reference) error {
	if pdf.closed {
		return errors.New("already closed")
	}
	if root.IsZero() {
		return errors.New("missing /Root")
	}
	for number := 1; number < pdf.nextRef; number++ {
		if _, ok := pdf.xref[number]; !ok {
			return &DanglingReferenceError{Number: number}
		}
	}
	if _, ok := pdf.xref[root.Number]; !ok {
		return &DanglingReferenceError{Number: root.Number}
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": root,
	}
	if !info.IsZero() {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable()
	if err != nil {
		return err
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	pdf.closed = true
	return nil
}

// writeXRefTable writes the cross-reference section: one fixed-width,
// 20-byte entry per object number.
func (pdf *Writer) writeXRefTable() error {
	numbers := maps.Keys(pdf.xref)
	slices.Sort(numbers)

	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", len(numbers))
	if err != nil {
		return err
	}
	for _, number := range numbers {
		entry := pdf.xref[number]
		if entry.Pos < 0 {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d f\r\n",
				0, entry.Generation)
		} else {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n",
				entry.Pos, entry.Generation)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
