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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestWriterHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-1.7\n")) {
		t.Errorf("wrong header: %q", out[:16])
	}
	// the second line must mark the file as binary
	if !bytes.HasPrefix(out[9:], []byte{'%', 0xB5, 0xED, 0xAE, 0xFB, '\n'}) {
		t.Errorf("missing binary marker: % x", out[9:15])
	}
}

func TestWriterAlloc(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 5; i++ {
		ref := w.Alloc()
		if ref.Number != i || ref.Generation != 0 {
			t.Errorf("Alloc #%d: got %d %d", i, ref.Number, ref.Generation)
		}
	}
}

func TestWriterOffsets(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	root, err := w.WriteObject(Dict{"Type": Name("Catalog")})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		_, err = w.WriteObject(Integer(i))
		if err != nil {
			t.Fatal(err)
		}
	}
	err = w.Close(root, Reference{})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()

	xrefStart := bytes.LastIndex(out, []byte("xref\n"))
	if xrefStart < 0 {
		t.Fatal("no xref table")
	}
	lines := strings.Split(string(out[xrefStart:]), "\n")
	if lines[1] != "0 5" {
		t.Fatalf("wrong subsection header %q", lines[1])
	}

	// entry 0 is the reserved free entry
	if lines[2] != "0000000000 65535 f\r" {
		t.Errorf("wrong free entry %q", lines[2])
	}

	// each in-use offset must point at the start of the object header
	for i := 1; i <= 4; i++ {
		entry := lines[2+i]
		if len(entry) != 19 { // 20 bytes with the split-off \n
			t.Errorf("entry %d has %d bytes", i, len(entry)+1)
		}
		offs, err := strconv.Atoi(entry[:10])
		if err != nil {
			t.Fatal(err)
		}
		header := fmt.Sprintf("%d 0 obj\n", i)
		if !bytes.HasPrefix(out[offs:], []byte(header)) {
			t.Errorf("offset %d for object %d points at %q",
				offs, i, out[offs:offs+10])
		}
	}

	// startxref must point at the xref table
	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(out)
	if m == nil {
		t.Fatal("no startxref")
	}
	pos, _ := strconv.Atoi(string(m[1]))
	if pos != xrefStart {
		t.Errorf("startxref %d, xref table at %d", pos, xrefStart)
	}
}

func TestWriterDanglingReference(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	root, err := w.WriteObject(Dict{"Type": Name("Catalog")})
	if err != nil {
		t.Fatal(err)
	}
	w.Alloc() // never written

	err = w.Close(root, Reference{})
	var dangling *DanglingReferenceError
	if !errors.As(err, &dangling) {
		t.Fatalf("got %v, want DanglingReferenceError", err)
	}
	if dangling.Number != 2 {
		t.Errorf("wrong object number %d", dangling.Number)
	}
}

func TestWriterPutErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	// unallocated object numbers are rejected
	err = w.Put(Reference{Number: 1}, Integer(0))
	if err == nil {
		t.Error("Put accepted an unallocated reference")
	}

	ref := w.Alloc()
	err = w.Put(ref, Integer(1))
	if err != nil {
		t.Fatal(err)
	}

	// writing the same object twice is an error
	err = w.Put(ref, Integer(2))
	if err == nil {
		t.Error("Put accepted a duplicate object")
	}
}
