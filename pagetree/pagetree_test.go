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

package pagetree

import (
	"bytes"
	"fmt"
	"testing"

	pdf "seehuhn.de/go/pdfgen"
)

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	out, err := pdf.NewWriter(buf, pdf.V1_7)
	if err != nil {
		t.Fatal(err)
	}

	mediaBox := &pdf.Rectangle{URx: 612, URy: 792}
	tree := NewWriter(out, mediaBox)

	var pageRefs []pdf.Reference
	for i := 0; i < 3; i++ {
		ref, err := tree.AppendPage(pdf.Dict{})
		if err != nil {
			t.Fatal(err)
		}
		pageRefs = append(pageRefs, ref)
	}
	if tree.NumPages() != 3 {
		t.Errorf("NumPages = %d", tree.NumPages())
	}

	err = tree.Close()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tree.AppendPage(pdf.Dict{}); err == nil {
		t.Error("AppendPage succeeded on a closed tree")
	}

	root, err := out.WriteObject(pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": tree.Ref,
	})
	if err != nil {
		t.Fatal(err)
	}
	err = out.Close(root, pdf.Reference{})
	if err != nil {
		t.Fatal(err)
	}

	body := buf.Bytes()
	// every page names the /Pages node as its parent
	parent := fmt.Sprintf("/Parent %d 0 R", tree.Ref.Number)
	if n := bytes.Count(body, []byte(parent)); n != 3 {
		t.Errorf("found %d /Parent entries", n)
	}
	kids := fmt.Sprintf("/Kids [%d 0 R %d 0 R %d 0 R]",
		pageRefs[0].Number, pageRefs[1].Number, pageRefs[2].Number)
	for _, want := range []string{
		"/Type /Pages",
		"/Count 3",
		"/MediaBox [0 0 612 792]",
		kids,
	} {
		if !bytes.Contains(body, []byte(want)) {
			t.Errorf("missing %q", want)
		}
	}
}
