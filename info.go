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
	"strings"
	"time"
)

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  The zero value represents an
// empty information dictionary.
type Info struct {
	Title   string
	Author  string
	Subject string

	// Keywords lists keywords associated with the document.  Use
	// [Info.AddKeywords] to register additional keywords; registering
	// keywords repeatedly extends the list instead of replacing it.
	Keywords []string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that produced the PDF file.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time
}

// AddKeywords merges the given keywords into the keyword list.  Keywords
// which are already present are not duplicated.
func (info *Info) AddKeywords(keywords ...string) {
	for _, kw := range keywords {
		found := false
		for _, old := range info.Keywords {
			if old == kw {
				found = true
				break
			}
		}
		if !found {
			info.Keywords = append(info.Keywords, kw)
		}
	}
}

// AsDict returns the document information dictionary, or nil if all fields
// are empty.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	if info.Title != "" {
		dict["Title"] = TextString(info.Title)
	}
	if info.Author != "" {
		dict["Author"] = TextString(info.Author)
	}
	if info.Subject != "" {
		dict["Subject"] = TextString(info.Subject)
	}
	if len(info.Keywords) > 0 {
		dict["Keywords"] = TextString(strings.Join(info.Keywords, ", "))
	}
	if info.Creator != "" {
		dict["Creator"] = TextString(info.Creator)
	}
	if info.Producer != "" {
		dict["Producer"] = TextString(info.Producer)
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	if len(dict) == 0 {
		return nil
	}
	return dict
}
