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

// Package document assembles complete PDF documents.
//
// A [Document] ties together the object writer, the page tree, font
// management and document metadata.  Clients add pages, draw onto each page
// using the embedded graphics writer, and close the document to produce
// the finished file.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/font/afm"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/pagetree"
)

// Common media boxes, in default user space units.
var (
	A4     = &pdf.Rectangle{URx: 595.275, URy: 841.889}
	A5     = &pdf.Rectangle{URx: 420.945, URy: 595.275}
	Letter = &pdf.Rectangle{URx: 612, URy: 792}
	Legal  = &pdf.Rectangle{URx: 612, URy: 1008}
)

// Document represents a PDF document while it is being constructed.
//
// The whole file is assembled in memory; the output sink receives bytes
// only after the document has been serialized completely.  A failure
// during [Document.Close] therefore never leaves a truncated file behind.
type Document struct {
	// Out writes the PDF objects of the document.
	Out *pdf.Writer

	// Info holds the document metadata.  Fields can be set at any time
	// before the document is closed.
	Info pdf.Info

	buf       *bytes.Buffer
	sink      io.Writer
	closeSink io.Closer

	tree    *pagetree.Writer
	loader  *afm.Loader
	fonts   map[font.Font]*font.Instance
	outline []*outlineItem

	page   *Page
	closed bool
}

// Create creates a PDF document which is written to the named file when
// the document is closed.
func Create(filename string, mediaBox *pdf.Rectangle, loader *afm.Loader) (*Document, error) {
	fd, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	doc, err := Write(fd, mediaBox, loader)
	if err != nil {
		fd.Close()
		return nil, err
	}
	doc.closeSink = fd
	return doc, nil
}

// Write creates a PDF document which is written to w when the document is
// closed.  The media box applies to all pages of the document; font
// metrics are loaded through the given loader.
func Write(w io.Writer, mediaBox *pdf.Rectangle, loader *afm.Loader) (*Document, error) {
	buf := &bytes.Buffer{}
	out, err := pdf.NewWriter(buf, pdf.V1_7)
	if err != nil {
		return nil, err
	}

	return &Document{
		Out:    out,
		buf:    buf,
		sink:   w,
		tree:   pagetree.NewWriter(out, mediaBox),
		loader: loader,
		fonts:  make(map[font.Font]*font.Instance),
	}, nil
}

// Font returns the document's instance of the given standard font,
// loading the metrics and embedding the font dictionary on first use.
// Each font is embedded at most once per document.
func (doc *Document) Font(f font.Font) (*font.Instance, error) {
	if doc.closed {
		return nil, errors.New("document is closed")
	}
	if inst, ok := doc.fonts[f]; ok {
		return inst, nil
	}

	inst, err := f.New(doc.loader)
	if err != nil {
		return nil, err
	}
	err = inst.Embed(doc.Out)
	if err != nil {
		return nil, err
	}
	doc.fonts[f] = inst
	return inst, nil
}

// AddPage appends a new page to the document.  The previous page, if any,
// must have been closed.
func (doc *Document) AddPage() (*Page, error) {
	if doc.closed {
		return nil, errors.New("document is closed")
	}
	if doc.page != nil {
		return nil, errors.New("previous page is still open")
	}

	buf := &bytes.Buffer{}
	page := &Page{
		Writer: graphics.NewWriter(buf),
		doc:    doc,
		buf:    buf,
	}
	doc.page = page
	return page, nil
}

// SetTitle sets the document title.
func (doc *Document) SetTitle(title string) {
	doc.Info.Title = title
}

// SetAuthor sets the name of the document author.
func (doc *Document) SetAuthor(author string) {
	doc.Info.Author = author
}

// SetSubject sets the subject of the document.
func (doc *Document) SetSubject(subject string) {
	doc.Info.Subject = subject
}

// AddKeywords merges keywords into the document's keyword list.
// Keywords registered earlier are kept.
func (doc *Document) AddKeywords(keywords ...string) {
	doc.Info.AddKeywords(keywords...)
}

// Close finishes the document and hands the complete file to the output
// sink.  No bytes reach the sink if serialization fails.
func (doc *Document) Close() error {
	if doc.closed {
		return errors.New("document is closed")
	}
	if doc.page != nil {
		return errors.New("a page is still open")
	}
	doc.closed = true

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": doc.tree.Ref,
	}

	if len(doc.outline) > 0 {
		outlinesRef, err := doc.writeOutline()
		if err != nil {
			return err
		}
		catalog["Outlines"] = outlinesRef
	}

	err := doc.tree.Close()
	if err != nil {
		return err
	}

	catalogRef, err := doc.Out.WriteObject(catalog)
	if err != nil {
		return err
	}

	var infoRef pdf.Reference
	if infoDict := doc.Info.AsDict(); infoDict != nil {
		infoRef, err = doc.Out.WriteObject(infoDict)
		if err != nil {
			return err
		}
	}

	err = doc.Out.Close(catalogRef, infoRef)
	if err != nil {
		return err
	}

	_, err = io.Copy(doc.sink, doc.buf)
	if err != nil {
		return err
	}
	if doc.closeSink != nil {
		return doc.closeSink.Close()
	}
	return nil
}

// Page represents one page of a document while it is being drawn.
// The embedded [graphics.Writer] provides the drawing operations.
type Page struct {
	*graphics.Writer

	doc *Document
	buf *bytes.Buffer

	ref    pdf.Reference
	closed bool
}

// AddOutline registers an entry in the document outline (the table of
// bookmarks shown by PDF viewers) pointing at this page.
func (p *Page) AddOutline(title string) {
	p.doc.outline = append(p.doc.outline, &outlineItem{
		title: title,
		page:  p,
	})
}

// Close finishes the page: the content stream is written to the file and
// the page is appended to the page tree.  No drawing is possible
// afterwards.
func (p *Page) Close() error {
	if p.closed {
		return errors.New("page is closed")
	}
	err := p.Writer.Close()
	if err != nil {
		return err
	}
	p.closed = true

	contentRef, err := p.doc.Out.WriteObject(&pdf.Stream{
		Data: p.buf.Bytes(),
	})
	if err != nil {
		return err
	}

	pageDict := pdf.Dict{
		"Contents": contentRef,
	}
	resources := pdf.Dict{}
	if fonts := p.FontResources(); fonts != nil {
		resources["Font"] = fonts
	}
	pageDict["Resources"] = resources

	p.ref, err = p.doc.tree.AppendPage(pageDict)
	if err != nil {
		return err
	}
	p.doc.page = nil
	return nil
}

// outlineItem is one entry of the document outline.
type outlineItem struct {
	title string
	page  *Page
}

// writeOutline writes the outline dictionary and its items.  All items
// form a single flat level below the outline root.
func (doc *Document) writeOutline() (pdf.Reference, error) {
	rootRef := doc.Out.Alloc()
	itemRefs := make([]pdf.Reference, len(doc.outline))
	for i := range doc.outline {
		itemRefs[i] = doc.Out.Alloc()
	}

	for i, item := range doc.outline {
		if item.page.ref.IsZero() {
			return pdf.Reference{}, fmt.Errorf(
				"outline entry %q refers to an unfinished page", item.title)
		}
		dict := pdf.Dict{
			"Title":  pdf.TextString(item.title),
			"Parent": rootRef,
			"Dest": pdf.Array{
				item.page.ref, pdf.Name("XYZ"), nil, nil, nil,
			},
		}
		if i > 0 {
			dict["Prev"] = itemRefs[i-1]
		}
		if i < len(itemRefs)-1 {
			dict["Next"] = itemRefs[i+1]
		}
		err := doc.Out.Put(itemRefs[i], dict)
		if err != nil {
			return pdf.Reference{}, err
		}
	}

	root := pdf.Dict{
		"Type":  pdf.Name("Outlines"),
		"First": itemRefs[0],
		"Last":  itemRefs[len(itemRefs)-1],
		"Count": pdf.Integer(len(itemRefs)),
	}
	err := doc.Out.Put(rootRef, root)
	if err != nil {
		return pdf.Reference{}, err
	}
	return rootRef, nil
}
