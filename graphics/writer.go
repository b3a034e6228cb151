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

package graphics

import (
	"errors"
	"fmt"
	"io"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// ErrUnbalancedState indicates that a content stream was closed while a
// graphics state save or a text object was still open.
var ErrUnbalancedState = errors.New("unbalanced graphics state")

// Writer writes a PDF content stream.
//
// In case of errors, the first error is stored in the Err field and all
// subsequent method calls are ignored.
type Writer struct {
	Content io.Writer
	Err     error

	currentObject objectType

	State
	stack   []State
	nesting []pairType

	fontNames map[*font.Instance]pdf.Name
	fontOrder []*font.Instance
}

// pairType tracks operators which must occur in matched pairs.
type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// NewWriter allocates a new Writer which appends operators to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
		State:         NewState(),
		fontNames:     make(map[*font.Instance]pdf.Name),
	}
}

// isValid returns true if the current graphics object is one of the given
// types and w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return format(x)
}

// Close checks that the content stream is complete.  It is an error to
// close a stream with an unfinished path, an open text object, or
// unmatched graphics state saves.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.nesting) > 0 || len(w.stack) > 0 {
		w.Err = ErrUnbalancedState
		return w.Err
	}
	if w.currentObject != objPage {
		w.Err = fmt.Errorf("unfinished %q object", w.currentObject)
		return w.Err
	}
	return nil
}

// FontName returns the name under which the given font is known in the
// resource dictionary of the content stream.  Fonts are named "F1", "F2",
// … in order of first use.
func (w *Writer) FontName(inst *font.Instance) pdf.Name {
	name, ok := w.fontNames[inst]
	if !ok {
		name = pdf.Name(fmt.Sprintf("F%d", len(w.fontNames)+1))
		w.fontNames[inst] = name
		w.fontOrder = append(w.fontOrder, inst)
	}
	return name
}

// FontResources returns the /Font entry for the resource dictionary of the
// content stream, or nil if no fonts were used.
func (w *Writer) FontResources() pdf.Dict {
	if len(w.fontOrder) == 0 {
		return nil
	}
	res := pdf.Dict{}
	for _, inst := range w.fontOrder {
		res[w.fontNames[inst]] = inst.Ref
	}
	return res
}

// WithGraphicsState saves the graphics state, runs fn, and restores the
// state again.  The restore happens on every exit path, so state
// save/restore pairs written through this method always balance.
func (w *Writer) WithGraphicsState(fn func() error) (err error) {
	w.PushGraphicsState()
	if w.Err != nil {
		return w.Err
	}
	defer func() {
		w.PopGraphicsState()
		if err == nil {
			err = w.Err
		}
	}()
	return fn()
}

// TextBlock runs fn inside a BT/ET text object.  The closing ET is written
// on every exit path.
func (w *Writer) TextBlock(fn func() error) (err error) {
	w.TextStart()
	if w.Err != nil {
		return w.Err
	}
	defer func() {
		w.TextEnd()
		if err == nil {
			err = w.Err
		}
	}()
	return fn()
}
