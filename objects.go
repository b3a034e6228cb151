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
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"seehuhn.de/go/pdfgen/internal/float"
)

// Object represents an object in a PDF file.  There are nine native types of
// PDF objects, which implement this interface: Array, Bool, Dict, Integer,
// Name, Real, Reference, Stream, and String.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the Object interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Object interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Real represents a real number in a PDF file.
type Real float64

// PDF implements the Object interface.
func (x Real) PDF(w io.Writer) error {
	_, err := w.Write([]byte(float.Format(float64(x), 6)))
	return err
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context; the bytes are written as given,
// except that the three string metacharacters are escaped.
type String []byte

// PDF implements the Object interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	buf.Write(Escape(x))
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// Escape rewrites the three PDF string metacharacters, backslash and the two
// parentheses, each as a two-byte escape sequence.  All other bytes are
// copied unchanged.  The argument must already be in the string's final
// byte encoding; escaping encoded bytes is what keeps multi-byte text
// encodings intact.
func Escape(s []byte) []byte {
	n := 0
	for _, c := range s {
		if c == '\\' || c == '(' || c == ')' {
			n++
		}
	}
	if n == 0 {
		return s
	}
	out := make([]byte, 0, len(s)+n)
	for _, c := range s {
		if c == '\\' || c == '(' || c == ')' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return out
}

// Unescape reverses the escaping rule applied by [Escape].
func Unescape(s []byte) []byte {
	out := make([]byte, 0, len(s))
	esc := false
	for _, c := range s {
		if !esc && c == '\\' {
			esc = true
			continue
		}
		esc = false
		out = append(out, c)
	}
	return out
}

// TextString creates a String object using the "text string" encoding:
// plain ASCII where possible, UTF-16BE with a byte order mark otherwise.
func TextString(s string) String {
	isASCII := true
	for _, r := range s {
		if r < 32 || r >= 127 {
			isASCII = false
			break
		}
	}
	if isASCII {
		return String(s)
	}

	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(enc)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range enc {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the Object interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for i := 0; i < len(x); i++ {
		c := x[i]
		if c < 0x21 || c > 0x7e || c == '#' ||
			strings.IndexByte("()<>[]{}/%", c) >= 0 {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Array represents an array of objects in a PDF file.
type Array []Object

// PDF implements the Object interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = w.Write([]byte("null"))
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// Dict represents a dictionary object in a PDF file.
type Dict map[Name]Object

// PDF implements the Object interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}

	keys := make([]Name, 0, len(x))
	for key := range x {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	for _, name := range keys {
		val := x[name]
		if val == nil {
			continue
		}

		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>"))
	return err
}

// Stream represents a stream object in a PDF file.  Data holds the raw,
// unfiltered stream payload; the Length entry of the stream dictionary is
// derived from the payload when the object is written.
type Stream struct {
	Dict Dict
	Data []byte
}

// PDF implements the Object interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := Dict{}
	for key, val := range x.Dict {
		dict[key] = val
	}
	dict["Length"] = Integer(len(x.Data))

	err := dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(x.Data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}

// Reference refers to an indirect object in a PDF file.  It is a non-owning
// lookup key: the referenced object lives in the file, not in the Reference.
// The zero value does not refer to any object.
type Reference struct {
	Number     int
	Generation uint16
}

// IsZero reports whether the reference is unset.
func (x Reference) IsZero() bool {
	return x == Reference{}
}

// PDF implements the Object interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	return err
}

// Rectangle represents a PDF rectangle, given by two diagonally opposite
// corners in default user space units.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// PDF implements the Object interface.
func (r *Rectangle) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "[%s %s %s %s]",
		float.Format(r.LLx, 2), float.Format(r.LLy, 2),
		float.Format(r.URx, 2), float.Format(r.URy, 2))
	return err
}

func format(obj Object) string {
	buf := &bytes.Buffer{}
	if obj == nil {
		buf.WriteString("null")
	} else {
		_ = obj.PDF(buf)
	}
	return buf.String()
}
