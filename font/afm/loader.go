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

package afm

import (
	"fmt"
	"io/fs"
)

// Loader reads font metrics from a file system and caches the results.
//
// The cache is never evicted, so metrics for each font are parsed at most
// once per Loader.  A Loader must not be used concurrently from different
// goroutines.
type Loader struct {
	fsys  fs.FS
	cache map[string]*Metrics
}

// NewLoader creates a Loader which reads metrics files from the given file
// system.  For a font name "X", the loader expects a file "X.afm".
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Metrics),
	}
}

// Load returns the metrics for the named font.
func (l *Loader) Load(fontName string) (*Metrics, error) {
	if m, ok := l.cache[fontName]; ok {
		return m, nil
	}

	fd, err := l.fsys.Open(fontName + ".afm")
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	m, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontName, err)
	}
	if m.FontName != fontName {
		return nil, fmt.Errorf("%s: metrics are for font %q",
			fontName, m.FontName)
	}

	l.cache[fontName] = m
	return m, nil
}
