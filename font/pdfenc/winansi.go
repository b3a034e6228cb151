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

package pdfenc

// WinAnsi is the Windows code page 1252 encoding, used by the Latin text
// fonts.  See Annex D.3 of ISO 32000-2:2020.
var WinAnsi = newEncoding("WinAnsiEncoding", &winAnsiGlyphNames, false)

var winAnsiGlyphNames = [256]string{
	0o040: "space", "exclam", "quotedbl", "numbersign",
	"dollar", "percent", "ampersand", "quotesingle",
	0o050: "parenleft", "parenright", "asterisk", "plus",
	"comma", "hyphen", "period", "slash",
	0o060: "zero", "one", "two", "three",
	"four", "five", "six", "seven",
	0o070: "eight", "nine", "colon", "semicolon",
	"less", "equal", "greater", "question",
	0o100: "at", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K",
	"L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X",
	"Y", "Z",
	0o133: "bracketleft", "backslash", "bracketright",
	"asciicircum", "underscore",
	0o140: "grave", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k",
	"l", "m", "n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x",
	"y", "z",
	0o173: "braceleft", "bar", "braceright", "asciitilde",
	0o200: "Euro",
	0o202: "quotesinglbase", "florin",
	"quotedblbase", "ellipsis", "dagger", "daggerdbl",
	0o210: "circumflex", "perthousand", "Scaron", "guilsinglleft", "OE",
	0o216: "Zcaron",
	0o221: "quoteleft", "quoteright", "quotedblleft",
	"quotedblright", "bullet", "endash", "emdash",
	0o230: "tilde", "trademark", "scaron", "guilsinglright", "oe",
	0o236: "zcaron", "Ydieresis",
	0o241: "exclamdown", "cent", "sterling",
	"currency", "yen", "brokenbar", "section",
	0o250: "dieresis", "copyright", "ordfeminine", "guillemotleft",
	"logicalnot", "hyphen", "registered", "macron",
	0o260: "degree", "plusminus", "twosuperior", "threesuperior",
	"acute", "mu", "paragraph", "periodcentered",
	0o270: "cedilla", "onesuperior", "ordmasculine", "guillemotright",
	"onequarter", "onehalf", "threequarters", "questiondown",
	0o300: "Agrave", "Aacute", "Acircumflex", "Atilde",
	"Adieresis", "Aring", "AE", "Ccedilla",
	0o310: "Egrave", "Eacute", "Ecircumflex", "Edieresis",
	"Igrave", "Iacute", "Icircumflex", "Idieresis",
	0o320: "Eth", "Ntilde", "Ograve", "Oacute",
	"Ocircumflex", "Otilde", "Odieresis", "multiply",
	0o330: "Oslash", "Ugrave", "Uacute", "Ucircumflex",
	"Udieresis", "Yacute", "Thorn", "germandbls",
	0o340: "agrave", "aacute", "acircumflex", "atilde",
	"adieresis", "aring", "ae", "ccedilla",
	0o350: "egrave", "eacute", "ecircumflex", "edieresis",
	"igrave", "iacute", "icircumflex", "idieresis",
	0o360: "eth", "ntilde", "ograve", "oacute",
	"ocircumflex", "otilde", "odieresis", "divide",
	0o370: "oslash", "ugrave", "uacute", "ucircumflex",
	"udieresis", "yacute", "thorn", "ydieresis",
}
