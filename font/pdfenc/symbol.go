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

// Symbol is the built-in encoding of the Symbol font.
// See Annex D.5 of ISO 32000-2:2020.
var Symbol = newEncoding("", &symbolGlyphNames, false)

var symbolGlyphNames = [256]string{
	0o040: "space", "exclam", "universal", "numbersign",
	"existential", "percent", "ampersand", "suchthat",
	0o050: "parenleft", "parenright", "asteriskmath", "plus",
	"comma", "minus", "period", "slash",
	0o060: "zero", "one", "two", "three",
	"four", "five", "six", "seven",
	0o070: "eight", "nine", "colon", "semicolon",
	"less", "equal", "greater", "question",
	0o100: "congruent", "Alpha", "Beta", "Chi",
	"Delta", "Epsilon", "Phi", "Gamma",
	0o110: "Eta", "Iota", "theta1", "Kappa",
	"Lambda", "Mu", "Nu", "Omicron",
	0o120: "Pi", "Theta", "Rho", "Sigma",
	"Tau", "Upsilon", "sigma1", "Omega",
	0o130: "Xi", "Psi", "Zeta", "bracketleft",
	"therefore", "bracketright", "perpendicular", "underscore",
	0o140: "radicalex", "alpha", "beta", "chi",
	"delta", "epsilon", "phi", "gamma",
	0o150: "eta", "iota", "phi1", "kappa",
	"lambda", "mu", "nu", "omicron",
	0o160: "pi", "theta", "rho", "sigma",
	"tau", "upsilon", "omega1", "omega",
	0o170: "xi", "psi", "zeta", "braceleft",
	"bar", "braceright", "similar",
	0o240: "Euro", "Upsilon1", "minute", "lessequal",
	"fraction", "infinity", "florin", "club",
	0o250: "diamond", "heart", "spade", "arrowboth",
	"arrowleft", "arrowup", "arrowright", "arrowdown",
	0o260: "degree", "plusminus", "second", "greaterequal",
	"multiply", "proportional", "partialdiff", "bullet",
	0o270: "divide", "notequal", "equivalence", "approxequal",
	"ellipsis", "arrowvertex", "arrowhorizex", "carriagereturn",
	0o300: "aleph", "Ifraktur", "Rfraktur", "weierstrass",
	"circlemultiply", "circleplus", "emptyset", "intersection",
	0o310: "union", "propersuperset", "reflexsuperset", "notsubset",
	"propersubset", "reflexsubset", "element", "notelement",
	0o320: "angle", "gradient", "registerserif", "copyrightserif",
	"trademarkserif", "product", "radical", "dotmath",
	0o330: "logicalnot", "logicaland", "logicalor", "arrowdblboth",
	"arrowdblleft", "arrowdblup", "arrowdblright", "arrowdbldown",
	0o340: "lozenge", "angleleft", "registersans", "copyrightsans",
	"trademarksans", "summation", "parenlefttp", "parenleftex",
	0o350: "parenleftbt", "bracketlefttp", "bracketleftex", "bracketleftbt",
	"bracelefttp", "braceleftmid", "braceleftbt", "braceex",
	0o361: "angleright", "integral", "integraltp",
	"integralex", "integralbt", "parenrighttp", "parenrightex",
	0o370: "parenrightbt", "bracketrighttp", "bracketrightex", "bracketrightbt",
	"bracerighttp", "bracerightmid", "bracerightbt",
}
