// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of PHONQ.
//
//  PHONQ is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  PHONQ is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with PHONQ.  If not, see <https://www.gnu.org/licenses/>.

// Package ipa transliterates ARPAbet pronunciations into a simple
// IPA rendering. The table covers the standard CMUdict symbol set
// plus the AX/AXR/IX/EL/EM/EN extension symbols.
package ipa

import (
	"strings"

	"phonq/dict"
)

var arpaToIPA = map[string]string{
	"AA":  "ɑ",
	"AE":  "æ",
	"AH":  "ʌ",
	"AO":  "ɔ",
	"AW":  "aʊ",
	"AY":  "aɪ",
	"EH":  "ɛ",
	"ER":  "ɝ",
	"EY":  "eɪ",
	"IH":  "ɪ",
	"IY":  "i",
	"OW":  "oʊ",
	"OY":  "ɔɪ",
	"UH":  "ʊ",
	"UW":  "u",
	"AX":  "ə",
	"AXR": "ɚ",
	"IX":  "ɨ",
	"EL":  "l̩",
	"EM":  "m̩",
	"EN":  "n̩",
	"B":   "b",
	"CH":  "tʃ",
	"D":   "d",
	"DH":  "ð",
	"DX":  "ɾ",
	"F":   "f",
	"G":   "ɡ",
	"HH":  "h",
	"JH":  "dʒ",
	"K":   "k",
	"L":   "l",
	"M":   "m",
	"N":   "n",
	"NG":  "ŋ",
	"P":   "p",
	"R":   "ɹ",
	"S":   "s",
	"SH":  "ʃ",
	"T":   "t",
	"TH":  "θ",
	"V":   "v",
	"W":   "w",
	"Y":   "j",
	"Z":   "z",
	"ZH":  "ʒ",
}

// Transcribe renders a pronunciation as a space-joined IPA string
// wrapped in slashes, e.g. /h ʌ l oʊ/. An unknown base symbol
// passes through lowercased; the function is total.
func Transcribe(p dict.Pronunciation) string {
	symbols := make([]string, len(p))
	for i, ph := range p {
		if v, ok := arpaToIPA[ph.Symbol]; ok {
			symbols[i] = v

		} else {
			symbols[i] = strings.ToLower(ph.Symbol)
		}
	}
	return "/" + strings.Join(symbols, " ") + "/"
}
