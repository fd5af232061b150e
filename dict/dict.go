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

// Package dict provides an in-memory index over a pronouncing
// dictionary in the CMUdict text format. The index is built once
// from a whole-file source and is read-only afterwards, which makes
// it safe for unsynchronized concurrent reads.
package dict

import (
	"strconv"
	"strings"
)

// NoStress marks a phoneme which carries no stress digit,
// i.e. a consonant. Vowel phonemes always carry 0, 1 or 2.
const NoStress = -1

// Phoneme is a single token of a phonemic transcription - an
// ARPAbet symbol plus an optional stress digit. The digit is
// present if and only if the symbol denotes a vowel.
type Phoneme struct {
	Symbol string
	Stress int
}

// IsVowel tests whether the phoneme carries a stress digit.
func (p Phoneme) IsVowel() bool {
	return p.Stress != NoStress
}

// String returns the token in its source form, e.g. "AE1" or "K".
func (p Phoneme) String() string {
	if p.Stress == NoStress {
		return p.Symbol
	}
	return p.Symbol + strconv.Itoa(p.Stress)
}

// Pronunciation is one complete phonemic rendering of a word.
// It is an ordered, non-empty sequence of phonemes and is never
// modified once parsed.
type Pronunciation []Phoneme

// String returns the space-joined source form of the pronunciation.
func (p Pronunciation) String() string {
	var b strings.Builder
	for i, ph := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ph.String())
	}
	return b.String()
}

// Tokens returns the source forms of all the phonemes.
func (p Pronunciation) Tokens() []string {
	ans := make([]string, len(p))
	for i, ph := range p {
		ans[i] = ph.String()
	}
	return ans
}

// NormalizeKey converts a word to the canonical form used for all
// index keys. Every consumer of the index (lookup, rhyme queries,
// wildcard search) must apply the same normalization so lookups
// stay case-insensitive.
func NormalizeKey(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
