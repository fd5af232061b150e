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

// Package prosody derives syllable and stress information from a
// single pronunciation variant. All the functions are pure; when a
// word has multiple variants the caller picks which one to analyze
// (typically the primary one).
package prosody

import (
	"strconv"
	"strings"

	"phonq/dict"
)

// SyllableCount returns the number of syllables of a pronunciation,
// i.e. the number of its stress-bearing (vowel) phonemes. It never
// exceeds the total number of phonemes.
func SyllableCount(p dict.Pronunciation) int {
	var ans int
	for _, ph := range p {
		if ph.IsVowel() {
			ans++
		}
	}
	return ans
}

// StressPattern returns the stress digits of all the vowel phonemes
// in their phoneme order.
func StressPattern(p dict.Pronunciation) []int {
	ans := make([]int, 0, len(p))
	for _, ph := range p {
		if ph.IsVowel() {
			ans = append(ans, ph.Stress)
		}
	}
	return ans
}

// PatternString renders a stress pattern in the compact form,
// e.g. [0 1] => "01".
func PatternString(pattern []int) string {
	var b strings.Builder
	for _, v := range pattern {
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
