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

package prosody

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"phonq/dict"
)

func mustParse(t *testing.T, line string) dict.Pronunciation {
	rec, ok, err := dict.ParseLine(line)
	assert.NoError(t, err)
	assert.True(t, ok)
	return rec.Pron
}

func TestSyllableCount(t *testing.T) {
	p := mustParse(t, "HELLO  HH AH0 L OW1")
	assert.Equal(t, 2, SyllableCount(p))
	assert.LessOrEqual(t, SyllableCount(p), len(p))
}

func TestSyllableCountNoVowels(t *testing.T) {
	p := mustParse(t, "SHH  SH")
	assert.Equal(t, 0, SyllableCount(p))
}

func TestStressPattern(t *testing.T) {
	p := mustParse(t, "HELLO  HH AH0 L OW1")
	assert.Equal(t, []int{0, 1}, StressPattern(p))
}

func TestStressPatternPolysyllabic(t *testing.T) {
	p := mustParse(t, "DICTIONARY  D IH1 K SH AH0 N EH2 R IY0")
	assert.Equal(t, []int{1, 0, 2, 0}, StressPattern(p))
	assert.Equal(t, 4, SyllableCount(p))
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "1020", PatternString([]int{1, 0, 2, 0}))
	assert.Equal(t, "", PatternString(nil))
}
