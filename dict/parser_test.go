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

package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	rec, ok, err := ParseLine("HELLO  HH AH0 L OW1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "HELLO", rec.Key)
	assert.Equal(
		t,
		Pronunciation{
			{Symbol: "HH", Stress: NoStress},
			{Symbol: "AH", Stress: 0},
			{Symbol: "L", Stress: NoStress},
			{Symbol: "OW", Stress: 1},
		},
		rec.Pron,
	)
}

func TestParseLineNormalizesCase(t *testing.T) {
	rec, ok, err := ParseLine("hello hh ah0 l ow1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "HELLO", rec.Key)
	assert.Equal(t, "HH AH0 L OW1", rec.Pron.String())
}

func TestParseLineVariantSuffix(t *testing.T) {
	rec, ok, err := ParseLine("WORD(2)  W ER1 D AH0")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "WORD", rec.Key)
	assert.Len(t, rec.Pron, 4)
}

func TestParseLineBlank(t *testing.T) {
	_, ok, err := ParseLine("   ")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestParseLineComment(t *testing.T) {
	_, ok, err := ParseLine("# just a comment")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestParseLineTrailingComment(t *testing.T) {
	rec, ok, err := ParseLine("CAT K AE1 T # a feline")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CAT", rec.Key)
	assert.Equal(t, "K AE1 T", rec.Pron.String())
}

func TestParseLineSingleToken(t *testing.T) {
	_, ok, err := ParseLine("JUSTONETOKEN")
	assert.False(t, ok)
	var merr MalformedRecordError
	assert.ErrorAs(t, err, &merr)
}

func TestParseLineInvalidStressDigit(t *testing.T) {
	_, _, err := ParseLine("FOO F AA3")
	var merr MalformedRecordError
	assert.ErrorAs(t, err, &merr)
}

func TestParseLineNonLetterSymbol(t *testing.T) {
	_, _, err := ParseLine("FOO F A-E1")
	var merr MalformedRecordError
	assert.ErrorAs(t, err, &merr)
}

func TestParseLineBareDigitToken(t *testing.T) {
	_, _, err := ParseLine("FOO 1")
	var merr MalformedRecordError
	assert.ErrorAs(t, err, &merr)
}

func TestPhonemeString(t *testing.T) {
	assert.Equal(t, "AE1", Phoneme{Symbol: "AE", Stress: 1}.String())
	assert.Equal(t, "K", Phoneme{Symbol: "K", Stress: NoStress}.String())
}
