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

package rhyme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"phonq/dict"
)

const testSource = `CAT  K AE1 T
BAT  B AE1 T
HAT  HH AE1 T
SCAT  S K AE1 T
DOG  D AO1 G
THE  DH AH0
A  AH0
SHH  SH
PHOTOGRAPH  F OW1 T AH0 G R AE2 F
`

func buildTestTable(t *testing.T) *Table {
	ix := dict.Build(strings.NewReader(testSource))
	assert.Equal(t, 0, ix.Stats().Skipped)
	return BuildTable(ix)
}

func TestKeyOfAnchorsOnPrimaryStress(t *testing.T) {
	rec, _, err := dict.ParseLine("PHOTOGRAPH  F OW1 T AH0 G R AE2 F")
	assert.NoError(t, err)
	// the secondary-stressed AE2 must not win over OW1
	assert.Equal(t, Key("OW1 T AH0 G R AE2 F"), KeyOf(rec.Pron))
}

func TestKeyOfFallsBackToAnyStress(t *testing.T) {
	rec, _, err := dict.ParseLine("THE  DH AH0")
	assert.NoError(t, err)
	assert.Equal(t, Key("AH0"), KeyOf(rec.Pron))
}

func TestKeyOfNoVowels(t *testing.T) {
	rec, _, err := dict.ParseLine("SHH  SH")
	assert.NoError(t, err)
	assert.True(t, KeyOf(rec.Pron).IsEmpty())
}

func TestFindRhymesBasic(t *testing.T) {
	tbl := buildTestTable(t)
	rhymes, err := tbl.FindRhymes("cat", 10)
	assert.NoError(t, err)
	assert.Equal(t, []string{"BAT", "HAT", "SCAT"}, rhymes)
}

func TestFindRhymesExcludesQueriedWord(t *testing.T) {
	tbl := buildTestTable(t)
	rhymes, err := tbl.FindRhymes("BAT", 10)
	assert.NoError(t, err)
	assert.NotContains(t, rhymes, "BAT")
}

func TestFindRhymesSymmetry(t *testing.T) {
	tbl := buildTestTable(t)
	r1, err := tbl.FindRhymes("cat", 100)
	assert.NoError(t, err)
	assert.Contains(t, r1, "BAT")
	r2, err := tbl.FindRhymes("bat", 100)
	assert.NoError(t, err)
	assert.Contains(t, r2, "CAT")
}

func TestFindRhymesMaxItems(t *testing.T) {
	tbl := buildTestTable(t)
	rhymes, err := tbl.FindRhymes("cat", 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"BAT"}, rhymes)
}

func TestFindRhymesNonPositiveMaxItems(t *testing.T) {
	tbl := buildTestTable(t)
	rhymes, err := tbl.FindRhymes("cat", 0)
	assert.NoError(t, err)
	assert.Empty(t, rhymes)
	rhymes, err = tbl.FindRhymes("cat", -3)
	assert.NoError(t, err)
	assert.Empty(t, rhymes)
}

func TestFindRhymesUnknownWord(t *testing.T) {
	tbl := buildTestTable(t)
	_, err := tbl.FindRhymes("zebra", 10)
	var nf dict.WordNotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, "zebra", nf.Word)
}

func TestFindRhymesNoVowelWord(t *testing.T) {
	tbl := buildTestTable(t)
	// a known word with an empty rhyme key has no rhymes but is
	// still a successful (empty) answer
	rhymes, err := tbl.FindRhymes("shh", 10)
	assert.NoError(t, err)
	assert.Empty(t, rhymes)
}

func TestFindRhymesZeroResultsIsNotAnError(t *testing.T) {
	tbl := buildTestTable(t)
	rhymes, err := tbl.FindRhymes("dog", 10)
	assert.NoError(t, err)
	assert.Empty(t, rhymes)
}

func TestStressDigitsMustMatch(t *testing.T) {
	ix := dict.Build(strings.NewReader("THE  DH AH0\nDUH  D AH1\n"))
	tbl := BuildTable(ix)
	rhymes, err := tbl.FindRhymes("the", 10)
	assert.NoError(t, err)
	// AH0 vs AH1 - same symbol, different stress, no rhyme
	assert.Empty(t, rhymes)
}
