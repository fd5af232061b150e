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

package phones

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSource = "AA\tvowel\nB\tstop\nCH\taffricate\nHH\taspirate\nL\tliquid\n# comment\nBROKEN LINE HERE\n\nZH\tfricative\n"

func TestLoad(t *testing.T) {
	tbl := Load(strings.NewReader(testSource))
	assert.Equal(t, 6, tbl.Len())
}

func TestCategoryOf(t *testing.T) {
	tbl := Load(strings.NewReader(testSource))
	cat, err := tbl.CategoryOf("AA")
	assert.NoError(t, err)
	assert.Equal(t, "vowel", cat)
	cat, err = tbl.CategoryOf("HH")
	assert.NoError(t, err)
	assert.Equal(t, "aspirate", cat)
}

func TestCategoryOfNormalizesCase(t *testing.T) {
	tbl := Load(strings.NewReader(testSource))
	cat, err := tbl.CategoryOf("ch")
	assert.NoError(t, err)
	assert.Equal(t, "affricate", cat)
}

func TestCategoryOfUnknownSymbol(t *testing.T) {
	tbl := Load(strings.NewReader(testSource))
	_, err := tbl.CategoryOf("QQ")
	var unk UnknownSymbolError
	assert.ErrorAs(t, err, &unk)
	assert.Equal(t, "QQ", unk.Symbol)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	tbl := Load(strings.NewReader(testSource))
	_, err := tbl.CategoryOf("BROKEN")
	assert.Error(t, err)
}

func TestSymbolsSorted(t *testing.T) {
	tbl := Load(strings.NewReader(testSource))
	assert.Equal(t, []string{"AA", "B", "CH", "HH", "L", "ZH"}, tbl.Symbols())
}

func TestLoadEmptySource(t *testing.T) {
	tbl := Load(strings.NewReader(""))
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Symbols())
}
