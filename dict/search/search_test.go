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

package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"phonq/dict"
)

const testSource = `CAT  K AE1 T
CATS  K AE1 T S
DOG  D AO1 G
CONCAT  K AA1 N K AE2 T
`

func buildTestIndex() *dict.Index {
	return dict.Build(strings.NewReader(testSource))
}

func TestSearchPrefixWildcard(t *testing.T) {
	ans := Search(buildTestIndex(), "ca*", 10)
	assert.Equal(t, []string{"CAT", "CATS"}, ans)
}

func TestSearchSuffixWildcard(t *testing.T) {
	ans := Search(buildTestIndex(), "*cat", 10)
	assert.Equal(t, []string{"CAT", "CONCAT"}, ans)
}

func TestSearchStarOnly(t *testing.T) {
	ans := Search(buildTestIndex(), "*", 10)
	assert.Equal(t, []string{"CAT", "CATS", "CONCAT", "DOG"}, ans)
}

func TestSearchExactPattern(t *testing.T) {
	ans := Search(buildTestIndex(), "cat", 10)
	assert.Equal(t, []string{"CAT"}, ans)
}

func TestSearchExactPatternMissing(t *testing.T) {
	ans := Search(buildTestIndex(), "zebra", 10)
	assert.Empty(t, ans)
}

func TestSearchIsAnchored(t *testing.T) {
	// no wildcard means full-string equality, never substring
	ans := Search(buildTestIndex(), "at", 10)
	assert.Empty(t, ans)
}

func TestSearchMaxItems(t *testing.T) {
	ans := Search(buildTestIndex(), "*", 2)
	assert.Equal(t, []string{"CAT", "CATS"}, ans)
}

func TestSearchNonPositiveMaxItems(t *testing.T) {
	assert.Empty(t, Search(buildTestIndex(), "*", 0))
	assert.Empty(t, Search(buildTestIndex(), "*", -1))
}

func TestMatchInnerWildcard(t *testing.T) {
	p := Compile("c*t")
	assert.True(t, p.Match("CAT"))
	assert.True(t, p.Match("CONCAT"))
	assert.False(t, p.Match("CATS"))
}

func TestMatchAdjacentStars(t *testing.T) {
	p := Compile("c**t")
	assert.True(t, p.Match("CAT"))
	assert.True(t, p.Match("CT"))
}

func TestMatchStarMatchesEmptyRun(t *testing.T) {
	p := Compile("cat*")
	assert.True(t, p.Match("CAT"))
}

func TestMatchOverlappingSuffix(t *testing.T) {
	p := Compile("a*a")
	assert.False(t, p.Match("A"))
	assert.True(t, p.Match("AA"))
	assert.True(t, p.Match("ABBA"))
}

func TestCompileHasWildcard(t *testing.T) {
	assert.True(t, Compile("ca*").HasWildcard())
	assert.False(t, Compile("cat").HasWildcard())
}
