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

// Package rhyme buckets dictionary words by their rhyme key - the
// stress-anchored phoneme suffix two words must share (token for
// token, stress digits included) to rhyme.
package rhyme

import (
	"phonq/dict"
)

// Key is the string form of a rhyme key (space-joined phoneme
// tokens). An empty key belongs to a pronunciation with no vowels;
// such pronunciations participate in no rhyme bucket.
type Key string

func (k Key) IsEmpty() bool {
	return k == ""
}

// KeyOf computes the rhyme key of a pronunciation: the suffix
// starting at the last vowel carrying primary stress, or - when no
// primary-stressed vowel exists (unstressed function words) - at
// the last vowel of any stress.
func KeyOf(p dict.Pronunciation) Key {
	anchor := -1
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsVowel() {
			continue
		}
		if p[i].Stress == 1 {
			anchor = i
			break
		}
		if anchor == -1 {
			anchor = i
		}
	}
	if anchor == -1 {
		return ""
	}
	return Key(p[anchor:].String())
}

// Table maps rhyme keys to the words whose primary pronunciation
// produces that key. It is derived from a completed index and is
// rebuilt along with it.
type Table struct {
	ix      *dict.Index
	buckets map[Key][]string
}

// BuildTable derives a rhyme table from an index. Buckets inherit
// the index's ascending lexicographic key order, so rhyme results
// are deterministic across runs.
func BuildTable(ix *dict.Index) *Table {
	ans := &Table{
		ix:      ix,
		buckets: make(map[Key][]string),
	}
	ix.ForEachKey(func(word string) bool {
		prons, _ := ix.Lookup(word)
		rk := KeyOf(prons[0])
		if !rk.IsEmpty() {
			ans.buckets[rk] = append(ans.buckets[rk], word)
		}
		return true
	})
	return ans
}

// NumBuckets returns the number of distinct rhyme keys.
func (t *Table) NumBuckets() int {
	return len(t.buckets)
}

// FindRhymes returns up to maxItems words rhyming with word, in
// ascending lexicographic order, the queried word itself excluded.
// A word absent from the dictionary produces WordNotFoundError -
// the engine never guesses rhymes from spelling. A non-positive
// maxItems yields an empty result, not an error.
func (t *Table) FindRhymes(word string, maxItems int) ([]string, error) {
	key := dict.NormalizeKey(word)
	prons, ok := t.ix.Lookup(key)
	if !ok {
		return nil, dict.WordNotFoundError{Word: word}
	}
	ans := []string{}
	if maxItems <= 0 {
		return ans, nil
	}
	rk := KeyOf(prons[0])
	if rk.IsEmpty() {
		return ans, nil
	}
	for _, w := range t.buckets[rk] {
		if w == key {
			continue
		}
		ans = append(ans, w)
		if len(ans) == maxItems {
			break
		}
	}
	return ans, nil
}
