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

// Package search matches glob patterns against the word keys of a
// dictionary index. The only special character is `*` (zero or more
// characters); everything else matches literally and the whole key
// must match, not a substring.
package search

import (
	"strings"

	"phonq/dict"
)

// Pattern is a compiled wildcard pattern - the literal segments
// left after splitting the (case-folded) source pattern on `*`.
type Pattern struct {
	segments []string
}

// Compile turns a raw pattern into a matchable form. The pattern is
// normalized the same way as index keys, keeping the whole search
// case-insensitive.
func Compile(pattern string) Pattern {
	return Pattern{
		segments: strings.Split(dict.NormalizeKey(pattern), "*"),
	}
}

// HasWildcard tests whether the source pattern contained a `*`.
// A pattern without one degenerates to an exact-match test.
func (p Pattern) HasWildcard() bool {
	return len(p.segments) > 1
}

// Match tests a normalized word key against the pattern. The match
// is anchored at both ends.
func (p Pattern) Match(key string) bool {
	if !p.HasWildcard() {
		return key == p.segments[0]
	}
	if !strings.HasPrefix(key, p.segments[0]) {
		return false
	}
	rest := key[len(p.segments[0]):]
	for _, seg := range p.segments[1 : len(p.segments)-1] {
		idx := strings.Index(rest, seg)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(seg):]
	}
	return strings.HasSuffix(rest, p.segments[len(p.segments)-1])
}

// Search scans the index's key set in its deterministic ascending
// order and returns up to maxItems matching keys. A non-positive
// maxItems yields an empty result.
func Search(ix *dict.Index, pattern string, maxItems int) []string {
	ans := []string{}
	if maxItems <= 0 {
		return ans
	}
	p := Compile(pattern)
	ix.ForEachKey(func(key string) bool {
		if p.Match(key) {
			ans = append(ans, key)
		}
		return len(ans) < maxItems
	})
	return ans
}
