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
	"fmt"
	"regexp"
	"strings"
)

var (
	variantSuffix = regexp.MustCompile(`\(\d+\)$`)
)

// Record is a successfully parsed dictionary line - a normalized
// word key plus one pronunciation variant.
type Record struct {
	Key  string
	Pron Pronunciation
}

func parsePhoneme(tok string) (Phoneme, error) {
	letters := tok
	stress := NoStress
	if last := tok[len(tok)-1]; last >= '0' && last <= '9' {
		if last > '2' {
			return Phoneme{}, fmt.Errorf("invalid stress digit in token `%s`", tok)
		}
		letters = tok[:len(tok)-1]
		stress = int(last - '0')
	}
	if letters == "" {
		return Phoneme{}, fmt.Errorf("empty phoneme symbol in token `%s`", tok)
	}
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return Phoneme{}, fmt.Errorf("invalid phoneme symbol `%s`", tok)
		}
	}
	return Phoneme{Symbol: strings.ToUpper(letters), Stress: stress}, nil
}

// ParseLine parses one raw dictionary line. The returned bool tells
// whether the line carried a record at all - blank lines and comment
// lines produce (zero, false, nil). Anything from the first `#` on
// is treated as a comment. A spelling may carry a parenthesized
// variant suffix (e.g. `WORD(2)`); the suffix is stripped and
// discarded as it is redundant with the variant's list position.
func ParseLine(line string) (Record, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, false, nil
	}
	if len(fields) < 2 {
		return Record{}, false, MalformedRecordError{
			Line:   line,
			Reason: fmt.Sprintf("expected a spelling and at least one phoneme, found `%s`", fields[0]),
		}
	}
	key := NormalizeKey(variantSuffix.ReplaceAllString(fields[0], ""))
	if key == "" {
		return Record{}, false, MalformedRecordError{
			Line:   line,
			Reason: fmt.Sprintf("empty spelling in `%s`", fields[0]),
		}
	}
	pron := make(Pronunciation, len(fields)-1)
	for i, tok := range fields[1:] {
		ph, err := parsePhoneme(tok)
		if err != nil {
			return Record{}, false, MalformedRecordError{Line: line, Reason: err.Error()}
		}
		pron[i] = ph
	}
	return Record{Key: key, Pron: pron}, true, nil
}
