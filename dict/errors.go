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
	"encoding/json"
	"fmt"
)

// MalformedRecordError describes a single unparseable source line.
// It is always recovered locally - the loader skips and counts the
// line and goes on with the rest of the file.
type MalformedRecordError struct {
	LineNo int
	Line   string
	Reason string
}

func (err MalformedRecordError) Error() string {
	if err.LineNo > 0 {
		return fmt.Sprintf("malformed record at line %d: %s", err.LineNo, err.Reason)
	}
	return fmt.Sprintf("malformed record: %s", err.Reason)
}

func (err MalformedRecordError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ----------------------------

// WordNotFoundError is returned by queries referring to a word
// absent from the index. It is never silently defaulted - callers
// must be able to tell "unknown word" from "known word, empty
// result".
type WordNotFoundError struct {
	Word string
}

func (err WordNotFoundError) Error() string {
	return fmt.Sprintf("word `%s` not found", err.Word)
}

func (err WordNotFoundError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}
