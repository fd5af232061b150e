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

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"phonq/dict"
	"phonq/dict/ipa"
	"phonq/dict/loader"
	"phonq/dict/prosody"
)

const (
	dfltRhymesMaxItems = 50
	dfltSearchMaxItems = 20
)

// pronVariant is the plain-data view of one pronunciation variant
// as exposed by the API.
type pronVariant struct {
	Phonemes      []string `json:"phonemes"`
	ARPA          string   `json:"arpa"`
	IPA           string   `json:"ipa"`
	Syllables     int      `json:"syllables"`
	StressPattern string   `json:"stressPattern"`
}

func describeVariant(p dict.Pronunciation) pronVariant {
	pattern := prosody.StressPattern(p)
	return pronVariant{
		Phonemes:      p.Tokens(),
		ARPA:          p.String(),
		IPA:           ipa.Transcribe(p),
		Syllables:     prosody.SyllableCount(p),
		StressPattern: prosody.PatternString(pattern),
	}
}

func spacedPattern(pattern []int) string {
	items := make([]string, len(pattern))
	for i, v := range pattern {
		items[i] = strconv.Itoa(v)
	}
	return strings.Join(items, " ")
}

// lookupOrRespondError fetches a word's pronunciation variants and
// writes the 404 error response itself when the word is unknown -
// distinguishing "unknown word" from any successful empty answer.
func lookupOrRespondError(
	ctx *gin.Context,
	snap *loader.Snapshot,
	word string,
) ([]dict.Pronunciation, bool) {
	prons, ok := snap.Dict.Lookup(word)
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(dict.WordNotFoundError{Word: word}),
			http.StatusNotFound,
		)
		return nil, false
	}
	return prons, true
}
