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
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"phonq/dict"
	"phonq/dict/rhyme"
)

type rhymesResponse struct {
	Word        string   `json:"word"`
	RhymingPart string   `json:"rhymingPart"`
	Rhymes      []string `json:"rhymes"`
}

// Rhymes godoc
// @Summary      Rhymes
// @Description  Find words rhyming with a word, based on its primary pronunciation. An unknown word produces 404; a known word with no rhymes produces an empty list.
// @Produce      json
// @Param        word path string true "A word to find rhymes for (case-insensitive)"
// @Param        maxItems query int false "maximum number of result items" default(50)
// @Success      200 {object} rhymesResponse
// @Router       /rhymes/{word} [get]
func (a *Actions) Rhymes(ctx *gin.Context) {
	word := ctx.Param("word")
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", dfltRhymesMaxItems)
	if !ok {
		return
	}
	snap := a.provider.Get()
	rhymes, err := snap.Rhymes.FindRhymes(word, maxItems)
	if err != nil {
		var nf dict.WordNotFoundError
		if errors.As(err, &nf) {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusNotFound)
			return
		}
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	ans := rhymesResponse{
		Word:   dict.NormalizeKey(word),
		Rhymes: rhymes,
	}
	if prons, ok := snap.Dict.Lookup(word); ok {
		ans.RhymingPart = string(rhyme.KeyOf(prons[0]))
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
