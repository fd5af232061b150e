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
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"phonq/dict"
)

type pronunciationResponse struct {
	Word     string        `json:"word"`
	Variants []pronVariant `json:"variants"`
}

// Pronunciation godoc
// @Summary      Pronunciation
// @Description  Get all the pronunciation variants of a word, primary variant first.
// @Produce      json
// @Param        word path string true "A word to look up (case-insensitive)"
// @Success      200 {object} pronunciationResponse
// @Router       /pronunciation/{word} [get]
func (a *Actions) Pronunciation(ctx *gin.Context) {
	word := ctx.Param("word")
	prons, ok := lookupOrRespondError(ctx, a.provider.Get(), word)
	if !ok {
		return
	}
	ans := pronunciationResponse{
		Word:     dict.NormalizeKey(word),
		Variants: make([]pronVariant, len(prons)),
	}
	for i, p := range prons {
		ans.Variants[i] = describeVariant(p)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
