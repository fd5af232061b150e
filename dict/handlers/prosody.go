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
	"phonq/dict/prosody"
)

type syllablesResponse struct {
	Word      string `json:"word"`
	Syllables int    `json:"syllables"`
	ByVariant []int  `json:"byVariant"`
}

type stressResponse struct {
	Word                string `json:"word"`
	StressPattern       string `json:"stressPattern"`
	StressPatternSpaced string `json:"stressPatternSpaced"`
}

// Syllables godoc
// @Summary      Syllables
// @Description  Count syllables of a word. The top-level value refers to the primary pronunciation; per-variant counts are listed too.
// @Produce      json
// @Param        word path string true "A word to analyze (case-insensitive)"
// @Success      200 {object} syllablesResponse
// @Router       /syllables/{word} [get]
func (a *Actions) Syllables(ctx *gin.Context) {
	word := ctx.Param("word")
	prons, ok := lookupOrRespondError(ctx, a.provider.Get(), word)
	if !ok {
		return
	}
	ans := syllablesResponse{
		Word:      dict.NormalizeKey(word),
		Syllables: prosody.SyllableCount(prons[0]),
		ByVariant: make([]int, len(prons)),
	}
	for i, p := range prons {
		ans.ByVariant[i] = prosody.SyllableCount(p)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Stress godoc
// @Summary      Stress
// @Description  Get the stress pattern of a word's primary pronunciation (e.g. "10" / "1 0").
// @Produce      json
// @Param        word path string true "A word to analyze (case-insensitive)"
// @Success      200 {object} stressResponse
// @Router       /stress/{word} [get]
func (a *Actions) Stress(ctx *gin.Context) {
	word := ctx.Param("word")
	prons, ok := lookupOrRespondError(ctx, a.provider.Get(), word)
	if !ok {
		return
	}
	pattern := prosody.StressPattern(prons[0])
	ans := stressResponse{
		Word:                dict.NormalizeKey(word),
		StressPattern:       prosody.PatternString(pattern),
		StressPatternSpaced: spacedPattern(pattern),
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
