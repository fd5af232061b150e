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
	"fmt"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"phonq/dict"
	"phonq/dict/prosody"
)

const (
	maxAnalysisBatchSize = 500
	analysisConcurrency  = 8
)

type analysisArgs struct {
	Words []string `json:"words"`
}

type analysisItem struct {
	Word          string `json:"word"`
	Found         bool   `json:"found"`
	Syllables     int    `json:"syllables"`
	StressPattern string `json:"stressPattern"`
	ARPA          string `json:"arpa"`
}

type analysisResponse struct {
	InteractionID string         `json:"interactionId"`
	Results       []analysisItem `json:"results"`
}

// Analysis godoc
// @Summary      Analysis
// @Description  Analyze a batch of words (syllable counts, stress patterns) in one request. Absent words are reported per item via `found`, input order is preserved.
// @Accept       json
// @Produce      json
// @Param        words body analysisArgs true "Words to analyze"
// @Success      200 {object} analysisResponse
// @Router       /analysis [post]
func (a *Actions) Analysis(ctx *gin.Context) {
	var args analysisArgs
	if err := ctx.BindJSON(&args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if len(args.Words) == 0 {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("no words to analyze"),
			http.StatusUnprocessableEntity,
		)
		return
	}
	if len(args.Words) > maxAnalysisBatchSize {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("too many words (max %d)", maxAnalysisBatchSize),
			http.StatusUnprocessableEntity,
		)
		return
	}

	snap := a.provider.Get()
	ans := analysisResponse{
		InteractionID: uuid.New().String(),
		Results:       make([]analysisItem, len(args.Words)),
	}
	// queries are pure reads over the immutable snapshot, so the
	// fan-out needs no coordination beyond the group itself
	var wg errgroup.Group
	wg.SetLimit(analysisConcurrency)
	for i, word := range args.Words {
		wg.Go(func() error {
			item := analysisItem{Word: dict.NormalizeKey(word)}
			if prons, ok := snap.Dict.Lookup(word); ok {
				item.Found = true
				item.Syllables = prosody.SyllableCount(prons[0])
				item.StressPattern = prosody.PatternString(prosody.StressPattern(prons[0]))
				item.ARPA = prons[0].String()
			}
			ans.Results[i] = item
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
