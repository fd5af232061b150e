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
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"phonq/dict"
)

type dictionaryInfoResponse struct {
	Stats           dict.LoadStats `json:"stats"`
	Source          dict.FileInfo  `json:"source"`
	RhymeBuckets    int            `json:"rhymeBuckets"`
	PhonemeSymbols  int            `json:"phonemeSymbols"`
	SnapshotCreated time.Time      `json:"snapshotCreated"`
}

// DictionaryInfo godoc
// @Summary      DictionaryInfo
// @Description  Show load statistics and source file information of the currently served dictionary snapshot.
// @Produce      json
// @Success      200 {object} dictionaryInfoResponse
// @Router       /dictionary [get]
func (a *Actions) DictionaryInfo(ctx *gin.Context) {
	snap := a.provider.Get()
	ans := dictionaryInfoResponse{
		Stats:           snap.Dict.Stats(),
		Source:          snap.Dict.SrcInfo(),
		RhymeBuckets:    snap.Rhymes.NumBuckets(),
		PhonemeSymbols:  snap.Phones.Len(),
		SnapshotCreated: snap.Created,
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
