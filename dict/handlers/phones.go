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
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"phonq/dict/phones"
)

type phonemeInfo struct {
	Symbol   string `json:"symbol"`
	Category string `json:"category"`
}

type phonemeListResponse struct {
	Phonemes []phonemeInfo `json:"phonemes"`
}

// PhonemeCategory godoc
// @Summary      PhonemeCategory
// @Description  Get the category (vowel, stop, fricative, ...) of an ARPAbet phoneme symbol.
// @Produce      json
// @Param        symbol path string true "An ARPAbet symbol, e.g. `AE` (case-insensitive)"
// @Success      200 {object} phonemeInfo
// @Router       /phoneme/{symbol} [get]
func (a *Actions) PhonemeCategory(ctx *gin.Context) {
	symbol := ctx.Param("symbol")
	cat, err := a.provider.Get().Phones.CategoryOf(symbol)
	if err != nil {
		var unk phones.UnknownSymbolError
		if errors.As(err, &unk) {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusNotFound)
			return
		}
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	ans := phonemeInfo{
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Category: cat,
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// PhonemeList godoc
// @Summary      PhonemeList
// @Description  List all the known phoneme symbols with their categories, sorted by symbol.
// @Produce      json
// @Success      200 {object} phonemeListResponse
// @Router       /phonemes [get]
func (a *Actions) PhonemeList(ctx *gin.Context) {
	tbl := a.provider.Get().Phones
	ans := phonemeListResponse{
		Phonemes: make([]phonemeInfo, 0, tbl.Len()),
	}
	for _, symbol := range tbl.Symbols() {
		cat, err := tbl.CategoryOf(symbol)
		if err != nil {
			continue
		}
		ans.Phonemes = append(ans.Phonemes, phonemeInfo{Symbol: symbol, Category: cat})
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
