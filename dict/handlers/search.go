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

	"phonq/dict/search"
)

type searchResponse struct {
	Pattern string   `json:"pattern"`
	Words   []string `json:"words"`
}

// Search godoc
// @Summary      Search
// @Description  Search word keys by a glob pattern where `*` matches any run of characters. The whole key must match; matching is case-insensitive.
// @Produce      json
// @Param        q query string true "A wildcard pattern, e.g. `ca*`"
// @Param        maxItems query int false "maximum number of result items" default(20)
// @Success      200 {object} searchResponse
// @Router       /search [get]
func (a *Actions) Search(ctx *gin.Context) {
	pattern := ctx.Query("q")
	if pattern == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			errors.New("missing `q` argument"),
			http.StatusBadRequest,
		)
		return
	}
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", dfltSearchMaxItems)
	if !ok {
		return
	}
	ans := searchResponse{
		Pattern: pattern,
		Words:   search.Search(a.provider.Get().Dict, pattern, maxItems),
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
