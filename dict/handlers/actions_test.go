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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"phonq/dict/loader"
)

const testDict = `CAT  K AE1 T
BAT  B AE1 T
HAT  HH AE1 T
HELLO  HH AH0 L OW1
WORD  W ER1 D
WORD(2)  W ER1 D AH0
`

const testPhones = "AE\tvowel\nAH\tvowel\nK\tstop\nT\tstop\nHH\taspirate\n"

func newTestEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "test.dict")
	assert.NoError(t, os.WriteFile(dictPath, []byte(testDict), 0o644))
	phonesPath := filepath.Join(dir, "test.phones")
	assert.NoError(t, os.WriteFile(phonesPath, []byte(testPhones), 0o644))

	provider, err := loader.NewProvider(
		&loader.SourcesConf{DictPath: dictPath, PhonesPath: phonesPath})
	assert.NoError(t, err)
	actions := NewActions(provider)

	engine := gin.New()
	engine.GET("/pronunciation/:word", actions.Pronunciation)
	engine.GET("/syllables/:word", actions.Syllables)
	engine.GET("/stress/:word", actions.Stress)
	engine.GET("/rhymes/:word", actions.Rhymes)
	engine.GET("/search", actions.Search)
	engine.GET("/phoneme/:symbol", actions.PhonemeCategory)
	engine.GET("/phonemes", actions.PhonemeList)
	engine.GET("/dictionary", actions.DictionaryInfo)
	engine.POST("/analysis", actions.Analysis)
	return engine
}

func doRequest(engine *gin.Engine, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestPronunciationAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/pronunciation/hello", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans pronunciationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "HELLO", ans.Word)
	assert.Len(t, ans.Variants, 1)
	assert.Equal(t, "HH AH0 L OW1", ans.Variants[0].ARPA)
	assert.Equal(t, "/h ʌ l oʊ/", ans.Variants[0].IPA)
	assert.Equal(t, 2, ans.Variants[0].Syllables)
	assert.Equal(t, "01", ans.Variants[0].StressPattern)
}

func TestPronunciationActionMultipleVariants(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/pronunciation/word", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans pronunciationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Len(t, ans.Variants, 2)
	assert.Equal(t, "W ER1 D", ans.Variants[0].ARPA)
}

func TestPronunciationActionUnknownWord(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/pronunciation/zebra", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSyllablesAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/syllables/hello", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans syllablesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, 2, ans.Syllables)
}

func TestStressAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/stress/hello", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans stressResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "01", ans.StressPattern)
	assert.Equal(t, "0 1", ans.StressPatternSpaced)
}

func TestRhymesAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/rhymes/cat", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans rhymesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, []string{"BAT", "HAT"}, ans.Rhymes)
	assert.Equal(t, "AE1 T", ans.RhymingPart)
}

func TestRhymesActionMaxItems(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/rhymes/cat?maxItems=1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans rhymesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, []string{"BAT"}, ans.Rhymes)
}

func TestRhymesActionUnknownWord(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/rhymes/zebra", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/search?q=%2Aat", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans searchResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, []string{"BAT", "CAT", "HAT"}, ans.Words)
}

func TestSearchActionMissingQuery(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPhonemeCategoryAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/phoneme/ae", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans phonemeInfo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "AE", ans.Symbol)
	assert.Equal(t, "vowel", ans.Category)
}

func TestPhonemeCategoryActionUnknown(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/phoneme/QQ", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPhonemeListAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/phonemes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans phonemeListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Len(t, ans.Phonemes, 5)
	assert.Equal(t, "AE", ans.Phonemes[0].Symbol)
}

func TestDictionaryInfoAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodGet, "/dictionary", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var ans dictionaryInfoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, 5, ans.Stats.Entries)
	assert.Equal(t, 6, ans.Stats.Variants)
	assert.True(t, ans.Source.FileExists)
}

func TestAnalysisAction(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(
		engine, http.MethodPost, "/analysis", `{"words": ["hello", "zebra", "cat"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var ans analysisResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.NotEmpty(t, ans.InteractionID)
	assert.Len(t, ans.Results, 3)
	assert.Equal(t, "HELLO", ans.Results[0].Word)
	assert.True(t, ans.Results[0].Found)
	assert.Equal(t, 2, ans.Results[0].Syllables)
	assert.False(t, ans.Results[1].Found)
	assert.Equal(t, "CAT", ans.Results[2].Word)
}

func TestAnalysisActionEmptyBatch(t *testing.T) {
	engine := newTestEngine(t)
	w := doRequest(engine, http.MethodPost, "/analysis", `{"words": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
