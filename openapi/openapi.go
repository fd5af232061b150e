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

package openapi

func wordPathParam(description string) Parameter {
	return Parameter{
		Name:        "word",
		In:          "path",
		Description: description,
		Required:    true,
		Schema: ParamSchema{
			Type: "string",
		},
	}
}

func maxItemsParam(dflt string) Parameter {
	return Parameter{
		Name:        "maxItems",
		In:          "query",
		Description: "Maximum number of result items. By default, " + dflt + " is used.",
		Required:    false,
		Schema: ParamSchema{
			Type: "integer",
		},
	}
}

func NewResponse(ver, url string) *APIResponse {
	paths := make(map[string]Methods)

	paths["/dictionary"] = Methods{
		Get: &Method{
			Description: "Shows load statistics and source file information of the currently served dictionary.",
			OperationID: "DictionaryInfo",
			Parameters:  []Parameter{},
		},
	}

	paths["/pronunciation/{word}"] = Methods{
		Get: &Method{
			Description: "Shows all the pronunciation variants of a word (ARPAbet tokens, IPA, syllables, stress pattern), primary variant first.",
			OperationID: "Pronunciation",
			Parameters: []Parameter{
				wordPathParam("A word to look up (case-insensitive)"),
			},
		},
	}

	paths["/syllables/{word}"] = Methods{
		Get: &Method{
			Description: "Counts syllables of a word based on its indexed pronunciations.",
			OperationID: "Syllables",
			Parameters: []Parameter{
				wordPathParam("A word to analyze (case-insensitive)"),
			},
		},
	}

	paths["/stress/{word}"] = Methods{
		Get: &Method{
			Description: "Shows the stress pattern of a word's primary pronunciation.",
			OperationID: "Stress",
			Parameters: []Parameter{
				wordPathParam("A word to analyze (case-insensitive)"),
			},
		},
	}

	paths["/rhymes/{word}"] = Methods{
		Get: &Method{
			Description: "Finds words rhyming with a word based on its primary pronunciation. An unknown word produces HTTP 404.",
			OperationID: "Rhymes",
			Parameters: []Parameter{
				wordPathParam("A word to find rhymes for (case-insensitive)"),
				maxItemsParam("50"),
			},
		},
	}

	paths["/search"] = Methods{
		Get: &Method{
			Description: "Searches word keys by a glob pattern where `*` matches any run of characters. The whole key must match.",
			OperationID: "Search",
			Parameters: []Parameter{
				{
					Name:        "q",
					In:          "query",
					Description: "A wildcard pattern, e.g. `ca*`",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				maxItemsParam("20"),
			},
		},
	}

	paths["/phoneme/{symbol}"] = Methods{
		Get: &Method{
			Description: "Shows the category (vowel, stop, fricative, ...) of an ARPAbet phoneme symbol.",
			OperationID: "PhonemeCategory",
			Parameters: []Parameter{
				{
					Name:        "symbol",
					In:          "path",
					Description: "An ARPAbet symbol, e.g. `AE` (case-insensitive)",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/phonemes"] = Methods{
		Get: &Method{
			Description: "Lists all the known phoneme symbols with their categories.",
			OperationID: "PhonemeList",
			Parameters:  []Parameter{},
		},
	}

	paths["/analysis"] = Methods{
		Post: &Method{
			Description: "Analyzes a batch of words (syllable counts, stress patterns) in one request, preserving input order.",
			OperationID: "Analysis",
			Parameters:  []Parameter{},
		},
	}

	return &APIResponse{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "PHONQ - pronouncing dictionary query server",
			Description: "PHONQ provides phonetic lookups (pronunciation, syllables, stress, rhymes, wildcard search) over a pre-transcribed pronouncing dictionary.",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
	}
}
