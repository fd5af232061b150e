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

// Package phones loads the phoneme category table (symbol =>
// vowel/stop/fricative/...). It is an optional add-on with a
// lifecycle independent of the dictionary index - no core query
// operation consumes it.
package phones

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
)

// UnknownSymbolError is returned by category lookups for symbols
// absent from the table.
type UnknownSymbolError struct {
	Symbol string
}

func (err UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown phoneme symbol `%s`", err.Symbol)
}

func (err UnknownSymbolError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ----------------------------

// Table maps phoneme symbols to their category labels. The label
// set is open - whatever non-empty label the source carries is
// accepted (the standard source ships vowel, stop, affricate,
// fricative, aspirate, liquid, nasal and semivowel).
type Table struct {
	categories map[string]string
	skipped    int
}

// Load reads `SYMBOL CATEGORY` lines from src with the same
// tolerance as the dictionary loader: `#` starts a comment, blank
// lines are ignored and malformed lines are skipped with a warning.
func Load(src io.Reader) *Table {
	ans := &Table{
		categories: make(map[string]string),
	}
	scanner := bufio.NewScanner(src)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			ans.skipped++
			log.Warn().
				Int("lineNo", lineNo).
				Str("line", line).
				Msg("skipping malformed phoneme category record")
			continue
		}
		ans.categories[strings.ToUpper(fields[0])] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("failed to read phoneme category source to the end")
	}
	return ans
}

// LoadFromFile loads a category table from a file, decoded as
// ISO 8859-1 like the dictionary source.
func LoadFromFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open phoneme category file: %w", err)
	}
	defer f.Close()
	ans := Load(charmap.ISO8859_1.NewDecoder().Reader(f))
	log.Info().
		Str("path", path).
		Int("symbols", len(ans.categories)).
		Int("skipped", ans.skipped).
		Msg("loaded phoneme categories")
	return ans, nil
}

// CategoryOf returns the category label of a symbol (matched
// case-insensitively).
func (t *Table) CategoryOf(symbol string) (string, error) {
	cat, ok := t.categories[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return "", UnknownSymbolError{Symbol: symbol}
	}
	return cat, nil
}

// Symbols returns all the known symbols in ascending order.
func (t *Table) Symbols() []string {
	ans := make([]string, 0, len(t.categories))
	for s := range t.categories {
		ans = append(ans, s)
	}
	sort.Strings(ans)
	return ans
}

// Len returns the number of known symbols.
func (t *Table) Len() int {
	return len(t.categories)
}
