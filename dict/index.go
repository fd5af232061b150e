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

package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
)

// LoadStats summarizes one load phase of a dictionary source.
type LoadStats struct {
	Lines    int `json:"lines"`
	Entries  int `json:"entries"`
	Variants int `json:"variants"`
	Skipped  int `json:"skipped"`
}

// FileInfo describes the source file an index was loaded from.
type FileInfo struct {
	Path         string  `json:"path"`
	FileExists   bool    `json:"fileExists"`
	LastModified *string `json:"lastModified"`
	Size         int64   `json:"size"`
}

func describeSourceFile(path string) (FileInfo, error) {
	ans := FileInfo{Path: path}
	isFile, err := fs.IsFile(path)
	if err != nil {
		return ans, err
	}
	if isFile {
		mTime, err := fs.GetFileMtime(path)
		if err != nil {
			return ans, err
		}
		mTimeString := mTime.Format("2006-01-02T15:04:05-0700")
		size, err := fs.FileSize(path)
		if err != nil {
			return ans, err
		}
		ans.FileExists = true
		ans.LastModified = &mTimeString
		ans.Size = size
	}
	return ans, nil
}

// Index maps normalized word keys to their pronunciation variants.
// Variants within a key keep the order of appearance in the source,
// the first one being the primary pronunciation. The index is
// immutable once built.
type Index struct {
	entries map[string][]Pronunciation

	// keys is a sorted (ascending lexicographic) snapshot of all
	// the entry keys, shared by every ordered read operation
	keys []string

	stats   LoadStats
	srcInfo FileInfo
}

// Build reads raw dictionary lines from src and aggregates them
// per word key. Malformed lines are skipped with a warning - one
// bad record must not prevent indexing the remaining ones. An
// empty or entirely malformed source yields a valid empty index.
func Build(src io.Reader) *Index {
	ans := &Index{
		entries: make(map[string][]Pronunciation),
	}
	scanner := bufio.NewScanner(src)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		ans.stats.Lines++
		rec, ok, err := ParseLine(scanner.Text())
		if err != nil {
			var mrec MalformedRecordError
			if errors.As(err, &mrec) {
				mrec.LineNo = lineNo
				err = mrec
			}
			ans.stats.Skipped++
			log.Warn().Err(err).Int("lineNo", lineNo).Msg("skipping malformed dictionary record")
			continue
		}
		if !ok {
			continue
		}
		if _, ok := ans.entries[rec.Key]; !ok {
			ans.keys = append(ans.keys, rec.Key)
		}
		ans.entries[rec.Key] = append(ans.entries[rec.Key], rec.Pron)
		ans.stats.Variants++
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("failed to read dictionary source to the end")
	}
	sort.Strings(ans.keys)
	ans.stats.Entries = len(ans.keys)
	return ans
}

// BuildFromFile loads an index from a dictionary file. The file is
// decoded as ISO 8859-1 so sources containing 8-bit byte values do
// not break the load (keys end up as valid UTF-8 either way).
func BuildFromFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()
	ans := Build(charmap.ISO8859_1.NewDecoder().Reader(f))
	ans.srcInfo, err = describeSourceFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to describe dictionary file: %w", err)
	}
	log.Info().
		Str("path", path).
		Int("entries", ans.stats.Entries).
		Int("variants", ans.stats.Variants).
		Int("skipped", ans.stats.Skipped).
		Msg("loaded pronouncing dictionary")
	return ans, nil
}

// Lookup returns all the pronunciation variants of a word, primary
// variant first. The word is normalized before matching so the
// operation is case-insensitive.
func (ix *Index) Lookup(word string) ([]Pronunciation, bool) {
	prons, ok := ix.entries[NormalizeKey(word)]
	return prons, ok
}

// Contains tests the (case-insensitive) presence of a word.
func (ix *Index) Contains(word string) bool {
	_, ok := ix.entries[NormalizeKey(word)]
	return ok
}

// Keys returns a fresh copy of all the word keys in ascending
// lexicographic order. The order is deterministic across calls.
func (ix *Index) Keys() []string {
	ans := make([]string, len(ix.keys))
	copy(ans, ix.keys)
	return ans
}

// ForEachKey calls fn for each word key in ascending lexicographic
// order until fn returns false.
func (ix *Index) ForEachKey(fn func(key string) bool) {
	for _, k := range ix.keys {
		if !fn(k) {
			return
		}
	}
}

// Len returns the number of distinct word keys.
func (ix *Index) Len() int {
	return len(ix.keys)
}

func (ix *Index) Stats() LoadStats {
	return ix.stats
}

func (ix *Index) SrcInfo() FileInfo {
	return ix.srcInfo
}
