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

// Package loader builds all the query structures (dictionary index,
// rhyme table, phoneme categories) from their configured sources
// and publishes them as one immutable snapshot. Reloads build a
// brand-new snapshot and swap the published reference atomically -
// queries in flight keep reading the old one.
package loader

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"

	"phonq/dict"
	"phonq/dict/phones"
	"phonq/dict/rhyme"
)

// SourcesConf configures the external text sources of the engine.
type SourcesConf struct {
	DictPath string `json:"dictPath"`

	// PhonesPath is optional; without it the server runs with an
	// empty phoneme category table
	PhonesPath string `json:"phonesPath"`
}

func (conf *SourcesConf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing `%s` section", confContext)
	}
	if conf.DictPath == "" {
		return fmt.Errorf("missing %s.dictPath", confContext)
	}
	isFile, err := fs.IsFile(conf.DictPath)
	if err != nil {
		return fmt.Errorf("failed to test %s.dictPath: %w", confContext, err)
	}
	if !isFile {
		return fmt.Errorf("%s.dictPath does not point to a file: %s", confContext, conf.DictPath)
	}
	if conf.PhonesPath != "" {
		isFile, err := fs.IsFile(conf.PhonesPath)
		if err != nil {
			return fmt.Errorf("failed to test %s.phonesPath: %w", confContext, err)
		}
		if !isFile {
			return fmt.Errorf("%s.phonesPath does not point to a file: %s", confContext, conf.PhonesPath)
		}
	}
	return nil
}

// Snapshot is one consistent, immutable generation of all the
// query structures.
type Snapshot struct {
	Dict    *dict.Index
	Rhymes  *rhyme.Table
	Phones  *phones.Table
	Created time.Time
}

func load(conf *SourcesConf) (*Snapshot, error) {
	ix, err := dict.BuildFromFile(conf.DictPath)
	if err != nil {
		return nil, err
	}
	ans := &Snapshot{
		Dict:    ix,
		Rhymes:  rhyme.BuildTable(ix),
		Created: time.Now(),
	}
	if conf.PhonesPath != "" {
		ans.Phones, err = phones.LoadFromFile(conf.PhonesPath)
		if err != nil {
			return nil, err
		}

	} else {
		ans.Phones = phones.Load(strings.NewReader(""))
	}
	log.Info().
		Int("entries", ix.Len()).
		Int("rhymeBuckets", ans.Rhymes.NumBuckets()).
		Int("phoneSymbols", ans.Phones.Len()).
		Msg("built dictionary engine snapshot")
	return ans, nil
}

// Provider hands out the current snapshot and performs atomic
// rebuild-and-swap reloads.
type Provider struct {
	conf    *SourcesConf
	current atomic.Pointer[Snapshot]
}

// NewProvider performs the initial synchronous load. A failure here
// means the server has nothing to serve and is reported to the
// caller.
func NewProvider(conf *SourcesConf) (*Provider, error) {
	ans := &Provider{conf: conf}
	snap, err := load(conf)
	if err != nil {
		return nil, err
	}
	ans.current.Store(snap)
	return ans, nil
}

// Get returns the currently published snapshot.
func (p *Provider) Get() *Snapshot {
	return p.current.Load()
}

// Reload builds a new snapshot from the sources and swaps it in.
// On failure the previous snapshot stays published.
func (p *Provider) Reload() error {
	snap, err := load(p.conf)
	if err != nil {
		return fmt.Errorf("failed to reload dictionary engine: %w", err)
	}
	p.current.Store(snap)
	log.Info().Time("created", snap.Created).Msg("swapped in a new dictionary engine snapshot")
	return nil
}
