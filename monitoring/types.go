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

package monitoring

import (
	"time"

	"github.com/bytedance/sonic"
)

// OpLog is a record of one performed query operation.
type OpLog struct {
	Operation string
	Begin     time.Time
	End       time.Time
	Err       error
}

// TimeSpent returns the duration of the operation.
func (ol OpLog) TimeSpent() time.Duration {
	return ol.End.Sub(ol.Begin)
}

func (ol OpLog) MarshalJSON() ([]byte, error) {
	var errStr *string
	if ol.Err != nil {
		tmp := ol.Err.Error()
		errStr = &tmp
	}
	return sonic.Marshal(
		struct {
			Operation string    `json:"operation"`
			Begin     time.Time `json:"begin"`
			End       time.Time `json:"end"`
			Err       *string   `json:"error,omitempty"`
		}{
			Operation: ol.Operation,
			Begin:     ol.Begin,
			End:       ol.End,
			Err:       errStr,
		},
	)
}

// ---

// OpLoad aggregates query operation stats over some time span.
type OpLoad struct {
	NumOps        int
	TotalTimeSecs float64
	NumErrors     int
	FirstUpdate   time.Time
	LastUpdate    time.Time
}

func (ol OpLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !ol.FirstUpdate.IsZero() {
		t0 = &ol.FirstUpdate
	}
	if !ol.LastUpdate.IsZero() {
		t1 = &ol.LastUpdate
	}
	return sonic.Marshal(
		struct {
			NumOps        int        `json:"numOps"`
			TotalTimeSecs float64    `json:"totalTimeSecs"`
			NumErrors     int        `json:"numErrors"`
			FirstUpdate   *time.Time `json:"firstUpdate,omitempty"`
			LastUpdate    *time.Time `json:"lastUpdate,omitempty"`
		}{
			NumOps:        ol.NumOps,
			TotalTimeSecs: ol.TotalTimeSecs,
			NumErrors:     ol.NumErrors,
			FirstUpdate:   t0,
			LastUpdate:    t1,
		},
	)
}

// OpsLoad maps operation names to their accumulated load.
type OpsLoad map[string]OpLoad

// SumLoad merges the per-operation loads into a single total.
func (ols OpsLoad) SumLoad() OpLoad {
	var ans OpLoad
	for _, v := range ols {
		ans.NumOps += v.NumOps
		ans.NumErrors += v.NumErrors
		ans.TotalTimeSecs += v.TotalTimeSecs
		if ans.FirstUpdate.IsZero() || v.FirstUpdate.Before(ans.FirstUpdate) {
			ans.FirstUpdate = v.FirstUpdate
		}
		if v.LastUpdate.After(ans.LastUpdate) {
			ans.LastUpdate = v.LastUpdate
		}
	}
	return ans
}

func (ols OpsLoad) cleanOldRecords() {
	for k, v := range ols {
		if time.Since(v.LastUpdate) > StaleOpLoadTTL {
			delete(ols, k)
		}
	}
}
