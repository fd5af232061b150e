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
	"context"
	"errors"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

const (
	StaleOpLoadTTL           = time.Hour * 24
	tickerIntervalSecs int64 = 10
	recentLogSize            = 100
)

var (
	ErrOperationNotFound = errors.New("operation not found")
)

// StatusWriter is the optional persistent sink of operation
// records (TimescaleDB when configured, a no-op otherwise).
type StatusWriter interface {
	Write(item OpLog)
}

// NullWriter is used when no monitoring database is configured.
type NullWriter struct{}

func (NullWriter) Write(item OpLog) {}

// ---

// OpsLogger keeps in-memory stats of performed query operations -
// a total load per operation name plus a short log of the most
// recent records.
type OpsLogger struct {
	loadData     OpsLoad
	dataLock     sync.RWMutex
	recentLog    *collections.CircularList[OpLog]
	statusWriter StatusWriter
}

func (w *OpsLogger) Log(rec OpLog) {
	w.dataLock.Lock()
	defer w.dataLock.Unlock()

	entry, ok := w.loadData[rec.Operation]
	if !ok {
		entry.FirstUpdate = rec.Begin
	}
	entry.NumOps++
	entry.LastUpdate = rec.End
	if rec.Err != nil {
		entry.NumErrors++
	}
	entry.TotalTimeSecs += rec.End.Sub(rec.Begin).Seconds()
	w.loadData[rec.Operation] = entry
	w.recentLog.Append(rec)
	w.statusWriter.Write(rec)
}

func (w *OpsLogger) TotalLoad() OpLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	return w.loadData.SumLoad()
}

func (w *OpsLogger) RecentLoad() OpLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans OpLoad
	w.recentLog.ForEach(func(i int, item OpLog) bool {
		if i == 0 {
			ans.FirstUpdate = item.Begin
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumOps++
		ans.TotalTimeSecs += item.End.Sub(item.Begin).Seconds()
		return true
	})
	return ans
}

func (w *OpsLogger) RecentRecords() []OpLog {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans := make([]OpLog, w.recentLog.Len())
	w.recentLog.ForEach(func(i int, item OpLog) bool {
		ans[i] = item
		return true
	})
	return ans
}

func (w *OpsLogger) TotalOperationLoad(operation string) (OpLoad, error) {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans, ok := w.loadData[operation]
	if !ok {
		return ans, ErrOperationNotFound
	}
	return ans, nil
}

func (w *OpsLogger) RecentOperationLoad(operation string) (OpLoad, error) {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans OpLoad
	var found bool
	w.recentLog.ForEach(func(i int, item OpLog) bool {
		if item.Operation != operation {
			return true
		}
		if !found {
			ans.FirstUpdate = item.Begin
			found = true
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumOps++
		ans.TotalTimeSecs += item.End.Sub(item.Begin).Seconds()
		return true
	})
	if !found {
		return ans, ErrOperationNotFound
	}
	return ans, nil
}

func (w *OpsLogger) Start(ctx context.Context) {
	ticksPerCleanup := int64(StaleOpLoadTTL.Seconds()) / tickerIntervalSecs
	log.Info().Msg("starting query ops logger")
	go func() {
		ticker := time.NewTicker(time.Duration(tickerIntervalSecs) * time.Second)
		defer ticker.Stop()
		var numTicks int64
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("requesting query ops logger stop")
				return
			case <-ticker.C:
				if numTicks%ticksPerCleanup == 0 {
					w.dataLock.Lock()
					w.loadData.cleanOldRecords()
					w.dataLock.Unlock()
					numTicks = 0

				} else {
					numTicks++
				}
			}
		}
	}()
}

func (w *OpsLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down query ops logger")
	return nil
}

func NewOpsLogger(statusWriter StatusWriter) *OpsLogger {
	return &OpsLogger{
		loadData:     make(OpsLoad),
		recentLog:    collections.NewCircularList[OpLog](recentLogSize),
		statusWriter: statusWriter,
	}
}
