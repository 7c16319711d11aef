/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package oracle implements the opaque "external Go-playing engine" of
// spec §1/§5/§7: a DeadStoneOracle interface queried off the game thread
// on a worker-pool goroutine while scoring mode is active, with
// cancellation on exit from scoring mode and a result cache so repeated
// queries against an unchanged position are free.
package oracle

import (
	"sync"

	"github.com/frankkopp/workerpool"
	golog "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/logging"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// DeadStoneOracle supplies an initial set of dead-stone coordinates for a
// position, e.g. from an external Go-playing engine. Implementations may
// block; Manager always calls Query from a worker-pool goroutine, never
// from the game thread.
type DeadStoneOracle interface {
	Query(size vertex.BoardSize, stones []vertex.Vertex) ([]vertex.Vertex, error)
}

// Result is delivered to a BeginScoring caller's callback once a query
// completes (from cache or from the oracle), unless it was cancelled by
// an intervening EndScoring.
type Result struct {
	Hash       board.Key
	DeadStones []vertex.Vertex
	Err        error
}

// Manager runs DeadStoneOracle queries on a background worker pool,
// guards against more than one query in flight at a time (mirroring
// internal/search's isRunning semaphore guarding one search at a time),
// and discards results superseded by cancellation, per spec §5.
type Manager struct {
	log *golog.Logger

	oracle     DeadStoneOracle
	pool       *workerpool.WorkerPool
	isQuerying *semaphore.Weighted
	cache      *ResultCache

	mu         sync.Mutex
	generation uint64
}

// NewManager creates a Manager with the given oracle, worker count, and
// result-cache size in megabytes.
func NewManager(o DeadStoneOracle, workers int, cacheSizeInMByte int) *Manager {
	return &Manager{
		log:        logging.GetLog(),
		oracle:     o,
		pool:       workerpool.New(workers),
		isQuerying: semaphore.NewWeighted(1),
		cache:      NewResultCache(cacheSizeInMByte),
	}
}

// IsQuerying reports whether a query is currently in flight.
func (m *Manager) IsQuerying() bool {
	if !m.isQuerying.TryAcquire(1) {
		return true
	}
	m.isQuerying.Release(1)
	return false
}

// Cache returns the Manager's result cache, for diagnostics (Hashfull,
// String) the way Search exposes its TtTable.
func (m *Manager) Cache() *ResultCache {
	return m.cache
}

// BeginScoring queries the oracle for hash/stones asynchronously,
// invoking onResult on a worker-pool goroutine once it completes. A
// cache hit resolves synchronously instead of touching the pool at all.
// If a query is already in flight, the request is dropped with a log
// warning - entering scoring mode twice without leaving it first is a
// caller error, not something to queue.
func (m *Manager) BeginScoring(hash board.Key, size vertex.BoardSize, stones []vertex.Vertex, onResult func(Result)) {
	if cached, ok := m.cache.Get(hash); ok {
		onResult(Result{Hash: hash, DeadStones: cached})
		return
	}
	if !m.isQuerying.TryAcquire(1) {
		m.log.Warning("oracle: BeginScoring called while a query is already in flight")
		return
	}

	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.mu.Unlock()

	m.pool.Submit(func() {
		defer m.isQuerying.Release(1)
		dead, err := m.oracle.Query(size, stones)

		m.mu.Lock()
		superseded := gen != m.generation
		m.mu.Unlock()
		if superseded {
			m.log.Debug("oracle: discarding result superseded by EndScoring")
			return
		}
		if err == nil {
			m.cache.Put(hash, dead)
		}
		onResult(Result{Hash: hash, DeadStones: dead, Err: err})
	})
}

// EndScoring cancels any pending query: should its result arrive after
// this call, BeginScoring's submitted task discards it instead of
// invoking onResult. No partial partition update can ever have happened,
// since only the game thread ever mutates the partition (spec §5).
func (m *Manager) EndScoring() {
	m.mu.Lock()
	m.generation++
	m.mu.Unlock()
}

// Close stops the worker pool, waiting for any in-flight query to finish.
func (m *Manager) Close() {
	m.pool.StopWait()
}
