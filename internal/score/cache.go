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

package score

import (
	"math"

	golog "github.com/op/go-logging"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/logging"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// MaxCacheSizeInMB bounds resultCache.resize, mirroring
// evaluator.MaxSizeInMB.
const MaxCacheSizeInMB = 1_024

// cacheEntrySize is the assumed average bytes per slot, mirroring
// evaluator.EntrySize; a Result is a handful of ints and floats, not a
// fixed-width bitfield, so this is a planning estimate like
// oracle.cacheEntrySize, not an exact sizeof.
const cacheEntrySize = 64

type cacheEntry struct {
	key    board.Key
	result Result
}

// resultCache is a small size-bounded cache of by-position scoring
// results, adapted from evaluator.pawnCache's power-of-2 slice and
// hash-mask addressing: walking every Region to classify territory and
// tally prisoners is cheap compared to search, but a GTP session that
// repeatedly asks for final_score on an unchanged position (e.g.
// the UI polling while an operator reviews dead-stone marks) shouldn't
// redo it every time.
type resultCache struct {
	log         *golog.Logger
	data        []cacheEntry
	hashKeyMask uint64
	capacity    uint64
	entries     uint64
	hits        uint64
	misses      uint64
	replace     uint64
}

// newResultCache creates a resultCache sized to sizeInMByte.
func newResultCache(sizeInMByte int) *resultCache {
	c := &resultCache{log: logging.GetLog()}
	c.resize(sizeInMByte)
	return c
}

func (c *resultCache) resize(sizeInMByte int) {
	if sizeInMByte > MaxCacheSizeInMB {
		c.log.Warning(out.Sprintf("requested score cache size %d MB reduced to max %d MB", sizeInMByte, MaxCacheSizeInMB))
		sizeInMByte = MaxCacheSizeInMB
	}
	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	if sizeInByte < cacheEntrySize {
		c.capacity = 0
		c.hashKeyMask = 0
		c.data = nil
		return
	}
	c.capacity = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/cacheEntrySize))))
	c.hashKeyMask = c.capacity - 1
	c.data = make([]cacheEntry, c.capacity)
	c.entries = 0
}

func (c *resultCache) hash(key board.Key) uint64 {
	return uint64(key) & c.hashKeyMask
}

// get returns the cached Result for key, if present.
func (c *resultCache) get(key board.Key) (*Result, bool) {
	if c.capacity == 0 {
		c.misses++
		return nil, false
	}
	e := &c.data[c.hash(key)]
	if e.key == key {
		c.hits++
		r := e.result
		return &r, true
	}
	c.misses++
	return nil, false
}

// put stores result under key, overwriting whatever previously occupied
// that slot.
func (c *resultCache) put(key board.Key, result *Result) {
	if c.capacity == 0 {
		return
	}
	e := &c.data[c.hash(key)]
	switch {
	case e.key == 0:
		c.entries++
	case e.key != key:
		c.replace++
	}
	e.key = key
	e.result = *result
}

// clear empties the cache without resizing it.
func (c *resultCache) clear() {
	c.data = make([]cacheEntry, c.capacity)
	c.entries = 0
	c.hits = 0
	c.misses = 0
	c.replace = 0
}

// len returns the number of occupied slots.
func (c *resultCache) len() uint64 {
	return c.entries
}

// key folds the dead-stone set into the position hash so that two calls
// with the same board position but different dead-stone agreement (e.g.
// the operator is still resolving a dispute) don't collide.
func key(hash board.Key, dead []vertex.Vertex) board.Key {
	k := uint64(hash)
	for _, v := range dead {
		k ^= uint64(v.X)*31 + uint64(v.Y)*37 + 0x9e3779b97f4a7c15
		k = (k << 13) | (k >> 51)
	}
	return board.Key(k)
}
