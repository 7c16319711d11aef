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

package oracle

import (
	"math"

	golog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/logging"
	"github.com/frankkopp/weiqi/internal/vertex"
)

var out = message.NewPrinter(language.German)

// MaxCacheSizeInMB bounds ResultCache.Resize, mirroring
// transpositiontable.MaxSizeInMB.
const MaxCacheSizeInMB = 1024

// cacheEntrySize is the assumed average bytes per slot used only to turn
// a requested MB budget into a power-of-2 entry count; unlike TtEntry a
// dead-stone set has no fixed width, so this is a planning estimate, not
// an exact sizeof.
const cacheEntrySize = 64

type cacheEntry struct {
	key        board.Key
	deadStones []vertex.Vertex
}

// CacheStats holds statistical data on ResultCache usage, mirroring
// transpositiontable.TtStats.
type CacheStats struct {
	numberOfPuts       uint64
	numberOfOverwrites uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// ResultCache is a zobrist-keyed cache of oracle query results: repeated
// scoring queries against an unchanged board position are free. Adapted
// from internal/transpositiontable.TtTable's power-of-2 slice, hash-mask
// addressing, and hit/miss/overwrite counters; a dead-stone set has no
// natural fixed-width bit encoding the way a search value/move/depth
// triple does, so each slot holds a key plus a plain []vertex.Vertex
// rather than a packed 16-byte struct.
type ResultCache struct {
	log             *golog.Logger
	data            []cacheEntry
	hashKeyMask     uint64
	maxEntries      uint64
	numberOfEntries uint64
	Stats           CacheStats
}

// NewResultCache creates a ResultCache sized to sizeInMByte.
func NewResultCache(sizeInMByte int) *ResultCache {
	c := &ResultCache{log: logging.GetLog()}
	c.Resize(sizeInMByte)
	return c
}

// Resize reallocates the cache, clearing all entries.
func (c *ResultCache) Resize(sizeInMByte int) {
	if sizeInMByte > MaxCacheSizeInMB {
		c.log.Warning(out.Sprintf("requested oracle cache size %d MB reduced to max %d MB", sizeInMByte, MaxCacheSizeInMB))
		sizeInMByte = MaxCacheSizeInMB
	}
	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	if sizeInByte < cacheEntrySize {
		c.maxEntries = 0
		c.hashKeyMask = 0
		c.data = nil
		return
	}
	c.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/cacheEntrySize))))
	c.hashKeyMask = c.maxEntries - 1
	c.data = make([]cacheEntry, c.maxEntries)
	c.numberOfEntries = 0
	c.log.Debug(out.Sprintf("oracle result cache sized to %d entries", c.maxEntries))
}

func (c *ResultCache) hash(key board.Key) uint64 {
	return uint64(key) & c.hashKeyMask
}

// Get returns the cached dead-stone set for key, if present.
func (c *ResultCache) Get(key board.Key) ([]vertex.Vertex, bool) {
	c.Stats.numberOfProbes++
	if c.maxEntries == 0 {
		c.Stats.numberOfMisses++
		return nil, false
	}
	e := &c.data[c.hash(key)]
	if e.key == key {
		c.Stats.numberOfHits++
		return e.deadStones, true
	}
	c.Stats.numberOfMisses++
	return nil, false
}

// Put stores deadStones under key, overwriting whatever previously
// occupied that slot.
func (c *ResultCache) Put(key board.Key, deadStones []vertex.Vertex) {
	if c.maxEntries == 0 {
		return
	}
	c.Stats.numberOfPuts++
	e := &c.data[c.hash(key)]
	if e.key == 0 {
		c.numberOfEntries++
	} else if e.key != key {
		c.Stats.numberOfOverwrites++
	}
	e.key = key
	e.deadStones = append([]vertex.Vertex{}, deadStones...)
}

// Clear empties the cache without resizing it.
func (c *ResultCache) Clear() {
	c.data = make([]cacheEntry, c.maxEntries)
	c.numberOfEntries = 0
	c.Stats = CacheStats{}
}

// Hashfull reports how full the cache is in permille, as TtTable.Hashfull
// does for UCI's "hashfull" info field.
func (c *ResultCache) Hashfull() int {
	if c.maxEntries == 0 {
		return 0
	}
	return int((1000 * c.numberOfEntries) / c.maxEntries)
}

// Len returns the number of occupied slots.
func (c *ResultCache) Len() uint64 {
	return c.numberOfEntries
}

func (c *ResultCache) String() string {
	return out.Sprintf("oracle cache: entries %d/%d (%d%%) puts %d overwrites %d probes %d hits %d misses %d",
		c.numberOfEntries, c.maxEntries, c.Hashfull()/10,
		c.Stats.numberOfPuts, c.Stats.numberOfOverwrites, c.Stats.numberOfProbes, c.Stats.numberOfHits, c.Stats.numberOfMisses)
}
