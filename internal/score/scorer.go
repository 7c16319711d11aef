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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/weiqi/internal/game"
	"github.com/frankkopp/weiqi/internal/vertex"
)

var out = message.NewPrinter(language.German)

// Scorer computes Results against a cache keyed by current-position
// Zobrist hash plus dead-stone set, the way internal/oracle.Manager
// caches dead-stone queries keyed by hash alone.
type Scorer struct {
	cache *resultCache
}

// NewScorer creates a Scorer with a cache sized to cacheSizeInMByte.
func NewScorer(cacheSizeInMByte int) *Scorer {
	return &Scorer{cache: newResultCache(cacheSizeInMByte)}
}

// Score returns the Result for g's current position given dead, serving
// from cache when the (position, dead-stone set) pair was scored before.
func (s *Scorer) Score(g *game.Game, dead []vertex.Vertex) *Result {
	leaf := g.NodeModel().CurrentLeaf()
	k := key(leaf.ZobristHash, dead)
	if cached, ok := s.cache.get(k); ok {
		return cached
	}
	res := ComputeResult(g, dead)
	s.cache.put(k, res)
	return res
}

// Cache exposes the Scorer's result cache for diagnostics.
func (s *Scorer) Cache() *resultCache {
	return s.cache
}

func (c *resultCache) String() string {
	return out.Sprintf("score cache: entries %d/%d hits %d misses %d replace %d",
		c.entries, c.capacity, c.hits, c.misses, c.replace)
}
