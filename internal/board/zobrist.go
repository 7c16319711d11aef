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

package board

import (
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// Key is a Zobrist hash value identifying a board position.
type Key uint64

// ZobristTable holds 2*N^2 independent 64-bit random values, one per
// (vertex, colour) pair, used for O(delta) incremental position hashing.
// A table is created fresh for every Board and is never persisted across
// archive boundaries - see internal/archive.
type ZobristTable struct {
	size   vertex.BoardSize
	pieces [][2]Key // indexed [((x-1)*size + (y-1))][colorIndex]
}

// NewZobristTable builds a table sized for size, filling it deterministically
// from seed so tests are reproducible. Production callers may seed from
// time for non-reproducible but still-internally-consistent hashes.
func NewZobristTable(size vertex.BoardSize, seed uint64) (*ZobristTable, error) {
	if !size.Valid() {
		return nil, gamerr.New(gamerr.InvalidArgument, "invalid board size %v", size)
	}
	r := newRandom(seed)
	n := int(size) * int(size)
	t := &ZobristTable{size: size, pieces: make([][2]Key, n)}
	for i := 0; i < n; i++ {
		t.pieces[i][0] = Key(r.rand64())
		t.pieces[i][1] = Key(r.rand64())
	}
	return t, nil
}

func (t *ZobristTable) index(v vertex.Vertex) int {
	return (v.X-1)*int(t.size) + (v.Y - 1)
}

// PieceKey returns the random value for (v, color). Panics if v is out of
// range for the table's size or color is not Black/White - callers must
// validate both beforehand, mirroring vertex.ColorIndex's contract.
func (t *ZobristTable) PieceKey(v vertex.Vertex, color vertex.Color) Key {
	if !v.Valid(t.size) {
		panic("board: PieceKey called with out-of-range vertex")
	}
	return t.pieces[t.index(v)][vertex.ColorIndex(color)]
}

// HashForHandicap computes the zobristHashAfterHandicap: the XOR of the
// Black piece key for every handicap point, starting from 0.
func (t *ZobristTable) HashForHandicap(points []vertex.Vertex) Key {
	var h Key
	for _, p := range points {
		h ^= t.PieceKey(p, vertex.Black)
	}
	return h
}

// HashForPass returns parentHash unchanged - a pass never alters the board
// position.
func (t *ZobristTable) HashForPass(parentHash Key) Key {
	return parentHash
}

// HashForMove computes the hash after a Play move by color at point,
// capturing the given set of opposing points. parentHash is the hash of
// the position immediately before the move.
func (t *ZobristTable) HashForMove(parentHash Key, point vertex.Vertex, color vertex.Color, captured []vertex.Vertex) Key {
	h := parentHash
	opp := color.Opposite()
	for _, q := range captured {
		h ^= t.PieceKey(q, opp)
	}
	h ^= t.PieceKey(point, color)
	return h
}

// HashForSetupPlacement folds in a single setup placement: point moves
// from previous (None/Black/White) to target (Black/White). Symmetric
// XOR-out-then-XOR-in, matching HashForSetupRemoval's inverse.
func (t *ZobristTable) HashForSetupPlacement(parentHash Key, point vertex.Vertex, previous, target vertex.StoneState) Key {
	h := parentHash
	if previous != vertex.None {
		h ^= t.PieceKey(point, previous)
	}
	h ^= t.PieceKey(point, target)
	return h
}

// HashForSetupRemoval folds in removing a stone (setting it to None).
// Fails InternalInconsistency if previous is None - removing an already
// empty point means the setup snapshot was wrong.
func (t *ZobristTable) HashForSetupRemoval(parentHash Key, point vertex.Vertex, previous vertex.StoneState) (Key, error) {
	if previous == vertex.None {
		return parentHash, gamerr.New(gamerr.InternalInconsistency, "setup removal at %v has no previous colour", point)
	}
	return parentHash ^ t.PieceKey(point, previous), nil
}
