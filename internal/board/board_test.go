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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/weiqi/internal/vertex"
)

func mustPoint(t *testing.T, b *Board, s string) *Point {
	t.Helper()
	v, err := vertex.Parse(s)
	require.NoError(t, err)
	p, err := b.PointAt(v)
	require.NoError(t, err)
	return p
}

// checkPartitionInvariants is the P1-P3 property check, usable from any
// test that has mutated a Board's partition.
func checkPartitionInvariants(t *testing.T, b *Board) {
	t.Helper()
	seen := map[*Point]bool{}
	for _, r := range b.Regions() {
		pts := r.Points()
		require.NotEmpty(t, pts, "region %d must not be empty", r.ID())
		for _, p := range pts {
			assert.False(t, seen[p], "P1 violated: %v counted in more than one region", p)
			seen[p] = true
			assert.Equal(t, r.Color(), p.StoneState(), "P2 violated: %v state mismatches region colour", p)
		}
		// P3: connectivity - BFS from the first point must reach every member.
		visited := map[*Point]bool{pts[0]: true}
		queue := []*Point{pts[0]}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range cur.Neighbours() {
				if n.Region() == r && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		assert.Len(t, visited, len(pts), "P3 violated: region %d not connected", r.ID())
	}
	for _, p := range b.AllPoints() {
		assert.True(t, seen[p], "P1 violated: %v missing from every region", p)
	}
}

func TestNewBoardSizes(t *testing.T) {
	for _, size := range vertex.AllBoardSizes {
		b, err := NewBoard(size, 1)
		require.NoError(t, err)
		assert.Equal(t, size, b.Size())
		assert.Equal(t, 1, b.RegionCount(), "a freshly constructed board is a single empty region")
		checkPartitionInvariants(t, b)
	}
}

func TestNewBoardInvalidSize(t *testing.T) {
	_, err := NewBoard(vertex.Undefined, 1)
	assert.Error(t, err)
	_, err = NewBoard(vertex.BoardSize(8), 1)
	assert.Error(t, err)
}

func TestPointNeighboursAtEdge(t *testing.T) {
	b, err := NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	corner := mustPoint(t, b, "A1")
	assert.Nil(t, corner.Neighbour(Left))
	assert.Nil(t, corner.Neighbour(Down))
	assert.NotNil(t, corner.Neighbour(Right))
	assert.NotNil(t, corner.Neighbour(Up))
}

func TestNextPreviousChain(t *testing.T) {
	b, err := NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	last := mustPoint(t, b, "J9")
	assert.Nil(t, last.Neighbour(Next))
	first := mustPoint(t, b, "A1")
	assert.Nil(t, first.Neighbour(Previous))
	// end of row 1 wraps to start of row 2
	rowEnd := mustPoint(t, b, "J1")
	rowStart := mustPoint(t, b, "A2")
	assert.Same(t, rowStart, rowEnd.Neighbour(Next))
	assert.Same(t, rowEnd, rowStart.Neighbour(Previous))
}

func TestPlaceStoneMerge(t *testing.T) {
	b, err := NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	d4 := mustPoint(t, b, "D4")
	e4 := mustPoint(t, b, "E4")
	b.PlaceStone(d4, vertex.Black)
	b.PlaceStone(e4, vertex.Black)
	assert.Same(t, d4.Region(), e4.Region(), "adjacent same-colour stones merge into one region")
	checkPartitionInvariants(t, b)
}

func TestPlaceStoneCapture(t *testing.T) {
	// S1-style capture: surround a single White stone at E4.
	b, err := NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	white := mustPoint(t, b, "E4")
	b.PlaceStone(white, vertex.White)
	b.PlaceStone(mustPoint(t, b, "E5"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "E3"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "D4"), vertex.Black)
	captured := b.PlaceStone(mustPoint(t, b, "F4"), vertex.Black)
	require.Len(t, captured, 1)
	assert.Equal(t, white, captured[0])
	assert.Equal(t, vertex.None, white.StoneState())
	checkPartitionInvariants(t, b)
}

func TestUndoPlaceStoneRestoresPartition(t *testing.T) {
	b, err := NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	white := mustPoint(t, b, "E4")
	b.PlaceStone(white, vertex.White)
	b.PlaceStone(mustPoint(t, b, "E5"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "E3"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "D4"), vertex.Black)
	regionsBefore := b.RegionCount()
	f4 := mustPoint(t, b, "F4")
	captured := b.PlaceStone(f4, vertex.Black)
	b.UndoPlaceStone(f4, vertex.Black, captured)
	assert.Equal(t, vertex.None, f4.StoneState())
	assert.Equal(t, vertex.White, white.StoneState())
	assert.Equal(t, regionsBefore, b.RegionCount())
	checkPartitionInvariants(t, b)
}

func TestRegionSplitOnRemoval(t *testing.T) {
	// S5-style: capture two White stones enclosed by Black, leaving a
	// single connected 2-point empty region where there was one 2-point
	// White region before.
	b, err := NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	b.PlaceStone(mustPoint(t, b, "C3"), vertex.White)
	b.PlaceStone(mustPoint(t, b, "C4"), vertex.White)
	b.PlaceStone(mustPoint(t, b, "B3"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "B4"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "D3"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "D4"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "C2"), vertex.Black)
	captured := b.PlaceStone(mustPoint(t, b, "C5"), vertex.Black)
	assert.Len(t, captured, 2)
	c3 := mustPoint(t, b, "C3")
	c4 := mustPoint(t, b, "C4")
	assert.Same(t, c3.Region(), c4.Region(), "the two freed points form one connected empty region")
	checkPartitionInvariants(t, b)
}

func TestScoringModeSnapshot(t *testing.T) {
	b, err := NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	b.PlaceStone(mustPoint(t, b, "D4"), vertex.Black)
	b.PlaceStone(mustPoint(t, b, "E4"), vertex.Black)
	r := mustPoint(t, b, "D4").Region()
	libsBefore, err := r.Liberties()
	require.NoError(t, err)
	r.EnterScoringMode()
	libsCached, err := r.Liberties()
	require.NoError(t, err)
	assert.Equal(t, libsBefore, libsCached, "P9: cached value equals freshly computed value")
	r.ExitScoringMode()
	libsAfter, err := r.Liberties()
	require.NoError(t, err)
	assert.Equal(t, libsBefore, libsAfter)
}
