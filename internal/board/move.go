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
	"github.com/frankkopp/weiqi/internal/assert"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// PlaceStone executes the low-level mechanics of a Play move: it sets
// point's stoneState, re-partitions it (possibly merging with friendly
// neighbour Regions), then removes every opposing neighbour Region left
// with zero liberties, returning their members as the ordered captured
// list. Legality (suicide, ko, occupied intersection) must already have
// been checked by the caller - PlaceStone only asserts its precondition
// in debug builds.
func (b *Board) PlaceStone(p *Point, color vertex.Color) []*Point {
	assert.Assert(p.stoneState == vertex.None, "PlaceStone: %v is not empty", p)

	p.stoneState = color
	b.MovePointToNewRegion(p)

	var captured []*Point
	seenRegions := map[int]bool{}
	opp := color.Opposite()
	for _, dir := range adjacentDirections {
		q := p.neighbours[dir]
		if q == nil || q.stoneState != opp {
			continue
		}
		qr := q.Region()
		if qr == nil || seenRegions[qr.id] {
			continue
		}
		seenRegions[qr.id] = true
		libs, err := qr.Liberties()
		assert.Assert(err == nil, "Liberties failed on opposing region during capture check: %v", err)
		if libs == 0 {
			captured = append(captured, qr.Points()...)
		}
	}

	for _, cp := range captured {
		cp.stoneState = vertex.None
		b.MovePointToNewRegion(cp)
	}

	return captured
}

// SetStoneState directly assigns point's stoneState and re-partitions it,
// bypassing capture/suicide mechanics entirely. Used by internal/game for
// handicap placement and board-setup edits, which have their own legality
// checks and do not go through the capture path.
func (b *Board) SetStoneState(point *Point, state vertex.StoneState) {
	point.stoneState = state
	b.MovePointToNewRegion(point)
}

// UndoPlaceStone reverts a Play move by first restoring every captured
// Point to the opposing colour (so the re-partition merges correctly),
// then clearing point itself and re-partitioning it.
func (b *Board) UndoPlaceStone(point *Point, color vertex.Color, captured []*Point) {
	opp := color.Opposite()
	for _, cp := range captured {
		cp.stoneState = opp
	}
	for _, cp := range captured {
		b.MovePointToNewRegion(cp)
	}
	point.stoneState = vertex.None
	b.MovePointToNewRegion(point)
}
