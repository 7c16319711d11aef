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

// Package score is the read-only territory/scoring overlay of spec §4.2/§9:
// it walks a Board's Region partition, classifying every empty Region's
// bordering colour via Region.AdjacentRegions/IsStoneGroup, folds in the
// dead-stone set reported by internal/oracle, and turns the result into a
// final score under the Game's configured Rules. It never mutates the
// partition itself - only the scoring annotations Region carries for this
// purpose (TerritoryColor, TerritoryInconsistencyFound, StoneGroupState).
package score

import (
	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// EnterScoringMode snapshots every Region of b, per spec §5: while the
// snapshot is active the game thread must not mutate the partition, which
// is what lets internal/oracle query dead stones from a worker-pool
// goroutine concurrently with the game thread reading the same Regions.
func EnterScoringMode(b *board.Board) {
	for _, r := range b.Regions() {
		r.EnterScoringMode()
	}
}

// ExitScoringMode invalidates every Region's scoring-mode snapshot,
// ending the read-only window opened by EnterScoringMode.
func ExitScoringMode(b *board.Board) {
	for _, r := range b.Regions() {
		r.ExitScoringMode()
	}
}

// ClassifyTerritory assigns TerritoryColor and TerritoryInconsistencyFound
// to every empty Region of b by inspecting the colours of its adjacent
// stone-group Regions: a Region bordered by exactly one colour belongs to
// that colour's territory; a Region bordered by both, or by none, is
// marked inconsistent (dame, or territory that cannot be settled without
// further play). Stone-group Regions are left untouched.
func ClassifyTerritory(b *board.Board) {
	for _, r := range b.Regions() {
		if r.IsStoneGroup() {
			continue
		}
		classifyRegion(r)
	}
}

func classifyRegion(r *board.Region) {
	found := vertex.None
	inconsistent := false
	for _, adj := range r.AdjacentRegions() {
		if !adj.IsStoneGroup() {
			continue
		}
		c := adj.Color()
		switch {
		case found == vertex.None:
			found = c
		case found != c:
			inconsistent = true
		}
	}
	if inconsistent {
		r.TerritoryColor = vertex.None
		r.TerritoryInconsistencyFound = true
		return
	}
	r.TerritoryColor = found
	r.TerritoryInconsistencyFound = false
}

// MarkDeadStoneGroups sets StoneGroupState on every stone-group Region of
// b: StoneGroupDead for a Region containing any vertex in dead,
// StoneGroupAlive for every other stone-group Region. Seki groups are
// never inferred here, and no other code in this module assigns
// StoneGroupSeki either.
func MarkDeadStoneGroups(b *board.Board, dead []vertex.Vertex) {
	deadSet := make(map[vertex.Vertex]struct{}, len(dead))
	for _, v := range dead {
		deadSet[v] = struct{}{}
	}
	for _, r := range b.Regions() {
		if !r.IsStoneGroup() {
			continue
		}
		isDead := false
		for _, p := range r.Points() {
			if _, ok := deadSet[p.Vertex()]; ok {
				isDead = true
				break
			}
		}
		if isDead {
			r.StoneGroupState = board.StoneGroupDead
		} else {
			r.StoneGroupState = board.StoneGroupAlive
		}
	}
}
