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
	"sort"

	"github.com/frankkopp/weiqi/internal/assert"
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// StoneGroupState is a scoring annotation describing a stone group's
// life-and-death status. It is meaningful only to the external scoring
// collaborator; the legality core never reads it.
type StoneGroupState int

const (
	StoneGroupUndefined StoneGroupState = iota
	StoneGroupAlive
	StoneGroupDead
	StoneGroupSeki
)

// Region is a maximal 4-connected set of Points sharing the same
// StoneState (invariants R1, R2; R3 is the Board-wide partition
// invariant that every Point belongs to exactly one Region). A Region
// with StoneState != None is a stone group.
//
// Regions additionally carry scoring annotations used only by the
// external scoring collaborator (territoryColor, territoryInconsistencyFound,
// stoneGroupState), and a scoringMode flag: while true, Size/IsStoneGroup/
// Color/Liberties/AdjacentRegions are snapshotted; while false they are
// always computed fresh.
type Region struct {
	id    int
	board *Board
	state vertex.StoneState
	points map[*Point]struct{}

	scoringMode bool

	cachedSize         int
	cachedLiberties    int
	libertiesCached    bool
	cachedAdjacent     []*Region
	adjacentCached     bool

	// Scoring overlay, valid only while scoringMode is true.
	TerritoryColor               vertex.StoneState
	TerritoryInconsistencyFound  bool
	StoneGroupState              StoneGroupState
}

// ID is the Region's stable handle, assigned by the Board's region
// registry and never reused within a Board's lifetime.
func (r *Region) ID() int {
	return r.id
}

// Size is the number of Points in the Region.
func (r *Region) Size() int {
	if r.scoringMode {
		return r.cachedSize
	}
	return len(r.points)
}

// Color is the Region's shared stoneState.
func (r *Region) Color() vertex.StoneState {
	return r.state
}

// IsStoneGroup reports whether the Region's shared stoneState is a colour
// rather than None.
func (r *Region) IsStoneGroup() bool {
	return r.state != vertex.None
}

// Points returns the Region's members in a deterministic (row-major)
// order. Allocates a fresh slice on every call.
func (r *Region) Points() []*Point {
	out := make([]*Point, 0, len(r.points))
	for p := range r.points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].v, out[j].v
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// Liberties is the count of distinct empty Points adjacent to any member
// of a stone-group Region. Fails InternalInconsistency when called on a
// Region whose stoneState is None.
func (r *Region) Liberties() (int, error) {
	if !r.IsStoneGroup() {
		return 0, gamerr.New(gamerr.InternalInconsistency, "Liberties called on empty region %d", r.id)
	}
	if r.scoringMode && r.libertiesCached {
		return r.cachedLiberties, nil
	}
	n := r.countLiberties()
	if r.scoringMode {
		r.cachedLiberties = n
		r.libertiesCached = true
	}
	return n, nil
}

func (r *Region) countLiberties() int {
	seen := map[*Point]struct{}{}
	for p := range r.points {
		for _, dir := range adjacentDirections {
			if n := p.neighbours[dir]; n != nil && n.stoneState == vertex.None {
				seen[n] = struct{}{}
			}
		}
	}
	return len(seen)
}

// AdjacentRegions is the distinct set of other Regions reachable by one
// step from any member Point, ordered by Region ID for determinism.
func (r *Region) AdjacentRegions() []*Region {
	if r.scoringMode && r.adjacentCached {
		return r.cachedAdjacent
	}
	out := r.computeAdjacentRegions()
	if r.scoringMode {
		r.cachedAdjacent = out
		r.adjacentCached = true
	}
	return out
}

func (r *Region) computeAdjacentRegions() []*Region {
	seen := map[int]*Region{}
	for p := range r.points {
		for _, dir := range adjacentDirections {
			n := p.neighbours[dir]
			if n == nil {
				continue
			}
			nr := n.Region()
			if nr == nil || nr.id == r.id {
				continue
			}
			seen[nr.id] = nr
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*Region, 0, len(ids))
	for _, id := range ids {
		out = append(out, seen[id])
	}
	return out
}

// EnterScoringMode snapshots the five derived values (size, isStoneGroup,
// colour, liberties, adjacentRegions). While active, the game thread must
// not mutate the partition (see internal/oracle for the goroutine side of
// this contract).
func (r *Region) EnterScoringMode() {
	r.scoringMode = true
	r.cachedSize = len(r.points)
	if r.IsStoneGroup() {
		r.cachedLiberties = r.countLiberties()
		r.libertiesCached = true
	}
	r.cachedAdjacent = r.computeAdjacentRegions()
	r.adjacentCached = true
}

// ExitScoringMode invalidates the scoring-mode snapshot.
func (r *Region) ExitScoringMode() {
	r.scoringMode = false
	r.libertiesCached = false
	r.adjacentCached = false
}

// addPoint adds p to this Region, first detaching it from whatever Region
// currently holds it (which may trigger a split of that Region). Fails
// InvalidArgument if p is nil, already a member of this Region, or its
// stoneState does not match the Region's shared state.
func (r *Region) addPoint(p *Point) error {
	if p == nil {
		return gamerr.New(gamerr.InvalidArgument, "addPoint: point is nil")
	}
	if p.regionID == r.id {
		return gamerr.New(gamerr.InvalidArgument, "addPoint: %v already in region %d", p, r.id)
	}
	if p.stoneState != r.state {
		return gamerr.New(gamerr.InvalidArgument, "addPoint: %v stoneState %v does not match region state %v", p, p.stoneState, r.state)
	}
	if p.regionID != 0 {
		old := r.board.regions[p.regionID]
		if err := old.removePoint(p); err != nil {
			return err
		}
	}
	r.points[p] = struct{}{}
	p.regionID = r.id
	r.invalidate()
	return nil
}

// removePoint removes p from this Region. If the Region becomes empty it
// is destroyed; otherwise the removal may split the Region into multiple
// Regions (see splitAfterRemoval). Fails InvalidArgument if p is not a
// member.
func (r *Region) removePoint(p *Point) error {
	if _, ok := r.points[p]; !ok {
		return gamerr.New(gamerr.InvalidArgument, "removePoint: %v not in region %d", p, r.id)
	}
	delete(r.points, p)
	p.regionID = 0
	r.invalidate()
	if len(r.points) == 0 {
		r.board.destroyRegion(r)
		return nil
	}
	r.board.splitAfterRemoval(r, p)
	return nil
}

// joinRegion moves every Point of other into this Region; other is
// destroyed. Fails InvalidArgument if other is this Region or the two
// Regions' shared stoneState differ.
func (r *Region) joinRegion(other *Region) error {
	if other == r {
		return gamerr.New(gamerr.InvalidArgument, "joinRegion: region %d joined with itself", r.id)
	}
	if other.state != r.state {
		return gamerr.New(gamerr.InvalidArgument, "joinRegion: state mismatch %v vs %v", r.state, other.state)
	}
	for p := range other.points {
		r.points[p] = struct{}{}
		p.regionID = r.id
	}
	r.board.destroyRegion(other)
	r.invalidate()
	return nil
}

func (r *Region) invalidate() {
	assert.Assert(len(r.points) >= 0, "region %d has negative size", r.id)
	r.libertiesCached = false
	r.adjacentCached = false
}
