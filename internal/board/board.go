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

// Package board implements the Go board: the fixed grid of Points, the
// dynamic partition of Points into connected Regions, and the per-board
// Zobrist table used for position hashing. All mutation happens on one
// logical thread, per the game package's single-threaded contract.
package board

import (
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/logging"
	"github.com/frankkopp/weiqi/internal/vertex"
	golog "github.com/op/go-logging"
)

var log *golog.Logger

func getLog() *golog.Logger {
	if log == nil {
		log = logging.GetLog()
	}
	return log
}

// Board owns its N^2 Points, eagerly constructed, its star-point list
// (read-only after construction), its Region registry, and a
// ZobristTable sized for N. No lazy Point allocation happens outside
// construction.
type Board struct {
	size       vertex.BoardSize
	points     []*Point // column-major: index = (x-1)*size + (y-1)
	starPoints []vertex.Vertex
	zobrist    *ZobristTable

	regions      map[int]*Region
	nextRegionID int
}

// NewBoard allocates a Board of the given size, wiring every Point's
// neighbours and next/previous chain, seeding its ZobristTable, and
// placing every Point into a single initial empty Region. Fails
// InvalidArgument for an unsupported or Undefined size.
func NewBoard(size vertex.BoardSize, zobristSeed uint64) (*Board, error) {
	if !size.Valid() {
		return nil, gamerr.New(gamerr.InvalidArgument, "NewBoard: invalid size %v", size)
	}
	zt, err := NewZobristTable(size, zobristSeed)
	if err != nil {
		return nil, err
	}
	b := &Board{
		size:         size,
		points:       make([]*Point, int(size)*int(size)),
		starPoints:   starPointsFor(size),
		zobrist:      zt,
		regions:      map[int]*Region{},
		nextRegionID: 1,
	}
	n := int(size)
	for x := 1; x <= n; x++ {
		for y := 1; y <= n; y++ {
			b.points[b.index(x, y)] = &Point{board: b, v: vertex.Vertex{X: x, Y: y}}
		}
	}
	b.wireNeighbours()
	b.wireChain()
	b.newRegionWithPoints(vertex.None, append([]*Point{}, b.points...))
	getLog().Debugf("constructed board size=%v", size)
	return b, nil
}

func (b *Board) index(x, y int) int {
	return (x-1)*int(b.size) + (y - 1)
}

func (b *Board) pointAtXY(x, y int) *Point {
	if x < 1 || x > int(b.size) || y < 1 || y > int(b.size) {
		return nil
	}
	return b.points[b.index(x, y)]
}

func (b *Board) wireNeighbours() {
	n := int(b.size)
	for x := 1; x <= n; x++ {
		for y := 1; y <= n; y++ {
			p := b.pointAtXY(x, y)
			p.neighbours[Left] = b.pointAtXY(x-1, y)
			p.neighbours[Right] = b.pointAtXY(x+1, y)
			p.neighbours[Up] = b.pointAtXY(x, y+1)
			p.neighbours[Down] = b.pointAtXY(x, y-1)
		}
	}
}

// wireChain links the row-major linear order: Next advances x by one; if
// x exceeds N it wraps to x=1, y+=1; ends at (N,N). Previous is the exact
// inverse.
func (b *Board) wireChain() {
	n := int(b.size)
	var prev *Point
	for y := 1; y <= n; y++ {
		for x := 1; x <= n; x++ {
			cur := b.pointAtXY(x, y)
			if prev != nil {
				prev.next = cur
				cur.previous = prev
			}
			prev = cur
		}
	}
}

// Size returns the board's edge length.
func (b *Board) Size() vertex.BoardSize {
	return b.size
}

// StarPoints returns the board's conventional star-point vertices.
func (b *Board) StarPoints() []vertex.Vertex {
	return b.starPoints
}

// Zobrist returns the board's ZobristTable.
func (b *Board) Zobrist() *ZobristTable {
	return b.zobrist
}

// PointAt returns the Point at v, or fails InvalidArgument if v is
// outside the board.
func (b *Board) PointAt(v vertex.Vertex) (*Point, error) {
	if !v.Valid(b.size) {
		return nil, gamerr.New(gamerr.InvalidArgument, "PointAt: %v out of range for size %v", v, b.size)
	}
	return b.points[b.index(v.X, v.Y)], nil
}

// AllPoints returns every Point in column-major order (A1, A2, ..., then
// B1, ...). The caller must not
// retain the slice across a mutation; a fresh one is not allocated on
// every call for performance, mirroring the Point's own eager construction.
func (b *Board) AllPoints() []*Point {
	return b.points
}

// RegionCount returns the number of live Regions in the partition - used
// by invariant tests (P1: every Point belongs to exactly one Region).
func (b *Board) RegionCount() int {
	return len(b.regions)
}

// Regions returns every live Region, ordered by ID.
func (b *Board) Regions() []*Region {
	out := make([]*Region, 0, len(b.regions))
	for _, r := range b.regions {
		out = append(out, r)
	}
	// IDs are assigned monotonically and never reused; a simple insertion
	// sort keeps this deterministic without importing sort twice.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].id > out[j].id; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func (b *Board) newRegionWithPoints(state vertex.StoneState, pts []*Point) *Region {
	id := b.nextRegionID
	b.nextRegionID++
	r := &Region{id: id, board: b, state: state, points: map[*Point]struct{}{}}
	for _, p := range pts {
		r.points[p] = struct{}{}
		p.regionID = id
	}
	b.regions[id] = r
	return r
}

func (b *Board) destroyRegion(r *Region) {
	delete(b.regions, r.id)
}

// splitAfterRemoval is called immediately after p has been detached from
// region (region.points no longer contains p, p.regionID == 0). For each
// neighbour q of p still assigned to region, in Left/Right/Up/Down order,
// it discovers q's connected component within region by a breadth-first
// search. If the
// first discovered component already covers every remaining Point, no
// split occurs. Otherwise every non-first component is carved out into a
// new Region.
func (b *Board) splitAfterRemoval(region *Region, p *Point) {
	if len(region.points) == 0 {
		return
	}
	visited := map[*Point]bool{}
	var components [][]*Point
	for _, dir := range adjacentDirections {
		q := p.neighbours[dir]
		if q == nil {
			continue
		}
		if _, inRegion := region.points[q]; !inRegion {
			continue
		}
		if visited[q] {
			continue
		}
		comp := collectComponent(region, q, visited)
		components = append(components, comp)
		if len(comp) == len(region.points) {
			return // single component already spans every remaining point
		}
	}
	if len(components) <= 1 {
		return
	}
	for _, comp := range components[1:] {
		for _, cp := range comp {
			delete(region.points, cp)
		}
		b.newRegionWithPoints(region.state, comp)
	}
	region.invalidate()
}

func collectComponent(region *Region, start *Point, visited map[*Point]bool) []*Point {
	queue := []*Point{start}
	visited[start] = true
	var comp []*Point
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		comp = append(comp, cur)
		for _, dir := range adjacentDirections {
			n := cur.neighbours[dir]
			if n == nil {
				continue
			}
			if _, inRegion := region.points[n]; !inRegion {
				continue
			}
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return comp
}

// MovePointToNewRegion re-partitions p after its stoneState has already
// been set to the target value: it detaches p from its current Region
// (which may split that Region), then for each neighbour sharing p's new
// stoneState it either adopts that neighbour's Region (the first found)
// or joins the neighbour's Region into the one already chosen. If no such
// neighbour exists, p becomes a singleton Region. Returns p's new Region.
func (b *Board) MovePointToNewRegion(p *Point) *Region {
	if p.regionID != 0 {
		old := b.regions[p.regionID]
		_ = old.removePoint(p)
	}
	var chosen *Region
	for _, dir := range adjacentDirections {
		q := p.neighbours[dir]
		if q == nil || q.stoneState != p.stoneState {
			continue
		}
		qRegion := q.Region()
		if chosen == nil {
			chosen = qRegion
			chosen.points[p] = struct{}{}
			p.regionID = chosen.id
			chosen.invalidate()
		} else if qRegion != nil && qRegion.id != chosen.id {
			_ = chosen.joinRegion(qRegion)
		}
	}
	if chosen == nil {
		chosen = b.newRegionWithPoints(p.stoneState, []*Point{p})
	}
	return chosen
}
