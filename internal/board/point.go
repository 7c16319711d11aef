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

import "github.com/frankkopp/weiqi/internal/vertex"

// Point is one board intersection. Identity (board, vertex) is immutable;
// stoneState and the owning region handle are mutable and change as the
// partition evolves. Neighbours and the next/previous chain are computed
// once at Board construction and never change afterwards.
type Point struct {
	board      *Board
	v          vertex.Vertex
	stoneState vertex.StoneState
	regionID   int

	neighbours [4]*Point // indexed by Direction: Left, Right, Up, Down; nil at an edge
	next       *Point    // nil for the last point (N,N)
	previous   *Point    // nil for the first point (1,1)
}

// Vertex returns the point's immutable coordinate.
func (p *Point) Vertex() vertex.Vertex {
	return p.v
}

// StoneState returns the point's current occupation.
func (p *Point) StoneState() vertex.StoneState {
	return p.stoneState
}

// Region returns the Region this point currently belongs to. Every Point
// always belongs to exactly one Region (invariant R3 / P1).
func (p *Point) Region() *Region {
	return p.board.regions[p.regionID]
}

// Neighbour returns the cached neighbour in the given direction, or nil at
// a board edge. Next/Previous step through the board's row-major linear
// order: Next advances x by one, wrapping to (1, y+1) past the edge,
// ending at (N,N); Previous is the exact inverse.
func (p *Point) Neighbour(dir Direction) *Point {
	switch dir {
	case Left, Right, Up, Down:
		return p.neighbours[dir]
	case Next:
		return p.next
	case Previous:
		return p.previous
	default:
		return nil
	}
}

// Neighbours returns the four edge-adjacent points in the deterministic
// Left, Right, Up, Down order, omitting nils at board edges.
func (p *Point) Neighbours() []*Point {
	out := make([]*Point, 0, 4)
	for _, dir := range adjacentDirections {
		if n := p.neighbours[dir]; n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (p *Point) String() string {
	return p.v.String()
}
