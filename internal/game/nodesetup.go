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

package game

import "github.com/frankkopp/weiqi/internal/vertex"

// NodeSetup carries a Node's explicit stone placements/removals and an
// optional override of the colour to move first. PreviousOccupation is a
// snapshot of what every touched Point held immediately before the setup
// was applied, captured so the setup can be reverted idempotently
// (spec P7) without consulting sibling state.
type NodeSetup struct {
	BlackSetupStones []vertex.Vertex
	WhiteSetupStones []vertex.Vertex
	NoSetupStones    []vertex.Vertex

	SetupFirstMoveColor vertex.StoneState // vertex.None means "no override"

	PreviousOccupation map[vertex.Vertex]vertex.StoneState
}

// Empty reports whether the setup has no effect at all - no placements,
// no removals, and no first-move-colour override. A Node carrying an
// Empty NodeSetup should have its Setup field dropped entirely (P7).
func (s *NodeSetup) Empty() bool {
	if s == nil {
		return true
	}
	return len(s.BlackSetupStones) == 0 &&
		len(s.WhiteSetupStones) == 0 &&
		len(s.NoSetupStones) == 0 &&
		s.SetupFirstMoveColor == vertex.None
}

// newNodeSetup returns an empty, ready-to-populate NodeSetup.
func newNodeSetup() *NodeSetup {
	return &NodeSetup{PreviousOccupation: map[vertex.Vertex]vertex.StoneState{}}
}

// recordPrevious snapshots v's current state the first time v is touched
// by this setup, so later idempotent reverts see the true original value
// rather than an intermediate one from earlier in the same setup.
func (s *NodeSetup) recordPrevious(v vertex.Vertex, state vertex.StoneState) {
	if _, ok := s.PreviousOccupation[v]; !ok {
		s.PreviousOccupation[v] = state
	}
}

// removeFromSlice returns a copy of vs with every occurrence of v removed.
func removeFromSlice(vs []vertex.Vertex, v vertex.Vertex) []vertex.Vertex {
	out := vs[:0:0]
	for _, e := range vs {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}
