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

import (
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// setupPrecondition fails StateInvalid once any move exists anywhere in
// the tree: board setup is only meaningful before play begins (spec §4.4).
func (g *Game) setupPrecondition() error {
	if g.nodeModel.NumberOfMoves() > 0 {
		return gamerr.New(gamerr.StateInvalid, "board setup is only valid before the first move")
	}
	return nil
}

// ChangeSetupPoint sets point to targetState on the current leaf's
// NodeSetup, validating via IsLegalBoardSetupAt first. Applying a point's
// own original occupation (as recorded in PreviousOccupation the first
// time this node's setup touched it) is idempotent: it drops the point
// from the setup entirely rather than recording a no-op entry (spec P7).
func (g *Game) ChangeSetupPoint(point vertex.Vertex, targetState vertex.StoneState) error {
	if err := g.setupPrecondition(); err != nil {
		return err
	}
	p, err := g.board.PointAt(point)
	if err != nil {
		return err
	}
	if legal, lerr := g.IsLegalBoardSetupAt(point, targetState); !legal {
		return lerr
	}

	leaf := g.nodeModel.CurrentLeaf()
	if leaf.Setup == nil {
		leaf.Setup = newNodeSetup()
	}
	setup := leaf.Setup
	setup.recordPrevious(point, p.StoneState())

	setup.BlackSetupStones = removeFromSlice(setup.BlackSetupStones, point)
	setup.WhiteSetupStones = removeFromSlice(setup.WhiteSetupStones, point)
	setup.NoSetupStones = removeFromSlice(setup.NoSetupStones, point)
	switch targetState {
	case vertex.Black:
		setup.BlackSetupStones = append(setup.BlackSetupStones, point)
	case vertex.White:
		setup.WhiteSetupStones = append(setup.WhiteSetupStones, point)
	case vertex.None:
		setup.NoSetupStones = append(setup.NoSetupStones, point)
	}

	if targetState == setup.PreviousOccupation[point] {
		// Net no-op against the point's original occupation: drop all
		// tracking of it so the setup doesn't grow unboundedly under
		// repeated toggling.
		setup.BlackSetupStones = removeFromSlice(setup.BlackSetupStones, point)
		setup.WhiteSetupStones = removeFromSlice(setup.WhiteSetupStones, point)
		setup.NoSetupStones = removeFromSlice(setup.NoSetupStones, point)
		delete(setup.PreviousOccupation, point)
	}

	g.board.SetStoneState(p, targetState)
	if setup.Empty() {
		leaf.Setup = nil
	}
	g.recomputeHashesBottomUp()
	return nil
}

// ChangeSetupFirstMoveColor overrides which colour moves first, recorded
// on the current leaf's NodeSetup.
func (g *Game) ChangeSetupFirstMoveColor(color vertex.Color) error {
	if err := g.setupPrecondition(); err != nil {
		return err
	}
	leaf := g.nodeModel.CurrentLeaf()
	if leaf.Setup == nil {
		leaf.Setup = newNodeSetup()
	}
	leaf.Setup.SetupFirstMoveColor = color
	g.setupFirstMoveColorOverride = color
	g.recomputeNextMoveColor()
	if leaf.Setup.Empty() {
		leaf.Setup = nil
	}
	return nil
}

// DiscardAllSetup reverts every placement/removal recorded on the current
// leaf's NodeSetup back to each point's pre-setup occupation, and clears
// any first-move-colour override.
func (g *Game) DiscardAllSetup() error {
	if err := g.setupPrecondition(); err != nil {
		return err
	}
	leaf := g.nodeModel.CurrentLeaf()
	if leaf.Setup == nil {
		return nil
	}
	for v, prev := range leaf.Setup.PreviousOccupation {
		p, err := g.board.PointAt(v)
		if err != nil {
			continue
		}
		g.board.SetStoneState(p, prev)
	}
	leaf.Setup = nil
	g.setupFirstMoveColorOverride = vertex.None
	g.recomputeNextMoveColor()
	g.recomputeHashesBottomUp()
	return nil
}
