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
	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// Play executes a move for the side to move, appending a Move-carrying
// Node to the current variation. Fails MoveIllegal per IsLegalMove, or
// StateInvalid if the game is not accepting moves.
func (g *Game) Play(point vertex.Vertex) error {
	if g.state != HasStarted {
		return gamerr.New(gamerr.StateInvalid, "Play: game is %v", g.state)
	}
	color := g.nextMoveColor
	if legal, err := g.IsLegalMove(point, color); !legal {
		return err
	}
	p, perr := g.board.PointAt(point)
	if perr != nil {
		return perr
	}
	leaf := g.nodeModel.CurrentLeaf()
	parentHash := leaf.ZobristHash

	captured := g.board.PlaceStone(p, color)
	capturedVertices := toVertices(captured)

	node := g.nodeModel.NewNode()
	node.Move = &Move{
		Type:           Play,
		PlayerColor:    color,
		Point:          point,
		CapturedStones: capturedVertices,
		MoveNumber:     nextMoveNumber(leaf),
	}
	node.ZobristHash = g.board.Zobrist().HashForMove(parentHash, point, color, capturedVertices)
	if err := g.nodeModel.AppendNode(node); err != nil {
		return err
	}
	g.nextMoveColor = color.Opposite()
	getLog().Debugf("%v plays %v, captures %d", color, point, len(captured))
	return nil
}

// Pass executes a pass for the side to move, then evaluates the §4.8 pass
// termination rules.
func (g *Game) Pass() error {
	if g.state != HasStarted {
		return gamerr.New(gamerr.StateInvalid, "Pass: game is %v", g.state)
	}
	color := g.nextMoveColor
	if legal, err := g.IsLegalPassMove(color); !legal {
		return err
	}
	leaf := g.nodeModel.CurrentLeaf()
	node := g.nodeModel.NewNode()
	node.Move = &Move{
		Type:        Pass,
		PlayerColor: color,
		Point:       vertex.Pass,
		MoveNumber:  nextMoveNumber(leaf),
	}
	node.ZobristHash = g.board.Zobrist().HashForPass(leaf.ZobristHash)
	if err := g.nodeModel.AppendNode(node); err != nil {
		return err
	}
	g.nextMoveColor = color.Opposite()
	g.checkPassTermination()
	return nil
}

// Undo reverts the most recent Move of the current variation: restores
// the board (placing any captured stones back, removing the undone
// stone), discards the Move's Node from the tree, restores
// nextMoveColor, and un-ends the game if undoing the move that ended it
// via pass termination. Fails StateInvalid if the current leaf has no
// Move to undo (the root, or a Setup-only node).
func (g *Game) Undo() error {
	leaf := g.nodeModel.CurrentLeaf()
	if leaf.Move == nil {
		return gamerr.New(gamerr.StateInvalid, "Undo: nothing to undo")
	}
	move := leaf.Move
	if move.Type == Play {
		p, err := g.board.PointAt(move.Point)
		if err != nil {
			return err
		}
		captured := make([]*board.Point, 0, len(move.CapturedStones))
		for _, v := range move.CapturedStones {
			cp, cerr := g.board.PointAt(v)
			if cerr != nil {
				return cerr
			}
			captured = append(captured, cp)
		}
		g.board.UndoPlaceStone(p, move.PlayerColor, captured)
	}
	index := g.nodeModel.IndexOfNode(leaf)
	if index < 1 {
		return gamerr.New(gamerr.InternalInconsistency, "Undo: current leaf is the root")
	}
	if err := g.nodeModel.DiscardNodesFromIndex(index); err != nil {
		return err
	}
	g.nextMoveColor = move.PlayerColor
	if g.state == HasEnded {
		if err := g.RevertStateFromEndedToInProgress(); err != nil {
			return err
		}
	}
	getLog().Debugf("undo %v %v", move.PlayerColor, move.Point)
	return nil
}

func nextMoveNumber(leaf *Node) int {
	if mrn := mostRecentMoveNode(leaf); mrn != nil {
		return mrn.Move.MoveNumber + 1
	}
	return 1
}

// checkPassTermination counts the run of consecutive Pass moves ending at
// the current leaf and ends the game under the highest-precedence rule
// that applies: four passes, then three, then two.
func (g *Game) checkPassTermination() {
	k := 0
	cv := g.nodeModel.currentVariation
	for i := len(cv) - 1; i >= 0; i-- {
		m := cv[i].Move
		if m == nil {
			continue
		}
		if m.Type != Pass {
			break
		}
		k++
	}
	switch {
	case k >= 4 && g.rules.FourPassesRule == FourPassesEndTheGame:
		g.end(FourPassesEnd)
	case k >= 3 && g.rules.LifeAndDeathSettlingRule == ThreePasses:
		g.end(ThreePassesEnd)
	case k >= 2 && k%2 == 0 && g.rules.LifeAndDeathSettlingRule == TwoPasses:
		g.end(TwoPassesEnd)
	}
}

func (g *Game) end(reason ReasonForEnd) {
	g.state = HasEnded
	g.reasonForEnd = reason
	getLog().Debugf("game ended: %v", reason)
}

// Resign ends the game immediately in favour of by's opponent. Valid from
// HasStarted or IsPaused.
func (g *Game) Resign(by vertex.Color) error {
	if g.state != HasStarted && g.state != IsPaused {
		return gamerr.New(gamerr.StateInvalid, "Resign: game is %v", g.state)
	}
	if by == vertex.Black {
		g.end(ResignationByBlack)
	} else {
		g.end(ResignationByWhite)
	}
	return nil
}

// SetTwoComputerGame marks whether this Game is refereeing two
// independent automated players, which is the only configuration Pause
// and Continue accept.
func (g *Game) SetTwoComputerGame(v bool) {
	g.twoComputerGame = v
}

// Pause suspends a two-computer game. Fails StateInvalid otherwise.
func (g *Game) Pause() error {
	if !g.twoComputerGame {
		return gamerr.New(gamerr.StateInvalid, "Pause: not a two-computer game")
	}
	if g.state != HasStarted {
		return gamerr.New(gamerr.StateInvalid, "Pause: game is %v", g.state)
	}
	g.state = IsPaused
	return nil
}

// Continue resumes a paused two-computer game.
func (g *Game) Continue() error {
	if !g.twoComputerGame {
		return gamerr.New(gamerr.StateInvalid, "Continue: not a two-computer game")
	}
	if g.state != IsPaused {
		return gamerr.New(gamerr.StateInvalid, "Continue: game is %v", g.state)
	}
	g.state = HasStarted
	return nil
}

// RevertStateFromEndedToInProgress un-ends a game, e.g. after an
// accidental resignation, returning to IsPaused for a two-computer game or
// HasStarted otherwise.
func (g *Game) RevertStateFromEndedToInProgress() error {
	if g.state != HasEnded {
		return gamerr.New(gamerr.StateInvalid, "RevertStateFromEndedToInProgress: game is %v", g.state)
	}
	if g.twoComputerGame {
		g.state = IsPaused
	} else {
		g.state = HasStarted
	}
	g.reasonForEnd = NotEnded
	return nil
}

// SetHandicapPoints replaces the game's handicap stones, failing
// StateInvalid once any move has been played.
func (g *Game) SetHandicapPoints(points []vertex.Vertex) error {
	if g.nodeModel.NumberOfMoves() > 0 {
		return gamerr.New(gamerr.StateInvalid, "SetHandicapPoints: moves have already been played")
	}
	return g.setHandicapPointsLocked(points)
}

// ToggleHandicapPoint adds point to the handicap if absent, or removes it
// if present, then re-derives the handicap hash and side to move.
func (g *Game) ToggleHandicapPoint(point vertex.Vertex) error {
	if g.nodeModel.NumberOfMoves() > 0 {
		return gamerr.New(gamerr.StateInvalid, "ToggleHandicapPoint: moves have already been played")
	}
	var next []vertex.Vertex
	found := false
	for _, v := range g.handicapPoints {
		if v == point {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, point)
	}
	return g.setHandicapPointsLocked(next)
}

// setHandicapPointsLocked clears every currently placed handicap stone,
// validates and places the new set, then recomputes
// zobristHashAfterHandicap, every Node's hash, and the side to move. It is
// shared by NewGame, SetHandicapPoints, and ToggleHandicapPoint.
func (g *Game) setHandicapPointsLocked(points []vertex.Vertex) error {
	for _, v := range g.handicapPoints {
		p, err := g.board.PointAt(v)
		if err != nil {
			continue
		}
		if p.StoneState() == vertex.Black {
			g.board.SetStoneState(p, vertex.None)
		}
	}
	placed := make([]*board.Point, 0, len(points))
	for _, v := range points {
		p, err := g.board.PointAt(v)
		if err != nil {
			return err
		}
		if p.StoneState() != vertex.None {
			return gamerr.New(gamerr.InvalidArgument, "setHandicapPointsLocked: %v is not empty", v)
		}
		placed = append(placed, p)
	}
	for _, p := range placed {
		g.board.SetStoneState(p, vertex.Black)
	}

	g.handicapPoints = append([]vertex.Vertex{}, points...)
	g.zobristHashAfterHandicap = g.board.Zobrist().HashForHandicap(points)
	g.recomputeNextMoveColor()
	g.recomputeHashesBottomUp()
	return nil
}
