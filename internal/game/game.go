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
	golog "github.com/op/go-logging"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/logging"
	"github.com/frankkopp/weiqi/internal/vertex"
)

var log *golog.Logger

func getLog() *golog.Logger {
	if log == nil {
		log = logging.GetLog()
	}
	return log
}

// maxMoveNumber bounds Move.MoveNumber; reaching it fails further
// play/pass attempts with TooManyMoves.
const maxMoveNumber = 1 << 30

// GameState is one of the Game's state-machine states.
type GameState int

const (
	HasStarted GameState = iota
	IsPaused
	HasEnded
)

func (s GameState) String() string {
	switch s {
	case HasStarted:
		return "HasStarted"
	case IsPaused:
		return "IsPaused"
	case HasEnded:
		return "HasEnded"
	default:
		return "Unknown"
	}
}

// ReasonForEnd records which rule, if any, ended the game.
type ReasonForEnd int

const (
	NotEnded ReasonForEnd = iota
	ResignationByBlack
	ResignationByWhite
	TwoPassesEnd
	ThreePassesEnd
	FourPassesEnd
)

// Game is the top-level facade: rules, handicap, side to move, legality
// queries, the state machine, and board-position control. It owns
// exactly one internal/board.Board, which always reflects the position
// at the current variation's leaf Node.
type Game struct {
	board *board.Board
	rules Rules

	handicapPoints           []vertex.Vertex
	komi                     float64
	zobristHashAfterHandicap board.Key

	setupFirstMoveColorOverride vertex.StoneState // vertex.None: no override
	nextMoveColor               vertex.Color

	state        GameState
	reasonForEnd ReasonForEnd

	twoComputerGame bool

	nodeModel *NodeModel
}

// NewGame constructs a Game over board b with the given rules, handicap
// points (already validated by the caller as legal placements on an
// empty board) and komi. setupFirstMoveColor, if not vertex.None,
// overrides the handicap-derived default for who moves first.
func NewGame(b *board.Board, rules Rules, handicapPoints []vertex.Vertex, komi float64, setupFirstMoveColor vertex.StoneState) (*Game, error) {
	g := &Game{
		board:                       b,
		rules:                       rules,
		komi:                        komi,
		setupFirstMoveColorOverride: setupFirstMoveColor,
		state:                       HasStarted,
		nodeModel:                   newNodeModel(),
	}
	if len(handicapPoints) > 0 {
		if err := g.setHandicapPointsLocked(handicapPoints); err != nil {
			return nil, err
		}
	} else {
		g.recomputeNextMoveColor()
	}
	getLog().Debugf("new game on %v board, rules=%+v", b.Size(), rules)
	return g, nil
}

// Board returns the Game's board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Rules returns the Game's rule-set.
func (g *Game) Rules() Rules {
	return g.rules
}

// HandicapPoints returns the currently configured handicap stones.
func (g *Game) HandicapPoints() []vertex.Vertex {
	out := make([]vertex.Vertex, len(g.handicapPoints))
	copy(out, g.handicapPoints)
	return out
}

// Komi returns the compensation komi awarded to White.
func (g *Game) Komi() float64 {
	return g.komi
}

// SetKomi changes the compensation komi awarded to White. Unlike a move
// or setup placement this never touches the board or the node tree - komi
// only affects scoring (internal/score.ComputeResult), so there is
// nothing to replay it against.
func (g *Game) SetKomi(komi float64) {
	g.komi = komi
}

// SetupFirstMoveColorOverride returns the colour forced to move first by
// the most recent ChangeSetupFirstMoveColor, or vertex.None if no
// override is in effect.
func (g *Game) SetupFirstMoveColorOverride() vertex.StoneState {
	return g.setupFirstMoveColorOverride
}

// NextMoveColor returns the colour to move next.
func (g *Game) NextMoveColor() vertex.Color {
	return g.nextMoveColor
}

// State returns the Game's current state-machine state.
func (g *Game) State() GameState {
	return g.state
}

// ReasonForGameHasEnded returns why the game ended, or NotEnded if it has
// not.
func (g *Game) ReasonForGameHasEnded() ReasonForEnd {
	return g.reasonForEnd
}

// CurrentVariation returns the ordered sequence of Nodes from root to the
// current leaf.
func (g *Game) CurrentVariation() []*Node {
	return g.nodeModel.CurrentVariation()
}

// NodeModel returns the Game's NodeModel, for variation navigation.
func (g *Game) NodeModel() *NodeModel {
	return g.nodeModel
}

func (g *Game) recomputeNextMoveColor() {
	if g.setupFirstMoveColorOverride != vertex.None {
		g.nextMoveColor = g.setupFirstMoveColorOverride
		return
	}
	if len(g.handicapPoints) > 0 {
		g.nextMoveColor = vertex.White
	} else {
		g.nextMoveColor = vertex.Black
	}
}

// mostRecentMoveNode walks n and its ancestors until a Node carrying a
// Move is found, returning nil if none exists in this path.
func mostRecentMoveNode(n *Node) *Node {
	for ; n != nil; n = n.parent {
		if n.Move != nil {
			return n
		}
	}
	return nil
}

func toVertices(points []*board.Point) []vertex.Vertex {
	out := make([]vertex.Vertex, len(points))
	for i, p := range points {
		out[i] = p.Vertex()
	}
	return out
}

// RecomputeZobristHashes recomputes every Node's ZobristHash from
// zobristHashAfterHandicap down through the whole tree. Exported for
// internal/archive, which rebuilds a NodeModel's tree directly (via
// NewNode/AppendNode) rather than through Play/Pass/ChangeSetupPoint, so
// none of those incremental hash updates ever ran.
func (g *Game) RecomputeZobristHashes() {
	g.recomputeHashesBottomUp()
}

// RecomputeNextMoveColorForCurrentVariation derives nextMoveColor from
// the base mover (handicap/setup-first-move-colour override) toggled once
// per Move-carrying Node along the current variation. Exported for
// internal/archive: Play/Pass normally maintain nextMoveColor
// incrementally as each move is made, but a rehydrated tree is built by
// directly linking already-decided Nodes, so nextMoveColor must instead
// be derived from the restored path.
func (g *Game) RecomputeNextMoveColorForCurrentVariation() {
	g.recomputeNextMoveColor()
	color := g.nextMoveColor
	for _, n := range g.nodeModel.CurrentVariation() {
		if n.Move != nil {
			color = color.Opposite()
		}
	}
	g.nextMoveColor = color
}

// recomputeHashesBottomUp recomputes every Node's ZobristHash in the
// whole tree from the root down, following DESIGN.md's Open Question (b)
// decision: after any handicap change, hashes are never patched in
// place, only fully rebuilt from zobristHashAfterHandicap.
func (g *Game) recomputeHashesBottomUp() {
	var walk func(n *Node, parentHash board.Key)
	walk = func(n *Node, parentHash board.Key) {
		hash := parentHash
		if n.Setup != nil {
			hash = g.applySetupToHash(hash, n.Setup)
		}
		if n.Move != nil {
			if n.Move.Type == Pass {
				hash = g.board.Zobrist().HashForPass(hash)
			} else {
				hash = g.board.Zobrist().HashForMove(hash, n.Move.Point, n.Move.PlayerColor, n.Move.CapturedStones)
			}
		}
		n.ZobristHash = hash
		for c := n.firstChild; c != nil; c = c.nextSibling {
			walk(c, hash)
		}
	}
	g.nodeModel.root.ZobristHash = g.zobristHashAfterHandicap
	walk(g.nodeModel.root, g.zobristHashAfterHandicap)
}

// applySetupToHash folds every placement/removal of a NodeSetup into
// hash in turn, using PreviousOccupation for the colour each touched
// point held immediately before the setup.
func (g *Game) applySetupToHash(hash board.Key, setup *NodeSetup) board.Key {
	zt := g.board.Zobrist()
	apply := func(v vertex.Vertex, target vertex.StoneState) {
		prev := setup.PreviousOccupation[v]
		hash = zt.HashForSetupPlacement(hash, v, prev, target)
	}
	for _, v := range setup.BlackSetupStones {
		apply(v, vertex.Black)
	}
	for _, v := range setup.WhiteSetupStones {
		apply(v, vertex.White)
	}
	for _, v := range setup.NoSetupStones {
		prev := setup.PreviousOccupation[v]
		if prev == vertex.None {
			continue
		}
		hash ^= zt.PieceKey(v, prev)
	}
	return hash
}
