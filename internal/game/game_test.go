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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

func newTestGame(t *testing.T, size vertex.BoardSize) *Game {
	t.Helper()
	b, err := board.NewBoard(size, 1)
	require.NoError(t, err)
	g, err := NewGame(b, DefaultRules(), nil, 6.5, vertex.None)
	require.NoError(t, err)
	return g
}

func v(t *testing.T, s string) vertex.Vertex {
	t.Helper()
	val, err := vertex.Parse(s)
	require.NoError(t, err)
	return val
}

func mustPlay(t *testing.T, g *Game, s string) {
	t.Helper()
	require.NoError(t, g.Play(v(t, s)))
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	assert.Equal(t, vertex.Black, g.NextMoveColor())
	assert.Equal(t, HasStarted, g.State())
	assert.Equal(t, NotEnded, g.ReasonForGameHasEnded())
	assert.Len(t, g.CurrentVariation(), 1)
}

func TestPlayAlternatesColorAndAppendsNode(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	assert.Equal(t, vertex.White, g.NextMoveColor())
	mustPlay(t, g, "D4")
	assert.Equal(t, vertex.Black, g.NextMoveColor())
	assert.Len(t, g.CurrentVariation(), 3)

	leaf := g.NodeModel().CurrentLeaf()
	require.NotNil(t, leaf.Move)
	assert.Equal(t, Play, leaf.Move.Type)
	assert.Equal(t, 2, leaf.Move.MoveNumber)
}

func TestPlayOnOccupiedPointIsIllegal(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	err := g.Play(v(t, "C3"))
	require.Error(t, err)
}

func TestPlayCapturesAndUpdatesHash(t *testing.T) {
	// Surround a single white stone at E4 on all four sides with black.
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "E5") // B
	mustPlay(t, g, "E4") // W
	mustPlay(t, g, "D4") // B
	pass(t, g)           // W passes
	mustPlay(t, g, "F4") // B
	pass(t, g)           // W passes

	before := g.Board()
	p, err := before.PointAt(v(t, "E4"))
	require.NoError(t, err)
	require.Equal(t, vertex.White, p.StoneState())
	parentHash := g.NodeModel().CurrentLeaf().ZobristHash

	require.NoError(t, g.Play(v(t, "E3"))) // B captures E4
	assert.Equal(t, vertex.None, p.StoneState())

	leaf := g.NodeModel().CurrentLeaf()
	require.NotNil(t, leaf.Move)
	require.Len(t, leaf.Move.CapturedStones, 1)
	assert.Equal(t, v(t, "E4"), leaf.Move.CapturedStones[0])

	zt := g.Board().Zobrist()
	assert.Equal(t, parentHash^zt.PieceKey(v(t, "E4"), vertex.White)^zt.PieceKey(v(t, "E3"), vertex.Black), leaf.ZobristHash)
}

func pass(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.Pass())
}

// TestSimpleKoForbidsImmediateRecapture reproduces the textbook ko shape:
// Black captures a single White stone at E5, and White's immediate
// recapture at the vacated point must be rejected as a simple ko
// violation, since it would exactly reproduce the position from two plies
// earlier.
func TestSimpleKoForbidsImmediateRecapture(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "D5")   // B
	mustPlay(t, g, "E5")   // W: the ko stone
	mustPlay(t, g, "F5")   // B
	mustPlay(t, g, "D4")   // W
	mustPlay(t, g, "E6")   // B
	mustPlay(t, g, "F4")   // W
	pass(t, g)             // B
	mustPlay(t, g, "E3")   // W
	mustPlay(t, g, "E4")   // B: captures White's E5

	e5, err := g.Board().PointAt(v(t, "E5"))
	require.NoError(t, err)
	assert.Equal(t, vertex.None, e5.StoneState())

	err = g.Play(v(t, "E5")) // W recapture attempt: forbidden by simple ko
	require.Error(t, err)
	assert.Equal(t, vertex.None, e5.StoneState())
}

// TestPassTerminationTwoPasses checks that two consecutive passes end the
// game under the default TwoPasses rule.
func TestPassTerminationTwoPasses(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	pass(t, g)
	assert.Equal(t, HasStarted, g.State())
	pass(t, g)
	assert.Equal(t, HasEnded, g.State())
	assert.Equal(t, TwoPassesEnd, g.ReasonForGameHasEnded())
}

func TestPassIllegalAfterGameEnded(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	pass(t, g)
	pass(t, g)
	require.Equal(t, HasEnded, g.State())
	err := g.Pass()
	require.Error(t, err)
}

func TestResignEndsGameImmediately(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	require.NoError(t, g.Resign(vertex.White))
	assert.Equal(t, HasEnded, g.State())
	assert.Equal(t, ResignationByWhite, g.ReasonForGameHasEnded())
}

func TestRevertStateFromEndedToInProgress(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	require.NoError(t, g.Resign(vertex.Black))
	require.Equal(t, HasEnded, g.State())
	require.NoError(t, g.RevertStateFromEndedToInProgress())
	assert.Equal(t, HasStarted, g.State())
	assert.Equal(t, NotEnded, g.ReasonForGameHasEnded())
}

func TestPauseContinueRequiresTwoComputerGame(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	require.Error(t, g.Pause())
	g.SetTwoComputerGame(true)
	require.NoError(t, g.Pause())
	assert.Equal(t, IsPaused, g.State())
	require.NoError(t, g.Continue())
	assert.Equal(t, HasStarted, g.State())
}

// TestSetHandicapPointsSetsWhiteToMove checks that a non-empty handicap
// flips the default side to move to White and seeds the hash.
func TestSetHandicapPointsSetsWhiteToMove(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	require.NoError(t, g.SetHandicapPoints([]vertex.Vertex{v(t, "C3"), v(t, "G7")}))
	assert.Equal(t, vertex.White, g.NextMoveColor())
	p, err := g.Board().PointAt(v(t, "C3"))
	require.NoError(t, err)
	assert.Equal(t, vertex.Black, p.StoneState())

	root := g.NodeModel().Root()
	assert.Equal(t, g.zobristHashAfterHandicap, root.ZobristHash)
}

func TestSetHandicapPointsFailsAfterMoves(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	err := g.SetHandicapPoints([]vertex.Vertex{v(t, "G7")})
	require.Error(t, err)
}

func TestToggleHandicapPoint(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	require.NoError(t, g.ToggleHandicapPoint(v(t, "C3")))
	assert.Len(t, g.HandicapPoints(), 1)
	require.NoError(t, g.ToggleHandicapPoint(v(t, "C3")))
	assert.Len(t, g.HandicapPoints(), 0)
}

// TestChangeSetupPointIdempotence exercises spec P7: toggling a setup
// point back to its original occupation drops the NodeSetup entirely.
func TestChangeSetupPointIdempotence(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	target := v(t, "E5")
	require.NoError(t, g.ChangeSetupPoint(target, vertex.Black))
	leaf := g.NodeModel().CurrentLeaf()
	require.NotNil(t, leaf.Setup)
	assert.False(t, leaf.Setup.Empty())

	require.NoError(t, g.ChangeSetupPoint(target, vertex.None))
	assert.Nil(t, leaf.Setup)

	p, err := g.Board().PointAt(target)
	require.NoError(t, err)
	assert.Equal(t, vertex.None, p.StoneState())
}

func TestChangeSetupPointFailsAfterMoves(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	err := g.ChangeSetupPoint(v(t, "E5"), vertex.Black)
	require.Error(t, err)
}

// TestChangeSetupPointSuicideRejected checks that setting up a stone with
// no possible liberty is rejected (spec §4.4/§4.5): a White group wraps
// the A1 corner on both sides with liberties to spare, so placing Black
// at A1 itself cannot capture anything and cannot live.
func TestChangeSetupPointSuicideRejected(t *testing.T) {
	g := newTestGame(t, vertex.Size7)
	require.NoError(t, g.ChangeSetupPoint(v(t, "A2"), vertex.White))
	require.NoError(t, g.ChangeSetupPoint(v(t, "B1"), vertex.White))
	require.NoError(t, g.ChangeSetupPoint(v(t, "A3"), vertex.White))
	require.NoError(t, g.ChangeSetupPoint(v(t, "B2"), vertex.White))

	err := g.ChangeSetupPoint(v(t, "A1"), vertex.Black)
	require.Error(t, err)

	p, perr := g.Board().PointAt(v(t, "A1"))
	require.NoError(t, perr)
	assert.Equal(t, vertex.None, p.StoneState())
}

// TestChangeSetupPointPlacementRejectsInsufficientFriendlyLiberties builds a
// White stone at A2 down to its last liberty (A1) via three Black
// placements, then asserts that placing White at A1 is rejected with
// SuicideFriendlyStoneGroup, not the generic SuicideSetupStone - the
// friendly A2 group was found, just with too few liberties to connect to.
func TestChangeSetupPointPlacementRejectsInsufficientFriendlyLiberties(t *testing.T) {
	g := newTestGame(t, vertex.Size7)
	require.NoError(t, g.ChangeSetupPoint(v(t, "A2"), vertex.White))
	require.NoError(t, g.ChangeSetupPoint(v(t, "B1"), vertex.Black))
	require.NoError(t, g.ChangeSetupPoint(v(t, "B2"), vertex.Black))
	require.NoError(t, g.ChangeSetupPoint(v(t, "A3"), vertex.Black))

	err := g.ChangeSetupPoint(v(t, "A1"), vertex.White)
	require.Error(t, err)
	gerr, ok := err.(*gamerr.Error)
	require.True(t, ok)
	assert.Equal(t, gamerr.SetupIllegal, gerr.Kind)
	assert.Equal(t, gamerr.SuicideFriendlyStoneGroup, gerr.SetupReason)

	p, perr := g.Board().PointAt(v(t, "A1"))
	require.NoError(t, perr)
	assert.Equal(t, vertex.None, p.StoneState())
}

// TestChangeSetupColorAcceptsSingleLibertyFriendlyGroup builds a White
// singleton at A2 down to exactly one liberty, then changes an existing
// Black stone at A1 (with no empty neighbour of its own) to White. Per
// spec §4.4, a colour change - unlike a placement - does not consume the
// friendly neighbour's liberty, so a single remaining liberty suffices.
func TestChangeSetupColorAcceptsSingleLibertyFriendlyGroup(t *testing.T) {
	g := newTestGame(t, vertex.Size7)
	require.NoError(t, g.ChangeSetupPoint(v(t, "A1"), vertex.Black))
	require.NoError(t, g.ChangeSetupPoint(v(t, "B1"), vertex.Black))
	require.NoError(t, g.ChangeSetupPoint(v(t, "A2"), vertex.White))
	require.NoError(t, g.ChangeSetupPoint(v(t, "A3"), vertex.Black))

	require.NoError(t, g.ChangeSetupPoint(v(t, "A1"), vertex.White))

	p, perr := g.Board().PointAt(v(t, "A1"))
	require.NoError(t, perr)
	assert.Equal(t, vertex.White, p.StoneState())
}

func TestDiscardAllSetupRestoresBoard(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	target := v(t, "E5")
	require.NoError(t, g.ChangeSetupPoint(target, vertex.Black))
	require.NoError(t, g.DiscardAllSetup())

	p, err := g.Board().PointAt(target)
	require.NoError(t, err)
	assert.Equal(t, vertex.None, p.StoneState())
	assert.Nil(t, g.NodeModel().CurrentLeaf().Setup)
}

// TestDiscardLeafNodeRemovesLastMove exercises NodeModel append/discard
// round-tripping (spec P8): discarding the just-appended leaf restores the
// previous variation length.
func TestDiscardLeafNodeRemovesLastMove(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	mustPlay(t, g, "D4")
	before := len(g.CurrentVariation())

	require.NoError(t, g.NodeModel().DiscardLeafNode())
	assert.Equal(t, before-1, len(g.CurrentVariation()))
}

// TestChangeToVariationContainingOnCurrentLeafIsNoop checks the trivial
// case: asking to switch to the variation containing the node that is
// already the current leaf leaves the variation unchanged.
func TestChangeToVariationContainingOnCurrentLeafIsNoop(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	mustPlay(t, g, "D4")
	leaf := g.NodeModel().CurrentLeaf()
	before := g.CurrentVariation()

	require.NoError(t, g.NodeModel().ChangeToVariationContaining(leaf))
	assert.Equal(t, leaf, g.NodeModel().CurrentLeaf())
	assert.Equal(t, len(before), len(g.CurrentVariation()))
}

// TestChangeToVariationContainingRejectsForeignNode checks that a Node
// belonging to a different Game's tree is rejected.
func TestChangeToVariationContainingRejectsForeignNode(t *testing.T) {
	g1 := newTestGame(t, vertex.Size9)
	g2 := newTestGame(t, vertex.Size9)
	mustPlay(t, g2, "C3")
	foreign := g2.NodeModel().CurrentLeaf()

	err := g1.NodeModel().ChangeToVariationContaining(foreign)
	require.Error(t, err)
}

// TestAncestorInCurrentVariation checks that a Node already in the
// current variation is returned as its own ancestor, and that a foreign
// Node is rejected.
func TestAncestorInCurrentVariation(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	leaf := g.NodeModel().CurrentLeaf()

	found, err := g.NodeModel().AncestorInCurrentVariation(leaf)
	require.NoError(t, err)
	assert.Equal(t, leaf, found)

	other := newTestGame(t, vertex.Size9)
	mustPlay(t, other, "D4")
	_, err = g.NodeModel().AncestorInCurrentVariation(other.NodeModel().CurrentLeaf())
	require.Error(t, err)
}

// TestNodeByIDAndIndexOfNode checks the stable-ID lookup and variation
// index accessors used by internal/archive and UI navigation.
func TestNodeByIDAndIndexOfNode(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	mustPlay(t, g, "D4")
	leaf := g.NodeModel().CurrentLeaf()

	found, ok := g.NodeModel().NodeByID(leaf.ID())
	require.True(t, ok)
	assert.Equal(t, leaf, found)

	assert.Equal(t, 2, g.NodeModel().IndexOfNode(leaf))
	atIndex, err := g.NodeModel().NodeAtIndex(2)
	require.NoError(t, err)
	assert.Equal(t, leaf, atIndex)

	_, err = g.NodeModel().NodeAtIndex(99)
	require.Error(t, err)
}

func TestUndoRestoresBoardAndSideToMove(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	mustPlay(t, g, "D4")

	require.NoError(t, g.Undo())

	p, err := g.Board().PointAt(v(t, "D4"))
	require.NoError(t, err)
	assert.Equal(t, vertex.None, p.StoneState())
	assert.Equal(t, vertex.White, g.NextMoveColor())
	assert.Equal(t, 1, g.NodeModel().NumberOfMoves())
}

// TestUndoRestoresCapturedStones mirrors TestPlayCapturesAndUpdatesHash,
// checking that undoing the capturing move puts the captured stone back.
func TestUndoRestoresCapturedStones(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "E5") // B
	mustPlay(t, g, "E4") // W
	mustPlay(t, g, "D4") // B
	pass(t, g)           // W
	mustPlay(t, g, "F4") // B
	pass(t, g)           // W
	require.NoError(t, g.Play(v(t, "E3")))

	e4, err := g.Board().PointAt(v(t, "E4"))
	require.NoError(t, err)
	require.Equal(t, vertex.None, e4.StoneState())

	require.NoError(t, g.Undo())
	assert.Equal(t, vertex.White, e4.StoneState())
}

func TestUndoUnendsGameEndedByPassTermination(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	mustPlay(t, g, "C3")
	pass(t, g)
	pass(t, g)
	require.Equal(t, HasEnded, g.State())

	require.NoError(t, g.Undo())
	assert.Equal(t, HasStarted, g.State())
	assert.Equal(t, NotEnded, g.ReasonForGameHasEnded())
}

func TestUndoOnRootFails(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	err := g.Undo()
	require.Error(t, err)
}

func TestSetKomiChangesKomi(t *testing.T) {
	g := newTestGame(t, vertex.Size9)
	assert.Equal(t, 6.5, g.Komi())
	g.SetKomi(0.5)
	assert.Equal(t, 0.5, g.Komi())
}
