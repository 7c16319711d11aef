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
	"strings"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// IsLegalMove checks whether color may play at point. It simulates the
// placement (via Board.PlaceStone/UndoPlaceStone, mirroring a search
// make/unmake step) to determine suicide and the resulting hash, then
// runs the ko/superko walk of spec §4.6 against that hash. The board is
// left exactly as it was found.
func (g *Game) IsLegalMove(point vertex.Vertex, color vertex.Color) (bool, *gamerr.Error) {
	if color != vertex.Black && color != vertex.White {
		return false, gamerr.New(gamerr.InvalidArgument, "color must be Black or White, got %v", color)
	}
	p, err := g.board.PointAt(point)
	if err != nil {
		return false, err.(*gamerr.Error)
	}
	if p.StoneState() != vertex.None {
		return false, gamerr.NewMove(gamerr.IntersectionOccupied, "%v is occupied", point)
	}
	leaf := g.nodeModel.CurrentLeaf()
	if mrn := mostRecentMoveNode(leaf); mrn != nil && mrn.Move.MoveNumber >= maxMoveNumber {
		return false, gamerr.NewMove(gamerr.TooManyMoves, "move number limit reached")
	}

	parentHash := leaf.ZobristHash
	captured := g.board.PlaceStone(p, color)
	ownRegion := p.Region()
	libs, _ := ownRegion.Liberties()
	suicide := libs == 0
	hypothetical := g.board.Zobrist().HashForMove(parentHash, point, color, toVertices(captured))
	g.board.UndoPlaceStone(p, color, captured)

	if suicide {
		return false, gamerr.NewMove(gamerr.Suicide, "%v would leave its group with no liberties", point)
	}

	if ok, reason := g.checkKo(leaf, color, hypothetical); !ok {
		return false, gamerr.NewMove(reason, "%v repeats a prior position", point)
	}
	return true, nil
}

// IsLegalPassMove reports whether color may pass. The only failure mode
// is the move-number ceiling.
func (g *Game) IsLegalPassMove(color vertex.Color) (bool, *gamerr.Error) {
	leaf := g.nodeModel.CurrentLeaf()
	if mrn := mostRecentMoveNode(leaf); mrn != nil && mrn.Move.MoveNumber >= maxMoveNumber {
		return false, gamerr.NewMove(gamerr.TooManyMoves, "move number limit reached")
	}
	return true, nil
}

// checkKo implements spec §4.6's ko/superko walk against an already
// computed hypothetical hash.
func (g *Game) checkKo(leaf *Node, color vertex.Color, hypothetical board.Key) (bool, gamerr.MoveReason) {
	m := mostRecentMoveNode(leaf)
	if m == nil {
		return true, gamerr.NoMoveReason // no move has ever been played: ko is impossible
	}
	mPrev := mostRecentMoveNode(m.parent)
	var hashPrev board.Key
	if mPrev != nil {
		hashPrev = mPrev.ZobristHash
	} else {
		hashPrev = g.zobristHashAfterHandicap
	}
	if hypothetical == hashPrev {
		return false, gamerr.SimpleKo
	}
	if g.rules.KoRule == Simple {
		return true, gamerr.NoMoveReason
	}

	for a := mPrev; a != nil; a = mostRecentMoveNode(a.parent) {
		if g.rules.KoRule == SuperkoSituational && a.Move.PlayerColor != color {
			continue
		}
		if hypothetical == a.ZobristHash {
			return false, gamerr.Superko
		}
	}

	includeHandicap := g.rules.KoRule == SuperkoPositional
	if g.rules.KoRule == SuperkoSituational {
		includeHandicap = g.firstMoveColorInCurrentVariation() == color
	}
	if includeHandicap && hypothetical == g.zobristHashAfterHandicap {
		return false, gamerr.Superko
	}
	return true, gamerr.NoMoveReason
}

// firstMoveColorInCurrentVariation returns the colour of the first Move
// in the current variation, or nextMoveColor if no move has been played
// yet (the comparison this feeds is then vacuous).
func (g *Game) firstMoveColorInCurrentVariation() vertex.Color {
	for _, n := range g.nodeModel.currentVariation {
		if n.Move != nil {
			return n.Move.PlayerColor
		}
	}
	return g.nextMoveColor
}

// IsLegalBoardSetupAt evaluates a single board-setup change at point to
// targetState. Defined only for a Game with no moves yet played; callers
// that mutate via ChangeSetupPoint enforce that precondition themselves.
func (g *Game) IsLegalBoardSetupAt(point vertex.Vertex, targetState vertex.StoneState) (bool, *gamerr.Error) {
	p, err := g.board.PointAt(point)
	if err != nil {
		return false, err.(*gamerr.Error)
	}
	current := p.StoneState()

	if targetState == vertex.None {
		return true, nil // removing a stone never creates suicide
	}
	if targetState == current {
		return true, nil
	}

	if current != vertex.None {
		// Changing an existing stone's colour: the old group may fracture
		// into a suicidal sub-group, and the point itself (now the new
		// colour) must be able to live.
		region := p.Region()
		if suicidal, subgroup := board.ConnectingStoneSuicide(region, p); suicidal {
			reason := gamerr.SuicideOpposingColorSubgroup
			if len(subgroup) == region.Size()-1 {
				reason = gamerr.SuicideOpposingStoneGroup
			}
			return false, gamerr.NewSetup(reason, subgroup[0].Vertex(), "%v's group would have no liberties", subgroup[0])
		}
		// Changing colour does not place a new stone, so an existing
		// friendly neighbour only needs to keep at least one liberty.
		if g.canLiveAsColor(p, targetState, 1) {
			return true, nil
		}
		return false, gamerr.NewSetup(gamerr.SuicideSetupStone, point, "%v would have no liberties", point)
	}

	// Placing on an empty point.
	opp := targetState.Opposite()
	seenRegions := map[int]bool{}
	for _, n := range p.Neighbours() {
		if n.StoneState() != opp {
			continue
		}
		nr := n.Region()
		if seenRegions[nr.ID()] {
			continue
		}
		seenRegions[nr.ID()] = true
		libs, _ := nr.Liberties()
		if libs == 1 {
			reason := gamerr.SuicideOpposingStoneGroup
			if nr.Size() == 1 {
				reason = gamerr.SuicideOpposingStone
			}
			return false, gamerr.NewSetup(reason, n.Vertex(), "placing at %v would capture %v's group via setup", point, n)
		}
	}
	// Placing consumes one of a friendly neighbour's liberties (the point
	// itself), so that neighbour needs more than one to spare.
	if canLive, friendly := g.canLiveAsColorWithReason(p, targetState, 2); canLive {
		return true, nil
	} else if friendly != nil {
		return false, gamerr.NewSetup(gamerr.SuicideFriendlyStoneGroup, friendly.Vertex(), "%v's group has too few liberties to connect %v", friendly, point)
	}
	return false, gamerr.NewSetup(gamerr.SuicideSetupStone, point, "%v would have no liberties", point)
}

// canLiveAsColor reports whether p, were it (or becoming) targetState,
// would have a liberty: either an empty neighbour, or a friendly
// neighbour region whose liberties are at least minFriendlyLiberties.
func (g *Game) canLiveAsColor(p *board.Point, targetState vertex.StoneState, minFriendlyLiberties int) bool {
	live, _ := g.canLiveAsColorWithReason(p, targetState, minFriendlyLiberties)
	return live
}

// canLiveAsColorWithReason is canLiveAsColor, additionally reporting one
// point of a friendly neighbour region that was found but had too few
// liberties - used to distinguish SuicideFriendlyStoneGroup (a friendly
// group was found and insufficient) from SuicideSetupStone (none found).
func (g *Game) canLiveAsColorWithReason(p *board.Point, targetState vertex.StoneState, minFriendlyLiberties int) (bool, *board.Point) {
	for _, n := range p.Neighbours() {
		if n.StoneState() == vertex.None {
			return true, nil
		}
	}
	var insufficient *board.Point
	for _, n := range p.Neighbours() {
		if n.StoneState() != targetState {
			continue
		}
		libs, _ := n.Region().Liberties()
		if libs >= minFriendlyLiberties {
			return true, nil
		}
		if insufficient == nil {
			insufficient = n
		}
	}
	return false, insufficient
}

// IsLegalBoardSetup validates the whole board: it is legal iff no stone
// group currently has zero liberties. When illegal, it returns the
// comma-separated list of suicidal intersections (spec §4.4).
func (g *Game) IsLegalBoardSetup() (bool, string) {
	var bad []string
	for _, r := range g.board.Regions() {
		if !r.IsStoneGroup() {
			continue
		}
		libs, _ := r.Liberties()
		if libs == 0 {
			for _, p := range r.Points() {
				bad = append(bad, p.Vertex().String())
			}
		}
	}
	if len(bad) == 0 {
		return true, ""
	}
	return false, strings.Join(bad, ",")
}
