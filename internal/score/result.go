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

package score

import (
	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/game"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// Result is a final or provisional score, broken down the way a GTP
// final_score/final_status_list response needs it.
type Result struct {
	BlackTerritory, WhiteTerritory         int
	BlackStonesOnBoard, WhiteStonesOnBoard int
	BlackPrisoners, WhitePrisoners         int
	BlackScore, WhiteScore                 float64
}

// Winner returns Black or White, or None for an exact tie.
func (r *Result) Winner() vertex.StoneState {
	switch {
	case r.BlackScore > r.WhiteScore:
		return vertex.Black
	case r.WhiteScore > r.BlackScore:
		return vertex.White
	default:
		return vertex.None
	}
}

// ComputeResult marks dead Region stone groups, classifies every empty
// Region's territory, and folds both together with Komi and captures made
// during play into a final Result under g's configured ScoringSystem
// (spec §4.2/§9, §7 item 7's Area vs Territory convention).
func ComputeResult(g *game.Game, dead []vertex.Vertex) *Result {
	b := g.Board()
	MarkDeadStoneGroups(b, dead)
	ClassifyTerritory(b)

	var blackStones, whiteStones, blackTerritory, whiteTerritory int
	var blackPrisonersFromDead, whitePrisonersFromDead int

	for _, r := range b.Regions() {
		if r.IsStoneGroup() {
			sz := r.Size()
			switch {
			case r.StoneGroupState == board.StoneGroupDead && r.Color() == vertex.Black:
				whitePrisonersFromDead += sz
			case r.StoneGroupState == board.StoneGroupDead && r.Color() == vertex.White:
				blackPrisonersFromDead += sz
			case r.Color() == vertex.Black:
				blackStones += sz
			case r.Color() == vertex.White:
				whiteStones += sz
			}
			continue
		}
		switch r.TerritoryColor {
		case vertex.Black:
			blackTerritory += r.Size()
		case vertex.White:
			whiteTerritory += r.Size()
		}
	}

	blackCaptures, whiteCaptures := capturesDuringPlay(g)

	res := &Result{
		BlackTerritory:      blackTerritory,
		WhiteTerritory:      whiteTerritory,
		BlackStonesOnBoard:  blackStones,
		WhiteStonesOnBoard:  whiteStones,
		BlackPrisoners:      blackCaptures + blackPrisonersFromDead,
		WhitePrisoners:      whiteCaptures + whitePrisonersFromDead,
	}

	switch g.Rules().ScoringSystem {
	case game.Area:
		res.BlackScore = float64(blackStones + blackTerritory + blackPrisonersFromDead)
		res.WhiteScore = float64(whiteStones+whiteTerritory+whitePrisonersFromDead) + g.Komi()
	default: // game.Territory
		res.BlackScore = float64(blackTerritory + res.BlackPrisoners)
		res.WhiteScore = float64(whiteTerritory+res.WhitePrisoners) + g.Komi()
	}
	return res
}

// capturesDuringPlay sums the CapturedStones recorded on every Move of the
// current variation, credited to the capturing player - prisoners a
// Territory-scoring ruleset counts regardless of whether the captured
// group's Region still exists (it doesn't; the stones are long gone).
func capturesDuringPlay(g *game.Game) (black, white int) {
	for _, n := range g.CurrentVariation() {
		if n.Move == nil {
			continue
		}
		switch n.Move.PlayerColor {
		case vertex.Black:
			black += len(n.Move.CapturedStones)
		case vertex.White:
			white += len(n.Move.CapturedStones)
		}
	}
	return black, white
}
