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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/game"
	"github.com/frankkopp/weiqi/internal/vertex"
)

func v(t *testing.T, s string) vertex.Vertex {
	t.Helper()
	val, err := vertex.Parse(s)
	require.NoError(t, err)
	return val
}

func newTestGame(t *testing.T, rules game.Rules, komi float64) *game.Game {
	t.Helper()
	b, err := board.NewBoard(vertex.Size9, 1)
	require.NoError(t, err)
	g, err := game.NewGame(b, rules, nil, komi, vertex.None)
	require.NoError(t, err)
	return g
}

// A single black stone at E5 on an otherwise empty board: the whole rest of a 9x9
// board is one empty Region bordering only Black, so it is all Black
// territory.
func TestClassifyTerritorySingleStoneWholeBoard(t *testing.T) {
	g := newTestGame(t, game.DefaultRules(), 6.5)
	require.NoError(t, g.Play(v(t, "E5")))

	ClassifyTerritory(g.Board())

	var blackTerritory int
	for _, r := range g.Board().Regions() {
		if !r.IsStoneGroup() && r.TerritoryColor == vertex.Black {
			blackTerritory += r.Size()
		}
	}
	assert.Equal(t, 80, blackTerritory)
}

// Two diagonally-separate stones of opposite colour bordering the same
// empty region mark it inconsistent (dame), not territory for either side.
func TestClassifyTerritoryInconsistentBetweenColours(t *testing.T) {
	g := newTestGame(t, game.DefaultRules(), 6.5)
	require.NoError(t, g.Play(v(t, "A1")))
	require.NoError(t, g.Play(v(t, "B2")))

	ClassifyTerritory(g.Board())

	p, err := g.Board().PointAt(v(t, "A2"))
	require.NoError(t, err)
	r := p.Region()
	assert.True(t, r.TerritoryInconsistencyFound)
	assert.Equal(t, vertex.None, r.TerritoryColor)
}

func TestMarkDeadStoneGroupsFlagsOnlyListedGroup(t *testing.T) {
	g := newTestGame(t, game.DefaultRules(), 6.5)
	require.NoError(t, g.Play(v(t, "C3")))
	require.NoError(t, g.Play(v(t, "G7")))

	MarkDeadStoneGroups(g.Board(), []vertex.Vertex{v(t, "C3")})

	pDead, err := g.Board().PointAt(v(t, "C3"))
	require.NoError(t, err)
	assert.Equal(t, board.StoneGroupDead, pDead.Region().StoneGroupState)

	pAlive, err := g.Board().PointAt(v(t, "G7"))
	require.NoError(t, err)
	assert.Equal(t, board.StoneGroupAlive, pAlive.Region().StoneGroupState)
}

func TestComputeResultAreaScoringCountsStonesAndTerritory(t *testing.T) {
	rules := game.DefaultRules()
	rules.ScoringSystem = game.Area
	g := newTestGame(t, rules, 6.5)
	require.NoError(t, g.Play(v(t, "E5")))
	require.NoError(t, g.Pass())
	require.NoError(t, g.Pass())

	res := ComputeResult(g, nil)

	assert.Equal(t, 1, res.BlackStonesOnBoard)
	assert.Equal(t, 80, res.BlackTerritory)
	assert.Equal(t, 0.0, res.WhiteScore-6.5)
	assert.Equal(t, vertex.Black, res.Winner())
}

func TestComputeResultTerritoryScoringExcludesStonesOnBoard(t *testing.T) {
	rules := game.DefaultRules()
	rules.ScoringSystem = game.Territory
	g := newTestGame(t, rules, 6.5)
	require.NoError(t, g.Play(v(t, "E5")))
	require.NoError(t, g.Pass())
	require.NoError(t, g.Pass())

	res := ComputeResult(g, nil)

	// Stones on the board never count directly under Territory scoring.
	assert.Equal(t, float64(res.BlackTerritory+res.BlackPrisoners), res.BlackScore)
}

func TestComputeResultCreditsDeadStonesAsOpponentPrisoners(t *testing.T) {
	g := newTestGame(t, game.DefaultRules(), 0)
	require.NoError(t, g.Play(v(t, "A1")))
	require.NoError(t, g.Pass())
	require.NoError(t, g.Pass())

	res := ComputeResult(g, []vertex.Vertex{v(t, "A1")})
	assert.Equal(t, 1, res.WhitePrisoners)
	assert.Equal(t, 0, res.BlackStonesOnBoard)
}

func TestScorerCachesRepeatedPositionAndDeadSet(t *testing.T) {
	g := newTestGame(t, game.DefaultRules(), 6.5)
	require.NoError(t, g.Play(v(t, "E5")))

	s := NewScorer(1)
	r1 := s.Score(g, nil)
	r2 := s.Score(g, nil)

	assert.Equal(t, r1, r2)
	assert.EqualValues(t, 1, s.Cache().len())
}
