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

package archive

import (
	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/game"
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// Load rehydrates a into a live Game: a fresh Board and ZobristTable (new
// random seed), the handicap/rules/komi it names, the whole Node tree it
// names (every variation, not just the one that was current when saved),
// and the board position at the variation that was current.
//
// Node linkage is rebuilt through game.NodeModel's exported tree-editing
// API (NewNode/AppendNode/ChangeToVariationContaining) rather than by
// replaying Play/ChangeSetupPoint, since those re-run legality checks an
// already-valid archived game has no need to repeat and only ever touch
// the current variation's board - a loaded archive's non-current
// branches must still become part of the tree without disturbing the
// board at all.
func Load(a *Archive) (*game.Game, error) {
	size := vertex.BoardSize(a.BoardSize)
	if !size.Valid() {
		return nil, gamerr.New(gamerr.InvalidArgument, "archive: invalid board size %d", a.BoardSize)
	}
	if len(a.StarPoints) > 0 {
		board.SetStarPoints(size, a.StarPoints)
	}
	b, err := board.NewBoard(size, freshZobristSeed())
	if err != nil {
		return nil, err
	}

	handicap, err := parseVertices(a.HandicapPoints)
	if err != nil {
		return nil, err
	}

	g, err := game.NewGame(b, a.Rules, handicap, a.Komi, parseColor(a.FirstMoveColor))
	if err != nil {
		return nil, err
	}

	liveByArchiveID, rootEntry, err := buildTree(g, a.Nodes)
	if err != nil {
		return nil, err
	}

	leaf, ok := liveByArchiveID[a.CurrentLeafID]
	if !ok {
		return nil, gamerr.New(gamerr.InvalidArgument, "archive: currentLeafId %d not found among nodes", a.CurrentLeafID)
	}
	if err := g.NodeModel().ChangeToVariationContaining(leaf); err != nil {
		return nil, err
	}

	if rootEntry.Setup != nil {
		g.NodeModel().Root().Setup, err = setupFromEntry(rootEntry.Setup)
		if err != nil {
			return nil, err
		}
	}

	if err := applyVariationToBoard(g); err != nil {
		return nil, err
	}
	g.RecomputeZobristHashes()
	g.RecomputeNextMoveColorForCurrentVariation()
	return g, nil
}

// buildTree links every archived node into g's NodeModel, returning a map
// from archive ID to the live *game.Node it produced and the root's own
// entry (for the caller to apply its Setup, since the root already
// exists before buildTree runs and is never itself created by NewNode).
func buildTree(g *game.Game, entries []NodeEntry) (map[int]*game.Node, *NodeEntry, error) {
	childrenOf := map[int][]NodeEntry{}
	var rootEntry *NodeEntry
	for _, e := range entries {
		e := e
		if e.ParentID == nil {
			rootEntry = &e
			continue
		}
		childrenOf[*e.ParentID] = append(childrenOf[*e.ParentID], e)
	}
	if rootEntry == nil {
		return nil, nil, gamerr.New(gamerr.InvalidArgument, "archive: no root node (parentId null) among nodes")
	}

	liveByArchiveID := map[int]*game.Node{rootEntry.ID: g.NodeModel().Root()}

	var build func(archiveParentID int, liveParent *game.Node) error
	build = func(archiveParentID int, liveParent *game.Node) error {
		for _, childEntry := range childrenOf[archiveParentID] {
			if err := g.NodeModel().ChangeToVariationContaining(liveParent); err != nil {
				return err
			}
			child := g.NodeModel().NewNode()
			if childEntry.Move != nil {
				m, err := moveFromEntry(childEntry.Move)
				if err != nil {
					return err
				}
				child.Move = m
			}
			if childEntry.Setup != nil {
				s, err := setupFromEntry(childEntry.Setup)
				if err != nil {
					return err
				}
				child.Setup = s
			}
			if err := g.NodeModel().AppendNode(child); err != nil {
				return err
			}
			liveByArchiveID[childEntry.ID] = child
			if err := build(childEntry.ID, child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := build(rootEntry.ID, g.NodeModel().Root()); err != nil {
		return nil, nil, err
	}
	return liveByArchiveID, rootEntry, nil
}

func moveFromEntry(e *MoveEntry) (*game.Move, error) {
	point, err := vertex.Parse(e.Point)
	if err != nil {
		return nil, gamerr.New(gamerr.InvalidArgument, "archive: %v", err)
	}
	captured, err := parseVertices(e.CapturedStones)
	if err != nil {
		return nil, err
	}
	moveType := game.Play
	if e.Type == game.Pass.String() {
		moveType = game.Pass
	}
	return &game.Move{
		Type:           moveType,
		PlayerColor:    parseColor(e.PlayerColor),
		Point:          point,
		CapturedStones: captured,
		MoveNumber:     e.MoveNumber,
	}, nil
}

func setupFromEntry(e *NodeSetupEntry) (*game.NodeSetup, error) {
	black, err := parseVertices(e.BlackSetupStones)
	if err != nil {
		return nil, err
	}
	white, err := parseVertices(e.WhiteSetupStones)
	if err != nil {
		return nil, err
	}
	none, err := parseVertices(e.NoSetupStones)
	if err != nil {
		return nil, err
	}
	prev := map[vertex.Vertex]vertex.StoneState{}
	for vs, state := range e.PreviousOccupation {
		v, err := vertex.Parse(vs)
		if err != nil {
			return nil, gamerr.New(gamerr.InvalidArgument, "archive: %v", err)
		}
		prev[v] = parseColor(state)
	}
	return &game.NodeSetup{
		BlackSetupStones:    black,
		WhiteSetupStones:    white,
		NoSetupStones:       none,
		SetupFirstMoveColor: parseColor(e.SetupFirstMoveColor),
		PreviousOccupation:  prev,
	}, nil
}

// applyVariationToBoard replays every Setup/Move along g's current
// variation directly against g.Board(), root first - the tree built by
// buildTree only links Nodes, it never touches the board, since most of
// the nodes it links belong to variations other than the one that must
// end up reflected on the board.
func applyVariationToBoard(g *game.Game) error {
	b := g.Board()
	for _, n := range g.NodeModel().CurrentVariation() {
		if n.Setup != nil {
			if err := applySetupToBoard(b, n.Setup); err != nil {
				return err
			}
		}
		if n.Move != nil && n.Move.Type == game.Play {
			p, err := b.PointAt(n.Move.Point)
			if err != nil {
				return err
			}
			b.PlaceStone(p, n.Move.PlayerColor)
		}
	}
	return nil
}

func applySetupToBoard(b *board.Board, setup *game.NodeSetup) error {
	apply := func(vs []vertex.Vertex, state vertex.StoneState) error {
		for _, v := range vs {
			p, err := b.PointAt(v)
			if err != nil {
				return err
			}
			b.SetStoneState(p, state)
		}
		return nil
	}
	if err := apply(setup.BlackSetupStones, vertex.Black); err != nil {
		return err
	}
	if err := apply(setup.WhiteSetupStones, vertex.White); err != nil {
		return err
	}
	return apply(setup.NoSetupStones, vertex.None)
}
