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

// Package archive serialises a Game to and from the flat
// dictionary-of-nodes-by-ID layout of spec §6 item 6: Board size and star
// points, handicap, komi, rules, every Node keyed by its ID plus its
// parent's ID (breaking the tree into a flat list so encoding never
// recurses the tree itself), and each NodeSetup's previous-occupation
// snapshot. Zobrist hashes are never written; Load regenerates the
// ZobristTable with fresh random values and recomputes every hash
// bottom-up, per spec §6 item 6's closing sentence.
package archive

import (
	"encoding/json"
	"io"
	"math/rand"
	"time"

	"github.com/frankkopp/weiqi/internal/game"
	"github.com/frankkopp/weiqi/internal/gamerr"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// Archive is the wire form of a Game. Every field is exported so
// encoding/json round-trips it without custom (Un)MarshalJSON methods.
type Archive struct {
	BoardSize      int         `json:"boardSize"`
	StarPoints     []string    `json:"starPoints,omitempty"`
	Rules          game.Rules  `json:"rules"`
	HandicapPoints []string    `json:"handicapPoints,omitempty"`
	Komi           float64     `json:"komi"`
	FirstMoveColor string      `json:"firstMoveColor,omitempty"`
	CurrentLeafID  int         `json:"currentLeafId"`
	Nodes          []NodeEntry `json:"nodes"`
}

// NodeEntry is one Node's flattened record. ParentID is nil only for the
// root.
type NodeEntry struct {
	ID       int             `json:"id"`
	ParentID *int            `json:"parentId"`
	Move     *MoveEntry      `json:"move,omitempty"`
	Setup    *NodeSetupEntry `json:"setup,omitempty"`
}

// MoveEntry is the persisted form of a game.Move.
type MoveEntry struct {
	Type           string   `json:"type"` // "play" or "pass"
	PlayerColor    string   `json:"playerColor"`
	Point          string   `json:"point"`
	CapturedStones []string `json:"capturedStones,omitempty"`
	MoveNumber     int      `json:"moveNumber"`
}

// NodeSetupEntry is the persisted form of a game.NodeSetup.
type NodeSetupEntry struct {
	BlackSetupStones    []string          `json:"blackSetupStones,omitempty"`
	WhiteSetupStones    []string          `json:"whiteSetupStones,omitempty"`
	NoSetupStones       []string          `json:"noSetupStones,omitempty"`
	SetupFirstMoveColor string            `json:"setupFirstMoveColor,omitempty"`
	PreviousOccupation  map[string]string `json:"previousOccupation,omitempty"`
}

// Save walks g's whole NodeModel (not just the current variation) into an
// Archive.
func Save(g *game.Game) *Archive {
	b := g.Board()
	a := &Archive{
		BoardSize:      int(b.Size()),
		StarPoints:     vertexStrings(b.StarPoints()),
		Rules:          g.Rules(),
		HandicapPoints: vertexStrings(g.HandicapPoints()),
		Komi:           g.Komi(),
		CurrentLeafID:  g.NodeModel().CurrentLeaf().ID(),
	}
	if override := g.SetupFirstMoveColorOverride(); override != vertex.None {
		a.FirstMoveColor = override.String()
	}

	allNodes := g.NodeModel().AllNodes()
	a.Nodes = make([]NodeEntry, 0, len(allNodes))
	for _, n := range allNodes {
		entry := NodeEntry{ID: n.ID()}
		if parent := n.Parent(); parent != nil {
			pid := parent.ID()
			entry.ParentID = &pid
		}
		if n.Move != nil {
			entry.Move = saveMove(n.Move)
		}
		if n.Setup != nil {
			entry.Setup = saveSetup(n.Setup)
		}
		a.Nodes = append(a.Nodes, entry)
	}
	return a
}

func saveMove(m *game.Move) *MoveEntry {
	return &MoveEntry{
		Type:           m.Type.String(),
		PlayerColor:    m.PlayerColor.String(),
		Point:          m.Point.String(),
		CapturedStones: vertexStrings(m.CapturedStones),
		MoveNumber:     m.MoveNumber,
	}
}

func saveSetup(s *game.NodeSetup) *NodeSetupEntry {
	e := &NodeSetupEntry{
		BlackSetupStones: vertexStrings(s.BlackSetupStones),
		WhiteSetupStones: vertexStrings(s.WhiteSetupStones),
		NoSetupStones:    vertexStrings(s.NoSetupStones),
	}
	if s.SetupFirstMoveColor != vertex.None {
		e.SetupFirstMoveColor = s.SetupFirstMoveColor.String()
	}
	if len(s.PreviousOccupation) > 0 {
		e.PreviousOccupation = map[string]string{}
		for v, st := range s.PreviousOccupation {
			e.PreviousOccupation[v.String()] = st.String()
		}
	}
	return e
}

// WriteJSON encodes a to w.
func (a *Archive) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// ReadJSON decodes an Archive from r.
func ReadJSON(r io.Reader) (*Archive, error) {
	a := &Archive{}
	if err := json.NewDecoder(r).Decode(a); err != nil {
		return nil, gamerr.New(gamerr.InvalidArgument, "archive: malformed JSON: %v", err)
	}
	return a, nil
}

func vertexStrings(vs []vertex.Vertex) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func parseVertices(ss []string) ([]vertex.Vertex, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	out := make([]vertex.Vertex, len(ss))
	for i, s := range ss {
		v, err := vertex.Parse(s)
		if err != nil {
			return nil, gamerr.New(gamerr.InvalidArgument, "archive: %v", err)
		}
		out[i] = v
	}
	return out, nil
}

func parseColor(s string) vertex.StoneState {
	switch s {
	case vertex.Black.String():
		return vertex.Black
	case vertex.White.String():
		return vertex.White
	default:
		return vertex.None
	}
}

// freshZobristSeed produces a non-zero seed so a reloaded Game never
// replays the previous session's hash sequence, matching spec §6 item 6's
// "regenerated with fresh random values" requirement. Grounded on the
// teacher's own time-seeded math/rand use in search.go's move-ordering
// tie-break.
func freshZobristSeed() uint64 {
	rand.Seed(time.Now().UnixNano())
	seed := rand.Uint64()
	if seed == 0 {
		seed = 1
	}
	return seed
}
