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

package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/oracle"
	"github.com/frankkopp/weiqi/internal/score"
	"github.com/frankkopp/weiqi/internal/vertex"
)

func (h *Handler) knownCommandCommand(id string, args []string) {
	if len(args) != 1 {
		h.reply(id, false, "known_command requires exactly one argument")
		return
	}
	for _, c := range commandNames {
		if c == args[0] {
			h.reply(id, true, "true")
			return
		}
	}
	h.reply(id, true, "false")
}

func (h *Handler) boardsizeCommand(id string, args []string) {
	if len(args) != 1 {
		h.reply(id, false, "boardsize requires exactly one argument")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		h.reply(id, false, "boardsize must be an integer")
		return
	}
	size := vertex.BoardSize(n)
	if !size.Valid() {
		h.reply(id, false, "unacceptable size")
		return
	}
	h.boardSize = size
	h.handicap = nil
	if err := h.newGame(); err != nil {
		h.reply(id, false, err.Error())
		return
	}
	h.reply(id, true, "")
}

func (h *Handler) clearBoardCommand(id string) {
	h.handicap = nil
	if err := h.newGame(); err != nil {
		h.reply(id, false, err.Error())
		return
	}
	h.reply(id, true, "")
}

func (h *Handler) komiCommand(id string, args []string) {
	if len(args) != 1 {
		h.reply(id, false, "komi requires exactly one argument")
		return
	}
	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		h.reply(id, false, "komi must be a number")
		return
	}
	h.komi = k
	h.g.SetKomi(k)
	h.reply(id, true, "")
}

func (h *Handler) playCommand(id string, args []string) {
	if len(args) != 2 {
		h.reply(id, false, "play requires a colour and a vertex")
		return
	}
	color, ok := parseColor(args[0])
	if !ok {
		h.reply(id, false, "unknown colour")
		return
	}
	if color != h.g.NextMoveColor() {
		h.reply(id, false, "it is not "+color.String()+"'s turn")
		return
	}
	if strings.EqualFold(args[1], "pass") {
		if err := h.g.Pass(); err != nil {
			h.reply(id, false, err.Error())
			return
		}
		h.reply(id, true, "")
		return
	}
	pt, err := vertex.Parse(args[1])
	if err != nil {
		h.reply(id, false, "invalid vertex")
		return
	}
	if err := h.g.Play(pt); err != nil {
		h.reply(id, false, err.Error())
		return
	}
	h.reply(id, true, "")
}

func (h *Handler) undoCommand(id string) {
	if err := h.g.Undo(); err != nil {
		h.reply(id, false, err.Error())
		return
	}
	h.reply(id, true, "")
}

// genmoveCommand always passes for the requested colour: producing a
// move is out of scope for this engine (it adjudicates rules, it does
// not play), so the honest GTP answer is the same move a pass-only
// player would make.
func (h *Handler) genmoveCommand(id string, args []string) {
	if len(args) != 1 {
		h.reply(id, false, "genmove requires a colour")
		return
	}
	color, ok := parseColor(args[0])
	if !ok {
		h.reply(id, false, "unknown colour")
		return
	}
	if color != h.g.NextMoveColor() {
		h.reply(id, false, "it is not "+color.String()+"'s turn")
		return
	}
	if err := h.g.Pass(); err != nil {
		h.reply(id, false, err.Error())
		return
	}
	h.reply(id, true, "pass")
}

// queryDeadStones drives the oracle's asynchronous BeginScoring
// synchronously, via a one-shot channel, the way a GTP client expects
// final_status_list to block until it has an answer.
func (h *Handler) queryDeadStones() ([]vertex.Vertex, error) {
	b := h.g.Board()
	leaf := h.g.NodeModel().CurrentLeaf()
	done := make(chan oracle.Result, 1)
	h.oracle.BeginScoring(leaf.ZobristHash, b.Size(), stonesOnBoard(b), func(r oracle.Result) {
		done <- r
	})
	r := <-done
	return r.DeadStones, r.Err
}

var statusArgToState = map[string]board.StoneGroupState{
	"alive": board.StoneGroupAlive,
	"dead":  board.StoneGroupDead,
	"seki":  board.StoneGroupSeki,
}

func (h *Handler) finalStatusListCommand(id string, args []string) {
	if len(args) != 1 {
		h.reply(id, false, "final_status_list requires a status argument")
		return
	}
	want, ok := statusArgToState[strings.ToLower(args[0])]
	if !ok {
		h.reply(id, false, "unknown status, want one of alive/dead/seki")
		return
	}
	dead, err := h.queryDeadStones()
	if err != nil {
		h.reply(id, false, err.Error())
		return
	}
	b := h.g.Board()
	score.EnterScoringMode(b)
	score.MarkDeadStoneGroups(b, dead)
	vertices := sortedRegionVertices(b, want)
	score.ExitScoringMode(b)
	h.reply(id, true, strings.Join(vertices, "\n"))
}

func (h *Handler) finalScoreCommand(id string) {
	dead, err := h.queryDeadStones()
	if err != nil {
		h.reply(id, false, err.Error())
		return
	}
	r := h.scorer.Score(h.g, dead)
	h.reply(id, true, formatScore(r))
}

func formatScore(r *score.Result) string {
	diff := r.BlackScore - r.WhiteScore
	switch {
	case diff > 0:
		return fmt.Sprintf("B+%s", trimScore(diff))
	case diff < 0:
		return fmt.Sprintf("W+%s", trimScore(-diff))
	default:
		return "0"
	}
}

func trimScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
