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

// Package gtp contains the Handler data structure and functionality to
// handle Go Text Protocol communication between a Go-playing user
// interface and this rules engine. Structurally it mirrors
// internal/uci.UciHandler: a bufio.Scanner command loop, a regex
// whitespace tokenizer, one private handler method per command, and a
// send() that logs every line written to the client.
package gtp

import (
	"bufio"
	"bytes"
	"math/rand"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	golog "github.com/op/go-logging"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/config"
	"github.com/frankkopp/weiqi/internal/game"
	"github.com/frankkopp/weiqi/internal/logging"
	"github.com/frankkopp/weiqi/internal/oracle"
	"github.com/frankkopp/weiqi/internal/score"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// commandNames is both the list_commands response and known_command's
// lookup table.
var commandNames = []string{
	"protocol_version", "name", "version", "known_command", "list_commands",
	"boardsize", "clear_board", "komi", "play", "undo", "genmove",
	"final_status_list", "final_score", "quit",
}

const (
	protocolVersion = "2"
	engineName      = "weiqi"
	engineVersion   = "0.1"
)

// Handler owns one Game plus the oracle/score collaborators that back
// final_status_list and final_score, and drives them from GTP commands
// read off InIo.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	gtpLog *golog.Logger

	boardSize vertex.BoardSize
	komi      float64
	rules     game.Rules
	handicap  []vertex.Vertex

	g      *game.Game
	oracle *oracle.Manager
	scorer *score.Scorer
}

// NewHandler creates a Handler over a fresh Game sized per
// internal/config's board defaults, with oracle queries served by o.
func NewHandler(o oracle.DeadStoneOracle) *Handler {
	config.Setup()
	h := &Handler{
		InIo:      bufio.NewScanner(os.Stdin),
		OutIo:     bufio.NewWriter(os.Stdout),
		gtpLog:    logging.GetFileLog("gtp"),
		boardSize: vertex.BoardSize(config.Settings.Board.DefaultSize),
		komi:      config.Settings.Board.DefaultKomi,
		rules:     rulesFromConfig(),
	}
	cacheMB := cacheSizeInMByte(config.Settings.Oracle.CacheSizeEntries)
	h.oracle = oracle.NewManager(o, config.Settings.Oracle.MaxConcurrentQueries, cacheMB)
	h.scorer = score.NewScorer(cacheMB)
	if err := h.newGame(); err != nil {
		panic("gtp: board defaults from internal/config must always be valid: " + err.Error())
	}
	return h
}

func rulesFromConfig() game.Rules {
	r := game.DefaultRules()
	switch config.Settings.Board.DefaultKoRule {
	case "Simple":
		r.KoRule = game.Simple
	case "SuperkoSituational":
		r.KoRule = game.SuperkoSituational
	default:
		r.KoRule = game.SuperkoPositional
	}
	switch config.Settings.Board.DefaultScoring {
	case "Territory":
		r.ScoringSystem = game.Territory
	default:
		r.ScoringSystem = game.Area
	}
	return r
}

// cacheSizeInMByte turns a requested entry count into the MB internal/
// oracle and internal/score expect; both caches assume ~64 bytes/slot
// (oracle.cacheEntrySize, score.cacheEntrySize), matching the estimate
// convention both packages already document.
func cacheSizeInMByte(entries int) int {
	mb := (entries * 64) / (1024 * 1024)
	if mb < 1 {
		mb = 1
	}
	return mb
}

// newGame (re)builds h.g from the Handler's current boardSize/komi/rules/
// handicap, the way boardsize and clear_board reset a GTP session.
func (h *Handler) newGame() error {
	b, err := board.NewBoard(h.boardSize, freshZobristSeed())
	if err != nil {
		return err
	}
	g, err := game.NewGame(b, h.rules, h.handicap, h.komi, vertex.None)
	if err != nil {
		return err
	}
	h.g = g
	return nil
}

// freshZobristSeed mirrors internal/archive's helper of the same name:
// a reset board must never replay a previous session's hash sequence.
func freshZobristSeed() uint64 {
	rand.Seed(time.Now().UnixNano())
	seed := rand.Uint64()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Loop starts the main loop reading commands from InIo until quit.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handleReceivedCommand(h.InIo.Text()) {
			return
		}
	}
}

// Close releases the Handler's oracle worker pool.
func (h *Handler) Close() {
	h.oracle.Close()
}

// Command handles a single line of GTP protocol, returning the response
// text. Mostly useful for debugging and unit testing, mirroring
// UciHandler.Command.
func (h *Handler) Command(cmd string) string {
	tmp := h.OutIo
	buffer := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buffer)
	h.handleReceivedCommand(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = tmp
	return buffer.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand parses one line, dispatches it, and reports
// whether it was "quit".
func (h *Handler) handleReceivedCommand(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}
	h.gtpLog.Infof("<< %s", line)
	tokens := regexWhiteSpace.Split(line, -1)

	id := ""
	if _, err := strconv.Atoi(tokens[0]); err == nil {
		id = tokens[0]
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		h.reply(id, false, "empty command")
		return false
	}
	cmd, args := tokens[0], tokens[1:]

	switch cmd {
	case "quit":
		h.reply(id, true, "")
		return true
	case "protocol_version":
		h.reply(id, true, protocolVersion)
	case "name":
		h.reply(id, true, engineName)
	case "version":
		h.reply(id, true, engineVersion)
	case "known_command":
		h.knownCommandCommand(id, args)
	case "list_commands":
		h.reply(id, true, strings.Join(commandNames, "\n"))
	case "boardsize":
		h.boardsizeCommand(id, args)
	case "clear_board":
		h.clearBoardCommand(id)
	case "komi":
		h.komiCommand(id, args)
	case "play":
		h.playCommand(id, args)
	case "undo":
		h.undoCommand(id)
	case "genmove":
		h.genmoveCommand(id, args)
	case "final_status_list":
		h.finalStatusListCommand(id, args)
	case "final_score":
		h.finalScoreCommand(id)
	default:
		h.reply(id, false, "unknown command")
	}
	return false
}

// reply writes a GTP response block: "="/"?" + id + " " + body, followed
// by the blank line the protocol uses to terminate a response.
func (h *Handler) reply(id string, ok bool, body string) {
	prefix := "="
	if !ok {
		prefix = "?"
	}
	msg := prefix + id + " " + body
	h.send(msg + "\n\n")
}

func (h *Handler) send(s string) {
	h.gtpLog.Infof(">> %s", strings.TrimRight(s, "\n"))
	_, _ = h.OutIo.WriteString(s)
	_ = h.OutIo.Flush()
}

func parseColor(s string) (vertex.Color, bool) {
	switch strings.ToLower(s) {
	case "b", "black":
		return vertex.Black, true
	case "w", "white":
		return vertex.White, true
	default:
		return vertex.None, false
	}
}

// stonesOnBoard lists every occupied vertex, the input the dead-stone
// oracle reasons over.
func stonesOnBoard(b *board.Board) []vertex.Vertex {
	var out []vertex.Vertex
	for _, p := range b.AllPoints() {
		if p.StoneState() != vertex.None {
			out = append(out, p.Vertex())
		}
	}
	return out
}

// sortedRegionVertices returns the vertex names of every point belonging
// to a stone-group Region whose StoneGroupState matches want, sorted for
// a deterministic final_status_list response.
func sortedRegionVertices(b *board.Board, want board.StoneGroupState) []string {
	var out []string
	for _, r := range b.Regions() {
		if !r.IsStoneGroup() || r.StoneGroupState != want {
			continue
		}
		for _, p := range r.Points() {
			out = append(out, p.Vertex().String())
		}
	}
	sort.Strings(out)
	return out
}
