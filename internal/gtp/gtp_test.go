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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/weiqi/internal/vertex"
)

// passOracle always reports no dead stones, enough to exercise
// final_status_list/final_score without a real Go-playing engine.
type passOracle struct{}

func (passOracle) Query(size vertex.BoardSize, stones []vertex.Vertex) ([]vertex.Vertex, error) {
	return nil, nil
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h := NewHandler(passOracle{})
	t.Cleanup(h.Close)
	return h
}

func firstLine(s string) string {
	return strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
}

func TestProtocolVersionNameVersion(t *testing.T) {
	h := newTestHandler(t)
	assert.Equal(t, "= 2\n\n", h.Command("protocol_version"))
	assert.Equal(t, "= weiqi\n\n", h.Command("name"))
	assert.Equal(t, "= 0.1\n\n", h.Command("version"))
}

func TestKnownCommandAndListCommands(t *testing.T) {
	h := newTestHandler(t)
	assert.Equal(t, "= true\n\n", h.Command("known_command play"))
	assert.Equal(t, "= false\n\n", h.Command("known_command bogus"))
	out := h.Command("list_commands")
	assert.Contains(t, out, "genmove")
	assert.Contains(t, out, "final_score")
}

func TestBoardsizeAndClearBoard(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, "= \n\n", h.Command("boardsize 13"))
	assert.Equal(t, vertex.Size13, h.boardSize)
	require.Equal(t, "= \n\n", h.Command("clear_board"))
	assert.Equal(t, vertex.Color(vertex.Black), h.g.NextMoveColor())

	resp := h.Command("boardsize 6")
	assert.True(t, strings.HasPrefix(resp, "?"))
}

func TestKomiChangesGameKomi(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, "= \n\n", h.Command("komi 0.5"))
	assert.Equal(t, 0.5, h.g.Komi())
}

func TestPlayAndUndoRoundTrip(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, "= \n\n", h.Command("play black D4"))
	assert.Equal(t, vertex.Color(vertex.White), h.g.NextMoveColor())

	require.Equal(t, "= \n\n", h.Command("undo"))
	assert.Equal(t, vertex.Color(vertex.Black), h.g.NextMoveColor())
}

func TestPlayWrongColourFails(t *testing.T) {
	h := newTestHandler(t)
	resp := h.Command("play white D4")
	assert.True(t, strings.HasPrefix(resp, "?"))
}

func TestPlayPass(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, "= \n\n", h.Command("play black pass"))
	assert.Equal(t, vertex.Color(vertex.White), h.g.NextMoveColor())
}

func TestGenmoveAlwaysPasses(t *testing.T) {
	h := newTestHandler(t)
	resp := h.Command("genmove black")
	assert.Equal(t, "= pass\n\n", resp)
	assert.Equal(t, vertex.Color(vertex.White), h.g.NextMoveColor())
}

func TestFinalStatusListAndFinalScoreOnEmptyBoard(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, "= \n\n", h.Command("boardsize 9"))

	resp := h.Command("final_status_list dead")
	assert.Equal(t, "= \n\n", resp)

	score := h.Command("final_score")
	assert.True(t, strings.HasPrefix(score, "= W+"))
}

func TestFinalStatusListRejectsUnknownStatus(t *testing.T) {
	h := newTestHandler(t)
	resp := h.Command("final_status_list bogus")
	assert.True(t, strings.HasPrefix(resp, "?"))
}

func TestUnknownCommandIsRejected(t *testing.T) {
	h := newTestHandler(t)
	resp := h.Command("frobnicate")
	assert.Equal(t, "? unknown command\n\n", resp)
}

func TestQuitTerminatesLoop(t *testing.T) {
	h := newTestHandler(t)
	assert.True(t, h.handleReceivedCommand("quit"))
}

func TestIdPrefixIsEchoedInResponse(t *testing.T) {
	h := newTestHandler(t)
	resp := h.Command("7 name")
	assert.Equal(t, "=7 weiqi\n\n", resp)
}
