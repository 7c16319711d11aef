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

import "github.com/frankkopp/weiqi/internal/vertex"

// MoveType distinguishes a stone placement from a pass.
type MoveType int

const (
	Play MoveType = iota
	Pass
)

func (t MoveType) String() string {
	if t == Pass {
		return "Pass"
	}
	return "Play"
}

// Move is a record of a single ply: a play or a pass by a colour.
// Invariant M1: Play has a non-Pass-sentinel Point; Pass does not.
// Invariant M2: MoveNumber is one more than the previous Move's in the
// same variation, or 1 if first.
type Move struct {
	Type           MoveType
	PlayerColor    vertex.Color
	Point          vertex.Vertex // vertex.Pass when Type == Pass
	CapturedStones []vertex.Vertex
	MoveNumber     int
}

func (m *Move) String() string {
	if m.Type == Pass {
		return "pass"
	}
	return m.Point.String()
}
