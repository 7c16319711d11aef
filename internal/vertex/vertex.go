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

package vertex

import (
	"fmt"
	"strconv"
	"strings"
)

// columnLetters skips 'I', matching the conventional Go board coordinate
// convention (column letters A-T excluding I).
const columnLetters = "_ABCDEFGHJKLMNOPQRSTUVWXYZ"

// Vertex is a 1-based (x,y) coordinate pair. The zero value is not a valid
// board coordinate; use Pass for the sentinel "no point" value.
type Vertex struct {
	X, Y int
}

// Pass is the sentinel Vertex representing a pass move, never a real
// intersection.
var Pass = Vertex{X: 0, Y: 0}

// IsPass reports whether v is the Pass sentinel.
func (v Vertex) IsPass() bool {
	return v.X == 0 && v.Y == 0
}

// Valid reports whether v lies within a board of the given size.
func (v Vertex) Valid(size BoardSize) bool {
	if !size.Valid() {
		return false
	}
	return v.X >= 1 && v.X <= int(size) && v.Y >= 1 && v.Y <= int(size)
}

// String renders v in the conventional letter-column/decimal-row form,
// e.g. "D4". Pass renders as "pass".
func (v Vertex) String() string {
	if v.IsPass() {
		return "pass"
	}
	if v.X < 1 || v.X >= len(columnLetters) {
		return fmt.Sprintf("?(%d,%d)", v.X, v.Y)
	}
	return fmt.Sprintf("%c%d", columnLetters[v.X], v.Y)
}

// Parse decodes a coordinate string of the form "<letter><row>" (or "pass")
// produced by String. Round-tripping through String and Parse is lossless
// for every Vertex valid on some supported BoardSize.
func Parse(s string) (Vertex, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "pass") {
		return Pass, nil
	}
	if len(s) < 2 {
		return Vertex{}, fmt.Errorf("vertex: %q too short", s)
	}
	col := strings.ToUpper(s[0:1])
	x := strings.Index(columnLetters, col)
	if x <= 0 {
		return Vertex{}, fmt.Errorf("vertex: invalid column letter in %q", s)
	}
	y, err := strconv.Atoi(s[1:])
	if err != nil {
		return Vertex{}, fmt.Errorf("vertex: invalid row in %q: %w", s, err)
	}
	return Vertex{X: x, Y: y}, nil
}

// Equals reports structural equality between two Vertex values. Vertex is
// a comparable struct so == works too; this is kept for readability at
// call sites mirroring the rest of the domain's Equals methods.
func (v Vertex) Equals(other Vertex) bool {
	return v == other
}
