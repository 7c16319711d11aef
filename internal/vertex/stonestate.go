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

// StoneState is the occupation of a single Point.
type StoneState int

const (
	None StoneState = iota
	Black
	White
)

func (s StoneState) String() string {
	switch s {
	case None:
		return "None"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Invalid"
	}
}

// Opposite returns the other colour. Calling it on None returns None.
func (s StoneState) Opposite() StoneState {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

// Color is an alias used where the domain only admits Black/White, never
// None - e.g. playerColor on a Move. It shares StoneState's representation
// so no conversion is needed at call sites.
type Color = StoneState

// ColorIndex returns 0 for Black and 1 for White, the ZobristTable's
// second index dimension. Calling it with None or an invalid value panics;
// callers must validate color first.
func ColorIndex(c Color) int {
	switch c {
	case Black:
		return 0
	case White:
		return 1
	default:
		panic("vertex: ColorIndex called with non-colour StoneState")
	}
}
