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

// Package vertex holds the board-agnostic coordinate and enum types shared
// by every other package: BoardSize, StoneState, Color and Vertex itself.
package vertex

import "fmt"

// BoardSize is the finite enumeration of valid Go board edge lengths.
// Undefined is a sentinel only ever valid at construction time; any
// operation that receives it fails with InvalidArgument.
type BoardSize int

const (
	Undefined BoardSize = 0
	Size7     BoardSize = 7
	Size9     BoardSize = 9
	Size11    BoardSize = 11
	Size13    BoardSize = 13
	Size15    BoardSize = 15
	Size17    BoardSize = 17
	Size19    BoardSize = 19
)

// Valid reports whether s is one of the seven supported board sizes.
func (s BoardSize) Valid() bool {
	switch s {
	case Size7, Size9, Size11, Size13, Size15, Size17, Size19:
		return true
	default:
		return false
	}
}

func (s BoardSize) String() string {
	if s == Undefined {
		return "Undefined"
	}
	return fmt.Sprintf("%d", int(s))
}

// AllBoardSizes lists the seven valid sizes, smallest first. Used by
// property tests that loop over every size.
var AllBoardSizes = []BoardSize{Size7, Size9, Size11, Size13, Size15, Size17, Size19}
