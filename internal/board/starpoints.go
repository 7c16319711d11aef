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

package board

import "github.com/frankkopp/weiqi/internal/vertex"

// starPointTable is the externally configurable star-point table (SPEC_FULL
// open question (a)): for each supported size, the conventional vertex
// strings used by reference Go implementations. Callers needing a
// different convention can override per-size via SetStarPoints.
var starPointTable = map[vertex.BoardSize][]string{
	vertex.Size7:  {"C3", "C5", "E3", "E5"},
	vertex.Size9:  {"C3", "C7", "G3", "G7", "E5"},
	vertex.Size11: {"C3", "C9", "J3", "J9", "F6"},
	vertex.Size13: {"D4", "D10", "K4", "K10", "G7"},
	vertex.Size15: {"D4", "D12", "M4", "M12", "H8"},
	vertex.Size17: {"D4", "D14", "O4", "O14", "J9", "J14", "O9", "D9", "J4"},
	vertex.Size19: {"D4", "D10", "D16", "K4", "K10", "K16", "Q4", "Q10", "Q16"},
}

// SetStarPoints overrides the star-point convention for size. Must be
// called before NewBoard for the size in question.
func SetStarPoints(size vertex.BoardSize, points []string) {
	starPointTable[size] = points
}

func starPointsFor(size vertex.BoardSize) []vertex.Vertex {
	names := starPointTable[size]
	out := make([]vertex.Vertex, 0, len(names))
	for _, s := range names {
		v, err := vertex.Parse(s)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
