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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexStringRoundTrip(t *testing.T) {
	for _, size := range AllBoardSizes {
		for x := 1; x <= int(size); x++ {
			for y := 1; y <= int(size); y++ {
				v := Vertex{X: x, Y: y}
				parsed, err := Parse(v.String())
				require.NoError(t, err)
				assert.Equal(t, v, parsed, "round trip failed for %v at size %v", v, size)
			}
		}
	}
}

func TestVertexSkipsI(t *testing.T) {
	v := Vertex{X: 8, Y: 3} // H3
	assert.Equal(t, "H3", v.String())
	v2 := Vertex{X: 9, Y: 3} // J3, skipping I
	assert.Equal(t, "J3", v2.String())
}

func TestPass(t *testing.T) {
	assert.True(t, Pass.IsPass())
	assert.Equal(t, "pass", Pass.String())
	parsed, err := Parse("pass")
	require.NoError(t, err)
	assert.True(t, parsed.IsPass())
}

func TestVertexValid(t *testing.T) {
	assert.True(t, Vertex{X: 1, Y: 1}.Valid(Size9))
	assert.True(t, Vertex{X: 9, Y: 9}.Valid(Size9))
	assert.False(t, Vertex{X: 10, Y: 1}.Valid(Size9))
	assert.False(t, Vertex{X: 0, Y: 1}.Valid(Size9))
	assert.False(t, Vertex{X: 1, Y: 1}.Valid(Undefined))
}

func TestColorIndex(t *testing.T) {
	assert.Equal(t, 0, ColorIndex(Black))
	assert.Equal(t, 1, ColorIndex(White))
}

func TestStoneStateOpposite(t *testing.T) {
	assert.Equal(t, White, Black.Opposite())
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, None, None.Opposite())
}
