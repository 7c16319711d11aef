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

package config

// boardConfiguration is a data structure to hold the defaults used when a
// Game is created without explicit rules/handicap/komi.
type boardConfiguration struct {
	DefaultSize     int
	DefaultKomi     float64
	DefaultKoRule   string
	DefaultScoring  string
	ZobristSeed     uint64
}

func setupBoard() {
	if Settings.Board.DefaultSize == 0 {
		Settings.Board.DefaultSize = 19
	}
	if Settings.Board.DefaultKomi == 0 {
		Settings.Board.DefaultKomi = 6.5
	}
	if Settings.Board.DefaultKoRule == "" {
		Settings.Board.DefaultKoRule = "SuperkoPositional"
	}
	if Settings.Board.DefaultScoring == "" {
		Settings.Board.DefaultScoring = "Area"
	}
	if Settings.Board.ZobristSeed == 0 {
		Settings.Board.ZobristSeed = 0x9E3779B97F4A7C15
	}
}
