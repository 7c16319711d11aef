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

// Package game implements the top-level rules-engine facade: the
// game-tree (Move, NodeSetup, Node, NodeModel), the legality engine, and
// the Game state machine that ties them to a single internal/board.Board.
package game

// KoRule selects how repeated positions are rejected.
type KoRule int

const (
	Simple KoRule = iota
	SuperkoPositional
	SuperkoSituational
)

func (k KoRule) String() string {
	switch k {
	case Simple:
		return "Simple"
	case SuperkoPositional:
		return "SuperkoPositional"
	case SuperkoSituational:
		return "SuperkoSituational"
	default:
		return "Unknown"
	}
}

// ScoringSystem selects the end-game scoring convention.
type ScoringSystem int

const (
	Area ScoringSystem = iota
	Territory
)

// LifeAndDeathRule selects how many trailing passes settle life and death.
type LifeAndDeathRule int

const (
	TwoPasses LifeAndDeathRule = iota
	ThreePasses
)

// FourPassesRule selects whether a run of four passes ends the game
// outright, independent of LifeAndDeathRule.
type FourPassesRule int

const (
	NoEffect FourPassesRule = iota
	FourPassesEndTheGame
)

// DisputeResolutionRule selects whether contested dead-stone marking must
// alternate between players or is unconstrained.
type DisputeResolutionRule int

const (
	Alternating DisputeResolutionRule = iota
	Free
)

// Rules bundles every independently configurable rule-set selection.
type Rules struct {
	KoRule                   KoRule
	ScoringSystem            ScoringSystem
	LifeAndDeathSettlingRule LifeAndDeathRule
	FourPassesRule           FourPassesRule
	DisputeResolutionRule    DisputeResolutionRule
}

// DefaultRules returns the conventional rule-set: positional superko,
// area scoring, two-pass settling, no special four-pass handling,
// alternating dispute resolution.
func DefaultRules() Rules {
	return Rules{
		KoRule:                   SuperkoPositional,
		ScoringSystem:            Area,
		LifeAndDeathSettlingRule: TwoPasses,
		FourPassesRule:           NoEffect,
		DisputeResolutionRule:    Alternating,
	}
}
