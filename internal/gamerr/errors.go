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

// Package gamerr defines the typed error taxonomy returned across the
// public API of the board and game packages. Errors are always returned,
// never panicked, across a public boundary; internal invariant violations
// use internal/assert instead.
package gamerr

import "fmt"

// Kind identifies the broad category of a failure.
type Kind int

const (
	// InvalidArgument covers nil/out-of-range/mismatched-type arguments.
	InvalidArgument Kind = iota
	// OutOfRange covers variation/node indices outside their valid bounds.
	OutOfRange
	// InternalInconsistency covers states that should be provably unreachable.
	InternalInconsistency
	// StateInvalid covers operations attempted in the wrong Game state.
	StateInvalid
	// MoveIllegal covers a rejected play/pass, with a MoveReason sub-code.
	MoveIllegal
	// SetupIllegal covers a rejected board setup change, with a SetupReason sub-code.
	SetupIllegal
	// SizeMismatch covers a ZobristTable/Board size mismatch.
	SizeMismatch
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfRange:
		return "OutOfRange"
	case InternalInconsistency:
		return "InternalInconsistency"
	case StateInvalid:
		return "StateInvalid"
	case MoveIllegal:
		return "MoveIllegal"
	case SetupIllegal:
		return "SetupIllegal"
	case SizeMismatch:
		return "SizeMismatch"
	default:
		return "Unknown"
	}
}

// MoveReason is the sub-code attached to a MoveIllegal error.
type MoveReason int

const (
	// NoMoveReason is used when the Kind is not MoveIllegal.
	NoMoveReason MoveReason = iota
	IntersectionOccupied
	Suicide
	SimpleKo
	Superko
	TooManyMoves
)

func (r MoveReason) String() string {
	switch r {
	case IntersectionOccupied:
		return "IntersectionOccupied"
	case Suicide:
		return "Suicide"
	case SimpleKo:
		return "SimpleKo"
	case Superko:
		return "Superko"
	case TooManyMoves:
		return "TooManyMoves"
	default:
		return "NoMoveReason"
	}
}

// SetupReason is the sub-code attached to a SetupIllegal error.
type SetupReason int

const (
	// NoSetupReason is used when the Kind is not SetupIllegal.
	NoSetupReason SetupReason = iota
	SuicideSetupStone
	SuicideOpposingStone
	SuicideOpposingStoneGroup
	SuicideOpposingColorSubgroup
	SuicideFriendlyStoneGroup
)

func (r SetupReason) String() string {
	switch r {
	case SuicideSetupStone:
		return "SuicideSetupStone"
	case SuicideOpposingStone:
		return "SuicideOpposingStone"
	case SuicideOpposingStoneGroup:
		return "SuicideOpposingStoneGroup"
	case SuicideOpposingColorSubgroup:
		return "SuicideOpposingColorSubgroup"
	case SuicideFriendlyStoneGroup:
		return "SuicideFriendlyStoneGroup"
	default:
		return "NoSetupReason"
	}
}

// Error is the concrete error type returned from the public API. Point is
// an interface{} to avoid a package cycle with internal/board/internal/vertex;
// callers type-assert it to *board.Point or vertex.Vertex as documented per
// call site.
type Error struct {
	Kind        Kind
	MoveReason  MoveReason
	SetupReason SetupReason
	Point       interface{}
	Message     string
}

func (e *Error) Error() string {
	switch e.Kind {
	case MoveIllegal:
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.MoveReason, e.Message)
	case SetupIllegal:
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.SetupReason, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// New creates a plain Error of the given Kind.
func New(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// NewMove creates a MoveIllegal error with the given reason.
func NewMove(reason MoveReason, format string, a ...interface{}) *Error {
	return &Error{Kind: MoveIllegal, MoveReason: reason, Message: fmt.Sprintf(format, a...)}
}

// NewSetup creates a SetupIllegal error with the given reason and the
// offending point (if any).
func NewSetup(reason SetupReason, point interface{}, format string, a ...interface{}) *Error {
	return &Error{Kind: SetupIllegal, SetupReason: reason, Point: point, Message: fmt.Sprintf(format, a...)}
}
