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

package oracle

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/weiqi/internal/board"
	"github.com/frankkopp/weiqi/internal/vertex"
)

// blockingOracle blocks on release until told to finish, letting tests
// exercise cancellation deterministically.
type blockingOracle struct {
	release chan struct{}
	result  []vertex.Vertex
}

func (o *blockingOracle) Query(size vertex.BoardSize, stones []vertex.Vertex) ([]vertex.Vertex, error) {
	<-o.release
	return o.result, nil
}

type fixedOracle struct {
	result []vertex.Vertex
	calls  int
	mu     sync.Mutex
}

func (o *fixedOracle) Query(size vertex.BoardSize, stones []vertex.Vertex) ([]vertex.Vertex, error) {
	o.mu.Lock()
	o.calls++
	o.mu.Unlock()
	return o.result, nil
}

func (o *fixedOracle) callCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

func TestBeginScoringDeliversResult(t *testing.T) {
	dead := []vertex.Vertex{{X: 1, Y: 1}}
	m := NewManager(&fixedOracle{result: dead}, 2, 1)
	defer m.Close()

	done := make(chan Result, 1)
	m.BeginScoring(board.Key(42), vertex.Size9, nil, func(r Result) { done <- r })

	select {
	case r := <-done:
		assert.NoError(t, r.Err)
		assert.Equal(t, dead, r.DeadStones)
	case <-time.After(time.Second):
		t.Fatal("BeginScoring never delivered a result")
	}
}

func TestBeginScoringCachesRepeatedHash(t *testing.T) {
	o := &fixedOracle{result: []vertex.Vertex{{X: 2, Y: 2}}}
	m := NewManager(o, 2, 1)
	defer m.Close()

	for i := 0; i < 3; i++ {
		done := make(chan Result, 1)
		m.BeginScoring(board.Key(7), vertex.Size9, nil, func(r Result) { done <- r })
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("BeginScoring never delivered a result")
		}
	}
	assert.Equal(t, 1, o.callCount())
	assert.EqualValues(t, 1, m.Cache().Len())
}

func TestEndScoringDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	o := &blockingOracle{release: release, result: []vertex.Vertex{{X: 3, Y: 3}}}
	m := NewManager(o, 1, 1)
	defer m.Close()

	delivered := make(chan Result, 1)
	m.BeginScoring(board.Key(1), vertex.Size9, nil, func(r Result) { delivered <- r })

	// Let the query start (so isQuerying is held), then cancel before it
	// finishes.
	require.Eventually(t, m.IsQuerying, time.Second, time.Millisecond)
	m.EndScoring()
	close(release)

	select {
	case <-delivered:
		t.Fatal("cancelled query must not deliver a result")
	case <-time.After(100 * time.Millisecond):
	}
	assert.EqualValues(t, 0, m.Cache().Len())
}

func TestIsQueryingReflectsInFlightQuery(t *testing.T) {
	release := make(chan struct{})
	o := &blockingOracle{release: release}
	m := NewManager(o, 1, 1)
	defer m.Close()

	assert.False(t, m.IsQuerying())
	m.BeginScoring(board.Key(5), vertex.Size9, nil, func(Result) {})
	require.Eventually(t, m.IsQuerying, time.Second, time.Millisecond)
	close(release)
	require.Eventually(t, func() bool { return !m.IsQuerying() }, time.Second, time.Millisecond)
}
