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

import "github.com/frankkopp/weiqi/internal/board"

// Node is one element of the game tree. Invariant N1: if
// parent.firstChild != node then node is reachable by walking
// nextSibling from some child of parent. Invariant N2: a Node has at
// most one Move and at most one NodeSetup; the root initially has
// neither. ZobristHash represents the board position obtained by
// applying, in order, every ancestor's Setup/Move starting from the
// root's handicap.
type Node struct {
	id int

	parent      *Node
	firstChild  *Node
	nextSibling *Node

	Move  *Move
	Setup *NodeSetup

	ZobristHash board.Key
}

// ID is the Node's identity, stable for the life of the NodeModel that
// owns it and used as the archive's dictionary key (spec §6 item 6).
func (n *Node) ID() int {
	return n.id
}

// Parent returns n's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// FirstChild returns n's first child, or nil if n is a leaf.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// NextSibling returns the sibling following n under the same parent, or
// nil if n is the last child.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// Children returns every child of n, in sibling order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// appendChild links child as a new last child of n.
func (n *Node) appendChild(child *Node) {
	child.parent = n
	if n.firstChild == nil {
		n.firstChild = child
		return
	}
	last := n.firstChild
	for last.nextSibling != nil {
		last = last.nextSibling
	}
	last.nextSibling = child
}

// detachFromParent removes n from its parent's child list (unlinking
// firstChild or the relevant nextSibling pointer) without touching n's
// own subtree. Used by discardNodesFromIndex.
func (n *Node) detachFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	if p.firstChild == n {
		p.firstChild = n.nextSibling
		n.nextSibling = nil
		n.parent = nil
		return
	}
	prev := p.firstChild
	for prev != nil && prev.nextSibling != n {
		prev = prev.nextSibling
	}
	if prev != nil {
		prev.nextSibling = n.nextSibling
	}
	n.nextSibling = nil
	n.parent = nil
}
