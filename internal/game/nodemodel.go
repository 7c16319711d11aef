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

import "github.com/frankkopp/weiqi/internal/gamerr"

// NodeModel owns the root Node and caches the current variation: the
// list of Nodes from root to the leaf of the selected branch. Invariant
// V1: every adjacent pair in the list is a parent/firstChild-descendant
// relation.
type NodeModel struct {
	root   *Node
	byID   map[int]*Node
	nextID int

	currentVariation []*Node

	numberOfNodes int
	numberOfMoves int
	dirty         bool
}

func newNodeModel() *NodeModel {
	root := &Node{id: 0}
	return &NodeModel{
		root:              root,
		byID:              map[int]*Node{0: root},
		nextID:            1,
		currentVariation:  []*Node{root},
		numberOfNodes:     1,
	}
}

// Root returns the tree's root Node.
func (m *NodeModel) Root() *Node {
	return m.root
}

// CurrentVariation returns a defensive copy of the current root-to-leaf
// path.
func (m *NodeModel) CurrentVariation() []*Node {
	out := make([]*Node, len(m.currentVariation))
	copy(out, m.currentVariation)
	return out
}

// CurrentLeaf returns the last Node of the current variation.
func (m *NodeModel) CurrentLeaf() *Node {
	return m.currentVariation[len(m.currentVariation)-1]
}

// NumberOfNodes is the total live Node count across the whole tree.
func (m *NodeModel) NumberOfNodes() int {
	return m.numberOfNodes
}

// NumberOfMoves is the count of Nodes in the whole tree carrying a Move.
func (m *NodeModel) NumberOfMoves() int {
	return m.numberOfMoves
}

// Dirty reports whether the document has changed since the last call to
// ClearDirty.
func (m *NodeModel) Dirty() bool {
	return m.dirty
}

// ClearDirty resets the dirty flag, e.g. right after a successful save.
func (m *NodeModel) ClearDirty() {
	m.dirty = false
}

// NewNode allocates a fresh, unlinked Node with the next free ID. The
// caller populates Move/Setup and links it in via AppendNode.
func (m *NodeModel) NewNode() *Node {
	n := &Node{id: m.nextID}
	m.byID[n.id] = n
	m.nextID++
	return n
}

// NodeByID looks up a Node by its stable ID, used by internal/archive
// when rehydrating the flat dictionary-of-nodes layout.
func (m *NodeModel) NodeByID(id int) (*Node, bool) {
	n, ok := m.byID[id]
	return n, ok
}

// AppendNode links n as firstChild of the current leaf and appends it to
// the current variation. Fails InvalidArgument if n is nil or already
// present in the current variation.
func (m *NodeModel) AppendNode(n *Node) error {
	if n == nil {
		return gamerr.New(gamerr.InvalidArgument, "AppendNode: node is nil")
	}
	for _, v := range m.currentVariation {
		if v == n {
			return gamerr.New(gamerr.InvalidArgument, "AppendNode: node %d already in current variation", n.id)
		}
	}
	leaf := m.CurrentLeaf()
	leaf.appendChild(n)
	m.currentVariation = append(m.currentVariation, n)
	m.numberOfNodes++
	if n.Move != nil {
		m.numberOfMoves++
	}
	m.dirty = true
	return nil
}

// DiscardNodesFromIndex detaches the Node at index i and its whole
// subtree from the tree. Fails OutOfRange if i < 1 or i >= len(variation).
// If the detached node had a nextSibling, that sibling (and its
// firstChild descendants) replaces it as the continuation of the current
// variation; otherwise the previousSibling is used; otherwise the
// variation is truncated at i-1.
func (m *NodeModel) DiscardNodesFromIndex(i int) error {
	if i < 1 || i >= len(m.currentVariation) {
		return gamerr.New(gamerr.OutOfRange, "DiscardNodesFromIndex: index %d out of range [1,%d)", i, len(m.currentVariation))
	}
	node := m.currentVariation[i]
	parent := node.parent
	nextSib := node.nextSibling
	var prevSib *Node
	if parent.firstChild != node {
		prevSib = parent.firstChild
		for prevSib != nil && prevSib.nextSibling != node {
			prevSib = prevSib.nextSibling
		}
	}

	removedNodes, removedMoves := m.countSubtree(node)
	node.detachFromParent()
	m.removeSubtreeFromRegistry(node)
	m.numberOfNodes -= removedNodes
	m.numberOfMoves -= removedMoves

	var continuation *Node
	if nextSib != nil {
		continuation = nextSib
	} else {
		continuation = prevSib
	}
	if continuation != nil {
		m.currentVariation = append(m.currentVariation[:i], firstChildChain(continuation)...)
	} else {
		m.currentVariation = m.currentVariation[:i]
	}
	m.dirty = true
	return nil
}

// DiscardLeafNode discards the deepest node of the current variation.
func (m *NodeModel) DiscardLeafNode() error {
	return m.DiscardNodesFromIndex(len(m.currentVariation) - 1)
}

// DiscardAllNodes resets the tree to a bare root, discarding every move
// and setup ever played.
func (m *NodeModel) DiscardAllNodes() {
	m.root.firstChild = nil
	m.root.Move = nil
	m.root.Setup = nil
	m.byID = map[int]*Node{0: m.root}
	m.nextID = 1
	m.currentVariation = []*Node{m.root}
	m.numberOfNodes = 1
	m.numberOfMoves = 0
	m.dirty = true
}

// ChangeToVariationContaining rebuilds the current variation as
// (root, ..., node.parent, node, node.firstChild, ...). Fails
// InvalidArgument if root is not an ancestor of node.
func (m *NodeModel) ChangeToVariationContaining(node *Node) error {
	var upward []*Node
	for cur := node; cur != nil; cur = cur.parent {
		upward = append(upward, cur)
	}
	if len(upward) == 0 || upward[len(upward)-1] != m.root {
		return gamerr.New(gamerr.InvalidArgument, "ChangeToVariationContaining: root is not an ancestor of node %d", node.id)
	}
	path := make([]*Node, len(upward))
	for i, n := range upward {
		path[len(upward)-1-i] = n
	}
	path = append(path, firstChildChain(node)[1:]...)
	m.currentVariation = path
	return nil
}

// AncestorInCurrentVariation walks parent links from node until a Node
// present in the current variation is found. Fails InvalidArgument if
// none is found (node belongs to a different tree).
func (m *NodeModel) AncestorInCurrentVariation(node *Node) (*Node, error) {
	inVariation := map[*Node]bool{}
	for _, v := range m.currentVariation {
		inVariation[v] = true
	}
	for cur := node; cur != nil; cur = cur.parent {
		if inVariation[cur] {
			return cur, nil
		}
	}
	return nil, gamerr.New(gamerr.InvalidArgument, "AncestorInCurrentVariation: node %d is not part of this game tree", node.id)
}

// IndexOfNode returns node's position in the current variation, or -1 if
// it is not present.
func (m *NodeModel) IndexOfNode(node *Node) int {
	for i, v := range m.currentVariation {
		if v == node {
			return i
		}
	}
	return -1
}

// NodeAtIndex returns the Node at position i in the current variation.
// Fails OutOfRange if i is outside [0, len).
func (m *NodeModel) NodeAtIndex(i int) (*Node, error) {
	if i < 0 || i >= len(m.currentVariation) {
		return nil, gamerr.New(gamerr.OutOfRange, "NodeAtIndex: index %d out of range", i)
	}
	return m.currentVariation[i], nil
}

// AllNodes returns every Node in the tree, in preorder (a node before its
// children, children in sibling order), for internal/archive's flat
// dictionary-of-nodes persisted layout.
func (m *NodeModel) AllNodes() []*Node {
	out := make([]*Node, 0, m.numberOfNodes)
	var walk func(n *Node)
	walk = func(n *Node) {
		out = append(out, n)
		for c := n.firstChild; c != nil; c = c.nextSibling {
			walk(c)
		}
	}
	walk(m.root)
	return out
}

// firstChildChain returns start followed by its descendants reached by
// repeatedly following firstChild - the "continuation of a variation"
// used by append/discard/switch.
func firstChildChain(start *Node) []*Node {
	chain := []*Node{start}
	for cur := start.firstChild; cur != nil; cur = cur.firstChild {
		chain = append(chain, cur)
	}
	return chain
}

// countSubtree returns the number of Nodes and the number of
// Move-carrying Nodes in node's subtree, node included.
func (m *NodeModel) countSubtree(node *Node) (nodes, moves int) {
	nodes = 1
	if node.Move != nil {
		moves = 1
	}
	for c := node.firstChild; c != nil; c = c.nextSibling {
		n, mv := m.countSubtree(c)
		nodes += n
		moves += mv
	}
	return
}

// removeSubtreeFromRegistry deletes node and every descendant from the
// ID registry.
func (m *NodeModel) removeSubtreeFromRegistry(node *Node) {
	delete(m.byID, node.id)
	for c := node.firstChild; c != nil; c = c.nextSibling {
		m.removeSubtreeFromRegistry(c)
	}
}
