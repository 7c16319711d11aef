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

// ConnectingStoneSuicide implements the connecting-stone sub-group suicide
// check used by board-setup legality (spec §4.5): given a stone-group
// Region and one of its member Points p, it asks whether changing p's
// colour would leave some sub-component of region (excluding p) with no
// remaining liberty.
//
// For each neighbour of p still in region, not yet assigned to a
// discovered sub-component, a breadth-first search collects that neighbour's component
// within region while p is treated as removed. If the first discovered
// component already accounts for every other Point in region, p cannot be
// a connecting stone and the search stops early. If any discovered
// component never touches a liberty except through p, that component is
// the suicidal sub-group.
func ConnectingStoneSuicide(region *Region, p *Point) (bool, []*Point) {
	visited := map[*Point]bool{}
	for _, dir := range adjacentDirections {
		q := p.neighbours[dir]
		if q == nil {
			continue
		}
		if _, inRegion := region.points[q]; !inRegion {
			continue
		}
		if visited[q] {
			continue
		}
		comp, hasLiberty := collectExcluding(region, q, p, visited)
		if len(comp) == len(region.points)-1 {
			return false, nil
		}
		if !hasLiberty {
			return true, comp
		}
	}
	return false, nil
}

// collectExcluding walks region's points reachable from start without
// passing through excluded, reporting whether the component touches any
// empty neighbour other than via excluded.
func collectExcluding(region *Region, start, excluded *Point, visited map[*Point]bool) ([]*Point, bool) {
	queue := []*Point{start}
	visited[start] = true
	hasLiberty := false
	var comp []*Point
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		comp = append(comp, cur)
		for _, dir := range adjacentDirections {
			n := cur.neighbours[dir]
			if n == nil || n == excluded {
				continue
			}
			if n.stoneState == vertex.None {
				hasLiberty = true
				continue
			}
			if _, inRegion := region.points[n]; inRegion && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return comp, hasLiberty
}
