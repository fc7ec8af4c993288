// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"fmt"
	"sort"
)

// A node is a single vertex of a Tree. Each node exclusively owns its
// child subtrees, either of which may be nil.
//
// The splitting axis of a node is not stored: it is always the node's
// depth modulo numAxes, and every traversal tracks depth as it goes.
type node struct {
	location    Point
	left, right *node
}

// Tree is a static two-dimensional k-d tree. Create a Tree with New.
//
// A Tree is immutable once built. Range and Nearest only read the
// tree, so they are safe for concurrent use.
type Tree struct {
	root   *node
	len    int
	height int
	bounds Rectangle
}

// New builds a balanced k-d tree containing every point in points.
//
// At each level the builder stably sorts the current subsequence of
// points on the level's splitting axis (X at even depths, Y at odd
// depths) and chooses the element at index len/2 as the node's
// location. Points before the median go into the left subtree, points
// after it into the right subtree. Points whose coordinate equals the
// median's may therefore end up on either side.
//
// The caller's slice is copied, never reordered. An empty or nil slice
// yields a valid, empty Tree.
func New(points []Point) *Tree {
	owned := make([]Point, len(points))
	copy(owned, points)

	t := &Tree{
		len:    len(owned),
		bounds: EmptyRectangle,
	}
	for i := range owned {
		t.bounds.Expand(owned[i])
	}
	t.root = build(owned, 0)
	t.height = height(t.root)
	return t
}

// build constructs the subtree for points at the given depth. It
// reorders points in place and retains no reference to the slice.
//
// Recursion depth is bounded by the tree height, which median
// splitting keeps at floor(log2(n)).
func build(points []Point, depth int) *node {
	if len(points) == 0 {
		return nil
	}

	axis := depth % numAxes
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Coord(axis) < points[j].Coord(axis)
	})

	m := len(points) / 2
	return &node{
		location: points[m],
		left:     build(points[:m], depth+1),
		right:    build(points[m+1:], depth+1),
	}
}

// height returns the number of edges on the longest root-to-leaf path
// of the subtree rooted at n. Empty and single-node subtrees both have
// height zero.
func height(n *node) int {
	if n == nil {
		return 0
	}
	h := 0
	q := ticketBag{{n: n}}
	for len(q) > 0 {
		tk := stackPop(&q)
		if tk.depth > h {
			h = tk.depth
		}
		if tk.n.left != nil {
			stackPush(&q, ticket{n: tk.n.left, depth: tk.depth + 1})
		}
		if tk.n.right != nil {
			stackPush(&q, ticket{n: tk.n.right, depth: tk.depth + 1})
		}
	}
	return h
}

// Len returns the number of points in the tree, which is also the
// number of nodes.
func (t *Tree) Len() int {
	return t.len
}

// Height returns the number of edges on the longest path from the
// root to a leaf. The height is purely diagnostic; queries do not use
// it.
func (t *Tree) Height() int {
	return t.height
}

// Bounds returns the smallest rectangle containing every point in the
// tree. The bounds of an empty tree are EmptyRectangle.
func (t *Tree) Bounds() Rectangle {
	return t.bounds
}

// String returns a summary description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{Bounds:%s,Len:%d,Height:%d}", t.bounds, t.len, t.height)
}

// A ticket is a pending unit of work in a tree traversal: a node to
// visit and the node's depth, from which its splitting axis follows.
type ticket struct {
	n     *node
	depth int
}

// A ticketBag is the explicit work stack used by traversals in place
// of recursion, so that degenerate trees cannot exhaust the goroutine
// stack.
type ticketBag []ticket

func stackPush(tq *ticketBag, t ticket) {
	*tq = append(*tq, t)
}

func stackPop(tq *ticketBag) ticket {
	old := *tq
	n := len(old)
	x := old[n-1]
	*tq = old[0 : n-1]
	return x
}

// Range returns every point in the tree contained in the rectangle r,
// including points on its edges.
//
// At each node the search descends into the left subtree only if
// r.Lower is at or below the node on the splitting axis, and into the
// right subtree only if r.Upper is at or above it, which prunes
// subtrees that cannot intersect r. Results are in pre-order traversal
// order. The returned slice is empty, never nil, when nothing matches.
func (t *Tree) Range(r Rectangle) Points {
	result := make(Points, 0)
	if t.root == nil {
		return result
	}

	q := ticketBag{{n: t.root}}
	for len(q) > 0 {
		tk := stackPop(&q)
		n := tk.n
		if r.Contains(n.location) {
			result = append(result, n.location)
		}
		axis := tk.depth % numAxes
		split := n.location.Coord(axis)
		// Push right before left so the left subtree is visited first.
		if n.right != nil && r.Upper.Coord(axis) >= split {
			stackPush(&q, ticket{n: n.right, depth: tk.depth + 1})
		}
		if n.left != nil && r.Lower.Coord(axis) <= split {
			stackPush(&q, ticket{n: n.left, depth: tk.depth + 1})
		}
	}

	return result
}

// nnState is the progress of a nearest neighbor search frame.
type nnState int

const (
	nnDescend nnState = iota
	nnPrimaryDone
	nnSecondaryDone
)

// An nnFrame is one activation of the branch-and-bound nearest
// neighbor search. The frame stack replaces the call stack of the
// equivalent recursive search while preserving its exact evaluation
// order.
type nnFrame struct {
	n     *node
	depth int
	state nnState
	best  *node
}

// Nearest returns the point in the tree closest to q by Euclidean
// distance. Returns ErrNotFound if the tree is empty.
//
// The search first descends into the subtree on q's side of each
// node's splitting line and keeps the closer of that subtree's best
// candidate and the node itself. It then searches the other subtree
// only if the splitting line is no farther from q than the best
// candidate so far.
//
// When two candidates are exactly the same distance from q, the
// candidate found deeper in the search loses: the node itself beats a
// tied point from its nearer subtree, and the best of the nearer side
// beats a tied point from the farther subtree.
func (t *Tree) Nearest(q Point) (Point, error) {
	if t.root == nil {
		return Point{}, ErrNotFound
	}

	stack := []nnFrame{{n: t.root}}
	var ret *node
	for len(stack) > 0 {
		top := len(stack) - 1
		f := &stack[top]
		if f.n == nil {
			ret = nil
			stack = stack[:top]
			continue
		}

		axis := f.depth % numAxes
		primary, secondary := f.n.right, f.n.left
		if q.Coord(axis) < f.n.location.Coord(axis) {
			primary, secondary = f.n.left, f.n.right
		}

		switch f.state {
		case nnDescend:
			f.state = nnPrimaryDone
			stack = append(stack, nnFrame{n: primary, depth: f.depth + 1})
		case nnPrimaryDone:
			f.best = closer(q, ret, f.n)
			plane := q.Coord(axis) - f.n.location.Coord(axis)
			if q.sqDist(f.best.location) >= plane*plane {
				f.state = nnSecondaryDone
				stack = append(stack, nnFrame{n: secondary, depth: f.depth + 1})
			} else {
				ret = f.best
				stack = stack[:top]
			}
		case nnSecondaryDone:
			ret = closer(q, ret, f.best)
			stack = stack[:top]
		}
	}

	return ret.location, nil
}

// closer returns whichever of a and b is closer to q, treating nil as
// infinitely far away. Ties go to b.
func closer(q Point, a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if q.sqDist(a.location) < q.sqDist(b.location) {
		return a
	}
	return b
}
