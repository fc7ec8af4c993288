// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math"
	"strconv"
	"strings"
)

// Axis numbers accepted by Point.Coord. The splitting axis of a tree
// node at depth d is d % numAxes.
const (
	AxisX = 0
	AxisY = 1

	numAxes = 2
)

// A Point is a location in the plane.
//
// Points are plain values: two points are equal if their coordinates
// are equal, and Less gives a total lexicographic order on points with
// non-NaN coordinates.
type Point struct {
	X float64
	Y float64
}

// Coord returns the point's coordinate on the given axis. Panics if
// axis is neither AxisX nor AxisY.
func (p Point) Coord(axis int) float64 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		fmtPanic("invalid axis %d", axis)
		return 0
	}
}

// Compare returns -1 if p sorts before q, +1 if p sorts after q, and 0
// if the two points are equal. Points are ordered by X, then by Y.
func (p Point) Compare(q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts lexicographically before q.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.sqDist(q))
}

// sqDist returns the square of the Euclidean distance between p and
// q. Searches compare squared distances, which order the same way as
// true distances without the cost of a square root.
func (p Point) sqDist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// String returns the point formatted as "(x,y)".
func (p Point) String() string {
	var b strings.Builder
	p.format(&b)
	return b.String()
}

func (p Point) format(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	b.WriteByte(')')
}

// Points is a slice of Point values which implements sort.Interface.
// The sort.Sort function will sort Points in ascending lexicographic
// order.
type Points []Point

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (ps Points) Len() int {
	return len(ps)
}

// Less orders points lexicographically by X, then Y. It implements the
// corresponding method of sort.Interface.
func (ps Points) Less(i, j int) bool {
	return ps[i].Less(ps[j])
}

// Swap swaps two elements of the slice. It implements the
// corresponding method of sort.Interface.
func (ps Points) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

// A Rectangle is an axis-aligned rectangle given by its lower-left and
// upper-right corners.
//
// Rectangle assumes, but does not check, that Lower.X <= Upper.X and
// Lower.Y <= Upper.Y. A rectangle violating this contains no points.
type Rectangle struct {
	Lower Point
	Upper Point
}

// EmptyRectangle is the rectangle containing no points. Expanding it
// by a point gives the degenerate rectangle around that point, which
// makes it the right starting value when computing bounds. The zero
// Rectangle is not empty: it contains the origin.
var EmptyRectangle = Rectangle{
	Lower: Point{X: math.Inf(1), Y: math.Inf(1)},
	Upper: Point{X: math.Inf(-1), Y: math.Inf(-1)},
}

// Contains reports whether p lies inside the rectangle. Points on the
// rectangle's edges are inside.
func (r Rectangle) Contains(p Point) bool {
	return r.Lower.X <= p.X && p.X <= r.Upper.X &&
		r.Lower.Y <= p.Y && p.Y <= r.Upper.Y
}

// Expand grows the rectangle, if necessary, to contain p.
func (r *Rectangle) Expand(p Point) {
	if p.X < r.Lower.X {
		r.Lower.X = p.X
	}
	if p.Y < r.Lower.Y {
		r.Lower.Y = p.Y
	}
	if p.X > r.Upper.X {
		r.Upper.X = p.X
	}
	if p.Y > r.Upper.Y {
		r.Upper.Y = p.Y
	}
}

// String returns the rectangle formatted as "[(x,y),(x,y)]".
func (r Rectangle) String() string {
	var b strings.Builder
	b.WriteByte('[')
	r.Lower.format(&b)
	b.WriteByte(',')
	r.Upper.format(&b)
	b.WriteByte(']')
	return b.String()
}
