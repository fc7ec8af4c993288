// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

// ScanRange returns every point in points contained in r, in input
// order, by testing each point in turn. It gives the same set of
// points as Tree.Range on a tree built from points, and is mainly
// useful as a baseline for checking and timing the tree.
func ScanRange(points []Point, r Rectangle) Points {
	result := make(Points, 0)
	for i := range points {
		if r.Contains(points[i]) {
			result = append(result, points[i])
		}
	}
	return result
}

// ScanNearest returns the point in points closest to q by testing
// each point in turn. If several points are equally close, the first
// one wins. Returns ErrNotFound if points is empty.
//
// ScanNearest is the brute-force counterpart of Tree.Nearest. When the
// closest point is unique, the two always agree.
func ScanNearest(points []Point, q Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrNotFound
	}
	best := 0
	bestDist := q.sqDist(points[0])
	for i := 1; i < len(points); i++ {
		if d := q.sqDist(points[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return points[best], nil
}
