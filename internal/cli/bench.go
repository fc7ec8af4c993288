// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gogama/kdtree/kdtree"
)

const defaultBenchSize = 1000

func (c *CLI) benchCommand() *cobra.Command {
	var (
		size  int
		lower = pointValue{X: 500, Y: 500}
		upper = pointValue{X: 504, Y: 504}
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare a tree range query against a brute-force scan",
		Long: `Builds the square grid of integer points from (0,0) to (size-1,size-1),
runs the same range query with a brute-force scan and with a k-d tree,
and prints both query times. Fails if the two disagree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmtErr("grid size must be at least 1, got %d", size)
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			r := kdtree.Rectangle{Lower: kdtree.Point(lower), Upper: kdtree.Point(upper)}

			points := grid(size)
			logger.Debug("Generated grid", "size", size, "points", len(points))

			p := newProgress(logger)
			naive := kdtree.ScanRange(points, r)
			naiveTime := p.done("Naive scan", "matches", len(naive))

			if err := ctx.Err(); err != nil {
				return err
			}

			p = newProgress(logger)
			tree := kdtree.New(points)
			p.done("Built tree", "points", tree.Len(), "height", tree.Height())

			if err := ctx.Err(); err != nil {
				return err
			}

			p = newProgress(logger)
			indexed := tree.Range(r)
			treeTime := p.done("Tree range query", "matches", len(indexed))

			if !samePoints(naive, indexed) {
				return fmtErr("tree found %d points in %s but naive scan found %d", len(indexed), r, len(naive))
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "matches\t%d\nnaive\t%s\ntree\t%s\n", len(naive), naiveTime, treeTime)
			return err
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", defaultBenchSize, "grid side length")
	cmd.Flags().Var(&lower, "lower", "lower-left corner of the query rectangle")
	cmd.Flags().Var(&upper, "upper", "upper-right corner of the query rectangle")

	return cmd
}

// grid returns the size×size integer lattice starting at the origin.
func grid(size int) []kdtree.Point {
	points := make([]kdtree.Point, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			points = append(points, kdtree.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// samePoints reports whether a and b hold the same multiset of points.
// Both slices are sorted in place.
func samePoints(a, b kdtree.Points) bool {
	if len(a) != len(b) {
		return false
	}
	sort.Sort(a)
	sort.Sort(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
