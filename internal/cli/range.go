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

func (c *CLI) rangeCommand() *cobra.Command {
	var (
		path         string
		lower, upper pointValue
	)

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the points inside a rectangle",
		Long: `Builds a k-d tree from a point file and prints every point inside the
rectangle from --lower to --upper, edges included, one point per line in
ascending X, then Y order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			tree, err := buildTree(cmd, path)
			if err != nil {
				return err
			}

			r := kdtree.Rectangle{Lower: kdtree.Point(lower), Upper: kdtree.Point(upper)}
			if r.Lower.X > r.Upper.X || r.Lower.Y > r.Upper.Y {
				logger.Warn("Lower corner is above or right of upper corner, no points can match", "rectangle", r)
			}

			p := newProgress(logger)
			result := tree.Range(r)
			p.done("Range query", "rectangle", r, "matches", len(result))

			sort.Sort(result)
			out := cmd.OutOrStdout()
			for i := range result {
				if _, err = fmt.Fprintln(out, formatPoint(result[i])); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "points", "p", "", "TOML file containing the point set")
	cmd.Flags().Var(&lower, "lower", "lower-left corner of the query rectangle")
	cmd.Flags().Var(&upper, "upper", "upper-right corner of the query rectangle")
	_ = cmd.MarkFlagRequired("points")
	_ = cmd.MarkFlagRequired("lower")
	_ = cmd.MarkFlagRequired("upper")

	return cmd
}

// buildTree loads the point file at path and builds a tree from it.
func buildTree(cmd *cobra.Command, path string) (*kdtree.Tree, error) {
	logger := loggerFromContext(cmd.Context())

	points, err := loadPoints(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded points", "file", path, "count", len(points))

	p := newProgress(logger)
	tree := kdtree.New(points)
	p.done("Built tree", "points", tree.Len(), "height", tree.Height())

	return tree, nil
}
