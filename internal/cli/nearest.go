// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogama/kdtree/kdtree"
)

func (c *CLI) nearestCommand() *cobra.Command {
	var (
		path  string
		query pointValue
	)

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Print the point nearest to a query point",
		Long: `Builds a k-d tree from a point file and prints the point closest to
--query by Euclidean distance. Fails if the point file is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(cmd, path)
			if err != nil {
				return err
			}

			q := kdtree.Point(query)
			p := newProgress(loggerFromContext(cmd.Context()))
			nearest, err := tree.Nearest(q)
			if err != nil {
				return wrapErr("nearest neighbor of %s", err, q)
			}
			p.done("Nearest neighbor query", "query", q, "nearest", nearest, "distance", q.Distance(nearest))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatPoint(nearest))
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "points", "p", "", "TOML file containing the point set")
	cmd.Flags().Var(&query, "query", "query point")
	_ = cmd.MarkFlagRequired("points")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}
