// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdtree provides a two-dimensional k-d tree: a static,
// build-once spatial index answering axis-aligned range queries and
// nearest neighbor queries faster than a brute-force scan.
//
// A Tree is built once with New and is never modified afterward, so
// any number of goroutines may query the same Tree concurrently.
package kdtree
