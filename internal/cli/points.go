// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogama/kdtree/kdtree"
)

// pointFile is the TOML layout of a point set file:
//
//	[[points]]
//	x = 7.0
//	y = 2.0
type pointFile struct {
	Points []struct {
		X float64 `toml:"x"`
		Y float64 `toml:"y"`
	} `toml:"points"`
}

// loadPoints reads a point set file. Unknown keys are rejected so that
// typos such as "z" or "point" don't silently produce an empty set.
func loadPoints(path string) ([]kdtree.Point, error) {
	var f pointFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, wrapErr("failed to load points from %s", err, path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmtErr("unknown key %q in %s", undecoded[0].String(), path)
	}

	points := make([]kdtree.Point, len(f.Points))
	for i, p := range f.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return nil, fmtErr("point %d in %s has a NaN coordinate", i, path)
		}
		points[i] = kdtree.Point{X: p.X, Y: p.Y}
	}
	return points, nil
}

// parsePoint parses a point given on the command line as "X,Y".
func parsePoint(s string) (kdtree.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return kdtree.Point{}, fmtErr("invalid point %q: want X,Y", s)
	}
	var coords [2]float64
	for i := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || math.IsNaN(v) {
			return kdtree.Point{}, fmtErr("invalid point %q: bad coordinate %q", s, parts[i])
		}
		coords[i] = v
	}
	return kdtree.Point{X: coords[0], Y: coords[1]}, nil
}

func formatPoint(p kdtree.Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
}

// pointValue is a command-line flag holding a point. It implements the
// flag value interface used by cobra.
type pointValue kdtree.Point

func (v *pointValue) String() string {
	return formatPoint(kdtree.Point(*v))
}

func (v *pointValue) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	*v = pointValue(p)
	return nil
}

func (v *pointValue) Type() string {
	return "x,y"
}
