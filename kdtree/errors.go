// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by nearest neighbor searches over an empty
// point set.
var ErrNotFound = textErr("no points in tree")

const packageName = "kdtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
