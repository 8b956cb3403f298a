// SPDX-License-Identifier: MIT

// Command georelate prints the DE-9IM intersection matrix of two geometries
// given as WKT or GeoJSON.
//
//	georelate --a 'LINESTRING (1 1, 3 1)' --b 'POLYGON ((0 0, 2 0, 2 2, 0 2, 0 0))'
//	1010F0212
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
