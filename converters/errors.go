// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrNilGeometry is returned for a nil source geometry.
	ErrNilGeometry = errors.New("converters: nil geometry")

	// ErrUnsupportedGeometry is returned for geometry types that have no
	// single-kind relate.Geometry equivalent, such as collections.
	ErrUnsupportedGeometry = errors.New("converters: unsupported geometry type")
)
