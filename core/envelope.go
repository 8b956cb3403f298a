// SPDX-License-Identifier: MIT

package core

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// EnvelopeOf returns the bounding rectangle of pts. The result is empty
// (r2.Rect.IsEmpty) when pts is empty.
func EnvelopeOf(pts []Coordinate) r2.Rect {
	env := r2.EmptyRect()
	for _, p := range pts {
		env = env.AddPoint(p.R2())
	}
	return env
}

// SegmentEnvelope is the bounding rectangle of segment p0-p1.
func SegmentEnvelope(p0, p1 Coordinate) r2.Rect {
	return r2.RectFromPoints(p0.R2(), p1.R2())
}

// XInterval is the closed X extent of segment p0-p1.
func XInterval(p0, p1 Coordinate) r1.Interval {
	return r1.IntervalFromPoint(p0.X).AddPoint(p1.X)
}

// EnvelopesIntersect reports whether a and b share at least one point
// (boundaries included). Empty rectangles never intersect.
func EnvelopesIntersect(a, b r2.Rect) bool {
	return a.Intersects(b)
}

// EnvelopeContains reports whether p lies in env, boundary included.
func EnvelopeContains(env r2.Rect, p Coordinate) bool {
	return env.ContainsPoint(p.R2())
}
