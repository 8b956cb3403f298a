// SPDX-License-Identifier: MIT

package relate_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/matrix"
	"github.com/againczz/geos/precision"
	"github.com/againczz/geos/relate"
)

func pt(x, y float64) core.Coordinate { return core.Coordinate{X: x, Y: y} }

// box returns the counter-clockwise rectangle [x0,x1]x[y0,y1].
func box(x0, y0, x1, y1 float64) relate.Polygon {
	return relate.Polygon{Shell: []core.Coordinate{
		pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1), pt(x0, y0),
	}}
}

func line(pts ...core.Coordinate) []core.Coordinate { return pts }

// holed is the square [0,10]x[0,10] with the hole [4,6]x[4,6].
var holed = relate.Polygon{
	Shell: box(0, 0, 10, 10).Shell,
	Holes: [][]core.Coordinate{{pt(4, 4), pt(4, 6), pt(6, 6), pt(6, 4), pt(4, 4)}},
}

func TestRelate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		a, b *relate.Geometry
		want string
	}{
		{"disjoint squares", relate.NewPolygons(box(0, 0, 1, 1)), relate.NewPolygons(box(5, 5, 6, 6)), "FF2FF1212"},
		{"equal squares", relate.NewPolygons(box(0, 0, 2, 2)), relate.NewPolygons(box(0, 0, 2, 2)), "2FFF1FFF2"},
		{"overlapping squares", relate.NewPolygons(box(0, 0, 2, 2)), relate.NewPolygons(box(1, 1, 3, 3)), "212101212"},
		{"containing square", relate.NewPolygons(box(0, 0, 4, 4)), relate.NewPolygons(box(1, 1, 2, 2)), "212FF1FF2"},
		{"line crossing square", relate.NewLines(line(pt(1, 1), pt(3, 1))), relate.NewPolygons(box(0, 0, 2, 2)), "1010F0212"},
		{"crossing lines", relate.NewLines(line(pt(0, 0), pt(2, 2))), relate.NewLines(line(pt(0, 2), pt(2, 0))), "0F1FF0102"},
		{"point in square", relate.NewPoints(pt(1, 1)), relate.NewPolygons(box(0, 0, 2, 2)), "0FFFFF212"},
		{"equal points", relate.NewPoints(pt(1, 1)), relate.NewPoints(pt(1, 1)), "0FFFFFFF2"},
		{"distinct points", relate.NewPoints(pt(0, 0)), relate.NewPoints(pt(1, 1)), "FF0FFF0F2"},
		{"edge-adjacent squares", relate.NewPolygons(box(0, 0, 1, 1)), relate.NewPolygons(box(1, 0, 2, 1)), "FF2F11212"},
		{"corner-adjacent squares", relate.NewPolygons(box(0, 0, 1, 1)), relate.NewPolygons(box(1, 1, 2, 2)), "FF2F01212"},
		{"inner square on outer boundary", relate.NewPolygons(box(0, 0, 4, 4)), relate.NewPolygons(box(0, 1, 1, 2)), "212F11FF2"},
		{"square inside hole", relate.NewPolygons(holed), relate.NewPolygons(box(4.5, 4.5, 5.5, 5.5)), "FF2FF1212"},
		{"square around hole", relate.NewPolygons(holed), relate.NewPolygons(box(3, 3, 7, 7)), "2121F12F2"},
		{"line on boundary", relate.NewLines(line(pt(0.5, 0), pt(1.5, 0))), relate.NewPolygons(box(0, 0, 2, 2)), "F1FF0F212"},
		{"overlapping collinear lines", relate.NewLines(line(pt(0, 0), pt(2, 0))), relate.NewLines(line(pt(1, 0), pt(3, 0))), "1010F0102"},
		{"point on closed line", relate.NewPoints(pt(1, 0)), relate.NewLines(line(pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 0))), "0FFFFF1F2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im, err := relate.Relate(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, im.String())
		})
	}
}

func TestRelate_TransposeSymmetry(t *testing.T) {
	a := relate.NewLines(line(pt(1, 1), pt(3, 1)))
	b := relate.NewPolygons(box(0, 0, 2, 2))

	ab, err := relate.Relate(a, b)
	require.NoError(t, err)
	ba, err := relate.Relate(b, a)
	require.NoError(t, err)
	assert.True(t, ab.Transpose().Equal(ba), "%s vs %s", ab, ba)
}

func TestRelate_CornerCells(t *testing.T) {
	im, err := relate.Relate(relate.NewPolygons(box(0, 0, 1, 1)), relate.NewPolygons(box(5, 5, 6, 6)))
	require.NoError(t, err)
	assert.Equal(t, matrix.False, im.Get(core.Interior, core.Interior))
	assert.Equal(t, matrix.Area, im.Get(core.Exterior, core.Exterior))

	im, err = relate.Relate(relate.NewPolygons(box(0, 0, 2, 2)), relate.NewPolygons(box(0, 0, 2, 2)))
	require.NoError(t, err)
	assert.Equal(t, matrix.Area, im.Get(core.Interior, core.Interior))
	assert.Equal(t, matrix.Line, im.Get(core.Boundary, core.Boundary))
	ok, err := im.Matches("T*F**FFF*")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRelate_BowtieConflict(t *testing.T) {
	bowtie := relate.NewPolygons(relate.Polygon{Shell: []core.Coordinate{
		pt(0, 0), pt(2, 2), pt(2, 0), pt(0, 2), pt(0, 0),
	}})
	// the line has a vertex on the self-crossing, which makes it a node
	l := relate.NewLines(line(pt(0, 1), pt(1, 1), pt(2, 1)))

	im, err := relate.Relate(bowtie, l)
	require.Error(t, err)
	assert.Nil(t, im)
	assert.ErrorIs(t, err, core.ErrTopologyInconsistency)

	var te *core.TopologyError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, pt(1, 1), te.Pt)
	assert.Contains(t, te.Msg, "side location conflict")
}

func TestRelate_MalformedInput(t *testing.T) {
	good := relate.NewPolygons(box(0, 0, 1, 1))
	tests := []struct {
		name string
		g    *relate.Geometry
	}{
		{"open ring", relate.NewPolygons(relate.Polygon{Shell: line(pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1))})},
		{"short ring", relate.NewPolygons(relate.Polygon{Shell: line(pt(0, 0), pt(1, 0), pt(0, 0))})},
		{"one point line", relate.NewLines(line(pt(0, 0), pt(0, 0)))},
		{"mixed kinds", &relate.Geometry{Points: line(pt(0, 0)), Lines: [][]core.Coordinate{line(pt(0, 0), pt(1, 1))}}},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := relate.Relate(tt.g, good)
			assert.ErrorIs(t, err, core.ErrMalformedInput)
		})
	}
}

func TestRelate_PrecisionSnapping(t *testing.T) {
	// The line ends a hair short of the square at floating precision; at
	// scale 10 it snaps onto the boundary.
	a := relate.NewLines(line(pt(-1, 0.5), pt(-0.001, 0.5)))
	b := relate.NewPolygons(box(0, 0, 1, 1))

	im, err := relate.Relate(a, b)
	require.NoError(t, err)
	assert.Equal(t, matrix.False, im.Get(core.Boundary, core.Boundary))

	im, err = relate.Relate(a, b, relate.WithPrecisionModel(precision.MustFixed(10)))
	require.NoError(t, err)
	assert.Equal(t, matrix.Point, im.Get(core.Boundary, core.Boundary))

	b.Precision = precision.MustFixed(10)
	c, err := relate.NewComputer(a, b)
	require.NoError(t, err)
	assert.Equal(t, precision.Fixed, c.Precision().Type())
}

func TestComputer_StatsAndLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := relate.NewComputer(
		relate.NewPolygons(box(0, 0, 1, 1)),
		relate.NewPolygons(box(1, 0, 2, 1)),
		relate.WithLogger(logger),
	)
	require.NoError(t, err)
	_, err = c.Compute()
	require.NoError(t, err)

	s := c.Stats()
	assert.False(t, s.ProperIntersections)
	assert.True(t, s.DepthChecked)
	// ring starts (0,0) and (1,0) plus (1,1); A splits in three, B in two
	assert.Equal(t, 3, s.Nodes)
	assert.Equal(t, 5, s.Edges)
	assert.Equal(t, 10, s.DirectedEdges)
	assert.Zero(t, s.IsolatedEdges)
	assert.NotZero(t, s.Rings)
	require.NotNil(t, c.Graph())
	assert.Len(t, c.Graph().DirectedEdges(), s.DirectedEdges)

	require.NotEmpty(t, hook.AllEntries())
	last := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, last.Level)
	assert.Equal(t, 3, last.Data["nodes"])
	assert.Equal(t, s.LineEdges, last.Data["line_edges"])
	assert.Equal(t, s.InteriorAreaEdges, last.Data["interior_area_edges"])
	assert.Equal(t, false, last.Data["proper_intersections"])
	assert.Equal(t, true, last.Data["depth_checked"])

	_, err = c.Compute()
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestComputer_ProperCrossingsAreNotNodes(t *testing.T) {
	c, err := relate.NewComputer(
		relate.NewPolygons(box(0, 0, 2, 2)),
		relate.NewPolygons(box(1, 1, 3, 3)),
	)
	require.NoError(t, err)
	im, err := c.Compute()
	require.NoError(t, err)
	assert.Equal(t, "212101212", im.String())

	s := c.Stats()
	assert.True(t, s.ProperIntersections)
	assert.False(t, s.DepthChecked)
	// only the two ring starts; each ring stays one edge
	assert.Equal(t, 2, s.Nodes)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, 4, s.DirectedEdges)
	assert.Zero(t, s.Rings)
}

// TestRelate_FixedPrecisionCrossings relates two rings that are simple on the
// unit grid and cross where no grid point lies.
func TestRelate_FixedPrecisionCrossings(t *testing.T) {
	a := relate.NewPolygons(relate.Polygon{Shell: line(
		pt(4, 6), pt(3, 6), pt(1, 7), pt(0, 6), pt(-1, 4), pt(0, 3),
		pt(1, 2), pt(2, 2), pt(4, 3), pt(4, 4), pt(4, 6),
	)})
	b := relate.NewPolygons(relate.Polygon{Shell: line(pt(7, 12), pt(0, 8), pt(6, 3), pt(7, 12))})

	for _, pm := range []*precision.Model{precision.MustFixed(1), precision.MustFixed(10), precision.NewFloating()} {
		t.Run(pm.String(), func(t *testing.T) {
			c, err := relate.NewComputer(a, b, relate.WithPrecisionModel(pm))
			require.NoError(t, err)
			im, err := c.Compute()
			require.NoError(t, err)
			assert.Equal(t, "212101212", im.String())
			assert.True(t, c.Stats().ProperIntersections)
		})
	}

	ba, err := relate.Relate(b, a, relate.WithPrecisionModel(precision.MustFixed(1)))
	require.NoError(t, err)
	assert.Equal(t, "212101212", ba.String())
}

func TestRelate_SnapOverflow(t *testing.T) {
	a := relate.NewLines(line(pt(0, 0), pt(1e300, 1)))
	b := relate.NewLines(line(pt(0, 1), pt(1e300, 0)))

	_, err := relate.Relate(a, b, relate.WithPrecisionModel(precision.NewFloatingSingle()))
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	_, err = relate.Relate(a, b, relate.WithPrecisionModel(precision.MustFixed(1e10)))
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	_, err = relate.Relate(relate.NewPoints(pt(1e300, 0)), b, relate.WithPrecisionModel(precision.NewFloatingSingle()))
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	sq := relate.NewPolygons(relate.Polygon{Shell: line(pt(0, 0), pt(1e300, 0), pt(1e300, 1), pt(0, 0))})
	_, err = relate.Relate(sq, b, relate.WithPrecisionModel(precision.NewFloatingSingle()))
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	// the same inputs are fine at full precision
	_, err = relate.Relate(a, b)
	assert.NoError(t, err)
}

func TestRelate_WithoutDepthCheck(t *testing.T) {
	c, err := relate.NewComputer(
		relate.NewPolygons(box(0, 0, 1, 1)),
		relate.NewPolygons(box(1, 0, 2, 1)),
		relate.WithDepthCheck(false),
	)
	require.NoError(t, err)
	im, err := c.Compute()
	require.NoError(t, err)
	assert.Equal(t, "FF2F11212", im.String())
	assert.False(t, c.Stats().DepthChecked)
	assert.Zero(t, c.Stats().Rings)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { relate.WithLogger(nil) })
	assert.Panics(t, func() { relate.WithPrecisionModel(nil) })
}

func TestGeometry_Accessors(t *testing.T) {
	l := relate.NewLines(line(pt(0, 0), pt(1, 0)), line(pt(0, 0), pt(1, 1), pt(0, 1), pt(0, 0)))
	assert.Equal(t, matrix.Line, l.Dimension())
	assert.Equal(t, matrix.Point, l.BoundaryDimension())

	ring := relate.NewLines(line(pt(0, 0), pt(1, 1), pt(0, 1), pt(0, 0)))
	assert.Equal(t, matrix.False, ring.BoundaryDimension())

	p := relate.NewPolygons(box(0, 0, 1, 1))
	assert.Equal(t, matrix.Area, p.Dimension())
	assert.Equal(t, matrix.Line, p.BoundaryDimension())
	assert.NoError(t, p.Validate())

	empty := &relate.Geometry{}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, matrix.False, empty.Dimension())
}
