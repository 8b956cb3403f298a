// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
)

func TestLabel_Constructors(t *testing.T) {
	l := graph.NewGeomAreaLabel(0, core.Boundary, core.Exterior, core.Interior)
	assert.True(t, l.IsAreaOf(0))
	assert.True(t, l.IsAreaOf(1))
	assert.True(t, l.IsNull(1))
	assert.Equal(t, 1, l.GeometryCount())
	assert.Equal(t, core.Interior, l.Location(0, core.Right))
	assert.Equal(t, "A:ebi B:---", l.String())

	ll := graph.NewGeomLineLabel(1, core.Interior)
	assert.True(t, ll.IsLine(0))
	assert.Equal(t, core.Interior, ll.On(1))
	assert.Equal(t, core.None, ll.Location(1, core.Left), "line form has no sides")
}

func TestLabel_Flip(t *testing.T) {
	l := graph.NewAreaLabel(core.Boundary, core.Exterior, core.Interior)
	l.Flip()
	assert.Equal(t, core.Interior, l.Location(0, core.Left))
	assert.Equal(t, core.Exterior, l.Location(1, core.Right))

	ll := graph.NewLineLabel(core.Interior)
	ll.Flip()
	assert.Equal(t, core.Interior, ll.On(0))
}

// TestLabel_MixedForms checks that each input keeps its own form: giving
// input 1 side locations leaves input 0 a line.
func TestLabel_MixedForms(t *testing.T) {
	l := graph.NewGeomLineLabel(0, core.Interior)
	l.SetLocation(1, core.On, core.Boundary)
	l.SetLocation(1, core.Left, core.Interior)
	l.SetLocation(1, core.Right, core.Exterior)

	assert.True(t, l.IsLine(0))
	assert.True(t, l.IsAreaOf(1))
	assert.True(t, l.IsArea())
	assert.Equal(t, core.Interior, l.On(0))
	assert.Equal(t, core.Boundary, l.On(1))
	assert.Equal(t, 2, l.GeometryCount())

	a := graph.NewGeomAreaLabel(0, core.Boundary, core.None, core.Interior)
	a.SetAllLocationsIfNull(0, core.Exterior)
	assert.Equal(t, core.Boundary, a.On(0), "known location is kept")
	assert.Equal(t, core.Exterior, a.Location(0, core.Left), "null side is filled")
	assert.Equal(t, core.Interior, a.Location(0, core.Right))
	assert.Equal(t, 1, a.GeometryCount())
}

func TestLabel_SetAll(t *testing.T) {
	l := graph.NewGeomAreaLabel(0, core.Boundary, core.None, core.None)
	assert.True(t, l.IsAnyNull(0))
	l.SetAllLocationsIfNull(0, core.Exterior)
	assert.Equal(t, core.Boundary, l.On(0))
	assert.False(t, l.IsAnyNull(0))

	l.SetAllLocations(1, core.Interior)
	assert.True(t, l.AllPositionsEqual(1, core.Interior))

	l.SetLocation(0, core.Left, core.Interior)
	assert.Equal(t, core.Interior, l.Location(0, core.Left))

	l.ToLine(0)
	assert.True(t, l.IsLine(0))
	assert.Equal(t, core.Boundary, l.On(0))
}

func TestTopologyLocation_SetExpands(t *testing.T) {
	tl := graph.NewLineLocation(core.Interior)
	tl.Set(core.Left, core.Exterior)
	assert.True(t, tl.IsArea())
	assert.Equal(t, core.None, tl.Get(core.Right))
	assert.Equal(t, "ei-", tl.String())
}
