// SPDX-License-Identifier: MIT

package graph

import (
	"strings"

	"github.com/againczz/geos/core"
)

// TopologyLocation holds the locations of one graph element relative to one
// input. Line form uses On only; area form also uses Left and Right.
type TopologyLocation struct {
	loc  [3]core.Location
	area bool
}

// NewLineLocation returns a line-form location.
func NewLineLocation(on core.Location) TopologyLocation {
	return TopologyLocation{loc: [3]core.Location{on, core.None, core.None}}
}

// NewAreaLocation returns an area-form location.
func NewAreaLocation(on, left, right core.Location) TopologyLocation {
	return TopologyLocation{loc: [3]core.Location{on, left, right}, area: true}
}

// Get returns the location at pos. Side positions of a line form are None.
func (tl TopologyLocation) Get(pos core.Position) core.Location {
	if pos < core.On || pos > core.Right {
		return core.None
	}
	return tl.loc[pos]
}

// Set stores loc at pos. Setting a side on a line form expands it to area form.
func (tl *TopologyLocation) Set(pos core.Position, loc core.Location) {
	if pos != core.On && !tl.area {
		tl.area = true
		tl.loc[core.Left], tl.loc[core.Right] = core.None, core.None
	}
	tl.loc[pos] = loc
}

// IsArea reports the area form.
func (tl TopologyLocation) IsArea() bool { return tl.area }

// IsLine reports the line form.
func (tl TopologyLocation) IsLine() bool { return !tl.area }

func (tl TopologyLocation) size() int {
	if tl.area {
		return 3
	}
	return 1
}

// IsNull reports whether every used position is None.
func (tl TopologyLocation) IsNull() bool {
	for i := 0; i < tl.size(); i++ {
		if tl.loc[i] != core.None {
			return false
		}
	}
	return true
}

// IsAnyNull reports whether some used position is None.
func (tl TopologyLocation) IsAnyNull() bool {
	for i := 0; i < tl.size(); i++ {
		if tl.loc[i] == core.None {
			return true
		}
	}
	return false
}

// AllPositionsEqual reports whether every used position equals loc.
func (tl TopologyLocation) AllPositionsEqual(loc core.Location) bool {
	for i := 0; i < tl.size(); i++ {
		if tl.loc[i] != loc {
			return false
		}
	}
	return true
}

// Flip swaps Left and Right.
func (tl *TopologyLocation) Flip() {
	if tl.area {
		tl.loc[core.Left], tl.loc[core.Right] = tl.loc[core.Right], tl.loc[core.Left]
	}
}

// SetAll stores loc in every used position.
func (tl *TopologyLocation) SetAll(loc core.Location) {
	for i := 0; i < tl.size(); i++ {
		tl.loc[i] = loc
	}
}

// SetAllIfNull stores loc in every used position that is None.
func (tl *TopologyLocation) SetAllIfNull(loc core.Location) {
	for i := 0; i < tl.size(); i++ {
		if tl.loc[i] == core.None {
			tl.loc[i] = loc
		}
	}
}

// ToLine drops the side positions.
func (tl *TopologyLocation) ToLine() {
	tl.area = false
	tl.loc[core.Left], tl.loc[core.Right] = core.None, core.None
}

func (tl TopologyLocation) String() string {
	var b strings.Builder
	if tl.area {
		b.WriteByte(tl.loc[core.Left].Symbol())
	}
	b.WriteByte(tl.loc[core.On].Symbol())
	if tl.area {
		b.WriteByte(tl.loc[core.Right].Symbol())
	}
	return b.String()
}

// Label records the topological relationship of a graph element to each of
// the two inputs. A Label is a value; assignment copies it.
type Label struct {
	elt [2]TopologyLocation
}

// NewLineLabel returns a line label with On=on for both inputs.
func NewLineLabel(on core.Location) Label {
	return Label{elt: [2]TopologyLocation{NewLineLocation(on), NewLineLocation(on)}}
}

// NewAreaLabel returns an area label with the same locations for both inputs.
func NewAreaLabel(on, left, right core.Location) Label {
	tl := NewAreaLocation(on, left, right)
	return Label{elt: [2]TopologyLocation{tl, tl}}
}

// NewGeomLineLabel returns a line label for input geomIndex; the other input
// is None.
func NewGeomLineLabel(geomIndex int, on core.Location) Label {
	l := NewLineLabel(core.None)
	l.elt[geomIndex] = NewLineLocation(on)
	return l
}

// NewGeomAreaLabel returns an area label for input geomIndex; the other
// input is an all-None area location.
func NewGeomAreaLabel(geomIndex int, on, left, right core.Location) Label {
	l := NewAreaLabel(core.None, core.None, core.None)
	l.elt[geomIndex] = NewAreaLocation(on, left, right)
	return l
}

// Location returns the location of input geomIndex at pos.
func (l Label) Location(geomIndex int, pos core.Position) core.Location {
	return l.elt[geomIndex].Get(pos)
}

// On is Location(geomIndex, core.On).
func (l Label) On(geomIndex int) core.Location { return l.elt[geomIndex].Get(core.On) }

// TopologyLocation returns the location record of input geomIndex.
func (l Label) TopologyLocation(geomIndex int) TopologyLocation { return l.elt[geomIndex] }

// SetLocation stores loc for input geomIndex at pos.
func (l *Label) SetLocation(geomIndex int, pos core.Position, loc core.Location) {
	l.elt[geomIndex].Set(pos, loc)
}

// SetAllLocations stores loc in every used position of input geomIndex.
func (l *Label) SetAllLocations(geomIndex int, loc core.Location) {
	l.elt[geomIndex].SetAll(loc)
}

// SetAllLocationsIfNull fills None positions of input geomIndex with loc.
func (l *Label) SetAllLocationsIfNull(geomIndex int, loc core.Location) {
	l.elt[geomIndex].SetAllIfNull(loc)
}

// Flip swaps Left and Right for both inputs.
func (l *Label) Flip() {
	l.elt[0].Flip()
	l.elt[1].Flip()
}

// GeometryCount is the number of inputs with a non-null location.
func (l Label) GeometryCount() int {
	n := 0
	for i := range l.elt {
		if !l.elt[i].IsNull() {
			n++
		}
	}
	return n
}

// IsNull reports whether input geomIndex has no known location.
func (l Label) IsNull(geomIndex int) bool { return l.elt[geomIndex].IsNull() }

// IsAnyNull reports whether input geomIndex has some unknown position.
func (l Label) IsAnyNull(geomIndex int) bool { return l.elt[geomIndex].IsAnyNull() }

// IsArea reports whether either input uses area form.
func (l Label) IsArea() bool { return l.elt[0].IsArea() || l.elt[1].IsArea() }

// IsAreaOf reports whether input geomIndex uses area form.
func (l Label) IsAreaOf(geomIndex int) bool { return l.elt[geomIndex].IsArea() }

// IsLine reports whether input geomIndex uses line form.
func (l Label) IsLine(geomIndex int) bool { return l.elt[geomIndex].IsLine() }

// AllPositionsEqual reports whether every used position of geomIndex is loc.
func (l Label) AllPositionsEqual(geomIndex int, loc core.Location) bool {
	return l.elt[geomIndex].AllPositionsEqual(loc)
}

// ToLine converts input geomIndex to line form.
func (l *Label) ToLine(geomIndex int) { l.elt[geomIndex].ToLine() }

func (l Label) String() string {
	return "A:" + l.elt[0].String() + " B:" + l.elt[1].String()
}
