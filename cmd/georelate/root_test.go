// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/againczz/geos/core"
)

const (
	lineWKT   = "LINESTRING (1 1, 3 1)"
	squareWKT = "POLYGON ((0 0, 2 0, 2 2, 0 2, 0 0))"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_WKT(t *testing.T) {
	out, err := run(t, "--a", lineWKT, "--b", squareWKT, "--pattern", "T*T******")
	require.NoError(t, err)
	assert.Equal(t, "1010F0212\nT*T******: true\n", out)
}

func TestRoot_GeoJSONFromFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(a, []byte(`{"type":"Point","coordinates":[1,1]}`), 0o600))

	out, err := run(t, "--format", "geojson", "--a", "@"+a,
		"--b", `{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}`)
	require.NoError(t, err)
	assert.Equal(t, "0FFFFF212\n", out)
}

func TestRoot_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "georelate.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("a: \"LINESTRING (-1 0.5, -0.001 0.5)\"\nprecision: fixed\nscale: 10\n"), 0o600))
	t.Setenv("GEORELATE_B", "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))")

	out, err := run(t, "--config", conf)
	require.NoError(t, err)
	// snapped at scale 10 the line ends on the square's edge
	assert.Equal(t, "FF1F00212\n", out)
}

func TestRoot_Errors(t *testing.T) {
	_, err := run(t, "--b", squareWKT)
	assert.ErrorContains(t, err, "--a is required")

	_, err = run(t, "--a", lineWKT, "--b", squareWKT, "--format", "kml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "--a", lineWKT, "--b", squareWKT, "--precision", "fixed", "--scale", "0")
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	bowtie := "POLYGON ((0 0, 2 2, 2 0, 0 2, 0 0))"
	_, err = run(t, "--a", bowtie, "--b", "LINESTRING (0 1, 1 1, 2 1)")
	assert.ErrorIs(t, err, core.ErrTopologyInconsistency)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "--a", squareWKT)
	require.NoError(t, err)
	assert.Equal(t, "valid 2 geometry\n", out)

	_, err = run(t, "validate", "--a", "LINESTRING (1 1, 1 1)")
	assert.ErrorIs(t, err, core.ErrMalformedInput)
}
