// SPDX-License-Identifier: MIT

package relate

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/againczz/geos/precision"
)

// Option customizes a Computer.
type Option func(*config)

type config struct {
	log        logrus.FieldLogger
	pm         *precision.Model
	depthCheck bool
}

func defaultConfig() config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return config{log: l, depthCheck: true}
}

// WithLogger routes phase diagnostics (Debug level) to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("relate: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

// WithPrecisionModel overrides the model both inputs are snapped to. By
// default the coarser of the two inputs' models is used. Panics on nil.
func WithPrecisionModel(pm *precision.Model) Option {
	if pm == nil {
		panic("relate: WithPrecisionModel(nil)")
	}
	return func(c *config) { c.pm = pm }
}

// WithDepthCheck enables or disables depth propagation and the face-ring
// depth check. Enabled by default.
func WithDepthCheck(on bool) Option {
	return func(c *config) { c.depthCheck = on }
}
