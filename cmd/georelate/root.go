// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/againczz/geos/converters"
	"github.com/againczz/geos/precision"
	"github.com/againczz/geos/relate"
)

const envPrefix = "GEORELATE"

// option describes one flag that is also readable from the config file and
// the environment.
type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
}

var rootOptions = []option{
	{name: "config", usage: "configuration file (TOML, YAML or JSON)", defaultVal: ""},
	{name: "a", usage: "first geometry, inline or @file", defaultVal: ""},
	{name: "b", usage: "second geometry, inline or @file", defaultVal: ""},
	{name: "format", shorthand: "f", usage: "input format: wkt or geojson", defaultVal: "wkt"},
	{name: "precision", shorthand: "p", usage: "precision model: floating, single or fixed (default: coarser of inputs)", defaultVal: ""},
	{name: "scale", usage: "scale of the fixed precision model", defaultVal: 1.0},
	{name: "pattern", usage: "also report whether the matrix matches this DE-9IM pattern", defaultVal: ""},
	{name: "depth-check", usage: "verify face depths after labelling", defaultVal: true},
	{name: "log-level", usage: "logrus level: panic, fatal, error, warn, info, debug, trace", defaultVal: "warn"},
}

// bindOptions registers opts on set and binds each to cfg.
func bindOptions(cfg *viper.Viper, set *pflag.FlagSet, opts []option) {
	for _, o := range opts {
		switch v := o.defaultVal.(type) {
		case string:
			set.StringP(o.name, o.shorthand, v, o.usage)
		case bool:
			set.BoolP(o.name, o.shorthand, v, o.usage)
		case float64:
			set.Float64P(o.name, o.shorthand, v, o.usage)
		default:
			panic("georelate: unsupported option type")
		}
		if err := cfg.BindPFlag(o.name, set.Lookup(o.name)); err != nil {
			panic(err)
		}
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:           "georelate",
		Short:         "Print the DE-9IM intersection matrix of two geometries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return readConfig(cfg)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRelate(cfg, out, newLogger(cfg, errOut))
		},
	}
	bindOptions(cfg, root.PersistentFlags(), rootOptions)

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check that --a is a well-formed geometry",
		RunE: func(*cobra.Command, []string) error {
			g, err := readGeometry(cfg, "a")
			if err != nil {
				return err
			}
			if err := g.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(out, "valid %s geometry\n", g.Dimension())
			return nil
		},
	}
	root.AddCommand(validate)
	return root
}

// readConfig reads the configuration file, if one was given.
func readConfig(cfg *viper.Viper) error {
	path := cfg.GetString("config")
	if path == "" {
		return nil
	}
	cfg.SetConfigFile(path)
	if err := cfg.ReadInConfig(); err != nil {
		return fmt.Errorf("georelate: config %s: %w", path, err)
	}
	return nil
}

func newLogger(cfg *viper.Viper, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	lvl, err := logrus.ParseLevel(cfg.GetString("log-level"))
	if err != nil {
		log.WithError(err).Warn("georelate: unknown log level, using warn")
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	return log
}

func runRelate(cfg *viper.Viper, out io.Writer, log *logrus.Logger) error {
	a, err := readGeometry(cfg, "a")
	if err != nil {
		return err
	}
	b, err := readGeometry(cfg, "b")
	if err != nil {
		return err
	}

	opts := []relate.Option{
		relate.WithLogger(log),
		relate.WithDepthCheck(cfg.GetBool("depth-check")),
	}
	pm, err := precisionModel(cfg)
	if err != nil {
		return err
	}
	if pm != nil {
		opts = append(opts, relate.WithPrecisionModel(pm))
	}

	c, err := relate.NewComputer(a, b, opts...)
	if err != nil {
		return err
	}
	im, err := c.Compute()
	if err != nil {
		return err
	}
	log.WithFields(c.Stats().Fields()).WithField("precision", c.Precision().String()).Info("georelate: done")

	fmt.Fprintln(out, im)
	if p := cfg.GetString("pattern"); p != "" {
		ok, err := im.Matches(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %t\n", p, ok)
	}
	return nil
}

// readGeometry decodes the geometry in option key. A value starting with
// '@' names a file to read.
func readGeometry(cfg *viper.Viper, key string) (*relate.Geometry, error) {
	src := cfg.GetString(key)
	if src == "" {
		return nil, fmt.Errorf("georelate: --%s is required", key)
	}
	if strings.HasPrefix(src, "@") {
		data, err := os.ReadFile(src[1:])
		if err != nil {
			return nil, fmt.Errorf("georelate: --%s: %w", key, err)
		}
		src = string(data)
	}

	var (
		g   *relate.Geometry
		err error
	)
	switch f := strings.ToLower(cfg.GetString("format")); f {
	case "wkt":
		g, err = converters.ParseWKT(strings.TrimSpace(src))
	case "geojson", "json":
		g, err = converters.ParseGeoJSON([]byte(src))
	default:
		return nil, fmt.Errorf("georelate: unknown format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("georelate: --%s: %w", key, err)
	}
	return g, nil
}

// precisionModel returns the model named by --precision, or nil to let the
// computer choose.
func precisionModel(cfg *viper.Viper) (*precision.Model, error) {
	switch p := strings.ToLower(cfg.GetString("precision")); p {
	case "":
		return nil, nil
	case "floating":
		return precision.NewFloating(), nil
	case "single", "floating-single":
		return precision.NewFloatingSingle(), nil
	case "fixed":
		return precision.NewFixed(cfg.GetFloat64("scale"))
	default:
		return nil, fmt.Errorf("georelate: unknown precision model %q", p)
	}
}
