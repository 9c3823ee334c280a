// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routegraph/config"
	"github.com/katalvlaran/routegraph/route"
)

// cliFlags holds raw flag values. Only flags the user set override config.
type cliFlags struct {
	configPath string
	metrics    bool
	values     config.Config
}

// app is the fully wired command state.
type app struct {
	cfg config.Config
	log *slog.Logger
	mgr *route.Manager
	reg *prometheus.Registry
}

func newRootCmd(lookupEnv func(string) (string, bool), logOut io.Writer) *cobra.Command {
	var f cliFlags

	root := &cobra.Command{
		Use:           "routefinder",
		Short:         "Report whether two cities are connected and by which route",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, &f, lookupEnv, logOut)
			if err != nil {
				return err
			}
			if err := a.report(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}

			return a.dumpMetrics(cmd.OutOrStdout(), f.metrics)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&f.values.Source, "from", "", "source city (env "+config.EnvSource+")")
	pf.StringVar(&f.values.Destination, "to", "", "destination city (env "+config.EnvDestination+")")
	pf.StringVar(&f.values.RouteFile, "file", "", "route list file (env "+config.EnvRouteFile+")")
	pf.StringVar(&f.values.Delimiter, "delimiter", "", "record delimiter of the route file (env "+config.EnvDelimiter+")")
	pf.StringVar(&f.values.LogLevel, "log-level", "", "debug, info, warn or error (env "+config.EnvLogLevel+")")
	pf.StringVar(&f.values.LogFormat, "log-format", "", "text or json (env "+config.EnvLogFormat+")")
	pf.BoolVar(&f.metrics, "metrics", false, "print collected metrics after the queries")

	root.AddCommand(newReachableCmd(&f, lookupEnv, logOut))
	root.AddCommand(newComponentsCmd(&f, lookupEnv, logOut))

	return root
}

func newReachableCmd(f *cliFlags, lookupEnv func(string) (string, bool), logOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "reachable <city>",
		Short: "List every city reachable from a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, f, lookupEnv, logOut)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			cities := a.mgr.Reachable(args[0])
			if len(cities) == 0 {
				_, _ = fmt.Fprintf(out, "%s is not a known city\n", args[0])
			} else {
				_, _ = fmt.Fprintf(out, "Reachable from %s: [%s]\n", args[0], strings.Join(cities, ", "))
			}

			return a.dumpMetrics(out, f.metrics)
		},
	}
}

func newComponentsCmd(f *cliFlags, lookupEnv func(string) (string, bool), logOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the groups of connected cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, f, lookupEnv, logOut)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, comp := range a.mgr.Components() {
				_, _ = fmt.Fprintf(out, "%d: [%s]\n", i+1, strings.Join(comp, ", "))
			}

			return a.dumpMetrics(out, f.metrics)
		},
	}
}

// setup resolves configuration, builds the logger and loads the route graph.
func setup(cmd *cobra.Command, f *cliFlags, lookupEnv func(string) (string, bool), logOut io.Writer) (*app, error) {
	cfg, err := resolveConfig(cmd, f, lookupEnv)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg, logOut)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	opts := []route.Option{
		route.WithLogger(logger),
		route.WithMetrics(route.NewMetrics(reg)),
	}

	var mgr *route.Manager
	if cfg.RouteFile != "" {
		mgr, err = route.NewFromFile(cfg.RouteFile, append(opts, route.WithDelimiter(cfg.Delimiter))...)
	} else {
		logger.Debug("no route file configured, using sample routes")
		mgr, err = route.NewFromList(sampleRoutes, opts...)
	}
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: logger, mgr: mgr, reg: reg}, nil
}

// resolveConfig layers defaults, the config file, the environment and set flags.
func resolveConfig(cmd *cobra.Command, f *cliFlags, lookupEnv func(string) (string, bool)) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv(lookupEnv)

	flags := cmd.Flags()
	for name, pair := range map[string][2]*string{
		"from":       {&cfg.Source, &f.values.Source},
		"to":         {&cfg.Destination, &f.values.Destination},
		"file":       {&cfg.RouteFile, &f.values.RouteFile},
		"delimiter":  {&cfg.Delimiter, &f.values.Delimiter},
		"log-level":  {&cfg.LogLevel, &f.values.LogLevel},
		"log-format": {&cfg.LogFormat, &f.values.LogFormat},
	} {
		if flags.Changed(name) {
			*pair[0] = *pair[1]
		}
	}

	return cfg, cfg.Validate()
}

// newLogger builds the slog handler selected by cfg.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

// answer is the outcome of one directional query.
type answer struct {
	from, to  string
	connected bool
	route     []string
}

// report queries both directions concurrently and prints them source first.
func (a *app) report(ctx context.Context, out io.Writer) error {
	pairs := [2][2]string{
		{a.cfg.Source, a.cfg.Destination},
		{a.cfg.Destination, a.cfg.Source},
	}
	var answers [2]answer

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			answers[i] = answer{
				from:      p[0],
				to:        p[1],
				connected: a.mgr.Connected(p[0], p[1]),
				route:     a.mgr.Route(p[0], p[1]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, ans := range answers {
		if !ans.connected {
			_, _ = fmt.Fprintf(out, "%s and %s is NOT Connected\n", ans.from, ans.to)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s and %s is Connected\n", ans.from, ans.to)
		_, _ = fmt.Fprintf(out, "Route: [%s]\n", strings.Join(ans.route, ", "))
	}
	a.log.Debug("queries answered", "source", a.cfg.Source, "destination", a.cfg.Destination)

	return nil
}

// dumpMetrics writes the registry in the Prometheus text format when enabled.
func (a *app) dumpMetrics(out io.Writer, enabled bool) error {
	if !enabled {
		return nil
	}
	families, err := a.reg.Gather()
	if err != nil {
		return fmt.Errorf("routefinder: gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("routefinder: write metrics: %w", err)
		}
	}

	return nil
}
