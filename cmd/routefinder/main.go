// SPDX-License-Identifier: MIT

// Command routefinder loads a route list and reports whether two cities are
// connected, printing the route in both directions.
//
// Usage:
//
//	routefinder [--from CITY] [--to CITY] [--file PATH] [--config PATH]
//	routefinder reachable CITY
//
// Settings come from built-in defaults, then an optional YAML file, then the
// environment (CITY1, CITY2, CITY_ROUTE_FILE, ROUTE_DELIMITER, LOG_LEVEL,
// LOG_FORMAT), then flags. Without a route file the built-in sample list is used.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	// Minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.LookupEnv); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line in args. Query outcomes never produce an
// error; only configuration and load failures do.
func run(out, errOut io.Writer, args []string, lookupEnv func(string) (string, bool)) error {
	root := newRootCmd(lookupEnv, errOut)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	return root.Execute()
}
