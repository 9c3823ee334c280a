// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/config"
	"github.com/katalvlaran/routegraph/loader"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// runCLI runs the command and returns stdout and stderr.
func runCLI(t *testing.T, env func(string) (string, bool), args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, args, env)

	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_DefaultsUseSampleRoutes(t *testing.T) {
	out, _, err := runCLI(t, noEnv)
	require.NoError(t, err)

	assert.Equal(t,
		"Atlanta and Louisville is Connected\n"+
			"Route: [Atlanta, Charlotte, Richmond, Louisville]\n"+
			"Louisville and Atlanta is Connected\n"+
			"Route: [Louisville, Richmond, Charlotte, Atlanta]\n",
		out)
}

func TestRun_NotConnectedExitsCleanly(t *testing.T) {
	out, _, err := runCLI(t, noEnv, "--from", "Atlanta", "--to", "Chicago")
	require.NoError(t, err)

	assert.Equal(t,
		"Atlanta and Chicago is NOT Connected\n"+
			"Chicago and Atlanta is NOT Connected\n",
		out)
}

func TestRun_EnvironmentAndFlagPrecedence(t *testing.T) {
	env := envOf(map[string]string{
		config.EnvSource:      "Chicago",
		config.EnvDestination: "Omaha",
	})

	out, _, err := runCLI(t, env)
	require.NoError(t, err)
	assert.Contains(t, out, "Route: [Chicago, St. Louis, Kansas City, Omaha]\n")

	out, _, err = runCLI(t, env, "--to", "Denver")
	require.NoError(t, err)
	assert.Contains(t, out, "Route: [Chicago, St. Louis, Kansas City, Omaha, Denver]\n")
}

func TestRun_RouteFileWithDelimiter(t *testing.T) {
	path := writeTemp(t, "routes.txt", "Atlanta;Charlotte\nCharlotte;Richmond\n")
	env := envOf(map[string]string{config.EnvRouteFile: path})

	out, _, err := runCLI(t, env, "--delimiter", ";", "--from", "Atlanta", "--to", "Richmond")
	require.NoError(t, err)
	assert.Contains(t, out, "Route: [Atlanta, Charlotte, Richmond]\n")
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeTemp(t, "routefinder.yaml", "source: Dallas\ndestination: San Francisco\n")

	out, _, err := runCLI(t, noEnv, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out,
		"Route: [Dallas, El Paso, Phoenix, San Diego, Los Angeles, San Francisco]\n")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runCLI(t, noEnv, "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, loader.ErrSourceNotFound)

	bad := writeTemp(t, "bad.txt", "Atlanta,Charlotte\nOmaha\n")
	_, _, err = runCLI(t, noEnv, "--file", bad)
	require.ErrorIs(t, err, loader.ErrMalformedRecord)

	_, _, err = runCLI(t, noEnv, "--log-format", "xml")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = runCLI(t, noEnv, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestRun_JSONLogs(t *testing.T) {
	_, logs, err := runCLI(t, noEnv, "--log-format", "json", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, logs, `"msg":"route graph loaded"`)
	assert.Contains(t, logs, `"level":"DEBUG"`)
}

func TestRun_Metrics(t *testing.T) {
	out, _, err := runCLI(t, noEnv, "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "routegraph_connections_total{result=\"added\"} 29")
	assert.Contains(t, out, "routegraph_queries_total{query=\"route\",result=\"found\"} 2")
}

func TestRun_Reachable(t *testing.T) {
	out, _, err := runCLI(t, noEnv, "reachable", "chicago")
	require.NoError(t, err)
	assert.Equal(t, "Reachable from chicago: [Chicago, St. Louis, Indianapolis, Kansas City, Omaha, Denver]\n", out)

	out, _, err = runCLI(t, noEnv, "reachable", "Delhi")
	require.NoError(t, err)
	assert.Equal(t, "Delhi is not a known city\n", out)

	_, _, err = runCLI(t, noEnv, "reachable")
	require.Error(t, err)
}

func TestRun_Components(t *testing.T) {
	path := writeTemp(t, "routes.txt", "Omaha,Chicago\nAtlanta,Miami\nChicago,Denver\n")

	out, _, err := runCLI(t, noEnv, "components", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "1: [Atlanta, Miami]\n2: [Chicago, Denver, Omaha]\n", out)
}
