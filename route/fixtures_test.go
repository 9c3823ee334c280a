// SPDX-License-Identifier: MIT

package route_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/routegraph/route"
	"github.com/stretchr/testify/require"
)

// usRoutes is the sample network used across route tests. It has several
// components: the east coast, the Chicago/Midwest group and the southwest.
var usRoutes = []string{
	"Atlanta,New Orleans",
	"New Orleans, Oklahoma City",
	"Atlanta,Miami",
	"Atlanta,Charlotte",
	"Charlotte,Richmond",
	"Richmond,Louisville",
	"Chicago,St. Louis",
	"Chicago,Indianapolis",
	"St. Louis,Kansas City",
	"Kansas City,Omaha",
	"Omaha,Denver",
	"Richmond,Washington",
	"Washington,Baltimore",
	"Baltimore,Philadelphia",
	"Philadelphia,Pittsburgh",
	"Philadelphia,Newark",
	"Newark,New York",
	"New York,Boston",
	"Boston,Montreal",
	"Pittsburgh,Cleveland",
	"Pittsburgh,New York",
	"Pittsburgh,Charlotte",
	"Cleveland,Detroit",
	"Dallas,El Paso",
	"El Paso, Phoenix",
	"El Paso, Albuquerque",
	"Phoenix,San Diego",
	"San Diego, Los Angeles",
	"Los Angeles,San Francisco",
}

// quietLogger discards all diagnostics.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newUSManager loads usRoutes into a fresh Manager.
func newUSManager(t *testing.T, opts ...route.Option) *route.Manager {
	t.Helper()
	m, err := route.NewFromList(usRoutes, append([]route.Option{route.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)

	return m
}

// newChainManager holds only Atlanta–Charlotte–Richmond–Louisville.
func newChainManager() *route.Manager {
	m := route.New(route.WithLogger(quietLogger()))
	m.AddConnection("Atlanta", "Charlotte")
	m.AddConnection("Charlotte", "Richmond")
	m.AddConnection("Richmond", "Louisville")

	return m
}

// reversed returns a reversed copy of s.
func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
