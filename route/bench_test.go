// SPDX-License-Identifier: MIT

package route_test

import (
	"testing"

	"github.com/katalvlaran/routegraph/builder"
	"github.com/katalvlaran/routegraph/loader"
	"github.com/katalvlaran/routegraph/route"
)

func newGridManager(b *testing.B, m int) *route.Manager {
	b.Helper()
	edges, err := builder.Build(nil, builder.Grid(m, m))
	if err != nil {
		b.Fatal(err)
	}
	mgr, err := route.NewFromList(builder.Records(edges, loader.DefaultDelimiter), route.WithLogger(quietLogger()))
	if err != nil {
		b.Fatal(err)
	}

	return mgr
}

// BenchmarkManager_Route measures a corner-to-corner route on a grid.
func BenchmarkManager_Route(b *testing.B) {
	const M = 40
	m := newGridManager(b, M)
	from, to := builder.DefaultIDFn(0), builder.DefaultIDFn(M*M-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Route(from, to)
	}
}

// BenchmarkManager_ConnectedParallel measures concurrent reads.
func BenchmarkManager_ConnectedParallel(b *testing.B) {
	const M = 30
	m := newGridManager(b, M)
	from, to := builder.DefaultIDFn(0), builder.DefaultIDFn(M*M-1)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = m.Connected(from, to)
		}
	})
}
