// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"github.com/katalvlaran/routegraph/core"
)

// Components returns the connected components of g. Each component is
// sorted, and components are ordered by their first member.
//
// Components may run while edges are being added. An edge that lands during
// the call may or may not be reflected, but every endpoint appears in at most
// one component.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool)
	comps := make([][]string, 0)
	for _, name := range g.Endpoints() {
		if _, key := core.Normalize(name); seen[key] {
			continue
		}
		res, err := DFS(g, name)
		if err != nil {
			return nil, err
		}

		comp := make([]string, 0, len(res.Order))
		for _, member := range res.Order {
			_, key := core.Normalize(member)
			if seen[key] {
				continue
			}
			seen[key] = true
			comp = append(comp, member)
		}
		if len(comp) == 0 {
			continue
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
