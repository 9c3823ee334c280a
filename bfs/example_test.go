// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
)

// ExampleShortestPath finds the fewest-hop route between two cities.
// Two routes exist from Atlanta to Pittsburgh; the one through Charlotte is shorter.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"Atlanta", "Charlotte"},
		{"Charlotte", "Richmond"},
		{"Richmond", "Washington"},
		{"Washington", "Baltimore"},
		{"Baltimore", "Philadelphia"},
		{"Philadelphia", "Pittsburgh"},
		{"Pittsburgh", "Charlotte"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	route, err := bfs.ShortestPath(g, "atlanta", "PITTSBURGH")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(route)
	// Output:
	// [Atlanta Charlotte Pittsburgh]
}

// ExampleBFS lists the cities reachable from Chicago, layer by layer.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddEdge("Chicago", "St. Louis")
	_ = g.AddEdge("Chicago", "Indianapolis")
	_ = g.AddEdge("St. Louis", "Kansas City")
	_ = g.AddEdge("Atlanta", "Miami")

	res, err := bfs.BFS(g, "Chicago")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth["Kansas City"])
	// Output:
	// [Chicago St. Louis Indianapolis Kansas City]
	// 2
}
