// SPDX-License-Identifier: MIT

package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/routegraph/loader"
)

// ExampleNewReader pulls edges one at a time from a line source.
func ExampleNewReader() {
	src := strings.NewReader("Atlanta,Charlotte\n\nCharlotte, Richmond\n")
	it := loader.NewReader(src)
	for it.Next() {
		e := it.Edge()
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	fmt.Println("err:", it.Err())
	// Output:
	// Atlanta -> Charlotte
	// Charlotte -> Richmond
	// err: <nil>
}

// ExampleNewList shows the fail-fast behavior on a malformed record.
func ExampleNewList() {
	_, err := loader.Collect(loader.NewList([]string{"Atlanta,Miami", "Omaha"}))
	fmt.Println(err)
	// Output:
	// loader: malformed record: "Omaha": want 2 fields, got 1
}
