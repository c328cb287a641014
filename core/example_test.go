package core_test

import (
	"fmt"

	"github.com/katalvlaran/meshnet/core"
)

// ExampleGraph_AddDual builds a tiny mixed topology and shows how dual links
// differ from one-way links in the mutual-neighbor view.
func ExampleGraph_AddDual() {
	g := core.NewGraph[string, int64]()
	_ = g.AddDual("hub", "relay", 10) // bidirectional pair
	_ = g.AddLink("hub", "sink", 5)   // one-way

	peers, _ := g.Neighbors("hub")
	fmt.Println("mutual peers of hub:", peers)
	fmt.Println("hub→sink exists:", g.HasLink("hub", "sink"))
	fmt.Println("sink→hub exists:", g.HasLink("sink", "hub"))
	// Output:
	// mutual peers of hub: [relay]
	// hub→sink exists: true
	// sink→hub exists: false
}

// ExampleGraph_SetLinkData demonstrates the shared-payload invariant: an
// update is visible from both the outlink and the inlink view.
func ExampleGraph_SetLinkData() {
	g := core.NewGraph[string, string]()
	_ = g.AddLink("a", "b", "old")
	_ = g.SetLinkData("a", "b", "new")

	out, _ := g.Outlinks("a")
	in, _ := g.Inlinks("b")
	fmt.Println(out[0].Data, in[0].Data)
	// Output:
	// new new
}
