package cyclic_test

import (
	"fmt"

	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
)

// ExampleDistance demonstrates the shortest-arc metric on a 6-vertex cycle.
//
//	    0
//	  5   1
//	  4   2
//	    3
//
// Vertices 1 and 5 are two steps apart going through 0, four steps the
// other way — the cyclic distance is the shorter arc.
func ExampleDistance() {
	fmt.Println(cyclic.Distance(1, 5, 6))
	fmt.Println(cyclic.Distance(0, 3, 6))
	// Output:
	// 2
	// 3
}

// ExampleObserved computes the frequency partition realized by a
// Hamiltonian path on the 5-cycle.
func ExampleObserved() {
	// Path 0→2→4→1→3: every consecutive pair is at cyclic distance 2.
	fp, err := cyclic.Observed([]int{0, 2, 4, 1, 3}, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(fp)
	// Output:
	// (0,4)
}

// ExampleFromTuple shows the tuple ↔ map round-trip of a frequency partition.
func ExampleFromTuple() {
	fp := cyclic.FromTuple([]int{2, 0, 1}) // two hops of length 1, one of length 3
	fmt.Println(fp.Edges(), fp.Multiset())
	// Output:
	// 3 [1 1 3]
}
