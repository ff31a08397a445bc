package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/search"
)

// ExampleBinary locates a value in a sorted slice.
func ExampleBinary() {
	sorted := []int{1, 3, 5, 7, 9, 11}

	idx, ok := search.Binary(sorted, 7)
	fmt.Println(idx, ok)

	_, ok = search.Binary(sorted, 4)
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
}

// ExampleFindMissing recovers the absent value of a 1..n permutation.
func ExampleFindMissing() {
	fmt.Println(search.FindMissing([]int{1, 2, 4, 5}))
	// Output:
	// 3
}

// ExampleContainsDuplicate checks a slice for repeated values.
func ExampleContainsDuplicate() {
	fmt.Println(search.ContainsDuplicate([]int{1, 2, 3, 1}))
	fmt.Println(search.ContainsDuplicate([]int{1, 2, 3, 4}))
	// Output:
	// true
	// false
}
