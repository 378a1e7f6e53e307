package quicksort_test

import (
	"fmt"

	"github.com/katalvlaran/classics/quicksort"
)

// ExampleSort sorts the same numbers in both directions.
func ExampleSort() {
	a := []int{42, 7, 19, 3, 88, 7, 61, 25, 0, 14, 99, 56}
	quicksort.Sort(a)
	fmt.Println(a)

	quicksort.Sort(a, quicksort.WithDescending())
	fmt.Println(a)
	// Output:
	// [0 3 7 7 14 19 25 42 56 61 88 99]
	// [99 88 61 56 42 25 19 14 7 7 3 0]
}
