package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/sequence"
)

// ExampleBinarySearch looks up a present and an absent value.
func ExampleBinarySearch() {
	numbers := []int{1, 2, 3, 5, 7, 9, 11, 13}
	for _, target := range []int{7, 6} {
		if idx := sequence.BinarySearch(numbers, target); idx != sequence.NotFound {
			fmt.Printf("Found %d at index %d\n", target, idx)
		} else {
			fmt.Printf("%d not found\n", target)
		}
	}
	// Output:
	// Found 7 at index 4
	// 6 not found
}

// ExampleFibonacci prints the first ten terms and F(10).
func ExampleFibonacci() {
	fmt.Println(sequence.Fibonacci(10))
	fmt.Println(sequence.FibRecursive(10))
	// Output:
	// [0 1 1 2 3 5 8 13 21 34]
	// 55
}

// ExampleMax shows the extremes of a small slice.
func ExampleMax() {
	numbers := []int{3, 7, 2, 9, 1, 5}
	fmt.Println("Maximum:", sequence.Max(numbers))
	fmt.Println("Minimum:", sequence.Min(numbers))
	// Output:
	// Maximum: 9
	// Minimum: 1
}
