package demos

import (
	"io"

	"github.com/katalvlaran/lvlearn/numeric"
	"github.com/katalvlaran/lvlearn/sequence"
)

var (
	sampleNumbers = []int{3, 7, 2, 9, 1, 5}
	sortedNumbers = []int{1, 2, 3, 5, 7, 9, 11, 13}
)

func arrayMax(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Maximum: %d\n", sequence.Max(sampleNumbers))

	return p.err
}

func arrayMin(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Minimum: %d\n", sequence.Min(sampleNumbers))

	return p.err
}

func factorial(w io.Writer) error {
	p := &printer{w: w}
	n := 5
	p.printf("%d! = %d\n", n, numeric.Factorial(n))
	p.printf("%d! = %d (iterative)\n", n, numeric.FactorialIter(n))

	return p.err
}

func fibonacci(w io.Writer) error {
	p := &printer{w: w}
	n := 10
	p.printf("First %d Fibonacci: %s\n", n, joinInts(sequence.Fibonacci(n)))
	p.printf("Fib(%d): %d\n", n, sequence.FibRecursive(n))

	return p.err
}

func gcd(w io.Writer) error {
	p := &printer{w: w}
	a, b := 48, 18
	p.printf("GCD(%d, %d) = %d\n", a, b, numeric.GCD(a, b))
	p.printf("GCD (recursive) = %d\n", numeric.GCDRecursive(a, b))

	return p.err
}

func prime(w io.Writer) error {
	p := &printer{w: w}
	var primes []int
	for n := 1; n <= 20; n++ {
		if numeric.IsPrime(n) {
			primes = append(primes, n)
		}
	}
	p.printf("Prime numbers from 1 to 20: %s\n", joinInts(primes))

	return p.err
}

func reportSearch(p *printer, target, index int) {
	if index != sequence.NotFound {
		p.printf("Found %d at index %d\n", target, index)
	} else {
		p.printf("%d not found\n", target)
	}
}

func searchLinear(w io.Writer) error {
	p := &printer{w: w}
	for _, target := range []int{9, 4} {
		reportSearch(p, target, sequence.LinearSearch(sampleNumbers, target))
	}

	return p.err
}

func searchBinary(w io.Writer) error {
	p := &printer{w: w}
	for _, target := range []int{7, 6} {
		index, err := sequence.BinarySearchChecked(sortedNumbers, target)
		if err != nil {
			return err
		}
		reportSearch(p, target, index)
	}

	return p.err
}

func sortBubble(w io.Writer) error {
	p := &printer{w: w}
	numbers := []int{64, 34, 25, 12, 22, 11, 90}
	p.printf("Original: %s\n", joinInts(numbers))
	p.printf("Sorted: %s\n", joinInts(sequence.BubbleSort(numbers)))

	return p.err
}
