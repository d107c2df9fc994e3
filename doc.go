// Package lvlearn is a small, runnable catalogue of the programs every
// introductory course walks through — from "hello" to binary search.
//
// 🚀 What is lvlearn?
//
//	A pure-Go collection of classic teaching routines with the same
//	contracts the textbook templates use:
//		• numeric:  factorial, GCD (Euclid), primality, sieve, safe divide
//		• sequence: max/min, linear & binary search, bubble sort, Fibonacci
//		• record:   a named value with getters, setters, Display and String
//		• catalog:  the template collection, grouped by topic (YAML)
//
// ✨ Why lvlearn?
//
//   - Two formulations (recursive & iterative) for factorial, GCD and
//     Fibonacci, so each can be checked against the other
//   - Sentinel results (-1, 0) kept exactly as learners meet them, with
//     error-returning variants where Go would rather say so
//   - Every routine documented with its algorithm and complexity
//
// Layout:
//
//	numeric/          — integer routines
//	sequence/         — read-only routines over []int
//	record/           — the OOP value record
//	catalog/          — embedded template catalogue
//	cmd/lvlearn/      — CLI: list, show and run templates
//
// Quick example:
//
//	idx := sequence.BinarySearch([]int{1, 2, 3, 5, 7, 9, 11, 13}, 7) // 4
//	g := numeric.GCD(48, 18)                                         // 6
//
//	go install github.com/katalvlaran/lvlearn/cmd/lvlearn@latest
package lvlearn
