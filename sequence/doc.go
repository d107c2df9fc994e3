// Package sequence implements the read-only routines over integer slices
// that introductory algorithm courses teach first: extremes, linear and
// binary search, bubble sort and the Fibonacci sequence.
//
// What:
//
//   - Max / Min: largest and smallest element; 0 for an empty slice.
//     MaxOf / MinOf report ErrEmptySequence instead.
//   - LinearSearch: first index holding target, or NotFound.
//   - BinarySearch: index of target in a non-decreasing slice, or NotFound.
//     BinarySearchChecked verifies the ordering first.
//   - BubbleSort: sorted copy by adjacent swaps.
//   - Fibonacci: the first n terms F0=0, F1=1, …; FibRecursive and
//     FibIter answer the single term F(n).
//
// No routine mutates its input.
//
// Complexity:
//
//   - Max, Min, LinearSearch, IsNonDecreasing: Time O(n), Memory O(1)
//   - BinarySearch:                             Time O(log n), Memory O(1)
//   - BubbleSort:                               Time O(n²), Memory O(n)
//   - Fibonacci, FibIter:                       Time O(n)
//   - FibRecursive:                             Time O(φⁿ), Memory O(n)
//
// Errors:
//
//   - ErrEmptySequence  MaxOf / MinOf on an empty slice
//   - ErrNotSorted      BinarySearchChecked on an unsorted slice
package sequence
