package sequence

// LinearSearch returns the first index i with seq[i] == target,
// scanning from index 0 upward, or NotFound.
//
// Complexity: Time O(n), Memory O(1).
func LinearSearch(seq []int, target int) int {
	for i, x := range seq {
		if x == target {
			return i // earliest match wins
		}
	}

	return NotFound
}

// BinarySearch returns an index of target in seq, or NotFound.
//
// Precondition: seq is sorted non-decreasing. The result is meaningless
// otherwise; see BinarySearchChecked. When target occurs more than once
// any of its positions may be returned.
//
// Algorithm:
//  1. left, right = 0, len(seq)-1 (inclusive bounds).
//  2. While left <= right:
//     mid = left + (right-left)/2
//     seq[mid] == target → return mid
//     seq[mid] <  target → left = mid+1
//     seq[mid] >  target → right = mid-1
//  3. Return NotFound.
//
// Complexity: Time O(log n), Memory O(1).
func BinarySearch(seq []int, target int) int {
	left, right := 0, len(seq)-1
	for left <= right {
		mid := left + (right-left)/2 // avoids left+right overflow
		switch {
		case seq[mid] == target:
			return mid
		case seq[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound
}

// IsNonDecreasing reports whether every element of seq is >= its predecessor.
// Empty and single-element slices are trivially ordered.
func IsNonDecreasing(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return false
		}
	}

	return true
}

// BinarySearchChecked verifies the ordering precondition before searching.
// It returns ErrNotSorted when seq is not non-decreasing.
//
// Complexity: Time O(n) for the check.
func BinarySearchChecked(seq []int, target int) (int, error) {
	if !IsNonDecreasing(seq) {
		return NotFound, ErrNotSorted
	}

	return BinarySearch(seq, target), nil
}
