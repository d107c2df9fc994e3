package sequence

// BubbleSort returns a copy of seq sorted in non-decreasing order.
// The input slice is left untouched.
//
// Each pass bubbles the largest remaining element to the end of the
// unsorted prefix; a pass without swaps ends the sort early.
//
// Complexity: Time O(n²) worst case, O(n) on sorted input; Memory O(n).
func BubbleSort(seq []int) []int {
	out := make([]int, len(seq))
	copy(out, seq)

	n := len(out)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out
}
