package sequence

// Max returns the largest element of seq.
// An empty seq yields 0; use MaxOf to tell that apart from a real zero.
//
// Complexity: Time O(n), Memory O(1).
func Max(seq []int) int {
	if len(seq) == 0 {
		return 0
	}

	best := seq[0]
	for i := 1; i < len(seq); i++ {
		if seq[i] > best {
			best = seq[i]
		}
	}

	return best
}

// Min returns the smallest element of seq, or 0 for an empty seq.
func Min(seq []int) int {
	if len(seq) == 0 {
		return 0
	}

	best := seq[0]
	for i := 1; i < len(seq); i++ {
		if seq[i] < best {
			best = seq[i]
		}
	}

	return best
}

// MaxOf is Max with an explicit ErrEmptySequence for empty input.
func MaxOf(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}

	return Max(seq), nil
}

// MinOf is Min with an explicit ErrEmptySequence for empty input.
func MinOf(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}

	return Min(seq), nil
}
