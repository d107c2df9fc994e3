package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/sequence"
)

func TestMaxMin_Known(t *testing.T) {
	numbers := []int{3, 7, 2, 9, 1, 5}
	assert.Equal(t, 9, sequence.Max(numbers))
	assert.Equal(t, 1, sequence.Min(numbers))

	negatives := []int{-4, -11, -2}
	assert.Equal(t, -2, sequence.Max(negatives))
	assert.Equal(t, -11, sequence.Min(negatives))

	assert.Equal(t, 42, sequence.Max([]int{42}))
	assert.Equal(t, 42, sequence.Min([]int{42}))
}

// TestMaxMin_EmptyReturnsZero pins the historical empty-input behavior.
func TestMaxMin_EmptyReturnsZero(t *testing.T) {
	assert.Equal(t, 0, sequence.Max(nil))
	assert.Equal(t, 0, sequence.Min([]int{}))
}

func TestMaxOfMinOf(t *testing.T) {
	_, err := sequence.MaxOf(nil)
	assert.ErrorIs(t, err, sequence.ErrEmptySequence)
	_, err = sequence.MinOf([]int{})
	assert.ErrorIs(t, err, sequence.ErrEmptySequence)

	got, err := sequence.MaxOf([]int{0, -1})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	got, err = sequence.MinOf([]int{0, -1})
	require.NoError(t, err)
	assert.Equal(t, -1, got)
}

func TestMaxMin_DoNotMutate(t *testing.T) {
	in := []int{5, 1, 4}
	_ = sequence.Max(in)
	_ = sequence.Min(in)
	assert.Equal(t, []int{5, 1, 4}, in)
}
