package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/numeric"
)

func TestDivide(t *testing.T) {
	got, err := numeric.Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = numeric.Divide(10, 0)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}
