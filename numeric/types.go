package numeric

import "errors"

const (
	// Undefined is returned by Factorial and FactorialIter for negative input.
	Undefined int64 = -1

	// MaxFactorialInput is the largest n whose factorial fits in an int64.
	MaxFactorialInput = 20
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")
)
