package demos

import "io"

// isLeapYear: divisible by 400, or by 4 but not by 100.
func isLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

func leapYear(w io.Writer) error {
	p := &printer{w: w}
	for _, year := range []int{1900, 2000, 2023, 2024} {
		if isLeapYear(year) {
			p.printf("%d is a leap year\n", year)
		} else {
			p.printf("%d is not a leap year\n", year)
		}
	}

	return p.err
}

// countDigits returns the number of decimal digits of a non-negative n; 0 has one.
func countDigits(n int) int {
	if n == 0 {
		return 1
	}
	count := 0
	for ; n > 0; n /= 10 {
		count++
	}

	return count
}

func digitCount(w io.Writer) error {
	p := &printer{w: w}
	for _, n := range []int{0, 7, 12345} {
		p.printf("The number %d has %d digits\n", n, countDigits(n))
	}

	return p.err
}

func powersOfTwo(w io.Writer) error {
	p := &printer{w: w}
	p.println("Powers of 2:")
	power := 1
	for i := 0; i <= 10; i++ {
		p.printf("2^%d = %d\n", i, power)
		power *= 2
	}

	return p.err
}
