package demos

import (
	"io"
	"strconv"
	"strings"
)

const learnerName = "learner"

func hello(w io.Writer) error {
	p := &printer{w: w}
	p.println("Welcome to the Go program!")
	p.printf("Hello, %s!\n", learnerName)

	return p.err
}

func variables(w io.Writer) error {
	p := &printer{w: w}
	age := 25
	height := 1.75
	name := "Alice"
	student := true
	p.printf("Age: %d\n", age)
	p.printf("Height: %.2f\n", height)
	p.printf("Name: %s\n", name)
	p.printf("Student: %t\n", student)

	return p.err
}

func ifElse(w io.Writer) error {
	p := &printer{w: w}
	for _, number := range []int{-7, 0, 42, 150} {
		p.printf("Number: %d\n", number)
		switch {
		case number > 0:
			p.println("The number is positive")
		case number < 0:
			p.println("The number is negative")
		default:
			p.println("The number is zero")
		}
		if number%2 == 0 {
			p.println("The number is even")
		} else {
			p.println("The number is odd")
		}
		if number >= 0 {
			if number <= 100 {
				p.println("Number is between 0 and 100")
			} else {
				p.println("Number is greater than 100")
			}
		}
	}

	return p.err
}

func forLoop(w io.Writer) error {
	p := &printer{w: w}
	p.println("Counting from 1 to 10:")
	for i := 1; i <= 10; i++ {
		p.printf("%d ", i)
	}
	p.println()

	numbers := []int{5, 10, 15, 20, 25}
	p.println("\nArray elements:")
	for i := 0; i < len(numbers); i++ {
		p.printf("numbers[%d] = %d\n", i, numbers[i])
	}

	p.println("\nUsing range:")
	for _, num := range numbers {
		p.printf("%d ", num)
	}
	p.println()

	sum := 0
	for i := 1; i <= 100; i++ {
		sum += i
	}
	p.printf("\nSum of 1 to 100: %d\n", sum)

	return p.err
}

func multiplicationTable(w io.Writer) error {
	p := &printer{w: w}
	p.println("Multiplication table (1-5):")
	for i := 1; i <= 5; i++ {
		for j := 1; j <= 5; j++ {
			p.printf("%4d", i*j)
		}
		p.println()
	}

	return p.err
}

func array(w io.Writer) error {
	p := &printer{w: w}
	numbers := [5]int{1, 2, 3, 4, 5}
	size := len(numbers)
	p.printf("First: %d\n", numbers[0])
	p.printf("Last: %d\n", numbers[size-1])

	numbers[2] = 10

	p.printf("Array: %s\n", joinInts(numbers[:]))
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	p.printf("Sum: %d\n", sum)

	return p.err
}

func dynamicArray(w io.Writer) error {
	p := &printer{w: w}
	numbers := []int{1, 2, 3, 4, 5}
	numbers = append(numbers, 6)
	numbers = append([]int{0}, numbers...) // insert at front
	numbers = numbers[:len(numbers)-1]     // drop last

	p.printf("First: %d\n", numbers[0])
	p.printf("Last: %d\n", numbers[len(numbers)-1])
	p.printf("Size: %d\n", len(numbers))
	p.printf("Slice: %s\n", joinInts(numbers))

	return p.err
}

// greet returns "<greeting>, <name>!", defaulting greeting to "Hello".
func greet(name string, greeting ...string) string {
	g := "Hello"
	if len(greeting) > 0 {
		g = greeting[0]
	}

	return g + ", " + name + "!"
}

func functionParams(w io.Writer) error {
	p := &printer{w: w}
	p.println(greet("Alice"))
	p.println(greet("Bob", "Hi"))

	return p.err
}

func joinInts(s []int) string {
	var b strings.Builder
	for i, n := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}
