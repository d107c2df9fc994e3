package record_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/record"
)

// ExampleRecord walks through construction, mutation and both renderings.
func ExampleRecord() {
	r := record.New("widget", 42)
	r.Display()

	r.SetName("gadget")
	r.SetValue(7)
	fmt.Println(r)
	// Output:
	// Name: widget
	// Value: 42
	// Record{name='gadget', value=7}
}
