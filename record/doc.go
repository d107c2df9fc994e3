// Package record provides Record, a named integer value with explicit
// accessors, a two-line Display and a canonical String form:
//
//	r := record.New("answer", 42)
//	r.SetValue(43)
//	fmt.Println(r) // Record{name='answer', value=43}
//
// A Record is a plain value owned by whoever created it; it carries no
// locks and is not meant to be shared between goroutines while mutated.
package record
