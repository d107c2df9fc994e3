package record

import (
	"fmt"
	"io"
	"os"
)

// Record is a name/value pair. The zero value is ready to use and equals
// NewDefault(): empty name and zero value.
type Record struct {
	name  string
	value int
}

// New returns a Record with both fields set.
func New(name string, value int) *Record {
	return &Record{name: name, value: value}
}

// NewDefault returns a Record with an empty name and a zero value.
func NewDefault() *Record {
	return &Record{}
}

// Name returns the last name set.
func (r *Record) Name() string { return r.name }

// SetName replaces the name.
func (r *Record) SetName(name string) { r.name = name }

// Value returns the last value set.
func (r *Record) Value() int { return r.value }

// SetValue replaces the value.
func (r *Record) SetValue(value int) { r.value = value }

// Display prints the record to standard output as
//
//	Name: <name>
//	Value: <value>
func (r *Record) Display() {
	_ = r.DisplayTo(os.Stdout)
}

// DisplayTo writes the same two lines as Display to w.
func (r *Record) DisplayTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Name: %s\n", r.name); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Value: %d\n", r.value)

	return err
}

// String returns Record{name='<name>', value=<value>}.
func (r *Record) String() string {
	return fmt.Sprintf("Record{name='%s', value=%d}", r.name, r.value)
}
