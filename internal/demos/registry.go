// Package demos holds the runnable drivers behind each catalogue entry.
// A driver calls into the lvlearn packages and prints the same lines the
// classic template program would print; it has no other contract.
package demos

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

var (
	// ErrUnknownDemo indicates Run was given a key with no registered driver.
	ErrUnknownDemo = errors.New("demos: unknown demo")

	// ErrDuplicateDemo indicates Register was called twice for one key.
	ErrDuplicateDemo = errors.New("demos: demo already registered")
)

// Demo writes its output to w.
type Demo func(w io.Writer) error

// Registry maps demo keys to drivers.
type Registry struct {
	demos map[string]Demo
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds d under key.
func (r *Registry) Register(key string, d Demo) error {
	if _, exists := r.demos[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDemo, key)
	}
	r.demos[key] = d

	return nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.demos[key]
	return ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.demos))
	for k := range r.demos {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Run executes the driver registered under key.
func (r *Registry) Run(key string, w io.Writer) error {
	d, ok := r.demos[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDemo, key)
	}
	if err := d(w); err != nil {
		return fmt.Errorf("demo %q: %w", key, err)
	}

	return nil
}

// Default returns a registry holding every built-in driver.
func Default() *Registry {
	r := NewRegistry()
	for key, d := range builtins {
		r.demos[key] = d
	}

	return r
}

var builtins = map[string]Demo{
	"hello":                hello,
	"variables":            variables,
	"if-else":              ifElse,
	"for-loop":             forLoop,
	"multiplication-table": multiplicationTable,
	"array":                array,
	"dynamic-array":        dynamicArray,
	"function-params":      functionParams,
	"array-max":            arrayMax,
	"array-min":            arrayMin,
	"factorial":            factorial,
	"fibonacci":            fibonacci,
	"gcd":                  gcd,
	"prime":                prime,
	"search-linear":        searchLinear,
	"search-binary":        searchBinary,
	"sort-bubble":          sortBubble,
	"class":                class,
	"file-io":              fileIO,
	"try-catch":            tryCatch,
	"leap-year":            leapYear,
	"digit-count":          digitCount,
	"powers-of-two":        powersOfTwo,
}
