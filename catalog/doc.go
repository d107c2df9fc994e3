// Package catalog describes the template collection: an ordered list of
// topics (basics, flow control, …) each holding ordered entries that
// name a runnable demo.
//
// The default catalogue ships embedded in the binary as catalog.yaml and
// is decoded with gopkg.in/yaml.v3:
//
//	cat, err := catalog.Load()
//	entry, err := cat.Lookup("gcd")
//
// Errors:
//
//   - ErrInvalidCatalog  decoding or validation failed
//   - ErrEntryNotFound   Lookup on an unknown entry ID
//   - ErrTopicNotFound   Topic on an unknown topic name
package catalog
