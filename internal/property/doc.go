// Package property defines the named configuration property marker.
//
// A Property is an immutable value that qualifies a configuration value by
// name. It can be built at runtime with New or read from the `property`
// struct tag with FromTag; both forms are equal and share the same hash
// code, so either one can be used as the key of a binding.
//
// HashCode follows the single-member marker contract
// (127 * hash("value")) ^ hash(name), where hash is the 32-bit polynomial
// string hash over UTF-16 code units. This keeps the hash interchangeable
// with other implementations of the same marker type.
package property
