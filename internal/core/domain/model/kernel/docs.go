// Package kernel provides the shared domain primitives of the order scheduling service.
//
// The package includes:
//   - UUID: A value object for entity identifiers (orders, products, timeline records)
//
// Primitives are immutable and safe for concurrent use.
package kernel
