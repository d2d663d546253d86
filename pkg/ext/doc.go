// Package ext holds small generic helpers: reverse indexing into slices,
// decimal precision, and string parsing.
package ext
