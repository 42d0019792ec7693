// Package catalog implements the movie search engine: conjunctive filters
// over an immutable record set followed by an optional stable sort.
//
// Every function in this package is pure. Input slices are never modified
// and results are always freshly allocated, so a single record set can be
// shared by any number of concurrent callers.
package catalog
