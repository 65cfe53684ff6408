// Package factory builds outcome fixtures for tests: stub
// entities, keyed errors with named variants and results with
// option functions.
package factory
