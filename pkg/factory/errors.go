package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"digital.vasic.outcomes/pkg/outcome"
)

// Built-in error variants.
const (
	// DefaultVariant builds an error with a random key.
	DefaultVariant = ""
	// BasicErrorVariant builds an error keyed
	// outcome.BasicErrorKey.
	BasicErrorVariant = "basic_error"
	// ResourceNotFoundVariant builds an error keyed
	// outcome.ResourceNotFoundErrorKey.
	ResourceNotFoundVariant = "resource_not_found_error"
)

// ErrorBuilder produces a fresh error for a variant.
type ErrorBuilder func() outcome.Error

// ErrorFactory builds outcome errors by variant name. It is safe
// for concurrent use.
type ErrorFactory struct {
	mu       sync.RWMutex
	variants map[string]ErrorBuilder
}

// NewErrorFactory creates an ErrorFactory with the built-in
// variants registered.
func NewErrorFactory() *ErrorFactory {
	f := &ErrorFactory{variants: make(map[string]ErrorBuilder)}
	f.variants[DefaultVariant] = func() outcome.Error {
		return outcome.NewError(RandomKey(), randomMessage())
	}
	f.variants[BasicErrorVariant] = func() outcome.Error {
		return outcome.NewError(outcome.BasicErrorKey, randomMessage())
	}
	f.variants[ResourceNotFoundVariant] = func() outcome.Error {
		return outcome.NewError(
			outcome.ResourceNotFoundErrorKey, randomMessage(),
		)
	}
	return f
}

// Register adds a variant. Returns an error if the name is
// already registered.
func (f *ErrorFactory) Register(name string, b ErrorBuilder) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.variants[name]; exists {
		return fmt.Errorf("error variant already registered: %q", name)
	}
	f.variants[name] = b
	return nil
}

// Build returns an error for the named variant.
func (f *ErrorFactory) Build(variant string) (outcome.Error, error) {
	f.mu.RLock()
	b, ok := f.variants[variant]
	f.mu.RUnlock()

	if !ok {
		return outcome.Error{}, fmt.Errorf(
			"unknown error variant: %q", variant,
		)
	}
	return b(), nil
}

// MustBuild is Build that panics on an unknown variant.
func (f *ErrorFactory) MustBuild(variant string) outcome.Error {
	e, err := f.Build(variant)
	if err != nil {
		panic(err)
	}
	return e
}

// Variants returns the registered variant names, sorted.
func (f *ErrorFactory) Variants() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.variants))
	for name := range f.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultErrors = NewErrorFactory()

// BuildError builds an error from the package factory. With no
// variant it uses DefaultVariant; it panics on an unknown one.
func BuildError(variant ...string) outcome.Error {
	name := DefaultVariant
	if len(variant) > 0 {
		name = variant[0]
	}
	return defaultErrors.MustBuild(name)
}

// BuildErrors builds n errors of the given variant.
func BuildErrors(n int, variant ...string) []outcome.Error {
	errs := make([]outcome.Error, 0, n)
	for i := 0; i < n; i++ {
		errs = append(errs, BuildError(variant...))
	}
	return errs
}

// RegisterError adds a variant to the package factory.
func RegisterError(name string, b ErrorBuilder) error {
	return defaultErrors.Register(name, b)
}

func randomMessage() string {
	return "error " + uuid.NewString()[:8]
}
