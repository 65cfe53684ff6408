// Package outcome defines the generic outcome container produced
// by domain operations and the keyed errors it carries.
package outcome

import (
	"errors"
	"fmt"
	"strings"

	perrors "github.com/jmgilman/go/errors"
)

// Reserved error keys with dedicated matchers.
const (
	// BasicErrorKey tags a generic, uncategorised failure.
	BasicErrorKey = "basic_error"

	// ResourceNotFoundErrorKey tags a lookup that found nothing.
	ResourceNotFoundErrorKey = "resource_not_found"
)

// Error describes one failure reason. Keys are not unique within
// a result.
type Error struct {
	// Key identifies the failure category.
	Key string `json:"key" yaml:"key"`

	// Message is a human-readable description.
	Message string `json:"message" yaml:"message"`
}

// NewError creates an Error with the given key and message.
func NewError(key, message string) Error {
	return Error{Key: key, Message: message}
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message == "" {
		return e.Key
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// FromError converts a Go error into an outcome Error. An Error
// anywhere in the chain is returned as is. Errors carrying a
// platform error code map CodeNotFound to ResourceNotFoundErrorKey
// and any other code to its lower-cased name. Everything else is
// reported under BasicErrorKey.
func FromError(err error) Error {
	if err == nil {
		return Error{}
	}

	var oe Error
	if errors.As(err, &oe) {
		return oe
	}

	var pe perrors.PlatformError
	if errors.As(err, &pe) {
		code := pe.Code()
		switch code {
		case perrors.CodeNotFound:
			return NewError(ResourceNotFoundErrorKey, pe.Message())
		case "":
		default:
			return NewError(
				strings.ToLower(string(code)), pe.Message(),
			)
		}
	}

	return NewError(BasicErrorKey, err.Error())
}
