package scenario

import (
	"errors"
	"fmt"
)

// Evaluator runs one matcher against a subject. It returns nil
// when the matcher passes, a *matcher.Failure when it fails and
// any other error when the expectation cannot be evaluated.
type Evaluator func(subject Subject, exp Expectation) error

// ErrUsage is wrapped by errors for expectations that cannot be
// evaluated, such as a missing argument.
var ErrUsage = errors.New("invalid expectation")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
