// SPDX-License-Identifier: MIT
// Package: qubogrid/degseq
//
// errors.go — sentinel errors and the exhaustion error type.

package degseq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration marks parameters that can never produce a valid
	// sequence (impossible regular degree, unknown distribution, N < 1, ...).
	// Not retried.
	ErrInvalidConfiguration = errors.New("degseq: invalid configuration")

	// ErrGenerationExhausted marks a probabilistic search that used its whole
	// try budget without drawing a graphical sequence.
	ErrGenerationExhausted = errors.New("degseq: generation exhausted")
)

// ExhaustedError reports how many proposals were drawn before giving up.
// It matches ErrGenerationExhausted under errors.Is.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v: no graphical sequence after %d attempts", ErrGenerationExhausted, e.Attempts)
}

// Is reports whether target is ErrGenerationExhausted.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrGenerationExhausted
}

func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
