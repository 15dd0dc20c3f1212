package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin facade over cockroachdb/errors so call sites never import it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel so Is(err, markErr) holds while the original
// cause and its stack stay intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches sentinels attached with Mark as well as regular wrap chains.
// The stdlib errors.Is cannot see marks, so sentinel checks must go
// through here.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
