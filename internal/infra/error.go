package infra

import (
	"errors"

	"turnos-gateway/internal/pkg/errs"
)

type BackendErrorKind string

// BackendError classifies failures of the remote REST backend so usecases can
// branch without inspecting HTTP details.
type BackendError struct {
	Kind BackendErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e BackendError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e BackendError) Unwrap() error {
	return e.err
}

// Is translates kinds into the errs sentinels so usecases and handlers can
// branch on errs.Is without importing this package.
func (e BackendError) Is(target error) bool {
	switch target {
	case errs.ErrBackendUnavailable:
		return e.Kind == KindUnavailable || e.Kind == KindServerError
	case errs.ErrNoAutorizado:
		return e.Kind == KindUnauthorized
	case errs.ErrPayloadInvalido:
		return e.Kind == KindBadPayload
	case errs.ErrBackendRejected:
		return e.Kind == KindRejected
	}
	return false
}

func WrapBackendErr(kind BackendErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return BackendError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind BackendErrorKind) bool {
	var e BackendError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Backend-specific error kinds
const (
	KindNotFound     BackendErrorKind = "NOT_FOUND"
	KindUnavailable  BackendErrorKind = "UNAVAILABLE"  // no response reached the server
	KindUnauthorized BackendErrorKind = "UNAUTHORIZED" // token missing/rejected
	KindRejected     BackendErrorKind = "REJECTED"     // 4xx other than auth/404
	KindBadPayload   BackendErrorKind = "BAD_PAYLOAD"  // unrecognized response shape
	KindServerError  BackendErrorKind = "SERVER_ERROR" // backend 5xx
)
