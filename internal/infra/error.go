package infra

import (
	"errors"
	"log/slog"

	"reservation-engine/internal/pkg/errs"
)

type BackendErrorKind string

// BackendError is what persistence and delivery adapters return. It keeps the
// backend name so logs and mapped errors say which store failed.
type BackendError struct {
	Kind    BackendErrorKind
	Backend string
	msg     string
	err     error // wrapped low-level error
}

func (e BackendError) Error() string {
	prefix := string(e.Kind) + " [" + e.Backend + "]: " + e.msg
	if e.err != nil {
		return prefix + ": " + e.err.Error()
	}
	return prefix
}

func (e BackendError) Unwrap() error {
	return e.err
}

func WrapBackendErr(logger *slog.Logger, backend string, kind BackendErrorKind, msg string, err error) error {
	if logger != nil {
		logger.Error("Backend error: "+msg,
			slog.String("backend", backend),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return BackendError{Kind: kind, Backend: backend, msg: msg, err: err}
}

func IsKind(err error, kind BackendErrorKind) bool {
	var e BackendError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound  BackendErrorKind = "NOT_FOUND"
	KindDBFailure BackendErrorKind = "DB_FAILURE"
	KindCodec     BackendErrorKind = "CODEC"
	KindClosed    BackendErrorKind = "CLOSED"
)
