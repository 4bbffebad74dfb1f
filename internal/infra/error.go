package infra

import (
	"errors"
	"log/slog"

	"spa-pos/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by every infra adapter. RemoteMessage carries the text the
// backend sent with a rejection, if any.
type Error struct {
	Kind          ErrorKind
	RemoteMessage string
	msg           string
	err           error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Warn("Infra error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

// Rejected builds a KindRejected error carrying the backend's own message.
func Rejected(msg, remoteMessage string) error {
	return Error{Kind: KindRejected, RemoteMessage: remoteMessage, msg: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RemoteMessage returns the backend message attached to err, or "".
func RemoteMessage(err error) string {
	var e Error
	if errors.As(err, &e) {
		return e.RemoteMessage
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindTransport    ErrorKind = "TRANSPORT"
	KindRejected     ErrorKind = "REJECTED"
	KindDecode       ErrorKind = "DECODE"
	KindConflict     ErrorKind = "CONFLICT"
)
