package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// MarkAll marks err with every reference, innermost first.
func MarkAll(err error, refs ...error) error {
	for _, ref := range refs {
		err = Mark(err, ref)
	}
	return err
}

// Is understands marks added by Mark; the stdlib errors.Is does not.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// UserMessage returns the outermost message attached with WithUserMessage, or fallback.
func UserMessage(err error, fallback string) string {
	hints := cr.GetAllHints(err)
	for i := len(hints) - 1; i >= 0; i-- {
		if hints[i] != "" {
			return hints[i]
		}
	}
	return fallback
}

// WithUserMessage attaches a message that is safe to show on the terminal screen.
func WithUserMessage(err error, msg string) error {
	if err == nil || msg == "" {
		return err
	}
	return cr.WithHint(err, msg)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
