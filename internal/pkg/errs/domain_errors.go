package errs

import "errors"

// Category markers shared by the usecase layers. Handlers classify with Is.
var (
	// Local, synchronous refusals: the action is refused and nothing changes.
	ErrValidation = errors.New("validation error")

	// The backend answered but said no (invalid voucher, no membership found).
	ErrRemoteRejection = errors.New("remote rejection")

	// The backend could not be reached or answered garbage.
	ErrTransportFailure = errors.New("transport failure")

	// The billing endpoint returned a non-success status.
	ErrSubmissionFailure = errors.New("submission failure")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// The request races one already in flight (a second submit of the same bill).
	ErrConflict = errors.New("conflict")

	// The backend session behind the terminal token is gone (logout or 401).
	ErrSessionExpired = errors.New("session expired")
)
