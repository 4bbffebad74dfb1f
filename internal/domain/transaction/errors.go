package transaction

import (
	"errors"
	"strings"
)

var (
	ErrMembershipCapReached    = errors.New("membership free-service limit reached")
	ErrVoucherAlreadyApplied   = errors.New("voucher already applied")
	ErrMembershipNotFound      = errors.New("membership is not among the looked-up candidates")
	ErrInvalidCustomerSource   = errors.New("invalid customer source")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrNegativeCashReceived    = errors.New("cash received cannot be negative")
	ErrServiceTimeOutsideSlots = errors.New("service time must be a half-hour slot between 09:00 and 22:00")
	ErrAppointmentTooSoon      = errors.New("appointment must be at least 10 minutes from now")

	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrInvalidPhone         = errors.New("customer phone must be exactly 10 digits")
	ErrMissingStaff         = errors.New("staff is required")
	ErrMissingServiceTime   = errors.New("service date and time are required")
	ErrAppointmentInPast    = errors.New("appointment time has already passed")
	ErrMissingPaymentMethod = errors.New("payment method is required")
)

// SubmitErrors lists every rule a transaction fails before it can be billed.
type SubmitErrors []error

func (e SubmitErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "transaction not ready for billing: " + strings.Join(msgs, "; ")
}

func (e SubmitErrors) Unwrap() []error {
	return e
}
