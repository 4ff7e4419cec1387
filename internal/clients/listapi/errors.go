package listapi

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"

	"checkout/internal/payment"
)

// Error describes a failed Payment API call
type Error struct {
	StatusCode     int
	Message        string
	NetworkFailure bool
	Info           *payment.ErrorInfo
	Cause          error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payment api error %d: %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("payment api error: %s: %v", e.Message, e.Cause)
	}
	return "payment api error: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsNetworkFailure reports whether err is a transport failure talking to
// the Payment API, as opposed to a rejected request or a malformed reply.
func IsNetworkFailure(err error) bool {
	var apiErr *Error
	return stderrors.As(err, &apiErr) && apiErr.NetworkFailure
}

// Interaction returns the interaction the Payment API attached to an error
// response, if any.
func Interaction(err error) (payment.Interaction, bool) {
	var apiErr *Error
	if !stderrors.As(err, &apiErr) || apiErr.Info == nil || apiErr.Info.Interaction == nil {
		return payment.Interaction{}, false
	}
	return *apiErr.Info.Interaction, true
}

// IsUnauthorized reports whether the Payment API rejected the credentials
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return stderrors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsTimeout reports whether the request ran out of time before a reply
func IsTimeout(err error) bool {
	if !IsNetworkFailure(err) {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
