package logic

import (
	"errors"
	"fmt"
)

// StatusCode classifies why a command was rejected.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
)

const (
	ErrMsgProductIDRequired   = "Product ID is required"
	ErrMsgProductPriceless    = "This product is priceless and cannot be bought"
	ErrMsgUnknownOrderField   = "Unknown order field"
	ErrMsgUnknownContactField = "Unknown contacts field"
	ErrMsgUnknownPayment      = "Unknown payment method"
	ErrMsgBasketEmpty         = "Basket is empty"
	ErrMsgOrderInvalid        = "Order form has errors"

	ErrMsgAddressRequired = "Enter a delivery address"
	ErrMsgPaymentRequired = "Choose a payment method"
	ErrMsgEmailRequired   = "Enter an email"
	ErrMsgPhoneRequired   = "Enter a phone number"
)

var statusNames = map[StatusCode]string{
	StatusInvalidArgument:    "INVALID_ARGUMENT",
	StatusFailedPrecondition: "FAILED_PRECONDITION",
}

func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// CommandError is a rejected command. The message is shown to the user as is.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string { return e.Message }

func reject(code StatusCode, message string) *CommandError {
	return &CommandError{Code: code, Message: message}
}

// NewInvalidArgument rejects malformed input.
func NewInvalidArgument(message string) *CommandError {
	return reject(StatusInvalidArgument, message)
}

func NewInvalidArgumentf(format string, args ...any) *CommandError {
	return reject(StatusInvalidArgument, fmt.Sprintf(format, args...))
}

// NewFailedPrecondition rejects a command the current state cannot accept.
func NewFailedPrecondition(message string) *CommandError {
	return reject(StatusFailedPrecondition, message)
}

// AsCommandError unwraps err to a CommandError.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}
