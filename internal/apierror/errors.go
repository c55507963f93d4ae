package apierror

import (
	"errors"
	"fmt"
)

// Code is the stable numeric error code surfaced to API callers.
type Code int

const (
	CodeEmptyBody                Code = 100
	CodeMalformedBody            Code = 101
	CodeMissingField             Code = 102
	CodeTypeMismatch             Code = 103
	CodeInvalidField             Code = 104
	CodeWrongMethod              Code = 105
	CodePayerInstrumentNotFound  Code = 106
	CodePayeeBankDetailsNotFound Code = 107
	CodePayerAccountNotFound     Code = 108
	CodePayeeAccountNotFound     Code = 109
	CodeCurrencyConversionFailed Code = 201
	CodePaymentNetworkFailed     Code = 301
	CodePersistenceFailed        Code = 401
	CodeTransactionNotFound      Code = 402
	CodeRefundNetworkFailed      Code = 403
	CodeAlreadyFinalized         Code = 404
)

// Error is a failure detected by one pipeline stage. Comment is what the caller sees.
type Error struct {
	Code    Code
	Comment string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("error %d: %s: %v", e.Code, e.Comment, e.cause)
	}
	return fmt.Sprintf("error %d: %s", e.Code, e.Comment)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// As reports whether err carries an *Error and returns it.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newError(code Code, comment string, cause error) *Error {
	return &Error{Code: code, Comment: comment, cause: cause}
}

func EmptyBody() *Error {
	return newError(CodeEmptyBody, "Request body empty.", nil)
}

func MalformedBody(cause error) *Error {
	return newError(CodeMalformedBody, "Request body in incorrect format", cause)
}

func MissingField(name string) *Error {
	return newError(CodeMissingField, fmt.Sprintf("Could not find field %q.", name), nil)
}

func TypeMismatch(name, actual, expected string) *Error {
	return newError(CodeTypeMismatch, fmt.Sprintf("Field %q is a %s, when %s was expected.", name, actual, expected), nil)
}

func InvalidField(name string) *Error {
	return newError(CodeInvalidField, "Invalid Field(s): "+name, nil)
}

// UnexpectedField shares the semantic-validation code; only the comment differs.
func UnexpectedField(name string) *Error {
	return newError(CodeInvalidField, fmt.Sprintf("Unexpected field %q.", name), nil)
}

func WrongMethod() *Error {
	return newError(CodeWrongMethod, "Request type is not POST", nil)
}

func PayerInstrumentNotFound() *Error {
	return newError(CodePayerInstrumentNotFound, "Could not find the payer's payment details.", nil)
}

func PayeeBankDetailsNotFound() *Error {
	return newError(CodePayeeBankDetailsNotFound, "Could not find the payee's bank details.", nil)
}

func PayerAccountNotFound() *Error {
	return newError(CodePayerAccountNotFound, "Could not find the payer's account.", nil)
}

func PayeeAccountNotFound() *Error {
	return newError(CodePayeeAccountNotFound, "Could not find the payee's account.", nil)
}

func CurrencyConversionFailed(cause error) *Error {
	return newError(CodeCurrencyConversionFailed, "An error occurred with currency conversion.", cause)
}

func PaymentNetworkFailed(cause error) *Error {
	return newError(CodePaymentNetworkFailed, "An error occurred with contacting the Payment Network Service.", cause)
}

func PersistenceFailed(cause error) *Error {
	msg := "unknown storage error"
	if cause != nil {
		msg = cause.Error()
	}
	return newError(CodePersistenceFailed, "An error occurred saving the transaction: "+msg, cause)
}

func TransactionNotFound(id string) *Error {
	return newError(CodeTransactionNotFound, fmt.Sprintf("Could not find transaction %q.", id), nil)
}

func RefundNetworkFailed(cause error) *Error {
	return newError(CodeRefundNetworkFailed, "An error occurred with refunding the transaction.", cause)
}

func AlreadyFinalized(id string) *Error {
	return newError(CodeAlreadyFinalized, fmt.Sprintf("Transaction %q has already been refunded or cancelled.", id), nil)
}
