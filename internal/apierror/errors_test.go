package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComments(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		code    Code
		comment string
	}{
		{"empty body", EmptyBody(), CodeEmptyBody, "Request body empty."},
		{"missing field", MissingField("CVV"), CodeMissingField, `Could not find field "CVV".`},
		{"type mismatch", TypeMismatch("Amount", "string", "float"), CodeTypeMismatch, `Field "Amount" is a string, when float was expected.`},
		{"invalid field", InvalidField("CardNumber"), CodeInvalidField, "Invalid Field(s): CardNumber"},
		{"unexpected field", UnexpectedField("Extra"), CodeInvalidField, `Unexpected field "Extra".`},
		{"wrong method", WrongMethod(), CodeWrongMethod, "Request type is not POST"},
		{"not found", TransactionNotFound("abc"), CodeTransactionNotFound, `Could not find transaction "abc".`},
		{"finalized", AlreadyFinalized("abc"), CodeAlreadyFinalized, `Transaction "abc" has already been refunded or cancelled.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.comment, tt.err.Comment)
		})
	}
}

func TestPersistenceFailedCarriesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := PersistenceFailed(cause)

	assert.Equal(t, CodePersistenceFailed, err.Code)
	assert.Contains(t, err.Comment, "disk full")
	assert.ErrorIs(t, err, cause)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("stage failed: %w", PayeeAccountNotFound())

	got, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodePayeeAccountNotFound, got.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
