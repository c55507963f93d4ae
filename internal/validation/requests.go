package validation

import (
	"time"

	"github.com/shopspring/decimal"

	"payment-initiation-backend/internal/apierror"
)

var PaymentSchema = Schema{
	{Name: "CardNumber", Type: KindString},
	{Name: "CVV", Type: KindString},
	{Name: "Expiry", Type: KindString},
	{Name: "CardHolderName", Type: KindString},
	{Name: "CardHolderAddress", Type: KindString},
	{Name: "Email", Type: KindString},
	{Name: "PayeeBankAccNum", Type: KindString},
	{Name: "PayeeBankSortCode", Type: KindString},
	{Name: "RecipientName", Type: KindString},
	{Name: "Amount", Type: KindFloat},
	{Name: "PayerCurrencyCode", Type: KindString},
	{Name: "PayeeCurrencyCode", Type: KindString},
}

var RefundSchema = Schema{
	{Name: "TransactionUUID", Type: KindString},
	{Name: "Amount", Type: KindFloat},
	{Name: "CurrencyCode", Type: KindString},
}

var CancellationSchema = Schema{
	{Name: "TransactionUUID", Type: KindString},
}

// PaymentRequest is a validated payment initiation. CardNumber and
// PayeeBankSortCode hold their normalised forms.
type PaymentRequest struct {
	CardNumber        string
	CVV               string
	Expiry            time.Time
	CardHolderName    string
	CardHolderAddress string
	Email             string
	PayeeBankAccNum   string
	PayeeBankSortCode string
	RecipientName     string
	Amount            decimal.Decimal
	PayerCurrencyCode string
	PayeeCurrencyCode string
}

type RefundRequest struct {
	TransactionUUID string
	Amount          decimal.Decimal
	CurrencyCode    string
}

type CancellationRequest struct {
	TransactionUUID string
}

// ValidatePayment runs the schema check and then the per-field business rules,
// reporting the first failing field.
func ValidatePayment(body Body) (PaymentRequest, *apierror.Error) {
	if err := PaymentSchema.Check(body); err != nil {
		return PaymentRequest{}, err
	}

	if !ValidCardNumber(body["CardNumber"].Str()) {
		return PaymentRequest{}, apierror.InvalidField("CardNumber")
	}
	if !ValidCVV(body["CVV"].Str()) {
		return PaymentRequest{}, apierror.InvalidField("CVV")
	}
	expiry, ok := ParseExpiry(body["Expiry"].Str())
	if !ok {
		return PaymentRequest{}, apierror.InvalidField("Expiry")
	}
	if !ValidName(body["CardHolderName"].Str()) {
		return PaymentRequest{}, apierror.InvalidField("CardHolderName")
	}
	if !ValidName(body["RecipientName"].Str()) {
		return PaymentRequest{}, apierror.InvalidField("RecipientName")
	}
	if !ValidEmail(body["Email"].Str()) {
		return PaymentRequest{}, apierror.InvalidField("Email")
	}
	if !ValidBankAccountNumber(body["PayeeBankAccNum"].Str()) {
		return PaymentRequest{}, apierror.InvalidField("PayeeBankAccNum")
	}
	if !ValidSortCode(body["PayeeBankSortCode"].Str()) {
		return PaymentRequest{}, apierror.InvalidField("PayeeBankSortCode")
	}
	amount, ok := positiveAmount(body["Amount"])
	if !ok {
		return PaymentRequest{}, apierror.InvalidField("Amount")
	}

	return PaymentRequest{
		CardNumber:        NormalizeCardNumber(body["CardNumber"].Str()),
		CVV:               body["CVV"].Str(),
		Expiry:            expiry,
		CardHolderName:    body["CardHolderName"].Str(),
		CardHolderAddress: body["CardHolderAddress"].Str(),
		Email:             body["Email"].Str(),
		PayeeBankAccNum:   body["PayeeBankAccNum"].Str(),
		PayeeBankSortCode: NormalizeSortCode(body["PayeeBankSortCode"].Str()),
		RecipientName:     body["RecipientName"].Str(),
		Amount:            amount,
		PayerCurrencyCode: body["PayerCurrencyCode"].Str(),
		PayeeCurrencyCode: body["PayeeCurrencyCode"].Str(),
	}, nil
}

func ValidateRefund(body Body) (RefundRequest, *apierror.Error) {
	if err := RefundSchema.Check(body); err != nil {
		return RefundRequest{}, err
	}

	amount, ok := positiveAmount(body["Amount"])
	if !ok {
		return RefundRequest{}, apierror.InvalidField("Amount")
	}

	return RefundRequest{
		TransactionUUID: body["TransactionUUID"].Str(),
		Amount:          amount,
		CurrencyCode:    body["CurrencyCode"].Str(),
	}, nil
}

func ValidateCancellation(body Body) (CancellationRequest, *apierror.Error) {
	if err := CancellationSchema.Check(body); err != nil {
		return CancellationRequest{}, err
	}
	return CancellationRequest{TransactionUUID: body["TransactionUUID"].Str()}, nil
}

func positiveAmount(v Value) (decimal.Decimal, bool) {
	amount, err := v.Decimal()
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}
