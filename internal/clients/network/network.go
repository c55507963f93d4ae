package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"payment-initiation-backend/internal/clients"
)

const (
	paymentPath = "/payment"
	refundPath  = "/refund"
)

// Payment carries the card and bank details the network authorises against.
type Payment struct {
	CardNumber     string
	Expiry         time.Time
	CVV            string
	HolderName     string
	BillingAddress string
	Amount         decimal.Decimal
	CurrencyCode   string
	AccountNumber  string
	SortCode       string
}

type Refund struct {
	TransactionUUID string
	Amount          decimal.Decimal
	CurrencyCode    string
}

type paymentRequest struct {
	CardNumber     string      `json:"CardNumber"`
	Expiry         string      `json:"Expiry"`
	CVV            string      `json:"CVV"`
	HolderName     string      `json:"HolderName"`
	BillingAddress string      `json:"BillingAddress"`
	Amount         json.Number `json:"Amount"`
	CurrencyCode   string      `json:"CurrencyCode"`
	AccountNumber  string      `json:"AccountNumber"`
	SortCode       string      `json:"SortCode"`
}

type refundRequest struct {
	TransactionUUID string      `json:"TransactionUUID"`
	Amount          json.Number `json:"Amount"`
	CurrencyCode    string      `json:"CurrencyCode"`
}

type networkResponse struct {
	StatusCode      int      `json:"StatusCode"`
	TransactionUUID flexible `json:"TransactionUUID"`
}

// flexible accepts the transaction id as either a JSON string or number.
type flexible string

func (f *flexible) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexible(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("transaction id: %w", err)
		}
		*f = flexible(n.String())
	}
	return nil
}

var ErrMissingTransactionID = errors.New("payment network returned no transaction id")

// Client talks to the payment network service.
type Client struct {
	api *clients.JSONClient
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{api: clients.NewJSONClient(baseURL, timeout)}
}

// Authorize submits a payment and returns the network-issued transaction id.
func (c *Client) Authorize(ctx context.Context, p Payment) (string, error) {
	var resp networkResponse
	err := c.api.Post(ctx, paymentPath, paymentRequest{
		CardNumber:     p.CardNumber,
		Expiry:         p.Expiry.Format("2006-01-02"),
		CVV:            p.CVV,
		HolderName:     p.HolderName,
		BillingAddress: p.BillingAddress,
		Amount:         json.Number(p.Amount.String()),
		CurrencyCode:   p.CurrencyCode,
		AccountNumber:  p.AccountNumber,
		SortCode:       p.SortCode,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment declined with status %d", resp.StatusCode)
	}
	if resp.TransactionUUID == "" {
		return "", ErrMissingTransactionID
	}
	return string(resp.TransactionUUID), nil
}

// Refund authorises a refund. The returned id is empty when the network did
// not issue one.
func (c *Client) Refund(ctx context.Context, r Refund) (string, error) {
	var resp networkResponse
	err := c.api.Post(ctx, refundPath, refundRequest{
		TransactionUUID: r.TransactionUUID,
		Amount:          json.Number(r.Amount.String()),
		CurrencyCode:    r.CurrencyCode,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refund declined with status %d", resp.StatusCode)
	}
	return string(resp.TransactionUUID), nil
}
