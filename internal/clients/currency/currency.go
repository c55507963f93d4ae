package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"payment-initiation-backend/internal/clients"
)

const convertPath = "/convert"

// Request asks for Amount in From to be expressed in To as of Date.
type Request struct {
	From   string
	To     string
	Date   time.Time
	Amount decimal.Decimal
}

type convertRequest struct {
	CurrencyFrom string      `json:"CurrencyFrom"`
	CurrencyTo   string      `json:"CurrencyTo"`
	Date         string      `json:"Date"`
	Amount       json.Number `json:"Amount"`
}

type convertResponse struct {
	Status int             `json:"Status"`
	Amount decimal.Decimal `json:"Amount"`
}

// Client talks to the currency conversion service.
type Client struct {
	api *clients.JSONClient
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{api: clients.NewJSONClient(baseURL, timeout)}
}

// Convert returns the converted amount. Any reply whose Status is not 200 is
// an error.
func (c *Client) Convert(ctx context.Context, req Request) (decimal.Decimal, error) {
	var resp convertResponse
	err := c.api.Post(ctx, convertPath, convertRequest{
		CurrencyFrom: req.From,
		CurrencyTo:   req.To,
		Date:         req.Date.Format("2006-01-02"),
		Amount:       json.Number(req.Amount.String()),
	}, &resp)
	if err != nil {
		return decimal.Zero, err
	}
	if resp.Status != http.StatusOK {
		return decimal.Zero, fmt.Errorf("conversion %s->%s returned status %d", req.From, req.To, resp.Status)
	}
	return resp.Amount, nil
}
