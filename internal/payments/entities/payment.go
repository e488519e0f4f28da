package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PaymentRequest is the body of POST /api/payments/process. The session is the
// opaque token produced by the hosted checkout widget.
type PaymentRequest struct {
	Session  string `json:"session"`
	Amount   Amount `json:"amount"`
	Currency string `json:"currency"`
}

// Amount accepts either a JSON number or a numeric string, so callers sending
// `"amount": "150"` and `"amount": 150` behave identically.
type Amount struct {
	raw string
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.raw = s
		return nil
	}
	a.raw = string(data)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(a.raw)
}

// Int64 parses the amount as a base-10 integer in minor currency units.
// Fractional values truncate toward zero.
func (a Amount) Int64() (int64, error) {
	s := strings.TrimSpace(a.raw)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func (a Amount) String() string {
	return a.raw
}

// PaymentOutcome is the normalized result returned to the caller for every
// payment attempt, successful or not.
type PaymentOutcome struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	Details       any    `json:"details,omitempty"`
}

// AuthorizedDetails carries the extracted gateway fields for an authorized
// payment. Absent gateway fields are surfaced as empty strings, never omitted.
type AuthorizedDetails struct {
	Outcome              string          `json:"outcome"`
	TransactionReference string          `json:"transactionReference"`
	PaymentHref          string          `json:"paymentHref"`
	CardDetails          CardDetails     `json:"cardDetails"`
	AuthorizationCode    string          `json:"authorizationCode"`
	Actions              json.RawMessage `json:"actions"`
}

type CardDetails struct {
	CardBrand  string          `json:"cardBrand"`
	LastFour   string          `json:"lastFour"`
	ExpiryDate json.RawMessage `json:"expiryDate"`
}
