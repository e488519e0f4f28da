package gateway

import "encoding/json"

// AuthorizationRequest is the wire shape of a Worldpay payment authorization.
type AuthorizationRequest struct {
	TransactionReference string      `json:"transactionReference"`
	Merchant             Merchant    `json:"merchant"`
	Instruction          Instruction `json:"instruction"`
}

type Merchant struct {
	Entity string `json:"entity"`
}

type Instruction struct {
	Method            string             `json:"method"`
	PaymentInstrument CheckoutInstrument `json:"paymentInstrument"`
	Narrative         Narrative          `json:"narrative"`
	Value             Value              `json:"value"`
}

type CheckoutInstrument struct {
	Type           string         `json:"type"`
	CardHolderName string         `json:"cardHolderName"`
	SessionHref    string         `json:"sessionHref"`
	BillingAddress BillingAddress `json:"billingAddress"`
}

type BillingAddress struct {
	Address1    string `json:"address1"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
}

type Narrative struct {
	Line1 string `json:"line1"`
}

// Value is an amount in minor currency units. The amount is always an integer
// on the wire, no fractional units.
type Value struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// AuthorizationResponse is the gateway's HAL/JSON response body. Most fields
// are optional and deeply nested, so the nested objects are pointers.
type AuthorizationResponse struct {
	Outcome              string             `json:"outcome"`
	TransactionReference string             `json:"transactionReference"`
	ErrorName            string             `json:"errorName"`
	Message              string             `json:"message"`
	PaymentInstrument    *PaymentInstrument `json:"paymentInstrument"`
	Issuer               *Issuer            `json:"issuer"`
	Links                map[string]Link    `json:"_links"`
	Actions              json.RawMessage    `json:"_actions"`
}

type PaymentInstrument struct {
	CardBrand  string          `json:"cardBrand"`
	LastFour   string          `json:"lastFour"`
	ExpiryDate json.RawMessage `json:"expiryDate"`
}

type Issuer struct {
	AuthorizationCode string `json:"authorizationCode"`
}

type Link struct {
	Href string `json:"href"`
}

// AuthorizationResult pairs the decoded response with the HTTP status and the
// raw body, which is attached verbatim to declined outcomes.
type AuthorizationResult struct {
	StatusCode int
	OK         bool
	Body       AuthorizationResponse
	Raw        json.RawMessage
}

// QueryResponse is the raw result of a payment query call.
type QueryResponse struct {
	StatusCode int
	OK         bool
	Raw        json.RawMessage
	ErrorName  string
	Message    string
}
