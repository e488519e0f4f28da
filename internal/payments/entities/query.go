package entities

import (
	"encoding/json"
	"net/url"
)

const defaultPageSize = "20"

// QueryFilter holds the raw query parameters of GET /api/payments/query.
// Values stay strings on purpose: range and format validation is delegated to
// the gateway, which relays its own errors back.
type QueryFilter struct {
	StartDate        string
	EndDate          string
	PageSize         string
	Currency         string
	MinAmount        string
	MaxAmount        string
	Last4Digits      string
	EntityReferences string
	ReceivedEvents   string
}

// Values serializes the filter for the gateway query string. Optional fields
// are included only when set, never as empty parameters.
func (f QueryFilter) Values() url.Values {
	v := url.Values{}
	v.Set("startDate", f.StartDate)
	v.Set("endDate", f.EndDate)

	pageSize := f.PageSize
	if pageSize == "" {
		pageSize = defaultPageSize
	}
	v.Set("pageSize", pageSize)

	optional := map[string]string{
		"currency":         f.Currency,
		"minAmount":        f.MinAmount,
		"maxAmount":        f.MaxAmount,
		"last4Digits":      f.Last4Digits,
		"entityReferences": f.EntityReferences,
		"receivedEvents":   f.ReceivedEvents,
	}
	for key, value := range optional {
		if value != "" {
			v.Set(key, value)
		}
	}

	return v
}

// QueryResult wraps the gateway's paginated payment list. Data is the gateway
// body verbatim, pagination links and embedded records included.
type QueryResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}
