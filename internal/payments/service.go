package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"checkout-relay/internal/config"
	"checkout-relay/internal/gateway"
	"checkout-relay/internal/payments/entities"
)

var (
	ErrMissingSession     = errors.New("missing session token")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingDateRange   = errors.New("missing date range")
	ErrPaymentDeclined    = errors.New("payment not authorized")
	ErrQueryRejected      = errors.New("payment query rejected")
	ErrGatewayUnreachable = errors.New("error communicating with payment gateway")
)

// Demo-only instrument data. The billing address and cardholder name are
// hardcoded into every authorization; real customer data collection is out of
// scope for this demo.
const (
	merchantEntity     = "default"
	demoCardholderName = "Test Customer"
	narrativeLine1     = "Test Payment"
	defaultCurrency    = "GBP"
)

var demoBillingAddress = gateway.BillingAddress{
	Address1:    "123 Test Street",
	PostalCode:  "TE1 1ST",
	City:        "Test City",
	CountryCode: "GB",
}

// Service is the payment relay. All state is local to a single request; the
// only side effect is the outbound gateway call.
type Service struct {
	gw             gateway.PaymentGateway
	sessionBaseURL string
}

func NewService(gw gateway.PaymentGateway, cfg config.Config) *Service {
	return &Service{
		gw:             gw,
		sessionBaseURL: cfg.GatewayBaseURL,
	}
}

// ProcessPayment validates the request, forwards it to the gateway and
// classifies the outcome. Validation failures return before any network call.
func (s *Service) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentOutcome, error) {
	if req.Session == "" {
		return entities.PaymentOutcome{
			Success: false,
			Error:   "Missing session token",
		}, ErrMissingSession
	}

	amount, err := req.Amount.Int64()
	if err != nil || amount <= 0 {
		return entities.PaymentOutcome{
			Success: false,
			Error:   "Invalid amount",
		}, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	instruction := gateway.AuthorizationRequest{
		TransactionReference: newTransactionReference(),
		Merchant:             gateway.Merchant{Entity: merchantEntity},
		Instruction: gateway.Instruction{
			Method: "card",
			PaymentInstrument: gateway.CheckoutInstrument{
				Type:           "checkout",
				CardHolderName: demoCardholderName,
				SessionHref:    s.sessionHref(req.Session),
				BillingAddress: demoBillingAddress,
			},
			Narrative: gateway.Narrative{Line1: narrativeLine1},
			Value: gateway.Value{
				Currency: currency,
				Amount:   amount,
			},
		},
	}

	slog.Info("processing payment", "transactionReference", instruction.TransactionReference, "amount", amount, "currency", currency)

	result, err := s.gw.Authorize(ctx, instruction)
	if err != nil {
		slog.Error("payment gateway call failed", "error", err)
		return entities.PaymentOutcome{
			Success: false,
			Error:   "Error communicating with payment gateway",
			Message: err.Error(),
		}, ErrGatewayUnreachable
	}

	return classifyAuthorization(result)
}

// classifyAuthorization is the single mapping from a raw gateway response to
// the normalized outcome. Success requires an HTTP 2xx and the literal
// outcome "authorized"; everything else is a decline.
func classifyAuthorization(result *gateway.AuthorizationResult) (entities.PaymentOutcome, error) {
	body := result.Body

	if result.OK && body.Outcome == "authorized" {
		details := entities.AuthorizedDetails{
			Outcome:              body.Outcome,
			TransactionReference: body.TransactionReference,
			PaymentHref:          body.Links["self"].Href,
			CardDetails:          cardDetails(body.PaymentInstrument),
			Actions:              rawOrEmptyObject(body.Actions),
		}
		if body.Issuer != nil {
			details.AuthorizationCode = body.Issuer.AuthorizationCode
		}

		return entities.PaymentOutcome{
			Success:       true,
			TransactionID: body.TransactionReference,
			Message:       "Payment authorized successfully",
			Details:       details,
		}, nil
	}

	errorName := body.ErrorName
	if errorName == "" {
		errorName = "Payment processing failed"
	}
	message := body.Message
	if message == "" {
		message = "The payment was not authorized"
	}
	if body.ErrorName == "bodyDoesNotMatchSchema" {
		message = "The payment request format is invalid. Please check the API documentation."
	}

	slog.Info("payment declined", "status", result.StatusCode, "errorName", errorName)

	return entities.PaymentOutcome{
		Success: false,
		Error:   errorName,
		Message: message,
		Details: result.Raw,
	}, ErrPaymentDeclined
}

// QueryPayments forwards a date-range query to the gateway and wraps the
// result. Beyond presence of the date range, validation is the gateway's job.
func (s *Service) QueryPayments(ctx context.Context, filter entities.QueryFilter) (entities.QueryResult, error) {
	if filter.StartDate == "" || filter.EndDate == "" {
		return entities.QueryResult{
			Success: false,
			Error:   "Missing required parameters: startDate and endDate are required",
		}, ErrMissingDateRange
	}

	query := filter.Values()
	slog.Info("querying payments", "query", query.Encode())

	resp, err := s.gw.QueryPayments(ctx, query)
	if err != nil {
		slog.Error("payment query gateway call failed", "error", err)
		return entities.QueryResult{
			Success: false,
			Error:   "Error communicating with payment gateway",
			Message: err.Error(),
		}, ErrGatewayUnreachable
	}

	if !resp.OK {
		errorName := resp.ErrorName
		if errorName == "" {
			errorName = "Query processing failed"
		}
		message := resp.Message
		if message == "" {
			message = "Failed to query payments"
		}

		return entities.QueryResult{
			Success: false,
			Error:   errorName,
			Message: message,
			Details: resp.Raw,
		}, ErrQueryRejected
	}

	return entities.QueryResult{
		Success: true,
		Data:    resp.Raw,
	}, nil
}

// sessionHref resolves the widget's session token to a full session resource
// URL. Tokens that already carry an HTTP scheme are used verbatim.
func (s *Service) sessionHref(session string) string {
	if strings.HasPrefix(session, "http") {
		return session
	}
	return s.sessionBaseURL + "/sessions/" + session
}

// newTransactionReference generates a best-effort unique reference. Timestamp
// plus a small random suffix is not collision-proof under concurrent load.
func newTransactionReference() string {
	return fmt.Sprintf("tx-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

func cardDetails(instrument *gateway.PaymentInstrument) entities.CardDetails {
	details := entities.CardDetails{
		ExpiryDate: json.RawMessage(`{}`),
	}
	if instrument == nil {
		return details
	}

	details.CardBrand = instrument.CardBrand
	details.LastFour = instrument.LastFour
	if len(instrument.ExpiryDate) > 0 && string(instrument.ExpiryDate) != "null" {
		details.ExpiryDate = instrument.ExpiryDate
	}
	return details
}

func rawOrEmptyObject(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(`{}`)
	}
	return raw
}
