package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"checkout-relay/internal/gateway"

	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Run("request headers and decoding", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/payments", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.Equal(t, "2024-06-01", r.Header.Get("WP-Api-Version"))

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			require.Equal(t, "user", user)
			require.Equal(t, "secret", pass)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"outcome": "authorized", "transactionReference": "ref-9"}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "user", "secret")
		result, err := client.Authorize(context.Background(), gateway.AuthorizationRequest{})

		require.NoError(t, err)
		require.True(t, result.OK)
		require.Equal(t, http.StatusCreated, result.StatusCode)
		require.Equal(t, "authorized", result.Body.Outcome)
		require.Equal(t, "ref-9", result.Body.TransactionReference)
		require.JSONEq(t, `{"outcome": "authorized", "transactionReference": "ref-9"}`, string(result.Raw))
	})

	t.Run("non-2xx is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errorName": "bodyDoesNotMatchSchema", "message": "nope"}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "user", "secret")
		result, err := client.Authorize(context.Background(), gateway.AuthorizationRequest{})

		require.NoError(t, err)
		require.False(t, result.OK)
		require.Equal(t, "bodyDoesNotMatchSchema", result.Body.ErrorName)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>so wrong</html>`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "user", "secret")
		_, err := client.Authorize(context.Background(), gateway.AuthorizationRequest{})

		require.Error(t, err)
		require.Contains(t, err.Error(), "decoding gateway response")
	})
}

func TestQueryPayments(t *testing.T) {
	t.Run("request headers and pass-through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/paymentQueries/payments", r.URL.Path)
			require.Equal(t, "application/vnd.worldpay.payment-queries-v1.hal+json", r.Header.Get("Accept"))
			require.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get("startDate"))

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			require.Equal(t, "user", user)
			require.Equal(t, "secret", pass)

			w.Write([]byte(`{"_embedded": {"payments": []}}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "user", "secret")
		query := url.Values{}
		query.Set("startDate", "2024-01-01T00:00:00Z")

		resp, err := client.QueryPayments(context.Background(), query)

		require.NoError(t, err)
		require.True(t, resp.OK)
		require.JSONEq(t, `{"_embedded": {"payments": []}}`, string(resp.Raw))
	})

	t.Run("failure body is decoded for relaying", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errorName": "queryParameterIsInvalid", "message": "bad date"}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "user", "secret")
		resp, err := client.QueryPayments(context.Background(), url.Values{})

		require.NoError(t, err)
		require.False(t, resp.OK)
		require.Equal(t, "queryParameterIsInvalid", resp.ErrorName)
		require.Equal(t, "bad date", resp.Message)
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "user", "secret")
		_, err := client.QueryPayments(context.Background(), url.Values{})

		require.Error(t, err)
	})
}
