package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *PaystackClient {
	return &PaystackClient{BaseURL: srv.URL, SecretKey: "sk_test_abc", HTTP: srv.Client()}
}

func TestInitializeSendsKoboAndBearer(t *testing.T) {
	var got InitializeParams
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		require.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created",
			"data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"UOH-1-aaaaaa"}}`))
	}))
	defer srv.Close()

	res, err := testClient(srv).Initialize(context.Background(), InitializeParams{
		Email:     "ada@universeofhair.ng",
		Amount:    13752500,
		Reference: "UOH-1-aaaaaa",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(13752500), got.Amount)
	assert.Equal(t, "NGN", got.Currency)
	assert.Equal(t, "https://checkout.paystack.com/abc", res.AuthorizationURL)
	assert.Equal(t, "UOH-1-aaaaaa", res.Reference)
}

func TestInitializeMissingAuthorizationURLFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"ok","data":{"access_code":"abc"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Initialize(context.Background(), InitializeParams{Email: "a@b.ng", Amount: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorization URL")
}

func TestInitializeGatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Initialize(context.Background(), InitializeParams{Email: "a@b.ng", Amount: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid key")
}

func TestVerifySuccessContract(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		succeeded bool
	}{
		{
			name:      "envelope true and status success",
			body:      `{"status":true,"message":"Verification successful","data":{"status":"success","reference":"r1","amount":13752500,"currency":"NGN","customer":{"email":"ada@b.ng"}}}`,
			succeeded: true,
		},
		{
			name:      "abandoned transaction",
			body:      `{"status":true,"message":"Verification successful","data":{"status":"abandoned","reference":"r1","amount":13752500}}`,
			succeeded: false,
		},
		{
			name:      "failed transaction",
			body:      `{"status":true,"message":"Verification successful","data":{"status":"failed","reference":"r1"}}`,
			succeeded: false,
		},
		{
			name:      "envelope false",
			body:      `{"status":false,"message":"Transaction reference not found"}`,
			succeeded: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.True(t, strings.HasPrefix(r.URL.Path, "/transaction/verify/"))
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			res, err := testClient(srv).Verify(context.Background(), "r1")
			require.NoError(t, err)
			assert.Equal(t, tc.succeeded, res.Succeeded())
		})
	}
}

func TestVerifyTransportErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force a connection error

	c := &PaystackClient{BaseURL: srv.URL, SecretKey: "sk", HTTP: http.DefaultClient}
	_, err := c.Verify(context.Background(), "r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway unreachable")
}

func TestVerifyAmountRoundTrip(t *testing.T) {
	// 135000 naira subtotal + 2500 shipping → 13750000 kobo on the wire,
	// 137500.00 naira after division.
	const major = 135000.0 + 2500.0
	kobo := int64(major * 100)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"status": "success", "reference": "r1", "amount": kobo, "currency": "NGN",
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	res, err := testClient(srv).Verify(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, major, float64(res.Amount)/100)
}
