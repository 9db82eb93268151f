package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendInvoiceEmail(t *testing.T) {
	var received InvoiceEmailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(InvoiceEmailResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	resp, err := client.SendInvoiceEmail(&InvoiceEmailRequest{
		To:      "jane@example.com",
		Name:    "Jane Doe",
		Total:   1600,
		OrderID: 42,
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "jane@example.com", received.To)
	assert.Equal(t, uint(42), received.OrderID)
}

func TestSendInvoiceEmailSurfacesFunctionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(InvoiceEmailResponse{Error: "smtp unavailable", Detail: "upstream timeout"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.SendInvoiceEmail(&InvoiceEmailRequest{To: "jane@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestSendInvoiceEmailNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.SendInvoiceEmail(&InvoiceEmailRequest{To: "jane@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.NotContains(t, err.Error(), "failed to parse response")
}

func TestSendInvoiceEmailErrorFieldWith200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(InvoiceEmailResponse{Error: "mailbox full"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.SendInvoiceEmail(&InvoiceEmailRequest{To: "jane@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox full")
}
