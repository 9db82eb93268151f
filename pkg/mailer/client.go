package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the hosted email function that delivers invoice emails.
// The call is one-shot; failures are surfaced to the caller and never
// retried.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type InvoiceEmailRequest struct {
	To      string  `json:"to"`
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	OrderID uint    `json:"orderId"`
}

type InvoiceEmailResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendInvoiceEmail posts the invoice payload to the email function.
func (c *Client) SendInvoiceEmail(req *InvoiceEmailRequest) (*InvoiceEmailResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Error responses are not guaranteed to carry a JSON body, so the status
	// check comes first and a decode failure on that branch is tolerated.
	var response InvoiceEmailResponse
	decodeErr := json.Unmarshal(body, &response)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := response.Detail
		if detail == "" {
			detail = response.Error
		}
		if detail == "" {
			detail = strings.TrimSpace(string(body))
		}
		return &response, fmt.Errorf("email function returned status %d: %s", resp.StatusCode, detail)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to parse response: %w", decodeErr)
	}

	if response.Error != "" {
		return &response, fmt.Errorf("email function error: %s", response.Error)
	}

	return &response, nil
}
