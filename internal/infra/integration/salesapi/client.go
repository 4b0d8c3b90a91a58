package salesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource entrega o access token atual da sessão.
// O client não guarda token nenhum: quem manda é a sessão (explícita).
type TokenSource interface {
	AccessToken() string
}

type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	return &Client{
		baseURL: baseURL + "/api/v1",
		tokens:  tokens,
		http:    http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao converter payload: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var serverErr struct {
			Detail string `json:"detail"`
		}
		message := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if json.Unmarshal(raw, &serverErr) == nil && serverErr.Detail != "" {
			message = serverErr.Detail
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}

	// O singleton do Instagram responde "null" quando não há conta
	if string(raw) == "null" {
		return nil
	}

	return json.Unmarshal(raw, out)
}
