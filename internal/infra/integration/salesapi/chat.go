package salesapi

import (
	"context"
	"net/http"
)

func (c *Client) Chat(ctx context.Context, request ChatRequest) (*ChatResponse, error) {
	var response ChatResponse
	if err := c.do(ctx, http.MethodPost, "/ai/chat", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
