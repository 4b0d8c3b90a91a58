package salesapi

import (
	"context"
	"net/http"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

func (c *Client) Login(ctx context.Context, input LoginInput) (entity.TokenPair, error) {
	var pair entity.TokenPair
	err := c.do(ctx, http.MethodPost, "/auth/login", input, &pair)
	return pair, err
}

func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (entity.TokenPair, error) {
	var pair entity.TokenPair
	err := c.do(ctx, http.MethodPost, "/auth/refresh", RefreshInput{RefreshToken: refreshToken}, &pair)
	return pair, err
}
