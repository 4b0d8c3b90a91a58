package salesapi

import (
	"context"
	"net/http"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

// GetAccount retorna (nil, nil) quando nenhuma conta está conectada:
// ausência do singleton é um estado vazio legítimo, não um erro.
func (c *Client) GetAccount(ctx context.Context) (*entity.InstagramAccount, error) {
	var account entity.InstagramAccount
	err := c.do(ctx, http.MethodGet, "/instagram/account", nil, &account)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if account.ID == 0 && account.Username == "" {
		return nil, nil
	}
	return &account, nil
}

func (c *Client) UpsertAccount(ctx context.Context, input InstagramAccountInput) (*entity.InstagramAccount, error) {
	var account entity.InstagramAccount
	if err := c.do(ctx, http.MethodPost, "/instagram/account", input, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, input UpdateInstagramInput) (*entity.InstagramAccount, error) {
	var account entity.InstagramAccount
	if err := c.do(ctx, http.MethodPut, "/instagram/account", input, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) Sync(ctx context.Context) (*InstagramSyncResponse, error) {
	var response InstagramSyncResponse
	if err := c.do(ctx, http.MethodPost, "/instagram/sync", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
