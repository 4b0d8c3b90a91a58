package salesapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

func (c *Client) ListLeads(ctx context.Context) (*LeadListResponse, error) {
	var response LeadListResponse
	if err := c.do(ctx, http.MethodGet, "/leads/", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.do(ctx, http.MethodPost, "/leads/", input, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) UpdateLead(ctx context.Context, id int, input UpdateLeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/leads/%d", id), input, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) DeleteLead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/leads/%d", id), nil, nil)
}

func (c *Client) ListInteractions(ctx context.Context, leadID int) ([]entity.LeadInteraction, error) {
	var interactions []entity.LeadInteraction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/leads/%d/interactions", leadID), nil, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (c *Client) CreateInteraction(ctx context.Context, leadID int, input CreateInteractionInput) (*entity.LeadInteraction, error) {
	var interaction entity.LeadInteraction
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/leads/%d/interactions", leadID), input, &interaction); err != nil {
		return nil, err
	}
	return &interaction, nil
}
