package entity

import (
	"errors"
	"time"
)

type InteractionAuthor string

const (
	InteractionAuthorAdmin  InteractionAuthor = "admin"
	InteractionAuthorClient InteractionAuthor = "client"
	InteractionAuthorAI     InteractionAuthor = "ai"
)

func (a InteractionAuthor) IsValid() bool {
	switch a {
	case InteractionAuthorAdmin, InteractionAuthorClient, InteractionAuthorAI:
		return true
	}
	return false
}

// Entidade: LeadInteraction
// Append-only: o cliente nunca atualiza nem remove uma interação.
type LeadInteraction struct {
	ID         int                    `json:"id"`
	LeadID     int                    `json:"lead_id"`
	AuthorType InteractionAuthor      `json:"author_type"`
	AuthorName string                 `json:"author_name,omitempty"`
	Message    string                 `json:"message"`
	Context    map[string]interface{} `json:"context,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func (i *LeadInteraction) Validate() error {
	if i.Message == "" {
		return errors.New("message is required")
	}
	if !i.AuthorType.IsValid() {
		return errors.New("author_type is invalid")
	}
	return nil
}
