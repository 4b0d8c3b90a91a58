package usecase

import (
	"context"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/infra/queue"
)

// LeadGateway é a porta para o backend remoto (coleção de leads + histórico).
type LeadGateway interface {
	ListLeads(ctx context.Context) (*salesapi.LeadListResponse, error)
	CreateLead(ctx context.Context, input salesapi.CreateLeadInput) (*entity.Lead, error)
	UpdateLead(ctx context.Context, id int, input salesapi.UpdateLeadInput) (*entity.Lead, error)
	DeleteLead(ctx context.Context, id int) error
	ListInteractions(ctx context.Context, leadID int) ([]entity.LeadInteraction, error)
	CreateInteraction(ctx context.Context, leadID int, input salesapi.CreateInteractionInput) (*entity.LeadInteraction, error)
}

type ChatGateway interface {
	Chat(ctx context.Context, request salesapi.ChatRequest) (*salesapi.ChatResponse, error)
}

type InstagramGateway interface {
	GetAccount(ctx context.Context) (*entity.InstagramAccount, error)
	UpsertAccount(ctx context.Context, input salesapi.InstagramAccountInput) (*entity.InstagramAccount, error)
	UpdateAccount(ctx context.Context, input salesapi.UpdateInstagramInput) (*entity.InstagramAccount, error)
	Sync(ctx context.Context) (*salesapi.InstagramSyncResponse, error)
}

type AuthGateway interface {
	Login(ctx context.Context, input salesapi.LoginInput) (entity.TokenPair, error)
	Me(ctx context.Context) (*entity.User, error)
	Refresh(ctx context.Context, refreshToken string) (entity.TokenPair, error)
}

// SessionStoreInterface guarda o par de tokens entre sessões
type SessionStoreInterface interface {
	Load() error
	Save(pair entity.TokenPair) error
	Clear() error
	Tokens() entity.TokenPair
	AccessToken() string
}

type EventPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
