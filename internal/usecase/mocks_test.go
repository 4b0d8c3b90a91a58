package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/infra/queue"
)

// MockLeadGateway
type MockLeadGateway struct {
	mock.Mock
}

func (m *MockLeadGateway) ListLeads(ctx context.Context) (*salesapi.LeadListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*salesapi.LeadListResponse), args.Error(1)
}

func (m *MockLeadGateway) CreateLead(ctx context.Context, input salesapi.CreateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadGateway) UpdateLead(ctx context.Context, id int, input salesapi.UpdateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadGateway) DeleteLead(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadGateway) ListInteractions(ctx context.Context, leadID int) ([]entity.LeadInteraction, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeadInteraction), args.Error(1)
}

func (m *MockLeadGateway) CreateInteraction(ctx context.Context, leadID int, input salesapi.CreateInteractionInput) (*entity.LeadInteraction, error) {
	args := m.Called(ctx, leadID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadInteraction), args.Error(1)
}

// MockChatGateway
type MockChatGateway struct {
	mock.Mock
}

func (m *MockChatGateway) Chat(ctx context.Context, request salesapi.ChatRequest) (*salesapi.ChatResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*salesapi.ChatResponse), args.Error(1)
}

// MockInstagramGateway
type MockInstagramGateway struct {
	mock.Mock
}

func (m *MockInstagramGateway) GetAccount(ctx context.Context) (*entity.InstagramAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InstagramAccount), args.Error(1)
}

func (m *MockInstagramGateway) UpsertAccount(ctx context.Context, input salesapi.InstagramAccountInput) (*entity.InstagramAccount, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InstagramAccount), args.Error(1)
}

func (m *MockInstagramGateway) UpdateAccount(ctx context.Context, input salesapi.UpdateInstagramInput) (*entity.InstagramAccount, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InstagramAccount), args.Error(1)
}

func (m *MockInstagramGateway) Sync(ctx context.Context) (*salesapi.InstagramSyncResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*salesapi.InstagramSyncResponse), args.Error(1)
}

// MockAuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Login(ctx context.Context, input salesapi.LoginInput) (entity.TokenPair, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(entity.TokenPair), args.Error(1)
}

func (m *MockAuthGateway) Me(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthGateway) Refresh(ctx context.Context, refreshToken string) (entity.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(entity.TokenPair), args.Error(1)
}

// MockSessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSessionStore) Save(pair entity.TokenPair) error {
	args := m.Called(pair)
	return args.Error(0)
}

func (m *MockSessionStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSessionStore) Tokens() entity.TokenPair {
	args := m.Called()
	return args.Get(0).(entity.TokenPair)
}

func (m *MockSessionStore) AccessToken() string {
	args := m.Called()
	return args.String(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
