package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

func listResponse(leads ...entity.Lead) *salesapi.LeadListResponse {
	return &salesapi.LeadListResponse{
		Items: leads,
		Total: len(leads),
		Page:  1,
		Size:  100,
		Pages: 1,
	}
}

// TestLoadLeadsReplacesAndSelectsFirst - primeira recarga seleciona o primeiro
// lead e dispara a busca dependente do histórico
func TestLoadLeadsReplacesAndSelectsFirst(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Status: entity.LeadStatusNew},
		entity.Lead{ID: 2, Name: "Bruno", Status: entity.LeadStatusNew},
	), nil)
	mockGateway.On("ListInteractions", ctx, 1).Return([]entity.LeadInteraction{
		{ID: 10, LeadID: 1, AuthorType: entity.InteractionAuthorAdmin, Message: "primeiro contato"},
	}, nil)

	store := usecase.NewLeadStore(mockGateway)

	err := store.LoadLeads(ctx)

	assert.NoError(t, err)
	assert.Len(t, store.Leads(), 2)
	assert.NotNil(t, store.Selected())
	assert.Equal(t, 1, store.Selected().ID)
	assert.Len(t, store.Interactions(), 1)
	assert.Empty(t, store.LastError())

	mockGateway.AssertCalled(t, "ListInteractions", ctx, 1)
}

// TestLoadLeadskeepsSelection - a seleção anterior sobrevive à recarga quando
// o mesmo id ainda existe na coleção nova
func TestLoadLeadsKeepsSelection(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Status: entity.LeadStatusNew},
		entity.Lead{ID: 2, Name: "Bruno", Status: entity.LeadStatusNew},
	), nil).Once()
	mockGateway.On("ListInteractions", ctx, mock.Anything).Return([]entity.LeadInteraction{}, nil)

	store := usecase.NewLeadStore(mockGateway)
	assert.NoError(t, store.LoadLeads(ctx))
	assert.NoError(t, store.Select(ctx, 2))

	// Segunda recarga: o lead 2 mudou de status mas continua presente
	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 2, Name: "Bruno", Status: entity.LeadStatusInProgress},
		entity.Lead{ID: 3, Name: "Carla", Status: entity.LeadStatusNew},
	), nil).Once()

	assert.NoError(t, store.LoadLeads(ctx))
	assert.NotNil(t, store.Selected())
	assert.Equal(t, 2, store.Selected().ID)
	assert.Equal(t, entity.LeadStatusInProgress, store.Selected().Status)
}

// TestLoadLeadsSelectionGone - id selecionado sumiu → cai pro primeiro da lista
func TestLoadLeadsSelectionGone(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Status: entity.LeadStatusNew},
		entity.Lead{ID: 2, Name: "Bruno", Status: entity.LeadStatusNew},
	), nil).Once()
	mockGateway.On("ListInteractions", ctx, mock.Anything).Return([]entity.LeadInteraction{}, nil)

	store := usecase.NewLeadStore(mockGateway)
	assert.NoError(t, store.LoadLeads(ctx))
	assert.NoError(t, store.Select(ctx, 2))

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 3, Name: "Carla", Status: entity.LeadStatusNew},
	), nil).Once()

	assert.NoError(t, store.LoadLeads(ctx))
	assert.NotNil(t, store.Selected())
	assert.Equal(t, 3, store.Selected().ID)
}

// TestLoadLeadsEmptyCollection - coleção vazia limpa seleção e histórico
func TestLoadLeadsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(), nil)

	store := usecase.NewLeadStore(mockGateway)

	assert.NoError(t, store.LoadLeads(ctx))
	assert.Empty(t, store.Leads())
	assert.Nil(t, store.Selected())
	assert.Empty(t, store.Interactions())
	assert.False(t, store.Detail().IsOpen())

	mockGateway.AssertNotCalled(t, "ListInteractions", ctx, mock.Anything)
}

// TestLoadLeadsFailureKeepsData - falha na recarga mantém o conteúdo anterior
// intacto e registra o erro
func TestLoadLeadsFailureKeepsData(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Status: entity.LeadStatusNew},
	), nil).Once()
	mockGateway.On("ListInteractions", ctx, 1).Return([]entity.LeadInteraction{}, nil)

	store := usecase.NewLeadStore(mockGateway)
	assert.NoError(t, store.LoadLeads(ctx))

	mockGateway.On("ListLeads", ctx).Return(nil, errors.New("connection refused")).Once()

	err := store.LoadLeads(ctx)

	assert.Error(t, err)
	assert.Len(t, store.Leads(), 1)
	assert.NotNil(t, store.Selected())
	assert.Contains(t, store.LastError(), "Error loading leads list")
}

// TestSelectOpensDetail - selecionar abre o painel e sincroniza o rascunho
func TestSelectOpensDetail(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Company: "Acme", Status: entity.LeadStatusNew, Tags: []string{"vip"}},
		entity.Lead{ID: 2, Name: "Bruno", Status: entity.LeadStatusInProgress},
	), nil)
	mockGateway.On("ListInteractions", ctx, mock.Anything).Return([]entity.LeadInteraction{}, nil)

	store := usecase.NewLeadStore(mockGateway)
	assert.NoError(t, store.LoadLeads(ctx))

	assert.NoError(t, store.Select(ctx, 2))

	assert.Equal(t, 2, store.Selected().ID)
	assert.True(t, store.Detail().IsOpen())
	assert.Equal(t, "Bruno", store.Detail().Draft().Name)
	assert.Equal(t, entity.LeadStatusInProgress, store.Detail().Draft().Status)
}

// TestSelectUnknownLead - id desconhecido é erro de domínio, estado intacto
func TestSelectUnknownLead(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Status: entity.LeadStatusNew},
	), nil)
	mockGateway.On("ListInteractions", ctx, 1).Return([]entity.LeadInteraction{}, nil)

	store := usecase.NewLeadStore(mockGateway)
	assert.NoError(t, store.LoadLeads(ctx))

	err := store.Select(ctx, 999)

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, 1, store.Selected().ID)
}

// TestLoadInteractionsFailureKeepsHistory - falha na busca do histórico deixa
// o histórico anterior visível
func TestLoadInteractionsFailureKeepsHistory(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Status: entity.LeadStatusNew},
	), nil)
	mockGateway.On("ListInteractions", ctx, 1).Return([]entity.LeadInteraction{
		{ID: 10, LeadID: 1, AuthorType: entity.InteractionAuthorAdmin, Message: "oi"},
	}, nil).Once()

	store := usecase.NewLeadStore(mockGateway)
	assert.NoError(t, store.LoadLeads(ctx))
	assert.Len(t, store.Interactions(), 1)

	mockGateway.On("ListInteractions", ctx, 1).Return(nil, errors.New("timeout")).Once()

	err := store.LoadInteractions(ctx, 1)

	assert.Error(t, err)
	assert.Len(t, store.Interactions(), 1)
	assert.Contains(t, store.LastError(), "Failed to load lead history")
}

// TestLoadLeadsConcurrentReaders - o router atende cada request numa goroutine
// própria, então recargas e leituras simultâneas precisam conviver sem
// corromper o estado. Rodar com -race cobre o acesso compartilhado.
func TestLoadLeadsConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockLeadGateway)

	mockGateway.On("ListLeads", ctx).Return(listResponse(
		entity.Lead{ID: 1, Name: "Ana", Status: entity.LeadStatusNew},
		entity.Lead{ID: 2, Name: "Bruno", Status: entity.LeadStatusInProgress},
	), nil)
	mockGateway.On("ListInteractions", ctx, mock.Anything).Return([]entity.LeadInteraction{}, nil)

	store := usecase.NewLeadStore(mockGateway)
	assert.NoError(t, store.LoadLeads(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.LoadLeads(ctx)
		}()
		go func() {
			defer wg.Done()
			_ = store.IsRefreshing()
			for range store.Leads() {
			}
			if selected := store.Selected(); selected != nil {
				_ = selected.ID
			}
			_ = store.LastError()
		}()
	}
	wg.Wait()

	assert.Len(t, store.Leads(), 2)
	assert.NotNil(t, store.Selected())
	assert.Equal(t, 1, store.Selected().ID)
	assert.False(t, store.IsRefreshing())
}
