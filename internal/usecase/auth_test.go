package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

// TestRestoreNoSavedSession - sem token salvo não há sessão nem erro
func TestRestoreNoSavedSession(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	mockTokens.On("Load").Return(nil)
	mockTokens.On("Tokens").Return(entity.TokenPair{})

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	user, err := manager.Restore(ctx)

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, manager.IsAuthenticated())
	mockAuth.AssertNotCalled(t, "Me", ctx)
}

// TestRestoreSuccess
func TestRestoreSuccess(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	mockTokens.On("Load").Return(nil)
	mockTokens.On("Tokens").Return(entity.TokenPair{AccessToken: "abc", RefreshToken: "def"})
	mockAuth.On("Me", ctx).Return(&entity.User{ID: 1, Email: "admin@acme.com", Name: "Admin"}, nil)

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	user, err := manager.Restore(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "admin@acme.com", user.Email)
	assert.True(t, manager.IsAuthenticated())
}

// TestRestoreRejectedTokenClearsStorage - token rejeitado pelo backend limpa
// o storage e encerra a sessão sem propagar erro
func TestRestoreRejectedTokenClearsStorage(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	mockTokens.On("Load").Return(nil)
	mockTokens.On("Tokens").Return(entity.TokenPair{AccessToken: "expirado"})
	mockTokens.On("Clear").Return(nil)
	mockAuth.On("Me", ctx).Return(nil, errors.New("401 unauthorized"))

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	user, err := manager.Restore(ctx)

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, manager.IsAuthenticated())
	mockTokens.AssertCalled(t, "Clear")
}

// TestLoginSuccess - login persiste o par de tokens e carrega o perfil
func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	pair := entity.TokenPair{AccessToken: "abc", RefreshToken: "def", TokenType: "bearer"}
	mockAuth.On("Login", ctx, salesapi.LoginInput{Email: "admin@acme.com", Password: "secret"}).Return(pair, nil)
	mockTokens.On("Save", pair).Return(nil)
	mockAuth.On("Me", ctx).Return(&entity.User{ID: 1, Email: "admin@acme.com"}, nil)

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	user, err := manager.Login(ctx, "admin@acme.com", "secret")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.True(t, manager.IsAuthenticated())
	mockTokens.AssertCalled(t, "Save", pair)
}

// TestLoginValidation - credenciais vazias nem chegam ao backend
func TestLoginValidation(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	user, err := manager.Login(ctx, "", "")

	assert.Error(t, err)
	assert.Nil(t, user)
	mockAuth.AssertNotCalled(t, "Login", ctx, mock.Anything)
}

// TestLoginBadCredentials
func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	mockAuth.On("Login", ctx, mock.Anything).Return(entity.TokenPair{}, errors.New("invalid credentials"))

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	user, err := manager.Login(ctx, "admin@acme.com", "errada")

	assert.Error(t, err)
	assert.Nil(t, user)
	mockTokens.AssertNotCalled(t, "Save", mock.Anything)
}

// TestRefreshWithoutToken
func TestRefreshWithoutToken(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	mockTokens.On("Tokens").Return(entity.TokenPair{})

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	err := manager.Refresh(ctx)

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	mockAuth.AssertNotCalled(t, "Refresh", ctx, mock.Anything)
}

// TestRefreshSuccess - o par novo substitui o persistido
func TestRefreshSuccess(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	mockTokens.On("Tokens").Return(entity.TokenPair{AccessToken: "velho", RefreshToken: "refresh-1"})

	renewed := entity.TokenPair{AccessToken: "novo", RefreshToken: "refresh-2"}
	mockAuth.On("Refresh", ctx, "refresh-1").Return(renewed, nil)
	mockTokens.On("Save", renewed).Return(nil)

	manager := usecase.NewSessionManager(mockAuth, mockTokens)

	err := manager.Refresh(ctx)

	assert.NoError(t, err)
	mockTokens.AssertCalled(t, "Save", renewed)
}

// TestLogout
func TestLogout(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthGateway)
	mockTokens := new(MockSessionStore)

	mockTokens.On("Load").Return(nil)
	mockTokens.On("Tokens").Return(entity.TokenPair{AccessToken: "abc"})
	mockTokens.On("Clear").Return(nil)
	mockAuth.On("Me", ctx).Return(&entity.User{ID: 1, Email: "admin@acme.com"}, nil)

	manager := usecase.NewSessionManager(mockAuth, mockTokens)
	_, err := manager.Restore(ctx)
	assert.NoError(t, err)
	assert.True(t, manager.IsAuthenticated())

	manager.Logout()

	assert.False(t, manager.IsAuthenticated())
	assert.Nil(t, manager.CurrentUser())
	mockTokens.AssertCalled(t, "Clear")
}
