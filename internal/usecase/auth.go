package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
)

// SessionManager é o ciclo de vida explícito da sessão: Restore no startup,
// Login/Logout sob demanda. Nada de singleton de módulo segurando token —
// quem precisa do token recebe o store como TokenSource.
type SessionManager struct {
	gateway AuthGateway
	tokens  SessionStoreInterface

	mu   sync.Mutex
	user *entity.User
}

func NewSessionManager(gateway AuthGateway, tokens SessionStoreInterface) *SessionManager {
	return &SessionManager{
		gateway: gateway,
		tokens:  tokens,
	}
}

// Restore tenta reabrir a sessão persistida. Sem token salvo retorna
// (nil, nil). Token rejeitado pelo backend → storage limpo, sessão encerrada.
func (m *SessionManager) Restore(ctx context.Context) (*entity.User, error) {
	if err := m.tokens.Load(); err != nil {
		return nil, err
	}

	if m.tokens.Tokens().IsEmpty() {
		return nil, nil
	}

	user, err := m.gateway.Me(ctx)
	if err != nil {
		log.Printf("⚠️ [SESSION] Token salvo rejeitado, limpando sessão: %v", err)
		m.tokens.Clear()
		return nil, nil
	}

	m.setUser(user)
	log.Printf("✅ [SESSION] Sessão restaurada para %s", user.Email)
	return user, nil
}

func (m *SessionManager) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if validationErrors := ValidateLoginInput(email, password); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	pair, err := m.gateway.Login(ctx, salesapi.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err := m.tokens.Save(pair); err != nil {
		return nil, &TechnicalError{Code: "SESSION_SAVE", Message: "failed to persist session: " + err.Error()}
	}

	user, err := m.gateway.Me(ctx)
	if err != nil {
		return nil, err
	}

	m.setUser(user)
	log.Printf("✅ [SESSION] Login de %s", user.Email)
	return user, nil
}

// Refresh troca o refresh token por um par novo
func (m *SessionManager) Refresh(ctx context.Context) error {
	refreshToken := m.tokens.Tokens().RefreshToken
	if refreshToken == "" {
		return &DomainError{Code: "NO_REFRESH_TOKEN", Message: "no refresh token available"}
	}

	pair, err := m.gateway.Refresh(ctx, refreshToken)
	if err != nil {
		return err
	}

	return m.tokens.Save(pair)
}

func (m *SessionManager) Logout() {
	if err := m.tokens.Clear(); err != nil {
		log.Printf("⚠️ [SESSION] Falha ao limpar sessão: %v", err)
	}
	m.setUser(nil)
}

func (m *SessionManager) setUser(user *entity.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
}

func (m *SessionManager) CurrentUser() *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *SessionManager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}
