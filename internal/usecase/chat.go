package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
)

const chatFallbackReply = "Ready for next questions!"

type ChatMessage struct {
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession mantém o estado do painel de chat com o agente de IA: o log
// visível, o histórico enviado ao backend e o lead usado como contexto.
type ChatSession struct {
	gateway ChatGateway
	store   *LeadStore

	mu       sync.Mutex
	leadID   int // 0 = sem contexto de lead
	history  []salesapi.ChatHistoryMessage
	messages []ChatMessage

	loading   bool
	lastError string

	now func() time.Time
}

func NewChatSession(gateway ChatGateway, store *LeadStore) *ChatSession {
	return &ChatSession{
		gateway: gateway,
		store:   store,
		now:     time.Now,
	}
}

// Send envia a mensagem com o histórico acumulado até ela (a mensagem atual
// vai em campo próprio, não dentro do history). Quando o lead de contexto é
// o lead ativo, o histórico de interações dele é recarregado depois da
// resposta — o backend pode ter gravado uma interação de IA acompanhante.
func (s *ChatSession) Send(ctx context.Context, message string) (*salesapi.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ValidationError{"message", "is required"}
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, &DomainError{Code: "BUSY", Message: "a chat request is already in flight"}
	}
	s.loading = true
	s.lastError = ""

	historySnapshot := make([]salesapi.ChatHistoryMessage, len(s.history))
	copy(historySnapshot, s.history)

	s.appendMessageLocked("user", message)
	leadID := s.leadID
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	response, err := s.gateway.Chat(ctx, salesapi.ChatRequest{
		Message: message,
		LeadID:  leadID,
		History: historySnapshot,
	})
	if err != nil {
		s.mu.Lock()
		s.lastError = "AI agent temporarily unavailable: " + err.Error()
		s.mu.Unlock()
		return nil, err
	}

	reply := response.Reply
	if reply == "" {
		reply = chatFallbackReply
	}
	s.mu.Lock()
	s.appendMessageLocked("assistant", reply)
	s.mu.Unlock()

	if leadID != 0 {
		if selected := s.store.Selected(); selected != nil && selected.ID == leadID {
			s.store.LoadInteractions(ctx, leadID)
		}
	}

	return response, nil
}

// appendMessageLocked anexa ao log visível e ao histórico de fio ao mesmo
// tempo. Chamador segura s.mu.
func (s *ChatSession) appendMessageLocked(role, content string) {
	s.messages = append(s.messages, ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	})
	s.history = append(s.history, salesapi.ChatHistoryMessage{
		Role:    role,
		Content: content,
	})
}

// Reset limpa a thread (botão "Reset Thread")
func (s *ChatSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.history = nil
	s.lastError = ""
}

// SetLeadContext define o lead anexado às próximas mensagens (0 remove)
func (s *ChatSession) SetLeadContext(leadID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leadID = leadID
}

func (s *ChatSession) LeadContext() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leadID
}

func (s *ChatSession) Messages() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]ChatMessage, len(s.messages))
	copy(snapshot, s.messages)
	return snapshot
}

func (s *ChatSession) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ChatSession) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
