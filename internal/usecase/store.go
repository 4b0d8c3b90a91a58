package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

// LeadStore é a cópia autoritativa em memória da coleção de leads e do
// histórico do lead ativo. O conteúdo só muda por recarga integral a partir
// do backend (nunca merge parcial) ou pelas mãos do MutationCoordinator.
//
// Cada request HTTP chega numa goroutine própria, então todo acesso ao
// estado passa pelo mutex. As chamadas de rede ficam fora da seção crítica.
//
// Não há fencing de respostas: uma recarga atrasada que chega depois de uma
// mudança mais nova ainda é aplicada. Limitação aceita, não garantia.
type LeadStore struct {
	gateway LeadGateway

	mu           sync.Mutex
	leads        []entity.Lead
	interactions []entity.LeadInteraction
	selected     *entity.Lead
	detail       *DetailContext

	refreshing bool
	lastError  string
}

func NewLeadStore(gateway LeadGateway) *LeadStore {
	return &LeadStore{
		gateway: gateway,
		detail:  NewDetailContext(),
	}
}

// LoadLeads busca a coleção completa e substitui o conteúdo do store de forma
// atômica. Em caso de falha o conteúdo anterior permanece intacto (o board
// nunca fica em branco). No sucesso, re-seleciona um lead — de preferência o
// id anterior, senão o primeiro — e dispara a busca dependente do histórico.
func (s *LeadStore) LoadLeads(ctx context.Context) error {
	s.mu.Lock()
	if s.refreshing {
		// Gatilho duplicado enquanto a recarga anterior está em voo
		s.mu.Unlock()
		return nil
	}
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	response, err := s.gateway.ListLeads(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastError = "Error loading leads list: " + err.Error()
		s.mu.Unlock()
		log.Printf("❌ [STORE] Falha ao recarregar leads: %v", err)
		return err
	}

	s.mu.Lock()
	s.leads = response.Items
	s.lastError = ""

	if len(s.leads) == 0 {
		s.setSelectedLocked(nil)
		s.interactions = nil
		s.mu.Unlock()
		return nil
	}

	target := &s.leads[0]
	if s.selected != nil {
		for i := range s.leads {
			if s.leads[i].ID == s.selected.ID {
				target = &s.leads[i]
				break
			}
		}
	}
	s.setSelectedLocked(target)
	targetID := target.ID
	s.mu.Unlock()

	// Falha na busca dependente não invalida a recarga: o erro fica
	// registrado e o histórico anterior permanece visível.
	s.LoadInteractions(ctx, targetID)
	return nil
}

// LoadInteractions busca e substitui o histórico de um lead. Falha deixa o
// histórico anterior intacto e registra o erro.
func (s *LeadStore) LoadInteractions(ctx context.Context, leadID int) error {
	interactions, err := s.gateway.ListInteractions(ctx, leadID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastError = "Failed to load lead history: " + err.Error()
		return err
	}
	s.interactions = interactions
	return nil
}

// Select ativa um lead pelo id (abrir card no board): seleciona, abre o
// painel de detalhes e recarrega o histórico.
func (s *LeadStore) Select(ctx context.Context, leadID int) error {
	s.mu.Lock()
	found := false
	for i := range s.leads {
		if s.leads[i].ID == leadID {
			s.setSelectedLocked(&s.leads[i])
			s.detail.Open()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}
	return s.LoadInteractions(ctx, leadID)
}

// setSelectedLocked mantém o invariante do DetailContext: toda mudança do
// lead ativo ressincroniza o rascunho (e fecha o painel quando vira nil).
// Chamador segura s.mu.
func (s *LeadStore) setSelectedLocked(lead *entity.Lead) {
	s.selected = lead
	s.detail.SyncFrom(lead)
}

// replaceLead troca o registro confirmado pelo servidor no lugar, sem recarga
// integral. Se o lead ativo é o mesmo, a seleção acompanha.
func (s *LeadStore) replaceLead(updated *entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == updated.ID {
			s.leads[i] = *updated
			if s.selected != nil && s.selected.ID == updated.ID {
				s.setSelectedLocked(&s.leads[i])
			}
			return
		}
	}
}

// clearSelection remove o lead ativo e fecha o painel (pós-delete)
func (s *LeadStore) clearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setSelectedLocked(nil)
	s.interactions = nil
}

// Leads devolve um snapshot da coleção: o chamador pode iterar sem segurar
// o lock enquanto uma recarga troca o conteúdo.
func (s *LeadStore) Leads() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]entity.Lead, len(s.leads))
	copy(snapshot, s.leads)
	return snapshot
}

func (s *LeadStore) Selected() *entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

func (s *LeadStore) Interactions() []entity.LeadInteraction {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]entity.LeadInteraction, len(s.interactions))
	copy(snapshot, s.interactions)
	return snapshot
}

func (s *LeadStore) Detail() *DetailContext {
	return s.detail
}

func (s *LeadStore) IsRefreshing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshing
}

func (s *LeadStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *LeadStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}
