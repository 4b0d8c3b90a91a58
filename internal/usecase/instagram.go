package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/infra/queue"
)

// InstagramManager cuida do singleton de conta Instagram do workspace e da
// sincronização que importa leads com source=social. Estado atrás de mutex;
// chamadas de rede fora da seção crítica.
type InstagramManager struct {
	gateway InstagramGateway
	store   *LeadStore
	events  EventPublisherInterface

	mu      sync.Mutex
	account *entity.InstagramAccount
	message string

	saving  bool
	syncing bool
}

func NewInstagramManager(gateway InstagramGateway, store *LeadStore, events EventPublisherInterface) *InstagramManager {
	return &InstagramManager{
		gateway: gateway,
		store:   store,
		events:  events,
	}
}

// Load busca a conta conectada. Nenhuma conta = estado vazio legítimo.
func (m *InstagramManager) Load(ctx context.Context) error {
	account, err := m.gateway.GetAccount(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.message = "Failed to get Instagram data: " + err.Error()
		return err
	}
	m.account = account
	return nil
}

// Connect cria ou substitui a conexão (upsert pelo contrato do backend)
func (m *InstagramManager) Connect(ctx context.Context, input salesapi.InstagramAccountInput) (*entity.InstagramAccount, error) {
	if validationErrors := ValidateInstagramInput(input.Username); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	m.mu.Lock()
	if m.saving {
		m.mu.Unlock()
		return nil, &DomainError{Code: "BUSY", Message: "instagram account is already being saved"}
	}
	m.saving = true
	m.message = ""
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.saving = false
		m.mu.Unlock()
	}()

	input.Username = strings.TrimSpace(input.Username)

	account, err := m.gateway.UpsertAccount(ctx, input)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.message = "Failed to connect account: " + err.Error()
		return nil, err
	}

	m.account = account
	log.Printf("✅ [INSTAGRAM] Conta @%s conectada (status: %s)", account.Username, account.Status)
	return account, nil
}

func (m *InstagramManager) Update(ctx context.Context, input salesapi.UpdateInstagramInput) (*entity.InstagramAccount, error) {
	account, err := m.gateway.UpdateAccount(ctx, input)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.message = "Failed to update account: " + err.Error()
		return nil, err
	}
	m.account = account
	return account, nil
}

// Sync dispara a importação no backend e depois recarrega a coleção de leads
// uma única vez — os leads novos chegam pela recarga, nunca por patch local.
func (m *InstagramManager) Sync(ctx context.Context) (*salesapi.InstagramSyncResponse, error) {
	m.mu.Lock()
	if m.syncing {
		m.mu.Unlock()
		return nil, &DomainError{Code: "BUSY", Message: "a sync is already in flight"}
	}
	m.syncing = true
	m.message = ""
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.syncing = false
		m.mu.Unlock()
	}()

	response, err := m.gateway.Sync(ctx)
	if err != nil {
		m.mu.Lock()
		m.message = "Failed to sync leads: " + err.Error()
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	m.message = fmt.Sprintf("Leads imported: %d", response.Synced)
	m.mu.Unlock()
	log.Printf("📸 [INSTAGRAM] Sync concluído: %d leads importados", response.Synced)

	if m.events != nil {
		payload := queue.LeadEventPayload{
			Event:       queue.EventInstagramSync,
			SyncedCount: response.Synced,
			OccurredAt:  time.Now(),
		}
		if err := m.events.PublishLeadEvent(ctx, payload); err != nil {
			log.Printf("⚠️ [INSTAGRAM] Falha ao publicar evento de sync: %v", err)
		}
	}

	if err := m.store.LoadLeads(ctx); err != nil {
		log.Printf("⚠️ [INSTAGRAM] Sync ok mas recarga falhou: %v", err)
	}

	return response, nil
}

func (m *InstagramManager) Account() *entity.InstagramAccount {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.account == nil {
		return nil
	}
	account := *m.account
	return &account
}

func (m *InstagramManager) Message() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.message
}

func (m *InstagramManager) IsSaving() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saving
}

func (m *InstagramManager) IsSyncing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncing
}
