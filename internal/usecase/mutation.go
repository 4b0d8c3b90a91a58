package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/infra/queue"
)

type CreateLeadInput struct {
	Name    string            `json:"name"`
	Email   string            `json:"email,omitempty"`
	Phone   string            `json:"phone,omitempty"`
	Company string            `json:"company,omitempty"`
	Status  entity.LeadStatus `json:"status,omitempty"`
	Source  entity.LeadSource `json:"source,omitempty"`
	Notes   string            `json:"notes,omitempty"`
	Tags    []string          `json:"tags,omitempty"`
}

type UpdateLeadInput = salesapi.UpdateLeadInput

// MutationCoordinator aplica create/update/delete contra o backend e
// reconcilia o LeadStore depois. A regra de consistência é deliberada:
// depois de criar, deletar ou sincronizar, o store é recarregado por inteiro
// a partir do servidor — a projeção sempre deriva de estado confirmado.
type MutationCoordinator struct {
	gateway LeadGateway
	store   *LeadStore
	events  EventPublisherInterface // opcional: nil desliga a publicação

	// As flags de ocupado são checadas-e-armadas sob o mutex; a chamada de
	// rede roda fora da seção crítica, então um segundo request concorrente
	// recebe BUSY em vez de enfileirar.
	mu                sync.Mutex
	saving            bool
	updating          bool
	deleting          bool
	interactionSaving bool
}

func NewMutationCoordinator(gateway LeadGateway, store *LeadStore, events EventPublisherInterface) *MutationCoordinator {
	return &MutationCoordinator{
		gateway: gateway,
		store:   store,
		events:  events,
	}
}

// CreateLead valida, aplica defaults (status=new, source=website), deduplica
// as tags e submete. No sucesso recarrega a coleção inteira.
func (c *MutationCoordinator) CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return nil, &DomainError{Code: "BUSY", Message: "a lead is already being saved"}
	}
	c.saving = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.saving = false
		c.mu.Unlock()
	}()

	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	status := input.Status
	if status == "" {
		status = entity.LeadStatusNew
	}
	source := input.Source
	if source == "" {
		source = entity.LeadSourceWebsite
	}

	lead, err := c.gateway.CreateLead(ctx, salesapi.CreateLeadInput{
		Name:    strings.TrimSpace(input.Name),
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Status:  status,
		Source:  source,
		Notes:   input.Notes,
		Tags:    entity.DedupeTags(input.Tags),
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, queue.LeadEventPayload{
		Event:   queue.EventLeadCreated,
		LeadID:  lead.ID,
		Name:    lead.Name,
		Company: lead.Company,
		Status:  string(lead.Status),
		Source:  string(lead.Source),
	})

	if err := c.store.LoadLeads(ctx); err != nil {
		// O lead foi criado; a recarga falhou mas será reaproveitada no
		// próximo refresh. O erro já ficou registrado no store.
		log.Printf("⚠️ [MUTATION] Lead criado mas recarga falhou: %v", err)
	}

	return lead, nil
}

// QuickAddLead é o atalho do dashboard: só nome + empresa, resto padrão
func (c *MutationCoordinator) QuickAddLead(ctx context.Context, name, company string) (*entity.Lead, error) {
	return c.CreateLead(ctx, CreateLeadInput{
		Name:    strings.TrimSpace(name),
		Company: strings.TrimSpace(company),
		Status:  entity.LeadStatusNew,
		Source:  entity.LeadSourceWebsite,
		Tags:    []string{"new"},
	})
}

// UpdateLead aplica um patch parcial. No sucesso o registro confirmado pelo
// servidor substitui o local no lugar (sem recarga integral) e a seleção
// acompanha se for o mesmo lead. SaveDraft, AddTag e RemoveTag passam por
// aqui, então a flag de update cobre as três rotas.
func (c *MutationCoordinator) UpdateLead(ctx context.Context, id int, patch UpdateLeadInput) (*entity.Lead, error) {
	c.mu.Lock()
	if c.updating {
		c.mu.Unlock()
		return nil, &DomainError{Code: "BUSY", Message: "an update is already in flight"}
	}
	c.updating = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.updating = false
		c.mu.Unlock()
	}()

	updated, err := c.gateway.UpdateLead(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	c.store.replaceLead(updated)

	c.publish(ctx, queue.LeadEventPayload{
		Event:  queue.EventLeadUpdated,
		LeadID: updated.ID,
		Name:   updated.Name,
		Status: string(updated.Status),
	})

	return updated, nil
}

// SaveDraft grava o rascunho do painel de detalhes no lead ativo.
// Única rota pela qual o rascunho volta pro servidor.
func (c *MutationCoordinator) SaveDraft(ctx context.Context) (*entity.Lead, error) {
	selected := c.store.Selected()
	if selected == nil {
		return nil, &DomainError{Code: "NO_SELECTION", Message: "no lead selected"}
	}

	draft := c.store.Detail().Draft()
	if strings.TrimSpace(draft.Name) == "" {
		return nil, ValidationError{"name", "is required"}
	}

	return c.UpdateLead(ctx, selected.ID, UpdateLeadInput{
		Name:    &draft.Name,
		Email:   &draft.Email,
		Phone:   &draft.Phone,
		Company: &draft.Company,
		Status:  &draft.Status,
		Source:  &draft.Source,
		Notes:   &draft.Notes,
	})
}

// DeleteLead exige confirmação explícita do chamador. Remove as referências
// locais, fecha o painel de detalhes e recarrega a coleção.
func (c *MutationCoordinator) DeleteLead(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return &DomainError{Code: "NOT_CONFIRMED", Message: "delete requires confirmation"}
	}
	c.mu.Lock()
	if c.deleting {
		c.mu.Unlock()
		return &DomainError{Code: "BUSY", Message: "a delete is already in flight"}
	}
	c.deleting = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.deleting = false
		c.mu.Unlock()
	}()

	if err := c.gateway.DeleteLead(ctx, id); err != nil {
		return err
	}

	if selected := c.store.Selected(); selected != nil && selected.ID == id {
		c.store.clearSelection()
	}
	c.store.Detail().Close()

	c.publish(ctx, queue.LeadEventPayload{
		Event:  queue.EventLeadDeleted,
		LeadID: id,
	})

	if err := c.store.LoadLeads(ctx); err != nil {
		log.Printf("⚠️ [MUTATION] Lead removido mas recarga falhou: %v", err)
	}

	return nil
}

// AddTag faz união de conjunto: tag já presente é no-op (idempotente).
// A lista resultante é submetida como substituição integral do atributo.
func (c *MutationCoordinator) AddTag(ctx context.Context, leadID int, tag string) error {
	if validationErrors := ValidateTag(tag); len(validationErrors) > 0 {
		return validationErrors[0]
	}
	tag = strings.TrimSpace(tag)

	lead := c.findLead(leadID)
	if lead == nil {
		return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}
	if lead.HasTag(tag) {
		return nil
	}

	tags := entity.DedupeTags(append(append([]string{}, lead.Tags...), tag))
	_, err := c.UpdateLead(ctx, leadID, UpdateLeadInput{Tags: &tags})
	return err
}

// RemoveTag sobre tag ausente é no-op
func (c *MutationCoordinator) RemoveTag(ctx context.Context, leadID int, tag string) error {
	lead := c.findLead(leadID)
	if lead == nil {
		return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}
	if !lead.HasTag(tag) {
		return nil
	}

	tags := make([]string, 0, len(lead.Tags))
	for _, t := range lead.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	_, err := c.UpdateLead(ctx, leadID, UpdateLeadInput{Tags: &tags})
	return err
}

// CreateInteraction submete a mensagem e depois RECARREGA o histórico do
// servidor em vez de anexar localmente: a ordem confirmada e os campos
// atribuídos pelo backend (ex.: resposta de IA acompanhante) sempre aparecem.
func (c *MutationCoordinator) CreateInteraction(ctx context.Context, leadID int, message string, author entity.InteractionAuthor) error {
	c.mu.Lock()
	if c.interactionSaving {
		c.mu.Unlock()
		return &DomainError{Code: "BUSY", Message: "an interaction is already being saved"}
	}
	c.interactionSaving = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.interactionSaving = false
		c.mu.Unlock()
	}()

	if validationErrors := ValidateInteractionMessage(message); len(validationErrors) > 0 {
		return validationErrors[0]
	}
	if author == "" {
		author = entity.InteractionAuthorAdmin
	}

	_, err := c.gateway.CreateInteraction(ctx, leadID, salesapi.CreateInteractionInput{
		Message:    strings.TrimSpace(message),
		AuthorType: author,
	})
	if err != nil {
		return err
	}

	c.publish(ctx, queue.LeadEventPayload{
		Event:  queue.EventInteractionNew,
		LeadID: leadID,
	})

	return c.store.LoadInteractions(ctx, leadID)
}

func (c *MutationCoordinator) IsSaving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

func (c *MutationCoordinator) IsUpdating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updating
}

func (c *MutationCoordinator) IsDeleting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleting
}

func (c *MutationCoordinator) IsInteractionSaving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interactionSaving
}

func (c *MutationCoordinator) findLead(id int) *entity.Lead {
	leads := c.store.Leads()
	for i := range leads {
		if leads[i].ID == id {
			return &leads[i]
		}
	}
	return nil
}

// publish é fire-and-forget: evento é cortesia, mutação nunca falha por ele
func (c *MutationCoordinator) publish(ctx context.Context, payload queue.LeadEventPayload) {
	if c.events == nil {
		return
	}
	payload.OccurredAt = time.Now()
	if err := c.events.PublishLeadEvent(ctx, payload); err != nil {
		log.Printf("⚠️ [MUTATION] Falha ao publicar evento %s: %v", payload.Event, err)
	}
}
