package usecase

import (
	"sync"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

// LeadDraft é a cópia editável dos campos do lead ativo. Nunca é gravada de
// volta no store: só sai daqui via SaveDraft do MutationCoordinator.
type LeadDraft struct {
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Company string            `json:"company"`
	Status  entity.LeadStatus `json:"status"`
	Source  entity.LeadSource `json:"source"`
	Notes   string            `json:"notes"`
	Tags    []string          `json:"tags"`
}

// EmptyDraft é o template do formulário de lead novo
func EmptyDraft() LeadDraft {
	return LeadDraft{
		Status: entity.LeadStatusNew,
		Source: entity.LeadSourceWebsite,
		Tags:   []string{"new"},
	}
}

// DetailContext é compartilhado entre as goroutines de request do router,
// então o estado do painel fica atrás do próprio mutex. O lock nunca chama
// de volta o store: é sempre a ponta da cadeia.
type DetailContext struct {
	mu    sync.Mutex
	open  bool
	draft LeadDraft
}

func NewDetailContext() *DetailContext {
	return &DetailContext{draft: EmptyDraft()}
}

// SyncFrom ressincroniza o rascunho sempre que o lead ativo muda.
// Lead nenhum → rascunho volta ao template vazio e o painel fecha.
func (d *DetailContext) SyncFrom(lead *entity.Lead) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if lead == nil {
		d.draft = EmptyDraft()
		d.open = false
		return
	}

	source := lead.Source
	if source == "" {
		source = entity.LeadSourceWebsite
	}

	tags := make([]string, len(lead.Tags))
	copy(tags, lead.Tags)

	d.draft = LeadDraft{
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Company: lead.Company,
		Status:  lead.Status,
		Source:  source,
		Notes:   lead.Notes,
		Tags:    tags,
	}
}

func (d *DetailContext) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
}

func (d *DetailContext) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
}

func (d *DetailContext) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *DetailContext) Draft() LeadDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

func (d *DetailContext) SetDraft(draft LeadDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = draft
}
