package entity

import (
	"errors"
	"time"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusCompleted  LeadStatus = "completed"
)

type LeadSource string

const (
	LeadSourceWebsite LeadSource = "website"
	LeadSourceSocial  LeadSource = "social"
	LeadSourceCall    LeadSource = "call"
	LeadSourceOther   LeadSource = "other"
)

// Ordem fixa das colunas do pipeline (kanban)
func PipelineStatuses() []LeadStatus {
	return []LeadStatus{LeadStatusNew, LeadStatusInProgress, LeadStatusCompleted}
}

func StatusLabel(s LeadStatus) string {
	switch s {
	case LeadStatusNew:
		return "New"
	case LeadStatusInProgress:
		return "In Progress"
	case LeadStatusCompleted:
		return "Completed"
	}
	return string(s)
}

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusInProgress, LeadStatusCompleted:
		return true
	}
	return false
}

func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceSocial, LeadSourceCall, LeadSourceOther:
		return true
	}
	return false
}

// Entidade: Lead
type Lead struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`

	Status LeadStatus `json:"status"`
	Source LeadSource `json:"source,omitempty"`

	SourceData   map[string]interface{} `json:"source_data,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
	Notes        string                 `json:"notes,omitempty"`

	Score         float64 `json:"score,omitempty"`
	ScoreCategory string  `json:"score_category,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if !l.Status.IsValid() {
		return errors.New("status is invalid")
	}
	if l.Source != "" && !l.Source.IsValid() {
		return errors.New("source is invalid")
	}
	return nil
}

func (l *Lead) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DedupeTags preserva a ordem da primeira ocorrência (set semantics)
func DedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
