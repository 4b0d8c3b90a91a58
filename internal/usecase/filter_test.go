package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{ID: 1, Name: "Ana Souza", Email: "ana@acme.com", Company: "Acme", Status: entity.LeadStatusNew},
		{ID: 2, Name: "Bruno Lima", Email: "bruno@globex.com", Company: "Globex", Status: entity.LeadStatusInProgress},
		{ID: 3, Name: "Carla Mendes", Email: "carla@acme.com", Company: "Acme", Status: entity.LeadStatusCompleted},
	}
}

// TestFilterLeadsAll - filtro "all" com busca vazia devolve tudo na mesma ordem
func TestFilterLeadsAll(t *testing.T) {
	filtered := usecase.FilterLeads(sampleLeads(), "", usecase.StatusFilterAll)

	assert.Len(t, filtered, 3)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 2, filtered[1].ID)
	assert.Equal(t, 3, filtered[2].ID)
}

// TestFilterLeadsByQuery - substring case-insensitive em name, email e company
func TestFilterLeadsByQuery(t *testing.T) {
	byName := usecase.FilterLeads(sampleLeads(), "BRUNO", usecase.StatusFilterAll)
	assert.Len(t, byName, 1)
	assert.Equal(t, 2, byName[0].ID)

	byEmail := usecase.FilterLeads(sampleLeads(), "globex.com", usecase.StatusFilterAll)
	assert.Len(t, byEmail, 1)
	assert.Equal(t, 2, byEmail[0].ID)

	byCompany := usecase.FilterLeads(sampleLeads(), "acme", usecase.StatusFilterAll)
	assert.Len(t, byCompany, 2)
}

func TestFilterLeadsByStatus(t *testing.T) {
	filtered := usecase.FilterLeads(sampleLeads(), "", usecase.StatusFilter(entity.LeadStatusCompleted))

	assert.Len(t, filtered, 1)
	assert.Equal(t, 3, filtered[0].ID)
}

// TestFilterLeadsCombined - busca e status se acumulam (AND)
func TestFilterLeadsCombined(t *testing.T) {
	filtered := usecase.FilterLeads(sampleLeads(), "acme", usecase.StatusFilter(entity.LeadStatusNew))

	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}

func TestFilterLeadsNoMatch(t *testing.T) {
	filtered := usecase.FilterLeads(sampleLeads(), "inexistente", usecase.StatusFilterAll)
	assert.Empty(t, filtered)
}

// TestFilterLeadsUnknownStatus - status desconhecido cai pra "all"
func TestFilterLeadsUnknownStatus(t *testing.T) {
	filtered := usecase.FilterLeads(sampleLeads(), "", usecase.StatusFilter("arquivado"))
	assert.Len(t, filtered, 3)
}

// TestFilterLeadsTrimsQuery - espaços em volta da busca são ignorados
func TestFilterLeadsTrimsQuery(t *testing.T) {
	filtered := usecase.FilterLeads(sampleLeads(), "  ana  ", usecase.StatusFilterAll)
	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}
