package usecase

import (
	"strings"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

type StatusFilter string

const StatusFilterAll StatusFilter = "all"

func (f StatusFilter) Matches(status entity.LeadStatus) bool {
	return f == StatusFilterAll || entity.LeadStatus(f) == status
}

// FilterLeads é função pura: aplica busca textual + filtro de status sobre a
// coleção, preservando a ordem relativa original. Nada é cacheado aqui — o
// resultado é recalculado a cada mudança da coleção, da busca ou do filtro.
func FilterLeads(leads []entity.Lead, query string, status StatusFilter) []entity.Lead {
	query = strings.ToLower(strings.TrimSpace(query))

	// Filtro desconhecido não esvazia o board: cai pra "all"
	if !statusFilterValid(status) {
		status = StatusFilterAll
	}

	filtered := make([]entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if !matchesQuery(lead, query) {
			continue
		}
		if !status.Matches(lead.Status) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

// Busca case-insensitive por substring em name, email e company
func matchesQuery(lead entity.Lead, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(lead.Name), query) {
		return true
	}
	if lead.Email != "" && strings.Contains(strings.ToLower(lead.Email), query) {
		return true
	}
	if lead.Company != "" && strings.Contains(strings.ToLower(lead.Company), query) {
		return true
	}
	return false
}
