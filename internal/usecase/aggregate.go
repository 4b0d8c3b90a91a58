package usecase

import (
	"math"
	"time"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

// Camada de agregação do pipeline. Todas as funções são puras e recalculadas
// sob demanda — os resultados são snapshots derivados, nunca mutados.
//
// Assimetria intencional: PipelineSummary e SummaryTotals operam sobre a
// coleção FILTRADA (o board visível); ComputeLeadStats, WeeklyActivity e
// StatusDistribution operam sobre a coleção COMPLETA (saúde do workspace).

type PipelineColumn struct {
	Status entity.LeadStatus `json:"status"`
	Label  string            `json:"label"`
	Count  int               `json:"count"`
	Amount float64           `json:"amount"`
}

type PipelineTotals struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type LeadStats struct {
	Total          int `json:"total"`
	New            int `json:"new"`
	InProgress     int `json:"in_progress"`
	Completed      int `json:"completed"`
	Social         int `json:"social"`
	AverageScore   int `json:"average_score"`
	ConversionRate int `json:"conversion_rate"`
}

type ActivityDay struct {
	Label string `json:"label"` // weekday curto: Mon, Tue...
	Date  string `json:"date"`  // YYYY-MM-DD
	Count int    `json:"count"`
}

type DistributionItem struct {
	Status entity.LeadStatus `json:"status"`
	Label  string            `json:"label"`
	Count  int               `json:"count"`
}

// PipelineSummary agrupa a coleção filtrada nas três colunas do kanban,
// somando os scores (score ausente conta como 0).
func PipelineSummary(filtered []entity.Lead) []PipelineColumn {
	columns := make([]PipelineColumn, 0, 3)
	for _, status := range entity.PipelineStatuses() {
		column := PipelineColumn{Status: status, Label: entity.StatusLabel(status)}
		for _, lead := range filtered {
			if lead.Status == status {
				column.Count++
				column.Amount += lead.Score
			}
		}
		columns = append(columns, column)
	}
	return columns
}

func SummaryTotals(summary []PipelineColumn) PipelineTotals {
	var totals PipelineTotals
	for _, column := range summary {
		totals.Count += column.Count
		totals.Amount += column.Amount
	}
	return totals
}

// ComputeLeadStats calcula os indicadores globais sobre a coleção SEM filtro.
func ComputeLeadStats(leads []entity.Lead) LeadStats {
	stats := LeadStats{Total: len(leads)}

	var scoreSum float64
	for _, lead := range leads {
		switch lead.Status {
		case entity.LeadStatusNew:
			stats.New++
		case entity.LeadStatusInProgress:
			stats.InProgress++
		case entity.LeadStatusCompleted:
			stats.Completed++
		}
		if lead.Source == entity.LeadSourceSocial {
			stats.Social++
		}
		scoreSum += lead.Score
	}

	if stats.Total > 0 {
		stats.AverageScore = int(math.Round(scoreSum / float64(stats.Total)))
		stats.ConversionRate = int(math.Round(float64(stats.Completed) / math.Max(float64(stats.Total), 1) * 100))
	}

	return stats
}

// WeeklyActivity conta leads criados em cada um dos 7 dias que terminam em
// "now" (hoje incluso, mais antigo primeiro). O match é por igualdade de
// dia-calendário local, não por janela de tempo decorrido.
func WeeklyActivity(leads []entity.Lead, now time.Time) []ActivityDay {
	days := make([]ActivityDay, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset)
		day := ActivityDay{
			Label: date.Format("Mon"),
			Date:  date.Format("2006-01-02"),
		}
		for _, lead := range leads {
			if sameDay(lead.CreatedAt.In(now.Location()), date) {
				day.Count++
			}
		}
		days = append(days, day)
	}
	return days
}

func sameDay(first, second time.Time) bool {
	return first.Year() == second.Year() &&
		first.Month() == second.Month() &&
		first.Day() == second.Day()
}

// StatusDistribution conta a coleção completa por status, para a barra
// proporcional do dashboard.
func StatusDistribution(leads []entity.Lead) []DistributionItem {
	items := make([]DistributionItem, 0, 3)
	for _, status := range entity.PipelineStatuses() {
		item := DistributionItem{Status: status, Label: entity.StatusLabel(status)}
		for _, lead := range leads {
			if lead.Status == status {
				item.Count++
			}
		}
		items = append(items, item)
	}
	return items
}

// DistributionMax é o denominador de escala das barras, nunca menor que 1
// para não dividir por zero.
func DistributionMax(items []DistributionItem) int {
	max := 1
	for _, item := range items {
		if item.Count > max {
			max = item.Count
		}
	}
	return max
}

func ActivityMax(days []ActivityDay) int {
	max := 1
	for _, day := range days {
		if day.Count > max {
			max = day.Count
		}
	}
	return max
}
