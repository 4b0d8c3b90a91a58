package handlers

import (
	"net/http"
	"time"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/http/middleware"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

type DashboardHandler struct {
	Store *usecase.LeadStore
}

func NewDashboardHandler(store *usecase.LeadStore) *DashboardHandler {
	return &DashboardHandler{Store: store}
}

type DashboardResponse struct {
	// Sobre a coleção filtrada (o board visível)
	Leads           []entity.Lead            `json:"leads"`
	PipelineSummary []usecase.PipelineColumn `json:"pipeline_summary"`
	Totals          usecase.PipelineTotals   `json:"totals"`

	// Sobre a coleção completa (saúde do workspace, ignora filtros)
	Stats           usecase.LeadStats          `json:"stats"`
	WeeklyActivity  []usecase.ActivityDay      `json:"weekly_activity"`
	WeeklyMax       int                        `json:"weekly_max"`
	Distribution    []usecase.DistributionItem `json:"distribution"`
	DistributionMax int                        `json:"distribution_max"`

	Refreshing bool   `json:"refreshing"`
	Error      string `json:"error,omitempty"`
}

// HandleGet monta a projeção completa do dashboard. Os filtros vêm na query
// string (?q=...&status=...) e nada é cacheado: projeção é recalculada
// a cada chamada sobre o snapshot atual do store.
func (h *DashboardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	status := usecase.StatusFilter(r.URL.Query().Get("status"))
	if status == "" {
		status = usecase.StatusFilterAll
	}

	leads := h.Store.Leads()
	filtered := usecase.FilterLeads(leads, query, status)
	summary := usecase.PipelineSummary(filtered)
	weekly := usecase.WeeklyActivity(leads, time.Now())
	distribution := usecase.StatusDistribution(leads)

	writeJSON(w, http.StatusOK, DashboardResponse{
		Leads:           filtered,
		PipelineSummary: summary,
		Totals:          usecase.SummaryTotals(summary),
		Stats:           usecase.ComputeLeadStats(leads),
		WeeklyActivity:  weekly,
		WeeklyMax:       usecase.ActivityMax(weekly),
		Distribution:    distribution,
		DistributionMax: usecase.DistributionMax(distribution),
		Refreshing:      h.Store.IsRefreshing(),
		Error:           h.Store.LastError(),
	})
}

// HandleRefresh recarrega a coleção inteira do backend
func (h *DashboardHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if h.Store.IsRefreshing() {
		writeJSON(w, http.StatusConflict, ErrorResponse{Success: false, Message: "refresh already in flight"})
		return
	}

	if err := h.Store.LoadLeads(r.Context()); err != nil {
		middleware.RecordIntegrationError("salesapi")
		writeError(w, err)
		return
	}

	middleware.RecordLeadReload()
	h.HandleGet(w, r)
}
