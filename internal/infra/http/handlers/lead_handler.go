package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/http/middleware"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

type LeadHandler struct {
	Store       *usecase.LeadStore
	Coordinator *usecase.MutationCoordinator
}

func NewLeadHandler(store *usecase.LeadStore, coordinator *usecase.MutationCoordinator) *LeadHandler {
	return &LeadHandler{
		Store:       store,
		Coordinator: coordinator,
	}
}

type QuickLeadRequest struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
}

type SelectedLeadResponse struct {
	Lead         *entity.Lead             `json:"lead"`
	Draft        usecase.LeadDraft        `json:"draft"`
	DetailOpen   bool                     `json:"detail_open"`
	Interactions []entity.LeadInteraction `json:"interactions"`
}

type InteractionRequest struct {
	Message    string                   `json:"message"`
	AuthorType entity.InteractionAuthor `json:"author_type,omitempty"`
}

type TagRequest struct {
	Tag string `json:"tag"`
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	lead, err := h.Coordinator.CreateLead(r.Context(), input)
	if err != nil {
		middleware.RecordLeadMutation("create", "error")
		writeError(w, err)
		return
	}

	middleware.RecordLeadMutation("create", "ok")
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleQuickAdd(w http.ResponseWriter, r *http.Request) {
	var req QuickLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	lead, err := h.Coordinator.QuickAddLead(r.Context(), req.Name, req.Company)
	if err != nil {
		middleware.RecordLeadMutation("create", "error")
		writeError(w, err)
		return
	}

	middleware.RecordLeadMutation("create", "ok")
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid lead id"})
		return
	}

	var patch usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	lead, err := h.Coordinator.UpdateLead(r.Context(), id, patch)
	if err != nil {
		middleware.RecordLeadMutation("update", "error")
		writeError(w, err)
		return
	}

	middleware.RecordLeadMutation("update", "ok")
	writeJSON(w, http.StatusOK, lead)
}

// HandleDelete exige ?confirm=true — a confirmação é do chamador, não nossa
func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid lead id"})
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.Coordinator.DeleteLead(r.Context(), id, confirmed); err != nil {
		middleware.RecordLeadMutation("delete", "error")
		writeError(w, err)
		return
	}

	middleware.RecordLeadMutation("delete", "ok")
	w.WriteHeader(http.StatusNoContent)
}

// HandleSelect abre o card de um lead: seleção + painel + histórico
func (h *LeadHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid lead id"})
		return
	}

	if err := h.Store.Select(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	h.HandleSelected(w, r)
}

func (h *LeadHandler) HandleSelected(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SelectedLeadResponse{
		Lead:         h.Store.Selected(),
		Draft:        h.Store.Detail().Draft(),
		DetailOpen:   h.Store.Detail().IsOpen(),
		Interactions: h.Store.Interactions(),
	})
}

// HandleDraft atualiza o rascunho em edição (não toca no servidor)
func (h *LeadHandler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	var draft usecase.LeadDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	h.Store.Detail().SetDraft(draft)
	h.HandleSelected(w, r)
}

// HandleSaveDraft grava o rascunho via coordinator (única rota de volta)
func (h *LeadHandler) HandleSaveDraft(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Coordinator.SaveDraft(r.Context())
	if err != nil {
		middleware.RecordLeadMutation("update", "error")
		writeError(w, err)
		return
	}

	middleware.RecordLeadMutation("update", "ok")
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleAddTag(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid lead id"})
		return
	}

	var req TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if err := h.Coordinator.AddTag(r.Context(), id, req.Tag); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) HandleRemoveTag(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid lead id"})
		return
	}

	tag := chi.URLParam(r, "tag")

	if err := h.Coordinator.RemoveTag(r.Context(), id, tag); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) HandleCreateInteraction(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid lead id"})
		return
	}

	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if err := h.Coordinator.CreateInteraction(r.Context(), id, req.Message, req.AuthorType); err != nil {
		middleware.RecordLeadMutation("interaction", "error")
		writeError(w, err)
		return
	}

	middleware.RecordLeadMutation("interaction", "ok")
	writeJSON(w, http.StatusCreated, h.Store.Interactions())
}

func leadID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
