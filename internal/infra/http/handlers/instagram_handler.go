package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
	"github.com/Ibrakam/Sales-Machine/internal/infra/http/middleware"
	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

type InstagramHandler struct {
	Manager *usecase.InstagramManager
}

func NewInstagramHandler(manager *usecase.InstagramManager) *InstagramHandler {
	return &InstagramHandler{Manager: manager}
}

type InstagramStateResponse struct {
	Account *entity.InstagramAccount `json:"account"`
	Message string                   `json:"message,omitempty"`
	Saving  bool                     `json:"saving"`
	Syncing bool                     `json:"syncing"`
}

type InstagramSyncResult struct {
	Synced  int    `json:"synced"`
	Message string `json:"message"`
}

func (h *InstagramHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Conta ausente não é erro: o painel mostra o formulário de conexão
	h.Manager.Load(r.Context())
	h.state(w)
}

func (h *InstagramHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	var input salesapi.InstagramAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if _, err := h.Manager.Connect(r.Context(), input); err != nil {
		middleware.RecordIntegrationError("instagram")
		writeError(w, err)
		return
	}

	h.state(w)
}

func (h *InstagramHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input salesapi.UpdateInstagramInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if _, err := h.Manager.Update(r.Context(), input); err != nil {
		middleware.RecordIntegrationError("instagram")
		writeError(w, err)
		return
	}

	h.state(w)
}

func (h *InstagramHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	response, err := h.Manager.Sync(r.Context())
	if err != nil {
		middleware.RecordIntegrationError("instagram")
		writeError(w, err)
		return
	}

	middleware.RecordInstagramSync()
	writeJSON(w, http.StatusOK, InstagramSyncResult{
		Synced:  response.Synced,
		Message: h.Manager.Message(),
	})
}

func (h *InstagramHandler) state(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, InstagramStateResponse{
		Account: h.Manager.Account(),
		Message: h.Manager.Message(),
		Saving:  h.Manager.IsSaving(),
		Syncing: h.Manager.IsSyncing(),
	})
}
