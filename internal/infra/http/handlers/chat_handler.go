package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ibrakam/Sales-Machine/internal/infra/http/middleware"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

type ChatHandler struct {
	Session *usecase.ChatSession
}

func NewChatHandler(session *usecase.ChatSession) *ChatHandler {
	return &ChatHandler{Session: session}
}

type ChatSendRequest struct {
	Message string `json:"message"`
}

type ChatContextRequest struct {
	LeadID int `json:"lead_id"`
}

type ChatStateResponse struct {
	Messages []usecase.ChatMessage `json:"messages"`
	LeadID   int                   `json:"lead_id,omitempty"`
	Loading  bool                  `json:"loading"`
	Error    string                `json:"error,omitempty"`
}

func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req ChatSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if _, err := h.Session.Send(r.Context(), req.Message); err != nil {
		middleware.RecordChatRequest("error")
		writeError(w, err)
		return
	}

	middleware.RecordChatRequest("ok")
	h.HandleState(w, r)
}

func (h *ChatHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ChatStateResponse{
		Messages: h.Session.Messages(),
		LeadID:   h.Session.LeadContext(),
		Loading:  h.Session.IsLoading(),
		Error:    h.Session.LastError(),
	})
}

func (h *ChatHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset()
	h.HandleState(w, r)
}

func (h *ChatHandler) HandleSetContext(w http.ResponseWriter, r *http.Request) {
	var req ChatContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	h.Session.SetLeadContext(req.LeadID)
	h.HandleState(w, r)
}
