package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

type AuthHandler struct {
	Session *usecase.SessionManager
}

func NewAuthHandler(session *usecase.SessionManager) *AuthHandler {
	return &AuthHandler{Session: session}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	user, err := h.Session.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := h.Session.CurrentUser()
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Not authenticated"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}
