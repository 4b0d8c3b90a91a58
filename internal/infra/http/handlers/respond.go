package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ibrakam/Sales-Machine/internal/infra/integration/salesapi"
	"github.com/Ibrakam/Sales-Machine/internal/usecase"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError converte o erro num status + mensagem legível. Falha remota
// nunca estoura como 500 genérico: o status do backend é repassado.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch e := err.(type) {
	case usecase.ValidationError:
		status = http.StatusBadRequest
	case *usecase.DomainError:
		switch e.Code {
		case "BUSY":
			status = http.StatusConflict
		case "LEAD_NOT_FOUND":
			status = http.StatusNotFound
		default:
			status = http.StatusBadRequest
		}
	case *salesapi.APIError:
		status = e.StatusCode
	}

	writeJSON(w, status, ErrorResponse{Success: false, Message: err.Error()})
}
