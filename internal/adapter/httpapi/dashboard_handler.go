package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.svc.Dashboard.Dashboard(r.Context()))
}

func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.svc.Dashboard.Analytics(r.Context()))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, r, h.logger, fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidInput, err))
		return
	}
	session, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, session)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.svc.Settings.Get(r.Context()))
}

func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, h.logger, fmt.Errorf("%w: read body: %v", domain.ErrInvalidInput, err))
		return
	}
	h.respondAction(w, r)(h.svc.Settings.Save(r.Context(), chi.URLParam(r, "section"), body))
}
