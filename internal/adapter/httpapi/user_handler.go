package httpapi

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/usecase"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Users.List(r.Context(), criteriaFrom(r, usecase.FieldRole, usecase.FieldStatus))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Users.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, detail)
}

func (h *Handler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	h.respondAction(w, r)(h.svc.Users.Suspend(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.respondAction(w, r)(h.svc.Users.Activate(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.respondAction(w, r)(h.svc.Users.Delete(r.Context(), chi.URLParam(r, "id")))
}
