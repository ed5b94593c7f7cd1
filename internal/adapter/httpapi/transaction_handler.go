package httpapi

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/usecase"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	c := criteriaFrom(r, usecase.FieldType, usecase.FieldStatus, usecase.FieldMethod, usecase.FieldUserID)
	res, err := h.svc.Transactions.List(r.Context(), c)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Chats.List(r.Context(), criteriaFrom(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.svc.Chats.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, chat)
}
