package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	c := criteriaFrom(r, usecase.FieldType, usecase.FieldStatus, usecase.FieldApproval, usecase.FieldLandlordID)
	res, err := h.svc.Properties.List(r.Context(), c)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *Handler) PendingProperties(w http.ResponseWriter, r *http.Request) {
	pending := h.svc.Properties.Pending(r.Context())
	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{"items": pending, "count": len(pending)})
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Properties.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, detail)
}

func (h *Handler) PropertyGallery(w http.ResponseWriter, r *http.Request) {
	index := 0
	if raw := r.URL.Query().Get("index"); raw != "" {
		var err error
		if index, err = strconv.Atoi(raw); err != nil {
			writeError(w, r, h.logger, fmt.Errorf("%w: index must be an integer", domain.ErrInvalidInput))
			return
		}
	}
	view, err := h.svc.Properties.Gallery(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

func (h *Handler) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	h.respondAction(w, r)(h.svc.Properties.Approve(r.Context(), chi.URLParam(r, "id")))
}

// RejectProperty accepts an optional JSON body {"reason": "..."}.
func (h *Handler) RejectProperty(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, h.logger, fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidInput, err))
		return
	}
	h.respondAction(w, r)(h.svc.Properties.Reject(r.Context(), chi.URLParam(r, "id"), req.Reason))
}

func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	h.respondAction(w, r)(h.svc.Properties.Delete(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) respondAction(w http.ResponseWriter, r *http.Request) func(*domain.Notification, error) {
	return func(n *domain.Notification, err error) {
		if err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		h.logger.Info("Admin action completed",
			zap.String("action", n.Subject+"."+n.Action),
			zap.String("subject_id", n.SubjectID),
			zap.String("admin", AdminEmail(r.Context())),
			zap.String("request_id", RequestID(r.Context())))
		writeJSON(w, h.logger, http.StatusOK, n)
	}
}
