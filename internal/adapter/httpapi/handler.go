package httpapi

import (
	"net/http"
	"strings"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/usecase"
)

const maxBodyBytes = 1 << 20

// Services are the usecases the API exposes.
type Services struct {
	Users        *usecase.UserUsecase
	Properties   *usecase.PropertyUsecase
	Transactions *usecase.TransactionUsecase
	Chats        *usecase.ChatUsecase
	Dashboard    *usecase.DashboardUsecase
	Auth         *usecase.AuthUsecase
	Settings     *usecase.SettingsUsecase
}

type Handler struct {
	svc    Services
	logger *logger.Logger
}

func NewHandler(svc Services, log *logger.Logger) *Handler {
	return &Handler{svc: svc, logger: log.Named("HTTPHandler")}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// criteriaFrom reads the free-text query "q" and the given categorical
// fields from the query string. Other query keys are ignored.
func criteriaFrom(r *http.Request, fields ...string) filter.Criteria {
	query := r.URL.Query()
	c := filter.Criteria{Text: strings.TrimSpace(query.Get("q"))}
	for _, f := range fields {
		if v := query.Get(f); v != "" {
			c = c.Where(f, v)
		}
	}
	return c
}
