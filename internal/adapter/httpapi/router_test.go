package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/repository/memory"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler http.Handler
	metrics *metrics.MetricsManager
	token   string
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()
	log := logger.NewNop()
	src, err := memory.Load("")
	require.NoError(t, err)
	cat, err := catalog.Load(context.Background(), src)
	require.NoError(t, err)

	m := metrics.NewMetricsManager("admin")
	lister := usecase.NewLister(nil, time.Minute, m, log)
	runner := usecase.NewActionRunner(nil, 0, time.Now, m, log)
	auth, err := usecase.NewAuthUsecase(usecase.AuthConfig{
		AdminEmail:    "admin@bonti.com",
		AdminPassword: "admin123",
		JWTSecret:     "router-test-secret",
		JWTExpiry:     time.Hour,
	}, nil, time.Now, log)
	require.NoError(t, err)

	h := NewHandler(Services{
		Users:        usecase.NewUserUsecase(cat, lister, runner, log),
		Properties:   usecase.NewPropertyUsecase(cat, lister, runner, nil, log),
		Transactions: usecase.NewTransactionUsecase(cat, lister, log),
		Chats:        usecase.NewChatUsecase(cat, lister, log),
		Dashboard:    usecase.NewDashboardUsecase(cat, time.Now, log),
		Auth:         auth,
		Settings:     usecase.NewSettingsUsecase(runner, log),
	}, log)

	return &testServer{
		handler: NewRouter(h, RouterConfig{AuthEnabled: authEnabled, Tokens: auth, Metrics: m}, log),
		metrics: m,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/login", `{"email":"admin@bonti.com","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session usecase.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "Connexion réussie", session.Notification.Title)
	s.token = session.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t, true)

	rec := s.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_RequiresToken(t *testing.T) {
	s := newTestServer(t, true)

	rec := s.do(t, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.token = "garbage"
	rec = s.do(t, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LoginErrors(t *testing.T) {
	s := newTestServer(t, true)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/auth/login", `{"email":"","password":""}`).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/api/auth/login", `{"email":"admin@bonti.com","password":"nope"}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/auth/login", `{`).Code)
}

func TestRouter_ListUsers(t *testing.T) {
	s := newTestServer(t, true)
	s.login(t)

	rec := s.do(t, http.MethodGet, "/api/users?role=landlord&status=all&sort=name", "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[usecase.ListResult[domain.User, usecase.UserStats]](t, rec)
	assert.Equal(t, 4, res.Count)
	assert.Equal(t, 8, res.Stats.Total)
}

func TestRouter_ListProperties(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(t, http.MethodGet, "/api/properties?approval=pending", "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[usecase.ListResult[domain.Property, usecase.PropertyStats]](t, rec)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "hse_02", res.Items[0].ID)
	assert.Equal(t, "hse_05", res.Items[1].ID)

	pending := s.do(t, http.MethodGet, "/api/properties/pending", "")
	require.Equal(t, http.StatusOK, pending.Code)
	assert.Equal(t, 2, decode[struct{ Count int }](t, pending).Count)
}

func TestRouter_ListTransactionsAndChats(t *testing.T) {
	s := newTestServer(t, false)

	txs := s.do(t, http.MethodGet, "/api/transactions?method=OM&type=credit", "")
	require.Equal(t, http.StatusOK, txs.Code)
	txRes := decode[usecase.ListResult[domain.Transaction, usecase.TransactionStats]](t, txs)
	assert.Equal(t, 3, txRes.Count)
	assert.Equal(t, 380000.0, txRes.Stats.TotalCredits)

	chats := s.do(t, http.MethodGet, "/api/chats?q=touré", "")
	require.Equal(t, http.StatusOK, chats.Code)
	chatRes := decode[usecase.ListResult[usecase.ChatSummary, usecase.ChatStats]](t, chats)
	require.Len(t, chatRes.Items, 1)
	assert.Equal(t, "cht_02", chatRes.Items[0].ID)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/chats/cht_01", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/chats/cht_99", "").Code)
}

func TestRouter_Details(t *testing.T) {
	s := newTestServer(t, false)

	user := s.do(t, http.MethodGet, "/api/users/usr_02", "")
	require.Equal(t, http.StatusOK, user.Code)
	assert.Len(t, decode[usecase.UserDetail](t, user).Properties, 2)

	prop := s.do(t, http.MethodGet, "/api/properties/hse_03", "")
	require.Equal(t, http.StatusOK, prop.Code)
	assert.Contains(t, decode[usecase.PropertyDetail](t, prop).MapURL, "mlat=9.5092")

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/users/usr_99", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/properties/hse_99", "").Code)
}

func TestRouter_Gallery(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(t, http.MethodGet, "/api/properties/hse_01/gallery?index=-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[usecase.GalleryView](t, rec)
	assert.Equal(t, 2, view.Index)
	assert.Equal(t, 0, view.Next)
	assert.Equal(t, "houses/hse_01/salon.jpg", view.URL)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/properties/hse_01/gallery?index=abc", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/properties/hse_05/gallery", "").Code)
}

func TestRouter_PropertyActions(t *testing.T) {
	s := newTestServer(t, false)

	approve := s.do(t, http.MethodPost, "/api/properties/hse_02/approve", "")
	require.Equal(t, http.StatusOK, approve.Code)
	assert.Equal(t, "Propriété approuvée", decode[domain.Notification](t, approve).Title)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/properties/hse_01/approve", "").Code)

	reject := s.do(t, http.MethodPost, "/api/properties/hse_05/reject", `{"reason":"informations incomplètes"}`)
	require.Equal(t, http.StatusOK, reject.Code)
	n := decode[domain.Notification](t, reject)
	assert.Equal(t, domain.VariantDestructive, n.Variant)
	assert.Contains(t, n.Description, "informations incomplètes")

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/properties/hse_05/reject", "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/api/properties/hse_07", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/properties/hse_99", "").Code)
}

func TestRouter_UserActions(t *testing.T) {
	s := newTestServer(t, false)

	suspend := s.do(t, http.MethodPost, "/api/users/usr_01/suspend", "")
	require.Equal(t, http.StatusOK, suspend.Code)
	assert.Equal(t, "Utilisateur suspendu", decode[domain.Notification](t, suspend).Title)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/users/usr_04/activate", "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/api/users/usr_06", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/users/usr_04/suspend", "").Code)
}

func TestRouter_DashboardAndAnalytics(t *testing.T) {
	s := newTestServer(t, false)

	dash := s.do(t, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, dash.Code)
	d := decode[usecase.Dashboard](t, dash)
	assert.Equal(t, 2, d.Stats.PendingApproval)
	assert.Len(t, d.RecentActivity, 5)

	analytics := s.do(t, http.MethodGet, "/api/analytics", "")
	require.Equal(t, http.StatusOK, analytics.Code)
	assert.Len(t, decode[domain.Analytics](t, analytics).PropertyTypes, 4)
}

func TestRouter_Settings(t *testing.T) {
	s := newTestServer(t, false)

	get := s.do(t, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "Admin Bonti", decode[usecase.Settings](t, get).Profile.Name)

	save := s.do(t, http.MethodPut, "/api/settings/platform", `{"unlockFee":"15000","maintenanceMode":true}`)
	require.Equal(t, http.StatusOK, save.Code)
	assert.Equal(t, "Plateforme mis à jour", decode[domain.Notification](t, save).Title)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/settings/billing", `{}`).Code)
}

func TestRouter_RecordsMetrics(t *testing.T) {
	s := newTestServer(t, false)

	s.do(t, http.MethodGet, "/api/users/usr_99", "")

	rec := httptest.NewRecorder()
	metrics.NewMetricsServer("9095", logger.NewNop(), s.metrics.Registry).Handler.
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `admin_api_errors_total{route="/api/users/{id}",status="404"} 1`)
}
