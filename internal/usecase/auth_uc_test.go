package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() AuthConfig {
	return AuthConfig{
		AdminEmail:    "admin@bonti.com",
		AdminPassword: "admin123",
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
	}
}

func newAuthUsecase(t *testing.T, cfg AuthConfig, n domain.Notifier) *AuthUsecase {
	t.Helper()
	uc, err := NewAuthUsecase(cfg, n, fixedClock, logger.NewNop())
	require.NoError(t, err)
	return uc
}

func TestAuthUsecase_LoginSuccess(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Title == "Connexion réussie"
	})).Return(nil)
	uc := newAuthUsecase(t, authConfig(), notifier)

	s, err := uc.Login(context.Background(), "  Admin@Bonti.com ", "admin123")

	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, fixedNow.Add(time.Hour), s.ExpiresAt)
	assert.Equal(t, "Bienvenue sur le panneau d'administration Bonti.", s.Notification.Description)
	notifier.AssertExpectations(t)

	claims, err := uc.ParseToken(s.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@bonti.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthUsecase_LoginWithPrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := authConfig()
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = string(hash)
	uc := newAuthUsecase(t, cfg, nil)

	_, err = uc.Login(context.Background(), "admin@bonti.com", "s3cret")
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "admin@bonti.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthUsecase_LoginFailures(t *testing.T) {
	uc := newAuthUsecase(t, authConfig(), nil)
	ctx := context.Background()

	_, err := uc.Login(ctx, "", "admin123")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	_, err = uc.Login(ctx, "admin@bonti.com", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	_, err = uc.Login(ctx, "someone@bonti.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(ctx, "admin@bonti.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthUsecase_LoginCancelledDuringDelay(t *testing.T) {
	cfg := authConfig()
	cfg.LoginDelay = time.Hour
	uc := newAuthUsecase(t, cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := uc.Login(ctx, "admin@bonti.com", "admin123")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAuthUsecase_ParseTokenRejects(t *testing.T) {
	uc := newAuthUsecase(t, authConfig(), nil)

	other := newAuthUsecase(t, AuthConfig{AdminEmail: "admin@bonti.com", AdminPassword: "admin123", JWTSecret: "other", JWTExpiry: time.Hour}, nil)
	s, err := other.Login(context.Background(), "admin@bonti.com", "admin123")
	require.NoError(t, err)
	_, err = uc.ParseToken(s.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expired := Claims{
		Email: "admin@bonti.com",
		Role:  adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(fixedNow.Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = uc.ParseToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
