package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/action"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

// Claims are carried by the admin session token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type AuthConfig struct {
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiry         time.Duration
	LoginDelay        time.Duration
}

// Session is a successful login.
type Session struct {
	Token        string               `json:"token"`
	ExpiresAt    time.Time            `json:"expiresAt"`
	Notification *domain.Notification `json:"notification"`
}

type AuthUsecase struct {
	email    string
	hash     []byte
	secret   []byte
	expiry   time.Duration
	delay    time.Duration
	notifier domain.Notifier
	clock    Clock
	logger   *logger.Logger
}

// NewAuthUsecase hashes AdminPassword when no precomputed hash is configured.
func NewAuthUsecase(cfg AuthConfig, notifier domain.Notifier, clock Clock, log *logger.Logger) (*AuthUsecase, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}
	if clock == nil {
		clock = time.Now
	}
	return &AuthUsecase{
		email:    strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		hash:     hash,
		secret:   []byte(cfg.JWTSecret),
		expiry:   cfg.JWTExpiry,
		delay:    cfg.LoginDelay,
		notifier: notifier,
		clock:    clock,
		logger:   log.Named("AuthUsecase"),
	}, nil
}

// Login checks the admin credentials after the configured delay and issues a
// session token.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*Session, error) {
	ctx, span := tracer.Start(ctx, "auth.login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	task := action.Start(ctx, uc.delay, func(context.Context) (*Session, error) {
		if email != uc.email || bcrypt.CompareHashAndPassword(uc.hash, []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		return uc.issue(email)
	})
	session, err := task.Await(ctx)
	if err != nil {
		uc.logger.Warn("Admin login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.Notify(ctx, session.Notification); err != nil {
			uc.logger.Warn("Failed to deliver login notification", zap.Error(err))
		}
	}
	uc.logger.Info("Admin logged in", zap.String("email", email))
	return session, nil
}

func (uc *AuthUsecase) issue(email string) (*Session, error) {
	now := uc.clock()
	expires := now.Add(uc.expiry)
	claims := Claims{
		Email: email,
		Role:  adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return &Session{
		Token:     token,
		ExpiresAt: expires,
		Notification: &domain.Notification{
			ID:          uuid.NewString(),
			Action:      "login",
			Subject:     "auth",
			Title:       "Connexion réussie",
			Description: "Bienvenue sur le panneau d'administration Bonti.",
			Variant:     domain.VariantDefault,
			CreatedAt:   now,
		},
	}, nil
}

// ParseToken validates a session token and returns its claims.
func (uc *AuthUsecase) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return uc.secret, nil
	}, jwt.WithTimeFunc(uc.clock))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token has expired", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid || claims.Role != adminRole {
		return nil, fmt.Errorf("%w: token is not valid", domain.ErrUnauthorized)
	}
	return claims, nil
}
