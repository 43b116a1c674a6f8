package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

const defaultRole = "personnel"

// Claims carried by the dashboard access token.
type Claims struct {
	PersonnelID int64  `json:"personnel_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	store    *store.Store
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(st *store.Store, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{store: st, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Login verifies credentials against the personnel collection, persists the
// user snapshot under the fixed session key, and issues an access token.
// The snapshot is overwritten unconditionally: last login wins.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.UserSnapshot, string, error) {
	log := zap.S().Named("auth_service")

	matches, err := s.store.Records().FindByField(ctx, store.CollectionPersonnel, "username", username)
	if err != nil {
		return nil, "", err
	}
	if len(matches) == 0 {
		return nil, "", srvErrors.NewUnauthorizedError("unknown username or wrong password")
	}
	rec := matches[0]

	if err := bcrypt.CompareHashAndPassword([]byte(rec.String("password_hash")), []byte(password)); err != nil {
		log.Warnw("failed login", "username", username)
		return nil, "", srvErrors.NewUnauthorizedError("unknown username or wrong password")
	}

	id, _ := rec.ID()
	role := rec.String("role")
	if role == "" {
		role = defaultRole
	}
	snapshot := &models.UserSnapshot{
		PersonnelID: id,
		Username:    username,
		FullName:    models.DisplayName(rec),
		Rank:        rec.String("rank"),
		Role:        role,
		LoginAt:     time.Now().UTC(),
	}
	if err := s.store.Session().SetCurrentUser(ctx, snapshot); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(snapshot)
	if err != nil {
		return nil, "", err
	}
	log.Infow("login", "username", username, "personnel", id)
	return snapshot, token, nil
}

// Logout clears the persisted snapshot. Idempotent.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Session().ClearCurrentUser(ctx)
}

// CurrentUser restores the persisted snapshot, if any.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.UserSnapshot, error) {
	return s.store.Session().GetCurrentUser(ctx)
}

func (s *AuthService) issueToken(user *models.UserSnapshot) (string, error) {
	now := time.Now()
	claims := Claims{
		PersonnelID: user.PersonnelID,
		Username:    user.Username,
		Role:        user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "personnel-agent",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates an access token and returns its claims.
func (s *AuthService) ParseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, srvErrors.NewUnauthorizedError("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, srvErrors.NewUnauthorizedError("invalid or expired token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, srvErrors.NewUnauthorizedError("invalid or expired token")
	}
	return claims, nil
}
