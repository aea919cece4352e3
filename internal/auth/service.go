// Package auth — сессионная авторизация: пароли bcrypt, bearer-токены
// с sha256-хэшем в БД, роль-гейты для администрирования пользователей.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"paradas/internal/logs"
	"paradas/internal/models"
	"paradas/internal/repo"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	users    *repo.UserStore
	sessions *repo.SessionStore
	ttl      time.Duration
}

func New(users *repo.UserStore, sessions *repo.SessionStore, ttl time.Duration) *Service {
	return &Service{users: users, sessions: sessions, ttl: ttl}
}

// Login проверяет identifier (email или username) + пароль и выдаёт
// bearer-токен. В БД хранится только sha256-хэш токена.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if errors.Is(err, repo.ErrNotFound) {
		return "", nil, ErrUnauthorized
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(password)) != nil {
		return "", nil, ErrUnauthorized
	}

	// ленивое удаление протухших сессий
	_ = s.sessions.DeleteExpired(ctx)

	token := uuid.NewString() + uuid.NewString()
	sess := &models.Session{
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate резолвит bearer-токен в пользователя.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	sess, err := s.sessions.GetByTokenHash(ctx, hashToken(token))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		_ = s.sessions.DeleteByTokenHash(ctx, sess.TokenHash)
		return nil, ErrUnauthorized
	}
	user, err := s.users.Get(ctx, sess.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	return user, err
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteByTokenHash(ctx, hashToken(token))
}

// HashPassword — bcrypt с дефолтной стоимостью.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// Bootstrap создаёт первого администратора, если таблица users пуста.
func (s *Service) Bootstrap(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u := &models.User{
		Nome:      "Administrador",
		Email:     email,
		SenhaHash: hash,
		Role:      models.RoleAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}
	logs.Logger.Infof("bootstrap admin user created: %s", email)
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
