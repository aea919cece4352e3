package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type SessionStore struct{ db *gorm.DB }

func NewSessionStore(db *gorm.DB) *SessionStore { return &SessionStore{db: db} }

func (s *SessionStore) Create(ctx context.Context, sess *models.Session) error {
	return s.db.WithContext(ctx).Create(sess).Error
}

func (s *SessionStore) GetByTokenHash(ctx context.Context, hash string) (*models.Session, error) {
	var sess models.Session
	err := s.db.WithContext(ctx).Where("token_hash = ?", hash).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &sess, err
}

func (s *SessionStore) DeleteByTokenHash(ctx context.Context, hash string) error {
	return s.db.WithContext(ctx).Where("token_hash = ?", hash).Delete(&models.Session{}).Error
}

// DeleteExpired подчищает протухшие сессии (вызывается лениво при логине).
func (s *SessionStore) DeleteExpired(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&models.Session{}).Error
}
