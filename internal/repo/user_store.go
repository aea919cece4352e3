package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type UserStore struct{ db *gorm.DB }

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var rows []models.User
	err := s.db.WithContext(ctx).Order("id desc").Find(&rows).Error
	return rows, err
}

func (s *UserStore) Get(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

// FindByIdentifier ищет по email ИЛИ username (форма логина принимает оба).
func (s *UserStore) FindByIdentifier(ctx context.Context, ident string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("email = ? OR username = ?", ident, ident).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

// EmailTaken / UsernameTaken — предварительные проверки коллизий,
// чтобы не доводить до unique constraint в БД. excludeID исключает
// самого пользователя при обновлении.
func (s *UserStore) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).Count(&n).Error
	return n > 0, err
}

func (s *UserStore) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).Count(&n).Error
	return n > 0, err
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *UserStore) Update(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}
