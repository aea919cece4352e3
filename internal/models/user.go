package models

import "time"

// Роли пользователей. Управление пользователями доступно
// только admin/superadmin.
const (
	RoleUsuario    = "usuario"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Nome     string  `gorm:"size:255;not null" json:"nome"`
	Email    string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username *string `gorm:"uniqueIndex;size:128" json:"username"`
	// bcrypt-хэш, наружу не отдаём
	SenhaHash string  `gorm:"size:255;not null" json:"-"`
	Imagem    *string `json:"imagem"` // data-URL аватара
	Role      string  `gorm:"size:32;not null;default:usuario" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperadmin
}

// DisplayName — имя для атрибуции (testadoPor); fallback на email.
func (u *User) DisplayName() string {
	if u.Nome != "" {
		return u.Nome
	}
	return u.Email
}

// Session — серверная сессия; храним только sha256-хэш токена.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	TokenHash string    `gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
