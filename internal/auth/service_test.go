package auth_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"paradas/internal/auth"
	"paradas/internal/models"
	"paradas/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "auth.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	return db
}

func newService(t *testing.T, db *gorm.DB, ttl time.Duration) *auth.Service {
	t.Helper()
	return auth.New(repo.NewUserStore(db), repo.NewSessionStore(db), ttl)
}

func createUser(t *testing.T, db *gorm.DB, email, username, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		Nome:      "Operador",
		Email:     email,
		SenhaHash: hash,
		Role:      models.RoleUsuario,
	}
	if username != "" {
		u.Username = &username
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestLoginByEmailAndUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, time.Hour)
	createUser(t, db, "op@planta.local", "operador", "senha123")
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "op@planta.local", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "op@planta.local", user.Email)

	token2, _, err := svc.Login(ctx, "operador", "senha123")
	require.NoError(t, err)
	require.NotEqual(t, token, token2)

	// токен резолвится в пользователя
	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, time.Hour)
	createUser(t, db, "op@planta.local", "", "senha123")
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "op@planta.local", "errada")
	require.ErrorIs(t, err, auth.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "desconhecido@planta.local", "senha123")
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, -time.Minute) // сессии рождаются протухшими
	createUser(t, db, "op@planta.local", "", "senha123")
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "op@planta.local", "senha123")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, time.Hour)
	createUser(t, db, "op@planta.local", "", "senha123")
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "op@planta.local", "senha123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestBootstrapCreatesAdminOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx, "admin@planta.local", "password"))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	require.Equal(t, models.RoleAdmin, users[0].Role)

	// повторный вызов и вызов при непустой таблице — no-op
	require.NoError(t, svc.Bootstrap(ctx, "outro@planta.local", "password"))
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
}
