package auth

import (
	"context"
	"testing"

	"github.com/angelmondragon/pricetracker-backend/internal/users"
	pkgAuth "github.com/angelmondragon/pricetracker-backend/pkg/auth"
	"github.com/angelmondragon/pricetracker-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (Service, config.JWTConfig) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	usersTable := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(usersTable).Error)
	require.NoError(t, db.Exec(`DELETE FROM users`).Error)

	jwtCfg := config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "pricetracker",
		ExpirationMinutes: 60,
	}

	svc, err := NewService(ServiceParams{
		UserRepo:  users.NewRepository(db),
		JWTConfig: jwtCfg,
		PasswordConfig: config.PasswordConfig{
			ArgonMemoryKB:    32768,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
	})
	require.NoError(t, err)
	return svc, jwtCfg
}

func TestServiceRegister(t *testing.T) {
	svc, jwtCfg := setupAuthService(t)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "casey@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "casey@example.com", resp.User.Email)
	assert.NotEqual(t, uuid.Nil, resp.User.ID)

	claims, err := pkgAuth.ParseSessionToken(jwtCfg, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "casey@example.com", claims.Email)
}

func TestServiceRegisterShortPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "casey@example.com",
		Password: "short",
	})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "hunter22"})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDuplicateEmail, typed.Code())
}

func TestServiceRegisterEmailIsCaseSensitive(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "Casey@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "casey@example.com", Password: "hunter22"})
	require.NoError(t, err)
}

func TestServiceLogin(t *testing.T) {
	svc, jwtCfg := setupAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{Email: "casey@example.com", Password: "hunter22"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginRequest{Email: "casey@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	claims, err := pkgAuth.ParseSessionToken(jwtCfg, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
}

func TestServiceLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "casey@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	require.Error(t, unknownErr)

	_, wrongErr := svc.Login(ctx, LoginRequest{Email: "casey@example.com", Password: "wrong-password"})
	require.Error(t, wrongErr)

	unknownTyped := pkgerrors.As(unknownErr)
	wrongTyped := pkgerrors.As(wrongErr)
	require.NotNil(t, unknownTyped)
	require.NotNil(t, wrongTyped)

	assert.Equal(t, pkgerrors.CodeInvalidCredentials, unknownTyped.Code())
	assert.Equal(t, pkgerrors.CodeInvalidCredentials, wrongTyped.Code())
	assert.Equal(t, unknownTyped.Message(), wrongTyped.Message())
}
