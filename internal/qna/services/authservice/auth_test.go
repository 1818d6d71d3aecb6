package authservice_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Leopold1975/questions_board/internal/pkg/config"
	"github.com/Leopold1975/questions_board/internal/pkg/jwtauth"
	"github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo"
	sf "github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo/file"
	um "github.com/Leopold1975/questions_board/internal/qna/repository/userrepo/memory"
	"github.com/Leopold1975/questions_board/internal/qna/seed"
	"github.com/Leopold1975/questions_board/internal/qna/services/authservice"
	"github.com/stretchr/testify/require"
)

var testAuthCfg = config.Auth{
	TTL:    time.Hour,
	Secret: "test-secret",
}

func newAuthService(t *testing.T) *authservice.AuthService {
	t.Helper()

	sessions := sf.New(filepath.Join(t.TempDir(), "session.json"))

	return authservice.New(um.New(seed.Users()), sessions, testAuthCfg)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	as := newAuthService(t)

	au, err := as.Login(ctx, "john@example.com", seed.DemoPassword)
	require.NoError(t, err)
	require.Equal(t, 1, au.ID)
	require.Equal(t, "John Doe", au.Name)
	require.NotEmpty(t, au.Token)

	claims, err := jwtauth.ValidateToken(au.Token, testAuthCfg.Secret)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, "john@example.com", claims.Email)

	current, err := as.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, au.ID, current.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	as := newAuthService(t)

	_, err := as.Login(ctx, "john@example.com", "wrong")
	require.ErrorIs(t, err, authservice.ErrInvalidCredentials)

	_, err = as.Login(ctx, "nobody@example.com", seed.DemoPassword)
	require.ErrorIs(t, err, authservice.ErrInvalidCredentials)

	_, err = as.CurrentUser(ctx)
	require.ErrorIs(t, err, sessionrepo.ErrNoSession)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	as := newAuthService(t)

	au, err := as.Register(ctx, authservice.RegisterRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, 5, au.ID)

	// Registration opens a session right away.
	current, err := as.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", current.Email)

	// And the account is a real one: log out, log back in.
	require.NoError(t, as.Logout(ctx))

	au, err = as.Login(ctx, "new@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, 5, au.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	as := newAuthService(t)

	_, err := as.Register(ctx, authservice.RegisterRequest{
		Name:     "Impostor",
		Email:    "john@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, authservice.ErrEmailTaken)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	as := newAuthService(t)

	_, err := as.Login(ctx, "jane@example.com", seed.DemoPassword)
	require.NoError(t, err)

	require.NoError(t, as.Logout(ctx))

	_, err = as.CurrentUser(ctx)
	require.ErrorIs(t, err, sessionrepo.ErrNoSession)

	// Logging out twice is fine.
	require.NoError(t, as.Logout(ctx))
}
