package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo"
	"github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo/file"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := file.New(filepath.Join(t.TempDir(), "session.json"))

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, sessionrepo.ErrNoSession)

	au := models.AuthUser{
		User: models.User{
			ID:    7,
			Name:  "Stored User",
			Email: "stored@example.com",
		},
		Token: "opaque-token",
	}

	require.NoError(t, s.Save(ctx, au))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, au.ID, got.ID)
	require.Equal(t, au.Email, got.Email)
	require.Equal(t, au.Token, got.Token)

	require.NoError(t, s.Clear(ctx))

	_, err = s.Load(ctx)
	require.ErrorIs(t, err, sessionrepo.ErrNoSession)

	// A second clear on an empty slot is not an error.
	require.NoError(t, s.Clear(ctx))
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := file.New(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, s.Save(ctx, models.AuthUser{User: models.User{ID: 1}, Token: "a"}))
	require.NoError(t, s.Save(ctx, models.AuthUser{User: models.User{ID: 2}, Token: "b"}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, got.ID)
	require.Equal(t, "b", got.Token)
}
