package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo"
)

// SessionFile persists the single session record as a JSON file, so a
// session survives a restart of the calling process. A decodable file
// counts as a session; nothing in it is verified.
type SessionFile struct {
	path string
}

func New(path string) SessionFile {
	return SessionFile{
		path: path,
	}
}

func (s SessionFile) Save(_ context.Context, u models.AuthUser) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session error: %w", err)
	}

	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write session file error: %w", err)
	}

	return nil
}

func (s SessionFile) Load(_ context.Context) (models.AuthUser, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.AuthUser{}, sessionrepo.ErrNoSession
		}

		return models.AuthUser{}, fmt.Errorf("read session file error: %w", err)
	}

	var u models.AuthUser

	if err := json.Unmarshal(b, &u); err != nil {
		return models.AuthUser{}, fmt.Errorf("unmarshal session error: %w", err)
	}

	return u, nil
}

func (s SessionFile) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file error: %w", err)
	}

	return nil
}
