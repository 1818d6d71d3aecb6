package app

import (
	"context"
	"fmt"

	"github.com/Leopold1975/questions_board/internal/pkg/config"
	bm "github.com/Leopold1975/questions_board/internal/qna/repository/boardrepo/memory"
	sf "github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo/file"
	sr "github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo/redis"
	um "github.com/Leopold1975/questions_board/internal/qna/repository/userrepo/memory"
	"github.com/Leopold1975/questions_board/internal/qna/seed"
	"github.com/Leopold1975/questions_board/internal/qna/services/authservice"
	"github.com/Leopold1975/questions_board/internal/qna/services/boardservice"
	"github.com/Leopold1975/questions_board/pkg/logger"
)

// QnaApp wires the in-memory board behind the service layer. The store
// starts from the seed dataset; only the session slot outlives a run.
type QnaApp struct {
	board *boardservice.BoardService
	auth  *authservice.AuthService
	lg    logger.Logger
	cfg   config.Config
}

func New(ctx context.Context, cfg config.Config) (QnaApp, error) {
	lg, err := logger.New(cfg.Logger)
	if err != nil {
		return QnaApp{}, fmt.Errorf("can't get logger error: %w", err)
	}

	boardRepo := bm.New(seed.Snapshot())
	userRepo := um.New(seed.Users())

	var sessions authservice.SessionStore

	switch cfg.Session.Backend {
	case "redis":
		s, err := sr.New(ctx, cfg.Session.Redis)
		if err != nil {
			return QnaApp{}, fmt.Errorf("redis session repo initializing error: %w", err)
		}

		sessions = s
	default:
		sessions = sf.New(cfg.Session.Path)
	}

	authService := authservice.New(userRepo, sessions, cfg.Auth)
	boardService := boardservice.New(boardRepo, sessions, lg, cfg.Board)

	return QnaApp{
		board: boardService,
		auth:  authService,
		lg:    lg,
		cfg:   cfg,
	}, nil
}

func (a QnaApp) Board() *boardservice.BoardService {
	return a.board
}

func (a QnaApp) Auth() *authservice.AuthService {
	return a.auth
}

func (a QnaApp) Logger() logger.Logger {
	return a.lg
}
