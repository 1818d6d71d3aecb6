package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Leopold1975/questions_board/internal/pkg/config"
	"github.com/Leopold1975/questions_board/internal/pkg/redistools"
	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo"
	"github.com/redis/go-redis/v9"
)

// Один фиксированный слот на всех: хранится сессия "текущего" пользователя.
const sessionKey = "qna:session"

type SessionRedis struct {
	rdb *redis.Client
}

func New(ctx context.Context, cfg config.SessionRedis) (SessionRedis, error) {
	rdb := redis.NewClient(&redis.Options{ //nolint:exhaustruct
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := redistools.Connect(ctx, rdb); err != nil {
		return SessionRedis{}, fmt.Errorf("connect error: %w", err)
	}

	return SessionRedis{
		rdb: rdb,
	}, nil
}

func (s SessionRedis) Save(ctx context.Context, u models.AuthUser) error {
	sessionJSON, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	_, err = s.rdb.Set(ctx, sessionKey, sessionJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("set error: %w", err)
	}

	return nil
}

func (s SessionRedis) Load(ctx context.Context) (models.AuthUser, error) {
	sessionJSON, err := s.rdb.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return models.AuthUser{}, sessionrepo.ErrNoSession
	} else if err != nil {
		return models.AuthUser{}, fmt.Errorf("get error: %w", err)
	}

	var u models.AuthUser

	err = json.Unmarshal([]byte(sessionJSON), &u)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("unmarshal error: %w", err)
	}

	return u, nil
}

func (s SessionRedis) Clear(ctx context.Context) error {
	if _, err := s.rdb.Del(ctx, sessionKey).Result(); err != nil {
		return fmt.Errorf("del error: %w", err)
	}

	return nil
}
