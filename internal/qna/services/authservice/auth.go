package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Leopold1975/questions_board/internal/pkg/config"
	"github.com/Leopold1975/questions_board/internal/pkg/jwtauth"
	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/userrepo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService struct {
	userRepo Repository
	sessions SessionStore
	cfg      config.Auth
}

type Repository interface {
	CreateUser(context.Context, models.User) (models.User, error)
	GetUserByEmail(context.Context, string) (models.User, error)
}

// SessionStore is the single durable session slot. Whatever decodable
// record it holds is the logged-in user; nothing is re-verified on load.
type SessionStore interface {
	Save(context.Context, models.AuthUser) error
	Load(context.Context) (models.AuthUser, error)
	Clear(context.Context) error
}

func New(userRepo Repository, sessions SessionStore, cfg config.Auth) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
	}
}

func (as *AuthService) Register(ctx context.Context, req RegisterRequest) (models.AuthUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("generate from password error: %w", err)
	}

	var u models.User

	u.Name = req.Name
	u.Email = req.Email
	u.PasswordHash = string(hash)
	u.CreatedAt = time.Now().UTC()

	u, err = as.userRepo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, userrepo.ErrAlreadyExists) {
			return models.AuthUser{}, ErrEmailTaken
		}

		return models.AuthUser{}, fmt.Errorf("create user error: %w", err)
	}

	return as.openSession(ctx, u)
}

func (as *AuthService) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	u, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return models.AuthUser{}, ErrInvalidCredentials
		}

		return models.AuthUser{}, fmt.Errorf("get user error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.AuthUser{}, ErrInvalidCredentials
	}

	return as.openSession(ctx, u)
}

// Logout clears the session slot. Clearing an empty slot is not an error.
func (as *AuthService) Logout(ctx context.Context) error {
	if err := as.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session error: %w", err)
	}

	return nil
}

// CurrentUser returns the stored session record, sessionrepo.ErrNoSession
// when nobody is logged in.
func (as *AuthService) CurrentUser(ctx context.Context) (models.AuthUser, error) {
	return as.sessions.Load(ctx)
}

func (as *AuthService) openSession(ctx context.Context, u models.User) (models.AuthUser, error) {
	token, err := jwtauth.GetToken(u, as.cfg.TTL, as.cfg.Secret)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("can't get token error: %w", err)
	}

	au := models.AuthUser{
		User:  u,
		Token: token,
	}

	if err := as.sessions.Save(ctx, au); err != nil {
		return models.AuthUser{}, fmt.Errorf("save session error: %w", err)
	}

	return au, nil
}
