package memory

import (
	"context"
	"sync"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/userrepo"
)

type UsersMemoryRepo struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

func New(users []models.User) *UsersMemoryRepo {
	r := &UsersMemoryRepo{
		users:  make([]models.User, 0, len(users)),
		nextID: 1,
	}

	for _, u := range users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}

		r.users = append(r.users, u)
	}

	return r
}

// CreateUser assigns the next id. Email uniqueness is an exact string
// match; callers normalize the address if they want it normalized.
func (r *UsersMemoryRepo) CreateUser(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return models.User{}, userrepo.ErrAlreadyExists
		}
	}

	u.ID = r.nextID
	r.nextID++

	r.users = append(r.users, u)

	return u, nil
}

func (r *UsersMemoryRepo) GetUser(_ context.Context, id int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return models.User{}, userrepo.ErrNotFound
}

func (r *UsersMemoryRepo) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return models.User{}, userrepo.ErrNotFound
}
