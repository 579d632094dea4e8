package repositories

import (
	"errors"

	"qc-backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	users map[string]*models.User
	order []string
}

func NewUserRepository(users []*models.User) *UserRepository {
	r := &UserRepository{users: make(map[string]*models.User, len(users))}
	for _, u := range users {
		r.users[u.ID] = u
		r.order = append(r.order, u.ID)
	}
	return r
}

func (r *UserRepository) Get(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) List() []*models.User {
	out := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out
}
