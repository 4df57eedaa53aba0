package store

import (
	"context"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
)

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return get[models.User](ctx, s.db, "get user", "id = ?", id)
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, s.db, "list users")
}

// CreateUser inserts u and fills its id. A taken email yields ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return create(ctx, s.db, "create user", u)
}

func (s *Store) DeleteUser(ctx context.Context, u *models.User) error {
	return remove(ctx, s.db, "delete user", u)
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return get[models.User](ctx, s.db, "find user by email", "email = ?", email)
}
