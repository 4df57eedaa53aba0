package services

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
	"github.com/sumpierrezf/star-wars-api-with-token/store"
)

type UserStore interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserService struct {
	store  UserStore
	logger *zap.Logger
}

func NewUserService(st UserStore, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: st, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	return users, errors.Wrap(err, "list users")
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, errors.Wrap(err, "get user")
}

// Create registers a user. A taken email fails with ErrEmailTaken and
// stores nothing. The password is kept as given.
func (s *UserService) Create(ctx context.Context, email, userName, password string) (*models.User, error) {
	if _, err := s.store.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, errors.Wrap(err, "check email")
	}

	u := &models.User{Email: email, UserName: userName, Password: password}
	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, errors.Wrap(err, "create user")
	}
	s.logger.Info("user created", zap.Uint("user_id", u.ID))
	return u, nil
}
