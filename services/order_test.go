package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
	"github.com/sumpierrezf/star-wars-api-with-token/services"
	"github.com/sumpierrezf/star-wars-api-with-token/store"
)

// recordingStore answers every lookup from the configured flags and records
// the order of calls.
type recordingStore struct {
	userExists     bool
	entityExists   bool
	favoriteExists bool
	createErr      error
	calls          []string
}

func (r *recordingStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	r.calls = append(r.calls, "user")
	if !r.userExists {
		return nil, store.ErrNotFound
	}
	return &models.User{ID: id}, nil
}

func (r *recordingStore) entity() error {
	r.calls = append(r.calls, "entity")
	if !r.entityExists {
		return store.ErrNotFound
	}
	return nil
}

func (r *recordingStore) GetCharacter(_ context.Context, id uint) (*models.Character, error) {
	if err := r.entity(); err != nil {
		return nil, err
	}
	return &models.Character{ID: id}, nil
}

func (r *recordingStore) GetPlanet(_ context.Context, id uint) (*models.Planet, error) {
	if err := r.entity(); err != nil {
		return nil, err
	}
	return &models.Planet{ID: id}, nil
}

func (r *recordingStore) GetVehicle(_ context.Context, id uint) (*models.Vehicle, error) {
	if err := r.entity(); err != nil {
		return nil, err
	}
	return &models.Vehicle{ID: id}, nil
}

func (r *recordingStore) FindFavorite(_ context.Context, userID uint, kind models.Kind, entityID uint) (*models.Favorite, error) {
	r.calls = append(r.calls, "favorite")
	if !r.favoriteExists {
		return nil, store.ErrNotFound
	}
	return models.NewFavorite(userID, kind, entityID)
}

func (r *recordingStore) CreateFavorite(context.Context, *models.Favorite) error {
	r.calls = append(r.calls, "create")
	return r.createErr
}

func (r *recordingStore) DeleteFavorite(context.Context, *models.Favorite) error {
	r.calls = append(r.calls, "delete")
	return nil
}

func TestAddCheckOrder(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		store recordingStore
		err   error
		calls []string
	}{
		{"everything fails", recordingStore{favoriteExists: true}, services.ErrAlreadyFavorited, []string{"favorite"}},
		{"entity and user missing", recordingStore{}, services.ErrEntityNotFound, []string{"favorite", "entity"}},
		{"user missing", recordingStore{entityExists: true}, services.ErrUserNotFound, []string{"favorite", "entity", "user"}},
		{"success", recordingStore{entityExists: true, userExists: true}, nil, []string{"favorite", "entity", "user", "create"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.store
			svc := services.NewFavoriteService(&st, nil)
			_, err := svc.AddCharacter(ctx, 1, 5)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
			assert.Equal(t, tc.calls, st.calls)
		})
	}
}

func TestRemoveCheckOrder(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		store recordingStore
		err   error
		calls []string
	}{
		{"everything fails", recordingStore{}, services.ErrUserNotFound, []string{"user"}},
		{"entity and favorite missing", recordingStore{userExists: true}, services.ErrEntityNotFound, []string{"user", "entity"}},
		{"favorite missing", recordingStore{userExists: true, entityExists: true}, services.ErrFavoriteNotFound, []string{"user", "entity", "favorite"}},
		{"success", recordingStore{userExists: true, entityExists: true, favoriteExists: true}, nil, []string{"user", "entity", "favorite", "delete"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.store
			svc := services.NewFavoriteService(&st, nil)
			err := svc.RemovePlanet(ctx, 1, 5)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
			assert.Equal(t, tc.calls, st.calls)
		})
	}
}

func TestAddStorageDuplicateIsConflict(t *testing.T) {
	st := &recordingStore{entityExists: true, userExists: true, createErr: store.ErrDuplicate}
	svc := services.NewFavoriteService(st, nil)

	_, err := svc.AddVehicle(context.Background(), 1, 5)
	assert.ErrorIs(t, err, services.ErrAlreadyFavorited)
}
