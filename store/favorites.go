package store

import (
	"context"
	"fmt"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
)

func (s *Store) GetFavorite(ctx context.Context, id uint) (*models.Favorite, error) {
	return get[models.Favorite](ctx, s.db, "get favorite", "id = ?", id)
}

func (s *Store) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return list[models.Favorite](ctx, s.db, "list favorites")
}

// CreateFavorite inserts f. When the (user, entity) pair is already stored
// the unique index rejects the row and ErrDuplicate is returned.
func (s *Store) CreateFavorite(ctx context.Context, f *models.Favorite) error {
	return create(ctx, s.db, "create favorite", f)
}

func (s *Store) DeleteFavorite(ctx context.Context, f *models.Favorite) error {
	return remove(ctx, s.db, "delete favorite", f)
}

// FindFavorite looks up the favorite linking userID to entityID of the given kind.
func (s *Store) FindFavorite(ctx context.Context, userID uint, kind models.Kind, entityID uint) (*models.Favorite, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown favorite kind %q", kind)
	}
	query := fmt.Sprintf("user_id = ? AND %s = ?", kind.Column())
	return get[models.Favorite](ctx, s.db, "find favorite", query, userID, entityID)
}

func (s *Store) FindFavoriteByUserAndCharacter(ctx context.Context, userID, characterID uint) (*models.Favorite, error) {
	return s.FindFavorite(ctx, userID, models.KindCharacter, characterID)
}

func (s *Store) FindFavoriteByUserAndPlanet(ctx context.Context, userID, planetID uint) (*models.Favorite, error) {
	return s.FindFavorite(ctx, userID, models.KindPlanet, planetID)
}

func (s *Store) FindFavoriteByUserAndVehicle(ctx context.Context, userID, vehicleID uint) (*models.Favorite, error) {
	return s.FindFavorite(ctx, userID, models.KindVehicle, vehicleID)
}
