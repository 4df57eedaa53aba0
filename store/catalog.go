package store

import (
	"context"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
)

func (s *Store) GetCharacter(ctx context.Context, id uint) (*models.Character, error) {
	return get[models.Character](ctx, s.db, "get character", "id = ?", id)
}

func (s *Store) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return list[models.Character](ctx, s.db, "list characters")
}

func (s *Store) CreateCharacter(ctx context.Context, c *models.Character) error {
	return create(ctx, s.db, "create character", c)
}

func (s *Store) DeleteCharacter(ctx context.Context, c *models.Character) error {
	return remove(ctx, s.db, "delete character", c)
}

func (s *Store) GetPlanet(ctx context.Context, id uint) (*models.Planet, error) {
	return get[models.Planet](ctx, s.db, "get planet", "id = ?", id)
}

func (s *Store) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return list[models.Planet](ctx, s.db, "list planets")
}

func (s *Store) CreatePlanet(ctx context.Context, p *models.Planet) error {
	return create(ctx, s.db, "create planet", p)
}

func (s *Store) DeletePlanet(ctx context.Context, p *models.Planet) error {
	return remove(ctx, s.db, "delete planet", p)
}

func (s *Store) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	return get[models.Vehicle](ctx, s.db, "get vehicle", "id = ?", id)
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return list[models.Vehicle](ctx, s.db, "list vehicles")
}

func (s *Store) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	return create(ctx, s.db, "create vehicle", v)
}

func (s *Store) DeleteVehicle(ctx context.Context, v *models.Vehicle) error {
	return remove(ctx, s.db, "delete vehicle", v)
}
