package services

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
	"github.com/sumpierrezf/star-wars-api-with-token/store"
	"github.com/sumpierrezf/star-wars-api-with-token/utils"
)

// FavoriteStore is the slice of the entity store the favorites service needs.
type FavoriteStore interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetCharacter(ctx context.Context, id uint) (*models.Character, error)
	GetPlanet(ctx context.Context, id uint) (*models.Planet, error)
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	FindFavorite(ctx context.Context, userID uint, kind models.Kind, entityID uint) (*models.Favorite, error)
	CreateFavorite(ctx context.Context, f *models.Favorite) error
	DeleteFavorite(ctx context.Context, f *models.Favorite) error
}

type FavoriteService struct {
	store  FavoriteStore
	logger *zap.Logger
}

func NewFavoriteService(st FavoriteStore, logger *zap.Logger) *FavoriteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoriteService{store: st, logger: logger}
}

func (s *FavoriteService) AddCharacter(ctx context.Context, userID, characterID uint) (*models.Favorite, error) {
	return s.Add(ctx, userID, characterID, models.KindCharacter)
}

func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID uint) (*models.Favorite, error) {
	return s.Add(ctx, userID, planetID, models.KindPlanet)
}

func (s *FavoriteService) AddVehicle(ctx context.Context, userID, vehicleID uint) (*models.Favorite, error) {
	return s.Add(ctx, userID, vehicleID, models.KindVehicle)
}

func (s *FavoriteService) RemoveCharacter(ctx context.Context, userID, characterID uint) error {
	return s.Remove(ctx, userID, characterID, models.KindCharacter)
}

func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID uint) error {
	return s.Remove(ctx, userID, planetID, models.KindPlanet)
}

func (s *FavoriteService) RemoveVehicle(ctx context.Context, userID, vehicleID uint) error {
	return s.Remove(ctx, userID, vehicleID, models.KindVehicle)
}

// Add links userID to entityID. Checks run duplicate, entity, user in that
// order; the first failing one decides the error.
func (s *FavoriteService) Add(ctx context.Context, userID, entityID uint, kind models.Kind) (*models.Favorite, error) {
	fav, err := s.add(ctx, userID, entityID, kind)
	s.observe(kind, "add", userID, entityID, err)
	return fav, err
}

func (s *FavoriteService) add(ctx context.Context, userID, entityID uint, kind models.Kind) (*models.Favorite, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	if _, err := s.store.FindFavorite(ctx, userID, kind, entityID); err == nil {
		return nil, ErrAlreadyFavorited
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, errors.Wrap(err, "check existing favorite")
	}

	if err := s.entityExists(ctx, kind, entityID); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "load user")
	}

	fav, err := models.NewFavorite(userID, kind, entityID)
	if err != nil {
		return nil, ErrUnknownKind
	}
	if err := s.store.CreateFavorite(ctx, fav); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrAlreadyFavorited
		}
		return nil, errors.Wrap(err, "create favorite")
	}
	return fav, nil
}

// Remove unlinks userID from entityID. Checks run user, entity, favorite in
// that order, the reverse of Add.
func (s *FavoriteService) Remove(ctx context.Context, userID, entityID uint, kind models.Kind) error {
	err := s.remove(ctx, userID, entityID, kind)
	s.observe(kind, "remove", userID, entityID, err)
	return err
}

func (s *FavoriteService) remove(ctx context.Context, userID, entityID uint, kind models.Kind) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return errors.Wrap(err, "load user")
	}

	if err := s.entityExists(ctx, kind, entityID); err != nil {
		return err
	}

	fav, err := s.store.FindFavorite(ctx, userID, kind, entityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return errors.Wrap(err, "find favorite")
	}

	if err := s.store.DeleteFavorite(ctx, fav); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return errors.Wrap(err, "delete favorite")
	}
	return nil
}

func (s *FavoriteService) entityExists(ctx context.Context, kind models.Kind, id uint) error {
	var err error
	switch kind {
	case models.KindCharacter:
		_, err = s.store.GetCharacter(ctx, id)
	case models.KindPlanet:
		_, err = s.store.GetPlanet(ctx, id)
	case models.KindVehicle:
		_, err = s.store.GetVehicle(ctx, id)
	default:
		return ErrUnknownKind
	}
	if errors.Is(err, store.ErrNotFound) {
		return &EntityNotFoundError{Kind: kind, ID: id}
	}
	if err != nil {
		return errors.Wrapf(err, "load %s", kind)
	}
	return nil
}

func (s *FavoriteService) observe(kind models.Kind, op string, userID, entityID uint, err error) {
	outcome := outcomeOf(err)
	utils.FavoriteOperations.WithLabelValues(string(kind), op, outcome).Inc()

	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.String("op", op),
		zap.Uint("user_id", userID),
		zap.Uint("entity_id", entityID),
		zap.String("outcome", outcome),
	}
	if outcome == "error" {
		s.logger.Error("favorite operation failed", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Debug("favorite operation", fields...)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsNotFound(err):
		return "not_found"
	case IsConflict(err):
		return "conflict"
	case errors.Is(err, ErrUnknownKind):
		return "bad_request"
	}
	return "error"
}
