package services

import (
	"errors"
	"fmt"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEntityNotFound   = errors.New("catalog entity not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrAlreadyFavorited = errors.New("entity already favorited")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUnknownKind      = errors.New("unknown favorite kind")
)

// EntityNotFoundError reports a missing character, planet or vehicle.
// It matches ErrEntityNotFound with errors.Is.
type EntityNotFoundError struct {
	Kind models.Kind
	ID   uint
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}

// IsNotFound reports whether err belongs to the not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEntityNotFound) ||
		errors.Is(err, ErrFavoriteNotFound)
}

// IsConflict reports whether err belongs to the conflict class.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyFavorited) || errors.Is(err, ErrEmailTaken)
}
