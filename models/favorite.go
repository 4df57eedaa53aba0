package models

import "fmt"

// Kind is the catalog entity type a favorite points at.
type Kind string

const (
	KindCharacter Kind = "character"
	KindPlanet    Kind = "planet"
	KindVehicle   Kind = "vehicle"
)

// Kinds lists every catalog kind in a stable order.
var Kinds = []Kind{KindCharacter, KindPlanet, KindVehicle}

// ParseKind accepts both the singular kind and the plural route segment.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "character", "characters":
		return KindCharacter, nil
	case "planet", "planets":
		return KindPlanet, nil
	case "vehicle", "vehicles":
		return KindVehicle, nil
	}
	return "", fmt.Errorf("unknown favorite kind %q", s)
}

func (k Kind) Valid() bool {
	return k == KindCharacter || k == KindPlanet || k == KindVehicle
}

// Column returns the favorites column holding the reference for this kind.
func (k Kind) Column() string {
	return string(k) + "_id"
}

// Plural is the route segment used for the kind.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// Favorite links a user to exactly one catalog entity. Only one of
// CharacterID, PlanetID, VehicleID is ever set; use NewFavorite to build rows.
type Favorite struct {
	ID          uint  `json:"id" gorm:"primaryKey"`
	UserID      uint  `json:"user_id" gorm:"not null;index;uniqueIndex:uniq_favorites_user_character;uniqueIndex:uniq_favorites_user_planet;uniqueIndex:uniq_favorites_user_vehicle"`
	PlanetID    *uint `json:"planet_id" gorm:"uniqueIndex:uniq_favorites_user_planet"`
	CharacterID *uint `json:"character_id" gorm:"uniqueIndex:uniq_favorites_user_character"`
	VehicleID   *uint `json:"vehicle_id" gorm:"uniqueIndex:uniq_favorites_user_vehicle"`

	User      *User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Planet    *Planet    `json:"-" gorm:"foreignKey:PlanetID;references:ID;constraint:OnDelete:CASCADE"`
	Character *Character `json:"-" gorm:"foreignKey:CharacterID;references:ID;constraint:OnDelete:CASCADE"`
	Vehicle   *Vehicle   `json:"-" gorm:"foreignKey:VehicleID;references:ID;constraint:OnDelete:CASCADE"`
}

// NewFavorite builds a favorite row with only the column for kind set.
func NewFavorite(userID uint, kind Kind, entityID uint) (*Favorite, error) {
	fav := &Favorite{UserID: userID}
	id := entityID
	switch kind {
	case KindCharacter:
		fav.CharacterID = &id
	case KindPlanet:
		fav.PlanetID = &id
	case KindVehicle:
		fav.VehicleID = &id
	default:
		return nil, fmt.Errorf("unknown favorite kind %q", kind)
	}
	return fav, nil
}

// Kind reports which catalog entity the favorite points at.
func (f *Favorite) Kind() (Kind, uint) {
	switch {
	case f.CharacterID != nil:
		return KindCharacter, *f.CharacterID
	case f.PlanetID != nil:
		return KindPlanet, *f.PlanetID
	case f.VehicleID != nil:
		return KindVehicle, *f.VehicleID
	}
	return "", 0
}
