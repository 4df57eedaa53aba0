package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sumpierrezf/star-wars-api-with-token/database"
	"github.com/sumpierrezf/star-wars-api-with-token/models"
	"github.com/sumpierrezf/star-wars-api-with-token/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect("sqlite:///:memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

type fixture struct {
	store     *store.Store
	user      *models.User
	other     *models.User
	character *models.Character
	planet    *models.Planet
	vehicle   *models.Vehicle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := store.New(newTestDB(t))
	name := func(s string) *string { return &s }

	f := &fixture{
		store:     st,
		user:      &models.User{Email: "luke@rebels.org", UserName: "luke", Password: "x"},
		other:     &models.User{Email: "leia@rebels.org", UserName: "leia", Password: "y"},
		character: &models.Character{CharacterName: name("Luke Skywalker")},
		planet:    &models.Planet{PlanetName: name("Tatooine")},
		vehicle:   &models.Vehicle{VehicleName: name("Sand Crawler")},
	}
	require.NoError(t, st.CreateUser(ctx, f.user))
	require.NoError(t, st.CreateUser(ctx, f.other))
	require.NoError(t, st.CreateCharacter(ctx, f.character))
	require.NoError(t, st.CreatePlanet(ctx, f.planet))
	require.NoError(t, st.CreateVehicle(ctx, f.vehicle))
	return f
}

func (f *fixture) entityID(kind models.Kind) uint {
	switch kind {
	case models.KindCharacter:
		return f.character.ID
	case models.KindPlanet:
		return f.planet.ID
	}
	return f.vehicle.ID
}

func (f *fixture) favoriteCount(t *testing.T) int {
	t.Helper()
	favs, err := f.store.ListFavorites(context.Background())
	require.NoError(t, err)
	return len(favs)
}
