package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/sumpierrezf/star-wars-api-with-token/database"
	"github.com/sumpierrezf/star-wars-api-with-token/models"
	"github.com/sumpierrezf/star-wars-api-with-token/routes"
	"github.com/sumpierrezf/star-wars-api-with-token/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func str(s string) *string { return &s }

func setup(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	db, err := database.Connect("sqlite:///:memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	st := store.New(db)
	ctx := context.Background()
	require.NoError(t, st.CreateUser(ctx, &models.User{ID: 1, Email: "luke@rebels.org", UserName: "luke", Password: "secret"}))
	require.NoError(t, st.CreateCharacter(ctx, &models.Character{ID: 5, CharacterName: str("Luke Skywalker")}))
	require.NoError(t, st.CreatePlanet(ctx, &models.Planet{ID: 2, PlanetName: str("Tatooine")}))
	require.NoError(t, st.CreateVehicle(ctx, &models.Vehicle{ID: 3, VehicleName: str("Snowspeeder")}))

	return routes.SetupRouter(routes.Deps{Store: st}), st
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out["msg"]
}

func TestFavoriteCharacterScenario(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/favourite/characters/1/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Personaje agregado a favoritos", msgOf(t, w))

	w = do(r, http.MethodGet, "/favourite", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favs))
	require.Len(t, favs, 1)
	assert.Equal(t, float64(1), favs[0]["user_id"])
	assert.Equal(t, float64(5), favs[0]["character_id"])
	assert.Contains(t, favs[0], "id")
	assert.Nil(t, favs[0]["planet_id"])
	assert.Nil(t, favs[0]["vehicle_id"])
	assert.Contains(t, favs[0], "planet_id")
	assert.Contains(t, favs[0], "vehicle_id")

	w = do(r, http.MethodPost, "/favourite/characters/1/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "El personaje ya ha sido agregado", msgOf(t, w))
}

func TestAddFavoriteErrors(t *testing.T) {
	r, _ := setup(t)

	cases := []struct {
		path string
		msg  string
	}{
		{"/favourite/planets/1/99", "El planeta no existe"},
		{"/favourite/planets/42/99", "El planeta no existe"},
		{"/favourite/vehicles/42/3", "Usuario no existente."},
		{"/favourite/characters/abc/5", "Recurso no encontrado"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodPost, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
		assert.Equal(t, tc.msg, msgOf(t, w), tc.path)
	}
}

func TestRemoveFavorite(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodDelete, "/favourite/vehicles/1/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "El vehiculo no esta en favoritos", msgOf(t, w))

	w = do(r, http.MethodPost, "/favourite/vehicles/1/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Vehiculo agregado a favoritos", msgOf(t, w))

	w = do(r, http.MethodDelete, "/favourite/vehicles/42/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuario no existente.", msgOf(t, w))

	w = do(r, http.MethodDelete, "/favourite/vehicles/1/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "El vehiculo no existe", msgOf(t, w))

	w = do(r, http.MethodDelete, "/favourite/vehicles/1/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Vehiculo eliminado de favoritos", msgOf(t, w))

	w = do(r, http.MethodGet, "/favourite", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUsers(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/user", map[string]string{"email": "leia@rebels.org", "user_name": "leia", "password": "alderaan"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Usuario creado correctamente.", msgOf(t, w))

	w = do(r, http.MethodPost, "/user", map[string]string{"email": "leia@rebels.org", "user_name": "organa", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "El usuario ya existe", msgOf(t, w))

	w = do(r, http.MethodPost, "/user", map[string]string{"email": "han@falcon.net"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "alderaan")
	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "leia", users[1]["user_name"])

	w = do(r, http.MethodGet, "/user/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"email":"luke@rebels.org","user_name":"luke"}`, w.Body.String())

	w = do(r, http.MethodGet, "/user/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuario no existente.", msgOf(t, w))
}

func TestCatalogLists(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodGet, "/characters", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":5,"character_name":"Luke Skywalker","eye_color":null,"gender":null,"hair_color":null,"height":null,"skin_color":null}]`, w.Body.String())

	w = do(r, http.MethodGet, "/planets", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"planet_name":"Tatooine"`)

	w = do(r, http.MethodGet, "/vehicles", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vehicle_name":"Snowspeeder"`)
}

func TestMetricsAndRequestID(t *testing.T) {
	r, _ := setup(t)

	do(r, http.MethodPost, "/favourite/planets/1/2", nil)
	w := do(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "starwars_favorites_operations_total")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
