package discovery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petster/internal/domain/pets"
	"petster/internal/middleware"
	"petster/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(e *env) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.ViewerContext())
	RegisterRoutes(r, e.svc, logger.NewNop())
	return r
}

func get(t *testing.T, h http.Handler, target string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestDiscoverHandler_Envelope(t *testing.T) {
	e := newEnv(t)
	e.addPet(t, nil)
	e.addPet(t, func(p *pets.Pet) { p.Category = pets.CategoryCat })

	status, body := get(t, newTestRouter(e), "/pets?selectedCategory=Cat&shelterId=s1")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]any)
	list := data["pets"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "pet-002", list[0].(map[string]any)["id"])
	assert.Nil(t, data["nextPageKey"])
	assert.Equal(t, float64(1), data["totalPages"])
}

func TestDiscoverHandler_ShortAliases(t *testing.T) {
	e := newEnv(t)
	e.addPet(t, nil)
	e.addPet(t, func(p *pets.Pet) { p.Category = pets.CategoryCat })

	_, body := get(t, newTestRouter(e), "/pets?category=Dog")
	list := body["data"].(map[string]any)["pets"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "pet-001", list[0].(map[string]any)["id"])
}

func TestDiscoverHandler_BadLocation(t *testing.T) {
	e := newEnv(t)

	status, body := get(t, newTestRouter(e), "/pets?shelterLocation=abc")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", body["status"])

	status, _ = get(t, newTestRouter(e), "/pets?shelterLocation=-6.2,106.8&radiusKm=-1")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDiscoverHandler_NonFiniteRadius(t *testing.T) {
	e := newEnv(t)
	e.addPet(t, nil)

	for _, radius := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "0"} {
		status, body := get(t, newTestRouter(e), "/pets?shelterLocation=-6.2,106.8&radiusKm="+radius)
		assert.Equal(t, http.StatusBadRequest, status, radius)
		assert.Equal(t, "invalid radiusKm", body["error"], radius)
	}
}

func TestHomeHandler(t *testing.T) {
	e := newEnv(t)
	e.addPet(t, nil)

	status, body := get(t, newTestRouter(e), "/pets/home")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "shelterId is required", body["error"])

	status, body = get(t, newTestRouter(e), "/pets/home?shelterId=s1")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["dog"], 1)
	assert.Len(t, body["cat"], 0)
	assert.Len(t, body["other"], 0)
}
