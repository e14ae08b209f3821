package favorites

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"petster/internal/domain/pets"
	"petster/internal/middleware"
	"petster/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/pets/favorites", listFavoritesHandler(svc, log))
	r.Post("/pets/favorites", toggleFavoriteHandler(svc, log))
}

type toggleFavoriteRequest struct {
	PetID      string `json:"petId"`
	ShelterID  string `json:"shelterId"`
	IsFavorite bool   `json:"isFavorite"`
}

// envelope {status, data | error} que usa el front en favoritos y discovery.
type response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type favoritesPage struct {
	Pets        []pets.PetResponse `json:"pets"`
	NextPageKey *string            `json:"nextPageKey"`
	TotalPages  int                `json:"totalPages"`
}

// toggleFavoriteHandler godoc
// @Summary Marcar / desmarcar favorito
// @Description Idempotente: repetir el mismo pedido no duplica filas.
// @Tags favorites
// @Accept json
// @Produce json
// @Param payload body toggleFavoriteRequest true "petId, shelterId, isFavorite"
// @Success 200 {object} response
// @Failure 400 {object} response "Pet ID and Shelter ID are required"
// @Failure 404 {object} response "pet not found"
// @Failure 500 {object} response
// @Router /pets/favorites [post]
func toggleFavoriteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "invalid json"})
			return
		}

		msg, err := svc.Toggle(r.Context(), req.PetID, req.ShelterID, req.IsFavorite)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "Pet ID and Shelter ID are required"})
			case errors.Is(err, pets.ErrNotFound):
				writeJSON(w, http.StatusNotFound, response{Status: "error", Error: "pet not found"})
			default:
				log.Error("Failed to update favorite", map[string]any{"err": err, "pet_id": req.PetID})
				writeJSON(w, http.StatusInternalServerError, response{Status: "error", Error: "Failed to update favorite"})
			}
			return
		}

		writeJSON(w, http.StatusOK, response{Status: "success", Data: map[string]string{"message": msg}})
	}
}

// listFavoritesHandler godoc
// @Summary Favoritos del shelter
// @Tags favorites
// @Produce json
// @Param shelterId query string true "ID del shelter"
// @Param limit query int false "Tamaño de página (default 10)"
// @Param startAfterKey query string false "Cursor devuelto como nextPageKey"
// @Success 200 {object} response
// @Failure 400 {object} response "Shelter ID is required"
// @Router /pets/favorites [get]
func listFavoritesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shelterID := middleware.ShelterID(r.Context())
		if shelterID == "" {
			writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "Shelter ID is required"})
			return
		}

		q := r.URL.Query()
		page, err := svc.List(r.Context(), shelterID, parseLimit(q.Get("limit")), q.Get("startAfterKey"))
		if err != nil {
			log.Error("Failed to fetch favorite pets", map[string]any{"err": err, "shelter_id": shelterID})
			writeJSON(w, http.StatusInternalServerError, response{Status: "error", Error: "Failed to fetch favorite pets"})
			return
		}

		out := favoritesPage{
			Pets:       make([]pets.PetResponse, 0, len(page.Items)),
			TotalPages: page.TotalPages,
		}
		for _, p := range page.Items {
			resp := pets.ToResponse(p)
			resp.IsFavorite = true
			resp.ViewCount = page.ViewCounts[p.ID]
			out.Pets = append(out.Pets, resp)
		}
		if page.NextCursor != "" {
			next := page.NextCursor
			out.NextPageKey = &next
		}
		writeJSON(w, http.StatusOK, response{Status: "success", Data: out})
	}
}

func parseLimit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return pets.DefaultPageSize
	}
	if n > pets.MaxPageSize {
		return pets.MaxPageSize
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
