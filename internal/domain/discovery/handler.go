package discovery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"petster/internal/domain/pets"
	"petster/internal/middleware"
	"petster/internal/platform/geo"
	"petster/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/pets", discoverHandler(svc, log))
	r.Get("/pets/home", homeHandler(svc, log))
}

type response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type discoveryPage struct {
	Pets        []pets.PetResponse `json:"pets"`
	NextPageKey *string            `json:"nextPageKey"`
	TotalPages  int                `json:"totalPages"`
}

type homeResponse struct {
	Dog   []pets.PetResponse `json:"dog"`
	Cat   []pets.PetResponse `json:"cat"`
	Other []pets.PetResponse `json:"other"`
}

// discoverHandler godoc
// @Summary Buscar mascotas en adopción
// @Description Nunca devuelve adoptadas. Orden: más nuevas primero; con shelterLocation se filtra por radio y se ordena por distancia.
// @Tags discovery
// @Produce json
// @Param shelterId query string false "Shelter que mira (anota isFavorite)"
// @Param limit query int false "Tamaño de página (default 10, máx 100)"
// @Param startAfter query string false "Cursor devuelto como nextPageKey"
// @Param selectedCategory query string false "Dog | Cat | Other"
// @Param selectedGender query string false "Male | Female"
// @Param selectedAdoptionFeeRange query string false "Free | < 500k | 500k–1M | > 1M"
// @Param selectedVaccinated query string false "Yes | No"
// @Param selectedSize query string false "Small | Medium | Large"
// @Param shelterLocation query string false "lat,lon"
// @Param radiusKm query number false "Radio en km (default 10)"
// @Success 200 {object} response
// @Failure 400 {object} response
// @Failure 500 {object} response
// @Router /pets [get]
func discoverHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		req := Request{
			Filter: Filter{
				Category:    param(q.Get, "selectedCategory", "category"),
				Gender:      param(q.Get, "selectedGender", "gender"),
				AdoptionFee: param(q.Get, "selectedAdoptionFeeRange", "adoptionFee"),
				Vaccinated:  param(q.Get, "selectedVaccinated", "vaccinated"),
				Size:        param(q.Get, "selectedSize", "size"),
			},
			ShelterID: middleware.ShelterID(r.Context()),
			Cursor:    param(q.Get, "startAfter", "startAfterKey"),
		}
		if n, err := strconv.Atoi(strings.TrimSpace(q.Get("limit"))); err == nil {
			req.Limit = n
		}

		if raw := strings.TrimSpace(q.Get("shelterLocation")); raw != "" {
			pt, err := geo.ParsePoint(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "invalid shelterLocation"})
				return
			}
			req.Near = &pt
		}
		if raw := strings.TrimSpace(q.Get("radiusKm")); raw != "" {
			km, err := strconv.ParseFloat(raw, 64)
			if err != nil || !validRadius(km) {
				writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "invalid radiusKm"})
				return
			}
			req.RadiusKm = km
		}

		res, err := svc.Discover(r.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "invalid geofence"})
				return
			}
			log.Error("Failed to fetch pets", map[string]any{"err": err, "shelter_id": req.ShelterID})
			writeJSON(w, http.StatusInternalServerError, response{Status: "error", Error: "Failed to fetch pets"})
			return
		}

		out := discoveryPage{
			Pets:       toResponses(res.Items),
			TotalPages: res.TotalPages,
		}
		if res.NextCursor != "" {
			next := res.NextCursor
			out.NextPageKey = &next
		}
		writeJSON(w, http.StatusOK, response{Status: "success", Data: out})
	}
}

// homeHandler godoc
// @Summary Home por categoría
// @Description Las más nuevas no adoptadas de cada categoría, anotadas para el shelter.
// @Tags discovery
// @Produce json
// @Param shelterId query string true "ID del shelter"
// @Param limit query int false "Mascotas por categoría (default 10)"
// @Success 200 {object} homeResponse
// @Failure 400 {object} map[string]string "shelterId is required"
// @Failure 500 {object} map[string]string
// @Router /pets/home [get]
func homeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shelterID := middleware.ShelterID(r.Context())
		if shelterID == "" {
			writeError(w, http.StatusBadRequest, "shelterId is required")
			return
		}

		limit, _ := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("limit")))
		home, err := svc.Home(r.Context(), shelterID, limit)
		if err != nil {
			log.Error("Failed to fetch home pets", map[string]any{"err": err, "shelter_id": shelterID})
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, homeResponse{
			Dog:   toResponses(home.Dog),
			Cat:   toResponses(home.Cat),
			Other: toResponses(home.Other),
		})
	}
}

// param devuelve el primer nombre con valor no vacío.
func param(get func(string) string, names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(get(n)); v != "" {
			return v
		}
	}
	return ""
}

func toResponses(items []Item) []pets.PetResponse {
	out := make([]pets.PetResponse, 0, len(items))
	for _, it := range items {
		resp := pets.ToResponse(it.Pet)
		resp.IsFavorite = it.IsFavorite
		resp.ViewCount = it.ViewCount
		resp.DistanceKm = it.DistanceKm
		out = append(out, resp)
	}
	return out
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
