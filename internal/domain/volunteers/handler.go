package volunteers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/volunteers/{volunteerID}", func(vr chi.Router) {
		vr.Get("/", getVolunteerHandler(svc))
		vr.Put("/", upsertVolunteerHandler(svc))
	})
}

type upsertVolunteerRequest struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phoneNumber"`
	Address     string         `json:"address"`
	Location    *locationInput `json:"location"`
}

type locationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// VolunteerResponse también la usa el detalle de mascota.
type VolunteerResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phoneNumber"`
	Address     string            `json:"address"`
	Location    *locationResponse `json:"location,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// getVolunteerHandler godoc
// @Summary Perfil de voluntario
// @Tags volunteers
// @Produce json
// @Param volunteerID path string true "ID del voluntario"
// @Success 200 {object} VolunteerResponse
// @Failure 404 {object} map[string]string "volunteer not found"
// @Router /volunteers/{volunteerID} [get]
func getVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "volunteerID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "volunteer not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(v))
	}
}

// upsertVolunteerHandler godoc
// @Summary Crear o reemplazar perfil de voluntario
// @Description La ubicación (lat/lon) es la que usa la búsqueda por cercanía.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param volunteerID path string true "ID del voluntario"
// @Param payload body upsertVolunteerRequest true "Perfil"
// @Success 200 {object} VolunteerResponse
// @Failure 400 {object} map[string]string "invalid volunteer payload"
// @Router /volunteers/{volunteerID} [put]
func upsertVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertVolunteerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := ProfileInput{
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		}
		if req.Location != nil {
			in.Latitude = req.Location.Latitude
			in.Longitude = req.Location.Longitude
		}

		v, err := svc.Upsert(r.Context(), chi.URLParam(r, "volunteerID"), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "invalid volunteer payload")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(v))
	}
}

func ToResponse(v Volunteer) VolunteerResponse {
	out := VolunteerResponse{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
		Address:     v.Address,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if v.Location != nil {
		out.Location = &locationResponse{Latitude: v.Location.Latitude, Longitude: v.Location.Longitude}
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
