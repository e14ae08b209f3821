package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"petster/internal/domain/volunteers"
	"petster/internal/middleware"
	"petster/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	// Lado voluntario
	r.Get("/pets/volunteer", listByVolunteerHandler(svc, log))
	r.Post("/pets/volunteer", createPetHandler(svc, log))
	r.Patch("/pets/volunteer", toggleAdoptedHandler(svc, log))
	r.Get("/dashboard", dashboardHandler(svc, log))

	// Perfil de mascota
	r.Get("/pets/{petID}", getPetHandler(svc, log))
	r.Patch("/pets/{petID}", updatePetHandler(svc, log))
	r.Delete("/pets/{petID}", deletePetHandler(svc, log))
}

type createPetRequest struct {
	VolunteerID  string   `json:"volunteerId"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Breed        string   `json:"breed"`
	Color        string   `json:"color"`
	Age          int      `json:"age"`
	AgeUnit      string   `json:"ageUnit"`
	Gender       string   `json:"gender"`
	Weight       float64  `json:"weight"`
	WeightUnit   string   `json:"weightUnit"`
	Size         string   `json:"size"`
	AdoptionFee  *int64   `json:"adoptionFee"`
	Vaccinated   bool     `json:"vaccinated"`
	SpecialDiet  string   `json:"specialDiet"`
	Disabilities []string `json:"disabilities"`
	Behaviours   []string `json:"behaviours"`
	Images       []string `json:"images"`
	CoverImage   string   `json:"coverImage"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	VolunteerID  string    `json:"volunteerId"`
	Name         *string   `json:"name"`
	Category     *string   `json:"category"`
	Breed        *string   `json:"breed"`
	Color        *string   `json:"color"`
	Age          *int      `json:"age"`
	AgeUnit      *string   `json:"ageUnit"`
	Gender       *string   `json:"gender"`
	Weight       *float64  `json:"weight"`
	WeightUnit   *string   `json:"weightUnit"`
	Size         *string   `json:"size"`
	AdoptionFee  *int64    `json:"adoptionFee"`
	Vaccinated   *bool     `json:"vaccinated"`
	SpecialDiet  *string   `json:"specialDiet"`
	Disabilities *[]string `json:"disabilities"`
	Behaviours   *[]string `json:"behaviours"`
	Images       *[]string `json:"images"`
	CoverImage   *string   `json:"coverImage"`
}

type toggleAdoptedRequest struct {
	PetID   string `json:"petId"`
	Adopted *bool  `json:"adopted"`
}

// PetResponse es la forma pública de una mascota. isFavorite/viewCount son por request.
type PetResponse struct {
	ID           string     `json:"id"`
	Volunteer    string     `json:"volunteer"`
	Name         string     `json:"name"`
	Category     Category   `json:"category"`
	Breed        string     `json:"breed"`
	Color        string     `json:"color"`
	Age          int        `json:"age"`
	AgeUnit      AgeUnit    `json:"ageUnit"`
	Gender       Gender     `json:"gender"`
	Weight       float64    `json:"weight"`
	WeightUnit   WeightUnit `json:"weightUnit"`
	Size         Size       `json:"size"`
	AdoptionFee  *int64     `json:"adoptionFee"`
	Vaccinated   bool       `json:"vaccinated"`
	SpecialDiet  string     `json:"specialDiet"`
	Disabilities []string   `json:"disabilities"`
	Behaviours   []string   `json:"behaviours"`
	Images       []string   `json:"images"`
	CoverImage   string     `json:"coverImage"`
	Adopted      bool       `json:"adopted"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	IsFavorite bool     `json:"isFavorite"`
	ViewCount  int      `json:"viewCount"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

type petDetailResponse struct {
	Pet       PetResponse                   `json:"pet"`
	Volunteer *volunteers.VolunteerResponse `json:"volunteer"`
}

type petPageResponse struct {
	Pets        []PetResponse `json:"pets"`
	NextPageKey *string       `json:"nextPageKey"`
	TotalPages  int           `json:"totalPages"`
}

type dashboardResponse struct {
	TotalPets        int `json:"totalPets"`
	TotalAdoptedPets int `json:"totalAdoptedPets"`
	TotalPetsViewed  int `json:"totalPetsViewed"`
}

// createPetHandler godoc
// @Summary Publicar mascota
// @Description Un voluntario publica una mascota en adopción. Siempre se crea como no adoptada.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota; volunteerId acepta 'volunteers/<id>'"
// @Success 201 {object} map[string]string "petId"
// @Failure 400 {object} map[string]string "invalid pet payload"
// @Failure 500 {object} map[string]string "internal error"
// @Router /pets/volunteer [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), req.VolunteerID, CreateInput{
			Name:         req.Name,
			Category:     req.Category,
			Breed:        req.Breed,
			Color:        req.Color,
			Age:          req.Age,
			AgeUnit:      req.AgeUnit,
			Gender:       req.Gender,
			Weight:       req.Weight,
			WeightUnit:   req.WeightUnit,
			Size:         req.Size,
			AdoptionFee:  req.AdoptionFee,
			Vaccinated:   req.Vaccinated,
			SpecialDiet:  req.SpecialDiet,
			Disabilities: req.Disabilities,
			Behaviours:   req.Behaviours,
			Images:       req.Images,
			CoverImage:   req.CoverImage,
		})
		if err != nil {
			handleError(w, r, log, err, "Failed to add pet")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"petId": p.ID})
	}
}

// listByVolunteerHandler godoc
// @Summary Mascotas de un voluntario
// @Description Incluye adoptadas. Paginado por cursor (startAfterKey) con conteo de visitas.
// @Tags pets
// @Produce json
// @Param volunteerId query string true "ID del voluntario"
// @Param limit query int false "Tamaño de página (default 10)"
// @Param startAfterKey query string false "Cursor devuelto como nextPageKey"
// @Success 200 {object} petPageResponse
// @Failure 400 {object} map[string]string "volunteerId is required"
// @Router /pets/volunteer [get]
func listByVolunteerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		volunteerID := strings.TrimSpace(q.Get("volunteerId"))
		if volunteerID == "" {
			writeError(w, http.StatusBadRequest, "volunteerId is required")
			return
		}

		page, err := svc.ListByVolunteer(r.Context(), volunteerID, parseLimit(q.Get("limit"), DefaultPageSize), q.Get("startAfterKey"))
		if err != nil {
			handleError(w, r, log, err, "Failed to fetch pets")
			return
		}

		out := petPageResponse{
			Pets:       make([]PetResponse, 0, len(page.Items)),
			TotalPages: page.TotalPages,
		}
		for _, p := range page.Items {
			resp := ToResponse(p)
			resp.ViewCount = page.ViewCounts[p.ID]
			out.Pets = append(out.Pets, resp)
		}
		if page.NextCursor != "" {
			next := page.NextCursor
			out.NextPageKey = &next
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// toggleAdoptedHandler godoc
// @Summary Marcar mascota adoptada / disponible
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body toggleAdoptedRequest true "petId + adopted"
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "petId and adopted are required"
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/volunteer [patch]
func toggleAdoptedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleAdoptedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.PetID) == "" || req.Adopted == nil {
			writeError(w, http.StatusBadRequest, "petId and adopted are required")
			return
		}

		msg, err := svc.SetAdopted(r.Context(), req.PetID, *req.Adopted)
		if err != nil {
			handleError(w, r, log, err, "Failed to update adoption status")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": msg})
	}
}

// dashboardHandler godoc
// @Summary Estadísticas del voluntario
// @Tags pets
// @Produce json
// @Param volunteerId query string true "ID del voluntario"
// @Success 200 {object} dashboardResponse
// @Failure 400 {object} map[string]string "volunteerId is required"
// @Router /dashboard [get]
func dashboardHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		volunteerID := strings.TrimSpace(r.URL.Query().Get("volunteerId"))
		if volunteerID == "" {
			writeError(w, http.StatusBadRequest, "volunteerId is required")
			return
		}

		d, err := svc.Dashboard(r.Context(), volunteerID)
		if err != nil {
			handleError(w, r, log, err, "Failed to fetch dashboard")
			return
		}
		writeJSON(w, http.StatusOK, dashboardResponse{
			TotalPets:        d.TotalPets,
			TotalAdoptedPets: d.TotalAdoptedPets,
			TotalPetsViewed:  d.TotalPetsViewed,
		})
	}
}

// getPetHandler godoc
// @Summary Detalle de mascota
// @Description Devuelve la mascota con viewCount, isFavorite (si viene shelterId) y su voluntario.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param shelterId query string false "Shelter que mira (para isFavorite)"
// @Success 200 {object} petDetailResponse
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Detail(r.Context(), chi.URLParam(r, "petID"), middleware.ShelterID(r.Context()))
		if err != nil {
			handleError(w, r, log, err, "Failed to fetch pet")
			return
		}

		resp := ToResponse(d.Pet)
		resp.ViewCount = d.ViewCount
		resp.IsFavorite = d.IsFavorite

		out := petDetailResponse{Pet: resp}
		if d.Volunteer != nil {
			v := volunteers.ToResponse(*d.Volunteer)
			out.Volunteer = &v
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Description PATCH parcial. "adoptionFee": null la deja gratuita; images/coverImage ausentes o null no se tocan.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar; volunteerId requerido"
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "invalid pet payload"
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Para soportar adoptionFee: null necesitamos detectar presencia del campo.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		var req updatePetRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
		}

		free := false
		if v, exists := raw["adoptionFee"]; exists && string(v) == "null" {
			free = true
		}

		_, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), req.VolunteerID, UpdateInput{
			Name:         req.Name,
			Category:     req.Category,
			Breed:        req.Breed,
			Color:        req.Color,
			Age:          req.Age,
			AgeUnit:      req.AgeUnit,
			Gender:       req.Gender,
			Weight:       req.Weight,
			WeightUnit:   req.WeightUnit,
			Size:         req.Size,
			AdoptionFee:  req.AdoptionFee,
			FreeAdoption: free,
			Vaccinated:   req.Vaccinated,
			SpecialDiet:  req.SpecialDiet,
			Disabilities: req.Disabilities,
			Behaviours:   req.Behaviours,
			Images:       req.Images,
			CoverImage:   req.CoverImage,
		})
		if err != nil {
			handleError(w, r, log, err, "Failed to update pet")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Pet updated successfully"})
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra también sus visitas y favoritos.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} map[string]string "message"
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			handleError(w, r, log, err, "Failed to delete pet")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted successfully"})
	}
}

// DefaultPageSize cuando el cliente no manda limit (o manda algo inválido).
const DefaultPageSize = 10

// MaxPageSize acota limit para no traer páginas gigantes.
const MaxPageSize = 100

func parseLimit(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// ToResponse lo reusan discovery y favorites.
func ToResponse(p Pet) PetResponse {
	return PetResponse{
		ID:           p.ID,
		Volunteer:    VolunteerRef(p.VolunteerID),
		Name:         p.Name,
		Category:     p.Category,
		Breed:        p.Breed,
		Color:        p.Color,
		Age:          p.Age,
		AgeUnit:      p.AgeUnit,
		Gender:       p.Gender,
		Weight:       p.Weight,
		WeightUnit:   p.WeightUnit,
		Size:         p.Size,
		AdoptionFee:  p.AdoptionFee,
		Vaccinated:   p.Vaccinated,
		SpecialDiet:  p.SpecialDiet,
		Disabilities: nonNil(p.Disabilities),
		Behaviours:   nonNil(p.Behaviours),
		Images:       nonNil(p.Images),
		CoverImage:   p.CoverImage,
		Adopted:      p.Adopted,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func handleError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid pet payload")
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "pet not found")
	default:
		log.Error(fallback, map[string]any{
			"err":    err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
