package views

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petster/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// PetChecker evita depender del servicio de pets completo.
type PetChecker interface {
	Exists(ctx context.Context, petID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petsChk PetChecker, log logger.Logger) {
	r.Post("/pets/{petID}", recordViewHandler(svc, petsChk, log))
}

type recordViewRequest struct {
	ShelterID string `json:"shelterId"`
}

// recordViewHandler godoc
// @Summary Registrar visita
// @Description Una fila por (mascota, shelter); repetir solo actualiza la fecha. viewCount cuenta shelters distintos.
// @Tags views
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body recordViewRequest true "Shelter que mira"
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "Pet ID and Shelter ID are required"
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/{petID} [post]
func recordViewHandler(svc *Service, petsChk PetChecker, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		petID := strings.TrimSpace(chi.URLParam(r, "petID"))
		if petID == "" || strings.TrimSpace(req.ShelterID) == "" {
			writeError(w, http.StatusBadRequest, "Pet ID and Shelter ID are required")
			return
		}

		ok, err := petsChk.Exists(r.Context(), petID)
		if err != nil {
			log.Error("Failed to record view", map[string]any{"err": err, "pet_id": petID})
			writeError(w, http.StatusInternalServerError, "Failed to record view")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}

		if err := svc.Record(r.Context(), petID, req.ShelterID); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Pet ID and Shelter ID are required")
				return
			}
			log.Error("Failed to record view", map[string]any{"err": err, "pet_id": petID})
			writeError(w, http.StatusInternalServerError, "Failed to record view")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Pet view recorded successfully"})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
