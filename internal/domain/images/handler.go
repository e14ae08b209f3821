package images

import (
	"encoding/json"
	"errors"
	"net/http"

	"petster/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/pets/volunteer/image", uploadImageHandler(svc, log))
}

type uploadRequest struct {
	Image string `json:"image"`
}

type response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// uploadImageHandler godoc
// @Summary Subir imagen de mascota
// @Description Recibe base64 (o data URL) y devuelve la URL pública del host configurado (imgbb o S3).
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body uploadRequest true "image en base64"
// @Success 200 {object} response "data.url"
// @Failure 400 {object} response "Missing image data or API key"
// @Failure 500 {object} response "Upload failed"
// @Router /pets/volunteer/image [post]
func uploadImageHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "invalid json"})
			return
		}

		url, err := svc.Upload(r.Context(), req.Image)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotConfigured):
				writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "Missing image data or API key"})
			default:
				log.Error("upload failed", map[string]any{"err": err})
				writeJSON(w, http.StatusInternalServerError, response{Status: "error", Error: "Upload failed"})
			}
			return
		}

		writeJSON(w, http.StatusOK, response{Status: "success", Data: map[string]string{"url": url}})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
