package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petster/internal/middleware"
	"petster/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/assistant", func(r chi.Router) {
		r.Post("/", askHandler(svc, log))
		r.Get("/", historyHandler(svc, log))
		r.Patch("/", regenerateHandler(svc, log))
	})
	r.Post("/community/ai", improveHandler(svc, log))
}

type askRequest struct {
	ShelterID string `json:"shelterId"`
	Question  string `json:"question"`
}

type regenerateRequest struct {
	MessageID string `json:"messageId"`
	Question  string `json:"question"`
}

type improveRequest struct {
	Content  string `json:"content"`
	AIOption string `json:"aiOption"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type improveResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	ImprovedContent string `json:"improvedContent,omitempty"`
	Error           string `json:"error,omitempty"`
}

// askHandler godoc
// @Summary Preguntar al asistente
// @Description Reintenta la generación con backoff exponencial; guarda el par pregunta/respuesta si viene shelterId.
// @Tags assistant
// @Accept json
// @Produce json
// @Param payload body askRequest true "shelterId, question"
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "question is required"
// @Failure 500 {object} map[string]string
// @Router /assistant [post]
func askHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		answer, err := svc.Ask(r.Context(), req.ShelterID, req.Question)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "question is required")
				return
			}
			log.Error("assistant api error", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "Failed to generate assistant response")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": answer})
	}
}

// historyHandler godoc
// @Summary Historial del asistente
// @Tags assistant
// @Produce json
// @Param shelterId query string true "ID del shelter"
// @Success 200 {object} map[string][]messageResponse "messages"
// @Failure 400 {object} map[string]string "shelterId is required"
// @Failure 500 {object} map[string]string
// @Router /assistant [get]
func historyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shelterID := middleware.ShelterID(r.Context())

		msgs, err := svc.History(r.Context(), shelterID)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "shelterId is required")
				return
			}
			log.Error("error retrieving assistant history", map[string]any{"err": err, "shelter_id": shelterID})
			writeError(w, http.StatusInternalServerError, "Failed to retrieve assistant history")
			return
		}

		out := make([]messageResponse, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, messageResponse{
				ID:        m.ID,
				Sender:    m.Sender,
				Message:   m.Text,
				CreatedAt: m.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"messages": out})
	}
}

// regenerateHandler godoc
// @Summary Regenerar respuesta
// @Tags assistant
// @Accept json
// @Produce json
// @Param payload body regenerateRequest true "messageId, question"
// @Success 200 {object} map[string]string "message, messageId"
// @Failure 400 {object} map[string]string "messageId and question are required"
// @Failure 500 {object} map[string]string
// @Router /assistant [patch]
func regenerateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req regenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		answer, err := svc.Regenerate(r.Context(), req.MessageID, req.Question)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "messageId and question are required")
				return
			}
			log.Error("assistant retry error", map[string]any{"err": err, "message_id": req.MessageID})
			writeError(w, http.StatusInternalServerError, "Failed to retry assistant response")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"message":   answer,
			"messageId": req.MessageID,
		})
	}
}

// improveHandler godoc
// @Summary Mejorar post de la comunidad
// @Tags community
// @Accept json
// @Produce json
// @Param payload body improveRequest true "content, aiOption"
// @Success 200 {object} improveResponse
// @Failure 400 {object} map[string]string "Missing required fields: content or aiOption"
// @Failure 500 {object} improveResponse
// @Router /community/ai [post]
func improveHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req improveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		out, err := svc.Improve(r.Context(), req.Content, req.AIOption)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Missing required fields: content or aiOption")
				return
			}
			writeJSON(w, http.StatusInternalServerError, improveResponse{Status: "error", Error: "Failed to generate AI content"})
			return
		}
		writeJSON(w, http.StatusOK, improveResponse{
			Status:          "success",
			Message:         "Content improved successfully",
			ImprovedContent: out,
		})
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
