package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const shelterKey ctxKey = "shelter_id"

// ViewerContext identifica al shelter que está mirando (no es autenticación):
// - query param shelterId (lo que manda el front)
// - si no, header X-Shelter-ID
// Sin ninguno de los dos el request es anónimo y los handlers no anotan favoritos.
func ViewerContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.URL.Query().Get("shelterId"))
			if id == "" {
				id = strings.TrimSpace(r.Header.Get("X-Shelter-ID"))
			}
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), shelterKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ShelterID devuelve "" si el request es anónimo.
func ShelterID(ctx context.Context) string {
	v, _ := ctx.Value(shelterKey).(string)
	return v
}

// WithShelterID para tests y llamadas internas.
func WithShelterID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, shelterKey, strings.TrimSpace(id))
}
