package pets

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
)

// Un cursor es opaco para el cliente: codifica el id del último registro de la
// página y un fingerprint del set de filtros que lo produjo. Si el cliente cambia
// los filtros y reusa el cursor, el fingerprint no coincide y se vuelve a página 1.

// Fingerprint canónico de un set de predicados (independiente del orden).
func Fingerprint(preds []Predicate) string {
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		parts = append(parts, p.String())
	}
	sort.Strings(parts)

	sum := sha256.Sum256([]byte(strings.Join(parts, "&")))
	return hex.EncodeToString(sum[:8])
}

// EncodeCursor arma el token para un id y un fingerprint.
func EncodeCursor(id, fingerprint string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(fingerprint + ":" + id))
}

// DecodeCursor devuelve (id, fingerprint, ok).
func DecodeCursor(token string) (string, string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", false
	}
	fp, id, found := strings.Cut(string(raw), ":")
	if !found || fp == "" || id == "" {
		return "", "", false
	}
	return id, fp, true
}

// PetGetter es lo mínimo que necesita ResolveCursor.
type PetGetter interface {
	GetByID(ctx context.Context, id string) (Pet, error)
}

// ResolveCursor convierte un token en el registro desde el cual continuar.
// Token ausente, inválido, de otro set de filtros o de un registro borrado => nil
// (se empieza desde la primera página). Solo errores del store se propagan.
func ResolveCursor(ctx context.Context, repo PetGetter, token string, preds []Predicate) (*Pet, error) {
	id, fp, ok := DecodeCursor(token)
	if !ok || fp != Fingerprint(preds) {
		return nil, nil
	}

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// NextCursor: token del último elemento si la página vino completa, si no "".
func NextCursor(page []Pet, limit int, preds []Predicate) string {
	if limit <= 0 || len(page) < limit || len(page) == 0 {
		return ""
	}
	return EncodeCursor(page[len(page)-1].ID, Fingerprint(preds))
}

// TotalPages = max(1, ceil(count/limit)).
func TotalPages(count, limit int) int {
	if limit <= 0 || count <= 0 {
		return 1
	}
	return (count + limit - 1) / limit
}
