package images

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	imgport "petster/internal/ports/images"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid image")
	ErrNotConfigured = errors.New("image host not configured")
)

type Service struct {
	uploader imgport.Uploader
	now      func() time.Time
}

func NewService(uploader imgport.Uploader) *Service {
	return &Service{uploader: uploader, now: time.Now}
}

// Upload acepta base64 crudo o un data URL ("data:image/png;base64,...").
func (s *Service) Upload(ctx context.Context, image string) (string, error) {
	if s.uploader == nil {
		return "", ErrNotConfigured
	}

	data, err := Decode(image)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString()[:8], extension(data))
	url, err := s.uploader.Upload(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}

// Decode quita el prefijo data URL (todo hasta la primera coma) y decodifica.
func Decode(image string) ([]byte, error) {
	raw := strings.TrimSpace(image)
	if i := strings.Index(raw, ","); i >= 0 {
		raw = raw[i+1:]
	}
	if raw == "" {
		return nil, ErrInvalidInput
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// algunos clientes mandan base64 sin padding
		if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "=")); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if len(data) == 0 {
		return nil, ErrInvalidInput
	}
	return data, nil
}

func extension(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
