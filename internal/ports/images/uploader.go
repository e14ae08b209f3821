package images

import "context"

// Uploader sube una imagen ya decodificada y devuelve la URL pública.
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}
