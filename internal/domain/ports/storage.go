package ports

import (
	"context"
	"io"
)

// ProfileStorage abstrai o armazenamento de fotos de perfil em object storage.
// Upload retorna a chave do objeto; ProfileURL converte a chave em URL pública.
type ProfileStorage interface {
	UploadProfile(ctx context.Context, userID string, file io.Reader, size int64, contentType, filename string) (string, error)
	ProfileURL(objectKey string) string
	ObjectKey(profileURL string) (string, bool)
	DeleteProfile(ctx context.Context, objectKey string) error
}
