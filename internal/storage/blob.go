package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
)

type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) // devolve a chave canônica
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// New escolhe o BlobStore pelo storage_driver. "none" devolve nil: o
// arquivamento de relatórios fica desligado.
func New(ctx context.Context, s config.Settings) (BlobStore, error) {
	switch s.StorageDriver {
	case "", "none":
		return nil, nil
	case "fs":
		return NewFSStore(s.StoragePath)
	case "minio":
		return NewMinioStore(ctx, MinioOptions{
			Endpoint:  s.MinioEndpoint,
			AccessKey: s.MinioAccessKey,
			SecretKey: s.MinioSecretKey,
			Bucket:    s.MinioBucket,
			UseSSL:    s.MinioUseSSL,
		})
	default:
		return nil, fmt.Errorf("storage_driver desconhecido: %q", s.StorageDriver)
	}
}
