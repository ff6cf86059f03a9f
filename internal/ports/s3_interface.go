package ports

import (
	"context"
	"time"
)

// S3Storage : object storage holding doctor avatars
type S3Storage interface {
	GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error)
}
