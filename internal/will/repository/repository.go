package repository

import (
	"context"
	"errors"

	"github.com/mycrmsystems/elatco-will-system/internal/will"
)

var ErrNotFound = errors.New("will not found")

// Repository provides persistence for will records. Records are immutable
// after creation except for the artifact filename, which UpdateArtifact sets
// after the first successful render.
type Repository interface {
	Create(ctx context.Context, w *will.Will) (int64, error)
	Get(ctx context.Context, id int64) (*will.Will, error)
	List(ctx context.Context) ([]*will.Will, error)
	UpdateArtifact(ctx context.Context, id int64, filename string) error
}
