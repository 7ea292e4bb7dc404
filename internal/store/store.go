package store

import (
	"context"
	"errors"
	"sync"

	"mercado/internal/domain"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store is the one capability set every backing implementation exposes: the
// in-memory fallback, the postgres document store, and the remote resource
// client are interchangeable behind it.
type Store[T any, PT domain.RecordPtr[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id domain.ID) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id domain.ID, item T) (T, error)
	Delete(ctx context.Context, id domain.ID) error
}

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

// NewID synthesizes a timestamp-derived identifier for records created
// outside the live resource server. Snowflake ids are monotonic per process,
// so a synthesized id never collides with another synthesized id, and the
// high timestamp bits keep it clear of small seed ids.
func NewID() domain.ID {
	nodeOnce.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
		node = n
	})
	return domain.ID(node.Generate().Int64())
}
