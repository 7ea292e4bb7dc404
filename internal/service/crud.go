// Package service implements the CRUD access layer every screen goes
// through: try the live resource server first, degrade transparently to the
// seeded fallback store, and tell the caller which one answered.
package service

import (
	"context"
	"errors"

	"mercado/internal/domain"
	"mercado/internal/metrics"
	"mercado/internal/resource"
	"mercado/internal/store"

	"go.uber.org/zap"
)

// Source identifies which backing store produced a result.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Collection is the result bag for getAll.
type Collection[T any] struct {
	Data   []T    `json:"data"`
	Source Source `json:"source"`
}

// Item is the result bag for single-record operations. Data is nil when no
// record matched; that is an empty result, not an error.
type Item[T any] struct {
	Data   *T     `json:"data"`
	Source Source `json:"source"`
}

// Deleted is the result bag for delete. Success is false when the fallback
// store had no record to remove.
type Deleted struct {
	Success bool   `json:"success"`
	Source  Source `json:"source"`
}

// Resource is the uniform CRUD service for one entity kind.
//
// Behavior contract: every operation attempts the live store unless offline
// mode is set, and on any unavailable condition serves the fallback store
// instead. Transport failures never escape to the caller; the only errors an
// operation returns are its own encoding problems, which the fallback path
// does not produce.
type Resource[T any, PT domain.RecordPtr[T]] struct {
	kind     string
	live     store.Store[T, PT]
	fallback store.Store[T, PT]
	offline  bool
	logger   *zap.Logger
	metrics  *metrics.Collector
}

// NewResource wires a live store and a fallback store for one kind. With
// offline set the live store is never consulted.
func NewResource[T any, PT domain.RecordPtr[T]](
	kind string,
	live store.Store[T, PT],
	fallback store.Store[T, PT],
	offline bool,
	logger *zap.Logger,
	collector *metrics.Collector,
) *Resource[T, PT] {
	return &Resource[T, PT]{
		kind:     kind,
		live:     live,
		fallback: fallback,
		offline:  offline,
		logger:   logger,
		metrics:  collector,
	}
}

// Kind reports the entity kind this service serves.
func (s *Resource[T, PT]) Kind() string { return s.kind }

// GetAll returns the full collection.
func (s *Resource[T, PT]) GetAll(ctx context.Context) (Collection[T], error) {
	if !s.offline {
		items, err := s.live.List(ctx)
		if err == nil {
			s.metrics.RecordResult(s.kind, "list", string(SourceLive))
			return Collection[T]{Data: items, Source: SourceLive}, nil
		}
		s.degraded("list", err)
	}

	items, err := s.fallback.List(ctx)
	if err != nil {
		return Collection[T]{}, err
	}
	s.metrics.RecordResult(s.kind, "list", string(SourceFallback))
	return Collection[T]{Data: items, Source: SourceFallback}, nil
}

// GetByID returns one record, or an empty result when no store has it.
func (s *Resource[T, PT]) GetByID(ctx context.Context, id domain.ID) (Item[T], error) {
	if !s.offline {
		item, err := s.live.Get(ctx, id)
		if err == nil {
			s.metrics.RecordResult(s.kind, "get", string(SourceLive))
			return Item[T]{Data: &item, Source: SourceLive}, nil
		}
		s.degraded("get", err)
	}

	item, err := s.fallback.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Item[T]{Source: SourceFallback}, nil
		}
		return Item[T]{}, err
	}
	s.metrics.RecordResult(s.kind, "get", string(SourceFallback))
	return Item[T]{Data: &item, Source: SourceFallback}, nil
}

// Create stores a new record and returns it with its assigned id.
func (s *Resource[T, PT]) Create(ctx context.Context, item T) (Item[T], error) {
	if !s.offline {
		created, err := s.live.Create(ctx, item)
		if err == nil {
			s.metrics.RecordResult(s.kind, "create", string(SourceLive))
			return Item[T]{Data: &created, Source: SourceLive}, nil
		}
		s.degraded("create", err)
	}

	created, err := s.fallback.Create(ctx, item)
	if err != nil {
		return Item[T]{}, err
	}
	s.metrics.RecordResult(s.kind, "create", string(SourceFallback))
	return Item[T]{Data: &created, Source: SourceFallback}, nil
}

// Update replaces the record with the given id. The path id wins over any id
// carried in the payload. An unknown id yields an empty result.
func (s *Resource[T, PT]) Update(ctx context.Context, id domain.ID, item T) (Item[T], error) {
	if !s.offline {
		updated, err := s.live.Update(ctx, id, item)
		if err == nil {
			s.metrics.RecordResult(s.kind, "update", string(SourceLive))
			return Item[T]{Data: &updated, Source: SourceLive}, nil
		}
		s.degraded("update", err)
	}

	updated, err := s.fallback.Update(ctx, id, item)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Item[T]{Source: SourceFallback}, nil
		}
		return Item[T]{}, err
	}
	s.metrics.RecordResult(s.kind, "update", string(SourceFallback))
	return Item[T]{Data: &updated, Source: SourceFallback}, nil
}

// Delete removes the record with the given id.
func (s *Resource[T, PT]) Delete(ctx context.Context, id domain.ID) (Deleted, error) {
	if !s.offline {
		if err := s.live.Delete(ctx, id); err == nil {
			s.metrics.RecordResult(s.kind, "delete", string(SourceLive))
			return Deleted{Success: true, Source: SourceLive}, nil
		} else {
			s.degraded("delete", err)
		}
	}

	if err := s.fallback.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Deleted{Success: false, Source: SourceFallback}, nil
		}
		return Deleted{}, err
	}
	s.metrics.RecordResult(s.kind, "delete", string(SourceFallback))
	return Deleted{Success: true, Source: SourceFallback}, nil
}

func (s *Resource[T, PT]) degraded(operation string, err error) {
	if errors.Is(err, resource.ErrUnavailable) {
		s.logger.Warn("Live resource unavailable, serving fallback",
			zap.String("kind", s.kind),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return
	}
	// Non-transport failures from the live store degrade the same way; the
	// caller still only ever sees data.
	s.logger.Warn("Live resource call failed, serving fallback",
		zap.String("kind", s.kind),
		zap.String("operation", operation),
		zap.Error(err),
	)
}
