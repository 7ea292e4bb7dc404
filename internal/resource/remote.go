package resource

import (
	"context"
	"fmt"

	"mercado/internal/domain"
	"mercado/internal/store"
)

// Remote implements store.Store for one entity kind over the resource server
// REST surface: GET /{kind}, GET /{kind}/{id}, POST /{kind}, PUT /{kind}/{id},
// DELETE /{kind}/{id}.
type Remote[T any, PT domain.RecordPtr[T]] struct {
	client *Client
	kind   string
}

// NewRemote binds a client to an entity kind collection.
func NewRemote[T any, PT domain.RecordPtr[T]](client *Client, kind string) *Remote[T, PT] {
	return &Remote[T, PT]{client: client, kind: kind}
}

func (r *Remote[T, PT]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.call(ctx, "GET", "/"+r.kind, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Remote[T, PT]) Get(ctx context.Context, id domain.ID) (T, error) {
	var item T
	if err := r.client.call(ctx, "GET", r.itemPath(id), nil, PT(&item)); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (r *Remote[T, PT]) Create(ctx context.Context, item T) (T, error) {
	var created T
	if err := r.client.call(ctx, "POST", "/"+r.kind, PT(&item), PT(&created)); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

func (r *Remote[T, PT]) Update(ctx context.Context, id domain.ID, item T) (T, error) {
	PT(&item).SetRecordID(id)
	var updated T
	if err := r.client.call(ctx, "PUT", r.itemPath(id), PT(&item), PT(&updated)); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (r *Remote[T, PT]) Delete(ctx context.Context, id domain.ID) error {
	return r.client.call(ctx, "DELETE", r.itemPath(id), nil, nil)
}

func (r *Remote[T, PT]) itemPath(id domain.ID) string {
	return fmt.Sprintf("/%s/%s", r.kind, id)
}

var _ store.Store[domain.Product, *domain.Product] = (*Remote[domain.Product, *domain.Product])(nil)
