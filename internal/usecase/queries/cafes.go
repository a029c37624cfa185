package queries

import (
	"context"

	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/pkg/errs"
)

type CafeQueries interface {
	List(ctx context.Context) ([]*CafeView, error)
	Get(ctx context.Context, id string) (*CafeView, error)
}

type cafeQueriesImpl struct {
	catalog *cafe.Catalog
}

func NewCafeQueries(catalog *cafe.Catalog) CafeQueries {
	return &cafeQueriesImpl{catalog: catalog}
}

func (q *cafeQueriesImpl) List(_ context.Context) ([]*CafeView, error) {
	cafes := q.catalog.All()
	views := make([]*CafeView, len(cafes))
	for i, c := range cafes {
		views[i] = NewCafeView(c)
	}
	return views, nil
}

func (q *cafeQueriesImpl) Get(_ context.Context, id string) (*CafeView, error) {
	c, ok := q.catalog.FindByID(id)
	if !ok {
		return nil, errs.ErrCafeNotFound
	}
	return NewCafeView(c), nil
}
