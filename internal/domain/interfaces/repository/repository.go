package repository

import "context"

type Repository[T any] interface {
	Create(ctx context.Context, collectionName string, entity T) (T, error)
	// FindBy returns up to limit documents whose field equals value, sorted
	// by sortField in descending order. A limit of 0 means no limit.
	FindBy(ctx context.Context, collectionName string, field string, value string, sortField string, limit int64) ([]T, error)
}
