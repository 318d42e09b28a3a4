package Iservices

import (
	"context"

	"evolution-connector/internal/domain/entities"
)

type IDispatchService interface {
	Record(ctx context.Context, dispatch entities.Dispatch) error
	ListByInstance(ctx context.Context, instanceName string, limit int64) ([]entities.Dispatch, error)
}
