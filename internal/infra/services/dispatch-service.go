package services

import (
	"context"
	"fmt"

	"evolution-connector/internal/domain/entities"
	"evolution-connector/internal/domain/interfaces/repository"
	repocontants "evolution-connector/internal/domain/interfaces/repository/contants"
	"evolution-connector/internal/infra/logger"
)

// DispatchService keeps the history of sendList attempts.
type DispatchService struct {
	DispatchRepository repository.Repository[entities.Dispatch]
	Logger             *logger.Logger
}

func NewDispatchService(dispatchRepository repository.Repository[entities.Dispatch], logger *logger.Logger) *DispatchService {
	return &DispatchService{
		DispatchRepository: dispatchRepository,
		Logger:             logger,
	}
}

// Record inserts a new Dispatch into the database.
func (ds *DispatchService) Record(ctx context.Context, dispatch entities.Dispatch) error {
	_, err := ds.DispatchRepository.Create(ctx, repocontants.DISPATCH_COLLECTION, dispatch)
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to create Dispatch: %v", err))
		return err
	}
	return nil
}

// ListByInstance retrieves the most recent dispatches of an instance, newest first.
func (ds *DispatchService) ListByInstance(ctx context.Context, instanceName string, limit int64) ([]entities.Dispatch, error) {
	result, err := ds.DispatchRepository.FindBy(ctx, repocontants.DISPATCH_COLLECTION, repocontants.DISPATCH_INSTANCE_FIELD, instanceName, repocontants.DISPATCH_CREATED_FIELD, limit)
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to list dispatches of instance '%s': %v", instanceName, err))
		return nil, err
	}

	return result, nil
}
