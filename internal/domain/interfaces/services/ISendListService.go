package Iservices

import (
	"context"

	"evolution-connector/internal/domain/dto"
)

type ISendListService interface {
	SendList(ctx context.Context, ef IExecuteFunctions) ([]dto.ExecutionItem, error)
}
