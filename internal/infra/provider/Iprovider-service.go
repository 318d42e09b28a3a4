package provider

import (
	"context"
	"encoding/json"

	"evolution-connector/internal/domain/dto"
)

type IEvolutionProvider interface {
	Request(ctx context.Context, options dto.RequestOptions) (json.RawMessage, error)
}
