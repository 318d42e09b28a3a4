package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"evolution-connector/internal/domain/dto"
	"evolution-connector/internal/domain/entities"
	Iservices "evolution-connector/internal/domain/interfaces/services"
	"evolution-connector/internal/infra/execution"
	"evolution-connector/internal/infra/logger"
	"evolution-connector/internal/infra/provider"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	parameterErrorMarker = "Could not get parameter"
	unknownErrorCode     = "UNKNOWN_ERROR"
	timestampLayout      = "2006-01-02T15:04:05.000Z07:00"

	invalidParametersMessage = "Parâmetros inválidos ou ausentes"
	invalidParametersDetails = "Verifique se todos os campos obrigatórios foram preenchidos corretamente"
	sendListFailedMessage    = "Erro ao enviar lista"
)

type SendListService struct {
	Logger          *logger.Logger
	Provider        provider.IEvolutionProvider
	DispatchService Iservices.IDispatchService
	Now             func() time.Time
}

// NewSendListService creates the service. dispatchService may be nil, in
// which case attempts are not recorded.
func NewSendListService(logger *logger.Logger, evolutionProvider provider.IEvolutionProvider, dispatchService Iservices.IDispatchService) *SendListService {
	return &SendListService{
		Logger:          logger,
		Provider:        evolutionProvider,
		DispatchService: dispatchService,
		Now:             time.Now,
	}
}

// SendList builds a list message from the node parameters, posts it to the
// Evolution API and returns a single result item.
//
// On failure the error is shaped into dto.ErrorData. When the host continues
// on failure that data is returned as the item, otherwise an *OperationError
// is returned.
func (s *SendListService) SendList(ctx context.Context, ef Iservices.IExecuteFunctions) ([]dto.ExecutionItem, error) {
	request, err := BuildSendListRequest(ef)
	if err != nil {
		return s.fail(ctx, ef, request, err)
	}

	fields := logrus.Fields{
		"instance": request.InstanceName,
		"number":   request.Payload.Number,
		"sections": len(request.Payload.Sections),
	}
	s.Logger.Info("Sending list message", fields)

	response, err := s.Provider.Request(ctx, dto.RequestOptions{
		Method: http.MethodPost,
		URI:    request.URI(),
		Body:   request.Payload,
	})
	if err != nil {
		return s.fail(ctx, ef, request, err)
	}

	s.Logger.Info("List message sent successfully", fields)
	s.record(ctx, newDispatch(request, s.Now()), func(d *entities.Dispatch) {
		d.Success = true
		d.Response = response
	})

	return []dto.ExecutionItem{{
		JSON: dto.SuccessData{Success: true, Data: response},
	}}, nil
}

func (s *SendListService) fail(ctx context.Context, ef Iservices.IExecuteFunctions, request SendListRequest, err error) ([]dto.ExecutionItem, error) {
	errorData := s.TranslateError(err)
	s.Logger.Error(fmt.Sprintf("Failed to send list message: %v", err), logrus.Fields{
		"instance": request.InstanceName,
		"code":     errorData.Error.Code,
	})

	if request.InstanceName != "" {
		s.record(ctx, newDispatch(request, s.Now()), func(d *entities.Dispatch) {
			d.ErrorMessage = err.Error()
			d.ErrorCode = errorData.Error.Code
		})
	}

	if !ef.ContinueOnFail() {
		return nil, &OperationError{
			Message:     err.Error(),
			Summary:     errorData.Error.Message,
			Description: errorData.Error.Details,
			Cause:       err,
		}
	}

	return []dto.ExecutionItem{{JSON: errorData, Error: &errorData}}, nil
}

// TranslateError shapes err into the uniform failure result.
func (s *SendListService) TranslateError(err error) dto.ErrorData {
	detail := dto.ErrorDetail{
		Message:   sendListFailedMessage,
		Details:   err.Error(),
		Code:      errorCode(err),
		Timestamp: s.Now().UTC().Format(timestampLayout),
	}

	if isParameterError(err) {
		detail.Message = invalidParametersMessage
		detail.Details = invalidParametersDetails
	}

	return dto.ErrorData{Success: false, Error: detail}
}

func isParameterError(err error) bool {
	var paramErr *execution.ParameterError
	return errors.As(err, &paramErr) || strings.Contains(err.Error(), parameterErrorMarker)
}

type codedError interface {
	ErrorCode() string
}

func errorCode(err error) string {
	var coded codedError
	if errors.As(err, &coded) && coded.ErrorCode() != "" {
		return coded.ErrorCode()
	}
	return unknownErrorCode
}

func newDispatch(request SendListRequest, now time.Time) entities.Dispatch {
	rows := 0
	for _, section := range request.Payload.Sections {
		rows += len(section.Rows)
	}

	return entities.Dispatch{
		ID:           uuid.NewString(),
		InstanceName: request.InstanceName,
		Number:       request.Payload.Number,
		SectionCount: len(request.Payload.Sections),
		RowCount:     rows,
		CreatedAt:    now.UTC(),
	}
}

// record stores the dispatch when history is enabled. Failures are logged only.
func (s *SendListService) record(ctx context.Context, dispatch entities.Dispatch, fill func(*entities.Dispatch)) {
	if s.DispatchService == nil {
		return
	}

	fill(&dispatch)
	if err := s.DispatchService.Record(ctx, dispatch); err != nil {
		s.Logger.Warn(fmt.Sprintf("Failed to record dispatch %s: %v", dispatch.ID, err))
	}
}
