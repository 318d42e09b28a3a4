package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"evolution-connector/internal/domain/dto"
	"evolution-connector/internal/domain/entities"
	"evolution-connector/internal/infra/logger"
	"evolution-connector/internal/infra/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	calls    []dto.RequestOptions
	response json.RawMessage
	err      error
}

func (f *fakeProvider) Request(ctx context.Context, options dto.RequestOptions) (json.RawMessage, error) {
	f.calls = append(f.calls, options)
	return f.response, f.err
}

type fakeDispatchService struct {
	recorded []entities.Dispatch
	err      error
}

func (f *fakeDispatchService) Record(ctx context.Context, dispatch entities.Dispatch) error {
	f.recorded = append(f.recorded, dispatch)
	return f.err
}

func (f *fakeDispatchService) ListByInstance(ctx context.Context, instanceName string, limit int64) ([]entities.Dispatch, error) {
	return f.recorded, nil
}

var fixedNow = time.Date(2024, 5, 17, 13, 45, 10, 123000000, time.FixedZone("BRT", -3*60*60))

func newTestService(p provider.IEvolutionProvider, dispatches *fakeDispatchService) *SendListService {
	svc := NewSendListService(logger.Discard(), p, nil)
	if dispatches != nil {
		svc.DispatchService = dispatches
	}
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

const manualParameters = `{` + baseParameters + `,
	"sectionsManual": {"sectionValuesManual": [{"title": "S", "rows": {"rowValuesManual": [{"title": "A"}, {"title": "B"}]}}]}
}`

func TestSendListSuccess(t *testing.T) {
	p := &fakeProvider{response: json.RawMessage(`{"key":{"id":"XYZ"}}`)}
	dispatches := &fakeDispatchService{}
	svc := newTestService(p, dispatches)

	items, err := svc.SendList(context.Background(), newContext(t, manualParameters, 1, false))
	require.NoError(t, err)

	require.Len(t, p.calls, 1)
	assert.Equal(t, http.MethodPost, p.calls[0].Method)
	assert.Equal(t, "/message/sendList/main", p.calls[0].URI)
	payload, ok := p.calls[0].Body.(dto.SendListPayload)
	require.True(t, ok)
	assert.Equal(t, "5511999999999", payload.Number)

	require.Len(t, items, 1)
	assert.Nil(t, items[0].Error)
	raw, err := json.Marshal(items[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"json":{"success":true,"data":{"key":{"id":"XYZ"}}}}`, string(raw))

	require.Len(t, dispatches.recorded, 1)
	record := dispatches.recorded[0]
	assert.True(t, record.Success)
	assert.Equal(t, "main", record.InstanceName)
	assert.Equal(t, 1, record.SectionCount)
	assert.Equal(t, 2, record.RowCount)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, fixedNow.UTC(), record.CreatedAt)
}

func TestSendListAPIErrorContinueOnFail(t *testing.T) {
	apiErr := &provider.APIError{StatusCode: http.StatusBadRequest, Status: "400 Bad Request", Body: `{"error":"invalid number"}`}
	p := &fakeProvider{err: apiErr}
	dispatches := &fakeDispatchService{}
	svc := newTestService(p, dispatches)

	items, err := svc.SendList(context.Background(), newContext(t, manualParameters, 1, true))
	require.NoError(t, err)
	require.Len(t, items, 1)

	errorData, ok := items[0].JSON.(dto.ErrorData)
	require.True(t, ok)
	assert.False(t, errorData.Success)
	assert.Equal(t, "Erro ao enviar lista", errorData.Error.Message)
	assert.Equal(t, apiErr.Error(), errorData.Error.Details)
	assert.Equal(t, "400", errorData.Error.Code)
	assert.Equal(t, "2024-05-17T16:45:10.123Z", errorData.Error.Timestamp)
	require.NotNil(t, items[0].Error)
	assert.Equal(t, errorData, *items[0].Error)

	require.Len(t, dispatches.recorded, 1)
	assert.False(t, dispatches.recorded[0].Success)
	assert.Equal(t, "400", dispatches.recorded[0].ErrorCode)
}

func TestSendListErrorWithoutContinueOnFail(t *testing.T) {
	p := &fakeProvider{err: &provider.TransportError{Err: errors.New("boom")}}
	svc := newTestService(p, nil)

	items, err := svc.SendList(context.Background(), newContext(t, manualParameters, 1, false))
	assert.Nil(t, items)
	require.Error(t, err)

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Evolution API request failed: boom", opErr.Error())
	assert.Equal(t, "Erro ao enviar lista", opErr.Summary)
	assert.Equal(t, "Evolution API request failed: boom", opErr.Description)

	var transportErr *provider.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestSendListMissingParameter(t *testing.T) {
	p := &fakeProvider{}
	dispatches := &fakeDispatchService{}
	svc := newTestService(p, dispatches)

	items, err := svc.SendList(context.Background(), newContext(t, `{"instanceName":"main"}`, 1, true))
	require.NoError(t, err)
	assert.Empty(t, p.calls)

	errorData := *items[0].Error
	assert.Equal(t, "Parâmetros inválidos ou ausentes", errorData.Error.Message)
	assert.Equal(t, "Verifique se todos os campos obrigatórios foram preenchidos corretamente", errorData.Error.Details)
	assert.Equal(t, "UNKNOWN_ERROR", errorData.Error.Code)

	_, err = svc.SendList(context.Background(), newContext(t, `{}`, 1, false))
	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Parâmetros inválidos ou ausentes", opErr.Summary)
	assert.Contains(t, opErr.Error(), "Could not get parameter")

	// Nothing is recorded without an instance name.
	assert.Len(t, dispatches.recorded, 1)
}

func TestSendListValidationError(t *testing.T) {
	p := &fakeProvider{}
	svc := newTestService(p, nil)

	items, err := svc.SendList(context.Background(), newContext(t, `{`+baseParameters+`}`, 1, true))
	require.NoError(t, err)
	assert.Empty(t, p.calls)

	errorData := *items[0].Error
	assert.Equal(t, "Erro ao enviar lista", errorData.Error.Message)
	assert.Equal(t, ErrNoManualSections.Error(), errorData.Error.Details)
	assert.Equal(t, "UNKNOWN_ERROR", errorData.Error.Code)
}

func TestSendListRecordFailureDoesNotChangeResult(t *testing.T) {
	p := &fakeProvider{response: json.RawMessage(`{}`)}
	dispatches := &fakeDispatchService{err: errors.New("mongo down")}
	svc := newTestService(p, dispatches)

	items, err := svc.SendList(context.Background(), newContext(t, manualParameters, 1, false))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, dto.SuccessData{Success: true, Data: json.RawMessage(`{}`)}, items[0].JSON)
}

func TestTranslateErrorMessageMarker(t *testing.T) {
	svc := newTestService(&fakeProvider{}, nil)

	errorData := svc.TranslateError(errors.New(`Could not get parameter "sectionsManual"`))
	assert.Equal(t, "Parâmetros inválidos ou ausentes", errorData.Error.Message)

	errorData = svc.TranslateError(&provider.TransportError{Err: errors.New("dial tcp: i/o timeout")})
	assert.Equal(t, "UNKNOWN_ERROR", errorData.Error.Code)
}
