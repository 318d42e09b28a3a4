package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"evolution-connector/internal/domain/dto"
	Iservices "evolution-connector/internal/domain/interfaces/services"
	"evolution-connector/internal/infra/execution"
	"evolution-connector/internal/infra/logger"
	"evolution-connector/internal/infra/provider"
	"evolution-connector/internal/infra/services"

	"github.com/gorilla/mux"
)

const (
	defaultDispatchLimit = 50
	maxDispatchLimit     = 500
)

type SendListHandlers struct {
	Logger          *logger.Logger
	SendListService Iservices.ISendListService
	DispatchService Iservices.IDispatchService
}

// NewSendListHandlers wires the HTTP surface. dispatchService may be nil when
// history is disabled.
func NewSendListHandlers(logger *logger.Logger, sendListService Iservices.ISendListService, dispatchService Iservices.IDispatchService) *SendListHandlers {
	return &SendListHandlers{Logger: logger, SendListService: sendListService, DispatchService: dispatchService}
}

// SendList executes the sendList operation for one node execution.
//
// The body carries the node parameters, the input items and the host's
// continue-on-fail flag. A failure with continueOnFail set is still a 200,
// with the error data as the result item.
func (th *SendListHandlers) SendList(w http.ResponseWriter, r *http.Request) {
	var request dto.ExecuteRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&request); err != nil {
		http.Error(w, "Error to process JSON", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	ef := execution.NewContext(request.Parameters, request.Items, request.ContinueOnFail)
	items, err := th.SendListService.SendList(r.Context(), ef)
	if err != nil {
		var opErr *services.OperationError
		if !errors.As(err, &opErr) {
			th.Logger.Error(fmt.Sprintf("Unexpected sendList failure: %v", err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, operationErrorStatus(opErr), dto.OperationErrorResponse{
			Message:     opErr.Summary,
			Description: opErr.Description,
			Error:       opErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.ExecuteResponse{Items: items})
}

// Dispatches lists the most recent sendList attempts of an instance.
func (th *SendListHandlers) Dispatches(w http.ResponseWriter, r *http.Request) {
	if th.DispatchService == nil {
		http.Error(w, "Dispatch history is disabled", http.StatusServiceUnavailable)
		return
	}

	limit := int64(defaultDispatchLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxDispatchLimit)
	}

	instanceName := mux.Vars(r)["instanceName"]
	dispatches, err := th.DispatchService.ListByInstance(r.Context(), instanceName, limit)
	if err != nil {
		http.Error(w, "Error to list dispatches", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dispatches)
}

func operationErrorStatus(opErr *services.OperationError) int {
	var apiErr *provider.APIError
	var transportErr *provider.TransportError
	if errors.As(opErr, &apiErr) || errors.As(opErr, &transportErr) {
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
