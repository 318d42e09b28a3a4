package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
	"time"

	"evolution-connector/internal/domain/dto"
	"evolution-connector/internal/infra/logger"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// APIError is a non-2xx answer from the Evolution API.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Evolution API returned %s: %s", e.Status, e.Body)
}

// ErrorCode is the HTTP status code, as a string.
func (e *APIError) ErrorCode() string {
	return strconv.Itoa(e.StatusCode)
}

// TransportError is a request that never got an HTTP answer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Evolution API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorCode maps refused connections and timeouts to their errno names.
// Anything else has no code.
func (e *TransportError) ErrorCode() string {
	if errors.Is(e.Err, syscall.ECONNREFUSED) {
		return "ECONNREFUSED"
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return "ETIMEDOUT"
	}
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return "ETIMEDOUT"
	}
	return ""
}

type EvolutionProvider struct {
	Logger *logger.Logger
	Client *resty.Client
}

// NewEvolutionProvider builds a client for the Evolution API served at
// baseURL, authenticated with the instance apikey header.
func NewEvolutionProvider(logger *logger.Logger, baseURL, apiKey string, timeout time.Duration) *EvolutionProvider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("apikey", apiKey).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &EvolutionProvider{Logger: logger, Client: client}
}

// Request sends a JSON request and returns the decoded-as-is response body.
// A body that is not JSON is returned as a JSON string.
func (p *EvolutionProvider) Request(ctx context.Context, options dto.RequestOptions) (json.RawMessage, error) {
	method := options.Method
	if method == "" {
		method = http.MethodPost
	}

	req := p.Client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if options.Body != nil {
		req.SetBody(options.Body)
	}

	start := time.Now()
	res, err := req.Execute(method, options.URI)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Evolution API request failed %v", err), logrus.Fields{"method": method, "uri": options.URI})
		return nil, &TransportError{Err: err}
	}

	body := res.Body()
	fields := logrus.Fields{
		"method":      method,
		"uri":         options.URI,
		"status":      res.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	}

	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		p.Logger.Error(fmt.Sprintf("Unexpected HTTP status %s response_body %s", res.Status(), string(body)), fields)
		return nil, &APIError{StatusCode: res.StatusCode(), Status: res.Status(), Body: string(body)}
	}

	p.Logger.Debug("Evolution API request succeeded", fields)

	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		quoted, err := json.Marshal(string(body))
		if err != nil {
			return nil, fmt.Errorf("failed to encode response body: %w", err)
		}
		return quoted, nil
	}
	return json.RawMessage(body), nil
}
