package dto

import "encoding/json"

// Item is the JSON payload of one workflow item.
type Item map[string]any

// ExecutionItem is one item returned by a node operation.
type ExecutionItem struct {
	JSON  any        `json:"json"`
	Error *ErrorData `json:"error,omitempty"`
}

type SuccessData struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type ErrorData struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message   string `json:"message"`
	Details   string `json:"details"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}
