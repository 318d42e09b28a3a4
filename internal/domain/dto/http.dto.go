package dto

type ExecuteRequest struct {
	Parameters     map[string]any `json:"parameters"`
	Items          []Item         `json:"items"`
	ContinueOnFail bool           `json:"continueOnFail"`
}

type ExecuteResponse struct {
	Items []ExecutionItem `json:"items"`
}

type OperationErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description"`
	Error       string `json:"error"`
}
