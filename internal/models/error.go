package models

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

// ErrorResponse carries the error envelope. Detail mirrors Error.Message for
// clients that read the flat "detail" field.
type ErrorResponse struct {
	Detail string   `json:"detail"`
	Error  APIError `json:"error"`
}
