package response

import (
	"encoding/json"
	"strings"
)

// Result is the uniform outcome of a client write operation.
// Data carries the decoded payload when the operation returns one.
type Result struct {
	Success bool
	Message string
	Data    interface{}
}

func Succeeded(message string, data interface{}) Result {
	return Result{Success: true, Message: message, Data: data}
}

func Failed(message string) Result {
	return Result{Success: false, Message: message}
}

// MessageOr returns the string "message" field of a JSON object body,
// or fallback when the body is not an object or has no usable message.
func MessageOr(body []byte, fallback string) string {
	var envelope struct {
		Message interface{} `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fallback
	}

	message, ok := envelope.Message.(string)
	if !ok || strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}
