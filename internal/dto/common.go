package dto

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage returns a successful envelope with a message and no data.
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail returns a failed envelope with a message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"
