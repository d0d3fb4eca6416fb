package response

// Envelope is the error/response shape used by middleware-level replies.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(code, message string, data interface{}) Envelope {
	return Envelope{Code: code, Message: message, Data: data}
}

func Success(message string, data interface{}) Envelope {
	return Envelope{Code: "OK", Message: message, Data: data}
}
