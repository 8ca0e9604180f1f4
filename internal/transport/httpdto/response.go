package httpdto

// Response is the envelope every endpoint answers with. Success
// responses carry data; error responses carry a message and a
// machine-readable code.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

func NewErrorResponse(msg, code string) Response[any] {
	return Response[any]{Success: false, Error: msg, Code: code}
}
