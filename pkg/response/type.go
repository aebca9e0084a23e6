package response

// Resp is the uniform JSON envelope for every endpoint.
//
// List endpoints set Total/Page/Limit; writes set Message; failures set
// Success=false with Message and, for storage faults, the underlying Error.
type Resp struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Page    *int   `json:"page,omitempty"`
	Limit   *int   `json:"limit,omitempty"`
}
