package dto

// ProblemDetails cuerpo de error HTTP (title = código de error, detail = descripción).
type ProblemDetails struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// ValidationProblemDetails error 400 con violaciones por campo.
type ValidationProblemDetails struct {
	ProblemDetails
	Errors map[string][]string `json:"errors"`
}
