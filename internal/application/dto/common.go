package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListQuery parámetros comunes de listados.
type ListQuery struct {
	Limit int `query:"limit"`
}

// DefaultLimit aplica el límite por defecto de los listados (100) y acota los
// pedidos excesivos.
func (q *ListQuery) DefaultLimit() {
	if q.Limit <= 0 || q.Limit > 500 {
		q.Limit = 100
	}
}
