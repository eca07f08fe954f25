package dto

// MaxPageSize tope de limit en los listados de empresas y postulaciones. El listado de vacantes
// usa su propio tope configurable (VACANCY_PAGE_SIZE). En ambos casos un limit mayor se recorta,
// no se rechaza.
const MaxPageSize = 100

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero y recorta Limit a MaxPageSize.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"` // resultados que cumplen el filtro, sin paginar
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// HealthResponse estado del servicio y del almacenamiento.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
