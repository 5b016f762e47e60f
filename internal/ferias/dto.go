package ferias

import "time"

// InfoResponse is the eligibility payload. The client only interprets the
// StatusFerias prefix, the numeric fields are informational.
type InfoResponse struct {
	StatusFerias          string `json:"statusFerias"`
	ProximaDataAquisitiva string `json:"proximaDataAquisitiva"`
	DiasTrabalhados       int    `json:"diasTrabalhados"`
	DiasParaProxima       int    `json:"diasParaProxima"`
	DiasVencidos          int    `json:"diasVencidos"`
}

// SolicitarRequest carries the requested vacation modality.
type SolicitarRequest struct {
	Tipo string `json:"tipo" validate:"required"`
}

// SolicitarResponse acknowledges a request with its computed window.
type SolicitarResponse struct {
	OK         bool   `json:"ok"`
	DataInicio string `json:"dataInicio"`
	DataFim    string `json:"dataFim"`
}

// UltimaFerias is the most recent vacation taken by an employee.
type UltimaFerias struct {
	Tipo   string `json:"tipo"`
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

// UltimasResponse wraps the last vacation, nil when none was ever requested.
type UltimasResponse struct {
	UltimaFerias *UltimaFerias `json:"ultimaFerias"`
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
