package ferias

import (
	"fmt"
	"math"
	"time"
)

// Status classifies how close an employee is to their next vacation window.
type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusOverdue Status = "OVERDUE"
)

// warningWindowDays is how close the next acquisition date has to be before
// the client shows an alert.
const warningWindowDays = 30

const cycleDays = 365

// Elegibilidade is the result of the acquisition-cycle arithmetic.
type Elegibilidade struct {
	DiasTrabalhados   int
	CiclosCompletos   int
	ProximaAquisitiva time.Time
	DiasParaProxima   int
	DiasVencidos      int
	Status            Status
}

// Calcular derives vacation eligibility from the admission date. Cycles are a
// flat 365 days, leap years and partial-cycle carry-forward after a taken
// vacation are deliberately ignored.
func Calcular(admissao, agora time.Time) Elegibilidade {
	dia := 24 * time.Hour

	diasTrabalhados := int(math.Floor(float64(agora.Sub(admissao)) / float64(dia)))
	ciclos := diasTrabalhados / cycleDays
	proxima := admissao.Add(time.Duration(ciclos+1) * cycleDays * dia)
	diasParaProxima := int(math.Ceil(float64(proxima.Sub(agora)) / float64(dia)))
	diasVencidos := diasTrabalhados - cycleDays

	status := StatusOK
	switch {
	case diasVencidos > 0:
		status = StatusOverdue
	case diasParaProxima < warningWindowDays:
		status = StatusWarning
	}

	return Elegibilidade{
		DiasTrabalhados:   diasTrabalhados,
		CiclosCompletos:   ciclos,
		ProximaAquisitiva: proxima,
		DiasParaProxima:   diasParaProxima,
		DiasVencidos:      diasVencidos,
		Status:            status,
	}
}

// Mensagem renders the client-facing status line. The browser string-matches
// the "⚠️" prefix to decide whether to show the alert banner.
func (e Elegibilidade) Mensagem() string {
	switch e.Status {
	case StatusOverdue:
		return fmt.Sprintf("⚠️ Férias vencidas há %d dias!", e.DiasVencidos)
	case StatusWarning:
		return fmt.Sprintf("⚠️ Férias disponíveis em %d dias", e.DiasParaProxima)
	default:
		return "Férias em dia"
	}
}
