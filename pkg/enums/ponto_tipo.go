package enums

import (
	"fmt"
	"strings"
)

// PontoTipo is the kind of attendance event. The browser client sends the
// lowercase wire values "entrada" and "saida".
type PontoTipo string

const (
	PontoEntrada PontoTipo = "ENTRADA"
	PontoSaida   PontoTipo = "SAIDA"
)

var validPontoTipos = []PontoTipo{PontoEntrada, PontoSaida}

func (p PontoTipo) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PontoTipo.
func (p PontoTipo) IsValid() bool {
	for _, candidate := range validPontoTipos {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePontoTipo accepts both the canonical and the lowercase wire form.
func ParsePontoTipo(value string) (PontoTipo, error) {
	normalized := PontoTipo(strings.ToUpper(strings.TrimSpace(value)))
	for _, candidate := range validPontoTipos {
		if candidate == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ponto tipo %q", value)
}
