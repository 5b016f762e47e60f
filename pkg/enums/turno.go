package enums

import "fmt"

// Turno is the work shift tracked for shift-bound roles.
type Turno string

const (
	TurnoManha Turno = "MANHA"
	TurnoTarde Turno = "TARDE"
)

var validTurnos = []Turno{TurnoManha, TurnoTarde}

func (t Turno) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Turno.
func (t Turno) IsValid() bool {
	for _, candidate := range validTurnos {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTurno converts raw input into a Turno.
func ParseTurno(value string) (Turno, error) {
	for _, candidate := range validTurnos {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid turno %q", value)
}
