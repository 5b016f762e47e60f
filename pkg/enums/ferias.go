package enums

import "fmt"

// FeriasTipo is the vacation split the employee requested.
type FeriasTipo string

const (
	// FeriasIntegral is a single 30-day vacation.
	FeriasIntegral FeriasTipo = "FULL_30"
	// FeriasFracionada is one 15-day half of a split vacation.
	FeriasFracionada FeriasTipo = "SPLIT_15"
)

var validFeriasTipos = []FeriasTipo{FeriasIntegral, FeriasFracionada}

func (f FeriasTipo) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FeriasTipo.
func (f FeriasTipo) IsValid() bool {
	for _, candidate := range validFeriasTipos {
		if candidate == f {
			return true
		}
	}
	return false
}

// Dias returns how many days the request consumes.
func (f FeriasTipo) Dias() int {
	if f == FeriasFracionada {
		return 15
	}
	return 30
}

// ParseFeriasTipo converts raw input into a FeriasTipo.
func ParseFeriasTipo(value string) (FeriasTipo, error) {
	for _, candidate := range validFeriasTipos {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ferias tipo %q", value)
}

// FeriasStatus is the lifecycle state of a vacation request. Transitions out
// of PENDING happen outside this system today.
type FeriasStatus string

const (
	FeriasPendente  FeriasStatus = "PENDING"
	FeriasAprovada  FeriasStatus = "APPROVED"
	FeriasRejeitada FeriasStatus = "REJECTED"
)

func (s FeriasStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known FeriasStatus.
func (s FeriasStatus) IsValid() bool {
	switch s {
	case FeriasPendente, FeriasAprovada, FeriasRejeitada:
		return true
	}
	return false
}
