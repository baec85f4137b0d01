// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Status representa el resultado de un lookup
type Status int

const (
	StatusFound Status = iota
	StatusMissing
)

// StatusOf convierte el flag de éxito en Status
func StatusOf(found bool) Status {
	if found {
		return StatusFound
	}
	return StatusMissing
}

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Symbol retorna el símbolo Unicode para cada estado
func (s Status) Symbol() string {
	switch s {
	case StatusFound:
		return "✓"
	case StatusMissing:
		return "✗"
	default:
		return "?"
	}
}

// Color retorna el color pterm para cada estado
func (s Status) Color() pterm.Color {
	switch s {
	case StatusFound:
		return pterm.FgGreen
	case StatusMissing:
		return pterm.FgGray
	default:
		return pterm.FgDefault
	}
}

// Style retorna un pterm.Style configurado para el estado
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.Color())
}
