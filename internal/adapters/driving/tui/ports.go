// Package tui provides an interactive terminal browser for parsed KML documents.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Session holds the loaded document, the selection and its analysis.
	Session driving.SessionService
}

// NewPorts creates a Ports instance.
func NewPorts(session driving.SessionService) *Ports {
	return &Ports{Session: session}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}
