package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
)

// MockSessionService implements driving.SessionService for testing.
type MockSessionService struct {
	State      driving.SessionState
	SelectFunc func(ctx context.Context, index int) (*domain.AnalysisResult, error)
	Selects    []int
}

func (m *MockSessionService) Load(_ context.Context, _ domain.RawDocument) (*domain.Document, error) {
	return m.State.Document, nil
}

func (m *MockSessionService) Select(ctx context.Context, index int) (*domain.AnalysisResult, error) {
	m.Selects = append(m.Selects, index)
	if m.SelectFunc != nil {
		return m.SelectFunc(ctx, index)
	}
	return &domain.AnalysisResult{ProjectCode: domain.NoCode}, nil
}

func (m *MockSessionService) Current() driving.SessionState {
	return m.State
}

func TestNewPorts(t *testing.T) {
	session := &MockSessionService{}

	ports := NewPorts(session)

	require.NotNil(t, ports)
	assert.Equal(t, session, ports.Session)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"valid", &Ports{Session: &MockSessionService{}}, nil},
		{"missing session", &Ports{}, ErrMissingSessionService},
		{"nil ports", nil, ErrInvalidPorts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
