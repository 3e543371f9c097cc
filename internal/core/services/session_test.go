package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/decoders/kml"
)

const sessionKML = `<kml>
	<Placemark><name>Line A</name><LineString><coordinates>121,14 121.1,14.1</coordinates></LineString></Placemark>
	<Placemark><name>Pole B</name><Point><coordinates>121.2,14.2</coordinates></Point></Placemark>
</kml>`

func newTestSession(analyzer *mockAnalyzer) *SessionService {
	parser := NewParserService(NewDecoderRegistry(kml.New()), nil)
	if analyzer != nil {
		return NewSessionService(parser, analyzer)
	}
	return NewSessionService(parser, NewAnalyzerService())
}

func TestSessionService_Initial(t *testing.T) {
	state := newTestSession(nil).Current()
	assert.Nil(t, state.Document)
	assert.Equal(t, -1, state.Selected)
	assert.Nil(t, state.Analysis)
}

func TestSessionService_SelectWithoutDocument(t *testing.T) {
	_, err := newTestSession(nil).Select(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrNoDocument)
}

func TestSessionService_LoadAndSelect(t *testing.T) {
	session := newTestSession(nil)
	ctx := context.Background()

	doc, err := session.Load(ctx, domain.RawDocument{Content: []byte(sessionKML)})
	require.NoError(t, err)
	require.Len(t, doc.Features, 2)

	result, err := session.Select(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pole B", result.ProjectCode)

	state := session.Current()
	assert.Equal(t, 1, state.Selected)
	assert.Same(t, result, state.Analysis)
}

func TestSessionService_FailedSelectKeepsPrevious(t *testing.T) {
	session := newTestSession(nil)
	ctx := context.Background()

	_, err := session.Load(ctx, domain.RawDocument{Content: []byte(sessionKML)})
	require.NoError(t, err)
	previous, err := session.Select(ctx, 0)
	require.NoError(t, err)

	_, err = session.Select(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	state := session.Current()
	assert.Equal(t, 0, state.Selected)
	assert.Same(t, previous, state.Analysis)
}

func TestSessionService_AnalysisErrorKeepsPrevious(t *testing.T) {
	analyzer := &mockAnalyzer{}
	session := newTestSession(analyzer)
	ctx := context.Background()

	_, err := session.Load(ctx, domain.RawDocument{Content: []byte(sessionKML)})
	require.NoError(t, err)
	previous, err := session.Select(ctx, 0)
	require.NoError(t, err)

	analyzer.err = &domain.AnalysisError{Reason: "boom"}
	_, err = session.Select(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrAnalysis)

	state := session.Current()
	assert.Equal(t, 0, state.Selected)
	assert.Same(t, previous, state.Analysis)
}

func TestSessionService_LoadClearsSelection(t *testing.T) {
	session := newTestSession(nil)
	ctx := context.Background()

	_, err := session.Load(ctx, domain.RawDocument{Content: []byte(sessionKML)})
	require.NoError(t, err)
	_, err = session.Select(ctx, 0)
	require.NoError(t, err)

	_, err = session.Load(ctx, domain.RawDocument{Content: []byte(sessionKML)})
	require.NoError(t, err)

	state := session.Current()
	assert.Equal(t, -1, state.Selected)
	assert.Nil(t, state.Analysis)
}

func TestSessionService_FailedLoadKeepsDocument(t *testing.T) {
	session := newTestSession(nil)
	ctx := context.Background()

	doc, err := session.Load(ctx, domain.RawDocument{Content: []byte(sessionKML)})
	require.NoError(t, err)

	_, err = session.Load(ctx, domain.RawDocument{Content: []byte("not markup")})
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Same(t, doc, session.Current().Document)
}
