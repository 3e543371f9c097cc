package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

func TestAnalyze_DefaultsToFirstFeature(t *testing.T) {
	setupTestServices(t)
	path := writeSample(t, "sites.kml", sampleKML)

	out, err := executeCommand(t, "analyze", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Tower 7")
	assert.Contains(t, out, "Project Code: PSER-1001")
	assert.Contains(t, out, "Status:       Completed")
	assert.Contains(t, out, "Additional Info:")
	assert.NotContains(t, out, "Length:")
}

func TestAnalyze_ByName(t *testing.T) {
	setupTestServices(t)
	path := writeSample(t, "sites.kml", sampleKML)

	out, err := executeCommand(t, "analyze", "--name", "line abc-4567", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Project Code: ABC-4567")
	assert.Contains(t, out, domain.LinearInfrastructure)
	assert.Contains(t, out, "Length:")
	assert.Contains(t, out, " km")
}

func TestAnalyze_JSON(t *testing.T) {
	setupTestServices(t)
	path := writeSample(t, "sites.kml", sampleKML)

	out, err := executeCommand(t, "analyze", "-i", "1", "--json", path)
	require.NoError(t, err)

	var result domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "ABC-4567", result.ProjectCode)
	require.NotNil(t, result.LengthKm)
	assert.InDelta(t, 107.9, *result.LengthKm, 0.5)
}

func TestAnalyze_YAML(t *testing.T) {
	setupTestServices(t)
	path := writeSample(t, "sites.kml", sampleKML)

	out, err := executeCommand(t, "analyze", "--yaml", path)

	require.NoError(t, err)
	assert.Contains(t, out, "project_code: PSER-1001")
	assert.Contains(t, out, "additional_info:")
	assert.NotContains(t, out, "length_km")
}

func TestAnalyze_Errors(t *testing.T) {
	setupTestServices(t)
	path := writeSample(t, "sites.kml", sampleKML)

	t.Run("index out of range", func(t *testing.T) {
		_, err := executeCommand(t, "analyze", "-i", "5", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "feature 5 of 2")
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := executeCommand(t, "analyze", "-n", "Nowhere", path)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("index and name", func(t *testing.T) {
		_, err := executeCommand(t, "analyze", "-i", "1", "-n", "Tower 7", path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := executeCommand(t, "analyze", "/nonexistent/file.kml")
		assert.ErrorContains(t, err, "failed to parse")
	})
}

func TestAnalyze_NoService(t *testing.T) {
	SetServices(&Services{})

	_, err := executeCommand(t, "analyze", "x.kml")

	assert.Error(t, err)
}

func TestFindFeature(t *testing.T) {
	doc := &domain.Document{Features: []domain.Feature{
		{Name: "tower"},
		{Name: "Tower"},
	}}

	assert.Equal(t, 1, findFeature(doc, "Tower"))
	assert.Equal(t, 0, findFeature(doc, "TOWER"))
	assert.Equal(t, -1, findFeature(doc, "pole"))
}

func TestRenderAnalysis(t *testing.T) {
	length := 12.5
	feature := domain.Feature{Name: "Line 1"}
	result := &domain.AnalysisResult{
		ProjectCode:    "ABC-1234",
		Location:       domain.NoLocation,
		ProjectType:    domain.LinearInfrastructure,
		Status:         domain.NoStatus,
		Description:    domain.NoDescription,
		AdditionalInfo: domain.NewAttributes(domain.Attribute{Key: "Owner", Value: "Grid"}),
		Interpretation: "A line.",
		LengthKm:       &length,
	}

	out := renderAnalysis(styles.NewStyles(nil), feature, result)

	assert.Contains(t, out, "Line 1")
	assert.Contains(t, out, "ABC-1234")
	assert.Contains(t, out, "12.50 km")
	assert.Contains(t, out, "Grid")
	assert.Contains(t, out, "A line.")
}
