package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/model"
)

func TestDefault(t *testing.T) {
	cat := catalog.Default()

	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Categories, 12)
	assert.Len(t, cat.Phases, 5)
	assert.Len(t, cat.StandardTasks, 14)

	// Phases are contiguous and ordered furthest to nearest.
	for i := 0; i < len(cat.Phases)-1; i++ {
		assert.Equal(t, cat.Phases[i].EndMonths, cat.Phases[i+1].StartMonths, "phase %s", cat.Phases[i].ID)
	}
	assert.Equal(t, 0.0, cat.Phases[len(cat.Phases)-1].EndMonths)

	maxMonths := 0.0
	for _, task := range cat.StandardTasks {
		maxMonths = max(maxMonths, task.Months)
	}
	assert.Equal(t, 12.0, maxMonths)
}

func TestDefaultReturnsFreshSlices(t *testing.T) {
	a := catalog.Default()
	a.Categories[0].Name = "changed"

	b := catalog.Default()
	assert.Equal(t, "venue", b.Categories[0].Name)
}

func TestPhaseAliases(t *testing.T) {
	p, ok := catalog.Default().PhaseByID(catalog.PhaseVendorSelection)
	require.True(t, ok)
	assert.Equal(t, p.StartMonths, p.MinMonthsBefore())
	assert.Equal(t, p.EndMonths, p.MaxMonthsBefore())

	_, ok = catalog.Default().PhaseByID("honeymoon")
	assert.False(t, ok)
}

func TestCategoryByName(t *testing.T) {
	c, ok := catalog.Default().CategoryByName("legal")
	require.True(t, ok)
	assert.Equal(t, model.PriorityCritical, c.Priority)
}

func TestParse(t *testing.T) {
	t.Run("partial override keeps defaults", func(t *testing.T) {
		raw := []byte(`
categories:
  - name: venue
    keywords: [venue, barn]
    priority: critical
    min_lead_months: 10
    estimated_days: 20
`)
		cat, err := catalog.Parse(raw)
		require.NoError(t, err)
		assert.Len(t, cat.Categories, 1)
		assert.Equal(t, []string{"venue", "barn"}, cat.Categories[0].Keywords)
		assert.Len(t, cat.Phases, 5)
		assert.Len(t, cat.StandardTasks, 14)
	})

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "category without keywords",
			raw:     "categories:\n  - name: venue\n    priority: critical\n",
			wantErr: catalog.ErrNoKeywords,
		},
		{
			name:    "negative lead",
			raw:     "categories:\n  - name: venue\n    keywords: [venue]\n    priority: high\n    min_lead_months: -1\n",
			wantErr: catalog.ErrNegativeLead,
		},
		{
			name:    "unknown priority",
			raw:     "categories:\n  - name: venue\n    keywords: [venue]\n    priority: urgent\n",
			wantErr: catalog.ErrInvalidPriority,
		},
		{
			name:    "inverted phase",
			raw:     "phases:\n  - id: a\n    start_months: 2\n    end_months: 5\n    priority: low\n",
			wantErr: catalog.ErrPhaseRange,
		},
		{
			name:    "task references missing phase",
			raw:     "phases:\n  - id: only\n    start_months: 5\n    end_months: 0\n    priority: low\n",
			wantErr: catalog.ErrUnknownTaskPhase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.raw))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)
	assert.Len(t, cat.Categories, 12)

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("standard_tasks:\n  - text: Elope\n    phase: wedding-week\n    months: 0\n    urgency: low\n"), 0o600))
	cat, err = catalog.Load(path)
	require.NoError(t, err)
	require.Len(t, cat.StandardTasks, 1)
	assert.Equal(t, "Elope", cat.StandardTasks[0].Text)
}
