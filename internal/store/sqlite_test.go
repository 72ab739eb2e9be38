package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenderdesk/docsift/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLiteStore_CreateAndGetRun(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	run, err := st.CreateRun(ctx, "/scans/payslip.png", "payslips")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusQueued, run.Status)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "/scans/payslip.png", got.Source)
	assert.Equal(t, "payslips", got.DocTypeID)
	assert.Nil(t, got.Result)
}

func TestSQLiteStore_UpdateRunResult(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	run, err := st.CreateRun(ctx, "/scans/doc", "")
	require.NoError(t, err)

	result := &model.DocumentResult{
		ExtractedData:    map[string]any{"gross_pay": "€3,200.00"},
		ConfidenceScores: map[string]float64{"gross_pay": 0.88},
		Report: &model.ExtractionReport{
			TotalFields:       1,
			FilledFields:      1,
			AverageConfidence: 0.88,
		},
		DocTypeID:  "payslips",
		TotalPages: 2,
		Attempts:   1,
	}

	require.NoError(t, st.UpdateRunResult(ctx, run.ID, result))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	assert.Equal(t, "payslips", got.DocTypeID)
	require.NotNil(t, got.Result)
	assert.Equal(t, "€3,200.00", got.Result.ExtractedData["gross_pay"])
	assert.Equal(t, 1, got.Result.Report.FilledFields)
}

func TestSQLiteStore_FailRun(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	run, err := st.CreateRun(ctx, "/scans/doc", "")
	require.NoError(t, err)

	require.NoError(t, st.FailRun(ctx, run.ID, "no page images found"))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Equal(t, "no page images found", got.Error)
}

func TestSQLiteStore_UpdateMissingRun(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.UpdateRunStatus(ctx, "nonexistent", model.RunStatusExtracting)
	assert.Error(t, err)

	err = st.FailRun(ctx, "nonexistent", "boom")
	assert.Error(t, err)
}

func TestSQLiteStore_ListRunsFilters(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	a, err := st.CreateRun(ctx, "/scans/a", "payslips")
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, "/scans/b", "photo_id")
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunStatus(ctx, a.ID, model.RunStatusExtracting))

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	extracting, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusExtracting})
	require.NoError(t, err)
	require.Len(t, extracting, 1)
	assert.Equal(t, a.ID, extracting[0].ID)

	payslips, err := st.ListRuns(ctx, RunFilter{DocTypeID: "payslips"})
	require.NoError(t, err)
	require.Len(t, payslips, 1)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
