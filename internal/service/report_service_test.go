package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avika/internal/model"
)

func coveredSession(t *testing.T, cat *model.Catalog, answers map[string]string) *model.Session {
	t.Helper()
	sess := model.NewSession("test-session")
	for id, label := range answers {
		item, ok := cat.ItemByID(id)
		require.True(t, ok, "item %s", id)
		opt, ok := item.Option(label)
		require.True(t, ok, "option %s on %s", label, id)
		sess.Record(id, opt, model.SourceAssistant)
	}
	return sess
}

func TestBuildReportCompleteSession(t *testing.T) {
	cat := testCatalog()
	svc := NewReportService(cat)

	sess := coveredSession(t, cat, map[string]string{
		"m1": "B", // 3
		"m2": "D", // 1
		"s1": "A", // 4
		"s2": "A", // 4
	})

	report, err := svc.BuildReport(sess, false)
	require.NoError(t, err)

	assert.False(t, report.Partial)
	require.Len(t, report.Categories, 2)

	mood := report.Categories[0]
	assert.Equal(t, "Mood", mood.Name)
	assert.InDelta(t, 2.0, mood.Raw, 1e-9)
	assert.InDelta(t, 2.0, mood.Display, 1e-9)
	assert.Equal(t, 2, mood.CoveredItems)

	sleep := report.Categories[1]
	assert.InDelta(t, 4.0, sleep.Raw, 1e-9)

	// Overall is the unweighted mean of category means.
	assert.InDelta(t, 3.0, report.Overall, 1e-9)
	assert.InDelta(t, 3.0, report.OverallDisp, 1e-9)
}

func TestBuildReportRounding(t *testing.T) {
	cat := testCatalog()
	svc := NewReportService(cat)

	sess := coveredSession(t, cat, map[string]string{
		"m1": "A", // 4
		"m2": "B", // 3 -> mood raw 3.5
		"s1": "A", // 4
		"s2": "C", // 2 -> sleep raw 3.0
	})

	report, err := svc.BuildReport(sess, false)
	require.NoError(t, err)

	assert.InDelta(t, 3.5, report.Categories[0].Display, 1e-9)
	assert.InDelta(t, 3.25, report.Overall, 1e-9)
	assert.InDelta(t, 3.3, report.OverallDisp, 1e-9)
}

func TestBuildReportRejectsIncompleteWithoutFlag(t *testing.T) {
	cat := testCatalog()
	svc := NewReportService(cat)

	sess := coveredSession(t, cat, map[string]string{"m1": "A"})

	_, err := svc.BuildReport(sess, false)
	assert.ErrorIs(t, err, ErrNotComplete)
}

func TestBuildReportPartial(t *testing.T) {
	cat := testCatalog()
	svc := NewReportService(cat)

	sess := coveredSession(t, cat, map[string]string{
		"m1": "C", // 2
	})

	report, err := svc.BuildReport(sess, true)
	require.NoError(t, err)

	assert.True(t, report.Partial)

	mood := report.Categories[0]
	assert.False(t, mood.Insufficient)
	assert.InDelta(t, 2.0, mood.Raw, 1e-9)
	assert.Equal(t, 1, mood.CoveredItems)

	sleep := report.Categories[1]
	assert.True(t, sleep.Insufficient)
	assert.Equal(t, 0, sleep.CoveredItems)

	// Insufficient categories are excluded from the overall mean.
	assert.InDelta(t, 2.0, report.Overall, 1e-9)
}

func TestBuildReportDeterministic(t *testing.T) {
	cat := testCatalog()
	svc := NewReportService(cat)

	sess := coveredSession(t, cat, map[string]string{
		"m1": "B", "m2": "B", "s1": "B", "s2": "B",
	})

	first, err := svc.BuildReport(sess, false)
	require.NoError(t, err)
	second, err := svc.BuildReport(sess, false)
	require.NoError(t, err)

	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, first.Overall, second.Overall)
}

func TestBuildProgress(t *testing.T) {
	cat := testCatalog()
	svc := NewReportService(cat)

	sess := coveredSession(t, cat, map[string]string{"m1": "A", "s1": "B", "s2": "C"})

	p := svc.BuildProgress(sess)
	assert.Equal(t, 3, p.Covered)
	assert.Equal(t, 4, p.Total)
	assert.InDelta(t, 75.0, p.Percent, 1e-9)
	assert.Equal(t, 1, p.PerCategory["Mood"].Covered)
	assert.Equal(t, 2, p.PerCategory["Sleep"].Covered)
}
