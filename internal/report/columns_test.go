package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/column"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

func TestColumns(t *testing.T) {
	cols, err := Columns(column.NewRegistry(), Settings{
		Columns:      []string{"id", "project", "projectheader.full", "status.short"},
		ProjectStyle: "indented",
		Locale:       "de",
	})
	require.NoError(t, err)
	require.Len(t, cols, 4)

	assert.Equal(t, "number", cols[0].Style())
	assert.Equal(t, "indented", cols[1].Style())
	assert.Equal(t, "full", cols[2].Style())
	assert.Equal(t, "short", cols[3].Style())
	assert.Equal(t, "Projekt", cols[1].Label())
}

func TestColumns_Unknown(t *testing.T) {
	_, err := Columns(column.NewRegistry(), Settings{Columns: []string{"id", "urgency"}})
	assert.ErrorIs(t, err, clierr.New(clierr.UnknownColumn, ""))
}

func TestSettingsFrom_IsACopy(t *testing.T) {
	cfg := config.NewDefault("chores")
	cfg.Report.ProjectStyle = "bogus"
	s := SettingsFrom(cfg)

	cfg.Report.Columns[0] = "description"
	cfg.Report.ProjectStyle = "parent"
	assert.Equal(t, "id", s.Columns[0])
	assert.Equal(t, "bogus", s.ProjectStyle)

	cols, err := Columns(column.NewRegistry(), s)
	require.NoError(t, err)
	_, err = New(cols, Options{}).Measure([]column.Record{&task.Task{ID: 1, Project: "Home"}})
	assert.ErrorIs(t, err, clierr.New(clierr.BadColumnStyle, ""))
}
