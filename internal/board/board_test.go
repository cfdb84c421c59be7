package board

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

func fixtures() []*task.Task {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []*task.Task{
		{ID: 1, Description: "Fix the tap", Status: "pending", Priority: "high", Project: "Home.Repairs.Kitchen", Tags: []string{"plumbing"}, Created: base, Updated: base.Add(3 * time.Hour)},
		{ID: 2, Description: "Plant tulips", Status: "done", Priority: "low", Project: "Home.Garden", Created: base.Add(time.Hour), Updated: base.Add(time.Hour)},
		{ID: 3, Description: "Budget review", Status: "in-progress", Priority: "medium", Project: "Work", Notes: "ask about the tap budget", Created: base.Add(2 * time.Hour), Updated: base},
		{ID: 4, Description: "Read a book", Status: "pending", Priority: "low", Created: base.Add(-time.Hour), Updated: base},
		{ID: 5, Description: "Homework", Status: "waiting", Priority: "medium", Project: "Homework", Created: base, Updated: base},
	}
}

func ids(tasks []*task.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
		want []int
	}{
		{name: "no filter", opts: FilterOptions{}, want: []int{1, 2, 3, 4, 5}},
		{name: "status", opts: FilterOptions{Statuses: []string{"pending"}}, want: []int{1, 4}},
		{name: "exclude status", opts: FilterOptions{ExcludeStatuses: []string{"done"}}, want: []int{1, 3, 4, 5}},
		{name: "priority", opts: FilterOptions{Priorities: []string{"low", "high"}}, want: []int{1, 2, 4}},
		{name: "tag", opts: FilterOptions{Tag: "plumbing"}, want: []int{1}},
		{name: "project prefix", opts: FilterOptions{Project: "Home"}, want: []int{1, 2}},
		{name: "project exact leaf", opts: FilterOptions{Project: "Home.Garden"}, want: []int{2}},
		{name: "project trailing dot", opts: FilterOptions{Project: "Home."}, want: []int{1, 2}},
		{name: "search description and notes", opts: FilterOptions{Search: "TAP"}, want: []int{1, 3}},
		{name: "combined", opts: FilterOptions{Project: "Home", Statuses: []string{"done"}}, want: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(fixtures(), tt.opts)))
		})
	}
}

func TestMatchesProject(t *testing.T) {
	assert.True(t, MatchesProject("Home", "Home"))
	assert.True(t, MatchesProject("Home.Repairs", "Home"))
	assert.False(t, MatchesProject("Homework", "Home"))
	assert.False(t, MatchesProject("", "Home"))
}

func TestSort(t *testing.T) {
	cfg := config.NewDefault("test")
	tests := []struct {
		field   string
		reverse bool
		want    []int
	}{
		{field: "id", want: []int{1, 2, 3, 4, 5}},
		{field: "id", reverse: true, want: []int{5, 4, 3, 2, 1}},
		{field: "status", want: []int{1, 4, 3, 5, 2}},
		{field: "priority", want: []int{2, 4, 3, 5, 1}},
		{field: "project", want: []int{2, 1, 5, 3, 4}},
		{field: "created", want: []int{4, 1, 5, 2, 3}},
		{field: "updated", want: []int{3, 4, 5, 2, 1}},
		{field: "bogus", want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			tasks := fixtures()
			Sort(tasks, tt.field, tt.reverse, cfg)
			assert.Equal(t, tt.want, ids(tasks))
		})
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Init(filepath.Join(dir, config.DefaultDir), "test")
	require.NoError(t, err)

	for _, tk := range fixtures() {
		path := filepath.Join(cfg.TasksPath(), task.GenerateFilename(tk.ID, task.GenerateSlug(tk.Description)))
		require.NoError(t, task.Write(path, tk))
	}

	got, warnings, err := List(cfg, ListOptions{
		Filter: FilterOptions{ExcludeStatuses: []string{"done"}},
		SortBy: "priority",
		Limit:  3,
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []int{4, 3, 5}, ids(got))
}

func TestParseIDs(t *testing.T) {
	got, err := ParseIDs("3, 1,3,,2")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got)

	_, err = ParseIDs("1,x")
	assert.ErrorIs(t, err, clierr.New(clierr.InvalidTaskID, ""))

	_, err = ParseIDs(" , ")
	assert.ErrorIs(t, err, clierr.New(clierr.InvalidTaskID, ""))

	got, err = ParseIDs("2, 4-6,5")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5, 6}, got)

	for _, bad := range []string{"6-4", "0-2", "1-", "1-5000"} {
		_, err = ParseIDs(bad)
		assert.ErrorIs(t, err, clierr.New(clierr.InvalidTaskID, ""), bad)
	}
}

func TestCountByProject(t *testing.T) {
	assert.Equal(t, map[string]int{"Home": 2, "Work": 1, "": 1, "Homework": 1}, CountByProject(fixtures()))
}
