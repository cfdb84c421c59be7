package task

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
)

func TestTask_GetHas(t *testing.T) {
	tk := &Task{ID: 12, Description: "Fix tap", Status: "todo", Project: "Home.Repairs", Tags: []string{"a", "b"}}

	assert.Equal(t, "12", tk.Get(AttrID))
	assert.Equal(t, "Home.Repairs", tk.Get(AttrProject))
	assert.Equal(t, "a,b", tk.Get(AttrTags))
	assert.True(t, tk.Has(AttrProject))
	assert.False(t, tk.Has(AttrPriority))
	assert.False(t, tk.Has("urgency"))
	assert.False(t, (&Task{}).Has(AttrID))
}

func TestWriteRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	orig := &Task{
		ID:          3,
		Description: "Paint the fence",
		Status:      "todo",
		Priority:    "high",
		Project:     "Home.Garden",
		Tags:        []string{"outdoor"},
		Created:     created,
		Updated:     created,
		Notes:       "Buy white paint first.",
	}

	path := filepath.Join(dir, GenerateFilename(orig.ID, GenerateSlug(orig.Description)))
	require.NoError(t, Write(path, orig))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, got.File)
	got.File = ""
	assert.Equal(t, orig, got)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNotes string
		wantErr   bool
	}{
		{name: "notes after fence", input: "---\nid: 1\n---\n\nnote\n", wantNotes: "note"},
		{name: "fence at EOF", input: "---\nid: 1\n---", wantNotes: ""},
		{name: "empty frontmatter", input: "---\n---\nnote", wantNotes: "note"},
		{name: "missing opening fence", input: "id: 1\n", wantErr: true},
		{name: "unclosed", input: "---\nid: 1\n", wantErr: true},
		{name: "bad yaml", input: "---\nid: [\n---\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNotes, got.Notes)
		})
	}
}

func TestReadAllLenient(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "001-a.md"), &Task{ID: 1, Description: "a"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002-bad.md"), []byte("nope"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	tasks, warnings, err := ReadAllLenient(dir)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)
	require.Len(t, warnings, 1)
	assert.Equal(t, "002-bad.md", warnings[0].File)

	tasks, warnings, err = ReadAllLenient(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Empty(t, warnings)
}

func TestFindByID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "007-seven.md"), &Task{ID: 7}))
	require.NoError(t, Write(filepath.Join(dir, "1234-big.md"), &Task{ID: 1234}))

	path, err := FindByID(dir, 7)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "007-seven.md"), path)

	path, err = FindByID(dir, 1234)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1234-big.md"), path)

	_, err = FindByID(dir, 70)
	assert.ErrorIs(t, err, clierr.New(clierr.TaskNotFound, ""))
}

func TestGenerateSlugAndFilename(t *testing.T) {
	assert.Equal(t, "fix-the-kitchen-tap", GenerateSlug("Fix the kitchen tap!"))
	assert.Equal(t, "001-task.md", GenerateFilename(1, GenerateSlug("???")))
	assert.Equal(t, "1000-x.md", GenerateFilename(1000, "x"))

	long := GenerateSlug("a very long description that keeps going well past the fifty character limit")
	assert.LessOrEqual(t, len(long), maxSlugLength)
	assert.NotContains(t, long[len(long)-1:], "-")
}

func TestValidateProject(t *testing.T) {
	tests := []struct {
		project string
		wantErr bool
	}{
		{project: "", wantErr: false},
		{project: "Home", wantErr: false},
		{project: "Home.Repairs.Kitchen", wantErr: false},
		{project: "Work.Q3 Planning", wantErr: false},
		{project: "Home..Kitchen", wantErr: true},
		{project: ".Home", wantErr: true},
		{project: "Home.", wantErr: true},
		{project: "Home. Kitchen", wantErr: true},
		{project: "Home.Kit\tchen", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.project, func(t *testing.T) {
			err := ValidateProject(tt.project)
			if tt.wantErr {
				assert.ErrorIs(t, err, clierr.New(clierr.InvalidProject, ""))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateStatusAndPriority(t *testing.T) {
	assert.NoError(t, ValidateStatus("todo", []string{"todo", "done"}))
	assert.ErrorIs(t, ValidateStatus("nope", []string{"todo"}), clierr.New(clierr.InvalidStatus, ""))
	assert.NoError(t, ValidatePriority("high", []string{"low", "high"}))
	assert.ErrorIs(t, ValidatePriority("urgent", []string{"low"}), clierr.New(clierr.InvalidPriority, ""))
}
