package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
)

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"id", "status", "priority", "projectheader", "description"}, r.Names())
}

func TestRegistry_New(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		opts      Options
		wantName  string
		wantStyle string
	}{
		{name: "plain name", spec: "description", wantName: "description", wantStyle: "full"},
		{name: "style in spec", spec: "projectheader.parent", wantName: "projectheader", wantStyle: "parent"},
		{name: "alias", spec: "project.indented", wantName: "projectheader", wantStyle: "indented"},
		{name: "opts style used without spec style", spec: "project", opts: Options{Style: "parent"}, wantName: "projectheader", wantStyle: "parent"},
		{name: "spec style overrides opts", spec: "project.full", opts: Options{Style: "parent"}, wantName: "projectheader", wantStyle: "full"},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.New(tt.spec, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
			assert.Equal(t, tt.wantStyle, c.Style())
		})
	}
}

func TestRegistry_NewUnknown(t *testing.T) {
	_, err := NewRegistry().New("urgency.real", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, clierr.New(clierr.UnknownColumn, ""))
	assert.Contains(t, err.Error(), "urgency")
}

func TestRegistry_NewLocalized(t *testing.T) {
	c, err := NewRegistry().New("project", Options{Printer: i18n.NewPrinter("de")})
	require.NoError(t, err)
	assert.Equal(t, "Projekt", c.Label())
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(AttrID, NewStatus)
	c, err := r.New("id", Options{})
	require.NoError(t, err)
	assert.Equal(t, "status", c.Name())
	assert.Len(t, r.Names(), 5)
}

func TestRegistry_Canonical(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, ProjectName, r.Canonical("project"))
	assert.Equal(t, "status", r.Canonical("status"))
	assert.Equal(t, "nope", r.Canonical("nope"))
}

func TestSplitSpec(t *testing.T) {
	name, style := SplitSpec("project.parent")
	assert.Equal(t, "project", name)
	assert.Equal(t, "parent", style)

	name, style = SplitSpec("id")
	assert.Equal(t, "id", name)
	assert.Empty(t, style)
}

func TestScalarColumns(t *testing.T) {
	rec := record{AttrID: "7", AttrStatus: "in-progress", AttrPriority: "high"}

	id := NewID(Options{})
	wr, err := id.Measure(rec)
	require.NoError(t, err)
	assert.Equal(t, WidthRange{Min: 1, Max: 1}, wr)
	assert.Equal(t, []string{"  7"}, id.Render(rec, 3, nil))

	status := NewStatus(Options{Style: "short"})
	wr, err = status.Measure(rec)
	require.NoError(t, err)
	assert.Equal(t, WidthRange{Min: 1, Max: 1}, wr)
	assert.Equal(t, []string{"I "}, status.Render(rec, 2, nil))
	assert.Equal(t, []string{"In-Progress"}, NewStatus(Options{}).Render(rec, 11, nil))

	prio := NewPriority(Options{})
	assert.Equal(t, []string{"high  "}, prio.Render(rec, 6, nil))

	_, err = NewPriority(Options{Style: "tiny"}).Measure(rec)
	assert.ErrorIs(t, err, clierr.New(clierr.BadColumnStyle, ""))
	assert.Contains(t, err.Error(), "priority.tiny")

	wr, err = NewPriority(Options{Style: "tiny"}).Measure(record{})
	require.NoError(t, err)
	assert.Equal(t, WidthRange{}, wr)
}

func TestDescription(t *testing.T) {
	rec := record{AttrDescription: "Replace the kitchen tap washer"}

	full := NewDescription(Options{})
	wr, err := full.Measure(rec)
	require.NoError(t, err)
	assert.Equal(t, WidthRange{Min: 7, Max: 30}, wr)
	assert.Equal(t, []string{"Replace the ", "kitchen tap ", "washer      "}, full.Render(rec, 12, nil))

	trunc := NewDescription(Options{Style: "truncated"})
	wr, err = trunc.Measure(rec)
	require.NoError(t, err)
	assert.Equal(t, WidthRange{Min: 10, Max: 30}, wr)
	assert.Equal(t, []string{"Replace the…"}, trunc.Render(rec, 12, nil))
	assert.Equal(t, []string{"Replace the kitchen tap washer  "}, trunc.Render(rec, 32, nil))
}
