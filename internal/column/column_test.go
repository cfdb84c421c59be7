package column

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/textfmt"
)

// record is a map-backed Record for tests.
type record map[string]string

func (r record) Has(attr string) bool {
	v, ok := r[attr]
	return ok && v != ""
}

func (r record) Get(attr string) string { return r[attr] }

// brackets is a Painter that makes coloring visible in assertions.
type brackets struct{}

func (brackets) Render(strs ...string) string { return "[" + strings.Join(strs, " ") + "]" }

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		raw   string
		want  string
	}{
		{name: "full unchanged", style: StyleFull, raw: "A.B.C", want: "A.B.C"},
		{name: "parent first segment", style: StyleParent, raw: "A.B.C", want: "A"},
		{name: "parent without delimiter", style: StyleParent, raw: "A", want: "A"},
		{name: "indented", style: StyleIndented, raw: "A.B.C", want: "A\n  B\n    C"},
		{name: "indented without delimiter", style: StyleIndented, raw: "A", want: "A"},
		{name: "invalid falls through", style: StyleInvalid, raw: "A.B", want: "A.B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.style, tt.raw, ProjectDelimiter))
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name   string
		want   Style
		wantOK bool
	}{
		{name: "full", want: StyleFull, wantOK: true},
		{name: "default", want: StyleFull, wantOK: true},
		{name: "parent", want: StyleParent, wantOK: true},
		{name: "indented", want: StyleIndented, wantOK: true},
		{name: "bogus", want: StyleInvalid, wantOK: false},
		{name: "", want: StyleInvalid, wantOK: false},
		{name: "Full", want: StyleInvalid, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStyle(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestProjectHeader_Identity(t *testing.T) {
	c := NewProjectHeader(Options{})

	assert.Equal(t, "projectheader", c.Name())
	assert.Equal(t, "full", c.Style())
	assert.Equal(t, []string{"full", "parent", "indented"}, c.Styles())
	assert.Equal(t, "Project", c.Label())
	assert.Equal(t, []string{"home.garden", "home", "  home.garden"}, c.Examples())

	styles := c.Styles()
	styles[0] = "mutated"
	assert.Equal(t, "full", c.Styles()[0])
}

func TestProjectHeader_MissingAttribute(t *testing.T) {
	for _, style := range []string{"full", "parent", "indented", "default", "bogus"} {
		t.Run(style, func(t *testing.T) {
			c := NewProjectHeader(Options{Style: style})
			for _, rec := range []record{{}, {AttrProject: ""}} {
				wr, err := c.Measure(rec)
				require.NoError(t, err)
				assert.Equal(t, WidthRange{}, wr)
				assert.Empty(t, c.Render(rec, 10, nil))
			}
		})
	}
}

func TestProjectHeader_Measure(t *testing.T) {
	tests := []struct {
		name    string
		style   string
		project string
		want    WidthRange
	}{
		{name: "full", style: "full", project: "Home.Repairs.Kitchen", want: WidthRange{Min: 20, Max: 20}},
		{name: "default alias", style: "default", project: "Home.Repairs.Kitchen", want: WidthRange{Min: 20, Max: 20}},
		{name: "empty style is full", style: "", project: "Home.Repairs", want: WidthRange{Min: 12, Max: 12}},
		{name: "parent", style: "parent", project: "Home.Repairs.Kitchen", want: WidthRange{Min: 4, Max: 4}},
		{name: "parent without delimiter", style: "parent", project: "Garden", want: WidthRange{Min: 6, Max: 6}},
		{name: "indented", style: "indented", project: "Home.Repairs.Kitchen", want: WidthRange{Min: 7, Max: 26}},
		{name: "wide runes", style: "full", project: "家.修理", want: WidthRange{Min: 7, Max: 7}},
		{name: "words in project", style: "full", project: "Big House.Roof", want: WidthRange{Min: 10, Max: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewProjectHeader(Options{Style: tt.style})
			got, err := c.Measure(record{AttrProject: tt.project})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Min, got.Max)
		})
	}
}

func TestProjectHeader_BadStyle(t *testing.T) {
	c := NewProjectHeader(Options{Style: "bogus"})

	_, err := c.Measure(record{AttrProject: "Home.Repairs"})
	require.Error(t, err)
	assert.ErrorIs(t, err, clierr.New(clierr.BadColumnStyle, ""))
	assert.Contains(t, err.Error(), "projectheader")
	assert.Contains(t, err.Error(), "bogus")

	var cliErr *clierr.Error
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, "bogus", cliErr.Details["style"])
	assert.Equal(t, "projectheader", cliErr.Details["column"])

	// Render never raises; the value passes through unstyled.
	assert.Equal(t, []string{"Home.Repairs"}, c.Render(record{AttrProject: "Home.Repairs"}, 12, nil))
}

func TestProjectHeader_Render(t *testing.T) {
	tests := []struct {
		name      string
		style     string
		hyphenate bool
		project   string
		width     int
		want      []string
	}{
		{
			name:    "full padded to width",
			style:   "full",
			project: "Home.Repairs.Kitchen",
			width:   25,
			want:    []string{"Home.Repairs.Kitchen     "},
		},
		{
			name:    "oversized without hyphenation passes through",
			style:   "full",
			project: "Home.Repairs.Kitchen",
			width:   8,
			want:    []string{"Home.Repairs.Kitchen"},
		},
		{
			name:      "oversized with hyphenation",
			style:     "full",
			hyphenate: true,
			project:   "Home.Repairs.Kitchen",
			width:     8,
			want:      []string{"Home.Re-", "pairs.K-", "itchen  "},
		},
		{
			name:    "parent",
			style:   "parent",
			project: "Home.Repairs.Kitchen",
			width:   6,
			want:    []string{"Home  "},
		},
		{
			name:    "indented",
			style:   "indented",
			project: "Home.Repairs.Kitchen",
			width:   12,
			want:    []string{"Home        ", "  Repairs   ", "    Kitchen "},
		},
		{
			name:    "indented at minimum width",
			style:   "indented",
			project: "Home.Repairs.Kitchen",
			width:   7,
			want:    []string{"Home   ", "Repairs", "Kitchen"},
		},
		{
			name:    "zero width is a single unpadded line",
			style:   "full",
			project: "Home.Repairs",
			width:   0,
			want:    []string{"Home.Repairs"},
		},
		{
			name:    "wide runes padded by display width",
			style:   "full",
			project: "家.修理",
			width:   9,
			want:    []string{"家.修理  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewProjectHeader(Options{Style: tt.style, Hyphenate: tt.hyphenate})
			assert.Equal(t, tt.want, c.Render(record{AttrProject: tt.project}, tt.width, nil))
		})
	}
}

func TestProjectHeader_RenderPaintsEachLine(t *testing.T) {
	c := NewProjectHeader(Options{Style: "indented"})
	got := c.Render(record{AttrProject: "A.B"}, 3, brackets{})
	assert.Equal(t, []string{"[A  ]", "[  B]"}, got)
}

func TestProjectHeader_Idempotent(t *testing.T) {
	rec := record{AttrProject: "Home.Repairs.Kitchen"}
	for _, style := range []string{"full", "parent", "indented"} {
		c := NewProjectHeader(Options{Style: style, Hyphenate: true})

		first, err := c.Measure(rec)
		require.NoError(t, err)
		second, err := c.Measure(rec)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		assert.Equal(t, c.Render(rec, 9, nil), c.Render(rec, 9, nil))
	}
}

func TestProjectHeader_IndentedWideRunesFit(t *testing.T) {
	c := NewProjectHeader(Options{Style: StyleNameIndented, Hyphenate: true})
	got := c.Render(record{AttrProject: "家.修理"}, 3, nil)
	assert.Equal(t, []string{"家 ", "修-", "理 "}, got)
}

func TestProjectHeader_LinesFitWidth(t *testing.T) {
	projects := []string{"Home.Repairs.Kitchen", "Work.Q3 Planning.Budget review", "家.修理.台所"}
	for _, style := range []string{"full", "parent", "indented"} {
		for _, hyphenate := range []bool{false, true} {
			c := NewProjectHeader(Options{Style: style, Hyphenate: hyphenate})
			for _, p := range projects {
				rec := record{AttrProject: p}
				wr, err := c.Measure(rec)
				require.NoError(t, err)
				for width := 2; width <= wr.Max+2; width++ {
					for _, line := range c.Render(rec, width, nil) {
						if !hyphenate && len(strings.Fields(line)) == 1 && textfmt.LongestWord(line) > width {
							continue
						}
						assert.Equal(t, width, textfmt.Width(line),
							"style %s hyphenate %v project %q width %d line %q", style, hyphenate, p, width, line)
					}
				}
			}
		}
	}
}
