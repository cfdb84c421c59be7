package column

import (
	"strings"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
)

// Constructor builds a column from options.
type Constructor func(Options) Column

// Registry maps column names to constructors.
type Registry struct {
	ctors   map[string]Constructor
	aliases map[string]string
	order   []string
}

// NewRegistry returns a registry holding the built-in columns.
func NewRegistry() *Registry {
	r := &Registry{
		ctors:   make(map[string]Constructor),
		aliases: make(map[string]string),
	}
	r.Register(AttrID, NewID)
	r.Register(AttrStatus, NewStatus)
	r.Register(AttrPriority, NewPriority)
	r.Register(ProjectName, func(o Options) Column { return NewProjectHeader(o) })
	r.Register(AttrDescription, NewDescription)
	r.Alias(AttrProject, ProjectName)
	return r
}

// Register adds a column constructor under name, replacing any previous one.
func (r *Registry) Register(name string, ctor Constructor) {
	if _, ok := r.ctors[name]; !ok {
		r.order = append(r.order, name)
	}
	r.ctors[name] = ctor
}

// Alias makes alias resolve to the column registered as name.
func (r *Registry) Alias(alias, name string) {
	r.aliases[alias] = name
}

// Names returns registered column names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Canonical resolves an alias to the registered column name. Other names
// are returned unchanged.
func (r *Registry) Canonical(name string) string {
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

// SplitSpec splits a "name.style" column spec. The style is empty when
// spec has no dot.
func SplitSpec(spec string) (name, style string) {
	name, style, _ = strings.Cut(spec, ".")
	return name, style
}

// New builds the column described by spec ("name" or "name.style"). A style
// in spec overrides opts.Style.
func (r *Registry) New(spec string, opts Options) (Column, error) {
	name, style := SplitSpec(spec)
	name = r.Canonical(name)
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, clierr.New(clierr.UnknownColumn, opts.printer().Sprintf(i18n.UnknownColumn, name)).
			WithDetails(map[string]any{
				"column":    name,
				"available": r.Names(),
			})
	}
	if style != "" {
		opts.Style = style
	}
	return ctor(opts), nil
}
