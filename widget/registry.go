package widget

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/pagebuilder/page"
)

// Errors returned by Register.
var (
	ErrDuplicate     = errors.New("widget type already registered")
	ErrInvalidWidget = errors.New("invalid widget definition")
)

// FallbackCategory is the category of widgets which do not declare one.
const FallbackCategory = "general"

// Registry maps widget types to their definitions. It is safe for
// concurrent use, though usually written once at start-up and read
// afterwards.
type Registry struct {
	props
	mu       sync.RWMutex
	widgets  map[string]Widget
	validate *validator.Validate
}

type props struct {
	strict bool
}

// Option is a type to help initializing registries at creation time.
type Option struct {
	config func(props) props
}

// Strict is an option to refuse re-registration of a widget type.
//
//     reg := widget.NewRegistry(widget.Strict())
//
func Strict() Option {
	return Option{config: func(p props) props {
		p.strict = true
		return p
	}}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		widgets:  make(map[string]Widget),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, option := range opts {
		r.props = option.config(r.props)
	}
	return r
}

// Register adds a widget type. Definitions are checked for required fields;
// a failing check returns an error wrapping ErrInvalidWidget. Registering a
// type a second time replaces the former definition, unless the registry is
// strict.
func (r *Registry) Register(w Widget) error {
	if err := r.validate.Struct(w); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w %q: field %s fails %q", ErrInvalidWidget, w.Type,
				verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w %q: %v", ErrInvalidWidget, w.Type, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.widgets[w.Type]; exists {
		if r.strict {
			return fmt.Errorf("%w: %s", ErrDuplicate, w.Type)
		}
		tracer().Infof("widget type %q re-registered, former definition replaced", w.Type)
	}
	r.widgets[w.Type] = w
	tracer().Debugf("registered %s", w)
	return nil
}

// MustRegister registers widgets and panics on error. It is intended for
// start-up code with static widget definitions.
func (r *Registry) MustRegister(ws ...Widget) {
	for _, w := range ws {
		if err := r.Register(w); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the definition for a widget type.
func (r *Registry) Lookup(typ string) (Widget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.widgets[typ]
	return w, ok
}

// Renderer returns the renderer for a widget type, or nil if typ is unknown.
func (r *Registry) Renderer(typ string) Renderer {
	if w, ok := r.Lookup(typ); ok {
		return w.Renderer
	}
	return nil
}

// Schema returns the schema for a widget type. Unknown types have an empty
// schema.
func (r *Registry) Schema(typ string) Schema {
	if w, ok := r.Lookup(typ); ok {
		return w.Schema
	}
	return Schema{}
}

// Defaults returns the default props for new widgets of a type: the
// schema's content defaults, overlaid by the widget's explicit defaults.
// The result is a deep copy and never nil, even for unknown types.
func (r *Registry) Defaults(typ string) page.Values {
	w, ok := r.Lookup(typ)
	if !ok {
		return page.Values{}
	}
	d := w.Schema.Defaults()
	for k, v := range w.Defaults {
		d[k] = v
	}
	return d.Clone()
}

// Types returns the registered widget types in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.widgets))
	for t := range r.widgets {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Category is a named group of widgets.
type Category struct {
	Name    string
	Widgets []Widget
}

// ByCategory groups all registered widgets by category. Widgets without a
// category are grouped under FallbackCategory. Categories are sorted by
// name, widgets within a category by type.
func (r *Registry) ByCategory() []Category {
	groups := make(map[string][]Widget)
	for _, t := range r.Types() {
		w, _ := r.Lookup(t)
		c := w.Category
		if c == "" {
			c = FallbackCategory
		}
		groups[c] = append(groups[c], w)
	}
	cats := make([]Category, 0, len(groups))
	for name, ws := range groups {
		cats = append(cats, Category{Name: name, Widgets: ws})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats
}
