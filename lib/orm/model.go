package orm

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/gravitational/trace"
)

// Model describes a remote resource: where it lives and which fields it has
type Model struct {
	// Name identifies the model, for example "SyncPlan"
	Name string
	// Path is the collection path relative to the server root.
	// It may refer to related entities as {field}, which resolve to their ids,
	// for example "katello/api/v2/organizations/{organization}/sync_plans"
	Path string
	// PayloadKey wraps create and update payloads as {PayloadKey: {...}} if set
	PayloadKey string
	// APINames and CLINames rename fields for factories targeting that interface
	APINames map[string]string
	CLINames map[string]string

	fields   []Field
	index    map[string]int
	registry *Registry
}

// IDField is the name of the implicit identity field of every model
const IDField = "id"

// Fields returns all fields of the model in declaration order
func (m *Model) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Field returns the named field
func (m *Model) Field(name string) (Field, bool) {
	i, ok := m.index[name]
	if !ok {
		return Field{}, false
	}
	return m.fields[i], true
}

// Related returns the model a relation field refers to
func (m *Model) Related(field Field) (*Model, error) {
	if !field.Kind.IsRelation() {
		return nil, trace.BadParameter("%v.%v is not a relation", m.Name, field.Name)
	}
	if m.registry == nil {
		return nil, trace.BadParameter("model %v is not registered", m.Name)
	}
	return m.registry.Get(field.Model)
}

// New returns an empty entity of this model
func (m *Model) New() *Entity {
	return &Entity{model: m, values: make(map[string]interface{})}
}

// Ref returns an entity of this model known only by id
func (m *Model) Ref(id int) *Entity {
	e := m.New()
	e.values[IDField] = id
	return e
}

// String returns the model name
func (m *Model) String() string {
	return m.Name
}

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// CollectionPath resolves the path placeholders from the related entities of e
func (m *Model) CollectionPath(e *Entity) (string, error) {
	var errs []error
	path := placeholder.ReplaceAllStringFunc(m.Path, func(match string) string {
		name := match[1 : len(match)-1]
		related := e.Related(name)
		if related == nil || related.ID() == 0 {
			errs = append(errs, trace.BadParameter("%v path requires %v id", m.Name, name))
			return match
		}
		return fmt.Sprint(related.ID())
	})
	if len(errs) != 0 {
		return "", badParameters(errs)
	}
	return path, nil
}

// EntityPath returns the path of an existing entity
func (m *Model) EntityPath(e *Entity) (string, error) {
	path, err := m.CollectionPath(e)
	if err != nil {
		return "", trace.Wrap(err)
	}
	if e.ID() == 0 {
		return "", trace.BadParameter("%v has no id", m.Name)
	}
	return fmt.Sprintf("%v/%v", strings.TrimSuffix(path, "/"), e.ID()), nil
}

// PathFields returns the names of the relations the path refers to
func (m *Model) PathFields() []string {
	var names []string
	for _, match := range placeholder.FindAllStringSubmatch(m.Path, -1) {
		names = append(names, match[1])
	}
	return names
}

// Registry holds a set of models referring to each other by name
type Registry struct {
	mu     sync.RWMutex
	models map[string]*Model
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Model)}
}

// Register adds a model with the given fields.
// Every model gets an Integer id field unless it declares one
func (r *Registry) Register(m *Model, fields ...Field) (*Model, error) {
	if m.Name == "" {
		return nil, trace.BadParameter("model needs a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.models[m.Name]; ok {
		return nil, trace.AlreadyExists("model %v is already registered", m.Name)
	}
	m.index = make(map[string]int)
	m.fields = nil
	if !hasField(fields, IDField) {
		fields = append([]Field{NewField(IDField, Integer)}, fields...)
	}
	for _, f := range fields {
		if _, ok := m.index[f.Name]; ok {
			return nil, trace.BadParameter("model %v declares field %v twice", m.Name, f.Name)
		}
		if f.Kind.IsRelation() && f.Model == "" {
			return nil, trace.BadParameter("relation %v.%v needs a model", m.Name, f.Name)
		}
		m.index[f.Name] = len(m.fields)
		m.fields = append(m.fields, f)
	}
	m.registry = r
	r.models[m.Name] = m
	return m, nil
}

// MustRegister is like Register but panics on error.
// It is meant for package-level model declarations
func (r *Registry) MustRegister(m *Model, fields ...Field) *Model {
	m, err := r.Register(m, fields...)
	if err != nil {
		panic(err)
	}
	return m
}

// Get returns the named model
func (r *Registry) Get(name string) (*Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[name]
	if !ok {
		return nil, trace.NotFound("model %v is not registered", name)
	}
	return m, nil
}

// Names returns the sorted names of all registered models
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check verifies that every relation refers to a registered model
func (r *Registry) Check() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var errs []error
	for _, m := range r.models {
		for _, f := range m.fields {
			if !f.Kind.IsRelation() {
				continue
			}
			if _, ok := r.models[f.Model]; !ok {
				errs = append(errs, trace.NotFound("%v.%v refers to unknown model %v", m.Name, f.Name, f.Model))
			}
		}
	}
	if len(errs) != 0 {
		return trace.NotFound("%v", trace.NewAggregate(errs...))
	}
	return nil
}

func hasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
