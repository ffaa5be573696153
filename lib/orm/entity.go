package orm

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gravitational/trace"
	"gopkg.in/go-playground/validator.v9"
)

// Entity is an instance of a model holding field values
type Entity struct {
	model  *Model
	values map[string]interface{}
}

// Model returns the model of the entity
func (e *Entity) Model() *Model {
	return e.model
}

// ID returns the server-assigned id or 0 if the entity has not been created
func (e *Entity) ID() int {
	id, _ := e.values[IDField].(int)
	return id
}

// Set assigns a field value, coercing it to the field kind.
//
// Relations accept entities, maps of field values and ids. A OneToMany field
// also accepts a single entity or map, which is wrapped into a list, and a list
// mixing all three. A nil value is stored as an explicit null
func (e *Entity) Set(name string, value interface{}) error {
	field, ok := e.model.Field(name)
	if !ok {
		return trace.BadParameter("%v has no field %q", e.model.Name, name)
	}
	if value == nil {
		e.values[name] = nil
		return nil
	}
	coerced, err := e.coerce(field, value)
	if err != nil {
		return trace.Wrap(err)
	}
	e.values[name] = coerced
	return nil
}

// SetValues assigns several field values
func (e *Entity) SetValues(values map[string]interface{}) error {
	var errs []error
	for _, name := range sortedKeys(values) {
		if err := e.Set(name, values[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return badParameters(errs)
}

// MustSet is like Set but panics on error
func (e *Entity) MustSet(name string, value interface{}) *Entity {
	if err := e.Set(name, value); err != nil {
		panic(err)
	}
	return e
}

// Unset removes a field value
func (e *Entity) Unset(name string) {
	delete(e.values, name)
}

// Get returns a field value
func (e *Entity) Get(name string) (interface{}, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Has returns true if the field is set to a non-null value
func (e *Entity) Has(name string) bool {
	value, ok := e.values[name]
	return ok && value != nil
}

// Names returns the names of all set fields in declaration order
func (e *Entity) Names() []string {
	var names []string
	for _, f := range e.model.fields {
		if _, ok := e.values[f.Name]; ok {
			names = append(names, f.Name)
		}
	}
	return names
}

// Str returns the value of a text field or "" if unset
func (e *Entity) Str(name string) string {
	s, _ := e.values[name].(string)
	return s
}

// Int returns the value of an integer field or 0 if unset
func (e *Entity) Int(name string) int {
	n, _ := e.values[name].(int)
	return n
}

// Bool returns the value of a boolean field or false if unset
func (e *Entity) Bool(name string) bool {
	b, _ := e.values[name].(bool)
	return b
}

// Float returns the value of a float field or 0 if unset
func (e *Entity) Float(name string) float64 {
	f, _ := e.values[name].(float64)
	return f
}

// Time returns the value of a datetime field or the zero time if unset
func (e *Entity) Time(name string) time.Time {
	t, _ := e.values[name].(time.Time)
	return t
}

// Related returns the entity a OneToOne field refers to or nil if unset
func (e *Entity) Related(name string) *Entity {
	related, _ := e.values[name].(*Entity)
	return related
}

// RelatedList returns the entities a OneToMany field refers to
func (e *Entity) RelatedList(name string) []*Entity {
	list, _ := e.values[name].([]*Entity)
	return list
}

// RelatedIDs returns the ids of the entities a OneToMany field refers to
func (e *Entity) RelatedIDs(name string) []int {
	list := e.RelatedList(name)
	ids := make([]int, 0, len(list))
	for _, related := range list {
		ids = append(ids, related.ID())
	}
	return ids
}

// Clone returns a shallow copy of the entity
func (e *Entity) Clone() *Entity {
	clone := e.model.New()
	for name, value := range e.values {
		if list, ok := value.([]*Entity); ok {
			value = append([]*Entity(nil), list...)
		}
		clone.values[name] = value
	}
	return clone
}

// String describes the entity for logs
func (e *Entity) String() string {
	var parts []string
	for _, name := range e.Names() {
		parts = append(parts, fmt.Sprintf("%v=%v", name, describe(e.values[name])))
	}
	return fmt.Sprintf("%v(%v)", e.model.Name, strings.Join(parts, ", "))
}

func describe(value interface{}) string {
	switch v := value.(type) {
	case *Entity:
		return fmt.Sprintf("%v#%v", v.model.Name, v.ID())
	case []*Entity:
		var refs []string
		for _, related := range v {
			refs = append(refs, describe(related))
		}
		return "[" + strings.Join(refs, " ") + "]"
	case string:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(value)
}

// Validate checks required fields, choices, lengths and value formats.
// All violations are reported together
func (e *Entity) Validate() error {
	var errs []error
	validate := validator.New()
	for _, f := range e.model.fields {
		value, ok := e.values[f.Name]
		if !ok || value == nil {
			if f.Required {
				errs = append(errs, trace.BadParameter("%v.%v is required", e.model.Name, f.Name))
			}
			continue
		}
		s, isText := value.(string)
		if !isText {
			continue
		}
		if len(f.Choices) != 0 && !contains(f.Choices, s) {
			errs = append(errs, trace.BadParameter("%v.%v must be one of %v, got %q",
				e.model.Name, f.Name, f.Choices, s))
		}
		if f.MaxLength != 0 && utf8.RuneCountInString(s) > f.MaxLength {
			errs = append(errs, trace.BadParameter("%v.%v is longer than %v characters",
				e.model.Name, f.Name, f.MaxLength))
		}
		if tag := formatTags[f.Kind]; tag != "" {
			if err := validate.Var(s, tag); err != nil {
				errs = append(errs, trace.BadParameter("%v.%v is not a valid %v: %q",
					e.model.Name, f.Name, f.Kind, s))
			}
		}
	}
	return badParameters(errs)
}

var formatTags = map[Kind]string{
	Email:      "email",
	IPAddress:  "ip",
	MACAddress: "mac",
	URL:        "url",
}

func (e *Entity) coerce(f Field, value interface{}) (interface{}, error) {
	switch f.Kind {
	case String, Email, IPAddress, MACAddress, URL:
		s, ok := value.(string)
		if !ok {
			return nil, badType(e.model, f, value)
		}
		return s, nil
	case Boolean:
		b, ok := value.(bool)
		if !ok {
			return nil, badType(e.model, f, value)
		}
		return b, nil
	case Integer:
		n, ok := toInt(value)
		if !ok {
			return nil, badType(e.model, f, value)
		}
		return n, nil
	case Float:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case json.Number:
			fv, err := v.Float64()
			if err != nil {
				return nil, badType(e.model, f, value)
			}
			return fv, nil
		}
		return nil, badType(e.model, f, value)
	case DateTime:
		switch v := value.(type) {
		case time.Time:
			return v, nil
		case string:
			return parseTime(e.model, f, v)
		}
		return nil, badType(e.model, f, value)
	case OneToOne:
		related, err := e.model.Related(f)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		return toEntity(related, f, value)
	case OneToMany:
		related, err := e.model.Related(f)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		return toEntityList(related, f, value)
	}
	return nil, trace.BadParameter("%v.%v has unsupported kind %v", e.model.Name, f.Name, f.Kind)
}

func toEntity(model *Model, f Field, value interface{}) (*Entity, error) {
	switch v := value.(type) {
	case *Entity:
		if v.model != model {
			return nil, trace.BadParameter("%v expects a %v, got a %v", f.Name, model.Name, v.model.Name)
		}
		return v, nil
	case map[string]interface{}:
		return Decode(model, v)
	}
	if id, ok := toInt(value); ok {
		return model.Ref(id), nil
	}
	return nil, trace.BadParameter("%v expects a %v entity, map or id, got %T", f.Name, model.Name, value)
}

func toEntityList(model *Model, f Field, value interface{}) ([]*Entity, error) {
	switch v := value.(type) {
	case *Entity, map[string]interface{}:
		e, err := toEntity(model, f, v)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		return []*Entity{e}, nil
	case []*Entity:
		for _, e := range v {
			if e.model != model {
				return nil, trace.BadParameter("%v expects %v entities, got a %v", f.Name, model.Name, e.model.Name)
			}
		}
		return v, nil
	case []map[string]interface{}:
		list := make([]*Entity, 0, len(v))
		for _, m := range v {
			e, err := Decode(model, m)
			if err != nil {
				return nil, trace.Wrap(err)
			}
			list = append(list, e)
		}
		return list, nil
	case []int:
		list := make([]*Entity, 0, len(v))
		for _, id := range v {
			list = append(list, model.Ref(id))
		}
		return list, nil
	case []interface{}:
		list := make([]*Entity, 0, len(v))
		for _, item := range v {
			e, err := toEntity(model, f, item)
			if err != nil {
				return nil, trace.Wrap(err)
			}
			list = append(list, e)
		}
		return list, nil
	}
	return nil, trace.BadParameter("%v expects a list of %v, got %T", f.Name, model.Name, value)
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// timeLayouts lists the datetime formats the server reports
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 MST",
	"2006/01/02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// TimeLayout is the datetime format used in API payloads
const TimeLayout = "2006-01-02 15:04:05"

func parseTime(m *Model, f Field, s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, trace.BadParameter("%v.%v: cannot parse %q as datetime", m.Name, f.Name, s)
}

func badType(m *Model, f Field, value interface{}) error {
	return trace.BadParameter("%v.%v expects a %v, got %T", m.Name, f.Name, f.Kind, value)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func sortedKeys(values map[string]interface{}) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
