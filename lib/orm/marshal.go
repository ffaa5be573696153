package orm

import (
	"encoding/json"
	"time"

	"github.com/gravitational/trace"
)

// Marshal converts the set fields of e into an API payload.
// OneToOne fields are sent as <name>_id and OneToMany fields as <name>_ids.
// If names are given, only those fields are included
func Marshal(e *Entity, names ...string) (map[string]interface{}, error) {
	if len(names) == 0 {
		names = e.Names()
	}
	out := make(map[string]interface{}, len(names))
	for _, name := range names {
		f, ok := e.model.Field(name)
		if !ok {
			return nil, trace.BadParameter("%v has no field %q", e.model.Name, name)
		}
		value, ok := e.values[name]
		if !ok {
			return nil, trace.BadParameter("%v.%v is not set", e.model.Name, name)
		}
		out[f.PayloadName()] = marshalValue(f, value)
	}
	return out, nil
}

// Payload is like Marshal but also wraps the fields under the model's payload key
func Payload(e *Entity, names ...string) (map[string]interface{}, error) {
	fields, err := Marshal(e, names...)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	delete(fields, IDField)
	if e.model.PayloadKey == "" {
		return fields, nil
	}
	return map[string]interface{}{e.model.PayloadKey: fields}, nil
}

func marshalValue(f Field, value interface{}) interface{} {
	if value == nil {
		return nil
	}
	switch f.Kind {
	case OneToOne:
		return value.(*Entity).ID()
	case OneToMany:
		list := value.([]*Entity)
		ids := make([]int, 0, len(list))
		for _, related := range list {
			ids = append(ids, related.ID())
		}
		return ids
	case DateTime:
		return value.(time.Time).UTC().Format(TimeLayout)
	}
	return value
}

// Decode builds an entity of model from a server response object.
// Relations are read from nested objects or from <name>_id and <name>_ids keys.
// Unknown keys and null values are ignored
func Decode(model *Model, data map[string]interface{}) (*Entity, error) {
	e := model.New()
	var errs []error
	for _, f := range model.fields {
		value, key := lookup(f, data)
		if key == "" {
			continue
		}
		if err := e.Set(f.Name, value); err != nil {
			errs = append(errs, trace.Wrap(err, "decoding %v", key))
		}
	}
	if len(errs) != 0 {
		return nil, badParameters(errs)
	}
	return e, nil
}

// DecodeJSON builds an entity of model from a JSON document
func DecodeJSON(model *Model, data []byte) (*Entity, error) {
	var object map[string]interface{}
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, trace.BadParameter("%v: invalid JSON: %v", model.Name, err)
	}
	return Decode(model, object)
}

// lookup finds the response value for a field and the key it was found under
func lookup(f Field, data map[string]interface{}) (value interface{}, key string) {
	candidates := []string{f.Name}
	if f.Kind.IsRelation() {
		candidates = append(candidates, f.PayloadName())
	}
	for _, k := range candidates {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		// relations are sometimes also reported by name
		if _, isName := v.(string); isName && f.Kind.IsRelation() {
			continue
		}
		return v, k
	}
	return nil, ""
}
