// Package factory generates attribute values for new entities.
//
// A factory fills in every required field the caller did not provide, so a
// test only states the attributes it cares about:
//
//	f, _ := factory.New(entities.Product, "")
//	attrs, _ := f.Attributes(map[string]interface{}{"name": "Alice"})
package factory

import (
	"time"

	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/defaults"
	"github.com/satelliteqe/robotest/lib/faux"
	"github.com/satelliteqe/robotest/lib/orm"

	"github.com/gravitational/trace"
)

// Factory builds attributes for entities of a model
type Factory struct {
	// Model is the model to generate attributes for
	Model *orm.Model
	// Interface selects the field naming: "" for generic names, or
	// constants.InterfaceAPI / constants.InterfaceCLI for the model's renames
	Interface string
	// FieldValues are preset values used unless overridden
	FieldValues map[string]interface{}

	gen *faux.Generator
}

// New returns a factory for model targeting the given interface
func New(model *orm.Model, iface string) (*Factory, error) {
	switch iface {
	case "", constants.InterfaceAPI, constants.InterfaceCLI:
	default:
		return nil, trace.BadParameter("interface must be one of %q, %q or %q, not %q",
			"", constants.InterfaceAPI, constants.InterfaceCLI, iface)
	}
	if model == nil {
		return nil, trace.BadParameter("missing model")
	}
	return &Factory{
		Model:       model,
		Interface:   iface,
		FieldValues: make(map[string]interface{}),
		gen:         faux.Default(),
	}, nil
}

// WithGenerator sets the random generator used for default values
func (f *Factory) WithGenerator(gen *faux.Generator) *Factory {
	f.gen = gen
	return f
}

// Attributes returns values for populating a new entity.
//
// Required fields which are neither preset nor overridden get generated
// values. Preset values apply unless overridden. Overriding a field the model
// does not have is an error. Finally field names are adjusted to the interface
func (f *Factory) Attributes(overrides map[string]interface{}) (map[string]interface{}, error) {
	fields, err := f.attributes(overrides)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return f.customizeFieldNames(fields), nil
}

// Build returns a new unsaved entity populated with Attributes.
// Field names are always generic here
func (f *Factory) Build(overrides map[string]interface{}) (*orm.Entity, error) {
	fields, err := f.attributes(overrides)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	e := f.Model.New()
	if err := e.SetValues(fields); err != nil {
		return nil, trace.Wrap(err)
	}
	return e, nil
}

func (f *Factory) attributes(overrides map[string]interface{}) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	for _, field := range f.Model.Fields() {
		if !field.Required || has(overrides, field.Name) || has(f.FieldValues, field.Name) {
			continue
		}
		value, err := DefaultValue(f.gen, field)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		fields[field.Name] = value
	}

	for name, value := range f.FieldValues {
		if has(overrides, name) {
			continue
		}
		fields[name] = value
	}

	for name, value := range overrides {
		if _, ok := f.Model.Field(name); !ok {
			return nil, trace.BadParameter("entity %v has no attribute named %q", f.Model.Name, name)
		}
		fields[name] = value
	}
	return fields, nil
}

// customizeFieldNames renames fields per the model's interface names.
// Names without a value are skipped
func (f *Factory) customizeFieldNames(fields map[string]interface{}) map[string]interface{} {
	var names map[string]string
	switch f.Interface {
	case constants.InterfaceAPI:
		names = f.Model.APINames
	case constants.InterfaceCLI:
		names = f.Model.CLINames
	}
	for generic, specific := range names {
		value, ok := fields[generic]
		if !ok {
			continue
		}
		delete(fields, generic)
		fields[specific] = value
	}
	return fields
}

// DefaultValue returns a generated value suitable for field.
// OneToOne fields yield nil. OneToMany fields have no generation strategy
func DefaultValue(gen *faux.Generator, field orm.Field) (interface{}, error) {
	if field.Default != nil {
		return field.Default, nil
	}
	if len(field.Choices) != 0 {
		return gen.Choice(field.Choices)
	}
	switch field.Kind {
	case orm.Boolean:
		return gen.Boolean(), nil
	case orm.Email:
		return gen.Email(), nil
	case orm.Float:
		return gen.Float(0, 10000), nil
	case orm.Integer:
		return gen.Integer(1, 1<<31-1), nil
	case orm.IPAddress:
		return gen.IPAddr(), nil
	case orm.MACAddress:
		return gen.MAC(), nil
	case orm.URL:
		return gen.URL(), nil
	case orm.DateTime:
		return time.Now().UTC().Truncate(time.Second), nil
	case orm.OneToOne:
		return nil, nil
	case orm.String:
		max := field.MaxLength
		if max == 0 {
			max = defaults.StringMaxLength
		}
		return gen.String(faux.UTF8, gen.Integer(1, max))
	}
	return nil, trace.BadParameter("there is no default strategy for populating fields of type %v", field.Kind)
}

func has(values map[string]interface{}, name string) bool {
	_, ok := values[name]
	return ok
}
