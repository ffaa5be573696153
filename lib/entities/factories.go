package entities

import (
	"github.com/satelliteqe/robotest/lib/factory"
	"github.com/satelliteqe/robotest/lib/faux"
	"github.com/satelliteqe/robotest/lib/orm"

	"github.com/gravitational/trace"
)

// preset returns the fixed field values of a model factory
type preset func(gen *faux.Generator) map[string]interface{}

// presets replaces the random utf8 defaults of fields the server validates
// more strictly than "any string"
var presets = map[string]preset{
	"Organization": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{"name": gen.MustString(faux.Alphanumeric, 12)}
	},
	"Product": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{"name": gen.MustString(faux.Alphanumeric, 12)}
	},
	"Model": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{"name": gen.MustString(faux.UTF8, gen.Integer(1, 30))}
	},
	"User": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{
			"login":    gen.MustString(faux.Alpha, 10),
			"password": gen.MustString(faux.Alphanumeric, 12),
		}
	},
	"Domain": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{"name": gen.MustString(faux.Alpha, 8) + ".example.com"}
	},
	"Architecture": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{"name": gen.MustString(faux.Alphanumeric, 10)}
	},
	"Host": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{
			"name":      gen.MustString(faux.Alpha, 10),
			"root_pass": gen.MustString(faux.Alphanumeric, 12),
		}
	},
	"GPGKey": func(gen *faux.Generator) map[string]interface{} {
		return map[string]interface{}{"content": gen.MustString(faux.Alphanumeric, 64)}
	},
}

// NewFactory returns an attribute factory for model. Models with server side
// format rules get presets satisfying them
func NewFactory(model *orm.Model, iface string, gen *faux.Generator) (*factory.Factory, error) {
	f, err := factory.New(model, iface)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	if gen == nil {
		gen = faux.Default()
	}
	f.WithGenerator(gen)
	if p, ok := presets[model.Name]; ok {
		for name, value := range p(gen) {
			f.FieldValues[name] = value
		}
	}
	return f, nil
}

// ModelFactory returns a factory for hardware models with a short name
func ModelFactory(iface string) (*factory.Factory, error) {
	return NewFactory(HardwareModel, iface, nil)
}

// HostFactory returns a factory for hosts
func HostFactory(iface string) (*factory.Factory, error) {
	return NewFactory(Host, iface, nil)
}

// OrganizationFactory returns a factory for organizations
func OrganizationFactory(iface string) (*factory.Factory, error) {
	return NewFactory(Organization, iface, nil)
}

// ProductFactory returns a factory for products
func ProductFactory(iface string) (*factory.Factory, error) {
	return NewFactory(Product, iface, nil)
}
