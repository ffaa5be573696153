package orm

import "fmt"

// Kind defines the value type of a field
type Kind int

const (
	String Kind = iota
	Boolean
	Integer
	Float
	Email
	IPAddress
	MACAddress
	URL
	DateTime
	// OneToOne refers to a single entity of another model
	OneToOne
	// OneToMany refers to a list of entities of another model
	OneToMany
)

var kindNames = map[Kind]string{
	String:     "string",
	Boolean:    "boolean",
	Integer:    "integer",
	Float:      "float",
	Email:      "email",
	IPAddress:  "ip address",
	MACAddress: "mac address",
	URL:        "url",
	DateTime:   "datetime",
	OneToOne:   "one-to-one",
	OneToMany:  "one-to-many",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsRelation returns true for kinds which refer to other entities
func (k Kind) IsRelation() bool {
	return k == OneToOne || k == OneToMany
}

// IsText returns true for kinds stored as strings
func (k Kind) IsText() bool {
	switch k {
	case String, Email, IPAddress, MACAddress, URL:
		return true
	}
	return false
}

// Field describes a single attribute of a model
type Field struct {
	Name string
	Kind Kind
	// Model names the related model of OneToOne and OneToMany fields
	Model string
	// Required fields must be set before an entity is created
	Required bool
	// Choices restricts a string field to a set of values
	Choices []string
	// MaxLength bounds the length of a string field in runes
	MaxLength int
	// Default is the value a factory uses instead of generating one
	Default interface{}
}

// FieldOption customizes a field
type FieldOption func(*Field)

// Required marks the field as required
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// Choices restricts the field to the given values
func Choices(choices ...string) FieldOption {
	return func(f *Field) { f.Choices = choices }
}

// MaxLength bounds the length of the field value
func MaxLength(n int) FieldOption {
	return func(f *Field) { f.MaxLength = n }
}

// Default sets the value factories use for the field
func Default(value interface{}) FieldOption {
	return func(f *Field) { f.Default = value }
}

// NewField returns a scalar field of the given kind
func NewField(name string, kind Kind, opts ...FieldOption) Field {
	f := Field{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// NewOneToOne returns a field referring to a single entity of model
func NewOneToOne(name, model string, opts ...FieldOption) Field {
	f := NewField(name, OneToOne, opts...)
	f.Model = model
	return f
}

// NewOneToMany returns a field referring to several entities of model
func NewOneToMany(name, model string, opts ...FieldOption) Field {
	f := NewField(name, OneToMany, opts...)
	f.Model = model
	return f
}

// PayloadName returns the key the field is sent under in API payloads
func (f Field) PayloadName() string {
	switch f.Kind {
	case OneToOne:
		return f.Name + "_id"
	case OneToMany:
		return singular(f.Name) + "_ids"
	}
	return f.Name
}

// singular strips a trailing plural "s" so that "products" is sent as "product_ids"
func singular(name string) string {
	switch {
	case len(name) > 3 && name[len(name)-3:] == "ies":
		return name[:len(name)-3] + "y"
	case len(name) > 1 && name[len(name)-1] == 's':
		return name[:len(name)-1]
	}
	return name
}
