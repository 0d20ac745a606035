package storage

import (
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"

	"github.com/keystone-gg/keystone/types"
)

var _ types.ComponentType = &componentMetadata[int]{}

// componentMetadata represents a registered component type. It is used to
// identify a component when getting or setting the component of an entity,
// and knows how to allocate the typed column that stores it.
type componentMetadata[T any] struct {
	isIDSet bool
	id      types.ComponentID
	typ     reflect.Type
	name    string

	schemaOnce sync.Once
	schema     []byte
	schemaErr  error
}

// SetID sets this component's ID. It must be unique across the process.
// Setting the same ID again is allowed so that tests can re-register the
// same component type; changing it is an error.
func (c *componentMetadata[T]) SetID(id types.ComponentID) error {
	if c.isIDSet {
		if id == c.id {
			return nil
		}
		return eris.Wrapf(ErrComponentIDAlreadySet, "id for component %q is %v, cannot change to %v", c.name, c.id, id)
	}
	c.id = id
	c.isIDSet = true
	return nil
}

func (c *componentMetadata[T]) ID() types.ComponentID {
	return c.id
}

func (c *componentMetadata[T]) Name() string {
	return c.name
}

// String returns the component type name.
func (c *componentMetadata[T]) String() string {
	return c.name
}

func (c *componentMetadata[T]) NewColumn() types.Column {
	return NewColumn[T]()
}

// Schema returns the JSON schema of the component struct. The schema is
// reflected once and cached.
func (c *componentMetadata[T]) Schema() ([]byte, error) {
	c.schemaOnce.Do(func() {
		var t T
		c.schema, c.schemaErr = SerializeComponentSchema(t)
	})
	return c.schema, c.schemaErr
}

// SerializeComponentSchema reflects the JSON schema of a component value.
func SerializeComponentSchema(component any) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	schema, err := componentSchema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

// IsSchemaValid returns true if the two JSON schemas are equivalent.
func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}
