package storage

import (
	"reflect"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/keystone-gg/keystone/types"
)

// The component registry is process-wide: every world in the process sees
// the same type to ComponentID assignment, and registration may happen
// before any world exists. Assignment is monotonic at first use.
var reg = &typeRegistry{
	byType: make(map[reflect.Type]types.ComponentType, types.MaxComponentTypes),
}

type typeRegistry struct {
	mu     sync.Mutex
	byType map[reflect.Type]types.ComponentType
	byID   []types.ComponentType
}

// Register assigns a ComponentID to T on first call and returns the same
// metadata on every subsequent call. It fails with ErrTooManyComponents
// once MaxComponentTypes ids have been handed out.
func Register[T any]() (types.ComponentType, error) {
	var t T
	typ := reflect.TypeOf(t)

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if ct, ok := reg.byType[typ]; ok {
		return ct, nil
	}
	if len(reg.byID) >= types.MaxComponentTypes {
		return nil, eris.Wrapf(ErrTooManyComponents, "cannot register component %s: maximum of %d reached",
			typ.String(), types.MaxComponentTypes)
	}

	c := &componentMetadata[T]{typ: typ, name: typ.String()}
	if err := c.SetID(types.ComponentID(len(reg.byID))); err != nil {
		return nil, err
	}
	reg.byType[typ] = c
	reg.byID = append(reg.byID, c)
	return c, nil
}

// MustRegister is Register for callers that treat exhaustion as fatal.
func MustRegister[T any]() types.ComponentType {
	ct, err := Register[T]()
	if err != nil {
		panic(err)
	}
	return ct
}

// ID returns the ComponentID for T, registering it on first use.
func ID[T any]() (types.ComponentID, error) {
	ct, err := Register[T]()
	if err != nil {
		return 0, err
	}
	return ct.ID(), nil
}

// MustID is ID for callers that treat registry exhaustion as fatal.
func MustID[T any]() types.ComponentID {
	return MustRegister[T]().ID()
}

// TryID returns the ComponentID for T without registering it.
func TryID[T any]() (types.ComponentID, bool) {
	var t T
	typ := reflect.TypeOf(t)
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ct, ok := reg.byType[typ]
	if !ok {
		return 0, false
	}
	return ct.ID(), true
}

// TypeByID returns the metadata for a registered ComponentID.
func TypeByID(id types.ComponentID) (types.ComponentType, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if int(id) < 0 || int(id) >= len(reg.byID) {
		return nil, false
	}
	return reg.byID[id], true
}

// RegisteredComponents returns a snapshot of all registered component types
// in ComponentID order.
func RegisteredComponents() []types.ComponentType {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]types.ComponentType, len(reg.byID))
	copy(out, reg.byID)
	return out
}

// ComponentTypesFor resolves each id in the signature to its registered
// metadata, ascending by ComponentID.
func ComponentTypesFor(sig types.Signature) ([]types.ComponentType, error) {
	ids := sig.Bits()
	comps := make([]types.ComponentType, 0, len(ids))
	for _, id := range ids {
		ct, ok := TypeByID(id)
		if !ok {
			return nil, eris.Errorf("component id %d is not registered", id)
		}
		comps = append(comps, ct)
	}
	return comps, nil
}

// ResetRegistry clears the process-wide registry. This is useful for tests
// that need to re-initialize component id assignment; worlds created before
// a reset must be discarded.
func ResetRegistry() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.byType = make(map[reflect.Type]types.ComponentType, types.MaxComponentTypes)
	reg.byID = nil
}
