package keystone

import (
	"context"
	"path/filepath"
	"reflect"
	"runtime"
	"time"

	"github.com/rotisserie/eris"
)

// System is a unit of game logic run once per tick. Systems execute
// synchronously on the calling goroutine in registration order.
type System func(w *World) error

// RegisterSystems registers systems with the world. There can only be one
// system with a given name, which is derived from the function name. On a
// duplicate name an error is returned and none of the systems are
// registered.
func (w *World) RegisterSystems(systems ...System) error {
	systemNames := make([]string, 0, len(systems))
	for _, system := range systems {
		systemName := filepath.Base(runtime.FuncForPC(reflect.ValueOf(system).Pointer()).Name())
		if w.hasSystem(systemName) || containsName(systemNames, systemName) {
			return eris.Errorf("failed to register system: %s is already registered", systemName)
		}
		systemNames = append(systemNames, systemName)
	}
	w.systemNames = append(w.systemNames, systemNames...)
	w.systems = append(w.systems, systems...)
	return nil
}

func (w *World) hasSystem(name string) bool {
	return containsName(w.systemNames, name)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Tick runs all registered systems once, in registration order, each with a
// named sub-logger. The first system error aborts the tick. The context is
// consulted between systems only; a running system is never interrupted.
func (w *World) Tick(ctx context.Context) error {
	tickStart := time.Now()
	outer := w.logger
	defer func() { w.logger = outer }()

	for i, system := range w.systems {
		if err := ctx.Err(); err != nil {
			return eris.Wrap(err, "tick aborted")
		}
		name := w.systemNames[i]
		w.logger = outer.CreateSystemLogger(name)

		systemStart := time.Now()
		if err := system(w); err != nil {
			w.logger = outer
			return eris.Wrapf(err, "system %s generated an error", name)
		}
		w.logger.Debug().
			Str("system", name).
			Dur("duration", time.Since(systemStart)).
			Msg("system completed")
	}

	outer.Debug().
		Int("total_systems", len(w.systems)).
		Dur("duration", time.Since(tickStart)).
		Msg("tick completed")
	return nil
}
