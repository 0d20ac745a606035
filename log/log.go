package log

import (
	"github.com/rs/zerolog"

	"github.com/keystone-gg/keystone/types"
)

// Loggable is implemented by the world so the logger can enumerate its
// registered components and systems.
type Loggable interface {
	GetComponents() []types.ComponentType
	GetSystemNames() []string
}

type Logger struct {
	*zerolog.Logger
}

func (_ *Logger) loadComponentIntoArrayLogger(component types.ComponentType, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("component_id", int(component.ID()))
	dictLogger = dictLogger.Str("component_name", component.Name())
	return arrayLogger.Dict(dictLogger)
}

func (l *Logger) loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	zeroLoggerEvent.Int("total_components", len(target.GetComponents()))
	arrayLogger := zerolog.Arr()
	for _, _component := range target.GetComponents() {
		arrayLogger = l.loadComponentIntoArrayLogger(_component, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

func (l *Logger) loadSystemIntoEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	zeroLoggerEvent.Int("total_systems", len(target.GetSystemNames()))
	arrayLogger := zerolog.Arr()
	for _, name := range target.GetSystemNames() {
		arrayLogger = arrayLogger.Str(name)
	}
	return zeroLoggerEvent.Array("systems", arrayLogger)
}

func (l *Logger) loadEntityIntoEvent(zeroLoggerEvent *zerolog.Event, id types.EntityID,
	archID types.ArchetypeID, components []types.ComponentType) *zerolog.Event {
	arrayLogger := zerolog.Arr()
	for _, _component := range components {
		arrayLogger = l.loadComponentIntoArrayLogger(_component, arrayLogger)
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Uint64("entity_id", uint64(id))
	return zeroLoggerEvent.Int("archetype_id", int(archID))
}

// LogComponents logs all component info related to the world.
func (l *Logger) LogComponents(target Loggable, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// LogSystem logs all system info related to the world.
func (l *Logger) LogSystem(target Loggable, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadSystemIntoEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// LogEntity logs an entity's id, archetype and components.
func (l *Logger) LogEntity(level zerolog.Level, id types.EntityID,
	archID types.ArchetypeID, components []types.ComponentType) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadEntityIntoEvent(zeroLoggerEvent, id, archID, components)
	zeroLoggerEvent.Send()
}

// LogArchetype logs the creation of an archetype.
func (l *Logger) LogArchetype(level zerolog.Level, archID types.ArchetypeID,
	signature types.Signature, components []types.ComponentType) {
	zeroLoggerEvent := l.WithLevel(level)
	arrayLogger := zerolog.Arr()
	for _, _component := range components {
		arrayLogger = l.loadComponentIntoArrayLogger(_component, arrayLogger)
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Str("signature", signature.String())
	zeroLoggerEvent.Int("archetype_id", int(archID))
	zeroLoggerEvent.Send()
}

// LogWorld logs everything about the world (components and systems).
func (l *Logger) LogWorld(target Loggable, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent = l.loadSystemIntoEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// CreateSystemLogger creates a sub logger with the entry {"system": systemName}.
func (l *Logger) CreateSystemLogger(systemName string) Logger {
	zeroLogger := l.Logger.With().
		Str("system", systemName).Logger()
	return Logger{
		&zeroLogger,
	}
}

// CreateTraceLogger creates a trace logger. Using a single id you can use
// this logger to follow and log a data path.
func (l *Logger) CreateTraceLogger(traceID string) zerolog.Logger {
	return l.Logger.With().
		Str("trace_id", traceID).
		Logger()
}
