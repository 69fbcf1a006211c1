// Package mcpcontext provides the type-keyed shared-state container that
// handlers read from instead of closing over package-level globals or
// threading bespoke parameters through every call. It is deliberately not
// named "context" to avoid colliding with the standard context.Context,
// which callers carry alongside it for cancellation and deadlines.
package mcpcontext

import (
	"fmt"
	"reflect"
)

// Shared wraps a value registered into a Context. It exists to make the
// sharing explicit at the type level: a Shared[T] is handed out by
// reference (a pointer to T), so every handler observes the same
// underlying state.
type Shared[T any] struct {
	value *T
}

// NewShared wraps v for registration into a Context.
func NewShared[T any](v *T) Shared[T] { return Shared[T]{value: v} }

// Get returns the shared value.
func (s Shared[T]) Get() *T { return s.value }

// Context is an immutable-after-build, type-keyed map of shared state. It
// is populated only through a Builder; once built, reads take no lock,
// mirroring the original's single-writer-many-readers design adapted to
// Go's memory model (the Builder's values are fully written before any
// goroutine observes the Context, so no synchronization is needed on the
// read path).
type Context struct {
	values map[reflect.Type]any
}

// Builder accumulates values before a Context is frozen.
type Builder struct {
	values map[reflect.Type]any
}

func NewBuilder() *Builder {
	return &Builder{values: make(map[reflect.Type]any)}
}

// Insert registers v under its own type. Calling Insert twice with the
// same type replaces the earlier value; this is a builder-time
// convenience, not a runtime capability.
func Insert[T any](b *Builder, v *T) {
	b.values[reflect.TypeFor[T]()] = NewShared(v)
}

// Build freezes the builder into a read-only Context.
func (b *Builder) Build() *Context {
	frozen := make(map[reflect.Type]any, len(b.values))
	for k, v := range b.values {
		frozen[k] = v
	}
	return &Context{values: frozen}
}

// Get returns the Shared[T] registered for T, and whether it was found.
func Get[T any](ctx *Context) (Shared[T], bool) {
	v, ok := ctx.values[reflect.TypeFor[T]()]
	if !ok {
		return Shared[T]{}, false
	}
	shared, ok := v.(Shared[T])
	return shared, ok
}

// From returns the Shared[T] registered for T, panicking if it was never
// registered. This is the fail-fast "programmer error" path a handler
// relies on: declaring a dependency on T that the server was never
// configured to provide is a wiring bug, not a runtime condition to
// recover from.
func From[T any](ctx *Context) Shared[T] {
	shared, ok := Get[T](ctx)
	if !ok {
		var zero T
		panic(fmt.Sprintf("mcpcontext: no %T registered in this service's context", zero))
	}
	return shared
}
