package eval

import (
	"slices"
)

// Env is a lexical scope. It holds local bindings and a pointer to the
// enclosing scope. Envs are shared by pointer: a closure holds on to the Env
// it was created in, and sees later assignments to it.
type Env struct {
	parent *Env
	locals map[string]any
	// Inner Envs host the implicit receiver of a flow body. They are skipped
	// by Outer.
	inner bool
	// The implicit receiver for property expressions like .x.
	This any
}

// NewEnv creates a root Env.
func NewEnv() *Env {
	return &Env{locals: map[string]any{}}
}

// Get looks up a name in this Env and its ancestors.
func (e *Env) Get(name string) (any, bool) {
	for ; e != nil; e = e.parent {
		if v, ok := e.locals[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds a name in this Env. It never modifies an ancestor: a binding with
// the same name in an ancestor is shadowed.
func (e *Env) Set(name string, v any) {
	e.locals[name] = v
}

// Branch creates a child Env.
func (e *Env) Branch(inner bool) *Env {
	return &Env{parent: e, locals: map[string]any{}, inner: inner}
}

// Outer returns the nearest Env, starting from e itself, that is not inner.
func (e *Env) Outer() *Env {
	for e.inner && e.parent != nil {
		e = e.parent
	}
	return e
}

// Receiver returns the implicit receiver of the nearest Env that has one.
func (e *Env) Receiver() any {
	for ; e != nil; e = e.parent {
		if e.This != nil {
			return e.This
		}
	}
	return nil
}

// Names returns the sorted names visible from this Env.
func (e *Env) Names() []string {
	seen := map[string]bool{}
	var names []string
	for ; e != nil; e = e.parent {
		for name := range e.locals {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}
