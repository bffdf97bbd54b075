package object

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Environment is one scope of name bindings. Lookups walk outward through
// the enclosing environments; bindings are always made locally.
type Environment struct {
	outer *Environment
	store map[string]Object
}

func NewEnvironment() *Environment {
	return &Environment{outer: nil, store: make(map[string]Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

func (env *Environment) Get(name string) (Object, bool) {
	if value, ok := env.store[name]; ok {
		return value, true
	}
	if env.outer == nil {
		return nil, false
	}
	return env.outer.Get(name)
}

// Set binds name in this environment only, shadowing any outer binding.
func (env *Environment) Set(name string, value Object) Object {
	env.store[name] = value
	return value
}

func (env *Environment) Outer() *Environment { return env.outer }

// Names returns the names bound directly in env, sorted.
func (env *Environment) Names() []string {
	names := maps.Keys(env.store)
	slices.Sort(names)
	return names
}

func (env *Environment) String() string {
	if env.outer == nil {
		return fmt.Sprintf("Environment:\nOuter: nil\nCurrent: %v\n", env.Names())
	}
	return fmt.Sprintf("Environment:\nOuter: %v\nCurrent: %v\n", env.outer, env.Names())
}
