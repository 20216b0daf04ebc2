package sdk

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/viveksalimath/Lemo.ai/sdk/intent"
)

// ErrActionNotFound is returned by Lookup for unregistered actions.
var ErrActionNotFound = errors.New("action not registered")

// Params are the intent object fields an action receives.
type Params struct {
	Lang             string
	Utterance        string
	NewUtterance     string
	CurrentEntities  []intent.Entity
	Entities         []intent.Entity
	CurrentResolvers []intent.Resolver
	Resolvers        []intent.Resolver
	Slots            map[string]any
	ExtraContextData map[string]any
}

// ParamsFrom extracts action params from an intent object.
func ParamsFrom(obj *intent.Object) Params {
	return Params{
		Lang:             obj.Lang,
		Utterance:        obj.Utterance,
		NewUtterance:     obj.NewUtterance,
		CurrentEntities:  obj.CurrentEntities,
		Entities:         obj.Entities,
		CurrentResolvers: obj.CurrentResolvers,
		Resolvers:        obj.Resolvers,
		Slots:            obj.Slots,
		ExtraContextData: obj.ExtraContextData,
	}
}

// ActionFunc runs one skill action and answers through b.
type ActionFunc func(ctx context.Context, b *Bridge, p Params) error

// Registry maps fully qualified action names ("domain:skill:action") to
// their implementation.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]ActionFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]ActionFunc)}
}

// DefaultRegistry is the registry used by Register and the bridge binary.
var DefaultRegistry = NewRegistry()

// Register makes an action available under name. It panics if name is not
// "domain:skill:action", fn is nil, or name is already registered.
func (r *Registry) Register(name string, fn ActionFunc) {
	if err := checkActionName(name); err != nil {
		panic("sdk: Register " + err.Error())
	}
	if fn == nil {
		panic("sdk: Register action is nil for " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.actions[name]; dup {
		panic("sdk: Register called twice for action " + name)
	}
	r.actions[name] = fn
}

// Lookup returns the action registered under name.
func (r *Registry) Lookup(name string) (ActionFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrActionNotFound)
	}
	return fn, nil
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Register adds an action to DefaultRegistry.
func Register(name string, fn ActionFunc) {
	DefaultRegistry.Register(name, fn)
}

// Lookup finds an action in DefaultRegistry.
func Lookup(name string) (ActionFunc, error) {
	return DefaultRegistry.Lookup(name)
}

func checkActionName(name string) error {
	parts := strings.Split(name, ":")
	if len(parts) != 3 {
		return fmt.Errorf("action name %q must be domain:skill:action", name)
	}
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("action name %q has an empty part", name)
		}
	}
	return nil
}
