package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/resconf/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving
// items by name. Names are matched case-insensitively; the name an item was
// first stored under is the one List reports.
type Registry[T any] interface {
	// Register adds an item, failing if the name is taken
	Register(name string, item T) error

	// Put adds an item, replacing any item already stored under the name
	Put(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Remove removes an item from the registry
	Remove(name string) error

	// List returns all registered names
	List() []string

	// Values returns all items, ordered by name
	Values() []T

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

type entry[T any] struct {
	name string
	item T
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]entry[T]
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]entry[T]),
	}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *registry[T]) Register(name string, item T) error {
	k := key(name)
	if k == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.items[k]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", existing.name).
			WithDetail("name", name)
	}

	r.items[k] = entry[T]{name: strings.TrimSpace(name), item: item}
	return nil
}

func (r *registry[T]) Put(name string, item T) error {
	k := key(name)
	if k == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := strings.TrimSpace(name)
	if existing, exists := r.items[k]; exists {
		stored = existing.name
	}
	r.items[k] = entry[T]{name: stored, item: item}
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.items[key(name)]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}

	return e.item, nil
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(name)
	if _, exists := r.items[k]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	delete(r.items, k)
	return nil
}

// sorted returns the entries ordered by their lowercased name.
func (r *registry[T]) sorted() []entry[T] {
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]entry[T], 0, len(keys))
	for _, k := range keys {
		entries = append(entries, r.items[k])
	}
	return entries
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.sorted()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

func (r *registry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.sorted()
	items := make([]T, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.item)
	}
	return items
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[key(name)]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
