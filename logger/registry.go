package logger

import (
	"strings"
	"sync"
)

// RootName is the name of the implicit ancestor of all single-segment
// loggers.
const RootName = "root"

// Registry maps hierarchical dotted names to Logger instances. Each
// name refers to a single instance; parents are created and linked
// lazily, so Get("vehicle1.propulsion") ensures "vehicle1" and "root"
// exist too.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// Get returns the logger for name, creating it and its ancestors as
// needed. Concurrent callers for the same name receive the same
// instance.
func (r *Registry) Get(name string) *Logger {
	r.mu.Lock()
	if l, ok := r.loggers[name]; ok {
		r.mu.Unlock()
		return l
	}
	r.mu.Unlock()

	// Resolve the parent chain outside the lock; recursion is bounded
	// by the number of dots in the name.
	var parent *Logger
	if pn := parentName(name); pn != "" {
		parent = r.Get(pn)
	}

	created := newLogger(name)
	created.setParent(parent)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.loggers[name]; ok {
		return existing
	}
	r.loggers[name] = created
	return created
}

// Clear removes all registered loggers. Primarily for tests.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = make(map[string]*Logger)
}

// parentName maps a dotted name to its parent: "a.b.c" -> "a.b",
// single segments -> "root", and "" or "root" -> "" (no parent).
// Trailing dots collapse, so "a." resolves like "a".
func parentName(name string) string {
	if name == "" || name == RootName {
		return ""
	}

	pos := strings.LastIndexByte(name, '.')
	switch {
	case pos < 0:
		return RootName
	case pos == 0:
		return RootName
	case pos == len(name)-1:
		return parentName(name[:len(name)-1])
	default:
		return name[:pos]
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
