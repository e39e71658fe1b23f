package mount

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultHostID is the host looked up when the embedding application does not
// name one explicitly.
const DefaultHostID = "contribly-widget"

var (
	// ErrNoHost is returned when a root is acquired against a nil host.
	ErrNoHost = errors.New("no host element")

	// ErrRootExists is returned by root creation when another instance got
	// there first. AcquireRoot handles it by adopting the existing root.
	ErrRootExists = errors.New("isolated root already exists")
)

// Host is a named mount point owned by the embedding application. Hosts
// outlive widget instances: repeated mount/destroy cycles on one host reuse
// the same Host (and usually the same Root).
type Host struct {
	id string

	mu   sync.Mutex
	root *Root
}

// ID returns the host's registered identifier.
func (h *Host) ID() string {
	return h.id
}

// Root returns the host's isolated root, or nil if none has been created yet.
func (h *Host) Root() *Root {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.root
}

// createRoot attaches a fresh root to the host. Creating twice on one host is
// not allowed; callers go through AcquireRoot which adopts the existing root
// instead.
func (h *Host) createRoot() (*Root, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.root != nil {
		return nil, ErrRootExists
	}
	h.root = &Root{host: h}
	return h.root, nil
}

// Root is a style-isolated render surface attached to a host. The widget only
// ever replaces its content; a root is never detached from its host, because
// a previous instance's root may still be attached when a new instance mounts
// onto the same host.
type Root struct {
	host *Host

	mu      sync.Mutex
	content string
}

// SetContent replaces the root's rendered content.
func (r *Root) SetContent(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content
}

// Content returns the root's current rendered content.
func (r *Root) Content() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.content
}

// Clear empties the root's content without detaching it.
func (r *Root) Clear() {
	r.SetContent("")
}

// Host returns the host this root is attached to.
func (r *Root) Host() *Host {
	return r.host
}

// Registry tracks mount hosts by identity. Host ownership lives here, not in
// widget instances, so two instances racing onto one host resolve to the same
// root.
type Registry struct {
	mu    sync.Mutex
	hosts map[string]*Host
}

// NewRegistry creates an empty host registry.
func NewRegistry() *Registry {
	return &Registry{hosts: make(map[string]*Host)}
}

// Register returns the host with the given id, creating it if absent.
func (reg *Registry) Register(id string) *Host {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if h, ok := reg.hosts[id]; ok {
		return h
	}
	h := &Host{id: id}
	reg.hosts[id] = h
	return h
}

// Lookup returns the host registered under the given id, or nil.
func (reg *Registry) Lookup(id string) *Host {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.hosts[id]
}

// AcquireRoot yields the host's isolated root, idempotently. An existing root
// is adopted and cleared; otherwise one is created, falling back to adoption
// if creation loses a race to another instance.
func (reg *Registry) AcquireRoot(host *Host) (*Root, error) {
	if host == nil {
		return nil, ErrNoHost
	}
	if r := host.Root(); r != nil {
		r.Clear()
		return r, nil
	}
	r, err := host.createRoot()
	if err != nil {
		if errors.Is(err, ErrRootExists) {
			if existing := host.Root(); existing != nil {
				existing.Clear()
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create isolated root: %w", err)
	}
	return r, nil
}

// DefaultRegistry backs the package-level helpers. Embedding applications
// that need isolation (tests, multiple widget groups) can carry their own
// Registry instead.
var DefaultRegistry = NewRegistry()

// Register returns (creating if needed) a host in the default registry.
func Register(id string) *Host {
	return DefaultRegistry.Register(id)
}

// Lookup finds a host in the default registry, or nil.
func Lookup(id string) *Host {
	return DefaultRegistry.Lookup(id)
}

// AcquireRoot acquires a root through the default registry.
func AcquireRoot(host *Host) (*Root, error) {
	return DefaultRegistry.AcquireRoot(host)
}
