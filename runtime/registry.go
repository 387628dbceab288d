package runtime

import (
	"sort"
	"sync"

	parallelprobe "github.com/wippyai/parallel-probe"
	"github.com/wippyai/parallel-probe/errors"
)

// Registry holds the probes known to a runtime, keyed by name.
type Registry struct {
	mu     sync.RWMutex
	probes map[string]parallelprobe.Probe
}

func NewRegistry() *Registry {
	return &Registry{
		probes: make(map[string]parallelprobe.Probe),
	}
}

// Add registers a probe. Empty names and duplicates are rejected.
func (r *Registry) Add(p parallelprobe.Probe) error {
	name := p.Name()
	if name == "" {
		return errors.InvalidInput(errors.PhaseRegister, "probe name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.probes[name]; exists {
		return errors.AlreadyExists(name)
	}
	r.probes[name] = p
	return nil
}

// Get returns the probe registered under name.
func (r *Registry) Get(name string) (parallelprobe.Probe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.probes[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseRun, name)
	}
	return p, nil
}

// Info describes a registered probe for listings.
type Info struct {
	Name        string
	Description string
}

// List returns all registered probes sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.probes))
	for _, p := range r.probes {
		infos = append(infos, Info{Name: p.Name(), Description: p.Describe()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Len returns the number of registered probes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.probes)
}
