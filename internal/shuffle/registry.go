package shuffle

import (
	"fmt"

	"shufflelab/internal/deck"
)

// Registry holds the named algorithm variants in a stable order.
type Registry struct {
	algorithms map[string]func() Algorithm
	order      []string
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]func() Algorithm)}

	r.register("exchange", NewExchange)
	r.register("riffle", NewRiffle)
	r.register("overhand", NewOverhand)
	r.register("hindu", NewHindu)

	return r
}

func (r *Registry) register(name string, fn func() Algorithm) {
	r.algorithms[name] = fn
	r.order = append(r.order, name)
}

func (r *Registry) Get(name string) (Algorithm, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown algorithm: %s", deck.ErrInvalidInput, name)
	}
	return fn(), nil
}

// List returns the algorithm descriptors in registration order.
func (r *Registry) List() []Descriptor {
	descs := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, r.algorithms[name]().Descriptor())
	}
	return descs
}

// Names returns the algorithm names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
