package gateway

import (
	"fmt"
	"slices"
)

type Provider string

const (
	ProviderAmeriabank Provider = "ameriabank"
	ProviderArca       Provider = "arca"
	ProviderIdram      Provider = "idram"
	ProviderTelcell    Provider = "telcell"
)

var AvailableProviders = []Provider{ProviderAmeriabank, ProviderArca, ProviderIdram, ProviderTelcell}

func NewProvider(raw string) (Provider, error) {
	if slices.Contains(AvailableProviders, Provider(raw)) {
		return Provider(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, raw)
}

// Registry maps providers to their adapters.
type Registry struct {
	adapters map[Provider]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[Provider]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Provider()] = a
	}
	return r
}

func (r *Registry) Get(p Provider) (Adapter, error) {
	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}
	return a, nil
}

// Configured lists the providers that can accept payments right now.
func (r *Registry) Configured() []Provider {
	var out []Provider
	for _, p := range AvailableProviders {
		if a, ok := r.adapters[p]; ok && a.IsConfigured() {
			out = append(out, p)
		}
	}
	return out
}
