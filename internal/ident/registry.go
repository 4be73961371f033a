package ident

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned when a generator keeps producing values that are
// already reserved.
var ErrExhausted = errors.New("unique value space exhausted")

// MaxAttempts bounds the retries of a single Reserve call.
const MaxAttempts = 1000

// Namespaces used by the seeder.
const (
	NamespaceCPF      = "cpf"
	NamespaceEmail    = "email"
	NamespaceCRMV     = "crmv"
	NamespaceCampaign = "campaign"
	NamespaceEvent    = "event"
	NamespaceClinic   = "clinic"
)

// Registry is the single uniqueness mechanism of a run: every value that must
// be unique is reserved here before it is inserted.
type Registry struct {
	reserved map[string]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{reserved: make(map[string]map[string]struct{})}
}

// Reserve calls gen until it returns a value not yet reserved in namespace,
// records it and returns it.
func (r *Registry) Reserve(namespace string, gen func() string) (string, error) {
	set := r.reserved[namespace]
	if set == nil {
		set = make(map[string]struct{})
		r.reserved[namespace] = set
	}

	for range MaxAttempts {
		v := gen()
		if _, taken := set[v]; taken {
			continue
		}
		set[v] = struct{}{}
		return v, nil
	}
	return "", fmt.Errorf("%w: %s after %d attempts", ErrExhausted, namespace, MaxAttempts)
}

// Contains reports whether v is reserved in namespace.
func (r *Registry) Contains(namespace, v string) bool {
	_, ok := r.reserved[namespace][v]
	return ok
}

// Len returns the number of values reserved in namespace.
func (r *Registry) Len(namespace string) int {
	return len(r.reserved[namespace])
}
