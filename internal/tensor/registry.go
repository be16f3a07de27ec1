package tensor

import (
	"fmt"
	"sort"
)

// Registry is a caller-owned index of tensors by label, typically the
// trainable parameters of a model. It replaces nothing in the graph
// itself: membership only affects whoever holds the registry, and two
// registries over one graph stay independent.
type Registry struct {
	tensors map[string]*Tensor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tensors: make(map[string]*Tensor)}
}

// Add registers t under its current label. Fails when the label is
// already taken by a different tensor.
func (r *Registry) Add(t *Tensor) error {
	label := t.Label()
	if prev, ok := r.tensors[label]; ok && prev.id != t.id {
		return fmt.Errorf("registry: label %q already registered", label)
	}
	r.tensors[label] = t
	return nil
}

// Lookup returns the tensor registered under label.
func (r *Registry) Lookup(label string) (*Tensor, bool) {
	t, ok := r.tensors[label]
	return t, ok
}

// Remove drops the tensor registered under label, if any.
func (r *Registry) Remove(label string) {
	delete(r.tensors, label)
}

// Len returns the number of registered tensors.
func (r *Registry) Len() int {
	return len(r.tensors)
}

// Labels returns the registered labels in sorted order.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.tensors))
	for l := range r.tensors {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Each calls fn for every registered tensor in label order.
func (r *Registry) Each(fn func(*Tensor)) {
	for _, l := range r.Labels() {
		fn(r.tensors[l])
	}
}

// ZeroGrad resets the gradient of every registered tensor.
func (r *Registry) ZeroGrad() {
	r.Each(func(t *Tensor) { t.ZeroGrad() })
}
