package forces

import (
	"slices"

	"physics-engine/internal/physics/body"
)

// Registration pairs a generator with the body it acts on.
type Registration struct {
	Generator Generator
	Body      *body.Rigidbody
}

// Matches reports whether r refers to exactly this generator and body.
func (r Registration) Matches(g Generator, b *body.Rigidbody) bool {
	return r.Generator == g && r.Body == b
}

// Registry applies generators to bodies in insertion order. It holds references only;
// it never owns or frees a body. Not safe for concurrent use.
type Registry struct {
	registrations []Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a pairing. Duplicates are kept and applied twice.
func (r *Registry) Register(b *body.Rigidbody, g Generator) {
	r.registrations = append(r.registrations, Registration{Generator: g, Body: b})
}

// Unregister removes the first registration matching b and g. It reports whether one
// was found.
func (r *Registry) Unregister(b *body.Rigidbody, g Generator) bool {
	i := slices.IndexFunc(r.registrations, func(reg Registration) bool {
		return reg.Matches(g, b)
	})
	if i < 0 {
		return false
	}
	r.registrations = slices.Delete(r.registrations, i, i+1)
	return true
}

// UnregisterBody removes every registration for b and returns how many were removed.
func (r *Registry) UnregisterBody(b *body.Rigidbody) int {
	before := len(r.registrations)
	r.registrations = slices.DeleteFunc(r.registrations, func(reg Registration) bool {
		return reg.Body == b
	})
	return before - len(r.registrations)
}

// UpdateForces asks every generator to add its force for this step.
func (r *Registry) UpdateForces(dt float32) {
	for _, reg := range r.registrations {
		reg.Generator.UpdateForce(reg.Body, dt)
	}
}

// ZeroForces clears the force accumulator of every registered body.
func (r *Registry) ZeroForces() {
	for _, reg := range r.registrations {
		reg.Body.ClearAccumulator()
	}
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.registrations = nil
}

func (r *Registry) Len() int {
	return len(r.registrations)
}

// Registrations returns a copy of the registrations in application order.
func (r *Registry) Registrations() []Registration {
	return slices.Clone(r.registrations)
}
