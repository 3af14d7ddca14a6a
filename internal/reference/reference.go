// Package reference builds references to saved records and follows the
// reference fields records already carry.
package reference

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/qbtypes/internal/capability"
	"github.com/cleared-dev/qbtypes/internal/model"
)

// ErrNotReferenceable is returned for kinds the platform never references,
// such as payments.
var ErrNotReferenceable = errors.New("kind cannot be referenced")

// ToReference builds a Reference to e. The record must have an id; the display
// name comes from the kind's naming field.
func ToReference(e model.Entity) (model.Reference, error) {
	return To(capability.Default(), e)
}

// To is ToReference with an explicit registry.
func To(r *capability.Registry, e model.Entity) (model.Reference, error) {
	if e == nil {
		return model.Reference{}, fmt.Errorf("referencing: %w", ErrNotReferenceable)
	}
	k := e.Kind()
	d, ok := r.Lookup(k)
	if !ok || !d.Referenceable() {
		return model.Reference{}, fmt.Errorf("referencing %s: %w", k, ErrNotReferenceable)
	}

	id := e.Object().ID
	if !model.HasText(id) {
		return model.Reference{}, &model.ToRefError{Kind: k}
	}
	name := d.Name(e)
	if name == nil {
		return model.Reference{}, &model.MissingFieldError{Kind: k, Field: d.NameField}
	}

	return model.Reference{
		Type:  k.Name(),
		Name:  *name,
		Value: *id,
	}, nil
}

// Linked returns the reference stored in field on e, or nil when the field is
// unset or is not a reference field of e's kind.
func Linked(e model.Entity, field string) *model.Reference {
	l, ok := link(e, field)
	if !ok {
		return nil
	}
	ref := l.Get(e)
	if !ref.IsSet() {
		return nil
	}
	return ref
}

// Target returns the kind field on e points at.
func Target(e model.Entity, field string) (model.Kind, bool) {
	l, ok := link(e, field)
	if !ok {
		return "", false
	}
	return l.Target, true
}

// Edge is one populated outgoing reference.
type Edge struct {
	Field  string
	Target model.Kind
	Ref    model.Reference
}

// Links returns every populated reference field on e, in descriptor order.
func Links(e model.Entity) []Edge {
	if e == nil {
		return nil
	}
	d, ok := capability.Default().Lookup(e.Kind())
	if !ok {
		return nil
	}
	var out []Edge
	for _, l := range d.Links {
		ref := l.Get(e)
		if !ref.IsSet() {
			continue
		}
		out = append(out, Edge{Field: l.Field, Target: l.Target, Ref: *ref})
	}
	return out
}

func link(e model.Entity, field string) (capability.Link, bool) {
	if e == nil {
		return capability.Link{}, false
	}
	d, ok := capability.Default().Lookup(e.Kind())
	if !ok {
		return capability.Link{}, false
	}
	return d.Link(field)
}
