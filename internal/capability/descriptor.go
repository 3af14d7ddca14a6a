package capability

import (
	"github.com/cleared-dev/qbtypes/internal/model"
)

// Predicate decides one operation for a record. It must not mutate the record.
type Predicate func(model.Entity) bool

// Link is a reference field on a kind that points at a record of another kind.
type Link struct {
	Field  string
	Target model.Kind
	Get    func(model.Entity) *model.Reference
}

// Descriptor bundles everything known about a kind: its naming field, its
// outgoing reference fields and the rules for each operation. A nil predicate
// or a false flag means the kind does not support the operation.
type Descriptor struct {
	Kind model.Kind

	// NameField is the wire name of the field used as a reference's display
	// name. Empty when records of the kind cannot be referenced.
	NameField string
	Name      func(model.Entity) *string
	Links     []Link

	Create       Predicate
	FullUpdate   Predicate
	SparseUpdate bool
	Delete       bool
	Void         bool
	Send         Predicate
	PDF          bool
}

// Referenceable reports whether records of the kind can be turned into a Reference.
func (d *Descriptor) Referenceable() bool {
	return d.Name != nil
}

// Link returns the link for field, matched by wire name.
func (d *Descriptor) Link(field string) (Link, bool) {
	for _, l := range d.Links {
		if l.Field == field {
			return l, true
		}
	}
	return Link{}, false
}

// Supports reports whether the kind exposes op at all, regardless of any
// record's state.
func (d *Descriptor) Supports(op Operation) bool {
	switch op {
	case OpRead:
		return true
	case OpCreate:
		return d.Create != nil
	case OpFullUpdate:
		return d.FullUpdate != nil
	case OpSparseUpdate:
		return d.SparseUpdate && d.FullUpdate != nil
	case OpDelete:
		return d.Delete
	case OpVoid:
		return d.Void
	case OpSend:
		return d.Send != nil
	case OpPDF:
		return d.PDF
	default:
		return false
	}
}

// Operations lists the operations the kind supports.
func (d *Descriptor) Operations() []Operation {
	var ops []Operation
	for _, op := range Operations() {
		if d.Supports(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// typed adapts a predicate on a concrete record type. Records of any other
// type never satisfy it.
func typed[T model.Entity](f func(T) bool) Predicate {
	return func(e model.Entity) bool {
		v, ok := e.(T)
		return ok && f(v)
	}
}

func name[T model.Entity](f func(T) *string) func(model.Entity) *string {
	return func(e model.Entity) *string {
		v, ok := e.(T)
		if !ok {
			return nil
		}
		return f(v)
	}
}

func link[T model.Entity](field string, target model.Kind, get func(T) *model.Reference) Link {
	return Link{
		Field:  field,
		Target: target,
		Get: func(e model.Entity) *model.Reference {
			v, ok := e.(T)
			if !ok {
				return nil
			}
			return get(v)
		},
	}
}

func always(model.Entity) bool { return true }
