package capability

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/qbtypes/internal/model"
)

var (
	// ErrUnsupported means the record's kind does not expose the operation.
	ErrUnsupported = errors.New("operation not supported for kind")
	// ErrPrecondition means the kind supports the operation but the record's
	// current fields do not satisfy it.
	ErrPrecondition = errors.New("operation precondition not met")
)

// HasRead reports whether e was read from the platform: both id and sync
// token are present.
func HasRead(e model.Entity) bool {
	if e == nil {
		return false
	}
	o := e.Object()
	return model.HasText(o.ID) && model.HasText(o.SyncToken)
}

// CanRead reports whether e can be fetched by id.
func CanRead(e model.Entity) bool {
	if e == nil {
		return false
	}
	return model.HasText(e.Object().ID)
}

func isSparse(e model.Entity) bool {
	s := e.Object().Sparse
	return s != nil && *s
}

// CanCreate reports whether e can be sent in a create request.
func (d *Descriptor) CanCreate(e model.Entity) bool {
	return d.Create != nil && d.Create(e)
}

// CanFullUpdate reports whether e can be sent in a full update request.
func (d *Descriptor) CanFullUpdate(e model.Entity) bool {
	return d.FullUpdate != nil && d.FullUpdate(e)
}

// CanSparseUpdate reports whether e can be sent as a partial update. The
// record must satisfy a full update and carry sparse=true.
func (d *Descriptor) CanSparseUpdate(e model.Entity) bool {
	return d.SparseUpdate && d.CanFullUpdate(e) && isSparse(e)
}

// CanDelete reports whether e can be deleted.
func (d *Descriptor) CanDelete(e model.Entity) bool {
	return d.Delete && HasRead(e)
}

// CanVoid reports whether e can be voided.
func (d *Descriptor) CanVoid(e model.Entity) bool {
	return d.Void && HasRead(e)
}

// CanSend reports whether e can be emailed by the platform.
func (d *Descriptor) CanSend(e model.Entity) bool {
	return d.Send != nil && d.Send(e)
}

// CanProducePDF reports whether the platform can render e as a PDF.
func (d *Descriptor) CanProducePDF(model.Entity) bool {
	return d.PDF
}

// Allowed evaluates op for e.
func (d *Descriptor) Allowed(op Operation, e model.Entity) bool {
	switch op {
	case OpRead:
		return CanRead(e)
	case OpCreate:
		return d.CanCreate(e)
	case OpFullUpdate:
		return d.CanFullUpdate(e)
	case OpSparseUpdate:
		return d.CanSparseUpdate(e)
	case OpDelete:
		return d.CanDelete(e)
	case OpVoid:
		return d.CanVoid(e)
	case OpSend:
		return d.CanSend(e)
	case OpPDF:
		return d.CanProducePDF(e)
	default:
		return false
	}
}

func lookup(e model.Entity) (*Descriptor, bool) {
	if e == nil {
		return nil, false
	}
	return Default().Lookup(e.Kind())
}

func eval(e model.Entity, op Operation) bool {
	d, ok := lookup(e)
	return ok && d.Allowed(op, e)
}

// CanCreate reports whether e can be created, using the built-in rules.
func CanCreate(e model.Entity) bool { return eval(e, OpCreate) }

// CanFullUpdate reports whether e can be fully updated.
func CanFullUpdate(e model.Entity) bool { return eval(e, OpFullUpdate) }

// CanSparseUpdate reports whether e can be partially updated.
func CanSparseUpdate(e model.Entity) bool { return eval(e, OpSparseUpdate) }

// CanDelete reports whether e can be deleted.
func CanDelete(e model.Entity) bool { return eval(e, OpDelete) }

// CanVoid reports whether e can be voided.
func CanVoid(e model.Entity) bool { return eval(e, OpVoid) }

// CanSend reports whether e can be emailed.
func CanSend(e model.Entity) bool { return eval(e, OpSend) }

// CanProducePDF reports whether e can be rendered as a PDF.
func CanProducePDF(e model.Entity) bool { return eval(e, OpPDF) }

// Supports reports whether kind k exposes op.
func Supports(k model.Kind, op Operation) bool {
	d, ok := Default().Lookup(k)
	return ok && d.Supports(op)
}

// Decision is the outcome of one operation for one record.
type Decision struct {
	Operation Operation
	Supported bool
	Allowed   bool
}

// Evaluate decides every operation for e.
func Evaluate(e model.Entity) []Decision {
	d, ok := lookup(e)
	out := make([]Decision, 0, len(Operations()))
	for _, op := range Operations() {
		dec := Decision{Operation: op}
		if ok {
			dec.Supported = d.Supports(op)
			dec.Allowed = dec.Supported && d.Allowed(op, e)
		}
		out = append(out, dec)
	}
	return out
}

// Guard returns nil when op is allowed for e. Otherwise it returns an error
// wrapping ErrUnsupported or ErrPrecondition.
func Guard(e model.Entity, op Operation) error {
	if e == nil {
		return fmt.Errorf("%s: no record: %w", op, ErrPrecondition)
	}
	d, ok := lookup(e)
	if !ok || !d.Supports(op) {
		return fmt.Errorf("%s %s: %w", e.Kind(), op, ErrUnsupported)
	}
	if !d.Allowed(op, e) {
		return fmt.Errorf("%s %s: %w", e.Kind(), op, ErrPrecondition)
	}
	return nil
}
