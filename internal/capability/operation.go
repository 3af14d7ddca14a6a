package capability

import "fmt"

// Operation is a lifecycle operation the platform exposes on a record.
type Operation string

const (
	OpRead         Operation = "read"
	OpCreate       Operation = "create"
	OpFullUpdate   Operation = "full_update"
	OpSparseUpdate Operation = "sparse_update"
	OpDelete       Operation = "delete"
	OpVoid         Operation = "void"
	OpSend         Operation = "send"
	OpPDF          Operation = "pdf"
)

// Operations returns every operation in lifecycle order.
func Operations() []Operation {
	return []Operation{
		OpRead,
		OpCreate,
		OpFullUpdate,
		OpSparseUpdate,
		OpDelete,
		OpVoid,
		OpSend,
		OpPDF,
	}
}

// ParseOperation resolves an operation name.
func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations() {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", s)
}
