package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/qbtypes/internal/model"
)

func TestDefault_CoversEveryKind(t *testing.T) {
	r := Default()
	require.Len(t, r.Descriptors(), len(model.Kinds()))
	for _, k := range model.Kinds() {
		d, ok := r.Lookup(k)
		require.True(t, ok, k)
		assert.Equal(t, k, d.Kind)
		assert.Equal(t, d.NameField != "", d.Referenceable(), k)
		for _, l := range d.Links {
			assert.NotEmpty(t, l.Field)
			assert.Contains(t, model.Kinds(), l.Target)
		}
	}
	assert.Same(t, r, Default())
}

func TestDescriptor_NameAccessor(t *testing.T) {
	d, ok := Default().Lookup(model.KindCustomer)
	require.True(t, ok)

	c := &model.Customer{}
	c.DisplayName = model.Ptr("Acme")
	require.NotNil(t, d.Name(c))
	assert.Equal(t, "Acme", *d.Name(c))

	assert.Nil(t, d.Name(&model.Vendor{}), "wrong kind reads nothing")
}

func TestDescriptor_Operations(t *testing.T) {
	d, ok := Default().Lookup(model.KindInvoice)
	require.True(t, ok)
	assert.Equal(t, Operations(), d.Operations())

	d, ok = Default().Lookup(model.KindTaxAgency)
	require.True(t, ok)
	assert.Equal(t, []Operation{OpRead, OpCreate}, d.Operations())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Kind: model.KindTerm})
	assert.Panics(t, func() {
		r.Register(Descriptor{Kind: model.KindTerm})
	})
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("sparse_update")
	require.NoError(t, err)
	assert.Equal(t, OpSparseUpdate, op)

	_, err = ParseOperation("archive")
	assert.Error(t, err)
}
