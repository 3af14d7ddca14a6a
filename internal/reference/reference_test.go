package reference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/qbtypes/internal/model"
)

func TestToReference(t *testing.T) {
	c := &model.Customer{}
	c.DisplayName = model.Ptr("Acme")

	_, err := ToReference(c)
	var refErr *model.ToRefError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, model.KindCustomer, refErr.Kind)

	c.ID = model.Ptr("42")
	ref, err := ToReference(c)
	require.NoError(t, err)
	assert.Equal(t, model.Reference{Type: "Customer", Name: "Acme", Value: "42"}, ref)
}

func TestToReference_NamingFields(t *testing.T) {
	acct := &model.Account{Name: model.Ptr("Checking"), FullyQualifiedName: model.Ptr("Bank:Checking")}
	acct.ID = model.Ptr("35")

	inv := &model.Invoice{}
	inv.ID = model.Ptr("130")
	inv.DocNumber = model.Ptr("1037")

	item := &model.Item{Name: model.Ptr("Pest Control")}
	item.ID = model.Ptr("10")

	tests := []struct {
		e    model.Entity
		want string
	}{
		{acct, "Bank:Checking"},
		{inv, "1037"},
		{item, "Pest Control"},
	}
	for _, tt := range tests {
		t.Run(string(tt.e.Kind()), func(t *testing.T) {
			ref, err := ToReference(tt.e)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.Name)
			assert.Equal(t, tt.e.Kind().Name(), ref.Type)
			assert.Equal(t, *tt.e.Object().ID, ref.Value)
		})
	}
}

func TestToReference_MissingName(t *testing.T) {
	v := &model.Vendor{}
	v.ID = model.Ptr("9")

	_, err := ToReference(v)
	var missing *model.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "DisplayName", missing.Field)
}

func TestToReference_NotReferenceable(t *testing.T) {
	p := &model.Payment{}
	p.ID = model.Ptr("5")

	_, err := ToReference(p)
	assert.ErrorIs(t, err, ErrNotReferenceable)

	_, err = ToReference(nil)
	assert.ErrorIs(t, err, ErrNotReferenceable)
}

func TestLinked(t *testing.T) {
	d := &model.Department{ParentRef: model.NamedRef("2", "West")}

	ref := Linked(d, "ParentRef")
	require.NotNil(t, ref)
	assert.Equal(t, "2", ref.Value)
	assert.Same(t, d.ParentRef, ref)

	target, ok := Target(d, "ParentRef")
	require.True(t, ok)
	assert.Equal(t, model.KindDepartment, target)

	assert.Nil(t, Linked(d, "VendorRef"))
	assert.Nil(t, Linked(&model.Department{}, "ParentRef"))
	assert.Nil(t, Linked(nil, "ParentRef"))
}

func TestLinked_SalesDocument(t *testing.T) {
	inv := &model.Invoice{}
	inv.CustomerRef = model.NamedRef("1", "Amy's Bird Sanctuary")

	ref := Linked(inv, "CustomerRef")
	require.NotNil(t, ref)
	assert.Equal(t, "Amy's Bird Sanctuary", ref.Name)

	target, ok := Target(inv, "CustomerRef")
	require.True(t, ok)
	assert.Equal(t, model.KindCustomer, target)
}

func TestLinks(t *testing.T) {
	item := &model.Item{
		IncomeAccountRef: model.Ref("79"),
		AssetAccountRef:  model.Ref("81"),
		PrefVendorRef:    &model.Reference{Name: "no id"},
	}

	edges := Links(item)
	require.Len(t, edges, 2)
	assert.Equal(t, Edge{Field: "IncomeAccountRef", Target: model.KindAccount, Ref: *model.Ref("79")}, edges[0])
	assert.Equal(t, "AssetAccountRef", edges[1].Field)

	assert.Empty(t, Links(&model.Employee{}))
}
