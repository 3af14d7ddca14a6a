package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/qbtypes/internal/model"
)

func readMeta(o *model.ObjectData) {
	o.ID = model.Ptr("1")
	o.SyncToken = model.Ptr("0")
}

func salesLine() model.LineItem {
	return model.LineItem{Amount: model.Amount("100"), Detail: &model.SalesItemLineDetail{ItemRef: model.Ref("1")}}
}

func TestHasRead(t *testing.T) {
	c := &model.Customer{}
	assert.False(t, HasRead(c))
	assert.False(t, CanRead(c))

	c.ID = model.Ptr("42")
	assert.False(t, HasRead(c))
	assert.True(t, CanRead(c))

	c.SyncToken = model.Ptr("3")
	assert.True(t, HasRead(c))

	assert.False(t, HasRead(nil))
	assert.False(t, CanRead(nil))
}

func TestCanCreate_PersonKinds(t *testing.T) {
	setters := map[string]func(*model.PersonName){
		"display": func(p *model.PersonName) { p.DisplayName = model.Ptr("Acme") },
		"given":   func(p *model.PersonName) { p.GivenName = model.Ptr("Amy") },
		"family":  func(p *model.PersonName) { p.FamilyName = model.Ptr("Lauterbach") },
		"middle":  func(p *model.PersonName) { p.MiddleName = model.Ptr("J") },
		"title":   func(p *model.PersonName) { p.Title = model.Ptr("Dr") },
		"suffix":  func(p *model.PersonName) { p.Suffix = model.Ptr("Jr") },
	}
	for field, set := range setters {
		t.Run(field, func(t *testing.T) {
			records := []interface {
				model.Entity
				Names() *model.PersonName
			}{&model.Customer{}, &model.Vendor{}, &model.Employee{}}
			for _, e := range records {
				assert.False(t, CanCreate(e), e.Kind())
				set(e.Names())
				assert.True(t, CanCreate(e), e.Kind())
			}
		})
	}
}

func TestCanCreate_Documents(t *testing.T) {
	inv := &model.Invoice{}
	inv.Line = []model.LineItem{salesLine()}
	assert.False(t, CanCreate(inv), "no customer")

	inv.CustomerRef = model.Ref("1")
	assert.True(t, CanCreate(inv))

	inv.Line = nil
	assert.False(t, CanCreate(inv), "no lines")

	inv.Line = []model.LineItem{{Amount: model.Amount("5")}}
	assert.False(t, CanCreate(inv), "empty detail")

	inv.Line = []model.LineItem{{Detail: &model.SalesItemLineDetail{}}}
	assert.False(t, CanCreate(inv), "no amount")

	bill := &model.Bill{Line: []model.LineItem{{
		Amount: model.Amount("20"),
		Detail: &model.AccountBasedExpenseLineDetail{AccountRef: model.Ref("7")},
	}}}
	assert.False(t, CanCreate(bill))
	bill.VendorRef = model.Ref("3")
	assert.True(t, CanCreate(bill))
}

func TestCanCreate_SalesKinds(t *testing.T) {
	docs := []interface {
		model.Entity
		Sales() *model.SalesTransaction
	}{&model.Invoice{}, &model.Estimate{}, &model.SalesReceipt{}, &model.CreditMemo{}}
	for _, d := range docs {
		assert.False(t, CanCreate(d), d.Kind())
		d.Sales().CustomerRef = model.Ref("1")
		d.Sales().Line = []model.LineItem{salesLine()}
		assert.True(t, CanCreate(d), d.Kind())
	}
}

func TestCanCreate_Item(t *testing.T) {
	base := func(typ model.ItemType) *model.Item {
		return &model.Item{Name: model.Ptr("Widget"), Type: model.Ptr(typ), ExpenseAccountRef: model.Ref("80")}
	}

	inv := base(model.ItemInventory)
	assert.False(t, CanCreate(inv))
	inv.IncomeAccountRef = model.Ref("79")
	inv.AssetAccountRef = model.Ref("81")
	inv.InvStartDate = model.Ptr(model.NewDate(2024, 1, 1))
	assert.False(t, CanCreate(inv), "no quantity")
	inv.QtyOnHand = model.Amount("10")
	assert.True(t, CanCreate(inv))

	svc := base(model.ItemService)
	assert.False(t, CanCreate(svc))
	svc.IncomeAccountRef = model.Ref("79")
	assert.True(t, CanCreate(svc))

	assert.True(t, CanCreate(base(model.ItemNonInventory)))
	assert.True(t, CanCreate(&model.Item{Name: model.Ptr("Hardware"), Type: model.Ptr(model.ItemCategory)}))

	untyped := &model.Item{Name: model.Ptr("Widget"), ExpenseAccountRef: model.Ref("80")}
	assert.False(t, CanCreate(untyped))
	untyped.AssetAccountRef = model.Ref("81")
	assert.True(t, CanCreate(untyped))

	noExpense := base(model.ItemNonInventory)
	noExpense.ExpenseAccountRef = nil
	assert.False(t, CanCreate(noExpense))
}

func TestCanCreate_Catalog(t *testing.T) {
	tests := []struct {
		name string
		e    model.Entity
		want bool
	}{
		{"account no type", &model.Account{Name: model.Ptr("Checking")}, false},
		{"account", &model.Account{Name: model.Ptr("Checking"), AccountType: model.Ptr("Bank")}, true},
		{"account sub type", &model.Account{Name: model.Ptr("Checking"), AccountSubType: model.Ptr("Checking")}, true},
		{"class", &model.Class{Name: model.Ptr("East")}, true},
		{"sub class no parent", &model.Class{Name: model.Ptr("East"), SubClass: model.Ptr(true)}, false},
		{"sub class", &model.Class{Name: model.Ptr("East"), SubClass: model.Ptr(true), ParentRef: model.Ref("1")}, true},
		{"department", &model.Department{Name: model.Ptr("Ops"), SubDepartment: model.Ptr(false)}, true},
		{"sub department no parent", &model.Department{Name: model.Ptr("Ops"), SubDepartment: model.Ptr(true)}, false},
		{"currency", &model.CompanyCurrency{Code: model.Ptr("EUR")}, true},
		{"currency no code", &model.CompanyCurrency{Name: model.Ptr("Euro")}, false},
		{"payment method blank", &model.PaymentMethod{Name: model.Ptr("  ")}, false},
		{"payment method", &model.PaymentMethod{Name: model.Ptr("Cash")}, true},
		{"tax agency blank", &model.TaxAgency{DisplayName: model.Ptr("")}, false},
		{"tax agency", &model.TaxAgency{DisplayName: model.Ptr("CA Board")}, true},
		{"term no due", &model.Term{Name: model.Ptr("Net 30")}, false},
		{"term", &model.Term{Name: model.Ptr("Net 30"), DueDays: model.Ptr(30)}, true},
		{"payment", &model.Payment{TotalAmt: model.Amount("10"), CustomerRef: model.Ref("1")}, true},
		{"payment no customer", &model.Payment{TotalAmt: model.Amount("10")}, false},
		{"attachable", &model.Attachable{Note: model.Ptr("hi")}, true},
		{"attachable empty", &model.Attachable{}, false},
		{"company info", &model.CompanyInfo{CompanyName: model.Ptr("Acme")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCreate(tt.e))
		})
	}
}

func TestCanCreate_BillPayment(t *testing.T) {
	bp := &model.BillPayment{
		VendorRef: model.Ref("3"),
		TotalAmt:  model.Amount("50"),
		Line:      []model.PaymentLine{{Amount: model.Amount("50"), LinkedTxn: []model.LinkedTxn{{TxnID: "9", TxnType: "Bill"}}}},
		PayType:   model.Ptr(model.PayTypeCheck),
	}
	assert.False(t, CanCreate(bp), "check detail missing")

	bp.CheckPayment = &model.CheckBillPayment{BankAccountRef: model.Ref("35")}
	assert.True(t, CanCreate(bp))

	bp.PayType = model.Ptr(model.PayTypeCreditCard)
	assert.False(t, CanCreate(bp))
}

func TestCanDelete_EqualsHasRead(t *testing.T) {
	inv := &model.Invoice{}
	assert.False(t, CanDelete(inv))
	readMeta(&inv.ObjectData)
	assert.Equal(t, HasRead(inv), CanDelete(inv))
	assert.True(t, CanVoid(inv))

	est := &model.Estimate{}
	readMeta(&est.ObjectData)
	assert.True(t, CanDelete(est))
	assert.False(t, CanVoid(est), "estimates cannot be voided")

	cust := &model.Customer{}
	readMeta(&cust.ObjectData)
	assert.False(t, CanDelete(cust), "customers are deactivated, not deleted")
}

func TestCanFullUpdate(t *testing.T) {
	c := &model.Customer{}
	c.DisplayName = model.Ptr("Acme")
	assert.False(t, CanFullUpdate(c))

	readMeta(&c.ObjectData)
	assert.True(t, CanFullUpdate(c))

	item := &model.Item{Name: model.Ptr("Widget")}
	readMeta(&item.ObjectData)
	assert.True(t, CanFullUpdate(item), "items only need a name to update")

	ci := &model.CompanyInfo{}
	ci.CompanyName = model.Ptr("Acme")
	ci.CompanyAddr = &model.Addr{City: "Bayshore"}
	assert.False(t, CanFullUpdate(ci))
	ci.SyncToken = model.Ptr("2")
	assert.True(t, CanFullUpdate(ci))

	assert.False(t, CanFullUpdate(&model.TaxAgency{DisplayName: model.Ptr("CA")}))
}

func TestCanFullUpdate_EstimateNeedsEmail(t *testing.T) {
	est := &model.Estimate{}
	readMeta(&est.ObjectData)
	est.CustomerRef = model.Ref("1")
	est.Line = []model.LineItem{salesLine()}
	require.True(t, HasRead(est))
	require.True(t, CanCreate(est))
	assert.True(t, CanFullUpdate(est))

	est.EmailStatus = model.Ptr(model.EmailStatusNeedToSend)
	assert.False(t, CanFullUpdate(est))

	est.BillEmail = &model.Email{Address: " "}
	assert.False(t, CanFullUpdate(est), "blank address")

	est.BillEmail = &model.Email{Address: "birds@example.com"}
	assert.True(t, CanFullUpdate(est))
}

func TestCanSparseUpdate(t *testing.T) {
	inv := &model.Invoice{}
	readMeta(&inv.ObjectData)
	inv.CustomerRef = model.Ref("1")
	inv.Line = []model.LineItem{salesLine()}
	require.True(t, CanFullUpdate(inv))

	assert.False(t, CanSparseUpdate(inv), "sparse unset")

	inv.Sparse = model.Ptr(false)
	assert.False(t, CanSparseUpdate(inv))

	inv.Sparse = model.Ptr(true)
	assert.True(t, CanSparseUpdate(inv))

	inv.CustomerRef = nil
	assert.False(t, CanSparseUpdate(inv), "full update must hold")

	bill := &model.Bill{VendorRef: model.Ref("3"), Line: []model.LineItem{salesLine()}}
	readMeta(&bill.ObjectData)
	bill.Sparse = model.Ptr(true)
	assert.True(t, CanFullUpdate(bill))
	assert.False(t, CanSparseUpdate(bill), "bills have no sparse update")
}

func TestCanSend(t *testing.T) {
	inv := &model.Invoice{}
	assert.False(t, CanSend(inv))
	inv.BillEmail = &model.Email{Address: "a@example.com"}
	assert.True(t, CanSend(inv))

	assert.True(t, CanSend(&model.Payment{}))
	assert.False(t, CanSend(&model.Bill{}))
}

func TestCanProducePDF(t *testing.T) {
	for _, e := range []model.Entity{&model.Invoice{}, &model.Estimate{}, &model.SalesReceipt{}, &model.CreditMemo{}, &model.Payment{}} {
		assert.True(t, CanProducePDF(e), e.Kind())
	}
	assert.False(t, CanProducePDF(&model.Bill{}))
	assert.False(t, CanProducePDF(&model.Customer{}))
}

func TestPredicatesDoNotMutate(t *testing.T) {
	inv := &model.Invoice{}
	inv.CustomerRef = model.Ref("1")
	inv.Line = []model.LineItem{salesLine()}
	before := *inv

	Evaluate(inv)

	assert.Equal(t, before, *inv)
}

func TestEvaluate(t *testing.T) {
	c := &model.Customer{}
	c.DisplayName = model.Ptr("Acme")
	readMeta(&c.ObjectData)

	got := make(map[Operation]Decision)
	for _, d := range Evaluate(c) {
		got[d.Operation] = d
	}
	require.Len(t, got, len(Operations()))
	assert.Equal(t, Decision{OpCreate, true, true}, got[OpCreate])
	assert.Equal(t, Decision{OpSparseUpdate, true, false}, got[OpSparseUpdate])
	assert.Equal(t, Decision{OpDelete, false, false}, got[OpDelete])
	assert.Equal(t, Decision{OpRead, true, true}, got[OpRead])
}

func TestGuard(t *testing.T) {
	c := &model.Customer{}

	assert.ErrorIs(t, Guard(c, OpVoid), ErrUnsupported)
	assert.ErrorIs(t, Guard(c, OpCreate), ErrPrecondition)
	assert.ErrorIs(t, Guard(nil, OpCreate), ErrPrecondition)

	c.GivenName = model.Ptr("Amy")
	assert.NoError(t, Guard(c, OpCreate))
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports(model.KindInvoice, OpVoid))
	assert.False(t, Supports(model.KindEstimate, OpVoid))
	assert.False(t, Supports(model.KindCompanyInfo, OpCreate))
	assert.True(t, Supports(model.KindCompanyInfo, OpSparseUpdate))
	assert.False(t, Supports(model.Kind("Nope"), OpRead))
}
