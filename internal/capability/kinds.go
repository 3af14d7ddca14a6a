package capability

import (
	"github.com/cleared-dev/qbtypes/internal/model"
)

// readAnd is the usual full update rule: the record was read and still
// satisfies rule.
func readAnd(rule Predicate) Predicate {
	return func(e model.Entity) bool {
		return HasRead(e) && rule(e)
	}
}

// salesDocument is implemented by every kind embedding model.SalesTransaction.
type salesDocument interface {
	model.Entity
	Sales() *model.SalesTransaction
}

func salesCreate(e model.Entity) bool {
	doc, ok := e.(salesDocument)
	if !ok {
		return false
	}
	s := doc.Sales()
	return s.CustomerRef.IsSet() && model.LinesCreatable(s.Line)
}

// emailReady requires a billing address on documents flagged to be emailed.
func emailReady(e model.Entity) bool {
	doc, ok := e.(salesDocument)
	if !ok {
		return false
	}
	s := doc.Sales()
	return !s.NeedsEmail() || s.BillEmail.IsSet()
}

func salesUpdate(e model.Entity) bool {
	return HasRead(e) && salesCreate(e) && emailReady(e)
}

func salesSend(e model.Entity) bool {
	doc, ok := e.(salesDocument)
	return ok && doc.Sales().BillEmail.IsSet()
}

func salesDocNumber(e model.Entity) *string {
	doc, ok := e.(salesDocument)
	if !ok {
		return nil
	}
	return doc.Sales().DocNumber
}

func salesLink(field string, target model.Kind, get func(*model.SalesTransaction) *model.Reference) Link {
	return Link{
		Field:  field,
		Target: target,
		Get: func(e model.Entity) *model.Reference {
			doc, ok := e.(salesDocument)
			if !ok {
				return nil
			}
			return get(doc.Sales())
		},
	}
}

func salesLinks(extra ...Link) []Link {
	links := []Link{
		salesLink("CustomerRef", model.KindCustomer, func(s *model.SalesTransaction) *model.Reference { return s.CustomerRef }),
		salesLink("CurrencyRef", model.KindCompanyCurrency, func(s *model.SalesTransaction) *model.Reference { return s.CurrencyRef }),
		salesLink("ClassRef", model.KindClass, func(s *model.SalesTransaction) *model.Reference { return s.ClassRef }),
		salesLink("DepartmentRef", model.KindDepartment, func(s *model.SalesTransaction) *model.Reference { return s.DepartmentRef }),
		salesLink("SalesTermRef", model.KindTerm, func(s *model.SalesTransaction) *model.Reference { return s.SalesTermRef }),
	}
	return append(links, extra...)
}

func hasPersonName(e model.Entity) bool {
	p, ok := e.(interface{ Names() *model.PersonName })
	return ok && p.Names().HasName()
}

func displayName(e model.Entity) *string {
	p, ok := e.(interface{ Names() *model.PersonName })
	if !ok {
		return nil
	}
	return p.Names().DisplayName
}

func itemCreate(i *model.Item) bool {
	if !model.HasText(i.Name) {
		return false
	}
	if i.Type == nil {
		return i.ExpenseAccountRef.IsSet() && i.AssetAccountRef.IsSet()
	}
	switch *i.Type {
	case model.ItemInventory:
		return i.ExpenseAccountRef.IsSet() &&
			i.IncomeAccountRef.IsSet() &&
			i.AssetAccountRef.IsSet() &&
			i.InvStartDate != nil &&
			i.QtyOnHand != nil
	case model.ItemService:
		return i.ExpenseAccountRef.IsSet() && i.IncomeAccountRef.IsSet()
	case model.ItemNonInventory:
		return i.ExpenseAccountRef.IsSet()
	case model.ItemCategory, model.ItemGroup:
		return true
	default:
		return false
	}
}

func builtin() []Descriptor {
	accountCreate := typed(func(a *model.Account) bool {
		return model.HasText(a.Name) && (a.AccountType != nil || a.AccountSubType != nil)
	})
	attachableCreate := typed(func(a *model.Attachable) bool {
		return model.HasText(a.Note) || model.HasText(a.FileName)
	})
	billCreate := typed(func(b *model.Bill) bool {
		return b.VendorRef.IsSet() && model.LinesCreatable(b.Line)
	})
	billPaymentCreate := typed(func(b *model.BillPayment) bool {
		return b.VendorRef.IsSet() && b.TotalAmt != nil && len(b.Line) > 0 && b.HasPaymentDetail()
	})
	classCreate := typed(func(c *model.Class) bool {
		return model.HasText(c.Name) && (c.SubClass == nil || !*c.SubClass || c.ParentRef.IsSet())
	})
	currencyCreate := typed(func(c *model.CompanyCurrency) bool {
		return model.HasText(c.Code)
	})
	departmentCreate := typed(func(d *model.Department) bool {
		return model.HasText(d.Name) && (d.SubDepartment == nil || !*d.SubDepartment || d.ParentRef.IsSet())
	})
	paymentCreate := typed(func(p *model.Payment) bool {
		return p.TotalAmt != nil && p.CustomerRef.IsSet()
	})
	paymentMethodCreate := typed(func(p *model.PaymentMethod) bool {
		return model.HasText(p.Name)
	})
	termCreate := typed(func(t *model.Term) bool {
		return model.HasText(t.Name) && (t.DueDays != nil || t.DayOfMonthDue != nil)
	})

	return []Descriptor{
		{
			Kind:      model.KindAccount,
			NameField: "FullyQualifiedName",
			Name:      name(func(a *model.Account) *string { return a.FullyQualifiedName }),
			Links: []Link{
				link("ParentRef", model.KindAccount, func(a *model.Account) *model.Reference { return a.ParentRef }),
				link("CurrencyRef", model.KindCompanyCurrency, func(a *model.Account) *model.Reference { return a.CurrencyRef }),
			},
			Create:     accountCreate,
			FullUpdate: readAnd(typed(func(a *model.Account) bool { return model.HasText(a.Name) })),
		},
		{
			Kind:       model.KindAttachable,
			NameField:  "FileName",
			Name:       name(func(a *model.Attachable) *string { return a.FileName }),
			Create:     attachableCreate,
			FullUpdate: readAnd(attachableCreate),
			Delete:     true,
		},
		{
			Kind:      model.KindBill,
			NameField: "DocNumber",
			Name:      name(func(b *model.Bill) *string { return b.DocNumber }),
			Links: []Link{
				link("VendorRef", model.KindVendor, func(b *model.Bill) *model.Reference { return b.VendorRef }),
				link("APAccountRef", model.KindAccount, func(b *model.Bill) *model.Reference { return b.APAccountRef }),
				link("CurrencyRef", model.KindCompanyCurrency, func(b *model.Bill) *model.Reference { return b.CurrencyRef }),
				link("SalesTermRef", model.KindTerm, func(b *model.Bill) *model.Reference { return b.SalesTermRef }),
				link("DepartmentRef", model.KindDepartment, func(b *model.Bill) *model.Reference { return b.DepartmentRef }),
			},
			Create:     billCreate,
			FullUpdate: readAnd(billCreate),
			Delete:     true,
		},
		{
			Kind: model.KindBillPayment,
			Links: []Link{
				link("VendorRef", model.KindVendor, func(b *model.BillPayment) *model.Reference { return b.VendorRef }),
				link("CurrencyRef", model.KindCompanyCurrency, func(b *model.BillPayment) *model.Reference { return b.CurrencyRef }),
				link("DepartmentRef", model.KindDepartment, func(b *model.BillPayment) *model.Reference { return b.DepartmentRef }),
			},
			Create:     billPaymentCreate,
			FullUpdate: readAnd(billPaymentCreate),
			Delete:     true,
			Void:       true,
		},
		{
			Kind:      model.KindClass,
			NameField: "FullyQualifiedName",
			Name:      name(func(c *model.Class) *string { return c.FullyQualifiedName }),
			Links: []Link{
				link("ParentRef", model.KindClass, func(c *model.Class) *model.Reference { return c.ParentRef }),
			},
			Create:     classCreate,
			FullUpdate: readAnd(classCreate),
		},
		{
			Kind:       model.KindCompanyCurrency,
			NameField:  "Name",
			Name:       name(func(c *model.CompanyCurrency) *string { return c.Name }),
			Create:     currencyCreate,
			FullUpdate: readAnd(currencyCreate),
		},
		{
			Kind:      model.KindCompanyInfo,
			NameField: "CompanyName",
			Name:      name(func(c *model.CompanyInfo) *string { return c.CompanyName }),
			FullUpdate: typed(func(c *model.CompanyInfo) bool {
				return model.HasText(c.SyncToken) && model.HasText(c.CompanyName) && c.CompanyAddr != nil
			}),
			SparseUpdate: true,
		},
		{
			Kind:      model.KindCreditMemo,
			NameField: "DocNumber",
			Name:      salesDocNumber,
			Links: salesLinks(
				link("PaymentMethodRef", model.KindPaymentMethod, func(c *model.CreditMemo) *model.Reference { return c.PaymentMethodRef }),
			),
			Create:     salesCreate,
			FullUpdate: salesUpdate,
			Delete:     true,
			Send:       salesSend,
			PDF:        true,
		},
		{
			Kind:      model.KindCustomer,
			NameField: "DisplayName",
			Name:      displayName,
			Links: []Link{
				link("ParentRef", model.KindCustomer, func(c *model.Customer) *model.Reference { return c.ParentRef }),
				link("SalesTermRef", model.KindTerm, func(c *model.Customer) *model.Reference { return c.SalesTermRef }),
				link("PaymentMethodRef", model.KindPaymentMethod, func(c *model.Customer) *model.Reference { return c.PaymentMethodRef }),
				link("CurrencyRef", model.KindCompanyCurrency, func(c *model.Customer) *model.Reference { return c.CurrencyRef }),
				link("ARAccountRef", model.KindAccount, func(c *model.Customer) *model.Reference { return c.ARAccountRef }),
			},
			Create:       hasPersonName,
			FullUpdate:   readAnd(hasPersonName),
			SparseUpdate: true,
		},
		{
			Kind:      model.KindDepartment,
			NameField: "FullyQualifiedName",
			Name:      name(func(d *model.Department) *string { return d.FullyQualifiedName }),
			Links: []Link{
				link("ParentRef", model.KindDepartment, func(d *model.Department) *model.Reference { return d.ParentRef }),
			},
			Create:     departmentCreate,
			FullUpdate: readAnd(departmentCreate),
		},
		{
			Kind:       model.KindEmployee,
			NameField:  "DisplayName",
			Name:       displayName,
			Create:     hasPersonName,
			FullUpdate: readAnd(hasPersonName),
		},
		{
			Kind:      model.KindEstimate,
			NameField: "DocNumber",
			Name:      salesDocNumber,
			Links:     salesLinks(),

			Create:       salesCreate,
			FullUpdate:   salesUpdate,
			SparseUpdate: true,
			Delete:       true,
			Send:         salesSend,
			PDF:          true,
		},
		{
			Kind:      model.KindInvoice,
			NameField: "DocNumber",
			Name:      salesDocNumber,
			Links: salesLinks(
				link("DepositToAccountRef", model.KindAccount, func(i *model.Invoice) *model.Reference { return i.DepositToAccountRef }),
			),
			Create:       salesCreate,
			FullUpdate:   salesUpdate,
			SparseUpdate: true,
			Delete:       true,
			Void:         true,
			Send:         salesSend,
			PDF:          true,
		},
		{
			Kind:      model.KindItem,
			NameField: "Name",
			Name:      name(func(i *model.Item) *string { return i.Name }),
			Links: []Link{
				link("IncomeAccountRef", model.KindAccount, func(i *model.Item) *model.Reference { return i.IncomeAccountRef }),
				link("ExpenseAccountRef", model.KindAccount, func(i *model.Item) *model.Reference { return i.ExpenseAccountRef }),
				link("AssetAccountRef", model.KindAccount, func(i *model.Item) *model.Reference { return i.AssetAccountRef }),
				link("ParentRef", model.KindItem, func(i *model.Item) *model.Reference { return i.ParentRef }),
				link("PrefVendorRef", model.KindVendor, func(i *model.Item) *model.Reference { return i.PrefVendorRef }),
				link("ClassRef", model.KindClass, func(i *model.Item) *model.Reference { return i.ClassRef }),
			},
			Create:     typed(itemCreate),
			FullUpdate: readAnd(typed(func(i *model.Item) bool { return model.HasText(i.Name) })),
		},
		{
			Kind: model.KindPayment,
			Links: []Link{
				link("CustomerRef", model.KindCustomer, func(p *model.Payment) *model.Reference { return p.CustomerRef }),
				link("CurrencyRef", model.KindCompanyCurrency, func(p *model.Payment) *model.Reference { return p.CurrencyRef }),
				link("DepositToAccountRef", model.KindAccount, func(p *model.Payment) *model.Reference { return p.DepositToAccountRef }),
				link("PaymentMethodRef", model.KindPaymentMethod, func(p *model.Payment) *model.Reference { return p.PaymentMethodRef }),
				link("ARAccountRef", model.KindAccount, func(p *model.Payment) *model.Reference { return p.ARAccountRef }),
			},
			Create:     paymentCreate,
			FullUpdate: readAnd(paymentCreate),
			Delete:     true,
			Void:       true,
			Send:       always,
			PDF:        true,
		},
		{
			Kind:       model.KindPaymentMethod,
			NameField:  "Name",
			Name:       name(func(p *model.PaymentMethod) *string { return p.Name }),
			Create:     paymentMethodCreate,
			FullUpdate: readAnd(paymentMethodCreate),
		},
		{
			Kind:      model.KindSalesReceipt,
			NameField: "DocNumber",
			Name:      salesDocNumber,
			Links: salesLinks(
				link("PaymentMethodRef", model.KindPaymentMethod, func(s *model.SalesReceipt) *model.Reference { return s.PaymentMethodRef }),
				link("DepositToAccountRef", model.KindAccount, func(s *model.SalesReceipt) *model.Reference { return s.DepositToAccountRef }),
			),
			Create:       salesCreate,
			FullUpdate:   salesUpdate,
			SparseUpdate: true,
			Delete:       true,
			Void:         true,
			Send:         salesSend,
			PDF:          true,
		},
		{
			Kind:      model.KindTaxAgency,
			NameField: "DisplayName",
			Name:      name(func(t *model.TaxAgency) *string { return t.DisplayName }),
			Create:    typed(func(t *model.TaxAgency) bool { return model.HasText(t.DisplayName) }),
		},
		{
			Kind:       model.KindTerm,
			NameField:  "Name",
			Name:       name(func(t *model.Term) *string { return t.Name }),
			Create:     termCreate,
			FullUpdate: readAnd(termCreate),
		},
		{
			Kind:      model.KindVendor,
			NameField: "DisplayName",
			Name:      displayName,
			Links: []Link{
				link("APAccountRef", model.KindAccount, func(v *model.Vendor) *model.Reference { return v.APAccountRef }),
				link("TermRef", model.KindTerm, func(v *model.Vendor) *model.Reference { return v.TermRef }),
				link("CurrencyRef", model.KindCompanyCurrency, func(v *model.Vendor) *model.Reference { return v.CurrencyRef }),
			},
			Create:     hasPersonName,
			FullUpdate: readAnd(hasPersonName),
		},
	}
}
