package ublcii_test

import (
	"testing"

	ublcii "github.com/sascha10000/en16931-ubl2cii"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(v string) *ublcii.Amount {
	return &ublcii.Amount{Value: v}
}

func testLine(id, price, total string) ublcii.InvoiceLine {
	return ublcii.InvoiceLine{
		ID:                  id,
		InvoicedQuantity:    &ublcii.Quantity{UnitCode: "C62", Value: "2"},
		LineExtensionAmount: amt(total),
		Item: &ublcii.Item{
			Name: "Widget " + id,
			ClassifiedTaxCategory: []ublcii.TaxCategory{
				{
					ID:        &ublcii.IDType{Value: "S"},
					Percent:   strp("19"),
					TaxScheme: &ublcii.TaxScheme{ID: ublcii.IDType{Value: "VAT"}},
				},
			},
		},
		Price: &ublcii.Price{PriceAmount: amt(price)},
	}
}

func TestConvertLines(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		doc := &ublcii.Invoice{
			InvoiceLines: []ublcii.InvoiceLine{testLine("1", "50.00", "100.00")},
		}

		cii := ublcii.ConvertInvoice(doc, new(ublcii.ErrorList))
		require.NotNil(t, cii)

		items := cii.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, "1", item.AssociatedDocumentLineDocument.LineID)
		assert.Empty(t, item.AssociatedDocumentLineDocument.ParentLineID)

		require.NotNil(t, item.SpecifiedTradeProduct.Name)
		assert.Equal(t, "Widget 1", item.SpecifiedTradeProduct.Name.Value)

		price := item.SpecifiedLineTradeAgreement.NetPriceProductTradePrice
		require.NotNil(t, price)
		require.NotNil(t, price.ChargeAmount)
		assert.Equal(t, "50", price.ChargeAmount.Value)

		qty := item.SpecifiedLineTradeDelivery.BilledQuantity
		require.NotNil(t, qty)
		assert.Equal(t, "C62", qty.UnitCode)
		assert.Equal(t, "2", qty.Value)

		taxes := item.SpecifiedLineTradeSettlement.ApplicableTradeTax
		require.Len(t, taxes, 1)
		assert.Equal(t, "VAT", taxes[0].TypeCode)
		assert.Equal(t, "S", taxes[0].CategoryCode)
		assert.Equal(t, "19", taxes[0].RateApplicablePercent)

		total := item.SpecifiedLineTradeSettlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount
		require.NotNil(t, total)
		assert.Equal(t, "100", total.Value)
	})

	t.Run("nested sub-lines flatten in pre-order", func(t *testing.T) {
		parent := testLine("1", "0.00", "0.00")
		parent.SubInvoiceLines = []ublcii.InvoiceLine{
			testLine("1.1", "10.00", "20.00"),
			testLine("1.2", "15.00", "30.00"),
		}
		doc := &ublcii.Invoice{
			InvoiceLines: []ublcii.InvoiceLine{parent, testLine("2", "5.00", "5.00")},
		}

		cii := ublcii.ConvertInvoice(doc, new(ublcii.ErrorList))
		require.NotNil(t, cii)

		items := cii.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem
		require.Len(t, items, 4)

		var ids, parents []string
		for _, item := range items {
			ids = append(ids, item.AssociatedDocumentLineDocument.LineID)
			parents = append(parents, item.AssociatedDocumentLineDocument.ParentLineID)
		}
		assert.Equal(t, []string{"1", "1.1", "1.2", "2"}, ids)
		assert.Equal(t, []string{"", "1", "1", ""}, parents)
	})

	t.Run("deep nesting keeps immediate parent", func(t *testing.T) {
		leaf := testLine("1.1.1", "1.00", "1.00")
		mid := testLine("1.1", "0.00", "0.00")
		mid.SubInvoiceLines = []ublcii.InvoiceLine{leaf}
		top := testLine("1", "0.00", "0.00")
		top.SubInvoiceLines = []ublcii.InvoiceLine{mid}

		doc := &ublcii.Invoice{InvoiceLines: []ublcii.InvoiceLine{top}}

		cii := ublcii.ConvertInvoice(doc, new(ublcii.ErrorList))
		require.NotNil(t, cii)

		items := cii.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem
		require.Len(t, items, 3)
		assert.Empty(t, items[0].AssociatedDocumentLineDocument.ParentLineID)
		assert.Equal(t, "1", items[1].AssociatedDocumentLineDocument.ParentLineID)
		assert.Equal(t, "1.1", items[2].AssociatedDocumentLineDocument.ParentLineID)
	})

	t.Run("parent line is zeroed", func(t *testing.T) {
		parent := testLine("1", "99.00", "99.00")
		parent.AllowanceCharge = []ublcii.AllowanceCharge{
			{
				ChargeIndicator: false,
				Amount:          ublcii.Amount{Value: "5.00"},
			},
		}
		parent.SubInvoiceLines = []ublcii.InvoiceLine{testLine("1.1", "10.00", "20.00")}
		doc := &ublcii.Invoice{InvoiceLines: []ublcii.InvoiceLine{parent}}

		cii := ublcii.ConvertInvoice(doc, new(ublcii.ErrorList))
		require.NotNil(t, cii)

		items := cii.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem
		require.Len(t, items, 2)

		parentItem := items[0]
		total := parentItem.SpecifiedLineTradeSettlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount
		require.NotNil(t, total)
		assert.Equal(t, "0", total.Value)
		assert.Empty(t, parentItem.SpecifiedLineTradeSettlement.SpecifiedTradeAllowanceCharge)

		price := parentItem.SpecifiedLineTradeAgreement.NetPriceProductTradePrice
		require.NotNil(t, price)
		require.NotNil(t, price.ChargeAmount)
		assert.Equal(t, "0", price.ChargeAmount.Value)

		childItem := items[1]
		childTotal := childItem.SpecifiedLineTradeSettlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount
		require.NotNil(t, childTotal)
		assert.Equal(t, "20", childTotal.Value)
	})

	t.Run("line allowances stay on non-parent lines", func(t *testing.T) {
		line := testLine("1", "10.00", "8.00")
		line.AllowanceCharge = []ublcii.AllowanceCharge{
			{
				ChargeIndicator:           false,
				AllowanceChargeReasonCode: strp("95"),
				AllowanceChargeReason:     []string{"Discount"},
				Amount:                    ublcii.Amount{Value: "2.00"},
			},
		}
		doc := &ublcii.Invoice{InvoiceLines: []ublcii.InvoiceLine{line}}

		cii := ublcii.ConvertInvoice(doc, new(ublcii.ErrorList))
		require.NotNil(t, cii)

		items := cii.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem
		require.Len(t, items, 1)

		charges := items[0].SpecifiedLineTradeSettlement.SpecifiedTradeAllowanceCharge
		require.Len(t, charges, 1)
		assert.False(t, charges[0].ChargeIndicator.Indicator)
		assert.Equal(t, "95", charges[0].ReasonCode)
		assert.Equal(t, "Discount", charges[0].Reason)
		require.NotNil(t, charges[0].ActualAmount)
		assert.Equal(t, "2", charges[0].ActualAmount.Value)
	})

	t.Run("product details", func(t *testing.T) {
		line := testLine("1", "10.00", "10.00")
		line.Note = []string{"a note"}
		line.AccountingCost = strp("PROJ-42")
		line.OrderLineReference = &ublcii.OrderLineReference{LineID: "3"}
		line.Item.Description = []string{"First description", "ignored"}
		line.Item.StandardItemIdentification = &ublcii.ItemIdentification{
			ID: &ublcii.IDType{SchemeID: strp("0160"), Value: "1234567890"},
		}
		line.Item.SellersItemIdentification = &ublcii.ItemIdentification{
			ID: &ublcii.IDType{Value: "SKU-1"},
		}
		line.Item.CommodityClassification = []ublcii.CommodityClassification{
			{ItemClassificationCode: &ublcii.IDType{ListID: strp("STI"), Value: "09348023"}},
		}
		line.Item.AdditionalItemProperty = []ublcii.AdditionalItemProperty{
			{Name: "Colour", Value: "Black"},
		}
		doc := &ublcii.Invoice{InvoiceLines: []ublcii.InvoiceLine{line}}

		cii := ublcii.ConvertInvoice(doc, new(ublcii.ErrorList))
		require.NotNil(t, cii)

		item := cii.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem[0]

		require.Len(t, item.AssociatedDocumentLineDocument.IncludedNote, 1)
		require.Len(t, item.AssociatedDocumentLineDocument.IncludedNote[0].Content, 1)
		assert.Equal(t, "a note", item.AssociatedDocumentLineDocument.IncludedNote[0].Content[0].Value)

		product := item.SpecifiedTradeProduct
		require.NotNil(t, product.GlobalID)
		assert.Equal(t, "1234567890", product.GlobalID.Value)
		assert.Equal(t, "SKU-1", product.SellerAssignedID)
		assert.Equal(t, "First description", product.Description)

		require.Len(t, product.ApplicableProductCharacteristic, 1)
		require.Len(t, product.ApplicableProductCharacteristic[0].Description, 1)
		assert.Equal(t, "Colour", product.ApplicableProductCharacteristic[0].Description[0].Value)
		require.Len(t, product.ApplicableProductCharacteristic[0].Value, 1)
		assert.Equal(t, "Black", product.ApplicableProductCharacteristic[0].Value[0].Value)

		require.Len(t, product.DesignatedProductClassification, 1)
		code := product.DesignatedProductClassification[0].ClassCode
		require.NotNil(t, code)
		assert.Equal(t, "09348023", code.Value)
		require.NotNil(t, code.ListID)
		assert.Equal(t, "STI", *code.ListID)

		require.NotNil(t, item.SpecifiedLineTradeAgreement.BuyerOrderReferencedDocument)
		assert.Equal(t, "3", item.SpecifiedLineTradeAgreement.BuyerOrderReferencedDocument.LineID)

		accounts := item.SpecifiedLineTradeSettlement.ReceivableSpecifiedTradeAccountingAccount
		require.Len(t, accounts, 1)
		assert.Equal(t, "PROJ-42", accounts[0].ID)
	})

	t.Run("credited quantity aliases invoiced quantity", func(t *testing.T) {
		line := testLine("1", "50.00", "100.00")
		line.CreditedQuantity = line.InvoicedQuantity
		line.InvoicedQuantity = nil
		doc := &ublcii.Invoice{CreditNoteLines: []ublcii.InvoiceLine{line}}

		cii := ublcii.ConvertInvoice(doc, new(ublcii.ErrorList))
		require.NotNil(t, cii)

		items := cii.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem
		require.Len(t, items, 1)
		qty := items[0].SpecifiedLineTradeDelivery.BilledQuantity
		require.NotNil(t, qty)
		assert.Equal(t, "2", qty.Value)
	})
}
