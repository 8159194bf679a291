package ublcii

// convertLine maps one UBL line and all of its nested sub-lines to a flat
// list of trade line items, in pre-order. parentID is empty on top-level
// lines and carries the immediate parent's line ID on nested ones.
//
// A line that has sub-lines acts as a grouping line: its own trade line item
// gets a zero price, a zero line total and no allowances or charges. The
// allowances and charges it carried are settled on the document level
// instead, see redistributeParentAllowances.
func convertLine(line *InvoiceLine, parentID string) []SupplyChainTradeLineItem {
	item := SupplyChainTradeLineItem{
		AssociatedDocumentLineDocument: DocumentLineDocument{
			LineID:       line.ID,
			ParentLineID: parentID,
		},
	}
	for _, note := range line.Note {
		item.AssociatedDocumentLineDocument.IncludedNote = append(item.AssociatedDocumentLineDocument.IncludedNote, newNote(note))
	}

	isParent := line.hasSubLines()

	if line.Item != nil {
		item.SpecifiedTradeProduct = convertProduct(line.Item)
	}

	agreement := LineTradeAgreement{
		BuyerOrderReferencedDocument: &ReferencedDocument{},
		NetPriceProductTradePrice:    &TradePrice{},
	}
	if line.OrderLineReference != nil {
		agreement.BuyerOrderReferencedDocument.LineID = line.OrderLineReference.LineID
	}
	if isParent {
		agreement.NetPriceProductTradePrice.ChargeAmount = &CIIAmount{Value: "0"}
	} else if line.Price != nil && line.Price.PriceAmount != nil {
		agreement.NetPriceProductTradePrice.ChargeAmount = convertAmount(line.Price.PriceAmount)
	}
	item.SpecifiedLineTradeAgreement = agreement

	if qty := line.quantity(); qty != nil {
		item.SpecifiedLineTradeDelivery.BilledQuantity = &CIIQuantity{
			UnitCode: qty.UnitCode,
			Value:    qty.Value,
		}
	}

	settlement := LineTradeSettlement{}
	if line.Item != nil {
		for _, category := range line.Item.ClassifiedTaxCategory {
			tax := TradeTax{
				RateApplicablePercent: orEmpty(category.Percent),
			}
			if category.TaxScheme != nil {
				tax.TypeCode = category.TaxScheme.ID.Value
			}
			if category.ID != nil {
				tax.CategoryCode = category.ID.Value
			}
			settlement.ApplicableTradeTax = append(settlement.ApplicableTradeTax, tax)
		}
	}

	if isParent {
		settlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount = &CIIAmount{Value: "0"}
	} else {
		for i := range line.AllowanceCharge {
			settlement.SpecifiedTradeAllowanceCharge = append(settlement.SpecifiedTradeAllowanceCharge, convertAllowanceCharge(&line.AllowanceCharge[i]))
		}
		settlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount = convertAmount(line.LineExtensionAmount)
	}

	if line.AccountingCost != nil {
		settlement.ReceivableSpecifiedTradeAccountingAccount = append(settlement.ReceivableSpecifiedTradeAccountingAccount, TradeAccountingAccount{
			ID: *line.AccountingCost,
		})
	}
	item.SpecifiedLineTradeSettlement = settlement

	ret := []SupplyChainTradeLineItem{item}
	subs := line.subLines()
	for i := range subs {
		ret = append(ret, convertLine(&subs[i], line.ID)...)
	}
	return ret
}

// convertProduct maps a UBL item to a CII trade product.
func convertProduct(item *Item) TradeProduct {
	tp := TradeProduct{
		Name: &CIIText{Value: item.Name},
	}
	if item.StandardItemIdentification != nil {
		tp.GlobalID = convertID(item.StandardItemIdentification.ID)
	}
	if item.SellersItemIdentification != nil && item.SellersItemIdentification.ID != nil {
		tp.SellerAssignedID = item.SellersItemIdentification.ID.Value
	}
	if len(item.Description) > 0 {
		tp.Description = item.Description[0]
	}

	for _, prop := range item.AdditionalItemProperty {
		tp.ApplicableProductCharacteristic = append(tp.ApplicableProductCharacteristic, ProductCharacteristic{
			Description: []CIIText{{Value: prop.Name}},
			Value:       []CIIText{{Value: prop.Value}},
		})
	}

	for _, cc := range item.CommodityClassification {
		if cc.ItemClassificationCode == nil {
			continue
		}
		code := &CIICode{Value: cc.ItemClassificationCode.Value}
		if cc.ItemClassificationCode.ListID != nil {
			listID := *cc.ItemClassificationCode.ListID
			code.ListID = &listID
		}
		tp.DesignatedProductClassification = append(tp.DesignatedProductClassification, ProductClassification{
			ClassCode: code,
		})
	}

	return tp
}
