package ublcii

// createHeaderTradeSettlement builds the document settlement section: the
// payment side, the tax breakdown, document allowances and charges, the
// billing period and the monetary summation.
func createHeaderTradeSettlement(doc *Invoice) HeaderTradeSettlement {
	ret := HeaderTradeSettlement{}

	var paymentMeans *PaymentMeans
	if len(doc.PaymentMeans) > 0 {
		paymentMeans = &doc.PaymentMeans[0]
	}

	if paymentMeans != nil && len(paymentMeans.PaymentID) > 0 {
		ret.PaymentReference = &CIIText{Value: paymentMeans.PaymentID[0]}
	}

	ret.InvoiceCurrencyCode = doc.DocumentCurrencyCode
	ret.PayeeTradeParty = convertParty(doc.PayeeParty)

	if paymentMeans != nil {
		means := TradeSettlementPaymentMeans{
			TypeCode:                           paymentMeans.PaymentMeansCode.Value,
			PayeePartyCreditorFinancialAccount: &CreditorFinancialAccount{},
		}
		if paymentMeans.PayeeFinancialAccount != nil {
			means.PayeePartyCreditorFinancialAccount.IBANID = orEmpty(paymentMeans.PayeeFinancialAccount.ID)
		}
		ret.SpecifiedTradeSettlementPaymentMeans = append(ret.SpecifiedTradeSettlementPaymentMeans, means)
	}

	for _, tt := range doc.TaxTotal {
		for i := range tt.TaxSubtotal {
			ret.ApplicableTradeTax = append(ret.ApplicableTradeTax, convertTradeTax(&tt.TaxSubtotal[i]))
		}
	}

	if len(doc.InvoicePeriod) > 0 {
		period := doc.InvoicePeriod[0]
		ret.BillingSpecifiedPeriod = &SpecifiedPeriod{
			StartDateTime: convertDate(period.StartDate),
			EndDateTime:   convertDate(period.EndDate),
		}
	}

	for i := range doc.AllowanceCharge {
		ret.SpecifiedTradeAllowanceCharge = append(ret.SpecifiedTradeAllowanceCharge, convertAllowanceCharge(&doc.AllowanceCharge[i]))
	}

	for i := range doc.PaymentTerms {
		ret.SpecifiedTradePaymentTerms = append(ret.SpecifiedTradePaymentTerms, convertPaymentTerms(&doc.PaymentTerms[i], paymentMeans))
	}

	var taxTotal *TaxTotal
	if len(doc.TaxTotal) > 0 {
		taxTotal = &doc.TaxTotal[0]
	}
	ret.SpecifiedTradeSettlementHeaderMonetarySummation = createHeaderMonetarySummation(&doc.LegalMonetaryTotal, taxTotal)

	redistributeParentAllowances(&ret, doc)

	if doc.AccountingCost != "" {
		ret.ReceivableSpecifiedTradeAccountingAccount = append(ret.ReceivableSpecifiedTradeAccountingAccount, TradeAccountingAccount{
			ID: doc.AccountingCost,
		})
	}

	return ret
}

// convertPaymentTerms maps UBL payment terms, pulling the due date from the
// document's first payment means.
func convertPaymentTerms(terms *PaymentTerms, paymentMeans *PaymentMeans) TradePaymentTerms {
	ret := TradePaymentTerms{}
	for _, note := range terms.Note {
		ret.Description = append(ret.Description, CIIText{Value: note})
	}
	if paymentMeans != nil && paymentMeans.PaymentDueDate != "" {
		ret.DueDateDateTime = convertDate(paymentMeans.PaymentDueDate)
	}
	return ret
}

// createHeaderMonetarySummation maps the UBL monetary total. The tax total
// amount is the only amount that carries its currency.
func createHeaderMonetarySummation(total *MonetaryTotal, taxTotal *TaxTotal) HeaderMonetarySummation {
	ret := HeaderMonetarySummation{
		LineTotalAmount:      convertAmount(total.LineExtensionAmount),
		ChargeTotalAmount:    convertAmount(total.ChargeTotalAmount),
		AllowanceTotalAmount: convertAmount(total.AllowanceTotalAmount),
		TaxBasisTotalAmount:  convertAmount(total.TaxExclusiveAmount),
		RoundingAmount:       convertAmount(total.PayableRoundingAmount),
		GrandTotalAmount:     convertAmount(total.TaxInclusiveAmount),
		TotalPrepaidAmount:   convertAmount(total.PrepaidAmount),
		DuePayableAmount:     convertAmount(total.PayableAmount),
	}
	if taxTotal != nil {
		ret.TaxTotalAmount = convertAmountWithCurrency(&taxTotal.TaxAmount)
	}
	return ret
}
