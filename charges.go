package ublcii

// convertTradeTax maps a UBL tax subtotal to an applicable trade tax.
func convertTradeTax(sub *TaxSubtotal) TradeTax {
	tt := TradeTax{
		CalculatedAmount: convertAmount(&sub.TaxAmount),
		BasisAmount:      convertAmount(sub.TaxableAmount),
	}

	category := sub.TaxCategory
	if category.TaxScheme != nil {
		tt.TypeCode = category.TaxScheme.ID.Value
	}
	if category.ID != nil {
		tt.CategoryCode = category.ID.Value
	}
	tt.RateApplicablePercent = orEmpty(category.Percent)
	if len(category.TaxExemptionReason) > 0 {
		tt.ExemptionReason = category.TaxExemptionReason[0]
	}
	tt.ExemptionReasonCode = orEmpty(category.TaxExemptionReasonCode)
	return tt
}

// convertAllowanceCharge maps a UBL allowance or charge. Only the first
// reason and the first tax category survive the mapping.
func convertAllowanceCharge(ac *AllowanceCharge) TradeAllowanceCharge {
	tac := TradeAllowanceCharge{
		ChargeIndicator:    Indicator{Indicator: ac.ChargeIndicator},
		ActualAmount:       convertAmount(&ac.Amount),
		ReasonCode:         orEmpty(ac.AllowanceChargeReasonCode),
		CalculationPercent: orEmpty(ac.MultiplierFactorNumeric),
		BasisAmount:        convertAmount(ac.BaseAmount),
	}
	if len(ac.AllowanceChargeReason) > 0 {
		tac.Reason = ac.AllowanceChargeReason[0]
	}

	if len(ac.TaxCategory) > 0 {
		category := ac.TaxCategory[0]
		tax := TradeTax{
			RateApplicablePercent: orEmpty(category.Percent),
		}
		if category.TaxScheme != nil {
			tax.TypeCode = category.TaxScheme.ID.Value
		}
		if category.ID != nil {
			tax.CategoryCode = category.ID.Value
		}
		tac.CategoryTradeTax = &tax
	}

	return tac
}
