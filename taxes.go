package ublcii

import "github.com/shopspring/decimal"

// taxCategorySummary is one aggregation bucket of the document's tax
// subtotals. Buckets are keyed by scheme, percent and category code, so two
// subtotals with the same VAT rate but different categories stay apart.
type taxCategorySummary struct {
	Scheme       string
	Percent      string
	CategoryCode string
	Amount       decimal.Decimal
}

func buildTaxCategoryKey(scheme, percent, categoryCode string) string {
	return scheme + percent + categoryCode
}

// aggregateTaxCategories walks all tax totals of the document and sums the
// subtotal tax amounts per category bucket. The second return value is the
// document-wide tax total across all TaxTotal elements.
func aggregateTaxCategories(doc *Invoice) (map[string]*taxCategorySummary, decimal.Decimal) {
	buckets := make(map[string]*taxCategorySummary)
	total := decimal.Zero

	for _, tt := range doc.TaxTotal {
		total = total.Add(amountDecimal(convertAmount(&tt.TaxAmount)))

		for i := range tt.TaxSubtotal {
			sub := &tt.TaxSubtotal[i]
			var scheme, categoryCode string
			if sub.TaxCategory.TaxScheme != nil {
				scheme = sub.TaxCategory.TaxScheme.ID.Value
			}
			if sub.TaxCategory.ID != nil {
				categoryCode = sub.TaxCategory.ID.Value
			}
			percent := orEmpty(sub.TaxCategory.Percent)

			key := buildTaxCategoryKey(scheme, percent, categoryCode)
			amount := amountDecimal(convertAmount(&sub.TaxAmount))
			if bucket, ok := buckets[key]; ok {
				bucket.Amount = bucket.Amount.Add(amount)
			} else {
				buckets[key] = &taxCategorySummary{
					Scheme:       scheme,
					Percent:      percent,
					CategoryCode: categoryCode,
					Amount:       amount,
				}
			}
		}
	}

	return buckets, total
}

// dominantTaxCategory returns the bucket with the largest aggregated tax
// amount, or nil when the document has no tax subtotals. Ties resolve to the
// smaller category key so the result is stable.
func dominantTaxCategory(buckets map[string]*taxCategorySummary) *taxCategorySummary {
	var (
		best    *taxCategorySummary
		bestKey string
	)
	for key, bucket := range buckets {
		if best == nil {
			best, bestKey = bucket, key
			continue
		}
		switch cmp := bucket.Amount.Cmp(best.Amount); {
		case cmp > 0:
			best, bestKey = bucket, key
		case cmp == 0 && key < bestKey:
			best, bestKey = bucket, key
		}
	}
	return best
}

// collectParentLines returns, in document order, every line of the tree
// rooted at line that carries sub-lines. Nested parents are included.
func collectParentLines(line *InvoiceLine) []*InvoiceLine {
	if !line.hasSubLines() {
		return nil
	}
	ret := []*InvoiceLine{line}
	subs := line.subLines()
	for i := range subs {
		ret = append(ret, collectParentLines(&subs[i])...)
	}
	return ret
}

// redistributeParentAllowances moves the allowances and charges of grouping
// lines onto the document settlement. Charges reduce the line total and
// raise the charge total, allowances raise both the line total and the
// allowance total. Afterwards the line, charge and allowance totals are
// replaced by single summed amounts. Nothing happens on documents without
// grouping lines.
func redistributeParentAllowances(settlement *HeaderTradeSettlement, doc *Invoice) {
	var parents []*InvoiceLine
	lines := doc.lines()
	for i := range lines {
		parents = append(parents, collectParentLines(&lines[i])...)
	}
	if len(parents) == 0 {
		return
	}

	sums := &settlement.SpecifiedTradeSettlementHeaderMonetarySummation
	lineTotal := amountDecimal(sums.LineTotalAmount)
	chargeTotal := amountDecimal(sums.ChargeTotalAmount)
	allowanceTotal := amountDecimal(sums.AllowanceTotalAmount)

	buckets, _ := aggregateTaxCategories(doc)
	dominant := dominantTaxCategory(buckets)

	for _, parent := range parents {
		for i := range parent.AllowanceCharge {
			ac := parent.AllowanceCharge[i]

			// A percentage on the line related to the line's own base.
			// Neither survives the move to the document level.
			if ac.MultiplierFactorNumeric != nil && ac.BaseAmount != nil {
				ac.MultiplierFactorNumeric = nil
				ac.BaseAmount = nil
			}

			amount := amountDecimal(convertAmount(&ac.Amount))
			if ac.ChargeIndicator {
				lineTotal = lineTotal.Sub(amount)
				chargeTotal = chargeTotal.Add(amount)
			} else {
				lineTotal = lineTotal.Add(amount)
				allowanceTotal = allowanceTotal.Add(amount)
			}

			tac := convertAllowanceCharge(&ac)
			if dominant != nil {
				tac.CategoryTradeTax = &TradeTax{
					TypeCode:              dominant.Scheme,
					CategoryCode:          dominant.CategoryCode,
					RateApplicablePercent: dominant.Percent,
				}
			}
			settlement.SpecifiedTradeAllowanceCharge = append(settlement.SpecifiedTradeAllowanceCharge, tac)
		}
	}

	sums.LineTotalAmount = newCIIAmount(lineTotal)
	sums.ChargeTotalAmount = newCIIAmount(chargeTotal)
	sums.AllowanceTotalAmount = newCIIAmount(allowanceTotal)
}
