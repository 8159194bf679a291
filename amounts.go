package ublcii

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// normalizeAmountValue strips trailing zeros from a decimal value so that
// "25.00" and "25.0" both render as "25". Values that do not parse as a
// decimal are passed through unchanged.
func normalizeAmountValue(value string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return d.String()
}

// convertAmount maps a UBL amount to a CII amount without a currency
// qualifier.
func convertAmount(a *Amount) *CIIAmount {
	if a == nil {
		return nil
	}
	return &CIIAmount{
		Value: normalizeAmountValue(a.Value),
	}
}

// convertAmountWithCurrency maps a UBL amount to a CII amount carrying the
// source amount's currency. Used for the document tax total, the only
// amount CII requires a currency on.
func convertAmountWithCurrency(a *Amount) *CIIAmount {
	if a == nil {
		return nil
	}
	out := convertAmount(a)
	if a.CurrencyID != nil {
		currency := *a.CurrencyID
		out.CurrencyID = &currency
	}
	return out
}

// newCIIAmount builds a CII amount from an exact decimal value.
func newCIIAmount(d decimal.Decimal) *CIIAmount {
	return &CIIAmount{Value: d.String()}
}

// amountDecimal parses a CII amount value for aggregation. Amounts that do
// not parse contribute zero.
func amountDecimal(a *CIIAmount) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(a.Value))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ciiDateValue reformats a UBL date (CCYY-MM-DD, possibly with a trailing
// timezone suffix) to the CCYYMMDD form CII expects. Empty or unparseable
// dates yield an empty string.
func ciiDateValue(date string) string {
	if len(date) > 10 {
		date = date[:10]
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Format("20060102")
}

// convertDate maps a UBL date to a CII date time with format 102.
func convertDate(date string) *DateTime {
	v := ciiDateValue(date)
	if v == "" {
		return nil
	}
	return &DateTime{
		DateTimeString: DateTimeString{
			Format: ciiDateFormat,
			Value:  v,
		},
	}
}

// convertFormattedDate maps a UBL date to the qualified date variant used on
// referenced documents.
func convertFormattedDate(date string) *FormattedDateTime {
	v := ciiDateValue(date)
	if v == "" {
		return nil
	}
	return &FormattedDateTime{
		DateTimeString: DateTimeString{
			Format: ciiDateFormat,
			Value:  v,
		},
	}
}

// convertID maps a UBL identifier, keeping its scheme when present.
func convertID(id *IDType) *CIIID {
	if id == nil || id.Value == "" {
		return nil
	}
	out := &CIIID{Value: id.Value}
	if id.SchemeID != nil {
		scheme := *id.SchemeID
		out.SchemeID = &scheme
	}
	return out
}

// convertText maps a UBL text, keeping its language qualifiers.
func convertText(t *Text) *CIIText {
	if t == nil {
		return nil
	}
	return &CIIText{
		LanguageID:       t.LanguageID,
		LanguageLocaleID: t.LanguageLocaleID,
		Value:            t.Value,
	}
}

// newNote wraps a plain string as a CII note.
func newNote(content string) CIINote {
	return CIINote{
		Content: []CIIText{{Value: content}},
	}
}

// orEmpty unwraps an optional string.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// asVAIfNecessary normalizes the UBL VAT tax scheme to the VA code CII
// uses for party tax registrations.
func asVAIfNecessary(schemeID string) string {
	if schemeID == "VAT" {
		return "VA"
	}
	return schemeID
}
