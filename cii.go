package ublcii

import "encoding/xml"

// CII D16B namespaces
const (
	NamespaceRSM = "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
	NamespaceRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	NamespaceUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"
	NamespaceQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"
)

// ciiDateFormat is the CII qualifier for CCYYMMDD date strings.
const ciiDateFormat = "102"

// CrossIndustryInvoice is the root element of a CII D16B document.
type CrossIndustryInvoice struct {
	XMLName      xml.Name
	RSMNamespace string `xml:"xmlns:rsm,attr"`
	RAMNamespace string `xml:"xmlns:ram,attr"`
	UDTNamespace string `xml:"xmlns:udt,attr"`
	QDTNamespace string `xml:"xmlns:qdt,attr"`

	ExchangedDocumentContext    ExchangedDocumentContext    `xml:"rsm:ExchangedDocumentContext"`
	ExchangedDocument           ExchangedDocument           `xml:"rsm:ExchangedDocument"`
	SupplyChainTradeTransaction SupplyChainTradeTransaction `xml:"rsm:SupplyChainTradeTransaction"`
}

// ExchangedDocumentContext carries the customization and business process
// context parameters of the exchange.
type ExchangedDocumentContext struct {
	BusinessProcessSpecifiedDocumentContextParameter []DocumentContextParameter `xml:"ram:BusinessProcessSpecifiedDocumentContextParameter,omitempty"`
	GuidelineSpecifiedDocumentContextParameter       []DocumentContextParameter `xml:"ram:GuidelineSpecifiedDocumentContextParameter,omitempty"`
}

// DocumentContextParameter identifies a document context.
type DocumentContextParameter struct {
	ID string `xml:"ram:ID"`
}

// ExchangedDocument is the document header of the CII invoice.
type ExchangedDocument struct {
	ID            string    `xml:"ram:ID,omitempty"`
	TypeCode      string    `xml:"ram:TypeCode,omitempty"`
	IssueDateTime *DateTime `xml:"ram:IssueDateTime,omitempty"`
	IncludedNote  []CIINote `xml:"ram:IncludedNote,omitempty"`
}

// DateTime is a date value qualified with a format code.
type DateTime struct {
	DateTimeString DateTimeString `xml:"udt:DateTimeString"`
}

// DateTimeString is the textual date value inside a DateTime.
type DateTimeString struct {
	Format string `xml:"format,attr"`
	Value  string `xml:",chardata"`
}

// FormattedDateTime is the qualified date variant used on referenced
// documents.
type FormattedDateTime struct {
	DateTimeString DateTimeString `xml:"qdt:DateTimeString"`
}

// CIIID represents an identifier with an optional scheme.
type CIIID struct {
	SchemeID *string `xml:"schemeID,attr"`
	Value    string  `xml:",chardata"`
}

// CIIAmount represents a monetary amount, optionally currency qualified.
type CIIAmount struct {
	CurrencyID *string `xml:"currencyID,attr"`
	Value      string  `xml:",chardata"`
}

// CIIQuantity represents a quantity with a unit code.
type CIIQuantity struct {
	UnitCode string `xml:"unitCode,attr"`
	Value    string `xml:",chardata"`
}

// CIIText represents a text value with optional language qualifiers.
type CIIText struct {
	LanguageID       string `xml:"languageID,attr,omitempty"`
	LanguageLocaleID string `xml:"languageLocaleID,attr,omitempty"`
	Value            string `xml:",chardata"`
}

// CIICode represents a code value with an optional code list.
type CIICode struct {
	ListID *string `xml:"listID,attr"`
	Value  string  `xml:",chardata"`
}

// CIINote represents a free-text note.
type CIINote struct {
	Content []CIIText `xml:"ram:Content"`
}

// Indicator wraps a boolean indicator value.
type Indicator struct {
	Indicator bool `xml:"udt:Indicator"`
}

// CIIBinaryObject is an embedded binary attachment payload.
type CIIBinaryObject struct {
	MimeCode string `xml:"mimeCode,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// SupplyChainTradeTransaction aggregates the line items and the header
// trade agreement, delivery and settlement sections.
type SupplyChainTradeTransaction struct {
	IncludedSupplyChainTradeLineItem []SupplyChainTradeLineItem `xml:"ram:IncludedSupplyChainTradeLineItem,omitempty"`
	ApplicableHeaderTradeAgreement   HeaderTradeAgreement       `xml:"ram:ApplicableHeaderTradeAgreement"`
	ApplicableHeaderTradeDelivery    HeaderTradeDelivery        `xml:"ram:ApplicableHeaderTradeDelivery"`
	ApplicableHeaderTradeSettlement  HeaderTradeSettlement      `xml:"ram:ApplicableHeaderTradeSettlement"`
}

// SupplyChainTradeLineItem is one trade line of the transaction.
type SupplyChainTradeLineItem struct {
	AssociatedDocumentLineDocument DocumentLineDocument `xml:"ram:AssociatedDocumentLineDocument"`
	SpecifiedTradeProduct          TradeProduct         `xml:"ram:SpecifiedTradeProduct"`
	SpecifiedLineTradeAgreement    LineTradeAgreement   `xml:"ram:SpecifiedLineTradeAgreement"`
	SpecifiedLineTradeDelivery     LineTradeDelivery    `xml:"ram:SpecifiedLineTradeDelivery"`
	SpecifiedLineTradeSettlement   LineTradeSettlement  `xml:"ram:SpecifiedLineTradeSettlement"`
}

// DocumentLineDocument identifies a trade line. ParentLineID is only set on
// lines produced by flattening a nested sub-line and always names the
// immediate parent's line ID.
type DocumentLineDocument struct {
	LineID       string    `xml:"ram:LineID,omitempty"`
	ParentLineID string    `xml:"ram:ParentLineID,omitempty"`
	IncludedNote []CIINote `xml:"ram:IncludedNote,omitempty"`
}

// TradeProduct describes the product of a trade line.
type TradeProduct struct {
	GlobalID                        *CIIID                  `xml:"ram:GlobalID,omitempty"`
	SellerAssignedID                string                  `xml:"ram:SellerAssignedID,omitempty"`
	Name                            *CIIText                `xml:"ram:Name,omitempty"`
	Description                     string                  `xml:"ram:Description,omitempty"`
	ApplicableProductCharacteristic []ProductCharacteristic `xml:"ram:ApplicableProductCharacteristic,omitempty"`
	DesignatedProductClassification []ProductClassification `xml:"ram:DesignatedProductClassification,omitempty"`
}

// ProductCharacteristic is a name/value property of a product.
type ProductCharacteristic struct {
	Description []CIIText `xml:"ram:Description,omitempty"`
	Value       []CIIText `xml:"ram:Value,omitempty"`
}

// ProductClassification is a commodity classification of a product.
type ProductClassification struct {
	ClassCode *CIICode `xml:"ram:ClassCode,omitempty"`
}

// LineTradeAgreement is the agreement section of a trade line.
type LineTradeAgreement struct {
	BuyerOrderReferencedDocument *ReferencedDocument `xml:"ram:BuyerOrderReferencedDocument,omitempty"`
	NetPriceProductTradePrice    *TradePrice         `xml:"ram:NetPriceProductTradePrice,omitempty"`
}

// TradePrice is a product price.
type TradePrice struct {
	ChargeAmount *CIIAmount `xml:"ram:ChargeAmount,omitempty"`
}

// LineTradeDelivery is the delivery section of a trade line.
type LineTradeDelivery struct {
	BilledQuantity *CIIQuantity `xml:"ram:BilledQuantity,omitempty"`
}

// LineTradeSettlement is the settlement section of a trade line.
type LineTradeSettlement struct {
	ApplicableTradeTax                            []TradeTax               `xml:"ram:ApplicableTradeTax,omitempty"`
	SpecifiedTradeAllowanceCharge                 []TradeAllowanceCharge   `xml:"ram:SpecifiedTradeAllowanceCharge,omitempty"`
	SpecifiedTradeSettlementLineMonetarySummation LineMonetarySummation    `xml:"ram:SpecifiedTradeSettlementLineMonetarySummation"`
	ReceivableSpecifiedTradeAccountingAccount     []TradeAccountingAccount `xml:"ram:ReceivableSpecifiedTradeAccountingAccount,omitempty"`
}

// LineMonetarySummation is the monetary summation of one trade line.
type LineMonetarySummation struct {
	LineTotalAmount *CIIAmount `xml:"ram:LineTotalAmount,omitempty"`
}

// TradeTax is an applicable tax with its category, rate and amounts.
type TradeTax struct {
	CalculatedAmount      *CIIAmount `xml:"ram:CalculatedAmount,omitempty"`
	TypeCode              string     `xml:"ram:TypeCode,omitempty"`
	ExemptionReason       string     `xml:"ram:ExemptionReason,omitempty"`
	BasisAmount           *CIIAmount `xml:"ram:BasisAmount,omitempty"`
	CategoryCode          string     `xml:"ram:CategoryCode,omitempty"`
	ExemptionReasonCode   string     `xml:"ram:ExemptionReasonCode,omitempty"`
	RateApplicablePercent string     `xml:"ram:RateApplicablePercent,omitempty"`
}

// TradeAllowanceCharge is a document or line level allowance or charge.
type TradeAllowanceCharge struct {
	ChargeIndicator    Indicator  `xml:"ram:ChargeIndicator"`
	CalculationPercent string     `xml:"ram:CalculationPercent,omitempty"`
	BasisAmount        *CIIAmount `xml:"ram:BasisAmount,omitempty"`
	ActualAmount       *CIIAmount `xml:"ram:ActualAmount,omitempty"`
	ReasonCode         string     `xml:"ram:ReasonCode,omitempty"`
	Reason             string     `xml:"ram:Reason,omitempty"`
	CategoryTradeTax   *TradeTax  `xml:"ram:CategoryTradeTax,omitempty"`
}

// ReferencedDocument is a reference to another document.
type ReferencedDocument struct {
	IssuerAssignedID       string             `xml:"ram:IssuerAssignedID,omitempty"`
	URIID                  string             `xml:"ram:URIID,omitempty"`
	LineID                 string             `xml:"ram:LineID,omitempty"`
	TypeCode               string             `xml:"ram:TypeCode,omitempty"`
	Name                   []CIIText          `xml:"ram:Name,omitempty"`
	AttachmentBinaryObject []CIIBinaryObject  `xml:"ram:AttachmentBinaryObject,omitempty"`
	FormattedIssueDateTime *FormattedDateTime `xml:"ram:FormattedIssueDateTime,omitempty"`
}

// HeaderTradeAgreement is the commercial agreement section of the document.
type HeaderTradeAgreement struct {
	BuyerReference               string               `xml:"ram:BuyerReference,omitempty"`
	SellerTradeParty             *TradeParty          `xml:"ram:SellerTradeParty,omitempty"`
	BuyerTradeParty              *TradeParty          `xml:"ram:BuyerTradeParty,omitempty"`
	BuyerOrderReferencedDocument *ReferencedDocument  `xml:"ram:BuyerOrderReferencedDocument,omitempty"`
	ContractReferencedDocument   *ReferencedDocument  `xml:"ram:ContractReferencedDocument,omitempty"`
	AdditionalReferencedDocument []ReferencedDocument `xml:"ram:AdditionalReferencedDocument,omitempty"`
}

// TradeParty is a party involved in the trade transaction.
type TradeParty struct {
	ID                         []CIIID                  `xml:"ram:ID,omitempty"`
	Name                       string                   `xml:"ram:Name,omitempty"`
	SpecifiedLegalOrganization *LegalOrganization       `xml:"ram:SpecifiedLegalOrganization,omitempty"`
	DefinedTradeContact        []TradeContact           `xml:"ram:DefinedTradeContact,omitempty"`
	PostalTradeAddress         *TradeAddress            `xml:"ram:PostalTradeAddress,omitempty"`
	URIUniversalCommunication  []UniversalCommunication `xml:"ram:URIUniversalCommunication,omitempty"`
	SpecifiedTaxRegistration   []TaxRegistration        `xml:"ram:SpecifiedTaxRegistration,omitempty"`
}

// LegalOrganization is the legal registration of a trade party.
type LegalOrganization struct {
	ID                  *CIIID        `xml:"ram:ID,omitempty"`
	TradingBusinessName string        `xml:"ram:TradingBusinessName,omitempty"`
	PostalTradeAddress  *TradeAddress `xml:"ram:PostalTradeAddress,omitempty"`
}

// TradeContact is a contact person of a trade party.
type TradeContact struct {
	PersonName                      string                  `xml:"ram:PersonName,omitempty"`
	DepartmentName                  string                  `xml:"ram:DepartmentName,omitempty"`
	TelephoneUniversalCommunication *UniversalCommunication `xml:"ram:TelephoneUniversalCommunication,omitempty"`
	EmailURIUniversalCommunication  *UniversalCommunication `xml:"ram:EmailURIUniversalCommunication,omitempty"`
}

// UniversalCommunication is a communication channel (URI or telephone).
type UniversalCommunication struct {
	URIID          *CIIID `xml:"ram:URIID,omitempty"`
	CompleteNumber string `xml:"ram:CompleteNumber,omitempty"`
}

// TradeAddress is a postal address.
type TradeAddress struct {
	PostcodeCode           string    `xml:"ram:PostcodeCode,omitempty"`
	LineOne                string    `xml:"ram:LineOne,omitempty"`
	LineTwo                string    `xml:"ram:LineTwo,omitempty"`
	LineThree              string    `xml:"ram:LineThree,omitempty"`
	CityName               string    `xml:"ram:CityName,omitempty"`
	CountryID              string    `xml:"ram:CountryID,omitempty"`
	CountrySubDivisionName []CIIText `xml:"ram:CountrySubDivisionName,omitempty"`
}

// TaxRegistration is a tax registration of a trade party.
type TaxRegistration struct {
	ID *CIIID `xml:"ram:ID,omitempty"`
}

// HeaderTradeDelivery is the delivery section of the document. The element
// is mandatory in CII even when the source carries no delivery data.
type HeaderTradeDelivery struct {
	ShipToTradeParty               *TradeParty       `xml:"ram:ShipToTradeParty,omitempty"`
	ActualDeliverySupplyChainEvent *SupplyChainEvent `xml:"ram:ActualDeliverySupplyChainEvent,omitempty"`
}

// SupplyChainEvent is an event with an occurrence date.
type SupplyChainEvent struct {
	OccurrenceDateTime *DateTime `xml:"ram:OccurrenceDateTime,omitempty"`
}

// HeaderTradeSettlement is the settlement section of the document.
type HeaderTradeSettlement struct {
	PaymentReference                                *CIIText                      `xml:"ram:PaymentReference,omitempty"`
	InvoiceCurrencyCode                             string                        `xml:"ram:InvoiceCurrencyCode,omitempty"`
	PayeeTradeParty                                 *TradeParty                   `xml:"ram:PayeeTradeParty,omitempty"`
	SpecifiedTradeSettlementPaymentMeans            []TradeSettlementPaymentMeans `xml:"ram:SpecifiedTradeSettlementPaymentMeans,omitempty"`
	ApplicableTradeTax                              []TradeTax                    `xml:"ram:ApplicableTradeTax,omitempty"`
	BillingSpecifiedPeriod                          *SpecifiedPeriod              `xml:"ram:BillingSpecifiedPeriod,omitempty"`
	SpecifiedTradeAllowanceCharge                   []TradeAllowanceCharge        `xml:"ram:SpecifiedTradeAllowanceCharge,omitempty"`
	SpecifiedTradePaymentTerms                      []TradePaymentTerms           `xml:"ram:SpecifiedTradePaymentTerms,omitempty"`
	SpecifiedTradeSettlementHeaderMonetarySummation HeaderMonetarySummation       `xml:"ram:SpecifiedTradeSettlementHeaderMonetarySummation"`
	ReceivableSpecifiedTradeAccountingAccount       []TradeAccountingAccount      `xml:"ram:ReceivableSpecifiedTradeAccountingAccount,omitempty"`
}

// TradeSettlementPaymentMeans is a payment means of the settlement.
type TradeSettlementPaymentMeans struct {
	TypeCode                           string                    `xml:"ram:TypeCode,omitempty"`
	PayeePartyCreditorFinancialAccount *CreditorFinancialAccount `xml:"ram:PayeePartyCreditorFinancialAccount,omitempty"`
}

// CreditorFinancialAccount is the IBAN-bearing creditor account.
type CreditorFinancialAccount struct {
	IBANID string `xml:"ram:IBANID,omitempty"`
}

// SpecifiedPeriod is a billing period.
type SpecifiedPeriod struct {
	StartDateTime *DateTime `xml:"ram:StartDateTime,omitempty"`
	EndDateTime   *DateTime `xml:"ram:EndDateTime,omitempty"`
}

// TradePaymentTerms are the payment terms of the settlement.
type TradePaymentTerms struct {
	Description     []CIIText `xml:"ram:Description,omitempty"`
	DueDateDateTime *DateTime `xml:"ram:DueDateDateTime,omitempty"`
}

// HeaderMonetarySummation is the document monetary summation. Each field is
// optional, but once any aggregation contributes to a field it carries a
// concrete value.
type HeaderMonetarySummation struct {
	LineTotalAmount      *CIIAmount `xml:"ram:LineTotalAmount,omitempty"`
	ChargeTotalAmount    *CIIAmount `xml:"ram:ChargeTotalAmount,omitempty"`
	AllowanceTotalAmount *CIIAmount `xml:"ram:AllowanceTotalAmount,omitempty"`
	TaxBasisTotalAmount  *CIIAmount `xml:"ram:TaxBasisTotalAmount,omitempty"`
	TaxTotalAmount       *CIIAmount `xml:"ram:TaxTotalAmount,omitempty"`
	RoundingAmount       *CIIAmount `xml:"ram:RoundingAmount,omitempty"`
	GrandTotalAmount     *CIIAmount `xml:"ram:GrandTotalAmount,omitempty"`
	TotalPrepaidAmount   *CIIAmount `xml:"ram:TotalPrepaidAmount,omitempty"`
	DuePayableAmount     *CIIAmount `xml:"ram:DuePayableAmount,omitempty"`
}

// TradeAccountingAccount is a buyer accounting reference.
type TradeAccountingAccount struct {
	ID string `xml:"ram:ID,omitempty"`
}
