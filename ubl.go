package ublcii

import "encoding/xml"

// Main UBL document namespaces
const (
	NamespaceUBLInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceUBLCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
)

// UBL schema constants
const (
	NamespaceCBC    = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NamespaceCAC    = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceUBLQDT = "urn:oasis:names:specification:ubl:schema:xsd:QualifiedDataTypes-2"
	NamespaceUBLUDT = "urn:oasis:names:specification:ubl:schema:xsd:UnqualifiedDataTypes-2"
	NamespaceCCTS   = "urn:un:unece:uncefact:documentation:2"
	NamespaceXSI    = "http://www.w3.org/2001/XMLSchema-instance"
)

// RootInvoice and RootCreditNote are the two document element local
// names supported by the auto-detecting conversion entry point.
const (
	RootInvoice    = "Invoice"
	RootCreditNote = "CreditNote"
)

// Invoice represents the root element of a UBL Invoice **or** Credit Note; the
// structures between the two types are so similar, that it doesn't make much
// sense to separate.
type Invoice struct {
	XMLName xml.Name

	CustomizationID      string   `xml:"cbc:CustomizationID,omitempty"`
	ProfileID            string   `xml:"cbc:ProfileID,omitempty"`
	ID                   string   `xml:"cbc:ID"`
	IssueDate            string   `xml:"cbc:IssueDate"`
	InvoiceTypeCode      string   `xml:"cbc:InvoiceTypeCode,omitempty"`
	CreditNoteTypeCode   string   `xml:"cbc:CreditNoteTypeCode,omitempty"`
	Note                 []string `xml:"cbc:Note,omitempty"`
	DocumentCurrencyCode string   `xml:"cbc:DocumentCurrencyCode,omitempty"`
	AccountingCost       string   `xml:"cbc:AccountingCost,omitempty"`
	BuyerReference       string   `xml:"cbc:BuyerReference,omitempty"`

	InvoicePeriod               []Period          `xml:"cac:InvoicePeriod,omitempty"`
	OrderReference              *OrderReference   `xml:"cac:OrderReference,omitempty"`
	ContractDocumentReference   []Reference       `xml:"cac:ContractDocumentReference,omitempty"`
	AdditionalDocumentReference []Reference       `xml:"cac:AdditionalDocumentReference,omitempty"`
	AccountingSupplierParty     SupplierParty     `xml:"cac:AccountingSupplierParty"`
	AccountingCustomerParty     CustomerParty     `xml:"cac:AccountingCustomerParty"`
	PayeeParty                  *Party            `xml:"cac:PayeeParty,omitempty"`
	Delivery                    []Delivery        `xml:"cac:Delivery,omitempty"`
	PaymentMeans                []PaymentMeans    `xml:"cac:PaymentMeans,omitempty"`
	PaymentTerms                []PaymentTerms    `xml:"cac:PaymentTerms,omitempty"`
	AllowanceCharge             []AllowanceCharge `xml:"cac:AllowanceCharge,omitempty"`
	TaxTotal                    []TaxTotal        `xml:"cac:TaxTotal,omitempty"`
	LegalMonetaryTotal          MonetaryTotal     `xml:"cac:LegalMonetaryTotal"`
	InvoiceLines                []InvoiceLine     `xml:"cac:InvoiceLine,omitempty"`
	CreditNoteLines             []InvoiceLine     `xml:"cac:CreditNoteLine,omitempty"`
}

// IsCreditNote reports whether the parsed document is a credit note rather
// than an invoice.
func (ui *Invoice) IsCreditNote() bool {
	if ui.XMLName.Local == RootCreditNote {
		return true
	}
	return ui.CreditNoteTypeCode != "" || len(ui.CreditNoteLines) > 0
}

// typeCode returns the document type code of whichever variant is present.
func (ui *Invoice) typeCode() string {
	if ui.InvoiceTypeCode != "" {
		return ui.InvoiceTypeCode
	}
	return ui.CreditNoteTypeCode
}

// lines returns the line sequence of whichever variant is present.
func (ui *Invoice) lines() []InvoiceLine {
	if len(ui.CreditNoteLines) > 0 {
		return ui.CreditNoteLines
	}
	return ui.InvoiceLines
}

// InvoiceLine represents a line item in an invoice or credit note. A line may
// carry nested sub-lines, which is the one recursive structure in the model.
type InvoiceLine struct {
	ID                  string              `xml:"cbc:ID"`
	Note                []string            `xml:"cbc:Note"`
	InvoicedQuantity    *Quantity           `xml:"cbc:InvoicedQuantity,omitempty"`
	CreditedQuantity    *Quantity           `xml:"cbc:CreditedQuantity,omitempty"`
	LineExtensionAmount *Amount             `xml:"cbc:LineExtensionAmount"`
	AccountingCost      *string             `xml:"cbc:AccountingCost"`
	OrderLineReference  *OrderLineReference `xml:"cac:OrderLineReference"`
	AllowanceCharge     []AllowanceCharge   `xml:"cac:AllowanceCharge"`
	Item                *Item               `xml:"cac:Item"`
	Price               *Price              `xml:"cac:Price"`
	SubInvoiceLines     []InvoiceLine       `xml:"cac:SubInvoiceLine,omitempty"`
	SubCreditNoteLines  []InvoiceLine       `xml:"cac:SubCreditNoteLine,omitempty"`
}

// subLines returns the nested sub-lines of whichever variant is present.
func (l *InvoiceLine) subLines() []InvoiceLine {
	if len(l.SubCreditNoteLines) > 0 {
		return l.SubCreditNoteLines
	}
	return l.SubInvoiceLines
}

func (l *InvoiceLine) hasSubLines() bool {
	return len(l.SubInvoiceLines) > 0 || len(l.SubCreditNoteLines) > 0
}

// quantity returns the billed quantity of whichever variant is present.
func (l *InvoiceLine) quantity() *Quantity {
	if l.CreditedQuantity != nil {
		return l.CreditedQuantity
	}
	return l.InvoicedQuantity
}

// IDType represents an ID with optional scheme attributes
type IDType struct {
	SchemeID *string `xml:"schemeID,attr"`
	ListID   *string `xml:"listID,attr"`
	Value    string  `xml:",chardata"`
}

// Amount represents a monetary amount
type Amount struct {
	CurrencyID *string `xml:"currencyID,attr"`
	Value      string  `xml:",chardata"`
}

// Quantity represents a quantity with a unit code
type Quantity struct {
	UnitCode string `xml:"unitCode,attr"`
	Value    string `xml:",chardata"`
}

// Text represents a string value with optional language qualifiers.
type Text struct {
	LanguageID       string `xml:"languageID,attr"`
	LanguageLocaleID string `xml:"languageLocaleID,attr"`
	Value            string `xml:",chardata"`
}

// Period represents a date period
type Period struct {
	StartDate string `xml:"cbc:StartDate,omitempty"`
	EndDate   string `xml:"cbc:EndDate,omitempty"`
}

// OrderReference represents a reference to a buyer order
type OrderReference struct {
	ID string `xml:"cbc:ID"`
}

// OrderLineReference represents a reference to an order line
type OrderLineReference struct {
	LineID string `xml:"cbc:LineID"`
}

// Reference represents a document reference
type Reference struct {
	ID                  string      `xml:"cbc:ID"`
	DocumentTypeCode    string      `xml:"cbc:DocumentTypeCode,omitempty"`
	IssueDate           string      `xml:"cbc:IssueDate,omitempty"`
	DocumentDescription []Text      `xml:"cbc:DocumentDescription,omitempty"`
	Attachment          *Attachment `xml:"cac:Attachment,omitempty"`
}

// Attachment holds either an external reference or an embedded binary object.
type Attachment struct {
	ExternalReference            *ExternalReference `xml:"cac:ExternalReference,omitempty"`
	EmbeddedDocumentBinaryObject *BinaryObject      `xml:"cbc:EmbeddedDocumentBinaryObject,omitempty"`
}

// ExternalReference points to an externally hosted document.
type ExternalReference struct {
	URI string `xml:"cbc:URI"`
}

// BinaryObject is an embedded base64 document payload.
type BinaryObject struct {
	MimeCode string `xml:"mimeCode,attr"`
	Value    string `xml:",chardata"`
}

// SupplierParty represents the supplier party in a transaction
type SupplierParty struct {
	Party *Party `xml:"cac:Party"`
}

// CustomerParty represents the customer party in a transaction
type CustomerParty struct {
	Party *Party `xml:"cac:Party"`
}

// Party represents a party involved in a transaction
type Party struct {
	EndpointID          *IDType            `xml:"cbc:EndpointID"`
	PartyIdentification []Identification   `xml:"cac:PartyIdentification"`
	PartyName           *PartyName         `xml:"cac:PartyName"`
	PostalAddress       *PostalAddress     `xml:"cac:PostalAddress"`
	PartyTaxScheme      []PartyTaxScheme   `xml:"cac:PartyTaxScheme"`
	PartyLegalEntity    []PartyLegalEntity `xml:"cac:PartyLegalEntity"`
	Person              []Person           `xml:"cac:Person"`
	Contact             *Contact           `xml:"cac:Contact"`
}

// Identification represents an identification
type Identification struct {
	ID *IDType `xml:"cbc:ID"`
}

// PartyName represents the name of a party
type PartyName struct {
	Name string `xml:"cbc:Name"`
}

// PostalAddress represents a postal address
type PostalAddress struct {
	StreetName           *string       `xml:"cbc:StreetName"`
	AdditionalStreetName *string       `xml:"cbc:AdditionalStreetName"`
	CityName             *string       `xml:"cbc:CityName"`
	PostalZone           *string       `xml:"cbc:PostalZone"`
	CountrySubentity     *string       `xml:"cbc:CountrySubentity"`
	AddressLine          []AddressLine `xml:"cac:AddressLine"`
	Country              *Country      `xml:"cac:Country"`
}

// AddressLine represents a line in an address
type AddressLine struct {
	Line string `xml:"cbc:Line"`
}

// Country represents a country
type Country struct {
	IdentificationCode string `xml:"cbc:IdentificationCode"`
}

// PartyTaxScheme represents a party's tax scheme registration
type PartyTaxScheme struct {
	CompanyID *IDType    `xml:"cbc:CompanyID"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme"`
}

// TaxScheme represents a tax scheme
type TaxScheme struct {
	ID          IDType  `xml:"cbc:ID"`
	Name        *string `xml:"cbc:Name"`
	TaxTypeCode string  `xml:"cbc:TaxTypeCode,omitempty"`
}

// PartyLegalEntity represents the legal entity of a party
type PartyLegalEntity struct {
	RegistrationName    *string        `xml:"cbc:RegistrationName"`
	CompanyID           *IDType        `xml:"cbc:CompanyID"`
	RegistrationAddress *PostalAddress `xml:"cac:RegistrationAddress"`
}

// Person represents a contact person of a party
type Person struct {
	FirstName              *string  `xml:"cbc:FirstName"`
	MiddleName             *string  `xml:"cbc:MiddleName"`
	FamilyName             *string  `xml:"cbc:FamilyName"`
	NameSuffix             *string  `xml:"cbc:NameSuffix"`
	OrganizationDepartment *string  `xml:"cbc:OrganizationDepartment"`
	Contact                *Contact `xml:"cac:Contact"`
}

// Contact represents contact information
type Contact struct {
	Name           *string `xml:"cbc:Name"`
	Telephone      *string `xml:"cbc:Telephone"`
	ElectronicMail *string `xml:"cbc:ElectronicMail"`
}

// Delivery represents a delivery
type Delivery struct {
	ActualDeliveryDate string    `xml:"cbc:ActualDeliveryDate,omitempty"`
	DeliveryLocation   *Location `xml:"cac:DeliveryLocation,omitempty"`
}

// Location represents a delivery location
type Location struct {
	ID      *IDType        `xml:"cbc:ID"`
	Address *PostalAddress `xml:"cac:Address"`
}

// PaymentMeans represents the means of payment
type PaymentMeans struct {
	PaymentMeansCode      IDType            `xml:"cbc:PaymentMeansCode"`
	PaymentDueDate        string            `xml:"cbc:PaymentDueDate,omitempty"`
	PaymentID             []string          `xml:"cbc:PaymentID"`
	PayeeFinancialAccount *FinancialAccount `xml:"cac:PayeeFinancialAccount"`
}

// FinancialAccount represents a financial account
type FinancialAccount struct {
	ID *string `xml:"cbc:ID"`
}

// PaymentTerms represents the terms of payment
type PaymentTerms struct {
	Note []string `xml:"cbc:Note"`
}

// AllowanceCharge represents an allowance or charge
type AllowanceCharge struct {
	ChargeIndicator           bool          `xml:"cbc:ChargeIndicator"`
	AllowanceChargeReasonCode *string       `xml:"cbc:AllowanceChargeReasonCode"`
	AllowanceChargeReason     []string      `xml:"cbc:AllowanceChargeReason"`
	MultiplierFactorNumeric   *string       `xml:"cbc:MultiplierFactorNumeric"`
	Amount                    Amount        `xml:"cbc:Amount"`
	BaseAmount                *Amount       `xml:"cbc:BaseAmount"`
	TaxCategory               []TaxCategory `xml:"cac:TaxCategory"`
}

// TaxTotal represents a tax total
type TaxTotal struct {
	TaxAmount   Amount        `xml:"cbc:TaxAmount"`
	TaxSubtotal []TaxSubtotal `xml:"cac:TaxSubtotal"`
}

// TaxSubtotal represents a tax subtotal
type TaxSubtotal struct {
	TaxableAmount *Amount     `xml:"cbc:TaxableAmount,omitempty"`
	TaxAmount     Amount      `xml:"cbc:TaxAmount"`
	TaxCategory   TaxCategory `xml:"cac:TaxCategory"`
}

// TaxCategory represents a tax category
type TaxCategory struct {
	ID                     *IDType    `xml:"cbc:ID,omitempty"`
	Percent                *string    `xml:"cbc:Percent,omitempty"`
	TaxExemptionReasonCode *string    `xml:"cbc:TaxExemptionReasonCode,omitempty"`
	TaxExemptionReason     []string   `xml:"cbc:TaxExemptionReason,omitempty"`
	TaxScheme              *TaxScheme `xml:"cac:TaxScheme,omitempty"`
}

// MonetaryTotal represents the monetary totals of the document
type MonetaryTotal struct {
	LineExtensionAmount   *Amount `xml:"cbc:LineExtensionAmount"`
	TaxExclusiveAmount    *Amount `xml:"cbc:TaxExclusiveAmount"`
	TaxInclusiveAmount    *Amount `xml:"cbc:TaxInclusiveAmount"`
	AllowanceTotalAmount  *Amount `xml:"cbc:AllowanceTotalAmount,omitempty"`
	ChargeTotalAmount     *Amount `xml:"cbc:ChargeTotalAmount,omitempty"`
	PrepaidAmount         *Amount `xml:"cbc:PrepaidAmount,omitempty"`
	PayableRoundingAmount *Amount `xml:"cbc:PayableRoundingAmount,omitempty"`
	PayableAmount         *Amount `xml:"cbc:PayableAmount,omitempty"`
}

// Item represents an item in an invoice line
type Item struct {
	Description                []string                  `xml:"cbc:Description"`
	Name                       string                    `xml:"cbc:Name"`
	BuyersItemIdentification   *ItemIdentification       `xml:"cac:BuyersItemIdentification"`
	SellersItemIdentification  *ItemIdentification       `xml:"cac:SellersItemIdentification"`
	StandardItemIdentification *ItemIdentification       `xml:"cac:StandardItemIdentification"`
	CommodityClassification    []CommodityClassification `xml:"cac:CommodityClassification"`
	ClassifiedTaxCategory      []TaxCategory             `xml:"cac:ClassifiedTaxCategory"`
	AdditionalItemProperty     []AdditionalItemProperty  `xml:"cac:AdditionalItemProperty"`
}

// ItemIdentification represents an item identification
type ItemIdentification struct {
	ID *IDType `xml:"cbc:ID"`
}

// CommodityClassification represents a commodity classification
type CommodityClassification struct {
	ItemClassificationCode *IDType `xml:"cbc:ItemClassificationCode"`
}

// AdditionalItemProperty represents an additional property of an item
type AdditionalItemProperty struct {
	Name  string `xml:"cbc:Name"`
	Value string `xml:"cbc:Value"`
}

// Price represents the price of an item
type Price struct {
	PriceAmount *Amount `xml:"cbc:PriceAmount"`
}
