package ublcii

import (
	"encoding/xml"

	"github.com/invopop/validation"
)

// isValidDocumentReferenceTypeCode reports whether a UBL document type code
// may pass through to a CII referenced document. Only originator documents
// (50) and tender references (130) do; everything else is replaced by 916.
func isValidDocumentReferenceTypeCode(code string) bool {
	return code == "50" || code == "130"
}

// ConvertInvoice converts a parsed UBL invoice or credit note to a CII D16B
// cross industry invoice. Problems are collected on errs; when any were
// collected the returned document is nil.
func ConvertInvoice(doc *Invoice, errs *ErrorList) *CrossIndustryInvoice {
	if doc == nil {
		errs.Add(validation.Errors{
			"invoice": validation.ErrRequired,
		})
		return nil
	}

	cii := &CrossIndustryInvoice{
		XMLName:      xml.Name{Local: "rsm:CrossIndustryInvoice"},
		RSMNamespace: NamespaceRSM,
		RAMNamespace: NamespaceRAM,
		UDTNamespace: NamespaceUDT,
		QDTNamespace: NamespaceQDT,
	}

	if doc.CustomizationID != "" {
		cii.ExchangedDocumentContext.GuidelineSpecifiedDocumentContextParameter = []DocumentContextParameter{
			{ID: doc.CustomizationID},
		}
	}
	if doc.ProfileID != "" {
		cii.ExchangedDocumentContext.BusinessProcessSpecifiedDocumentContextParameter = []DocumentContextParameter{
			{ID: doc.ProfileID},
		}
	}

	cii.ExchangedDocument = ExchangedDocument{
		ID:            doc.ID,
		TypeCode:      doc.typeCode(),
		IssueDateTime: convertDate(doc.IssueDate),
	}
	for _, note := range doc.Note {
		cii.ExchangedDocument.IncludedNote = append(cii.ExchangedDocument.IncludedNote, newNote(note))
	}

	transaction := &cii.SupplyChainTradeTransaction

	lines := doc.lines()
	for i := range lines {
		transaction.IncludedSupplyChainTradeLineItem = append(transaction.IncludedSupplyChainTradeLineItem, convertLine(&lines[i], "")...)
	}

	transaction.ApplicableHeaderTradeAgreement = createHeaderTradeAgreement(doc)

	var delivery *Delivery
	if len(doc.Delivery) > 0 {
		delivery = &doc.Delivery[0]
	}
	transaction.ApplicableHeaderTradeDelivery = createHeaderTradeDelivery(delivery)

	transaction.ApplicableHeaderTradeSettlement = createHeaderTradeSettlement(doc)

	if errs.HasErrors() {
		return nil
	}
	return cii
}

func createHeaderTradeAgreement(doc *Invoice) HeaderTradeAgreement {
	ret := HeaderTradeAgreement{
		BuyerReference:   doc.BuyerReference,
		SellerTradeParty: convertParty(doc.AccountingSupplierParty.Party),
		BuyerTradeParty:  convertParty(doc.AccountingCustomerParty.Party),
	}

	if doc.OrderReference != nil && doc.OrderReference.ID != "" {
		ret.BuyerOrderReferencedDocument = &ReferencedDocument{
			IssuerAssignedID: doc.OrderReference.ID,
		}
	}

	if len(doc.ContractDocumentReference) > 0 {
		ret.ContractReferencedDocument = &ReferencedDocument{
			IssuerAssignedID: doc.ContractDocumentReference[0].ID,
		}
	}

	for i := range doc.AdditionalDocumentReference {
		ret.AdditionalReferencedDocument = append(ret.AdditionalReferencedDocument, convertAdditionalReferencedDocument(&doc.AdditionalDocumentReference[i]))
	}

	return ret
}

// convertAdditionalReferencedDocument maps a UBL document reference,
// including an attached document when present.
func convertAdditionalReferencedDocument(ref *Reference) ReferencedDocument {
	ret := ReferencedDocument{
		IssuerAssignedID: ref.ID,
	}

	if isValidDocumentReferenceTypeCode(ref.DocumentTypeCode) {
		ret.TypeCode = ref.DocumentTypeCode
	} else {
		ret.TypeCode = "916"
	}

	ret.FormattedIssueDateTime = convertFormattedDate(ref.IssueDate)

	for i := range ref.DocumentDescription {
		ret.Name = append(ret.Name, *convertText(&ref.DocumentDescription[i]))
	}

	if ref.Attachment != nil {
		// An external reference and an embedded binary object are mutually
		// exclusive.
		if ref.Attachment.ExternalReference != nil {
			ret.URIID = ref.Attachment.ExternalReference.URI
		}
		if bin := ref.Attachment.EmbeddedDocumentBinaryObject; bin != nil {
			ret.AttachmentBinaryObject = append(ret.AttachmentBinaryObject, CIIBinaryObject{
				MimeCode: bin.MimeCode,
				Value:    bin.Value,
			})
		}
	}

	return ret
}

// createHeaderTradeDelivery builds the delivery section. The element itself
// is mandatory in CII, so it is built even without source delivery data.
func createHeaderTradeDelivery(delivery *Delivery) HeaderTradeDelivery {
	ret := HeaderTradeDelivery{}
	if delivery == nil {
		return ret
	}

	if location := delivery.DeliveryLocation; location != nil {
		shipTo := &TradeParty{
			PostalTradeAddress: convertAddress(location.Address),
		}
		if id := convertID(location.ID); id != nil {
			shipTo.ID = append(shipTo.ID, *id)
		}
		ret.ShipToTradeParty = shipTo
	}

	if delivery.ActualDeliveryDate != "" {
		ret.ActualDeliverySupplyChainEvent = &SupplyChainEvent{
			OccurrenceDateTime: convertDate(delivery.ActualDeliveryDate),
		}
	}
	return ret
}
