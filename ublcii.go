// Package ublcii converts UBL 2.1 invoices and credit notes into CII D16B
// cross industry invoices following the EN 16931 mappings.
package ublcii

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/invopop/xmlctx"
)

// ErrUnknownDocumentType is returned when the document type
// is not recognized during parsing.
var ErrUnknownDocumentType = fmt.Errorf("unknown document type")

// Parse parses a raw UBL Invoice or CreditNote document and returns the
// underlying Go struct. Both document types share the same structure.
func Parse(data []byte) (*Invoice, error) {
	root, err := extractRootName(data)
	if err != nil {
		return nil, err
	}

	switch root.Space {
	case NamespaceUBLInvoice, NamespaceUBLCreditNote:
		in := new(Invoice)
		if err := xmlctx.Unmarshal(data, in, xmlctx.WithNamespaces(map[string]string{
			"":     root.Space,
			"cbc":  NamespaceCBC,
			"cac":  NamespaceCAC,
			"qdt":  NamespaceUBLQDT,
			"udt":  NamespaceUBLUDT,
			"ccts": NamespaceCCTS,
			"xsi":  NamespaceXSI,
		})); err != nil {
			return nil, err
		}
		in.XMLName = xml.Name{Space: root.Space, Local: root.Local}
		return in, nil

	default:
		return nil, ErrUnknownDocumentType
	}
}

// ConvertAutoDetect inspects the root element of a raw UBL document and
// converts it to a CII D16B invoice. Root elements other than Invoice and
// CreditNote are reported on errs and yield no output.
func ConvertAutoDetect(data []byte, errs *ErrorList) *CrossIndustryInvoice {
	root, err := extractRootName(data)
	if err != nil {
		errs.Add(err)
		return nil
	}

	switch root.Local {
	case RootInvoice, RootCreditNote:
		doc, err := Parse(data)
		if err != nil {
			errs.Add(err)
			return nil
		}
		return ConvertInvoice(doc, errs)

	default:
		errs.Addf("%w: %s", ErrUnsupportedDocumentType, root.Local)
		return nil
	}
}

func extractRootName(data []byte) (xml.Name, error) {
	dc := xml.NewDecoder(bytes.NewReader(data))
	for {
		tk, err := dc.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return xml.Name{}, fmt.Errorf("error parsing XML: %w", err)
		}
		switch t := tk.(type) {
		case xml.StartElement:
			return t.Name, nil
		}
	}
	return xml.Name{}, ErrUnknownDocumentType
}

// Bytes returns the raw XML of the CII document including the XML header.
func Bytes(doc *CrossIndustryInvoice) ([]byte, error) {
	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}
