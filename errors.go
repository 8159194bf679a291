package ublcii

import (
	"fmt"
)

// ErrUnsupportedDocumentType is returned when the source XML root element is
// neither a UBL Invoice nor a UBL CreditNote.
var ErrUnsupportedDocumentType = fmt.Errorf("unsupported document type")

// ErrorList collects the problems found while converting a document. A
// conversion that produced one or more errors yields no output document.
type ErrorList struct {
	errs []error
}

// Add appends an error to the list. Nil errors are ignored.
func (l *ErrorList) Add(err error) {
	if err == nil {
		return
	}
	l.errs = append(l.errs, err)
}

// Addf appends a formatted error to the list.
func (l *ErrorList) Addf(format string, args ...any) {
	l.errs = append(l.errs, fmt.Errorf(format, args...))
}

// HasErrors reports whether any error was collected.
func (l *ErrorList) HasErrors() bool {
	return len(l.errs) > 0
}

// Errors returns the collected errors in the order they were added.
func (l *ErrorList) Errors() []error {
	return l.errs
}
