package accrual

import (
	"context"
	"log"

	"github.com/etnz/accrual/describe"
)

// Extractor turns a checkbook into accrual records under a cutoff policy.
type Extractor struct {
	Policy    Policy
	Describer *describe.Service
}

// NewExtractor returns an extractor for the given policy and description
// service.
func NewExtractor(policy Policy, describer *describe.Service) *Extractor {
	return &Extractor{Policy: policy, Describer: describer}
}

// Extract scans every sheet in workbook order and every row in sheet order,
// classifying rows and building a Record for each accepted one.
//
// Extraction never fails as a whole: a sheet that blows up is logged and
// skipped, a failed description call falls back locally. An empty result is
// a valid outcome, not an error.
func (e *Extractor) Extract(ctx context.Context, cb *Checkbook) []Record {
	var records []Record
	for _, sheet := range cb.Sheets {
		log.Printf("processing sheet %q (GL %s)", sheet.Name, sheet.GLAccount)
		records = append(records, e.extractSheet(ctx, sheet)...)
	}
	return records
}

// extractSheet processes one sheet with a fresh classifier. The month context
// never leaks across sheets.
func (e *Extractor) extractSheet(ctx context.Context, sheet Sheet) (records []Record) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("error processing sheet %q: %v", sheet.Name, r)
			records = nil
		}
	}()

	classifier := NewClassifier(e.Policy)
	for _, row := range sheet.Rows {
		c, ok := classifier.Next(row)
		if !ok {
			continue
		}
		description := e.Describer.Normalize(ctx, c.Description, c.PONumber, c.Invoice)
		records = append(records, NewRecord(sheet, c, description))
	}
	return records
}
