// Package accrual extracts outstanding purchase obligations from a
// hand-maintained checkbook workbook and assembles them into a grouped,
// totaled accrual report.
//
// A checkbook is one sheet per cost center. Rows are loosely structured:
// month-name markers open a section, header and total rows are sprinkled in
// between, and transaction rows follow a fixed nine-column layout. The
// Classifier walks each sheet with a small per-sheet state machine, the
// cutoff Policy decides which month sections a run may include, and the
// Extractor builds one immutable Record per accepted row. NewReport then
// sorts, groups and totals the records with exact decimal arithmetic.
//
// Description normalization lives in the describe subpackage, report output
// in renderer.
package accrual
