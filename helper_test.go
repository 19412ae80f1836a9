package accrual

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// row is a helper to build a full-width transaction row.
func row(vendor, amount, po, poDate, delivery, received, invoice, cleared, description string) Row {
	return Row{vendor, amount, po, poDate, delivery, received, invoice, cleared, description}
}

// marker is a helper to build a marker row padded to transaction width.
func marker(label string) Row {
	r := make(Row, rowWidth)
	r[0] = label
	return r
}
