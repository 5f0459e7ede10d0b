package domain

// Performance is one line item of an invoice.
type Performance struct {
	PlayID   string
	Audience int
}

// Invoice is a customer name with performances in billing order.
type Invoice struct {
	Customer     string
	Performances []Performance
}
