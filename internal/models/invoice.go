package models

// Invoice is a billing document for a subscription period. Totals arrive
// precomputed from the backend (total = subtotal + taxAmount) and are never
// recomputed locally.
type Invoice struct {
	ID            int64        `json:"id"`
	InvoiceNumber string       `json:"invoiceNumber"`
	UserID        int64        `json:"userId"`
	UserName      string       `json:"userName,omitempty"`
	Concept       string       `json:"concept"`
	Country       string       `json:"country,omitempty"` // first-class when the backend sends it
	IssueDate     string       `json:"issueDate"`
	DueDate       string       `json:"dueDate,omitempty"`
	Subtotal      float64      `json:"subtotal"`
	TaxPercentage float64      `json:"taxPercentage"`
	TaxAmount     float64      `json:"taxAmount"`
	Total         float64      `json:"total"`
	State         InvoiceState `json:"state"`
}

// InvoiceFilter collects the optional list filters the invoice views use.
// Zero values mean "no filter".
type InvoiceFilter struct {
	State     InvoiceState
	UserID    int64
	From      string // ISO date, inclusive
	To        string // ISO date, inclusive
	MinAmount *float64
	MaxAmount *float64
	Overdue   bool
}
