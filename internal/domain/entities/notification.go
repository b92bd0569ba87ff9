package entities

// Notification templates.
const (
	TemplateBookingRequested   = "booking_requested"
	TemplateBookingAccepted    = "booking_accepted"
	TemplateBookingDeclined    = "booking_declined"
	TemplateBookingCancelled   = "booking_cancelled"
	TemplateInvoiceIssued      = "invoice_issued"
	TemplatePaymentProofToTeam = "payment_proof_uploaded"
	TemplatePaymentReceived    = "payment_received"
	TemplateBookingCompleted   = "booking_completed"
)

// Notification is a lifecycle message addressed to a user (RecipientID) or to the
// admin team (ToAdmin).
type Notification struct {
	Template    string
	RecipientID string
	ToAdmin     bool
	BookingID   string
	Data        map[string]any
}

// Email is a rendered message handed to the email provider.
type Email struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Tag     string   `json:"tag,omitempty"`
}
