package payments

import "time"

// ---------- requests

type LineItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity"`
	UnitAmount  float64 `json:"unit_amount"`
}

type CreatePaymentRequest struct {
	ProjectID     uint            `json:"project_id" binding:"required"`
	Title         string          `json:"title"`
	Amount        float64         `json:"amount" binding:"required"`
	Currency      string          `json:"currency"`
	DueDate       *time.Time      `json:"due_date"`
	InvoiceNumber *string         `json:"invoice_number"`
	WithInvoice   bool            `json:"with_invoice"` // auto-assign an invoice number
	LineItems     []LineItemInput `json:"line_items"`
}

type UpdatePaymentRequest struct {
	Title         *string    `json:"title"`
	Amount        *float64   `json:"amount"`
	Currency      *string    `json:"currency"`
	DueDate       *time.Time `json:"due_date"`
	InvoiceNumber *string    `json:"invoice_number"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// ---------- responses

type LineItemDTO struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitAmount  float64 `json:"unit_amount"`
}

type PaymentDTO struct {
	ID            uint          `json:"id"`
	PublicID      string        `json:"public_id"`
	ProjectID     uint          `json:"project_id"`
	ClientID      uint          `json:"client_id"`
	Title         string        `json:"title,omitempty"`
	Amount        float64       `json:"amount"`
	AmountPaid    float64       `json:"amount_paid"`
	Currency      string        `json:"currency"`
	Status        string        `json:"status"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	InvoiceNumber *string       `json:"invoice_number,omitempty"`
	LineItems     []LineItemDTO `json:"line_items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// PublicInvoiceDTO is what the unauthenticated invoice route returns,
// including the owner's branding.
type PublicInvoiceDTO struct {
	PublicID      string        `json:"public_id"`
	InvoiceNumber *string       `json:"invoice_number,omitempty"`
	Title         string        `json:"title,omitempty"`
	Amount        float64       `json:"amount"`
	AmountPaid    float64       `json:"amount_paid"`
	Currency      string        `json:"currency"`
	Status        string        `json:"status"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	LineItems     []LineItemDTO `json:"line_items,omitempty"`
	ClientName    string        `json:"client_name"`

	BusinessName         *string `json:"business_name,omitempty"`
	LogoURL              *string `json:"logo_url,omitempty"`
	AccentColor          *string `json:"accent_color,omitempty"`
	InvoiceFooter        *string `json:"invoice_footer,omitempty"`
	ShowPlatformBranding bool    `json:"show_platform_branding"`
}
