package entity

import "time"

// ReceiptCustomer identifies the buyer printed on a receipt or confirmation.
type ReceiptCustomer struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// PhoneNumber returns the phone number, or "" when none was given.
func (c ReceiptCustomer) PhoneNumber() string {
	if c.Phone == nil {
		return ""
	}
	return *c.Phone
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// SaleReceipt is a value object representing a printable sale receipt.
// It is NOT a database entity; it is supplied fully populated by the caller and the
// amounts are printed exactly as given.
type SaleReceipt struct {
	ReceiptNumber  string           `json:"receipt_number"`
	InvoiceNumber  string           `json:"invoice_number"`
	SaleDate       time.Time        `json:"sale_date"`
	Customer       *ReceiptCustomer `json:"customer,omitempty"`
	Items          []ReceiptItem    `json:"items"`
	Subtotal       float64          `json:"subtotal"`
	DiscountAmount float64          `json:"discount_amount"`
	TaxAmount      float64          `json:"tax_amount"`
	TotalAmount    float64          `json:"total_amount"`
	PaymentMethod  string           `json:"payment_method"`
	PaymentStatus  string           `json:"payment_status"`
}

// CustomerName returns the customer's name or the walk-in placeholder.
func (r *SaleReceipt) CustomerName() string {
	if r.Customer == nil || r.Customer.Name == "" {
		return "Walk-in Customer"
	}
	return r.Customer.Name
}
