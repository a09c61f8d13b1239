package entity

import "time"

// PaymentConfirmation is a printable acknowledgement of a BNPL installment paid
// against an earlier sale.
type PaymentConfirmation struct {
	ConfirmationNumber  string          `json:"confirmation_number,omitempty"`
	OriginalSaleInvoice string          `json:"original_sale_invoice"`
	OriginalSaleReceipt string          `json:"original_sale_receipt"`
	PaymentDate         time.Time       `json:"payment_date"`
	Customer            ReceiptCustomer `json:"customer"`
	PaymentAmount       float64         `json:"payment_amount"`
	PaymentMethod       string          `json:"payment_method"`
	RemainingAmount     float64         `json:"remaining_amount"`
	TransactionStatus   string          `json:"transaction_status"`
}

// WithConfirmationNumber returns a copy carrying the given number.
func (p PaymentConfirmation) WithConfirmationNumber(number string) PaymentConfirmation {
	p.ConfirmationNumber = number
	return p
}
