package request

import (
	"time"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
)

// CustomerRequest identifies the buyer on a receipt or confirmation
type CustomerRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// ReceiptItemRequest represents a single line on a sale receipt
type ReceiptItemRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Quantity   float64 `json:"quantity" binding:"gt=0"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// SaleReceiptRequest is the request body for printing a sale receipt
type SaleReceiptRequest struct {
	ReceiptNumber  string               `json:"receipt_number" binding:"required,max=100"`
	InvoiceNumber  string               `json:"invoice_number" binding:"required,max=100"`
	SaleDate       time.Time            `json:"sale_date" binding:"required"`
	Customer       *CustomerRequest     `json:"customer"`
	Items          []ReceiptItemRequest `json:"items" binding:"dive"`
	Subtotal       float64              `json:"subtotal"`
	DiscountAmount float64              `json:"discount_amount"`
	TaxAmount      float64              `json:"tax_amount"`
	TotalAmount    float64              `json:"total_amount"`
	PaymentMethod  string               `json:"payment_method" binding:"required,max=50"`
	PaymentStatus  string               `json:"payment_status" binding:"required,max=50"`
}

// ToEntity converts the request into a printable receipt
func (r *SaleReceiptRequest) ToEntity() entity.SaleReceipt {
	receipt := entity.SaleReceipt{
		ReceiptNumber:  r.ReceiptNumber,
		InvoiceNumber:  r.InvoiceNumber,
		SaleDate:       r.SaleDate,
		Items:          make([]entity.ReceiptItem, 0, len(r.Items)),
		Subtotal:       r.Subtotal,
		DiscountAmount: r.DiscountAmount,
		TaxAmount:      r.TaxAmount,
		TotalAmount:    r.TotalAmount,
		PaymentMethod:  r.PaymentMethod,
		PaymentStatus:  r.PaymentStatus,
	}
	if r.Customer != nil {
		receipt.Customer = &entity.ReceiptCustomer{Name: r.Customer.Name, Phone: r.Customer.Phone}
	}
	for _, item := range r.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem(item))
	}
	return receipt
}

// PaymentConfirmationRequest is the request body for printing a BNPL payment confirmation
type PaymentConfirmationRequest struct {
	ConfirmationNumber  string          `json:"confirmation_number" binding:"omitempty,max=100"`
	OriginalSaleInvoice string          `json:"original_sale_invoice" binding:"required,max=100"`
	OriginalSaleReceipt string          `json:"original_sale_receipt" binding:"required,max=100"`
	PaymentDate         time.Time       `json:"payment_date" binding:"required"`
	Customer            CustomerRequest `json:"customer"`
	PaymentAmount       float64         `json:"payment_amount"`
	PaymentMethod       string          `json:"payment_method" binding:"required,max=50"`
	RemainingAmount     float64         `json:"remaining_amount"`
	TransactionStatus   string          `json:"transaction_status" binding:"required,max=50"`
}

// ToEntity converts the request into a printable confirmation
func (r *PaymentConfirmationRequest) ToEntity() entity.PaymentConfirmation {
	return entity.PaymentConfirmation{
		ConfirmationNumber:  r.ConfirmationNumber,
		OriginalSaleInvoice: r.OriginalSaleInvoice,
		OriginalSaleReceipt: r.OriginalSaleReceipt,
		PaymentDate:         r.PaymentDate,
		Customer:            entity.ReceiptCustomer{Name: r.Customer.Name, Phone: r.Customer.Phone},
		PaymentAmount:       r.PaymentAmount,
		PaymentMethod:       r.PaymentMethod,
		RemainingAmount:     r.RemainingAmount,
		TransactionStatus:   r.TransactionStatus,
	}
}
