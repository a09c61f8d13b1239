package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/printer"
)

// Document is a fully composed printable document.
type Document struct {
	Title  string
	Format printer.Format
	Body   []byte
}

// Renderer composes sale receipts and BNPL payment confirmations.
// Amounts are displayed exactly as supplied; nothing is recomputed.
type Renderer struct {
	cal         *dateutil.Calendar
	receipt     *template.Template
	confirm     *template.Template
	escposWidth int
}

// NewRenderer creates a renderer that displays dates with cal. A nil calendar uses
// Pakistan time on the system clock.
func NewRenderer(cal *dateutil.Calendar) *Renderer {
	if cal == nil {
		cal = dateutil.NewCalendar(nil, nil)
	}
	funcs := template.FuncMap{
		"currency": dateutil.FormatCurrency,
		"quantity": formatQuantity,
		"upper":    strings.ToUpper,
		"status":   normalizeStatus,
		"date":     cal.FormatForDisplay,
	}
	return &Renderer{
		cal:         cal,
		receipt:     template.Must(template.New("receipt").Funcs(funcs).Parse(receiptHTMLTemplate)),
		confirm:     template.Must(template.New("confirmation").Funcs(funcs).Parse(confirmationHTMLTemplate)),
		escposWidth: printer.Width80mm,
	}
}

type receiptView struct {
	Title     string
	Store     entity.StoreProfile
	Receipt   entity.SaleReceipt
	Customer  string
	PrintedAt time.Time
}

type confirmationView struct {
	Title        string
	Store        entity.StoreProfile
	Confirmation entity.PaymentConfirmation
	PrintedAt    time.Time
}

// ReceiptTitle is the document title of a sale receipt.
func ReceiptTitle(receiptNumber string) string {
	return "Receipt #" + receiptNumber
}

// ConfirmationTitle is the document title of a BNPL payment confirmation.
func ConfirmationTitle(confirmationNumber string) string {
	return "Payment Confirmation #" + confirmationNumber
}

// SaleReceipt renders receipt in the given format.
func (r *Renderer) SaleReceipt(format printer.Format, store entity.StoreProfile, receipt entity.SaleReceipt, printedAt time.Time) (Document, error) {
	doc := Document{Title: ReceiptTitle(receipt.ReceiptNumber), Format: format}

	switch format {
	case printer.FormatHTML:
		view := receiptView{
			Title:     doc.Title,
			Store:     store,
			Receipt:   receipt,
			Customer:  receipt.CustomerName(),
			PrintedAt: printedAt,
		}
		var buf bytes.Buffer
		if err := r.receipt.Execute(&buf, view); err != nil {
			return Document{}, fmt.Errorf("render receipt %s: %w", receipt.ReceiptNumber, err)
		}
		doc.Body = buf.Bytes()
	case printer.FormatESCPOS:
		doc.Body = r.receiptESCPOS(store, receipt, printedAt)
	default:
		return Document{}, fmt.Errorf("render receipt %s: unsupported format %q", receipt.ReceiptNumber, format)
	}

	return doc, nil
}

// PaymentConfirmation renders a BNPL payment confirmation in the given format.
// The confirmation number must already be assigned.
func (r *Renderer) PaymentConfirmation(format printer.Format, store entity.StoreProfile, confirmation entity.PaymentConfirmation, printedAt time.Time) (Document, error) {
	doc := Document{Title: ConfirmationTitle(confirmation.ConfirmationNumber), Format: format}

	switch format {
	case printer.FormatHTML:
		view := confirmationView{
			Title:        doc.Title,
			Store:        store,
			Confirmation: confirmation,
			PrintedAt:    printedAt,
		}
		var buf bytes.Buffer
		if err := r.confirm.Execute(&buf, view); err != nil {
			return Document{}, fmt.Errorf("render confirmation %s: %w", confirmation.ConfirmationNumber, err)
		}
		doc.Body = buf.Bytes()
	case printer.FormatESCPOS:
		doc.Body = r.confirmationESCPOS(store, confirmation, printedAt)
	default:
		return Document{}, fmt.Errorf("render confirmation %s: unsupported format %q", confirmation.ConfirmationNumber, format)
	}

	return doc, nil
}

// normalizeStatus replaces the first underscore with a space and upper-cases the
// result: "partially_paid" => "PARTIALLY PAID", "a_b_c" => "A B_C".
func normalizeStatus(s string) string {
	return strings.ToUpper(strings.Replace(s, "_", " ", 1))
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
