package render

import (
	"strings"
	"time"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/printer"
)

// Thermal printer code pages have no rupee glyph.
func escposCurrency(amount float64) string {
	return strings.Replace(dateutil.FormatCurrency(amount), dateutil.CurrencySymbol, "Rs ", 1)
}

func (r *Renderer) storeHeader(doc *printer.Document, store entity.StoreProfile) {
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(store.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if store.Address != "" {
		doc.Text(store.Address)
	}
	if store.Phone != "" {
		doc.TextF("Phone: %s", store.Phone)
	}
	if store.NTN != "" {
		doc.TextF("NTN: %s", store.NTN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')
}

func (r *Renderer) receiptESCPOS(store entity.StoreProfile, rc entity.SaleReceipt, printedAt time.Time) []byte {
	doc := printer.NewDocument(r.escposWidth)
	r.storeHeader(doc, store)

	doc.KeyValue("Receipt:", rc.ReceiptNumber).
		KeyValue("Invoice:", rc.InvoiceNumber).
		KeyValue("Date:", r.cal.FormatForDisplay(rc.SaleDate)).
		KeyValue("Customer:", rc.CustomerName()).
		Separator('-')

	w := doc.Width()
	widths := []int{w - 30, 6, 12, 12}
	doc.SetBold(true).
		Row(widths, "Item", "Qty", "Price", "Total").
		SetBold(false)
	for _, item := range rc.Items {
		doc.Row(widths, item.Name, formatQuantity(item.Quantity),
			escposCurrency(item.UnitPrice), escposCurrency(item.TotalPrice))
	}

	doc.Separator('-').
		KeyValue("Subtotal:", escposCurrency(rc.Subtotal)).
		KeyValue("Discount:", "-"+escposCurrency(rc.DiscountAmount)).
		KeyValue("Tax:", escposCurrency(rc.TaxAmount)).
		SetBold(true).
		KeyValue("Total:", escposCurrency(rc.TotalAmount)).
		SetBold(false).
		KeyValue("Payment:", strings.ToUpper(rc.PaymentMethod)).
		KeyValue("Status:", normalizeStatus(rc.PaymentStatus)).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed()
	if store.ReceiptFooter != "" {
		doc.Text(store.ReceiptFooter)
	}
	doc.TextF("Receipt printed on %s", r.cal.FormatForDisplay(printedAt)).
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

func (r *Renderer) confirmationESCPOS(store entity.StoreProfile, c entity.PaymentConfirmation, printedAt time.Time) []byte {
	doc := printer.NewDocument(r.escposWidth)
	r.storeHeader(doc, store)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PAYMENT CONFIRMATION").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Confirmation #:", c.ConfirmationNumber).
		KeyValue("Original Invoice:", c.OriginalSaleInvoice).
		KeyValue("Original Receipt:", c.OriginalSaleReceipt).
		KeyValue("Date:", r.cal.FormatForDisplay(c.PaymentDate)).
		KeyValue("Customer:", c.Customer.Name)
	if phone := c.Customer.PhoneNumber(); phone != "" {
		doc.KeyValue("Phone:", phone)
	}
	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PAYMENT DETAILS").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		KeyValue("Payment Amount:", escposCurrency(c.PaymentAmount)).
		KeyValue("Payment Method:", strings.ToUpper(c.PaymentMethod)).
		Separator('-').
		KeyValue("Remaining Balance:", escposCurrency(c.RemainingAmount)).
		KeyValue("Status:", normalizeStatus(c.TransactionStatus)).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed()
	if store.ConfirmationFooter != "" {
		doc.Text(store.ConfirmationFooter)
	}
	doc.Text("Please keep this confirmation for your records.").
		TextF("Payment confirmation printed on %s", r.cal.FormatForDisplay(printedAt)).
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
