package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/investify-receipts/internal/application/service"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/request"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt and BNPL confirmation printing.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// PrintSaleReceipt writes a sale receipt to the printer and schedules printing.
func (h *ReceiptHandler) PrintSaleReceipt(c *gin.Context) {
	var req request.SaleReceiptRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.receiptService.GenerateReceipt(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, "Receipt sent to printer", response.PrintScheduledResponse{
		DocumentNumber: req.ReceiptNumber,
		Job:            job,
	})
}

// PrintBnplConfirmation writes a BNPL payment confirmation to the printer and
// schedules printing. The response carries the confirmation number printed.
func (h *ReceiptHandler) PrintBnplConfirmation(c *gin.Context) {
	var req request.PaymentConfirmationRequest
	if !bindJSON(c, &req) {
		return
	}

	confirmation, job, err := h.receiptService.GenerateBnplPaymentConfirmation(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, "Payment confirmation sent to printer", response.ConfirmationScheduledResponse{
		ConfirmationNumber: confirmation.ConfirmationNumber,
		Confirmation:       confirmation,
		Job:                job,
	})
}

// PreviewSaleReceipt returns the receipt HTML without printing.
func (h *ReceiptHandler) PreviewSaleReceipt(c *gin.Context) {
	var req request.SaleReceiptRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.receiptService.PreviewReceipt(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.HTML(c, doc.Body)
}

// PreviewBnplConfirmation returns the confirmation HTML without printing.
func (h *ReceiptHandler) PreviewBnplConfirmation(c *gin.Context) {
	var req request.PaymentConfirmationRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.receiptService.PreviewPaymentConfirmation(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.HTML(c, doc.Body)
}

// GetPrinterStatus returns the current print host status.
func (h *ReceiptHandler) GetPrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.Status())
}

// TestPrint prints a sample receipt.
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	job, err := h.receiptService.TestPrint(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, "Test page sent to printer", response.PrintScheduledResponse{
		DocumentNumber: job.DocumentNumber,
		Job:            job,
	})
}

