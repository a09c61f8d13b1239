package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/investify-receipts/internal/application/service"
	"github.com/sangkips/investify-receipts/internal/domain/enum"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/request"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/response"
	"github.com/sangkips/investify-receipts/pkg/apperror"
	"github.com/sangkips/investify-receipts/pkg/pagination"
)

// PrintJobHandler handles print history and date range lookups
type PrintJobHandler struct {
	printJobService *service.PrintJobService
}

// NewPrintJobHandler creates a new print job handler
func NewPrintJobHandler(printJobService *service.PrintJobService) *PrintJobHandler {
	return &PrintJobHandler{printJobService: printJobService}
}

// ListPrintJobs lists print jobs scheduled within a Pakistan date range
func (h *PrintJobHandler) ListPrintJobs(c *gin.Context) {
	var filter request.PrintJobFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid pagination parameters"))
		return
	}

	input := service.ListPrintJobsInput{Period: filter.Period}
	var err error
	if input.CustomStart, err = h.printJobService.ParseDate(filter.StartDate); err != nil {
		response.Error(c, err)
		return
	}
	if input.CustomEnd, err = h.printJobService.ParseDate(filter.EndDate); err != nil {
		response.Error(c, err)
		return
	}
	if filter.Kind != "" {
		kind := enum.PrintKindReceipt
		if filter.Kind == enum.PrintKindBnplConfirmation.String() {
			kind = enum.PrintKindBnplConfirmation
		}
		input.Kind = &kind
	}

	result, rng, err := h.printJobService.List(c.Request.Context(), input, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print jobs retrieved successfully", response.PrintJobListResponse{
		Range:      response.NewDateRangeResponse(filter.Period, rng, h.printJobService.Calendar()),
		Items:      result.Items,
		Pagination: result.Pagination,
	})
}

// GetDateRange resolves a period to its UTC query window
func (h *PrintJobHandler) GetDateRange(c *gin.Context) {
	var query request.DateRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return
	}

	start, err := h.printJobService.ParseDate(query.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := h.printJobService.ParseDate(query.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	rng, err := h.printJobService.ResolveRange(query.Period, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Date range resolved", response.NewDateRangeResponse(query.Period, rng, h.printJobService.Calendar()))
}
